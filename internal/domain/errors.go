package domain

import "errors"

var (
	// Validation errors
	ErrEmptyName      = errors.New("employee name cannot be empty")
	ErrNegativeSalary = errors.New("salary cannot be negative")

	// Lookup errors
	ErrNotFound = errors.New("employee not found")
)
