package telegram

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrBadEmployeeInput = errors.New("expected: Name; Department; Salary")
	ErrBadSalary        = errors.New("salary must be a non-negative whole number")
	ErrBadID            = errors.New("employee ID must be a positive number")
)

// NewEmployeeInput is the parsed form of "Name; Department; Salary".
type NewEmployeeInput struct {
	Name       string
	Department string
	Salary     int
}

func ParseNewEmployee(text string) (NewEmployeeInput, error) {
	parts := strings.Split(text, ";")
	if len(parts) != 3 {
		return NewEmployeeInput{}, ErrBadEmployeeInput
	}
	in := NewEmployeeInput{
		Name:       strings.TrimSpace(parts[0]),
		Department: strings.TrimSpace(parts[1]),
	}
	if in.Name == "" {
		return NewEmployeeInput{}, ErrBadEmployeeInput
	}
	salary, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil || salary < 0 {
		return NewEmployeeInput{}, ErrBadSalary
	}
	in.Salary = salary
	return in, nil
}

func ParseEmployeeID(text string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || id < 1 {
		return 0, ErrBadID
	}
	return id, nil
}
