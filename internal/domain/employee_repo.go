package domain

// EmployeeRepo is a read source of employee records used to seed the registry.
type EmployeeRepo interface {
	GetAllEmployees() ([]Employee, error)
}

type Employee struct {
	ID         int
	Name       string
	Salary     int
	Department string
}

// SortKey selects the field OrderBy sorts on.
type SortKey int

const (
	ByID SortKey = iota
	BySalary
)

func (k SortKey) String() string {
	switch k {
	case BySalary:
		return "salary"
	default:
		return "id"
	}
}

type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}
