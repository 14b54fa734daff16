// Package memory holds the in-memory employee registry.
package memory

import (
	"sort"
	"sync"

	"hr-bot/internal/domain"
)

// BaseID is the id given to the first employee added to an empty store.
const BaseID = 101

// EmployeeStore owns the ordered collection of employees. OrderBy reorders
// the collection in place, so the store order is whatever the last sort left.
type EmployeeStore struct {
	mu        sync.RWMutex
	employees []domain.Employee
}

func NewEmployeeStore(seed ...domain.Employee) *EmployeeStore {
	employees := make([]domain.Employee, len(seed))
	copy(employees, seed)
	return &EmployeeStore{employees: employees}
}

// DefaultEmployees returns the records the registry starts with.
func DefaultEmployees() []domain.Employee {
	return []domain.Employee{
		{ID: 101, Name: "Bruce Wayne", Salary: 50000, Department: "Finance"},
		{ID: 102, Name: "Clark Kent", Salary: 40000, Department: "IT"},
		{ID: 103, Name: "Diana Prince", Salary: 3000, Department: "Marketing"},
		{ID: 104, Name: "Barry Allen", Salary: 50000, Department: "HR"},
	}
}

// Add appends a new employee with the next free id.
func (s *EmployeeStore) Add(name, department string, salary int) domain.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := domain.Employee{
		ID:         s.nextID(),
		Name:       name,
		Salary:     salary,
		Department: department,
	}
	s.employees = append(s.employees, e)
	return e
}

// nextID must be called with s.mu held.
func (s *EmployeeStore) nextID() int {
	if len(s.employees) == 0 {
		return BaseID
	}
	highest := s.employees[0].ID
	for _, e := range s.employees[1:] {
		if e.ID > highest {
			highest = e.ID
		}
	}
	return highest + 1
}

func (s *EmployeeStore) FindByID(id int) (domain.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.employees {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Employee{}, false
}

// OrderBy sorts the store in place and returns a copy of the new order.
func (s *EmployeeStore) OrderBy(key domain.SortKey, dir domain.Direction) []domain.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch key {
	case domain.BySalary:
		bubbleSortBySalary(s.employees, dir)
	default:
		sort.SliceStable(s.employees, func(i, j int) bool {
			if dir == domain.Descending {
				return s.employees[i].ID > s.employees[j].ID
			}
			return s.employees[i].ID < s.employees[j].ID
		})
	}
	return s.snapshot()
}

func (s *EmployeeStore) List() []domain.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

func (s *EmployeeStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.employees)
}

func (s *EmployeeStore) snapshot() []domain.Employee {
	out := make([]domain.Employee, len(s.employees))
	copy(out, s.employees)
	return out
}

// bubbleSortBySalary swaps adjacent out-of-order records until a pass makes no swap.
func bubbleSortBySalary(employees []domain.Employee, dir domain.Direction) {
	n := len(employees)
	for i := 0; i < n; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			a, b := employees[j].Salary, employees[j+1].Salary
			if (dir == domain.Ascending && a > b) || (dir == domain.Descending && a < b) {
				employees[j], employees[j+1] = employees[j+1], employees[j]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}
