package service

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"hr-bot/internal/domain"
	"hr-bot/internal/payroll"
)

// EmployeeStore is the registry EmployeeService works on.
type EmployeeStore interface {
	Add(name, department string, salary int) domain.Employee
	FindByID(id int) (domain.Employee, bool)
	OrderBy(key domain.SortKey, dir domain.Direction) []domain.Employee
	List() []domain.Employee
}

// Payslip is an employee together with the deductions on their salary.
type Payslip struct {
	Employee   domain.Employee
	Deductions payroll.DeductionResult
}

type EmployeeService struct {
	Store EmployeeStore
	Log   *logrus.Entry
}

func NewEmployeeService(store EmployeeStore, log *logrus.Entry) *EmployeeService {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &EmployeeService{Store: store, Log: log.WithField("component", "employees")}
}

// Add validates the input and registers a new employee.
func (s *EmployeeService) Add(name, department string, salary int) (domain.Employee, error) {
	name = strings.TrimSpace(name)
	department = strings.TrimSpace(department)
	if name == "" {
		return domain.Employee{}, domain.ErrEmptyName
	}
	if salary < 0 {
		return domain.Employee{}, fmt.Errorf("%w: %d", domain.ErrNegativeSalary, salary)
	}
	e := s.Store.Add(name, department, salary)
	s.Log.WithFields(logrus.Fields{"id": e.ID, "department": e.Department}).Info("employee added")
	return e, nil
}

// Lookup finds an employee and computes their net pay.
func (s *EmployeeService) Lookup(id int) (Payslip, error) {
	e, ok := s.Store.FindByID(id)
	if !ok {
		s.Log.WithField("id", id).Debug("employee lookup missed")
		return Payslip{}, fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}
	return Payslip{Employee: e, Deductions: payroll.ComputeNet(e.Salary)}, nil
}

// List reorders the registry and returns the new order.
func (s *EmployeeService) List(key domain.SortKey, dir domain.Direction) []domain.Employee {
	s.Log.WithFields(logrus.Fields{"key": key, "direction": dir}).Debug("ordering employees")
	return s.Store.OrderBy(key, dir)
}

// All returns the registry in its current order without sorting it.
func (s *EmployeeService) All() []domain.Employee {
	return s.Store.List()
}
