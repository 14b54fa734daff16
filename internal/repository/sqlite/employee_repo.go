package sqlite

import (
	"database/sql"
	"fmt"

	"hr-bot/internal/domain"
)

// SqliteEmployeeRepo reads seed employees from a SQLite database.
type SqliteEmployeeRepo struct {
	db *sql.DB
}

func NewSqliteEmployeeRepo(db *sql.DB) *SqliteEmployeeRepo {
	return &SqliteEmployeeRepo{db: db}
}

// InsertEmployee writes e with its id unchanged. It is the write side used
// to prepare seed databases; the bot itself only reads them via LoadSeed.
func (r *SqliteEmployeeRepo) InsertEmployee(e domain.Employee) error {
	_, err := r.db.Exec(
		`INSERT INTO employees (id, name, salary, department) VALUES (?, ?, ?, ?)`,
		e.ID, e.Name, e.Salary, e.Department,
	)
	return err
}

func (r *SqliteEmployeeRepo) GetAllEmployees() ([]domain.Employee, error) {
	rows, err := r.db.Query(`SELECT id, name, salary, department FROM employees ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Salary, &e.Department); err != nil {
			return nil, err
		}
		if e.ID < 1 {
			return nil, fmt.Errorf("employee %q has invalid id %d", e.Name, e.ID)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// LoadSeed opens the database at path read-only and returns its employees.
func LoadSeed(path string) ([]domain.Employee, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, err
	}
	defer db.Close()

	employees, err := NewSqliteEmployeeRepo(db).GetAllEmployees()
	if err != nil {
		return nil, fmt.Errorf("load seed from %s: %w", path, err)
	}
	return employees, nil
}

var _ domain.EmployeeRepo = (*SqliteEmployeeRepo)(nil)
