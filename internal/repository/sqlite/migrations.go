package sqlite

import (
	"database/sql"
)

const createEmployeesTable = `
CREATE TABLE IF NOT EXISTS employees (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    salary INTEGER NOT NULL CHECK (salary >= 0),
    department TEXT NOT NULL DEFAULT ''
);
`

func Migrate(db *sql.DB) error {
	_, err := db.Exec(createEmployeesTable)
	return err
}
