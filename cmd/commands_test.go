package main

import (
	"bytes"
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-bot/internal/domain"
	"hr-bot/internal/repository/sqlite"
	"hr-bot/internal/routing"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"TELEGRAM_TOKEN", "DEPARTMENTS_FILE", "WORKERS", "QUEUE_SIZE"} {
		t.Setenv(k, "")
	}
	t.Setenv("LOG_LEVEL", "error")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEmployeesCmd_SalaryDescending(t *testing.T) {
	t.Setenv("SEED_DB", "")
	out, err := runCmd(t, "employees", "--sort", "salary", "--desc")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[3], "Clark Kent")
	assert.Contains(t, lines[4], "Diana Prince")
}

func TestEmployeesCmd_BadSort(t *testing.T) {
	t.Setenv("SEED_DB", "")
	_, err := runCmd(t, "employees", "--sort", "name")
	assert.Error(t, err)
}

func TestPayslipCmd(t *testing.T) {
	t.Setenv("SEED_DB", "")
	out, err := runCmd(t, "payslip", "102")
	require.NoError(t, err)
	assert.Contains(t, out, "Net Salary: 36600")

	_, err = runCmd(t, "payslip", "999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNetCmd(t *testing.T) {
	out, err := runCmd(t, "net", "30000")
	require.NoError(t, err)
	assert.Contains(t, out, "Tax: 1500\n")
	assert.Contains(t, out, "Net Salary: 27100\n")

	_, err = runCmd(t, "net", "-5")
	assert.Error(t, err)
}

func TestRouteCmd(t *testing.T) {
	t.Setenv("SEED_DB", "")
	out, err := runCmd(t, "route", "Finance")
	require.NoError(t, err)
	assert.Contains(t, out, "To Marketing: 5 units")

	_, err = runCmd(t, "route", "Legal")
	assert.ErrorIs(t, err, routing.ErrInvalidStart)
}

func TestRoutesCmd(t *testing.T) {
	t.Setenv("SEED_DB", "")
	out, err := runCmd(t, "routes")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 5)
}

func TestEmployeesCmd_SeedDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	require.NoError(t, sqlite.Migrate(db))
	repo := sqlite.NewSqliteEmployeeRepo(db)
	require.NoError(t, repo.InsertEmployee(domain.Employee{ID: 7, Name: "Victor Stone", Salary: 27000, Department: "IT"}))
	require.NoError(t, db.Close())

	t.Setenv("SEED_DB", path)
	out, err := runCmd(t, "employees")
	require.NoError(t, err)

	assert.Contains(t, out, "ID: 7, Name: Victor Stone")
	assert.NotContains(t, out, "Bruce Wayne")
}

func TestCheckSeed(t *testing.T) {
	assert.NoError(t, checkSeed([]domain.Employee{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}))
	assert.Error(t, checkSeed([]domain.Employee{{ID: 1, Name: "A"}, {ID: 1, Name: "B"}}))
	assert.ErrorIs(t, checkSeed([]domain.Employee{{ID: 1, Name: "  "}}), domain.ErrEmptyName)
	assert.ErrorIs(t, checkSeed([]domain.Employee{{ID: 1, Name: "A", Salary: -1}}), domain.ErrNegativeSalary)
}

// A seed file created by another tool may lack the salary CHECK constraint.
func TestPayslipCmd_SeedRowsAreValidated(t *testing.T) {
	tests := []struct {
		name   string
		row    string
		target error
	}{
		{name: "empty name", row: `INSERT INTO employees VALUES (5, '', 9000, 'IT')`, target: domain.ErrEmptyName},
		{name: "negative salary", row: `INSERT INTO employees VALUES (5, 'Hal', -9000, 'IT')`, target: domain.ErrNegativeSalary},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "loose.db")
			db, err := sql.Open("sqlite3", path)
			require.NoError(t, err)
			_, err = db.Exec(`CREATE TABLE employees (id INTEGER PRIMARY KEY, name TEXT, salary INTEGER, department TEXT)`)
			require.NoError(t, err)
			_, err = db.Exec(tt.row)
			require.NoError(t, err)
			require.NoError(t, db.Close())

			t.Setenv("SEED_DB", path)
			out, err := runCmd(t, "payslip", "5")

			assert.ErrorIs(t, err, tt.target)
			assert.NotContains(t, out, "Net Salary")
		})
	}
}

func TestRunUntilDone_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		runUntilDone(ctx, func() { <-stopped }, func() { close(stopped) })
		close(finished)
	}()
	cancel()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("runUntilDone did not return after cancel")
	}
}

func TestRunUntilDone_StartReturnsFirst(t *testing.T) {
	var stops int32
	runUntilDone(context.Background(), func() {}, func() { atomic.AddInt32(&stops, 1) })

	assert.Equal(t, int32(0), atomic.LoadInt32(&stops))
}
