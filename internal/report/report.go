// Package report renders registry and routing results as plain text for the
// bot and the command line.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"hr-bot/internal/app/service"
	"hr-bot/internal/domain"
	"hr-bot/internal/payroll"
	"hr-bot/internal/routing"
)

func Employee(e domain.Employee) string {
	return fmt.Sprintf("ID: %d, Name: %s, Salary: %d, Department: %s", e.ID, e.Name, e.Salary, e.Department)
}

func Employees(employees []domain.Employee) string {
	if len(employees) == 0 {
		return "No employees."
	}
	var b strings.Builder
	b.WriteString("--- Employee List ---\n")
	for _, e := range employees {
		b.WriteString(Employee(e))
		b.WriteByte('\n')
	}
	return b.String()
}

// Payslip renders an employee with the itemized deductions on their salary.
func Payslip(e domain.Employee, d payroll.DeductionResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID: %d\nName: %s\nSalary: %d\nDepartment: %s\n", e.ID, e.Name, e.Salary, e.Department)
	b.WriteString(Deductions(d))
	return b.String()
}

func Deductions(d payroll.DeductionResult) string {
	var b strings.Builder
	b.WriteString("Deductions:\n")
	fmt.Fprintf(&b, "SSS: %s\n", Amount(d.SSMandatory))
	fmt.Fprintf(&b, "Pag-IBIG: %s\n", Amount(d.HousingFund))
	fmt.Fprintf(&b, "PhilHealth: %s\n", Amount(d.HealthFund))
	fmt.Fprintf(&b, "Tax: %s\n", Amount(d.Tax))
	fmt.Fprintf(&b, "Total Deductions: %s\n", Amount(d.TotalDeductions))
	fmt.Fprintf(&b, "Net Salary: %s\n", Amount(d.NetSalary))
	return b.String()
}

// Amount prints v with the fewest digits that represent it exactly.
func Amount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Distance prints d, or "unreachable" for routing.Unreachable.
func Distance(d int64) string {
	if d == routing.Unreachable {
		return "unreachable"
	}
	return strconv.FormatInt(d, 10)
}

// Distances lists the distance from start to every department in nodes order.
func Distances(start string, nodes []string, dist map[string]int64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Shortest paths from %s:\n", start)
	for _, n := range nodes {
		d, ok := dist[n]
		if !ok {
			d = routing.Unreachable
		}
		if d == routing.Unreachable {
			fmt.Fprintf(&b, "To %s: unreachable\n", n)
			continue
		}
		fmt.Fprintf(&b, "To %s: %d units\n", n, d)
	}
	return b.String()
}

// DistanceTable renders one row per start department and one column per target.
func DistanceTable(nodes []string, rows []service.DistanceRow) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "from\\to\t%s\n", strings.Join(nodes, "\t"))
	for _, r := range rows {
		cells := make([]string, len(nodes))
		for i, n := range nodes {
			d, ok := r.Distances[n]
			if !ok {
				d = routing.Unreachable
			}
			cells[i] = Distance(d)
		}
		fmt.Fprintf(w, "%s\t%s\n", r.From, strings.Join(cells, "\t"))
	}
	_ = w.Flush()
	return b.String()
}

func DepartmentsHint(nodes []string) string {
	return "DEPARTMENTS AVAILABLE: " + strings.Join(nodes, ", ")
}
