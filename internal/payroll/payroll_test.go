package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeNet(t *testing.T) {
	tests := []struct {
		name   string
		salary int
		tax    float64
		total  float64
		net    float64
	}{
		{name: "below threshold", salary: 20000, tax: 0, total: 1400, net: 18600},
		{name: "above threshold", salary: 30000, tax: 1500, total: 2900, net: 27100},
		{name: "exactly threshold", salary: 25000, tax: 0, total: 1400, net: 23600},
		{name: "zero", salary: 0, tax: 0, total: 1400, net: -1400},
		{name: "fractional tax", salary: 25001, tax: 1250.05, total: 2650.05, net: 22350.95},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeNet(tt.salary)
			assert.Equal(t, tt.salary, got.Salary)
			assert.Equal(t, float64(500), got.SSMandatory)
			assert.Equal(t, float64(500), got.HousingFund)
			assert.Equal(t, float64(400), got.HealthFund)
			assert.InDelta(t, tt.tax, got.Tax, 1e-9)
			assert.InDelta(t, tt.total, got.TotalDeductions, 1e-9)
			assert.InDelta(t, tt.net, got.NetSalary, 1e-9)
		})
	}
}

func TestComputeNet_Deterministic(t *testing.T) {
	assert.Equal(t, ComputeNet(42000), ComputeNet(42000))
}
