// Package payroll computes net pay after the fixed mandatory deductions.
package payroll

const (
	SSMandatory = 500
	HousingFund = 500
	HealthFund  = 400

	// TaxThreshold is the salary above which TaxPercent applies.
	TaxThreshold = 25000
	TaxPercent   = 5
)

// DeductionResult itemizes the deductions taken from one salary.
type DeductionResult struct {
	Salary          int
	SSMandatory     float64
	HousingFund     float64
	HealthFund      float64
	Tax             float64
	TotalDeductions float64
	NetSalary       float64
}

// ComputeNet applies the fixed deductions and the conditional tax to salary.
// salary must be non-negative.
func ComputeNet(salary int) DeductionResult {
	var tax float64
	if salary > TaxThreshold {
		tax = float64(salary) * TaxPercent / 100
	}
	total := SSMandatory + HousingFund + HealthFund + tax
	return DeductionResult{
		Salary:          salary,
		SSMandatory:     SSMandatory,
		HousingFund:     HousingFund,
		HealthFund:      HealthFund,
		Tax:             tax,
		TotalDeductions: total,
		NetSalary:       float64(salary) - total,
	}
}
