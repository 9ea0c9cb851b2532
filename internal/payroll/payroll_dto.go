package payroll

import (
	"github.com/shopspring/decimal"

	"go-paie/internal/contribution"
	"go-paie/internal/tax"
)

type Allowances struct {
	PerformanceBonus decimal.Decimal `json:"performance_bonus"`
	Transport        decimal.Decimal `json:"transport"`
	Meal             decimal.Decimal `json:"meal"`
	Housing          decimal.Decimal `json:"housing"`
	Other            decimal.Decimal `json:"other"`
}

func (a Allowances) Total() decimal.Decimal {
	return a.PerformanceBonus.Add(a.Transport).Add(a.Meal).Add(a.Housing).Add(a.Other)
}

func (a Allowances) anyNegative() bool {
	return a.PerformanceBonus.IsNegative() || a.Transport.IsNegative() ||
		a.Meal.IsNegative() || a.Housing.IsNegative() || a.Other.IsNegative()
}

type Deductions struct {
	SalaryAdvance decimal.Decimal `json:"salary_advance"`
	Loan          decimal.Decimal `json:"loan"`
	Absence       decimal.Decimal `json:"absence"`
	DelayPenalty  decimal.Decimal `json:"delay_penalty"`
	Other         decimal.Decimal `json:"other"`
}

func (d Deductions) Total() decimal.Decimal {
	return d.SalaryAdvance.Add(d.Loan).Add(d.Absence).Add(d.DelayPenalty).Add(d.Other)
}

func (d Deductions) anyNegative() bool {
	return d.SalaryAdvance.IsNegative() || d.Loan.IsNegative() ||
		d.Absence.IsNegative() || d.DelayPenalty.IsNegative() || d.Other.IsNegative()
}

type CalculationRequest struct {
	EmployeeID string `json:"employee_id"`
	Period     string `json:"period"` // YYYY-MM

	BaseSalary    decimal.Decimal `json:"base_salary"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`

	Allowances Allowances `json:"allowances"`
	Deductions Deductions `json:"deductions"`
}

type Result struct {
	CalculationID string `json:"calculation_id"`
	EmployeeID    string `json:"employee_id"`
	Period        string `json:"period"`

	BaseSalary decimal.Decimal `json:"base_salary"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`

	OvertimeHours   decimal.Decimal `json:"overtime_hours"`
	OvertimeAmount  decimal.Decimal `json:"overtime_amount"`
	TotalAllowances decimal.Decimal `json:"total_allowances"`
	GrossSalary     decimal.Decimal `json:"gross_salary"`

	IncomeTax     decimal.Decimal        `json:"income_tax"`
	TaxStatements []tax.BracketStatement `json:"tax_statements,omitempty"`
	Contributions contribution.Set       `json:"contributions"`

	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetSalary       decimal.Decimal `json:"net_salary"`

	// Advisory notices raised along the way (overtime ceilings). They never
	// change the amounts.
	Warnings []string `json:"warnings,omitempty"`
}
