package overtime

import "github.com/shopspring/decimal"

// PerformanceMetrics are 0-100 scores from the evaluation period. Each score
// gates its own bonus; there is no partial bonus below a threshold.
type PerformanceMetrics struct {
	Productivity decimal.Decimal `json:"productivity"`
	Quality      decimal.Decimal `json:"quality"`
	Attendance   decimal.Decimal `json:"attendance"`
}

type Request struct {
	RegularHours decimal.Decimal `json:"regular_hours"`
	NightHours   decimal.Decimal `json:"night_hours"`
	WeekendHours decimal.Decimal `json:"weekend_hours"`
	HolidayHours decimal.Decimal `json:"holiday_hours"`

	HourlyRate decimal.Decimal `json:"hourly_rate"`

	// BaseSalary feeds the performance bonuses, which are percentages of it.
	BaseSalary decimal.Decimal     `json:"base_salary"`
	Metrics    *PerformanceMetrics `json:"metrics,omitempty"`

	// Cumulative overtime hours already worked this year, for the advisory
	// annual ceiling check.
	AnnualHoursToDate decimal.Decimal `json:"annual_hours_to_date"`
}

// Breakdown carries the per-category amounts. The total is the sum of the
// independently rounded categories, never a re-rounding of the sum.
type Breakdown struct {
	RegularAmount decimal.Decimal `json:"regular_amount"`
	NightAmount   decimal.Decimal `json:"night_amount"`
	WeekendAmount decimal.Decimal `json:"weekend_amount"`
	HolidayAmount decimal.Decimal `json:"holiday_amount"`
	BonusAmount   decimal.Decimal `json:"bonus_amount"`
	Total         decimal.Decimal `json:"total"`

	// Advisory only: ceiling breaches are reported, never enforced.
	Warnings []string `json:"warnings,omitempty"`
}
