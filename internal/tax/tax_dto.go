package tax

import "github.com/shopspring/decimal"

// BracketStatement is the marginal slice of one bracket actually entered,
// used by reporting to reconstruct how the total was reached.
type BracketStatement struct {
	MinIncome    decimal.Decimal  `json:"min_income"`
	MaxIncome    *decimal.Decimal `json:"max_income,omitempty"`
	Rate         decimal.Decimal  `json:"rate"`
	TaxableSlice decimal.Decimal  `json:"taxable_slice"`
	Tax          decimal.Decimal  `json:"tax"`
}

type Result struct {
	AnnualTaxable decimal.Decimal    `json:"annual_taxable"`
	Tax           decimal.Decimal    `json:"tax"`
	Statements    []BracketStatement `json:"statements,omitempty"`
}
