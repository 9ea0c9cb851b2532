package tax

import (
	"github.com/shopspring/decimal"

	"go-paie/internal/rules"
	"go-paie/internal/shared/money"
)

//go:generate mockgen -source=tax_service.go -destination=mock/tax_service_mock.go -package=mock
type Service interface {
	ComputeIncomeTax(annualTaxable decimal.Decimal) Result
}

type service struct {
	brackets []rules.TaxBracket
}

// NewService binds the engine to a validated bracket table. The table is
// assumed well-formed: rules.Table.Validate has already run.
func NewService(table *rules.Table) Service {
	return &service{brackets: table.Brackets}
}

// ComputeIncomeTax walks the scale in ascending order. Fully consumed
// brackets contribute the difference of the precomputed fixed amounts, the
// topmost bracket taxes only the remaining slice at its marginal rate. An
// amount exactly on a boundary belongs to the lower bracket.
func (s *service) ComputeIncomeTax(annualTaxable decimal.Decimal) Result {
	res := Result{AnnualTaxable: annualTaxable, Tax: decimal.Zero}
	if annualTaxable.Sign() <= 0 {
		return res
	}

	for i, b := range s.brackets {
		if annualTaxable.LessThanOrEqual(b.MinIncome) {
			break
		}

		if b.MaxIncome == nil || annualTaxable.LessThanOrEqual(*b.MaxIncome) {
			slice := annualTaxable.Sub(b.MinIncome)
			sliceTax := money.MulRound2(slice, b.Rate)
			res.Statements = append(res.Statements, BracketStatement{
				MinIncome:    b.MinIncome,
				MaxIncome:    b.MaxIncome,
				Rate:         b.Rate,
				TaxableSlice: slice,
				Tax:          sliceTax,
			})
			res.Tax = money.Round2(b.FixedAmount.Add(sliceTax))
			break
		}

		// Fully consumed bracket: its tax is already folded into the next
		// bracket's fixed amount, rounded at the boundary.
		sliceTax := s.brackets[i+1].FixedAmount.Sub(b.FixedAmount)
		res.Statements = append(res.Statements, BracketStatement{
			MinIncome:    b.MinIncome,
			MaxIncome:    b.MaxIncome,
			Rate:         b.Rate,
			TaxableSlice: b.MaxIncome.Sub(b.MinIncome),
			Tax:          sliceTax,
		})
	}

	return res
}
