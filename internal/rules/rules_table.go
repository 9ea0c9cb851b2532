package rules

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	ruleserrors "go-paie/internal/rules/errors"
	"go-paie/internal/shared/money"
)

// TaxBracket is one slice of the progressive income tax scale. Brackets
// partition [0, +inf): MinIncome of a bracket equals MaxIncome of the one
// below, and the last bracket has a nil MaxIncome. FixedAmount is the tax
// already owed on all lower brackets, so a bracket only taxes its own slice.
type TaxBracket struct {
	MinIncome   decimal.Decimal
	MaxIncome   *decimal.Decimal
	Rate        decimal.Decimal
	FixedAmount decimal.Decimal
}

// ContributionRule is a flat rate applied to gross salary up to SalaryCap.
type ContributionRule struct {
	Rate      decimal.Decimal
	SalaryCap decimal.Decimal
}

type ContributionRules struct {
	Retirement      ContributionRule
	SocialSecurity  ContributionRule
	FamilyAllowance ContributionRule
}

// BonusRule grants Rate of base salary when the metric reaches Threshold.
// There is no partial bonus below the threshold.
type BonusRule struct {
	Threshold decimal.Decimal
	Rate      decimal.Decimal
}

type OvertimeRules struct {
	RegularMultiplier decimal.Decimal
	NightMultiplier   decimal.Decimal
	WeekendMultiplier decimal.Decimal
	HolidayMultiplier decimal.Decimal

	// Advisory ceilings. Exceeding them warns, it never rejects.
	WeeklyHourCap decimal.Decimal
	AnnualHourCap decimal.Decimal

	ProductivityBonus BonusRule
	QualityBonus      BonusRule
	AttendanceBonus   BonusRule

	// Movable holidays (Korite, Tabaski, ...) supplied per year, since they
	// have no fixed civil-calendar date.
	ExtraHolidays []time.Time
}

type VATRules struct {
	StandardRate    decimal.Decimal
	ReducedRate     decimal.Decimal
	WithholdingRate decimal.Decimal

	ReducedSectors []string
	ExemptSectors  []string

	LocalCurrency string

	// Withholding applies above this amount, compliance checks above the
	// fiscal threshold.
	WithholdingThreshold decimal.Decimal
	FiscalThreshold      decimal.Decimal
}

// Table is the full statutory rule set a calculation run is bound to. It is
// loaded once, validated once, and treated as immutable afterwards.
type Table struct {
	Brackets      []TaxBracket
	Contributions ContributionRules
	Overtime      OvertimeRules
	VAT           VATRules

	// Monthly reference hours used to derive the hourly rate from a monthly
	// base salary (40h/week x 52 / 12).
	MonthlyHours decimal.Decimal
}

// Validate fails fast on a malformed table so that per-calculation code can
// assume a well-formed scale.
func (t *Table) Validate() error {
	one := decimal.NewFromInt(1)

	if len(t.Brackets) == 0 {
		return ruleserrors.ErrEmptyBrackets
	}
	if !t.Brackets[0].MinIncome.IsZero() {
		return fmt.Errorf("%w: first bracket starts at %s", ruleserrors.ErrBracketGap, t.Brackets[0].MinIncome)
	}

	for i, b := range t.Brackets {
		if b.Rate.IsNegative() || b.Rate.GreaterThan(one) {
			return fmt.Errorf("%w: bracket %d rate %s", ruleserrors.ErrInvalidRate, i, b.Rate)
		}
		last := i == len(t.Brackets)-1
		if last {
			if b.MaxIncome != nil {
				return ruleserrors.ErrBoundedTail
			}
			continue
		}
		if b.MaxIncome == nil {
			return fmt.Errorf("%w: bracket %d has no upper bound", ruleserrors.ErrBracketOrder, i)
		}
		if !b.MaxIncome.GreaterThan(b.MinIncome) {
			return fmt.Errorf("%w: bracket %d", ruleserrors.ErrBracketOrder, i)
		}
		next := t.Brackets[i+1]
		if !next.MinIncome.Equal(*b.MaxIncome) {
			return fmt.Errorf("%w: bracket %d ends at %s, bracket %d starts at %s",
				ruleserrors.ErrBracketGap, i, b.MaxIncome, i+1, next.MinIncome)
		}
		// FixedAmount of the next bracket must equal the tax accumulated
		// through this one, rounded at the bracket boundary.
		want := money.Round2(b.FixedAmount.Add(b.MaxIncome.Sub(b.MinIncome).Mul(b.Rate)))
		if !next.FixedAmount.Equal(want) {
			return fmt.Errorf("%w: bracket %d fixed amount %s, expected %s",
				ruleserrors.ErrFixedAmountMismatch, i+1, next.FixedAmount, want)
		}
	}

	for _, rule := range []ContributionRule{
		t.Contributions.Retirement,
		t.Contributions.SocialSecurity,
		t.Contributions.FamilyAllowance,
	} {
		if rule.Rate.IsNegative() || rule.Rate.GreaterThan(one) {
			return fmt.Errorf("%w: contribution rate %s", ruleserrors.ErrInvalidRate, rule.Rate)
		}
		if !rule.SalaryCap.IsPositive() {
			return ruleserrors.ErrInvalidSalaryCap
		}
	}

	for _, m := range []decimal.Decimal{
		t.Overtime.RegularMultiplier,
		t.Overtime.NightMultiplier,
		t.Overtime.WeekendMultiplier,
		t.Overtime.HolidayMultiplier,
	} {
		if m.LessThan(one) {
			return fmt.Errorf("%w: %s", ruleserrors.ErrInvalidMultiplier, m)
		}
	}
	for _, bonus := range []BonusRule{
		t.Overtime.ProductivityBonus,
		t.Overtime.QualityBonus,
		t.Overtime.AttendanceBonus,
	} {
		if bonus.Rate.IsNegative() || bonus.Rate.GreaterThan(one) {
			return fmt.Errorf("%w: bonus rate %s", ruleserrors.ErrInvalidRate, bonus.Rate)
		}
	}

	if !t.VAT.StandardRate.IsPositive() || t.VAT.StandardRate.GreaterThan(one) {
		return fmt.Errorf("%w: vat standard rate %s", ruleserrors.ErrInvalidRate, t.VAT.StandardRate)
	}
	for _, r := range []decimal.Decimal{t.VAT.ReducedRate, t.VAT.WithholdingRate} {
		if r.IsNegative() || r.GreaterThan(one) {
			return fmt.Errorf("%w: vat rate %s", ruleserrors.ErrInvalidRate, r)
		}
	}
	if t.VAT.LocalCurrency == "" {
		return ruleserrors.ErrMissingCurrency
	}

	if !t.MonthlyHours.IsPositive() {
		return ruleserrors.ErrInvalidMonthlyHours
	}

	return nil
}
