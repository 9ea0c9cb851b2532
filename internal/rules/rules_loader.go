package rules

import (
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	ruleserrors "go-paie/internal/rules/errors"
	"go-paie/internal/shared/apperror"
)

type bracketFile struct {
	MinIncome   float64  `yaml:"min_income" validate:"gte=0"`
	MaxIncome   *float64 `yaml:"max_income" validate:"omitempty,gt=0"`
	Rate        float64  `yaml:"rate" validate:"gte=0,lte=1"`
	FixedAmount float64  `yaml:"fixed_amount" validate:"gte=0"`
}

type contributionFile struct {
	Rate      float64 `yaml:"rate" validate:"gte=0,lte=1"`
	SalaryCap float64 `yaml:"salary_cap" validate:"gt=0"`
}

type bonusFile struct {
	Threshold float64 `yaml:"threshold" validate:"gte=0,lte=100"`
	Rate      float64 `yaml:"rate" validate:"gte=0,lte=1"`
}

type overtimeFile struct {
	RegularMultiplier float64 `yaml:"regular_multiplier" validate:"required,gte=1"`
	NightMultiplier   float64 `yaml:"night_multiplier" validate:"required,gte=1"`
	WeekendMultiplier float64 `yaml:"weekend_multiplier" validate:"required,gte=1"`
	HolidayMultiplier float64 `yaml:"holiday_multiplier" validate:"required,gte=1"`

	WeeklyHourCap float64 `yaml:"weekly_hour_cap" validate:"gt=0"`
	AnnualHourCap float64 `yaml:"annual_hour_cap" validate:"gt=0"`

	ProductivityBonus bonusFile `yaml:"productivity_bonus"`
	QualityBonus      bonusFile `yaml:"quality_bonus"`
	AttendanceBonus   bonusFile `yaml:"attendance_bonus"`

	ExtraHolidays []string `yaml:"extra_holidays"`
}

type vatFile struct {
	StandardRate    float64 `yaml:"standard_rate" validate:"required,gt=0,lte=1"`
	ReducedRate     float64 `yaml:"reduced_rate" validate:"gte=0,lte=1"`
	WithholdingRate float64 `yaml:"withholding_rate" validate:"gte=0,lte=1"`

	ReducedSectors []string `yaml:"reduced_sectors"`
	ExemptSectors  []string `yaml:"exempt_sectors"`

	LocalCurrency string `yaml:"local_currency" validate:"required,len=3"`

	WithholdingThreshold float64 `yaml:"withholding_threshold" validate:"gt=0"`
	FiscalThreshold      float64 `yaml:"fiscal_threshold" validate:"gt=0"`
}

type tableFile struct {
	Brackets      []bracketFile `yaml:"tax_brackets" validate:"required,min=1,dive"`
	Contributions struct {
		Retirement      contributionFile `yaml:"retirement"`
		SocialSecurity  contributionFile `yaml:"social_security"`
		FamilyAllowance contributionFile `yaml:"family_allowance"`
	} `yaml:"contributions"`
	Overtime     overtimeFile `yaml:"overtime"`
	VAT          vatFile      `yaml:"vat"`
	MonthlyHours float64      `yaml:"monthly_hours" validate:"required,gt=0"`
}

// Load reads, validates and compiles a statutory rule table from a YAML
// file. Malformed tables fail here, never during a calculation.
func Load(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInvalidConfig, "cannot read rule table")
	}
	return Parse(raw)
}

// Parse compiles an in-memory YAML document into a validated Table.
func Parse(raw []byte) (*Table, error) {
	var file tableFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInvalidConfig, "cannot parse rule table")
	}

	if err := apperror.NewValidator().Struct(file); err != nil {
		return nil, apperror.MapValidationError(err)
	}

	table, err := compile(file)
	if err != nil {
		return nil, err
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

func compile(file tableFile) (*Table, error) {
	table := &Table{
		Brackets: make([]TaxBracket, len(file.Brackets)),
		Contributions: ContributionRules{
			Retirement:      compileContribution(file.Contributions.Retirement),
			SocialSecurity:  compileContribution(file.Contributions.SocialSecurity),
			FamilyAllowance: compileContribution(file.Contributions.FamilyAllowance),
		},
		Overtime: OvertimeRules{
			RegularMultiplier: decimal.NewFromFloat(file.Overtime.RegularMultiplier),
			NightMultiplier:   decimal.NewFromFloat(file.Overtime.NightMultiplier),
			WeekendMultiplier: decimal.NewFromFloat(file.Overtime.WeekendMultiplier),
			HolidayMultiplier: decimal.NewFromFloat(file.Overtime.HolidayMultiplier),
			WeeklyHourCap:     decimal.NewFromFloat(file.Overtime.WeeklyHourCap),
			AnnualHourCap:     decimal.NewFromFloat(file.Overtime.AnnualHourCap),
			ProductivityBonus: compileBonus(file.Overtime.ProductivityBonus),
			QualityBonus:      compileBonus(file.Overtime.QualityBonus),
			AttendanceBonus:   compileBonus(file.Overtime.AttendanceBonus),
		},
		VAT: VATRules{
			StandardRate:         decimal.NewFromFloat(file.VAT.StandardRate),
			ReducedRate:          decimal.NewFromFloat(file.VAT.ReducedRate),
			WithholdingRate:      decimal.NewFromFloat(file.VAT.WithholdingRate),
			ReducedSectors:       file.VAT.ReducedSectors,
			ExemptSectors:        file.VAT.ExemptSectors,
			LocalCurrency:        file.VAT.LocalCurrency,
			WithholdingThreshold: decimal.NewFromFloat(file.VAT.WithholdingThreshold),
			FiscalThreshold:      decimal.NewFromFloat(file.VAT.FiscalThreshold),
		},
		MonthlyHours: decimal.NewFromFloat(file.MonthlyHours),
	}

	for i, b := range file.Brackets {
		bracket := TaxBracket{
			MinIncome:   decimal.NewFromFloat(b.MinIncome),
			Rate:        decimal.NewFromFloat(b.Rate),
			FixedAmount: decimal.NewFromFloat(b.FixedAmount),
		}
		if b.MaxIncome != nil {
			max := decimal.NewFromFloat(*b.MaxIncome)
			bracket.MaxIncome = &max
		}
		table.Brackets[i] = bracket
	}

	for _, raw := range file.Overtime.ExtraHolidays {
		day, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, apperror.Wrap(err, apperror.CodeInvalidConfig, ruleserrors.ErrInvalidHolidayDate.Message)
		}
		table.Overtime.ExtraHolidays = append(table.Overtime.ExtraHolidays, day)
	}

	return table, nil
}

func compileContribution(c contributionFile) ContributionRule {
	return ContributionRule{
		Rate:      decimal.NewFromFloat(c.Rate),
		SalaryCap: decimal.NewFromFloat(c.SalaryCap),
	}
}

func compileBonus(b bonusFile) BonusRule {
	return BonusRule{
		Threshold: decimal.NewFromFloat(b.Threshold),
		Rate:      decimal.NewFromFloat(b.Rate),
	}
}
