package rules

import "github.com/shopspring/decimal"

func bounded(min, max, rate, fixed int64) TaxBracket {
	upper := decimal.NewFromInt(max)
	return TaxBracket{
		MinIncome:   decimal.NewFromInt(min),
		MaxIncome:   &upper,
		Rate:        decimal.NewFromInt(rate).Div(decimal.NewFromInt(100)),
		FixedAmount: decimal.NewFromInt(fixed),
	}
}

// Default returns the compiled-in Senegalese statutory table: the annual
// income tax scale, the capped IPRES/CSS contribution rates, the labor-code
// overtime multipliers and the CGI VAT regime. Production deployments load a
// versioned YAML table instead; this one backs tools and tests.
func Default() *Table {
	sharedCap := decimal.NewFromInt(1_800_000)

	return &Table{
		Brackets: []TaxBracket{
			bounded(0, 630_000, 0, 0),
			bounded(630_000, 1_500_000, 20, 0),
			bounded(1_500_000, 4_000_000, 30, 174_000),
			bounded(4_000_000, 8_000_000, 35, 924_000),
			bounded(8_000_000, 13_500_000, 37, 2_324_000),
			{
				MinIncome:   decimal.NewFromInt(13_500_000),
				Rate:        decimal.NewFromFloat(0.40),
				FixedAmount: decimal.NewFromInt(4_359_000),
			},
		},
		Contributions: ContributionRules{
			Retirement:      ContributionRule{Rate: decimal.NewFromFloat(0.06), SalaryCap: sharedCap},
			SocialSecurity:  ContributionRule{Rate: decimal.NewFromFloat(0.07), SalaryCap: sharedCap},
			FamilyAllowance: ContributionRule{Rate: decimal.NewFromFloat(0.07), SalaryCap: sharedCap},
		},
		Overtime: OvertimeRules{
			RegularMultiplier: decimal.NewFromFloat(1.25),
			NightMultiplier:   decimal.NewFromFloat(1.50),
			WeekendMultiplier: decimal.NewFromFloat(1.50),
			HolidayMultiplier: decimal.NewFromFloat(2.00),
			WeeklyHourCap:     decimal.NewFromInt(20),
			AnnualHourCap:     decimal.NewFromInt(130),
			ProductivityBonus: BonusRule{Threshold: decimal.NewFromInt(80), Rate: decimal.NewFromFloat(0.05)},
			QualityBonus:      BonusRule{Threshold: decimal.NewFromInt(90), Rate: decimal.NewFromFloat(0.03)},
			AttendanceBonus:   BonusRule{Threshold: decimal.NewFromInt(95), Rate: decimal.NewFromFloat(0.02)},
		},
		VAT: VATRules{
			StandardRate:    decimal.NewFromFloat(0.18),
			ReducedRate:     decimal.NewFromFloat(0.10),
			WithholdingRate: decimal.NewFromFloat(0.05),
			ReducedSectors: []string{
				"agriculture",
				"education",
				"health",
				"public_transport",
			},
			ExemptSectors: []string{
				"banking",
				"insurance",
				"medical_services",
				"public_education",
			},
			LocalCurrency:        "XOF",
			WithholdingThreshold: decimal.NewFromInt(10_000_000),
			FiscalThreshold:      decimal.NewFromInt(1_000_000),
		},
		MonthlyHours: decimal.NewFromFloat(173.33),
	}
}
