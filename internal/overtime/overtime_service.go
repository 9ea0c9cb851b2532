package overtime

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	overtimeerrors "go-paie/internal/overtime/errors"
	"go-paie/internal/rules"
	"go-paie/internal/shared/money"
)

//go:generate mockgen -source=overtime_service.go -destination=mock/overtime_service_mock.go -package=mock
type Service interface {
	ComputeOvertime(req Request) (Breakdown, error)
	ComputeRegularOvertime(hours, hourlyRate decimal.Decimal) (decimal.Decimal, []string, error)
	IsNightInterval(start, end time.Time) bool
	IsHoliday(day time.Time) bool
}

type service struct {
	cfg rules.OvertimeRules
	log *zap.Logger
}

func NewService(table *rules.Table, log *zap.Logger) Service {
	return &service{cfg: table.Overtime, log: log}
}

// ComputeOvertime prices the four hour categories independently at their
// legal multipliers, rounding each category before summing, then adds the
// threshold-gated performance bonuses.
func (s *service) ComputeOvertime(req Request) (Breakdown, error) {
	if req.HourlyRate.IsNegative() {
		return Breakdown{}, overtimeerrors.ErrNegativeHourlyRate
	}

	breakdown := Breakdown{
		RegularAmount: s.categoryAmount(req.RegularHours, req.HourlyRate, s.cfg.RegularMultiplier),
		NightAmount:   s.categoryAmount(req.NightHours, req.HourlyRate, s.cfg.NightMultiplier),
		WeekendAmount: s.categoryAmount(req.WeekendHours, req.HourlyRate, s.cfg.WeekendMultiplier),
		HolidayAmount: s.categoryAmount(req.HolidayHours, req.HourlyRate, s.cfg.HolidayMultiplier),
		BonusAmount:   s.performanceBonus(req.BaseSalary, req.Metrics),
	}
	breakdown.Total = breakdown.RegularAmount.
		Add(breakdown.NightAmount).
		Add(breakdown.WeekendAmount).
		Add(breakdown.HolidayAmount).
		Add(breakdown.BonusAmount)

	breakdown.Warnings = s.ceilingWarnings(req)

	return breakdown, nil
}

// ComputeRegularOvertime is the regular-rate-only path used by payroll. The
// returned warnings are advisory, they never reduce the amount.
func (s *service) ComputeRegularOvertime(hours, hourlyRate decimal.Decimal) (decimal.Decimal, []string, error) {
	if hourlyRate.IsNegative() {
		return decimal.Zero, nil, overtimeerrors.ErrNegativeHourlyRate
	}
	var warnings []string
	if hours.GreaterThan(s.cfg.WeeklyHourCap) {
		warnings = append(warnings, fmt.Sprintf("weekly overtime %sh exceeds the %sh ceiling", hours, s.cfg.WeeklyHourCap))
		s.warn("weekly overtime ceiling exceeded", hours, s.cfg.WeeklyHourCap)
	}
	return s.categoryAmount(hours, hourlyRate, s.cfg.RegularMultiplier), warnings, nil
}

// categoryAmount prices one category. Zero or negative hours contribute
// nothing, they are not an error.
func (s *service) categoryAmount(hours, rate, multiplier decimal.Decimal) decimal.Decimal {
	if hours.Sign() <= 0 {
		return decimal.Zero
	}
	return money.Round2(hours.Mul(rate).Mul(multiplier))
}

func (s *service) performanceBonus(baseSalary decimal.Decimal, metrics *PerformanceMetrics) decimal.Decimal {
	if metrics == nil || baseSalary.Sign() <= 0 {
		return decimal.Zero
	}

	bonus := decimal.Zero
	if metrics.Productivity.GreaterThanOrEqual(s.cfg.ProductivityBonus.Threshold) {
		bonus = bonus.Add(money.MulRound2(baseSalary, s.cfg.ProductivityBonus.Rate))
	}
	if metrics.Quality.GreaterThanOrEqual(s.cfg.QualityBonus.Threshold) {
		bonus = bonus.Add(money.MulRound2(baseSalary, s.cfg.QualityBonus.Rate))
	}
	if metrics.Attendance.GreaterThanOrEqual(s.cfg.AttendanceBonus.Threshold) {
		bonus = bonus.Add(money.MulRound2(baseSalary, s.cfg.AttendanceBonus.Rate))
	}
	return bonus
}

func (s *service) ceilingWarnings(req Request) []string {
	total := decimal.Zero
	for _, hours := range []decimal.Decimal{req.RegularHours, req.NightHours, req.WeekendHours, req.HolidayHours} {
		if hours.IsPositive() {
			total = total.Add(hours)
		}
	}

	var warnings []string
	if total.GreaterThan(s.cfg.WeeklyHourCap) {
		warnings = append(warnings, fmt.Sprintf("weekly overtime %sh exceeds the %sh ceiling", total, s.cfg.WeeklyHourCap))
		s.warn("weekly overtime ceiling exceeded", total, s.cfg.WeeklyHourCap)
	}
	annual := req.AnnualHoursToDate.Add(total)
	if annual.GreaterThan(s.cfg.AnnualHourCap) {
		warnings = append(warnings, fmt.Sprintf("annual overtime %sh exceeds the %sh ceiling", annual, s.cfg.AnnualHourCap))
		s.warn("annual overtime ceiling exceeded", annual, s.cfg.AnnualHourCap)
	}
	return warnings
}

func (s *service) warn(msg string, hours, ceiling decimal.Decimal) {
	s.log.Warn(msg,
		zap.String("hours", hours.String()),
		zap.String("ceiling", ceiling.String()),
	)
}
