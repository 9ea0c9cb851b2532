package contribution

import (
	"github.com/shopspring/decimal"

	contributionerrors "go-paie/internal/contribution/errors"
	"go-paie/internal/rules"
	"go-paie/internal/shared/money"
)

// Set holds the three statutory social contributions of one gross salary.
type Set struct {
	Retirement      decimal.Decimal `json:"retirement"`
	SocialSecurity  decimal.Decimal `json:"social_security"`
	FamilyAllowance decimal.Decimal `json:"family_allowance"`
	Total           decimal.Decimal `json:"total"`
}

//go:generate mockgen -source=contribution_service.go -destination=mock/contribution_service_mock.go -package=mock
type Service interface {
	ComputeContribution(grossSalary decimal.Decimal, rule rules.ContributionRule) (decimal.Decimal, error)
	ComputeAllContributions(grossSalary decimal.Decimal) (Set, error)
}

type service struct {
	cfg rules.ContributionRules
}

func NewService(table *rules.Table) Service {
	return &service{cfg: table.Contributions}
}

// ComputeContribution applies a flat rate to the gross salary capped at the
// rule's ceiling. A negative gross salary is a caller contract violation.
func (s *service) ComputeContribution(grossSalary decimal.Decimal, rule rules.ContributionRule) (decimal.Decimal, error) {
	if grossSalary.IsNegative() {
		return decimal.Zero, contributionerrors.ErrNegativeGrossSalary
	}

	base := decimal.Min(grossSalary, rule.SalaryCap)
	return money.MulRound2(base, rule.Rate), nil
}

func (s *service) ComputeAllContributions(grossSalary decimal.Decimal) (Set, error) {
	retirement, err := s.ComputeContribution(grossSalary, s.cfg.Retirement)
	if err != nil {
		return Set{}, err
	}
	socialSecurity, err := s.ComputeContribution(grossSalary, s.cfg.SocialSecurity)
	if err != nil {
		return Set{}, err
	}
	familyAllowance, err := s.ComputeContribution(grossSalary, s.cfg.FamilyAllowance)
	if err != nil {
		return Set{}, err
	}

	return Set{
		Retirement:      retirement,
		SocialSecurity:  socialSecurity,
		FamilyAllowance: familyAllowance,
		Total:           retirement.Add(socialSecurity).Add(familyAllowance),
	}, nil
}
