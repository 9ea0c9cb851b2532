package contribution_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"go-paie/internal/contribution"
	contributionerrors "go-paie/internal/contribution/errors"
	"go-paie/internal/rules"
)

func setup(t *testing.T) (contribution.Service, *rules.Table) {
	t.Helper()
	table := rules.Default()
	return contribution.NewService(table), table
}

func TestContributionService_ComputeContribution(t *testing.T) {
	svc, table := setup(t)

	t.Run("below the cap", func(t *testing.T) {
		amount, err := svc.ComputeContribution(decimal.NewFromInt(1_000_000), table.Contributions.Retirement)

		assert.NoError(t, err)
		assert.Equal(t, "60000.00", amount.StringFixed(2))
	})

	t.Run("above the cap taxes the cap only", func(t *testing.T) {
		amount, err := svc.ComputeContribution(decimal.NewFromInt(2_000_000), table.Contributions.Retirement)

		assert.NoError(t, err)
		assert.Equal(t, "108000.00", amount.StringFixed(2))
	})

	t.Run("cap correctness", func(t *testing.T) {
		atCap, err := svc.ComputeContribution(table.Contributions.Retirement.SalaryCap, table.Contributions.Retirement)
		assert.NoError(t, err)

		aboveCap, err := svc.ComputeContribution(decimal.NewFromInt(9_999_999), table.Contributions.Retirement)
		assert.NoError(t, err)

		assert.True(t, atCap.Equal(aboveCap))
	})

	t.Run("zero gross", func(t *testing.T) {
		amount, err := svc.ComputeContribution(decimal.Zero, table.Contributions.SocialSecurity)

		assert.NoError(t, err)
		assert.True(t, amount.IsZero())
	})

	t.Run("negative gross fails fast", func(t *testing.T) {
		_, err := svc.ComputeContribution(decimal.NewFromInt(-1), table.Contributions.Retirement)

		assert.ErrorIs(t, err, contributionerrors.ErrNegativeGrossSalary)
	})
}

func TestContributionService_ComputeAllContributions(t *testing.T) {
	svc, _ := setup(t)

	t.Run("totals the three capped contributions", func(t *testing.T) {
		set, err := svc.ComputeAllContributions(decimal.NewFromInt(1_000_000))

		assert.NoError(t, err)
		assert.Equal(t, "60000.00", set.Retirement.StringFixed(2))
		assert.Equal(t, "70000.00", set.SocialSecurity.StringFixed(2))
		assert.Equal(t, "70000.00", set.FamilyAllowance.StringFixed(2))
		assert.Equal(t, "200000.00", set.Total.StringFixed(2))
	})

	t.Run("monotonic up to the cap then constant", func(t *testing.T) {
		prev := decimal.Zero
		var atCap decimal.Decimal
		for gross := int64(0); gross <= 2_400_000; gross += 300_000 {
			set, err := svc.ComputeAllContributions(decimal.NewFromInt(gross))
			assert.NoError(t, err)
			assert.True(t, set.Total.GreaterThanOrEqual(prev), "contributions decreased at gross %d", gross)
			prev = set.Total
			if gross == 1_800_000 {
				atCap = set.Total
			}
		}
		assert.True(t, prev.Equal(atCap), "contributions must stay constant above the cap")
	})

	t.Run("negative gross fails fast", func(t *testing.T) {
		_, err := svc.ComputeAllContributions(decimal.NewFromInt(-500))

		assert.ErrorIs(t, err, contributionerrors.ErrNegativeGrossSalary)
	})
}
