package vat

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"go-paie/internal/audit"
	"go-paie/internal/rules"
	"go-paie/internal/shared/money"
	vaterrors "go-paie/internal/vat/errors"
)

const (
	exemptionSector     = "EXEMPT_SECTOR"
	exemptionExport     = "EXPORT"
	exemptionGovernment = "GOVERNMENT"
	exemptionCode       = "EXEMPTION_CODE"
)

//go:generate mockgen -source=vat_service.go -destination=mock/vat_service_mock.go -package=mock
type Service interface {
	ComputeVAT(ctx context.Context, req Request) (Result, error)
}

type service struct {
	cfg      rules.VATRules
	auditLog audit.Logger
}

func NewService(table *rules.Table, auditLog audit.Logger) Service {
	return &service{cfg: table.VAT, auditLog: auditLog}
}

// ComputeVAT resolves the applicable rate (explicit override, then reduced
// sector, then standard), applies the exemption override, and derives the
// withholding and compliance side-computations. Exempt transactions carry a
// VAT amount of exactly zero, whatever the resolved rate.
func (s *service) ComputeVAT(ctx context.Context, req Request) (Result, error) {
	if req.AmountExcludingVAT.IsNegative() {
		return Result{}, vaterrors.ErrNegativeAmount
	}
	if req.RateOverride != nil && req.RateOverride.IsNegative() {
		return Result{}, vaterrors.ErrNegativeRateOverride
	}
	if req.TransactionDate.IsZero() {
		return Result{}, vaterrors.ErrMissingTransactionDate
	}

	rate := s.cfg.StandardRate
	switch {
	case req.RateOverride != nil:
		rate = *req.RateOverride
	case inSectorSet(s.cfg.ReducedSectors, req.BusinessSector):
		rate = s.cfg.ReducedRate
	}

	exempt, reason := s.exemption(req)

	vatAmount := decimal.Zero
	if !exempt {
		vatAmount = money.MulRound2(req.AmountExcludingVAT, rate)
	}

	res := Result{
		CalculationID:      uuid.New().String(),
		AmountExcludingVAT: req.AmountExcludingVAT,
		VATAmount:          vatAmount,
		AmountIncludingVAT: req.AmountExcludingVAT.Add(vatAmount),
		EffectiveRate:      rate,
		Exempt:             exempt,
		ExemptionReason:    reason,
		WithholdingAmount:  s.withholding(req, vatAmount),
		Compliant:          true,
	}

	var warnings []string
	if req.AmountExcludingVAT.GreaterThan(s.cfg.FiscalThreshold) && req.ClientTaxID == "" {
		res.Compliant = false
		due := declarationDueDate(req.TransactionDate)
		res.DeclarationDueDate = &due
		warnings = append(warnings, "client tax id missing above the fiscal threshold")
	}

	s.auditLog.Log(ctx, audit.Entry{
		ID:        res.CalculationID,
		Action:    "VAT_CALCULATION",
		Inputs:    req,
		Outputs:   res,
		Warnings:  warnings,
		Timestamp: time.Now().UTC(),
	})

	return res, nil
}

func (s *service) exemption(req Request) (bool, string) {
	switch {
	case inSectorSet(s.cfg.ExemptSectors, req.BusinessSector):
		return true, exemptionSector
	case req.ExportTransaction:
		return true, exemptionExport
	case req.GovernmentTransaction:
		return true, exemptionGovernment
	case req.ExemptionCode != "":
		return true, exemptionCode
	}
	return false, ""
}

// withholding retains 5% of the VAT amount (not the base) on high-value
// local-currency transactions. It is implicitly zero when VAT is zero.
func (s *service) withholding(req Request, vatAmount decimal.Decimal) decimal.Decimal {
	if req.Currency != s.cfg.LocalCurrency {
		return decimal.Zero
	}
	if !req.AmountExcludingVAT.GreaterThan(s.cfg.WithholdingThreshold) {
		return decimal.Zero
	}
	return money.MulRound2(vatAmount, s.cfg.WithholdingRate)
}

// declarationDueDate is the 15th of the month following the transaction.
func declarationDueDate(transaction time.Time) time.Time {
	return time.Date(transaction.Year(), transaction.Month()+1, 15, 0, 0, 0, 0, time.UTC)
}

func inSectorSet(set []string, sector string) bool {
	for _, s := range set {
		if s == sector {
			return true
		}
	}
	return false
}
