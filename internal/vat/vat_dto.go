package vat

import (
	"time"

	"github.com/shopspring/decimal"
)

type Request struct {
	AmountExcludingVAT decimal.Decimal `json:"amount_excluding_vat"`
	Currency           string          `json:"currency"`
	BusinessSector     string          `json:"business_sector"`

	ExportTransaction     bool   `json:"export_transaction"`
	GovernmentTransaction bool   `json:"government_transaction"`
	ExemptionCode         string `json:"exemption_code,omitempty"`

	// RateOverride bypasses the sector rate lookup, never the exemption
	// override.
	RateOverride *decimal.Decimal `json:"rate_override,omitempty"`

	// ClientTaxID is the client NINEA, required for compliance above the
	// fiscal threshold.
	ClientTaxID     string    `json:"client_tax_id,omitempty"`
	TransactionDate time.Time `json:"transaction_date"`
}

type Result struct {
	CalculationID      string          `json:"calculation_id"`
	AmountExcludingVAT decimal.Decimal `json:"amount_excluding_vat"`
	VATAmount          decimal.Decimal `json:"vat_amount"`
	AmountIncludingVAT decimal.Decimal `json:"amount_including_vat"`
	EffectiveRate      decimal.Decimal `json:"effective_rate"`

	Exempt          bool   `json:"exempt"`
	ExemptionReason string `json:"exemption_reason,omitempty"`

	WithholdingAmount decimal.Decimal `json:"withholding_amount"`

	Compliant          bool       `json:"compliant"`
	DeclarationDueDate *time.Time `json:"declaration_due_date,omitempty"`
}
