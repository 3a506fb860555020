package domain

import (
	"github.com/shopspring/decimal"
)

// MonthlyTaxResult is the breakdown produced by the monthly TER engine.
// All amounts are rupiah; Rate is the effective percentage applied.
type MonthlyTaxResult struct {
	Bruto                 decimal.Decimal `json:"bruto"`
	PengurangNetto        decimal.Decimal `json:"pengurang_netto"`
	BiayaJabatan          decimal.Decimal `json:"biaya_jabatan"`
	TaxableIncome         decimal.Decimal `json:"taxable_income"`
	TERCategory           TERCategory     `json:"ter_category"`
	Rate                  decimal.Decimal `json:"rate"`
	PPh21                 decimal.Decimal `json:"pph21"`
	EmploymentTypeChecked bool            `json:"employment_type_checked"`
	Message               string          `json:"message,omitempty"`
}

// AnnualReconciliationResult is the December/annual correction breakdown.
// PPh21Bulan is the amount posted to the December payslip; it equals
// KoreksiPPh21 and may be negative (a refund).
type AnnualReconciliationResult struct {
	// January-November actuals, display/audit only.
	BrutoJanNov     decimal.Decimal `json:"bruto_jan_nov"`
	NettoJanNov     decimal.Decimal `json:"netto_jan_nov"`
	PPh21PaidJanNov decimal.Decimal `json:"pph21_paid_jan_nov"`

	// December figures.
	BrutoDesember          decimal.Decimal `json:"bruto_desember"`
	PengurangNettoDesember decimal.Decimal `json:"pengurang_netto_desember"`
	BiayaJabatanDesember   decimal.Decimal `json:"biaya_jabatan_desember"`
	NettoDesember          decimal.Decimal `json:"netto_desember"`
	JPJHTEmployeeMonth     decimal.Decimal `json:"jp_jht_employee_month"`
	JPJHTEmployeeAnnual    decimal.Decimal `json:"jp_jht_employee_annual"`

	// Annual basis.
	BrutoTotal decimal.Decimal `json:"bruto_total"`
	NettoTotal decimal.Decimal `json:"netto_total"`

	// Tax.
	PTKPAnnual   decimal.Decimal `json:"ptkp_annual"`
	PKPAnnual    decimal.Decimal `json:"pkp_annual"`
	Rate         string          `json:"rate"`
	PPh21Annual  decimal.Decimal `json:"pph21_annual"`
	PPh21Bulan   decimal.Decimal `json:"pph21_bulan"`
	KoreksiPPh21 decimal.Decimal `json:"koreksi_pph21"`

	EmploymentTypeChecked bool   `json:"employment_type_checked"`
	Note                  string `json:"note,omitempty"`
}

// MonthlyLedgerRow is the per-month record pushed to the yearly history
// collaborator after a monthly calculation.
type MonthlyLedgerRow struct {
	Month          int             `json:"month"`
	SlipID         string          `json:"slip_id"`
	Bruto          decimal.Decimal `json:"bruto"`
	PengurangNetto decimal.Decimal `json:"pengurang_netto"`
	BiayaJabatan   decimal.Decimal `json:"biaya_jabatan"`
	Netto          decimal.Decimal `json:"netto"`
	Rate           decimal.Decimal `json:"rate"`
	PPh21          decimal.Decimal `json:"pph21"`
}

// AnnualLedgerSummary is the year-end record pushed to the yearly history
// collaborator after the December reconciliation.
type AnnualLedgerSummary struct {
	BrutoTotal   decimal.Decimal `json:"bruto_total"`
	NettoTotal   decimal.Decimal `json:"netto_total"`
	PTKPAnnual   decimal.Decimal `json:"ptkp_annual"`
	PKPAnnual    decimal.Decimal `json:"pkp_annual"`
	PPh21Annual  decimal.Decimal `json:"pph21_annual"`
	KoreksiPPh21 decimal.Decimal `json:"koreksi_pph21"`
}
