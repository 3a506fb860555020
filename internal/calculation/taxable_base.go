package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/payrollid/pph21-calculator/internal/domain"
	rupiah "github.com/payrollid/pph21-calculator/pkg/decimal"
)

// TaxableBase is the per-period component breakdown both tax engines
// consume. Amounts are rupiah.
type TaxableBase struct {
	Bruto          decimal.Decimal
	PengurangNetto decimal.Decimal
	BiayaJabatan   decimal.Decimal
}

// Netto returns bruto less pengurang netto and biaya jabatan, floored at
// zero.
func (b TaxableBase) Netto() decimal.Decimal {
	netto := b.Bruto.Sub(b.PengurangNetto).Sub(b.BiayaJabatan)
	if netto.IsNegative() {
		return decimal.Zero
	}
	return netto
}

// ComputeTaxableBase derives bruto, pengurang netto and biaya jabatan from
// a payslip's component rows. Inclusion is driven purely by the row flags;
// the only names recognized are the biaya jabatan row and the BPJS JP/JHT
// employee rows.
//
// When no explicit biaya jabatan deduction row exists, the deduction is
// computed as min(bruto x rate%, capMonthly).
func ComputeTaxableBase(earnings, deductions []domain.ComponentRow, bjRate, bjCapMonthly decimal.Decimal) (TaxableBase, error) {
	var base TaxableBase

	for i := range earnings {
		row := &earnings[i]
		if !row.IsTaxApplicable && !row.IsIncomeTaxComponent && !row.VariableBasedOnTaxableSalary {
			continue
		}
		if row.DoNotIncludeInTotal || row.StatisticalComponent || row.ExemptedFromIncomeTax {
			continue
		}
		base.Bruto = base.Bruto.Add(row.Amount)
	}
	if base.Bruto.IsNegative() {
		return TaxableBase{}, &domain.InvalidComponentDataError{
			Reason: "bruto is negative: " + base.Bruto.String(),
		}
	}

	explicitBJ := false
	for i := range deductions {
		row := &deductions[i]
		if row.IsBiayaJabatan() {
			// The generated row wins over the computed amount.
			base.BiayaJabatan = base.BiayaJabatan.Add(row.Amount)
			explicitBJ = true
			continue
		}
		if !row.IsIncomeTaxComponent && !row.VariableBasedOnTaxableSalary {
			continue
		}
		if row.DoNotIncludeInTotal || row.StatisticalComponent {
			continue
		}
		base.PengurangNetto = base.PengurangNetto.Add(row.Amount)
	}

	if !explicitBJ {
		computed := rupiah.Percent(base.Bruto, bjRate)
		if computed.GreaterThan(bjCapMonthly) {
			computed = bjCapMonthly
		}
		base.BiayaJabatan = computed
	}

	return base, nil
}
