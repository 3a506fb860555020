package output

import (
	"bytes"
	"errors"
	"fmt"
)

// ConsoleFormatter renders a human-readable breakdown for terminal use.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	switch {
	case report == nil:
		return nil, errors.New("nil report")
	case report.Monthly != nil:
		return c.formatMonthly(report), nil
	case report.Annual != nil:
		return c.formatAnnual(report), nil
	default:
		return nil, errors.New("report carries no result")
	}
}

func (ConsoleFormatter) formatMonthly(report *Report) []byte {
	r := report.Monthly
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "PPH 21 MONTHLY WITHHOLDING (TER)")
	fmt.Fprintln(&buf, "================================")
	writeEmployee(&buf, report)
	if !r.EmploymentTypeChecked {
		fmt.Fprintf(&buf, "Not calculated: %s\n", r.Message)
		return buf.Bytes()
	}

	fmt.Fprintf(&buf, "Bruto:            %s\n", FormatRupiah(r.Bruto))
	fmt.Fprintf(&buf, "Pengurang netto:  %s\n", FormatRupiah(r.PengurangNetto))
	fmt.Fprintf(&buf, "Biaya jabatan:    %s\n", FormatRupiah(r.BiayaJabatan))
	fmt.Fprintf(&buf, "Taxable income:   %s\n", FormatRupiah(r.TaxableIncome))
	fmt.Fprintf(&buf, "Category / rate:  %s at %s%%\n", r.TERCategory, r.Rate)
	fmt.Fprintf(&buf, "PPh 21:           %s\n", FormatRupiah(r.PPh21))
	return buf.Bytes()
}

func (ConsoleFormatter) formatAnnual(report *Report) []byte {
	r := report.Annual
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "PPH 21 DECEMBER RECONCILIATION")
	fmt.Fprintln(&buf, "==============================")
	writeEmployee(&buf, report)
	if !r.EmploymentTypeChecked {
		fmt.Fprintf(&buf, "Not calculated: %s\n", r.Note)
		return buf.Bytes()
	}

	fmt.Fprintf(&buf, "Bruto Jan-Nov:    %s   Netto Jan-Nov: %s\n", FormatRupiah(r.BrutoJanNov), FormatRupiah(r.NettoJanNov))
	fmt.Fprintf(&buf, "Bruto December:   %s   Netto December: %s\n", FormatRupiah(r.BrutoDesember), FormatRupiah(r.NettoDesember))
	fmt.Fprintf(&buf, "Annual bruto:     %s\n", FormatRupiah(r.BrutoTotal))
	fmt.Fprintf(&buf, "Annual netto:     %s\n", FormatRupiah(r.NettoTotal))
	fmt.Fprintf(&buf, "PTKP:             %s\n", FormatRupiah(r.PTKPAnnual))
	fmt.Fprintf(&buf, "PKP:              %s\n", FormatRupiah(r.PKPAnnual))
	fmt.Fprintf(&buf, "Marginal rate:    %s\n", r.Rate)
	fmt.Fprintf(&buf, "Annual PPh 21:    %s\n", FormatRupiah(r.PPh21Annual))
	fmt.Fprintf(&buf, "Paid Jan-Nov:     %s\n", FormatRupiah(r.PPh21PaidJanNov))
	fmt.Fprintf(&buf, "December posting: %s\n", FormatRupiah(r.PPh21Bulan))
	if r.KoreksiPPh21.IsNegative() {
		fmt.Fprintln(&buf, "Correction is negative: refund to employee on the December slip.")
	}
	if r.Note != "" {
		fmt.Fprintf(&buf, "Note: %s\n", r.Note)
	}
	return buf.Bytes()
}

func writeEmployee(buf *bytes.Buffer, report *Report) {
	if report.Employee == nil {
		return
	}
	fmt.Fprintf(buf, "Employee: %s (%s, %s)\n\n", report.Employee.Name, report.Employee.ID, report.Employee.TaxStatus)
}
