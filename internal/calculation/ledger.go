package calculation

import (
	"sort"
	"sync"

	"github.com/payrollid/pph21-calculator/internal/domain"
)

// YearlyLedger is the append-only yearly tax history collaborator. The
// engine issues upserts after each calculation and expects at-least-once
// idempotent semantics; a ledger failure never fails the calculation.
type YearlyLedger interface {
	UpsertMonthlyRecord(employeeID string, fiscalYear int, row domain.MonthlyLedgerRow) error
	UpsertAnnualSummary(employeeID string, fiscalYear int, summary domain.AnnualLedgerSummary) error
	RemoveRecord(employeeID string, fiscalYear int, slipID string) error
}

type ledgerKey struct {
	employeeID string
	year       int
}

type yearRecord struct {
	months  map[int]domain.MonthlyLedgerRow
	summary *domain.AnnualLedgerSummary
}

// MemoryLedger is an in-memory YearlyLedger keyed by employee and fiscal
// year. Monthly upserts are idempotent by month; re-applying the same
// record replaces it in place. Safe for concurrent use.
type MemoryLedger struct {
	mu    sync.Mutex
	years map[ledgerKey]*yearRecord
}

// NewMemoryLedger creates an empty in-memory ledger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{years: make(map[ledgerKey]*yearRecord)}
}

func (l *MemoryLedger) record(employeeID string, year int) *yearRecord {
	key := ledgerKey{employeeID: employeeID, year: year}
	rec, ok := l.years[key]
	if !ok {
		rec = &yearRecord{months: make(map[int]domain.MonthlyLedgerRow)}
		l.years[key] = rec
	}
	return rec
}

// UpsertMonthlyRecord implements YearlyLedger.
func (l *MemoryLedger) UpsertMonthlyRecord(employeeID string, fiscalYear int, row domain.MonthlyLedgerRow) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.record(employeeID, fiscalYear).months[row.Month] = row
	return nil
}

// UpsertAnnualSummary implements YearlyLedger.
func (l *MemoryLedger) UpsertAnnualSummary(employeeID string, fiscalYear int, summary domain.AnnualLedgerSummary) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.record(employeeID, fiscalYear).summary = &summary
	return nil
}

// RemoveRecord implements YearlyLedger: it drops the monthly rows carrying
// the given slip ID, for payslip cancellation.
func (l *MemoryLedger) RemoveRecord(employeeID string, fiscalYear int, slipID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec, ok := l.years[ledgerKey{employeeID: employeeID, year: fiscalYear}]
	if !ok {
		return nil
	}
	for month, row := range rec.months {
		if row.SlipID == slipID {
			delete(rec.months, month)
		}
	}
	return nil
}

// MonthlyRecords returns the stored monthly rows in calendar order.
func (l *MemoryLedger) MonthlyRecords(employeeID string, fiscalYear int) []domain.MonthlyLedgerRow {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec, ok := l.years[ledgerKey{employeeID: employeeID, year: fiscalYear}]
	if !ok {
		return nil
	}
	rows := make([]domain.MonthlyLedgerRow, 0, len(rec.months))
	for _, row := range rec.months {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Month < rows[j].Month })
	return rows
}

// AnnualSummary returns the stored year-end summary, if any.
func (l *MemoryLedger) AnnualSummary(employeeID string, fiscalYear int) (domain.AnnualLedgerSummary, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec, ok := l.years[ledgerKey{employeeID: employeeID, year: fiscalYear}]
	if !ok || rec.summary == nil {
		return domain.AnnualLedgerSummary{}, false
	}
	return *rec.summary, true
}
