package output

import (
	"strings"

	"github.com/payrollid/pph21-calculator/internal/domain"
)

// Report bundles what one calculation run produced. Exactly one of
// Monthly and Annual is set.
type Report struct {
	Employee *domain.Employee
	Monthly  *domain.MonthlyTaxResult
	Annual   *domain.AnnualReconciliationResult
}

// Formatter is a pluggable report renderer. Implementations are pure:
// deterministic bytes out, no side effects.
type Formatter interface {
	Format(report *Report) ([]byte, error)
	// Name returns a short identifier for lookup and logging.
	Name() string
}

var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":        "console",
	"plain":       "console",
	"json-pretty": "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if resolved, ok := aliasMap[n]; ok {
		return resolved
	}
	return n
}

// GetFormatterByName fetches a registered formatter, nil when unknown.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}
