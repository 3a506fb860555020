package domain

import (
	"errors"
	"fmt"
)

// UnknownTaxStatusError reports a tax-status code absent from the PTKP or
// TER mapping tables. Callers degrade to the conservative fallback and log;
// the payslip pipeline must not abort on it.
type UnknownTaxStatusError struct {
	Status TaxStatus
}

func (e *UnknownTaxStatusError) Error() string {
	return fmt.Sprintf("unknown tax status %q", string(e.Status))
}

// InvalidComponentDataError reports malformed monetary input from the
// payslip, e.g. a negative bruto. It propagates to the caller because it
// indicates upstream data corruption.
type InvalidComponentDataError struct {
	Reason string
}

func (e *InvalidComponentDataError) Error() string {
	return "invalid component data: " + e.Reason
}

// MissingContextError reports an absent employee or company reference,
// a caller programming error.
type MissingContextError struct {
	What string
}

func (e *MissingContextError) Error() string {
	return e.What + " is required for PPh21 calculation"
}

// ConfigurationUnavailableError reports empty or unreachable rate tables.
// Engines fall back to the statutory defaults and log at error level.
type ConfigurationUnavailableError struct {
	Reason string
}

func (e *ConfigurationUnavailableError) Error() string {
	return "tax configuration unavailable: " + e.Reason
}

// IsUnknownTaxStatus reports whether err is an UnknownTaxStatusError.
func IsUnknownTaxStatus(err error) bool {
	var target *UnknownTaxStatusError
	return errors.As(err, &target)
}
