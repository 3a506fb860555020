package domain

import (
	"strings"
	"time"
)

// EmploymentTypeFullTime is the only employment type eligible for TER
// withholding and the December annual correction. Other types are handled
// by a different calculation path outside this engine.
const EmploymentTypeFullTime = "Full-time"

// TaxStatus is a PTKP status code: marital prefix (TK = single, K = married,
// HB = married with combined spouse income) plus dependent count 0-3.
type TaxStatus string

// PTKP status codes per PMK-168/2023.
const (
	TaxStatusTK0 TaxStatus = "TK0"
	TaxStatusTK1 TaxStatus = "TK1"
	TaxStatusTK2 TaxStatus = "TK2"
	TaxStatusTK3 TaxStatus = "TK3"
	TaxStatusK0  TaxStatus = "K0"
	TaxStatusK1  TaxStatus = "K1"
	TaxStatusK2  TaxStatus = "K2"
	TaxStatusK3  TaxStatus = "K3"
	TaxStatusHB0 TaxStatus = "HB0"
	TaxStatusHB1 TaxStatus = "HB1"
	TaxStatusHB2 TaxStatus = "HB2"
	TaxStatusHB3 TaxStatus = "HB3"
)

var knownTaxStatuses = map[TaxStatus]struct{}{
	TaxStatusTK0: {}, TaxStatusTK1: {}, TaxStatusTK2: {}, TaxStatusTK3: {},
	TaxStatusK0: {}, TaxStatusK1: {}, TaxStatusK2: {}, TaxStatusK3: {},
	TaxStatusHB0: {}, TaxStatusHB1: {}, TaxStatusHB2: {}, TaxStatusHB3: {},
}

// Known reports whether the status is one of the twelve PTKP codes.
func (s TaxStatus) Known() bool {
	_, ok := knownTaxStatuses[s]
	return ok
}

// NormalizeTaxStatus canonicalizes status codes as they appear in HR master
// data: "tk/0", "TK 0" and "TK0" all normalize to TK0.
func NormalizeTaxStatus(raw string) TaxStatus {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "/", "")
	s = strings.ReplaceAll(s, " ", "")
	return TaxStatus(s)
}

// Employee carries the master-data fields the tax engine reads. It is a
// value object; the host application owns the employee record.
type Employee struct {
	ID             string     `yaml:"id" json:"id"`
	Name           string     `yaml:"name" json:"name"`
	TaxStatus      TaxStatus  `yaml:"tax_status" json:"tax_status"`
	EmploymentType string     `yaml:"employment_type" json:"employment_type"`
	DateOfJoining  *time.Time `yaml:"date_of_joining,omitempty" json:"date_of_joining,omitempty"`
	RelievingDate  *time.Time `yaml:"relieving_date,omitempty" json:"relieving_date,omitempty"`
}

// IsFullTime reports whether the employee is on the Full-time employment
// type and therefore in scope for TER and annual-correction withholding.
func (e *Employee) IsFullTime() bool {
	return e.EmploymentType == EmploymentTypeFullTime
}
