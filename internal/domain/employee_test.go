package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTaxStatus(t *testing.T) {
	tests := []struct {
		raw      string
		expected TaxStatus
	}{
		{"TK0", TaxStatusTK0},
		{"TK/0", TaxStatusTK0},
		{"tk/0", TaxStatusTK0},
		{" K 1 ", TaxStatusK1},
		{"hb/3", TaxStatusHB3},
		{"", TaxStatus("")},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeTaxStatus(tt.raw), tt.raw)
	}
}

func TestTaxStatusKnown(t *testing.T) {
	for status := range DefaultPTKP() {
		assert.True(t, status.Known(), string(status))
	}
	assert.False(t, TaxStatus("XX9").Known())
	assert.False(t, TaxStatus("").Known())
	assert.False(t, TaxStatus("tk0").Known(), "codes are known only in canonical form")
}

func TestEmployeeIsFullTime(t *testing.T) {
	assert.True(t, (&Employee{EmploymentType: "Full-time"}).IsFullTime())
	assert.False(t, (&Employee{EmploymentType: "Part-time"}).IsFullTime())
	assert.False(t, (&Employee{EmploymentType: "Intern"}).IsFullTime())
	assert.False(t, (&Employee{EmploymentType: " "}).IsFullTime())
	assert.False(t, (&Employee{}).IsFullTime())
}

func TestUnknownTaxStatusError(t *testing.T) {
	err := &UnknownTaxStatusError{Status: "XX9"}
	assert.True(t, IsUnknownTaxStatus(err))
	assert.Contains(t, err.Error(), "XX9")

	assert.False(t, IsUnknownTaxStatus(&InvalidComponentDataError{Reason: "negative bruto"}))
}
