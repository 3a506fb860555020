package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInput = `
employee:
  id: EMP-001
  name: Sample Employee
  tax_status: TK0
  employment_type: Full-time
slips:
  - id: SLIP-NOV
    year: 2025
    month: 11
    earnings:
      - component: Gaji Pokok
        amount: 12000000
        is_tax_applicable: true
    deductions:
      - component: Biaya Jabatan
        amount: 500000
  - id: SLIP-DEC
    year: 2025
    month: 12
    earnings:
      - component: Gaji Pokok
        amount: 12000000
        is_tax_applicable: true
    deductions:
      - component: Biaya Jabatan
        amount: 500000
`

func writeSampleInput(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleInput), 0o644))
	return path
}

func runCommand(t *testing.T, args ...string) map[string]any {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())

	var result map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &result), "output: %s", out.String())
	return result
}

func TestMonthlyCommand(t *testing.T) {
	path := writeSampleInput(t)

	result := runCommand(t, "monthly", path, "--month", "11")

	// taxable 11,500,000 in the TER A 3.5% band.
	assert.Equal(t, "402500", result["pph21"])
	assert.Equal(t, "TER A", result["ter_category"])
	assert.Equal(t, true, result["employment_type_checked"])
}

func TestMonthlyCommandDefaultsToLastSlip(t *testing.T) {
	path := writeSampleInput(t)

	result := runCommand(t, "monthly", path)
	assert.Equal(t, "402500", result["pph21"])
}

func TestDecemberCommand(t *testing.T) {
	path := writeSampleInput(t)

	result := runCommand(t, "december", path, "--policy", "force_annual")

	// Annualized: 144,000,000 bruto, 6,000,000 biaya jabatan, PTKP
	// 54,000,000, PKP 84,000,000.
	assert.Equal(t, "84000000", result["pkp_annual"])
	assert.Equal(t, "15%", result["rate"])
	assert.Equal(t, "6600000", result["pph21_annual"])
}

func TestDecemberCommandPartialYearAuto(t *testing.T) {
	path := writeSampleInput(t)

	// Only two slip months on file and no joining date: auto policy keeps
	// monthly TER on December's figures.
	result := runCommand(t, "december", path)
	assert.Equal(t, "402500", result["pph21_bulan"])
	assert.Equal(t, "0", result["pkp_annual"])
}

func TestMonthlyCommandConsoleFormat(t *testing.T) {
	path := writeSampleInput(t)

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"monthly", path, "--format", "console"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "Rp 402.500")
	assert.Contains(t, out.String(), "TER A")
}

func TestMonthlyCommandUnknownFormat(t *testing.T) {
	path := writeSampleInput(t)

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"monthly", path, "--format", "xml"})
	assert.Error(t, root.Execute())
}

func TestMonthlyCommandMissingFile(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"monthly", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, root.Execute())
}
