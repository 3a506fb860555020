package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/payrollid/pph21-calculator/internal/calculation"
	"github.com/payrollid/pph21-calculator/internal/config"
	"github.com/payrollid/pph21-calculator/internal/domain"
	"github.com/payrollid/pph21-calculator/internal/output"
)

// inputFile is the YAML document the CLI reads: one employee plus the
// salary slips to calculate over.
type inputFile struct {
	Employee domain.Employee     `yaml:"employee"`
	Slips    []domain.SalarySlip `yaml:"slips"`
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		format     string
	)

	root := &cobra.Command{
		Use:   "pph21calc",
		Short: "PPh 21 withholding calculator (TER monthly + December reconciliation)",
		Long: `pph21calc computes Indonesian PPh 21 payroll withholding from a YAML
payslip file: monthly withholding under the PMK-168/2023 effective-rate
(TER) method, and the December annual progressive reconciliation.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "tax configuration YAML (statutory defaults when omitted)")
	root.PersistentFlags().StringVarP(&format, "format", "f", "json", "output format: json | console")

	root.AddCommand(newMonthlyCmd(&configPath, &format))
	root.AddCommand(newDecemberCmd(&configPath, &format))
	return root
}

func newMonthlyCmd(configPath, format *string) *cobra.Command {
	var month int

	cmd := &cobra.Command{
		Use:   "monthly <input.yaml>",
		Short: "Compute one month's TER withholding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := calculation.NewStdLogger(os.Stderr)
			provider, err := loadProvider(*configPath, logger)
			if err != nil {
				return err
			}
			input, err := loadInput(args[0])
			if err != nil {
				return err
			}

			slip := pickSlip(input.Slips, month)
			if slip == nil {
				return fmt.Errorf("no slip for month %d in %s", month, args[0])
			}

			engine := calculation.NewEngine(provider, calculation.WithLogger(logger))
			result, err := engine.ComputeMonthlyTax(&input.Employee, slip)
			if err != nil {
				return err
			}
			return render(cmd, *format, &output.Report{Employee: &input.Employee, Monthly: result})
		},
	}
	cmd.Flags().IntVarP(&month, "month", "m", 0, "slip month to calculate (default: last slip in file)")
	return cmd
}

func newDecemberCmd(configPath, format *string) *cobra.Command {
	var (
		year   int
		policy string
	)

	cmd := &cobra.Command{
		Use:   "december <input.yaml>",
		Short: "Compute the December annual correction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := calculation.NewStdLogger(os.Stderr)
			provider, err := loadProvider(*configPath, logger)
			if err != nil {
				return err
			}
			input, err := loadInput(args[0])
			if err != nil {
				return err
			}

			fiscalYear := year
			if fiscalYear == 0 {
				fiscalYear = latestYear(input.Slips)
			}
			if fiscalYear == 0 {
				return fmt.Errorf("no slips in %s and no --year given", args[0])
			}

			engine := calculation.NewEngine(provider, calculation.WithLogger(logger))
			result, err := engine.ComputeAnnualCorrection(&input.Employee, input.Slips, fiscalYear, calculation.NormalizePolicy(policy))
			if err != nil {
				return err
			}
			return render(cmd, *format, &output.Report{Employee: &input.Employee, Annual: result})
		},
	}
	cmd.Flags().IntVarP(&year, "year", "y", 0, "fiscal year (default: latest slip year)")
	cmd.Flags().StringVarP(&policy, "policy", "p", "auto", "partial-year policy: auto | force_annual | force_monthly")
	return cmd
}

// loadProvider builds the configuration provider, falling back to the
// statutory defaults when no file is given. Fallback sections of a given
// file are already normalized by the parser; an absent file is reported
// per section so a misconfigured deployment is visible in the logs.
func loadProvider(path string, logger calculation.Logger) (*config.StaticProvider, error) {
	if path == "" {
		var cfg config.TaxConfiguration
		for _, section := range cfg.Normalize() {
			logger.Errorf("no tax configuration supplied, %s falls back to statutory defaults", section)
		}
		return config.NewStaticProvider(cfg), nil
	}

	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	return config.NewStaticProvider(*cfg), nil
}

func loadInput(path string) (*inputFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	var input inputFile
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse input file: %w", err)
	}
	return &input, nil
}

func pickSlip(slips []domain.SalarySlip, month int) *domain.SalarySlip {
	if len(slips) == 0 {
		return nil
	}
	if month == 0 {
		return &slips[len(slips)-1]
	}
	for i := len(slips) - 1; i >= 0; i-- {
		if slips[i].Month == time.Month(month) {
			return &slips[i]
		}
	}
	return nil
}

func latestYear(slips []domain.SalarySlip) int {
	year := 0
	for i := range slips {
		if slips[i].Year > year {
			year = slips[i].Year
		}
	}
	return year
}

func render(cmd *cobra.Command, format string, report *output.Report) error {
	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		return fmt.Errorf("unknown output format %q", format)
	}
	data, err := formatter.Format(report)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
