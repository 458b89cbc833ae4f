package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/eakarsu/AiTaxPrep-sub001/internal/calculation"
	"github.com/eakarsu/AiTaxPrep-sub001/internal/config"
	"github.com/eakarsu/AiTaxPrep-sub001/internal/domain"
	"github.com/eakarsu/AiTaxPrep-sub001/internal/output"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "taxcore %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "taxcore",
	Short: "State tax and depreciation calculator CLI",
	Long:  "Computes state income tax returns and multi-year depreciation schedules from a federal return summary and an asset portfolio",
}

// newEngine builds the engine for a command, honoring --rates and --debug.
func newEngine(cmd *cobra.Command) (*calculation.Engine, error) {
	ratesFile, _ := cmd.Flags().GetString("rates")
	registry, err := config.LoadRegistryWithOverrides(ratesFile)
	if err != nil {
		return nil, err
	}
	engine := calculation.NewEngineWithRegistry(registry)
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.Debug = true
		engine.SetLogger(simpleCLILogger{})
	}
	return engine, nil
}

func formatterFor(cmd *cobra.Command) (output.Formatter, error) {
	name, _ := cmd.Flags().GetString("format")
	if f := output.GetFormatterByName(name); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("unsupported format: %s", name)
}

var stateCmd = &cobra.Command{
	Use:   "state [input-file]",
	Short: "Generate a state income tax return",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		filing, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		engine, err := newEngine(cmd)
		if err != nil {
			log.Fatal(err)
		}
		result, err := engine.GenerateStateReturn(filing.StateCode, &filing.Federal, &filing.StateData)
		if err != nil {
			log.Fatal(err)
		}

		formatter, err := formatterFor(cmd)
		if err != nil {
			log.Fatal(err)
		}
		data, err := formatter.FormatStateReturn(result)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var depreciationCmd = &cobra.Command{
	Use:   "depreciation [input-file]",
	Short: "Calculate depreciation schedules and elections for an asset portfolio",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		filing, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		engine, err := newEngine(cmd)
		if err != nil {
			log.Fatal(err)
		}

		taxYear, _ := cmd.Flags().GetInt("year")
		if taxYear == 0 {
			taxYear = filing.Federal.TaxYear
		}

		report := &domain.DepreciationReport{
			TaxYear:        taxYear,
			BusinessIncome: filing.BusinessIncome,
		}
		for i := range filing.Assets {
			result, err := engine.CalculateDepreciation(&filing.Assets[i])
			if err != nil {
				log.Fatal(err)
			}
			report.Assets = append(report.Assets, *result)
		}
		portfolio, err := engine.CalculateTotalDepreciation(filing.Assets, taxYear)
		if err != nil {
			log.Fatal(err)
		}
		report.Portfolio = portfolio
		report.Section179 = engine.ValidateSection179(filing.Assets, filing.BusinessIncome)
		report.MidQuarter = engine.CheckMidQuarterConvention(filing.Assets)

		formatter, err := formatterFor(cmd)
		if err != nil {
			log.Fatal(err)
		}
		data, err := formatter.FormatDepreciation(report)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate an input file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Input file %s is valid\n", args[0])
	},
}

func main() {
	rootCmd.PersistentFlags().String("format", "console", "Output format (console, json, csv)")
	rootCmd.PersistentFlags().String("rates", "", "Optional state rates override file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	depreciationCmd.Flags().Int("year", 0, "Tax year for portfolio aggregation (defaults to the federal tax year)")

	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(depreciationCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
