// Package cmd provides the pricing-cli commands.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nurpe/freelance-pricing/internal/config"
	"github.com/nurpe/freelance-pricing/internal/logger"
)

var (
	verbose  bool
	currency string

	cfg *config.Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pricing-cli",
	Short: "Estimate freelance project prices and print budgets",
	Long: `pricing-cli runs the estimation engine locally.

Examples:
  pricing-cli estimate web -f landing.json
  pricing-cli estimate backend -f api.json --currency ars --format json
  pricing-cli rate --role backend --seniority senior --country argentina
  pricing-cli budget mobile -f app.json -o presupuesto.pdf --client "ACME"`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded

		level := "warn"
		if verbose {
			level = "debug"
		}
		log = logger.NewWithWriter("development", level, os.Stderr)
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&currency, "currency", "", "target currency (USD, EUR, ARS); overrides the params file")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(rateCmd)
	rootCmd.AddCommand(defaultsCmd)
	rootCmd.AddCommand(budgetCmd)
	rootCmd.AddCommand(marketCmd)
}

// readParams loads a params file; "-" reads stdin.
func readParams(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}
