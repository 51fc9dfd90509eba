package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nurpe/freelance-pricing/internal/estimate"
	"github.com/nurpe/freelance-pricing/internal/model"
	"github.com/nurpe/freelance-pricing/internal/service"
)

var (
	paramsFile   string
	outputFormat string
)

var estimateCmd = &cobra.Command{
	Use:   "estimate <category>",
	Short: "Estimate hours, price range and milestones for a project",
	Long: `Estimate a project from a JSON params file.

Categories: web, backend, mobile, desktop, game, business-system, ai, automation.`,
	Args: cobra.ExactArgs(1),
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&paramsFile, "file", "f", "", "params JSON file (- for stdin)")
	estimateCmd.Flags().StringVar(&outputFormat, "format", "text", "output format (text, json)")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	raw, err := readParams(cmd, paramsFile)
	if err != nil {
		return err
	}

	svc := service.NewEstimateService(cfg.Budget.DefaultCurrency, log)
	result, err := svc.Estimate(cmd.Context(), service.EstimateInput{
		Category: args[0],
		Params:   raw,
		Currency: currency,
	})
	if err != nil {
		return err
	}

	if strings.EqualFold(outputFormat, "json") {
		return writeJSON(cmd.OutOrStdout(), result)
	}
	printEstimate(cmd.OutOrStdout(), result)
	return nil
}

func printEstimate(w io.Writer, r *model.EstimateResult) {
	n := estimate.FormatNumber
	fmt.Fprintf(w, "%s\n", r.ProjectDetails)
	fmt.Fprintf(w, "Horas estimadas: %s\n", n(r.Hours))
	fmt.Fprintf(w, "Precio: %s %s - %s\n", r.Currency, n(r.MinPrice), n(r.MaxPrice))
	fmt.Fprintf(w, "Tarifa: %s %s/hora\n\n", r.Currency, n(r.HourlyRate))

	fmt.Fprintln(w, "Hitos de pago:")
	for _, m := range r.Milestones {
		fmt.Fprintf(w, "  %-28s %3s%%  %s %s\n", m.Name, n(m.Percentage), r.Currency, n(m.Amount))
	}

	if len(r.AdditionalCosts) > 0 {
		fmt.Fprintln(w, "\nCostos adicionales:")
		for _, c := range r.AdditionalCosts {
			switch {
			case c.MonthlyCost != nil:
				fmt.Fprintf(w, "  %-28s %s %s/mes\n", c.Item, r.Currency, n(*c.MonthlyCost))
			case c.OneTimeCost != nil:
				fmt.Fprintf(w, "  %-28s %s %s\n", c.Item, r.Currency, n(*c.OneTimeCost))
			}
		}
	}

	fmt.Fprintf(w, "\n%s\n", r.Explanation)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
