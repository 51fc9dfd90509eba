package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nurpe/freelance-pricing/internal/estimate"
	"github.com/nurpe/freelance-pricing/internal/model"
	"github.com/nurpe/freelance-pricing/internal/service"
)

var rateParams model.HourlyRateParams

var rateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Calculate a recommended hourly rate",
	Long: `Calculate the minimum and recommended hourly rate for a profile.

Expenses and billable hours default to the figures for the country and seniority.`,
	Args: cobra.NoArgs,
	RunE: runRate,
}

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Show default expenses, billable hours and hourly rate",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewEstimateService(cfg.Budget.DefaultCurrency, log)
		return writeJSON(cmd.OutOrStdout(), svc.Defaults(cmd.Context(), rateParams.Country, rateParams.Seniority, currency))
	},
}

func init() {
	for _, c := range []*cobra.Command{rateCmd, defaultsCmd} {
		c.Flags().StringVar(&rateParams.Country, "country", "argentina", "country")
		c.Flags().StringVar(&rateParams.Seniority, "seniority", "semisenior", "seniority (junior, semisenior, senior)")
	}
	rateCmd.Flags().StringVar(&rateParams.Role, "role", "fullstack", "role")
	rateCmd.Flags().Float64Var(&rateParams.MonthlyExpenses, "expenses", 0, "monthly expenses in USD")
	rateCmd.Flags().Float64Var(&rateParams.ProfitMargin, "margin", 20, "profit margin percentage")
	rateCmd.Flags().Float64Var(&rateParams.BillableHours, "hours", 0, "billable hours per month")
	rateCmd.Flags().StringVar(&outputFormat, "format", "text", "output format (text, json)")
}

func runRate(cmd *cobra.Command, args []string) error {
	p := rateParams
	defaults := estimate.Defaults(p.Country, p.Seniority, "USD")
	if !cmd.Flags().Changed("expenses") {
		p.MonthlyExpenses = defaults.MonthlyExpenses
	}
	if !cmd.Flags().Changed("hours") {
		p.BillableHours = defaults.BillableHours
	}
	p.Currency = cfg.Budget.DefaultCurrency

	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	svc := service.NewEstimateService(cfg.Budget.DefaultCurrency, log)
	result, err := svc.Hourly(cmd.Context(), raw, currency)
	if err != nil {
		return err
	}

	if strings.EqualFold(outputFormat, "json") {
		return writeJSON(cmd.OutOrStdout(), result)
	}
	w := cmd.OutOrStdout()
	n := estimate.FormatNumber
	fmt.Fprintf(w, "Tarifa mínima:       %s %s/hora\n", result.Currency, n(result.MinimumRate))
	fmt.Fprintf(w, "Tarifa recomendada:  %s %s - %s/hora\n", result.Currency, n(result.RecommendedMin), n(result.RecommendedMax))
	fmt.Fprintf(w, "\n%s\n", result.Explanation)
	return nil
}
