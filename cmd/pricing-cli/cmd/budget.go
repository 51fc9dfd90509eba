package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nurpe/freelance-pricing/internal/budget"
	"github.com/nurpe/freelance-pricing/internal/excel"
	"github.com/nurpe/freelance-pricing/internal/model"
	"github.com/nurpe/freelance-pricing/internal/pdf"
	"github.com/nurpe/freelance-pricing/internal/service"
)

var (
	outputPath  string
	priceChoice string
	edits       = map[budget.Field]*string{}
)

var budgetCmd = &cobra.Command{
	Use:   "budget <category>",
	Short: "Estimate a project and write the budget as PDF or XLSX",
	Long: `Estimate a project (or an hourly rate, with category "hourly") and
print the resulting budget. The output format follows the -o extension.`,
	Args: cobra.ExactArgs(1),
	RunE: runBudget,
}

func init() {
	budgetCmd.Flags().StringVarP(&paramsFile, "file", "f", "", "params JSON file (- for stdin)")
	budgetCmd.Flags().StringVarP(&outputPath, "output", "o", "presupuesto.pdf", "output file (.pdf or .xlsx)")
	budgetCmd.Flags().StringVar(&priceChoice, "price", "", "price to quote (min, max)")

	flags := []struct {
		field budget.Field
		name  string
		usage string
	}{
		{budget.FieldClientName, "client", "client name"},
		{budget.FieldCompanyName, "company", "your company name"},
		{budget.FieldCompanyEmail, "email", "your contact email"},
		{budget.FieldCompanyPhone, "phone", "your contact phone"},
		{budget.FieldCompanyAddress, "address", "your company address"},
		{budget.FieldSignature, "signature", "signature text"},
		{budget.FieldDiscountPercentage, "discount", "discount percentage"},
		{budget.FieldDiscountReason, "discount-reason", "reason shown next to the discount"},
		{budget.FieldTaxRate, "tax", "tax rate percentage"},
	}
	for _, f := range flags {
		edits[f.field] = budgetCmd.Flags().String(f.name, "", f.usage)
	}
}

func runBudget(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	raw, err := readParams(cmd, paramsFile)
	if err != nil {
		return err
	}

	estimates := service.NewEstimateService(cfg.Budget.DefaultCurrency, log)
	var src budget.Source
	if c, ok := model.ParseCategory(args[0]); ok && c == model.CategoryHourly {
		hourly, err := estimates.Hourly(ctx, raw, currency)
		if err != nil {
			return err
		}
		src = budget.Source{Category: model.CategoryHourly, Hourly: hourly}
	} else {
		result, err := estimates.Estimate(ctx, service.EstimateInput{Category: args[0], Params: raw, Currency: currency})
		if err != nil {
			return err
		}
		src = budget.Source{Category: result.ProjectType, Estimate: result}
	}

	budgets := service.NewBudgetService(cfg.Budget, log, pdf.NewGenerator(), excel.NewGenerator())
	view, err := budgets.Create(ctx, src)
	if err != nil {
		return err
	}

	changes := pendingEdits()
	if len(changes) > 0 || priceChoice != "" {
		if _, err := budgets.ToggleEdit(ctx, view.ID); err != nil {
			return err
		}
	}
	for _, change := range changes {
		if _, err := budgets.Apply(ctx, view.ID, change); err != nil {
			return err
		}
	}
	if priceChoice != "" {
		if _, err := budgets.SelectPrice(ctx, view.ID, priceChoice); err != nil {
			return err
		}
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(outputPath)), ".")
	rendered, err := budgets.Render(ctx, view.ID, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, rendered.Content, 0o644); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Presupuesto guardado en %s\n", outputPath)
	return nil
}

// pendingEdits turns the contact, discount and tax flags into reducer
// changes. Toggles come before the figures they enable.
func pendingEdits() []budget.Change {
	var changes []budget.Change
	if v := *edits[budget.FieldDiscountPercentage]; v != "" {
		changes = append(changes, budget.Change{Field: budget.FieldHasDiscount, Value: "true"})
	}
	if v := *edits[budget.FieldTaxRate]; v != "" {
		changes = append(changes, budget.Change{Field: budget.FieldIncludeTax, Value: "true"})
	}
	for _, field := range []budget.Field{
		budget.FieldClientName,
		budget.FieldCompanyName,
		budget.FieldCompanyEmail,
		budget.FieldCompanyPhone,
		budget.FieldCompanyAddress,
		budget.FieldSignature,
		budget.FieldDiscountPercentage,
		budget.FieldDiscountReason,
		budget.FieldTaxRate,
	} {
		if v := *edits[field]; v != "" {
			changes = append(changes, budget.Change{Field: field, Value: v})
		}
	}
	return changes
}
