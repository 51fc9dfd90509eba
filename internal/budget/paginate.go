package budget

import (
	"fmt"

	"github.com/nurpe/freelance-pricing/internal/estimate"
	"github.com/nurpe/freelance-pricing/internal/model"
)

// DefaultItemsPerPage fits an A4 sheet with the header and contact blocks.
const DefaultItemsPerPage = 12

// Paginate splits the printable rows into pages of at most perPage rows.
// Every page but the last is marked as continued; only the last page carries
// the totals block. The subtotal row is rendered as part of that block.
func Paginate(doc model.BudgetDocument, perPage int) []model.Page {
	if perPage < 1 {
		perPage = DefaultItemsPerPage
	}

	rows := make([]model.LineItem, 0, len(doc.Items))
	for _, item := range doc.Items {
		if item.Kind != model.ItemKindSubtotal {
			rows = append(rows, item)
		}
	}

	var pages []model.Page
	for start := 0; start < len(rows) || len(pages) == 0; start += perPage {
		end := min(start+perPage, len(rows))
		pages = append(pages, model.Page{
			Number: len(pages) + 1,
			Items:  rows[start:end],
		})
	}

	for i := range pages[:len(pages)-1] {
		pages[i].Continued = true
	}
	pages[len(pages)-1].Totals = TotalRows(doc)
	return pages
}

// TotalRows lists the totals block: subtotal, optional discount and tax, total.
func TotalRows(doc model.BudgetDocument) []model.TotalRow {
	rows := []model.TotalRow{{Kind: model.TotalRowSubtotal, Label: "Subtotal", Amount: doc.Subtotal}}
	if doc.HasDiscount {
		label := fmt.Sprintf("Descuento (%s%%)", estimate.FormatNumber(doc.DiscountPercentage))
		if doc.DiscountReason != "" {
			label += " - " + doc.DiscountReason
		}
		rows = append(rows, model.TotalRow{Kind: model.TotalRowDiscount, Label: label, Amount: doc.DiscountAmount})
	}
	if doc.IncludeTax {
		rows = append(rows, model.TotalRow{
			Kind:   model.TotalRowTax,
			Label:  fmt.Sprintf("IVA (%s%%)", estimate.FormatNumber(doc.TaxRate)),
			Amount: doc.TaxAmount,
		})
	}
	return append(rows, model.TotalRow{Kind: model.TotalRowTotal, Label: "Total", Amount: doc.Total})
}

// Printable bundles the document with its pages for a renderer.
func Printable(doc model.BudgetDocument, perPage int, location string) model.PrintableBudget {
	return model.PrintableBudget{
		Document: doc,
		Pages:    Paginate(doc, perPage),
		Location: location,
	}
}
