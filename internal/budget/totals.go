package budget

import (
	"github.com/shopspring/decimal"

	"github.com/nurpe/freelance-pricing/internal/model"
)

const moneyPlaces = 2

var hundred = decimal.NewFromInt(100)

// Totals is the derived money pipeline of a document.
type Totals struct {
	Subtotal       float64
	DiscountAmount float64
	AfterDiscount  float64
	TaxAmount      float64
	Total          float64
}

// ComputeTotals applies discount then tax to the subtotal. It depends only on
// its arguments.
func ComputeTotals(subtotal float64, hasDiscount bool, discountPct float64, includeTax bool, taxRate float64) Totals {
	sub := decimal.NewFromFloat(subtotal)

	discount := decimal.Zero
	if hasDiscount {
		discount = sub.Mul(decimal.NewFromFloat(discountPct)).Div(hundred).Round(moneyPlaces)
	}
	after := sub.Sub(discount)

	tax := decimal.Zero
	if includeTax {
		tax = after.Mul(decimal.NewFromFloat(taxRate)).Div(hundred).Round(moneyPlaces)
	}
	total := after.Add(tax)

	return Totals{
		Subtotal:       sub.InexactFloat64(),
		DiscountAmount: discount.InexactFloat64(),
		AfterDiscount:  after.InexactFloat64(),
		TaxAmount:      tax.InexactFloat64(),
		Total:          total.Round(moneyPlaces).InexactFloat64(),
	}
}

// Subtotal sums the billable rows.
func Subtotal(items []model.LineItem) float64 {
	sum := decimal.Zero
	for _, item := range items {
		if item.Billable() {
			sum = sum.Add(decimal.NewFromFloat(item.Price))
		}
	}
	return sum.InexactFloat64()
}

func withTotals(doc model.BudgetDocument) model.BudgetDocument {
	t := ComputeTotals(doc.Subtotal, doc.HasDiscount, doc.DiscountPercentage, doc.IncludeTax, doc.TaxRate)
	doc.DiscountAmount = t.DiscountAmount
	doc.TaxAmount = t.TaxAmount
	doc.Total = t.Total
	return doc
}

// refresh recomputes the subtotal row from the items, then the totals.
func refresh(doc model.BudgetDocument) model.BudgetDocument {
	doc.Subtotal = Subtotal(doc.Items)
	for i := range doc.Items {
		if doc.Items[i].Kind == model.ItemKindSubtotal {
			doc.Items[i].Price = doc.Subtotal
		}
	}
	return withTotals(doc)
}

func cloneItems(items []model.LineItem) []model.LineItem {
	out := make([]model.LineItem, len(items))
	copy(out, items)
	return out
}
