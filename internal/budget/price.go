package budget

import (
	"fmt"

	"github.com/nurpe/freelance-pricing/internal/model"
	"github.com/nurpe/freelance-pricing/internal/rates"
)

func ParsePriceChoice(raw string) (model.PriceChoice, error) {
	switch c := model.PriceChoice(rates.Key(raw)); c {
	case model.PriceChoiceMin, model.PriceChoiceMax:
		return c, nil
	default:
		return "", fmt.Errorf("%w: price choice %q", ErrInvalidField, raw)
	}
}

// SelectedPrice is the price the current choice points at.
func SelectedPrice(doc model.BudgetDocument) float64 {
	if doc.PriceChoice == model.PriceChoiceMax {
		return doc.MaxPrice
	}
	return doc.MinPrice
}

// SelectPrice switches between the minimum and maximum price and regenerates
// the header and every milestone row from the newly selected figure.
func SelectPrice(doc model.BudgetDocument, choice model.PriceChoice) (model.BudgetDocument, error) {
	if choice != model.PriceChoiceMin && choice != model.PriceChoiceMax {
		return model.BudgetDocument{}, fmt.Errorf("%w: price choice %q", ErrInvalidField, choice)
	}

	doc.PriceChoice = choice
	price := SelectedPrice(doc)

	doc.Items = cloneItems(doc.Items)
	for i, item := range doc.Items {
		switch item.Kind {
		case model.ItemKindHeader:
			doc.Items[i].Price = price
		case model.ItemKindMilestone:
			doc.Items[i].Price = rates.Share(price, item.Percentage)
		case model.ItemKindRegular, model.ItemKindSubtotal:
		}
	}
	return refresh(doc), nil
}
