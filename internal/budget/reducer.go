package budget

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nurpe/freelance-pricing/internal/model"
)

type Field string

const (
	FieldClientName         Field = "client_name"
	FieldCompanyName        Field = "company_name"
	FieldCompanyEmail       Field = "company_email"
	FieldCompanyPhone       Field = "company_phone"
	FieldCompanyAddress     Field = "company_address"
	FieldSignature          Field = "signature"
	FieldDate               Field = "date"
	FieldDiscountReason     Field = "discount_reason"
	FieldHasDiscount        Field = "has_discount"
	FieldDiscountPercentage Field = "discount_percentage"
	FieldIncludeTax         Field = "include_tax"
	FieldTaxRate            Field = "tax_rate"
)

// Change is a single user edit. Value holds the raw text of the new value.
type Change struct {
	Field Field  `json:"field"`
	Value string `json:"value"`
}

// Apply returns doc with change applied. Only the discount and tax fields
// trigger a totals recomputation; text fields never touch the numbers.
func Apply(doc model.BudgetDocument, change Change) (model.BudgetDocument, error) {
	doc.Items = cloneItems(doc.Items)

	switch change.Field {
	case FieldClientName:
		doc.ClientName = change.Value
	case FieldCompanyName:
		doc.CompanyName = change.Value
	case FieldCompanyEmail:
		doc.CompanyEmail = change.Value
	case FieldCompanyPhone:
		doc.CompanyPhone = change.Value
	case FieldCompanyAddress:
		doc.CompanyAddress = change.Value
	case FieldSignature:
		doc.Signature = change.Value
	case FieldDate:
		doc.Date = change.Value
	case FieldDiscountReason:
		doc.DiscountReason = change.Value

	case FieldHasDiscount:
		v, err := parseBool(change)
		if err != nil {
			return model.BudgetDocument{}, err
		}
		doc.HasDiscount = v
		return withTotals(doc), nil
	case FieldDiscountPercentage:
		v, err := parseNumber(change)
		if err != nil {
			return model.BudgetDocument{}, err
		}
		if v < 0 || v > 100 {
			return model.BudgetDocument{}, fmt.Errorf("%w: discount_percentage must be between 0 and 100", ErrInvalidField)
		}
		doc.DiscountPercentage = v
		return withTotals(doc), nil
	case FieldIncludeTax:
		v, err := parseBool(change)
		if err != nil {
			return model.BudgetDocument{}, err
		}
		doc.IncludeTax = v
		return withTotals(doc), nil
	case FieldTaxRate:
		v, err := parseNumber(change)
		if err != nil {
			return model.BudgetDocument{}, err
		}
		if v < 0 {
			return model.BudgetDocument{}, fmt.Errorf("%w: tax_rate must not be negative", ErrInvalidField)
		}
		doc.TaxRate = v
		return withTotals(doc), nil

	default:
		return model.BudgetDocument{}, fmt.Errorf("%w: unknown field %q", ErrInvalidField, change.Field)
	}

	return doc, nil
}

func parseBool(change Change) (bool, error) {
	v, err := strconv.ParseBool(strings.TrimSpace(change.Value))
	if err != nil {
		return false, fmt.Errorf("%w: %s expects a boolean, got %q", ErrInvalidField, change.Field, change.Value)
	}
	return v, nil
}

// parseNumber accepts both "21.5" and "21,5"; an empty value reads as zero.
func parseNumber(change Change) (float64, error) {
	raw := strings.ReplaceAll(strings.TrimSpace(change.Value), ",", ".")
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s expects a number, got %q", ErrInvalidField, change.Field, change.Value)
	}
	return v, nil
}
