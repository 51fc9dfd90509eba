package model

type ItemKind string

const (
	ItemKindHeader    ItemKind = "header"
	ItemKindMilestone ItemKind = "milestone"
	ItemKindRegular   ItemKind = "regular"
	ItemKindSubtotal  ItemKind = "subtotal"
)

type LineItem struct {
	Kind        ItemKind `json:"kind"`
	Service     string   `json:"service"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	IsRecurring bool     `json:"is_recurring,omitempty"`
	// Percentage is the share of the selected price a milestone row bills.
	Percentage float64 `json:"percentage,omitempty"`
}

// Billable reports whether the row contributes to the subtotal.
func (i LineItem) Billable() bool {
	switch i.Kind {
	case ItemKindMilestone, ItemKindRegular:
		return true
	case ItemKindHeader, ItemKindSubtotal:
		return false
	default:
		return false
	}
}

type PriceChoice string

const (
	PriceChoiceMin PriceChoice = "min"
	PriceChoiceMax PriceChoice = "max"
)

type BudgetDocument struct {
	ClientName     string `json:"client_name"`
	CompanyName    string `json:"company_name"`
	CompanyEmail   string `json:"company_email"`
	CompanyPhone   string `json:"company_phone"`
	CompanyAddress string `json:"company_address"`
	Signature      string `json:"signature"`
	Date           string `json:"date"`

	Category    Category    `json:"category"`
	Currency    string      `json:"currency"`
	MinPrice    float64     `json:"min_price"`
	MaxPrice    float64     `json:"max_price"`
	PriceChoice PriceChoice `json:"price_choice"`

	Items    []LineItem `json:"items"`
	Subtotal float64    `json:"subtotal"`

	HasDiscount        bool    `json:"has_discount"`
	DiscountPercentage float64 `json:"discount_percentage"`
	DiscountReason     string  `json:"discount_reason"`
	DiscountAmount     float64 `json:"discount_amount"`

	IncludeTax bool    `json:"include_tax"`
	TaxRate    float64 `json:"tax_rate"`
	TaxAmount  float64 `json:"tax_amount"`

	Total float64 `json:"total"`
}

type TotalRowKind string

const (
	TotalRowSubtotal TotalRowKind = "subtotal"
	TotalRowDiscount TotalRowKind = "discount"
	TotalRowTax      TotalRowKind = "tax"
	TotalRowTotal    TotalRowKind = "total"
)

type TotalRow struct {
	Kind   TotalRowKind `json:"kind"`
	Label  string       `json:"label"`
	Amount float64      `json:"amount"`
}

// Page is one printed sheet. Totals is only set on the last page.
type Page struct {
	Number    int        `json:"number"`
	Items     []LineItem `json:"items"`
	Continued bool       `json:"continued"`
	Totals    []TotalRow `json:"totals,omitempty"`
}

// PrintableBudget is everything a renderer needs; renderers never recompute numbers.
type PrintableBudget struct {
	Document BudgetDocument
	Pages    []Page
	Location string
}
