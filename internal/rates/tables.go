// Package rates holds the static lookup tables every estimate is derived from.
// Keys are matched case-insensitively and every table has a fallback value.
package rates

import (
	"math"
	"strings"
)

// Table is an immutable key → value map with a default for unknown keys.
type Table struct {
	values   map[string]float64
	fallback float64
}

func NewTable(fallback float64, values map[string]float64) Table {
	normalized := make(map[string]float64, len(values))
	for k, v := range values {
		normalized[Key(k)] = v
	}
	return Table{values: normalized, fallback: fallback}
}

// Lookup never fails: unknown keys yield the table fallback.
func (t Table) Lookup(key string) float64 {
	if v, ok := t.values[Key(key)]; ok {
		return v
	}
	return t.fallback
}

func (t Table) Has(key string) bool {
	_, ok := t.values[Key(key)]
	return ok
}

func (t Table) Fallback() float64 {
	return t.fallback
}

// Key normalizes an enum value the way every table stores it.
func Key(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

var (
	SeniorityMultipliers = NewTable(1, map[string]float64{
		"junior":     1,
		"semisenior": 1.5,
		"senior":     2.2,
	})

	RoleMultipliers = NewTable(1, map[string]float64{
		"frontend":  1,
		"backend":   1.1,
		"fullstack": 1.3,
		"devops":    1.4,
		"data":      1.35,
		"ia":        1.6,
	})

	CountryBaseRates = NewTable(20, map[string]float64{
		"argentina": 12,
		"mexico":    15,
		"colombia":  14,
		"españa":    25,
		"usa":       45,
		"europa":    30,
		"latam":     13,
	})

	CurrencyFactors = NewTable(1, map[string]float64{
		"usd": 1,
		"eur": 0.92,
		"ars": 850,
	})

	MonthlyExpenseBaselines = NewTable(1000, map[string]float64{
		"argentina": 300,
		"mexico":    500,
		"colombia":  400,
		"españa":    1500,
		"usa":       2500,
		"europa":    1800,
		"latam":     400,
	})

	ExpenseAdjustments = NewTable(1, map[string]float64{
		"junior":     0.6,
		"semisenior": 1,
		"senior":     1.8,
	})

	BillableHoursBySeniority = NewTable(140, map[string]float64{
		"junior":     140,
		"semisenior": 160,
		"senior":     160,
	})
)

// baselineHourlyRate is the USD rate of a mid-level fullstack developer.
const baselineHourlyRate = 15

// SupportedCurrencies are the codes with a non-fallback conversion factor.
var SupportedCurrencies = []string{"USD", "EUR", "ARS"}

func IsSupportedCurrency(code string) bool {
	return CurrencyFactors.Has(code)
}

func ConversionFactor(currency string) float64 {
	return CurrencyFactors.Lookup(currency)
}

// Convert turns a USD amount into the target currency without rounding.
func Convert(usd float64, currency string) float64 {
	return usd * ConversionFactor(currency)
}

func DefaultHourlyRate(currency string) float64 {
	return Round(baselineHourlyRate * ConversionFactor(currency))
}

func MonthlyExpenses(country, seniority, currency string) float64 {
	base := MonthlyExpenseBaselines.Lookup(country)
	return Round(base * ExpenseAdjustments.Lookup(seniority) * ConversionFactor(currency))
}

func BillableHours(seniority string) float64 {
	return BillableHoursBySeniority.Lookup(seniority)
}

// Round rounds half away from negative infinity, so -2.5 becomes -2.
func Round(x float64) float64 {
	return math.Floor(x + 0.5)
}

// Share is round(amount × pct/100), the amount billed by a percentage milestone.
func Share(amount, pct float64) float64 {
	return Round(amount * (pct / 100))
}
