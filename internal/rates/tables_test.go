package rates

import (
	"math"
	"testing"
)

func TestTableLookup(t *testing.T) {
	cases := []struct {
		name  string
		table Table
		key   string
		want  float64
	}{
		{name: "exact", table: SeniorityMultipliers, key: "senior", want: 2.2},
		{name: "case insensitive", table: RoleMultipliers, key: "FullStack", want: 1.3},
		{name: "trimmed", table: CountryBaseRates, key: "  usa ", want: 45},
		{name: "non ascii key", table: CountryBaseRates, key: "España", want: 25},
		{name: "unknown role", table: RoleMultipliers, key: "designer", want: 1},
		{name: "unknown country", table: CountryBaseRates, key: "narnia", want: 20},
		{name: "empty currency", table: CurrencyFactors, key: "", want: 1},
		{name: "unknown expenses", table: MonthlyExpenseBaselines, key: "peru", want: 1000},
		{name: "unknown billable", table: BillableHoursBySeniority, key: "lead", want: 140},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.table.Lookup(tc.key); got != tc.want {
				t.Fatalf("Lookup(%q) = %v, want %v", tc.key, got, tc.want)
			}
		})
	}
}

func TestDefaultHourlyRate(t *testing.T) {
	cases := map[string]float64{
		"USD": 15,
		"EUR": 14, // 13.8
		"ARS": 12750,
		"XXX": 15,
	}
	for currency, want := range cases {
		if got := DefaultHourlyRate(currency); got != want {
			t.Fatalf("DefaultHourlyRate(%s) = %v, want %v", currency, got, want)
		}
	}
}

func TestMonthlyExpenses(t *testing.T) {
	cases := []struct {
		country, seniority, currency string
		want                         float64
	}{
		{"argentina", "junior", "USD", 180},
		{"usa", "senior", "USD", 4500},
		{"españa", "semisenior", "EUR", 1380},
		{"argentina", "semisenior", "ARS", 255000},
		{"unknown", "unknown", "USD", 1000},
	}
	for _, tc := range cases {
		if got := MonthlyExpenses(tc.country, tc.seniority, tc.currency); got != tc.want {
			t.Fatalf("MonthlyExpenses(%s, %s, %s) = %v, want %v", tc.country, tc.seniority, tc.currency, got, tc.want)
		}
	}
}

func TestBillableHours(t *testing.T) {
	if got := BillableHours("Senior"); got != 160 {
		t.Fatalf("BillableHours(Senior) = %v, want 160", got)
	}
	if got := BillableHours("intern"); got != 140 {
		t.Fatalf("BillableHours(intern) = %v, want 140", got)
	}
}

func TestRound(t *testing.T) {
	cases := map[float64]float64{
		0.5:   1,
		1.49:  1,
		2.5:   3,
		-2.5:  -2,
		-2.51: -3,
		70:    70,
	}
	for in, want := range cases {
		if got := Round(in); got != want {
			t.Fatalf("Round(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestShare(t *testing.T) {
	if got := Share(1150, 30); got != 345 {
		t.Fatalf("Share(1150, 30) = %v, want 345", got)
	}
	if got := Share(0, 40); got != 0 {
		t.Fatalf("Share(0, 40) = %v, want 0", got)
	}
}

func TestConvert(t *testing.T) {
	if got := Convert(10, "ars"); got != 8500 {
		t.Fatalf("Convert(10, ars) = %v, want 8500", got)
	}
	if got := Convert(100, "EUR"); math.Abs(got-92) > 1e-9 {
		t.Fatalf("Convert(100, EUR) = %v, want 92", got)
	}
	if !IsSupportedCurrency("eur") || IsSupportedCurrency("GBP") {
		t.Fatalf("IsSupportedCurrency mismatch")
	}
}
