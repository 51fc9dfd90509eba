package estimate

import (
	"testing"

	"github.com/nurpe/freelance-pricing/internal/model"
)

func TestCalculateHourlyRate(t *testing.T) {
	res := CalculateHourlyRate(model.HourlyRateParams{
		Role:            "fullstack",
		Seniority:       "semisenior",
		Country:         "argentina",
		Currency:        "USD",
		MonthlyExpenses: 300,
		ProfitMargin:    20,
		BillableHours:   160,
	})

	if res.MinimumRate != 16 || res.RecommendedMin != 23 || res.RecommendedMax != 33 {
		t.Fatalf("rates = %v/%v/%v, want 16/23/33", res.MinimumRate, res.RecommendedMin, res.RecommendedMax)
	}
	want := "Para un fullstack semisenior en argentina, considerando 160h facturables/mes y gastos de USD 300, tu tarifa debe cubrir costos y generar un 20% de margen."
	if res.Explanation != want {
		t.Fatalf("explanation = %q", res.Explanation)
	}
	if res.WorkingHours != 160 || res.MonthlyExpenses != 300 {
		t.Fatalf("echo fields = %v/%v", res.WorkingHours, res.MonthlyExpenses)
	}
}

func TestHourlyRateOrdering(t *testing.T) {
	seniorities := []string{"junior", "semisenior", "senior", "unknown"}
	roles := []string{"frontend", "backend", "fullstack", "devops", "data", "ia"}
	countries := []string{"argentina", "mexico", "colombia", "españa", "usa", "europa", "latam"}
	currencies := []string{"USD", "EUR", "ARS"}

	for _, s := range seniorities {
		for _, r := range roles {
			for _, c := range countries {
				for _, cur := range currencies {
					res := CalculateHourlyRate(model.HourlyRateParams{
						Role: r, Seniority: s, Country: c, Currency: cur,
						MonthlyExpenses: 1000, ProfitMargin: 20, BillableHours: 160,
					})
					if res.MinimumRate < 0 {
						t.Fatalf("%s/%s/%s/%s: negative minimum rate", s, r, c, cur)
					}
					if res.RecommendedMin > res.RecommendedMax {
						t.Fatalf("%s/%s/%s/%s: recommended min %v > max %v", s, r, c, cur, res.RecommendedMin, res.RecommendedMax)
					}
				}
			}
		}
	}
}

func TestExpenseFloorCanExceedMarket(t *testing.T) {
	res := CalculateHourlyRate(model.HourlyRateParams{
		Role: "frontend", Seniority: "junior", Country: "argentina", Currency: "USD",
		MonthlyExpenses: 5000, ProfitMargin: 100, BillableHours: 10,
	})
	if res.MinimumRate != 1000 {
		t.Fatalf("minimum rate = %v, want 1000", res.MinimumRate)
	}
	if res.MinimumRate <= res.RecommendedMin {
		t.Fatalf("expected the expense floor to exceed the market rate")
	}
}

func TestZeroBillableHours(t *testing.T) {
	res := CalculateHourlyRate(model.HourlyRateParams{Role: "backend", Seniority: "senior", Country: "usa", MonthlyExpenses: 2000})
	if IsFinite(res) {
		t.Fatalf("zero billable hours should not produce finite rates: %+v", res)
	}

	ok := CalculateHourlyRate(model.HourlyRateParams{Role: "backend", Seniority: "senior", Country: "usa", MonthlyExpenses: 2000, BillableHours: 160})
	if !IsFinite(ok) {
		t.Fatalf("expected finite rates: %+v", ok)
	}
}

func TestDefaults(t *testing.T) {
	got := Defaults("usa", "senior", "eur")
	want := model.RateDefaults{MonthlyExpenses: 4140, BillableHours: 160, DefaultHourlyRate: 14, Currency: "EUR"}
	if got != want {
		t.Fatalf("Defaults = %+v, want %+v", got, want)
	}
}
