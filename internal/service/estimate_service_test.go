package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestEstimateServiceDecoding(t *testing.T) {
	svc := NewEstimateService("eur", zerolog.Nop())
	body := json.RawMessage(`{"project_type":"landing","pages":5,"complexity":2,"deadline":"normal"}`)

	cases := []struct {
		name     string
		body     json.RawMessage
		override string
		currency string
	}{
		{name: "default currency", body: body, currency: "EUR"},
		{name: "body currency", body: json.RawMessage(`{"project_type":"landing","pages":5,"complexity":2,"currency":"ARS"}`), currency: "ARS"},
		{name: "override wins", body: json.RawMessage(`{"project_type":"landing","currency":"ARS"}`), override: "usd", currency: "USD"},
		{name: "empty body currency", body: json.RawMessage(`{"project_type":"landing","pages":5,"complexity":2,"currency":""}`), currency: "EUR"},
		{name: "blank body currency", body: json.RawMessage(`{"project_type":"landing","currency":"  "}`), currency: "EUR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := svc.Estimate(context.Background(), EstimateInput{Category: "Web", Params: tc.body, Currency: tc.override})
			if err != nil {
				t.Fatalf("Estimate: %v", err)
			}
			if res.Currency != tc.currency {
				t.Fatalf("currency = %q, want %q", res.Currency, tc.currency)
			}
		})
	}
}

func TestEstimateServiceLanding(t *testing.T) {
	svc := NewEstimateService("USD", zerolog.Nop())
	res, err := svc.Estimate(context.Background(), EstimateInput{
		Category: "web",
		Params:   json.RawMessage(`{"project_type":"landing","pages":5,"complexity":2,"deadline":"normal"}`),
	})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if res.Hours != 70 || res.MinPrice != 945 || res.MaxPrice != 1155 {
		t.Fatalf("unexpected figures: %+v", res)
	}
}

func TestEstimateServiceErrors(t *testing.T) {
	svc := NewEstimateService("USD", zerolog.Nop())
	ctx := context.Background()

	for _, category := range []string{"", "hourly", "spaceship"} {
		if _, err := svc.Estimate(ctx, EstimateInput{Category: category}); !errors.Is(err, ErrUnknownCategory) {
			t.Fatalf("category %q: %v", category, err)
		}
	}
	if _, err := svc.Estimate(ctx, EstimateInput{Category: "backend", Params: json.RawMessage(`{"endpoints":"many"}`)}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bad body: %v", err)
	}
}

func TestHourly(t *testing.T) {
	svc := NewEstimateService("USD", zerolog.Nop())
	ctx := context.Background()

	res, err := svc.Hourly(ctx, json.RawMessage(`{"role":"fullstack","seniority":"semisenior","country":"argentina","monthly_expenses":1000,"profit_margin":20,"billable_hours":140}`), "")
	if err != nil {
		t.Fatalf("Hourly: %v", err)
	}
	if res.MinimumRate != 16 || res.RecommendedMin != 23 || res.RecommendedMax != 33 {
		t.Fatalf("unexpected rates: %+v", res)
	}

	eur := NewEstimateService("EUR", zerolog.Nop())
	res, err = eur.Hourly(ctx, json.RawMessage(`{"role":"fullstack","monthly_expenses":1000,"profit_margin":20,"billable_hours":140,"currency":""}`), "")
	if err != nil {
		t.Fatalf("Hourly with empty currency: %v", err)
	}
	if res.Currency != "EUR" {
		t.Fatalf("currency = %q, want EUR", res.Currency)
	}

	_, err = svc.Hourly(ctx, json.RawMessage(`{"role":"fullstack","monthly_expenses":1000,"billable_hours":0}`), "")
	if !errors.Is(err, ErrUnprocessable) {
		t.Fatalf("zero hours: %v", err)
	}
}

func TestDefaults(t *testing.T) {
	svc := NewEstimateService("EUR", zerolog.Nop())
	got := svc.Defaults(context.Background(), "usa", "senior", "")
	if got.Currency != "EUR" || got.DefaultHourlyRate != 14 || got.BillableHours != 160 || got.MonthlyExpenses != 4140 {
		t.Fatalf("Defaults = %+v", got)
	}
}
