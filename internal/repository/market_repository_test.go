package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/nurpe/freelance-pricing/internal/model"
)

func TestStaticMarketRepositoryList(t *testing.T) {
	repo := NewStaticMarketRepository()
	ctx := context.Background()

	cases := []struct {
		name   string
		filter model.MarketRateFilter
		want   int
	}{
		{name: "all", filter: model.MarketRateFilter{}, want: 27},
		{name: "country", filter: model.MarketRateFilter{Country: "usa"}, want: 10},
		{name: "role and country", filter: model.MarketRateFilter{Role: "FRONTEND", Country: "españa"}, want: 3},
		{name: "seniority", filter: model.MarketRateFilter{Seniority: "semi-senior"}, want: 10},
		{name: "no match", filter: model.MarketRateFilter{Role: "designer"}, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := repo.List(ctx, tc.filter)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(rows) != tc.want {
				t.Fatalf("List returned %d rows, want %d", len(rows), tc.want)
			}
		})
	}
}

func TestStaticMarketRepositoryFind(t *testing.T) {
	repo := NewStaticMarketRepository()

	got, err := repo.Find(context.Background(), "devops", "SENIOR", "usa")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got.AvgRate != 132 || got.Currency != "USD" {
		t.Fatalf("unexpected row: %+v", got)
	}

	if _, err := repo.Find(context.Background(), "devops", "junior", "usa"); !errors.Is(err, ErrMarketRateNotFound) {
		t.Fatalf("expected ErrMarketRateNotFound, got %v", err)
	}
}

func TestReferenceRatesIsACopy(t *testing.T) {
	rows := ReferenceRates()
	rows[0].AvgRate = -1
	if ReferenceRates()[0].AvgRate == -1 {
		t.Fatalf("ReferenceRates exposed the shared slice")
	}
	for _, r := range rows[1:] {
		if r.MinRate > r.AvgRate || r.AvgRate > r.MaxRate {
			t.Fatalf("inconsistent reference row: %+v", r)
		}
	}
}
