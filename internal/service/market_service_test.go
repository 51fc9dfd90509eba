package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/nurpe/freelance-pricing/internal/model"
	"github.com/nurpe/freelance-pricing/internal/repository"
	"github.com/nurpe/freelance-pricing/internal/service/mocks"
)

func TestMarketLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockMarketRateSource(ctrl)
	svc := NewMarketService(source)
	ctx := context.Background()

	want := &model.MarketRate{Role: "Frontend", Seniority: "Senior", Country: "USA", Currency: "USD", MinRate: 60, MaxRate: 100, AvgRate: 80}
	source.EXPECT().Find(gomock.Any(), "frontend", "senior", "usa").Return(want, nil)
	got, err := svc.Lookup(ctx, " frontend ", "senior", "usa")
	if err != nil || got != want {
		t.Fatalf("Lookup = %+v, %v", got, err)
	}

	source.EXPECT().Find(gomock.Any(), "cobol", "senior", "usa").Return(nil, repository.ErrMarketRateNotFound)
	if _, err := svc.Lookup(ctx, "cobol", "senior", "usa"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing row: %v", err)
	}

	if _, err := svc.Lookup(ctx, "frontend", "", "usa"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing seniority: %v", err)
	}
}

func TestMarketList(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockMarketRateSource(ctrl)
	svc := NewMarketService(source)

	filter := model.MarketRateFilter{Country: "España"}
	source.EXPECT().List(gomock.Any(), filter).Return(nil, nil)
	rows, err := svc.List(context.Background(), filter)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("rows = %#v, want empty slice", rows)
	}

	boom := errors.New("connection reset")
	source.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, boom)
	if _, err := svc.List(context.Background(), model.MarketRateFilter{}); !errors.Is(err, boom) {
		t.Fatalf("List error = %v", err)
	}
}

func TestMarketServiceWithStaticDataset(t *testing.T) {
	svc := NewMarketService(repository.NewStaticMarketRepository())
	rows, err := svc.List(context.Background(), model.MarketRateFilter{Country: "USA"})
	if err != nil || len(rows) != 10 {
		t.Fatalf("List = %d rows, %v", len(rows), err)
	}
}
