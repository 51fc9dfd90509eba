package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nurpe/freelance-pricing/internal/model"
	"github.com/nurpe/freelance-pricing/internal/repository"
)

//go:generate mockgen -destination=mocks/market_rate_source.go -package=mocks github.com/nurpe/freelance-pricing/internal/service MarketRateSource

type MarketRateSource interface {
	List(ctx context.Context, filter model.MarketRateFilter) ([]model.MarketRate, error)
	Find(ctx context.Context, role, seniority, country string) (*model.MarketRate, error)
}

type MarketService struct {
	source MarketRateSource
}

func NewMarketService(source MarketRateSource) *MarketService {
	return &MarketService{source: source}
}

func (s *MarketService) List(ctx context.Context, filter model.MarketRateFilter) ([]model.MarketRate, error) {
	rows, err := s.source.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []model.MarketRate{}
	}
	return rows, nil
}

func (s *MarketService) Lookup(ctx context.Context, role, seniority, country string) (*model.MarketRate, error) {
	role, seniority, country = strings.TrimSpace(role), strings.TrimSpace(seniority), strings.TrimSpace(country)
	if role == "" || seniority == "" || country == "" {
		return nil, fmt.Errorf("%w: role, seniority and country are required", ErrInvalidInput)
	}

	rate, err := s.source.Find(ctx, role, seniority, country)
	if err != nil {
		if errors.Is(err, repository.ErrMarketRateNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rate, nil
}
