package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/nurpe/freelance-pricing/internal/model"
)

var ErrMarketRateNotFound = errors.New("market rate not found")

// StaticMarketRepository serves the built-in dataset from memory.
type StaticMarketRepository struct {
	rows []model.MarketRate
}

func NewStaticMarketRepository() *StaticMarketRepository {
	return &StaticMarketRepository{rows: ReferenceRates()}
}

func (r *StaticMarketRepository) List(_ context.Context, filter model.MarketRateFilter) ([]model.MarketRate, error) {
	result := make([]model.MarketRate, 0, len(r.rows))
	for _, row := range r.rows {
		if matches(row.Role, filter.Role) &&
			matches(row.Seniority, filter.Seniority) &&
			matches(row.Country, filter.Country) {
			result = append(result, row)
		}
	}
	return result, nil
}

func (r *StaticMarketRepository) Find(_ context.Context, role, seniority, country string) (*model.MarketRate, error) {
	for _, row := range r.rows {
		if strings.EqualFold(row.Role, role) &&
			strings.EqualFold(row.Seniority, seniority) &&
			strings.EqualFold(row.Country, country) {
			found := row
			return &found, nil
		}
	}
	return nil, ErrMarketRateNotFound
}

// matches treats an empty filter value as a wildcard.
func matches(value, filter string) bool {
	filter = strings.TrimSpace(filter)
	return filter == "" || strings.EqualFold(value, filter)
}

// MarketRateRepository reads the dataset from the market_rates table.
type MarketRateRepository struct {
	db *gorm.DB
}

func NewMarketRateRepository(db *gorm.DB) *MarketRateRepository {
	return &MarketRateRepository{db: db}
}

func (r *MarketRateRepository) List(ctx context.Context, filter model.MarketRateFilter) ([]model.MarketRate, error) {
	query := `
		SELECT role, seniority, country, currency, min_rate, max_rate, avg_rate
		FROM market_rates
		WHERE (? = '' OR LOWER(role) = LOWER(?))
		  AND (? = '' OR LOWER(seniority) = LOWER(?))
		  AND (? = '' OR LOWER(country) = LOWER(?))
		ORDER BY position ASC
	`
	role := strings.TrimSpace(filter.Role)
	seniority := strings.TrimSpace(filter.Seniority)
	country := strings.TrimSpace(filter.Country)

	var rows []model.MarketRate
	if err := r.db.WithContext(ctx).Raw(query,
		role, role,
		seniority, seniority,
		country, country,
	).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []model.MarketRate{}
	}
	return rows, nil
}

func (r *MarketRateRepository) Find(ctx context.Context, role, seniority, country string) (*model.MarketRate, error) {
	var rows []model.MarketRate
	if err := r.db.WithContext(ctx).Raw(`
		SELECT role, seniority, country, currency, min_rate, max_rate, avg_rate
		FROM market_rates
		WHERE LOWER(role) = LOWER(?) AND LOWER(seniority) = LOWER(?) AND LOWER(country) = LOWER(?)
		LIMIT 1
	`, role, seniority, country).Scan(&rows).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMarketRateNotFound
		}
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrMarketRateNotFound
	}
	return &rows[0], nil
}
