package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/nurpe/freelance-pricing/internal/model"
)

var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS market_rates (
		position INTEGER NOT NULL,
		role VARCHAR(64) NOT NULL,
		seniority VARCHAR(32) NOT NULL,
		country VARCHAR(64) NOT NULL,
		currency CHAR(3) NOT NULL,
		min_rate NUMERIC(12,2) NOT NULL,
		max_rate NUMERIC(12,2) NOT NULL,
		avg_rate NUMERIC(12,2) NOT NULL,
		CHECK (min_rate <= avg_rate AND avg_rate <= max_rate)
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_market_rates_profile
		ON market_rates (LOWER(role), LOWER(seniority), LOWER(country));`,
	`CREATE INDEX IF NOT EXISTS idx_market_rates_country ON market_rates (LOWER(country));`,
}

const seedStatement = `
	INSERT INTO market_rates (position, role, seniority, country, currency, min_rate, max_rate, avg_rate)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT DO NOTHING
`

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}

// seedMarketRates inserts the reference rows that are not present yet.
func seedMarketRates(db *gorm.DB, rows []model.MarketRate) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for i, r := range rows {
			if err := tx.Exec(seedStatement,
				i+1, r.Role, r.Seniority, r.Country, r.Currency, r.MinRate, r.MaxRate, r.AvgRate,
			).Error; err != nil {
				return fmt.Errorf("seed market rate %d: %w", i+1, err)
			}
		}
		return nil
	})
}
