package repository

import "github.com/nurpe/freelance-pricing/internal/model"

func rate(role, seniority, country, currency string, minRate, maxRate, avgRate float64) model.MarketRate {
	return model.MarketRate{
		Role:      role,
		Seniority: seniority,
		Country:   country,
		Currency:  currency,
		MinRate:   minRate,
		MaxRate:   maxRate,
		AvgRate:   avgRate,
	}
}

// referenceRates are indicative hourly rates in each country's usual currency.
var referenceRates = []model.MarketRate{
	rate("Frontend", "Junior", "Argentina", "ARS", 8000, 15000, 12000),
	rate("Frontend", "Semi-Senior", "Argentina", "ARS", 15000, 25000, 20000),
	rate("Frontend", "Senior", "Argentina", "ARS", 25000, 40000, 32000),
	rate("Backend", "Junior", "Argentina", "ARS", 9000, 16000, 13000),
	rate("Backend", "Semi-Senior", "Argentina", "ARS", 16000, 28000, 22000),
	rate("Backend", "Senior", "Argentina", "ARS", 28000, 45000, 36000),
	rate("Fullstack", "Junior", "Argentina", "ARS", 10000, 18000, 14000),
	rate("Fullstack", "Semi-Senior", "Argentina", "ARS", 18000, 30000, 24000),
	rate("Fullstack", "Senior", "Argentina", "ARS", 30000, 50000, 40000),

	rate("Frontend", "Junior", "USA", "USD", 35, 55, 45),
	rate("Frontend", "Semi-Senior", "USA", "USD", 55, 85, 70),
	rate("Frontend", "Senior", "USA", "USD", 85, 130, 105),
	rate("Backend", "Junior", "USA", "USD", 40, 60, 50),
	rate("Backend", "Semi-Senior", "USA", "USD", 60, 95, 77),
	rate("Backend", "Senior", "USA", "USD", 95, 145, 120),
	rate("DevOps", "Semi-Senior", "USA", "USD", 70, 105, 87),
	rate("DevOps", "Senior", "USA", "USD", 105, 160, 132),
	rate("IA", "Semi-Senior", "USA", "USD", 80, 120, 100),
	rate("IA", "Senior", "USA", "USD", 120, 180, 150),

	rate("Frontend", "Junior", "España", "EUR", 25, 40, 32),
	rate("Frontend", "Semi-Senior", "España", "EUR", 40, 65, 52),
	rate("Frontend", "Senior", "España", "EUR", 65, 95, 80),
	rate("Backend", "Junior", "España", "EUR", 28, 45, 36),
	rate("Backend", "Semi-Senior", "España", "EUR", 45, 70, 57),
	rate("Backend", "Senior", "España", "EUR", 70, 105, 87),
	rate("Fullstack", "Semi-Senior", "España", "EUR", 50, 75, 62),
	rate("Fullstack", "Senior", "España", "EUR", 75, 110, 92),
}

// ReferenceRates returns a copy of the built-in market dataset.
func ReferenceRates() []model.MarketRate {
	out := make([]model.MarketRate, len(referenceRates))
	copy(out, referenceRates)
	return out
}
