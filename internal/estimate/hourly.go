package estimate

import (
	"fmt"
	"math"
	"strconv"

	"github.com/nurpe/freelance-pricing/internal/model"
	"github.com/nurpe/freelance-pricing/internal/rates"
)

const (
	minimumMarketShare = 0.7
	recommendedSpread  = 1.4
)

// CalculateHourlyRate derives the rate band for a freelancer profile.
//
// Expenses are read in USD. The expense floor can push MinimumRate above
// RecommendedMin when margins are high and billable hours low; that ordering
// is left as computed.
func CalculateHourlyRate(p model.HourlyRateParams) model.HourlyRateResult {
	currency := normalizeCurrency(p.Currency)
	factor := rates.ConversionFactor(currency)

	marketRate := rates.CountryBaseRates.Lookup(p.Country) *
		rates.SeniorityMultipliers.Lookup(p.Seniority) *
		rates.RoleMultipliers.Lookup(p.Role)

	monthlyTarget := p.MonthlyExpenses * (1 + p.ProfitMargin/100)
	expenseFloor := monthlyTarget / p.BillableHours

	minimumRate := math.Max(marketRate*minimumMarketShare, expenseFloor)
	recommendedMin := marketRate
	recommendedMax := marketRate * recommendedSpread

	explanation := fmt.Sprintf(
		"Para un %s %s en %s, considerando %sh facturables/mes y gastos de %s %s, tu tarifa debe cubrir costos y generar un %s%% de margen.",
		p.Role, p.Seniority, p.Country,
		plain(p.BillableHours), currency, strconv.FormatFloat(rates.Round(p.MonthlyExpenses*factor), 'f', 0, 64),
		plain(p.ProfitMargin),
	)

	return model.HourlyRateResult{
		MinimumRate:     rates.Round(minimumRate * factor),
		RecommendedMin:  rates.Round(recommendedMin * factor),
		RecommendedMax:  rates.Round(recommendedMax * factor),
		Explanation:     explanation,
		Role:            p.Role,
		Seniority:       p.Seniority,
		Country:         p.Country,
		Currency:        currency,
		MonthlyExpenses: rates.Round(p.MonthlyExpenses * factor),
		WorkingHours:    p.BillableHours,
	}
}

// Defaults returns the figures the hourly-rate form starts from.
func Defaults(country, seniority, currency string) model.RateDefaults {
	currency = normalizeCurrency(currency)
	return model.RateDefaults{
		MonthlyExpenses:   rates.MonthlyExpenses(country, seniority, currency),
		BillableHours:     rates.BillableHours(seniority),
		DefaultHourlyRate: rates.DefaultHourlyRate(currency),
		Currency:          currency,
	}
}

// IsFinite reports whether every figure of r can be shown to a user.
// Zero billable hours produce infinite or NaN rates.
func IsFinite(r model.HourlyRateResult) bool {
	for _, v := range []float64{r.MinimumRate, r.RecommendedMin, r.RecommendedMax, r.MonthlyExpenses} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

func plain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
