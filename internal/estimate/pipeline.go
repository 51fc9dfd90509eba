// Package estimate turns per-category project parameters into priced estimates.
//
// Every category is described by a quote: a base-hour figure, an ordered list of
// hour adjustments, a price spread, a milestone split and the client-side costs.
// The same pipeline runs all of them, so only the numbers differ per category.
package estimate

import (
	"fmt"
	"strings"

	"github.com/nurpe/freelance-pricing/internal/model"
	"github.com/nurpe/freelance-pricing/internal/rates"
)

const defaultCurrency = "USD"

// adjustment transforms the running hour count. Order is significant.
type adjustment func(hours float64) float64

func plus(n float64) adjustment {
	return func(h float64) float64 { return h + n }
}

func times(m float64) adjustment {
	return func(h float64) float64 { return h * m }
}

func rounded() adjustment {
	return rates.Round
}

// when keeps the adjustment only if cond holds.
func when(cond bool, a adjustment) adjustment {
	if !cond {
		return nil
	}
	return a
}

// rateRule derives the default rate from the baseline. Prices always use the
// unrounded rate so a currency switch scales them by the conversion factor.
type rateRule struct {
	multiplier float64
	// roundInText prints the rate rounded in the explanation.
	roundInText bool
}

type spread struct {
	min float64
	max float64
}

var (
	standardSpread  = spread{min: 0.9, max: 1.1}
	uncertainSpread = spread{min: 0.9, max: 1.2}
	businessSpread  = spread{min: 0.85, max: 1.15}
)

type phase struct {
	name        string
	percentage  float64
	description string
}

// cost is a client-paid expense quoted in USD.
type cost struct {
	item        string
	usd         float64
	recurring   bool
	description string
}

func monthly(item string, usd float64, description string) cost {
	return cost{item: item, usd: usd, recurring: true, description: description}
}

func oneTime(item string, usd float64, description string) cost {
	return cost{item: item, usd: usd, description: description}
}

type quote struct {
	category    model.Category
	rate        rateRule
	baseHours   float64
	adjustments []adjustment
	spread      spread
	phases      []phase
	costs       []cost
	details     string
	// summary is the explanation without the trailing rate sentence.
	summary string
}

func (q quote) run(p model.Pricing) model.EstimateResult {
	currency := normalizeCurrency(p.Currency)
	factor := rates.ConversionFactor(currency)
	rate := resolveRate(p.HourlyRate, currency, q.rate)

	hours := q.baseHours
	for _, adj := range q.adjustments {
		if adj != nil {
			hours = adj(hours)
		}
	}
	hours = rates.Round(hours)

	minPrice := rates.Round(hours * rate * q.spread.min)
	maxPrice := rates.Round(hours * rate * q.spread.max)

	milestones := make([]model.Milestone, 0, len(q.phases))
	for _, ph := range q.phases {
		milestones = append(milestones, model.Milestone{
			Name:        ph.name,
			Percentage:  ph.percentage,
			Amount:      rates.Share(minPrice, ph.percentage),
			Description: ph.description,
		})
	}

	costs := make([]model.AdditionalCost, 0, len(q.costs))
	for _, c := range q.costs {
		amount := rates.Round(c.usd * factor)
		ac := model.AdditionalCost{Item: c.item, Description: c.description}
		if c.recurring {
			ac.MonthlyCost = &amount
		} else {
			ac.OneTimeCost = &amount
		}
		costs = append(costs, ac)
	}

	shownRate := rate
	if q.rate.roundInText {
		shownRate = rates.Round(rate)
	}

	return model.EstimateResult{
		Hours:           hours,
		MinPrice:        minPrice,
		MaxPrice:        maxPrice,
		Currency:        currency,
		HourlyRate:      rate,
		ProjectType:     q.category,
		ProjectDetails:  q.details,
		Milestones:      milestones,
		AdditionalCosts: costs,
		Explanation:     fmt.Sprintf("%s Tarifa: %s %s/hora.", q.summary, currency, FormatNumber(shownRate)),
	}
}

// resolveRate honours an explicit override; zero counts as "not provided".
func resolveRate(override *float64, currency string, rule rateRule) float64 {
	if override != nil && *override != 0 {
		return *override
	}
	return rates.DefaultHourlyRate(currency) * rule.multiplier
}

func normalizeCurrency(raw string) string {
	c := strings.ToUpper(strings.TrimSpace(raw))
	if c == "" {
		return defaultCurrency
	}
	return c
}

func complexityWord(complexity int) string {
	switch complexity {
	case 1:
		return "baja"
	case 2:
		return "media"
	default:
		return "alta"
	}
}

func optional(cond bool, text string) string {
	if cond {
		return text
	}
	return ""
}

func lookup(table map[string]float64, key string, fallback float64) float64 {
	if v, ok := table[rates.Key(key)]; ok {
		return v
	}
	return fallback
}

func label(table map[string]string, key, fallback string) string {
	if v, ok := table[rates.Key(key)]; ok {
		return v
	}
	return fallback
}
