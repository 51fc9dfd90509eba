package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nurpe/freelance-pricing/internal/estimate"
	"github.com/nurpe/freelance-pricing/internal/model"
)

type EstimateService struct {
	defaultCurrency string
	log             zerolog.Logger
}

type EstimateInput struct {
	Category string
	Params   json.RawMessage
	// Currency, when set, wins over the currency in Params.
	Currency string
}

func NewEstimateService(defaultCurrency string, log zerolog.Logger) *EstimateService {
	return &EstimateService{
		defaultCurrency: strings.ToUpper(strings.TrimSpace(defaultCurrency)),
		log:             log,
	}
}

func (s *EstimateService) Estimate(ctx context.Context, input EstimateInput) (*model.EstimateResult, error) {
	category, ok := model.ParseCategory(input.Category)
	if !ok || category == model.CategoryHourly {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, input.Category)
	}

	params, _ := model.NewParams(category)
	if err := s.decode(input.Params, input.Currency, params); err != nil {
		return nil, err
	}
	estimation, ok := model.Deref(params)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, input.Category)
	}

	result, err := estimate.Estimate(estimation)
	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Str("category", string(category)).
		Float64("hours", result.Hours).
		Str("currency", result.Currency).
		Msg("estimate computed")
	return &result, nil
}

// Hourly computes a rate. Zero billable hours yield infinite figures, which
// are reported as ErrUnprocessable rather than serialised.
func (s *EstimateService) Hourly(ctx context.Context, raw json.RawMessage, currency string) (*model.HourlyRateResult, error) {
	var params model.HourlyRateParams
	if err := s.decode(raw, currency, &params); err != nil {
		return nil, err
	}

	result := estimate.CalculateHourlyRate(params)
	if !estimate.IsFinite(result) {
		return nil, fmt.Errorf("%w: billable hours must be non-zero", ErrUnprocessable)
	}
	return &result, nil
}

func (s *EstimateService) Defaults(ctx context.Context, country, seniority, currency string) model.RateDefaults {
	if strings.TrimSpace(currency) == "" {
		currency = s.defaultCurrency
	}
	return estimate.Defaults(country, seniority, currency)
}

// decode layers the default currency, the request body and the explicit
// override, in that order, onto target. A blank currency in the body counts
// as unset.
func (s *EstimateService) decode(raw json.RawMessage, override string, target any) error {
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, target); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	currency := strings.TrimSpace(override)
	if currency == "" && bodyCurrency(raw) == "" {
		currency = s.defaultCurrency
	}
	if currency != "" {
		if err := json.Unmarshal(currencyJSON(currency), target); err != nil {
			return err
		}
	}
	return nil
}

func bodyCurrency(raw json.RawMessage) string {
	var body struct {
		Currency string `json:"currency"`
	}
	if len(raw) == 0 || json.Unmarshal(raw, &body) != nil {
		return ""
	}
	return strings.TrimSpace(body.Currency)
}

func currencyJSON(code string) []byte {
	data, _ := json.Marshal(map[string]string{"currency": code})
	return data
}
