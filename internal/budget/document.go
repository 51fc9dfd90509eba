// Package budget assembles editable, printable budget documents from estimates.
package budget

import (
	"fmt"
	"time"

	"github.com/nurpe/freelance-pricing/internal/estimate"
	"github.com/nurpe/freelance-pricing/internal/model"
	"github.com/nurpe/freelance-pricing/internal/rates"
)

// Placeholder texts shown until the user edits the document.
const (
	DefaultClientName     = "Nombre del Cliente"
	DefaultCompanyName    = "Tu Empresa"
	DefaultCompanyEmail   = "contacto@tuempresa.com"
	DefaultCompanyPhone   = "+54 9 11 1234-5678"
	DefaultCompanyAddress = "Dirección de tu empresa"
)

const (
	hourlyService     = "Servicios de Desarrollo de Software"
	hourlyDescription = "Tarifa por hora de desarrollo profesional"
	fallbackService   = "Desarrollo de Proyecto Web"
	subtotalService   = "Subtotal"
)

var serviceNames = map[model.Category]string{
	model.CategoryWeb:            "Desarrollo de Sitio Web",
	model.CategoryBackend:        "Desarrollo de Backend API",
	model.CategoryAI:             "Desarrollo de Chatbot con IA",
	model.CategoryMobile:         "Desarrollo de Aplicación Móvil",
	model.CategoryDesktop:        "Desarrollo de Aplicación de Escritorio",
	model.CategoryGame:           "Desarrollo de Videojuego",
	model.CategoryBusinessSystem: "Desarrollo de Sistema de Gestión",
	model.CategoryAutomation:     "Desarrollo de Automatización",
}

// Source is the result a budget is generated from. Exactly one of Estimate
// and Hourly is set.
type Source struct {
	Category model.Category          `json:"category"`
	Estimate *model.EstimateResult   `json:"estimate,omitempty"`
	Hourly   *model.HourlyRateResult `json:"hourly,omitempty"`
}

func (s Source) Validate() error {
	switch {
	case s.Estimate != nil && s.Hourly != nil:
		return fmt.Errorf("%w: both estimate and hourly result given", ErrInvalidSource)
	case s.Hourly != nil:
		if s.Category != "" && s.Category != model.CategoryHourly {
			return fmt.Errorf("%w: hourly result under category %q", ErrInvalidSource, s.Category)
		}
	case s.Estimate != nil:
		if s.Category == model.CategoryHourly {
			return fmt.Errorf("%w: project estimate under hourly category", ErrInvalidSource)
		}
	default:
		return fmt.Errorf("%w: no result", ErrInvalidSource)
	}
	return nil
}

// Build snapshots a result into a fresh document with placeholder contact data.
func Build(src Source, now time.Time) (model.BudgetDocument, error) {
	if err := src.Validate(); err != nil {
		return model.BudgetDocument{}, err
	}

	doc := model.BudgetDocument{
		ClientName:     DefaultClientName,
		CompanyName:    DefaultCompanyName,
		CompanyEmail:   DefaultCompanyEmail,
		CompanyPhone:   DefaultCompanyPhone,
		CompanyAddress: DefaultCompanyAddress,
		Date:           FormatDate(now),
	}

	if src.Hourly != nil {
		r := src.Hourly
		doc.Category = model.CategoryHourly
		doc.Currency = r.Currency
		doc.MinPrice = r.RecommendedMin
		doc.MaxPrice = r.RecommendedMax
		doc.PriceChoice = model.PriceChoiceMax
		doc.Items = hourlyItems(*r, doc.MaxPrice)
	} else {
		r := src.Estimate
		doc.Category = src.Category
		if doc.Category == "" {
			doc.Category = r.ProjectType
		}
		doc.Currency = r.Currency
		doc.MinPrice = r.MinPrice
		doc.MaxPrice = r.MaxPrice
		doc.PriceChoice = model.PriceChoiceMin
		doc.Items = projectItems(doc.Category, *r, doc.MinPrice)
	}

	return refresh(doc), nil
}

func projectItems(category model.Category, r model.EstimateResult, price float64) []model.LineItem {
	service, ok := serviceNames[category]
	if !ok {
		service = fallbackService
	}
	if r.ProjectDetails != "" {
		service = service + " - " + r.ProjectDetails
	}

	items := make([]model.LineItem, 0, len(r.Milestones)+len(r.AdditionalCosts)+2)
	items = append(items, model.LineItem{
		Kind:        model.ItemKindHeader,
		Service:     service,
		Description: fmt.Sprintf("%s horas de desarrollo estimadas", estimate.FormatNumber(r.Hours)),
		Price:       price,
	})
	for _, m := range r.Milestones {
		items = append(items, model.LineItem{
			Kind:        model.ItemKindMilestone,
			Service:     m.Name,
			Description: m.Description,
			Price:       rates.Share(price, m.Percentage),
			Percentage:  m.Percentage,
		})
	}
	for _, c := range r.AdditionalCosts {
		item := model.LineItem{
			Kind:        model.ItemKindRegular,
			Service:     c.Item,
			Description: c.Description,
			IsRecurring: c.IsRecurring(),
		}
		if c.MonthlyCost != nil {
			item.Price = *c.MonthlyCost
		} else if c.OneTimeCost != nil {
			item.Price = *c.OneTimeCost
		}
		items = append(items, item)
	}
	return append(items, model.LineItem{Kind: model.ItemKindSubtotal, Service: subtotalService})
}

func hourlyItems(r model.HourlyRateResult, price float64) []model.LineItem {
	return []model.LineItem{
		{
			Kind:        model.ItemKindHeader,
			Service:     hourlyService,
			Description: hourlyDescription,
			Price:       price,
		},
		{
			Kind:        model.ItemKindMilestone,
			Service:     "Tarifa por hora",
			Description: fmt.Sprintf("%s %s - %s", r.Role, r.Seniority, r.Country),
			Price:       price,
			Percentage:  100,
		},
		{
			Kind:    model.ItemKindRegular,
			Service: "Dedicación mensual",
			Description: fmt.Sprintf("%s horas facturables/mes, gastos mensuales %s %s",
				estimate.FormatNumber(r.WorkingHours), r.Currency, estimate.FormatNumber(r.MonthlyExpenses)),
		},
		{Kind: model.ItemKindSubtotal, Service: subtotalService},
	}
}
