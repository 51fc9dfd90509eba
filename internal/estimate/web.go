package estimate

import (
	"fmt"

	"github.com/nurpe/freelance-pricing/internal/model"
)

var webBaseHours = map[string]float64{
	"landing":            20,
	"corporativa":        60,
	"ecommerce-basico":   120,
	"ecommerce-avanzado": 200,
	"wordpress":          40,
}

var webLabels = map[string]string{
	"landing":            "Landing Page",
	"corporate":          "Sitio Corporativo",
	"corporativa":        "Sitio Corporativo",
	"ecommerce":          "E-commerce",
	"ecommerce-basico":   "E-commerce",
	"ecommerce-avanzado": "E-commerce",
	"blog":               "Blog",
}

var webDeadlines = map[string]float64{
	"urgente":  1.3,
	"flexible": 0.9,
}

var hostingPlans = map[string]float64{
	"shared": 5,
	"vps":    20,
	"cloud":  50,
}

func webQuote(p model.WebProjectParams) quote {
	hostingType := p.HostingType
	if hostingType == "" {
		hostingType = "shared"
	}

	var costs []cost
	if p.NeedsDomain {
		costs = append(costs, oneTime("Dominio", 15, "Registro anual (renovación anual a cargo del cliente)"))
	}
	if p.NeedsHosting {
		costs = append(costs, monthly("Hosting "+hostingType, lookup(hostingPlans, hostingType, 5),
			"Pago mensual recurrente (a cargo del cliente)"))
	}
	if p.NeedsDatabase {
		costs = append(costs, monthly("Base de Datos", 10, "Servicio mensual gestionado (a cargo del cliente)"))
	}

	return quote{
		category:  model.CategoryWeb,
		rate:      rateRule{multiplier: 1},
		baseHours: lookup(webBaseHours, p.ProjectType, 50),
		adjustments: []adjustment{
			plus(float64(p.Pages) * 3),
			times(float64(p.Complexity)),
			times(lookup(webDeadlines, p.Deadline, 1)),
			when(p.IncludesDesign, times(1.3)),
		},
		spread: standardSpread,
		phases: []phase{
			{"Fase 1: Planificación y Diseño", 30, "Wireframes, diseño UI/UX, arquitectura del sitio, prototipo inicial"},
			{"Fase 2: Desarrollo Frontend", 40, "Maquetación HTML/CSS, implementación de componentes, responsive design, integraciones"},
			{"Fase 3: Testing y Despliegue", 30, "Pruebas de funcionalidad, optimización, configuración de hosting, lanzamiento"},
		},
		costs:   costs,
		details: label(webLabels, p.ProjectType, "Aplicación Web"),
		summary: fmt.Sprintf("Estimación para %s con %d páginas, complejidad %s, deadline %s%s.",
			p.ProjectType, p.Pages, complexityWord(p.Complexity), p.Deadline,
			optional(p.IncludesDesign, " incluyendo diseño UI/UX")),
	}
}

// EstimateWeb prices a website or web application.
func EstimateWeb(p model.WebProjectParams) model.EstimateResult {
	return webQuote(p).run(p.Pricing)
}
