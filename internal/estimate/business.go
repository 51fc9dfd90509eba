package estimate

import (
	"fmt"
	"strings"

	"github.com/nurpe/freelance-pricing/internal/model"
)

var businessBaseHours = map[string]float64{
	"inventory":   120,
	"crm":         150,
	"real-estate": 180,
	"pos":         100,
	"erp":         300,
}

var businessSystemNames = map[string]string{
	"inventory":   "Sistema de Inventario/Stock",
	"crm":         "Sistema CRM",
	"real-estate": "Sistema Inmobiliario",
	"pos":         "Sistema Punto de Venta (POS)",
	"erp":         "Sistema ERP Empresarial",
}

// includedModules is how many modules the base hours already cover.
const includedModules = 3

func businessComplexityFactor(complexity int) float64 {
	switch complexity {
	case 1:
		return 0.8
	case 2:
		return 1
	default:
		return 1.4
	}
}

func businessComplexityWord(complexity int) string {
	if complexity == 1 {
		return "básica"
	}
	return complexityWord(complexity)
}

func databaseTier(users int) float64 {
	switch {
	case users <= 20:
		return 30
	case users <= 100:
		return 80
	default:
		return 150
	}
}

func businessQuote(p model.BusinessSystemParams) quote {
	name := label(businessSystemNames, p.SystemType, "Sistema de Gestión")
	extraModules := max(0, len(p.Modules)-includedModules)

	var costs []cost
	if p.DatabaseHosting {
		costs = append(costs, monthly("Alojamiento de Base de Datos", databaseTier(p.Users),
			fmt.Sprintf("Servidor de base de datos dedicado para %d usuarios concurrentes", p.Users)))
	}
	webHosting := 25.0
	if p.Users > 50 {
		webHosting = 50
	}
	costs = append(costs,
		monthly("Hosting Web Profesional", webHosting,
			fmt.Sprintf("Servidor web con SSL, backups automáticos y soporte para %d usuarios", p.Users)),
		oneTime("Dominio .com Profesional", 15, "Registro de dominio por 1 año"),
		oneTime("Certificado SSL", 50, "Certificado SSL para seguridad HTTPS"),
	)
	if p.NeedsGeolocation {
		costs = append(costs, monthly("API de Mapas (Google Maps)", 50, "Créditos para geolocalización y visualización de mapas"))
	}

	details := fmt.Sprintf("%s - %d usuarios", name, p.Users) +
		optional(p.NeedsMobile, ", App Móvil") +
		optional(p.NeedsGeolocation, ", Geolocalización") +
		optional(p.NeedsAPI, ", API REST")

	core := p.Modules
	if len(core) > includedModules {
		core = core[:includedModules]
	}

	return quote{
		category:  model.CategoryBusinessSystem,
		rate:      rateRule{multiplier: 1},
		baseHours: lookup(businessBaseHours, p.SystemType, 120),
		adjustments: []adjustment{
			when(p.Users > 50, plus(30)),
			when(p.Users > 100, plus(40)),
			plus(float64(extraModules) * 20),
			times(businessComplexityFactor(p.Complexity)),
			rounded(),
			when(p.NeedsReports, plus(25)),
			when(p.NeedsMobile, plus(60)),
			when(p.NeedsAPI, plus(30)),
			when(p.NeedsGeolocation, plus(40)),
		},
		spread: businessSpread,
		phases: []phase{
			{"Fase 1: Análisis y Diseño", 20, fmt.Sprintf("Análisis de requerimientos, diseño de base de datos, arquitectura del sistema, wireframes de interfaces%s",
				optional(p.NeedsGeolocation, ", integración de mapas"))},
			{"Fase 2: Desarrollo del Core", 50, fmt.Sprintf("Implementación de módulos principales (%s), gestión de usuarios y permisos%s%s",
				strings.Join(core, ", "), optional(p.NeedsAPI, ", desarrollo de API REST"), optional(p.NeedsReports, ", sistema de reportes"))},
			{"Fase 3: Testing y Deploy", 30, fmt.Sprintf("Testing completo del sistema, optimización de rendimiento%s, capacitación, documentación y despliegue en producción",
				optional(p.NeedsMobile, ", desarrollo de app móvil"))},
		},
		costs:   costs,
		details: details,
		summary: fmt.Sprintf("%s para %d usuarios con %d módulos y complejidad %s.%s",
			name, p.Users, len(p.Modules), businessComplexityWord(p.Complexity),
			optional(p.NeedsGeolocation, " Incluye geolocalización.")),
	}
}

// EstimateBusinessSystem prices a management system (CRM, ERP, POS...).
// The hourly rate is converted to the target currency exactly once.
func EstimateBusinessSystem(p model.BusinessSystemParams) model.EstimateResult {
	return businessQuote(p).run(p.Pricing)
}
