package estimate

import (
	"fmt"

	"github.com/nurpe/freelance-pricing/internal/model"
	"github.com/nurpe/freelance-pricing/internal/rates"
)

var desktopBaseHours = map[string]float64{
	"simple":   60,
	"standard": 120,
	"complex":  240,
}

var desktopPlatformFactors = map[string]float64{
	"cross-platform": 1.1,
	"mac":            1.2,
}

var desktopPlatformLabels = map[string]string{
	"windows": "Windows",
	"mac":     "macOS",
	"linux":   "Linux",
}

var desktopTypeLabels = map[string]string{
	"simple":   "Aplicación Simple",
	"standard": "Aplicación Estándar",
}

func desktopQuote(p model.DesktopAppParams) quote {
	platform := rates.Key(p.Platform)

	var costs []cost
	if p.NeedsDatabase && p.DatabaseHosting {
		costs = append(costs, monthly("Alojamiento de Base de Datos", 50, "Servidor de base de datos remoto con backups automáticos"))
	}
	switch platform {
	case "mac", "cross-platform":
		costs = append(costs, oneTime("Apple Developer (Mac)", 99, "Suscripción anual para firmar apps (a cargo del cliente)"))
	case "windows":
		costs = append(costs, oneTime("Certificado Code Signing", 200, "Pago anual para firmar ejecutables (a cargo del cliente)"))
	}

	return quote{
		category:  model.CategoryDesktop,
		rate:      rateRule{multiplier: 1.15, roundInText: true},
		baseHours: lookup(desktopBaseHours, p.AppType, 120),
		adjustments: []adjustment{
			times(lookup(desktopPlatformFactors, p.Platform, 1)),
			when(p.NeedsDatabase, plus(20)),
			when(p.NeedsInstaller, plus(10)),
		},
		spread: standardSpread,
		phases: []phase{
			{"Fase 1: Diseño y Arquitectura", 30, fmt.Sprintf("Diseño de interfaz nativa, arquitectura para %s, configuración de entorno de desarrollo", p.Platform)},
			{"Fase 2: Desarrollo de Funcionalidades", 50, fmt.Sprintf("Implementación de %s%s, manejo de archivos, UI/UX nativa",
				p.AppType, optional(p.NeedsDatabase, ", integración con base de datos"))},
			{"Fase 3: Testing y Empaquetado", 20, fmt.Sprintf("Pruebas en diferentes versiones del SO, creación de instalador%s, firma de aplicación",
				optional(!p.NeedsInstaller, " (si aplica)"))},
		},
		costs: costs,
		details: fmt.Sprintf("%s - %s",
			label(desktopTypeLabels, p.AppType, "Aplicación Compleja"),
			label(desktopPlatformLabels, p.Platform, "Multiplataforma")),
		summary: fmt.Sprintf("Aplicación de escritorio %s para %s.", p.AppType, p.Platform),
	}
}

// EstimateDesktop prices a native or cross-platform desktop application.
func EstimateDesktop(p model.DesktopAppParams) model.EstimateResult {
	return desktopQuote(p).run(p.Pricing)
}
