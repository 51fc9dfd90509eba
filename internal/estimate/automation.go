package estimate

import (
	"fmt"

	"github.com/nurpe/freelance-pricing/internal/model"
)

var automationBaseHours = map[string]float64{
	"web-scraping":    15,
	"data-processing": 20,
	"api-integration": 25,
	"task-automation": 18,
}

var automationLabels = map[string]string{
	"web-scraping":    "Web Scraping",
	"data-processing": "Procesamiento de Datos",
	"api-integration": "Integración con APIs",
}

func automationQuote(p model.AutomationParams) quote {
	var costs []cost
	if p.NeedsScheduling {
		costs = append(costs, monthly("Servidor para Cron Jobs", 5, "Pago mensual VPS (a cargo del cliente)"))
	}
	if p.NeedsDatabase {
		costs = append(costs, monthly("Base de Datos", 10, "Pago mensual servicio gestionado (a cargo del cliente)"))
	}

	return quote{
		category:  model.CategoryAutomation,
		rate:      rateRule{multiplier: 0.9, roundInText: true},
		baseHours: lookup(automationBaseHours, p.ScriptType, 20),
		adjustments: []adjustment{
			times(float64(p.Complexity)),
			when(p.NeedsScheduling, plus(5)),
			when(p.NeedsDatabase, plus(10)),
			when(p.NeedsNotifications, plus(8)),
		},
		spread: standardSpread,
		phases: []phase{
			{"Fase 1: Desarrollo e Implementación", 60, fmt.Sprintf("Desarrollo del script de %s%s%s, logging y manejo de errores",
				p.ScriptType,
				optional(p.NeedsDatabase, ", integración con base de datos"),
				optional(p.NeedsScheduling, ", configuración de tareas programadas"))},
			{"Fase 2: Testing y Despliegue", 40, fmt.Sprintf("Pruebas exhaustivas, documentación de uso%s, deployment en servidor",
				optional(p.NeedsNotifications, ", configuración de notificaciones"))},
		},
		costs:   costs,
		details: label(automationLabels, p.ScriptType, "Automatización de Tareas"),
		summary: fmt.Sprintf("Script de %s con complejidad %s.", p.ScriptType, complexityWord(p.Complexity)),
	}
}

// EstimateAutomation prices a scraping, data or integration script.
func EstimateAutomation(p model.AutomationParams) model.EstimateResult {
	return automationQuote(p).run(p.Pricing)
}
