package estimate

import (
	"fmt"
	"strings"

	"github.com/nurpe/freelance-pricing/internal/model"
)

var backendBaseHours = map[string]float64{
	"rest":           40,
	"graphql":        60,
	"microservicios": 100,
}

var backendLabels = map[string]string{
	"rest":           "API REST",
	"api-rest":       "API REST",
	"graphql":        "GraphQL",
	"microservicios": "Microservicios",
	"script-python":  "Script Python / Automatización",
	"websocket":      "WebSocket",
}

var databasePlans = map[string]float64{
	"nosql": 15,
	"both":  25,
}

func backendQuote(p model.BackendParams) quote {
	dbType := p.DatabaseType
	if dbType == "" {
		dbType = "sql"
	}

	var costs []cost
	if p.NeedsDatabase {
		costs = append(costs, monthly("Base de Datos "+strings.ToUpper(dbType), lookup(databasePlans, dbType, 10),
			"Pago mensual del servicio gestionado (a cargo del cliente)"))
	}
	if p.NeedsAuth {
		costs = append(costs, monthly("Servicio de Autenticación", 10,
			"Costo mensual (a cargo del cliente) - Auth0/Firebase hasta 7K usuarios"))
	}
	if p.NeedsFileStorage {
		costs = append(costs, monthly("Almacenamiento de Archivos", 15,
			"Pago mensual (a cargo del cliente) - S3/Cloud Storage ~50GB"))
	}

	return quote{
		category:  model.CategoryBackend,
		rate:      rateRule{multiplier: 1.1, roundInText: true},
		baseHours: lookup(backendBaseHours, p.Type, 50),
		adjustments: []adjustment{
			plus(float64(p.Endpoints) * 4),
			plus(float64(len(p.Integrations)) * 15),
			times(float64(p.Complexity)),
		},
		spread: standardSpread,
		phases: []phase{
			{"Fase 1: Arquitectura y Diseño", 20, "Diseño de base de datos, arquitectura del sistema, documentación de API, elección de tecnologías"},
			{"Fase 2: Desarrollo de Endpoints", 50, fmt.Sprintf("Implementación de %d endpoints, integración con servicios externos, autenticación, validación de datos", p.Endpoints)},
			{"Fase 3: Testing y Despliegue", 30, "Pruebas unitarias e integración, documentación final, configuración de servidor, CI/CD"},
		},
		costs:   costs,
		details: label(backendLabels, p.Type, "Script/Automatización"),
		summary: fmt.Sprintf("Backend %s con %d endpoints, %d integraciones y complejidad %s.",
			p.Type, p.Endpoints, len(p.Integrations), complexityWord(p.Complexity)),
	}
}

// EstimateBackend prices an API, service or backend script.
func EstimateBackend(p model.BackendParams) model.EstimateResult {
	return backendQuote(p).run(p.Pricing)
}
