package estimate

import (
	"fmt"

	"github.com/nurpe/freelance-pricing/internal/model"
	"github.com/nurpe/freelance-pricing/internal/rates"
)

var aiBaseHours = map[string]float64{
	"chatbot-faq":   30,
	"asistente-web": 60,
	"api-ia":        80,
	"modelo-custom": 150,
}

var aiLabels = map[string]string{
	"chatbot-faq":   "Chatbot Básico (FAQ)",
	"asistente-web": "Asistente Integrado a Web",
	"api-ia":        "Integración con API de IA",
}

// tokenPrice is USD per million tokens.
type tokenPrice struct {
	input  float64
	output float64
}

const localProvider = "local"

var tokenPrices = map[string]tokenPrice{
	"openai":      {input: 0.5, output: 1.5},
	"anthropic":   {input: 0.25, output: 1.25},
	localProvider: {},
}

// monthlyTokenCost averages input and output prices. Unknown providers are
// priced like openai.
func monthlyTokenCost(provider string, tokens float64) float64 {
	price, ok := tokenPrices[rates.Key(provider)]
	if !ok {
		price = tokenPrices["openai"]
	}
	return tokens / 1_000_000 * ((price.input + price.output) / 2)
}

func aiQuote(p model.AIParams) quote {
	provider := p.AIProvider
	if provider == "" {
		provider = "openai"
	}
	local := rates.Key(provider) == localProvider

	var costs []cost
	if !local && p.MonthlyTokens > 0 {
		costs = append(costs, monthly(fmt.Sprintf("Tokens de IA (%s)", provider), monthlyTokenCost(provider, p.MonthlyTokens),
			fmt.Sprintf("~%sK tokens/mes - Costo mensual a cargo del cliente", FormatNumber(p.MonthlyTokens/1000))))
	}
	if local {
		costs = append(costs, monthly("Servidor GPU", 150, "Pago mensual VPS con GPU (a cargo del cliente)"))
	} else {
		costs = append(costs, monthly("Hosting Backend", 20, "Pago mensual del servidor (a cargo del cliente)"))
	}

	return quote{
		category:  model.CategoryAI,
		rate:      rateRule{multiplier: 1.4, roundInText: true},
		baseHours: lookup(aiBaseHours, p.ImplementationType, 50),
		adjustments: []adjustment{
			when(p.Users > 1000, times(1.3)),
			when(p.Users > 10000, times(1.5)),
			when(p.NeedsTraining, times(1.5)),
		},
		spread: uncertainSpread,
		phases: []phase{
			{"Fase 1: Investigación y Configuración", 25, "Análisis de requisitos, selección de modelo IA, configuración de APIs, preparación de datasets"},
			{"Fase 2: Desarrollo e Integración", 50, fmt.Sprintf("Implementación del chatbot/IA, integración con %s, entrenamiento del modelo, desarrollo de interfaz", provider)},
			{"Fase 3: Testing y Optimización", 25, "Pruebas de precisión, ajuste de prompts, optimización de respuestas, documentación"},
		},
		costs:   costs,
		details: label(aiLabels, p.ImplementationType, "Modelo Custom con Fine-tuning"),
		summary: fmt.Sprintf("Proyecto de IA tipo %s, %d usuarios estimados%s.",
			p.ImplementationType, p.Users, optional(p.NeedsTraining, ", con entrenamiento de datos propios")),
	}
}

// EstimateAI prices a chatbot, assistant or model integration.
func EstimateAI(p model.AIParams) model.EstimateResult {
	return aiQuote(p).run(p.Pricing)
}
