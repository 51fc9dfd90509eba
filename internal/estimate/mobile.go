package estimate

import (
	"fmt"
	"strings"

	"github.com/nurpe/freelance-pricing/internal/model"
	"github.com/nurpe/freelance-pricing/internal/rates"
)

func appleDeveloper() cost {
	return oneTime("Apple Developer Program", 99, "Suscripción anual (renovación a cargo del cliente)")
}

func googlePlay() cost {
	return oneTime("Google Play Console", 25, "Pago único (a cargo del cliente)")
}

// storeFees returns the publishing fees for an ios, android or both target.
func storeFees(target string) []cost {
	var costs []cost
	switch rates.Key(target) {
	case "ios":
		costs = append(costs, appleDeveloper())
	case "android":
		costs = append(costs, googlePlay())
	case "both":
		costs = append(costs, appleDeveloper(), googlePlay())
	}
	return costs
}

func mobileQuote(p model.MobileAppParams) quote {
	platform := rates.Key(p.Platform)
	both := platform == "both"

	costs := storeFees(platform)
	if p.NeedsBackend {
		costs = append(costs, monthly("Backend & Base de Datos", 30, "Pago mensual del servidor + BD (a cargo del cliente)"))
	}

	details := "Android (Kotlin)"
	switch platform {
	case "both":
		details = "Multiplataforma (React Native/Flutter)"
	case "ios":
		details = "iOS (Swift/SwiftUI)"
	}

	target := strings.ToUpper(p.Platform)
	if both {
		target = "iOS y Android"
	}

	return quote{
		category:  model.CategoryMobile,
		rate:      rateRule{multiplier: 1.2, roundInText: true},
		baseHours: float64(p.Screens) * (float64(p.Complexity) * 4),
		adjustments: []adjustment{
			plus(20),
			when(both, times(1.6)),
			when(p.NeedsBackend, plus(40)),
			when(p.NeedsAuth, plus(20)),
			when(p.NeedsPayments, plus(30)),
			when(p.NeedsPushNotifications, plus(15)),
			when(p.NeedsDesign, times(1.3)),
		},
		spread: standardSpread,
		phases: []phase{
			{"Fase 1: Diseño y Prototipo", 30, fmt.Sprintf("Diseño UI/UX de %d pantallas, arquitectura de la app, flujo de navegación, wireframes", p.Screens)},
			{"Fase 2: Desarrollo MVP", 40, fmt.Sprintf("Implementación de funcionalidades core, integración de servicios%s%s, testing interno",
				optional(p.NeedsAuth, ", sistema de autenticación"), optional(p.NeedsPayments, ", pasarela de pagos"))},
			{"Fase 3: Finalización y Publicación", 30, "Pulido final, optimización de rendimiento, pruebas en dispositivos reales, publicación en stores"},
		},
		costs:   costs,
		details: details,
		summary: fmt.Sprintf("App móvil con %d pantallas para %s, complejidad %s%s%s.",
			p.Screens, target, complexityWord(p.Complexity),
			optional(p.NeedsBackend, ", con backend"), optional(p.NeedsAuth, ", con autenticación")),
	}
}

// EstimateMobile prices a native or cross-platform mobile app.
func EstimateMobile(p model.MobileAppParams) model.EstimateResult {
	return mobileQuote(p).run(p.Pricing)
}
