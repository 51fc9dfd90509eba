package estimate

import (
	"fmt"
	"strings"

	"github.com/nurpe/freelance-pricing/internal/model"
	"github.com/nurpe/freelance-pricing/internal/rates"
)

var gameBaseHours = map[string]float64{
	"casual":      80,
	"arcade":      120,
	"puzzle":      100,
	"adventure":   200,
	"multiplayer": 250,
}

var gamePlatformFactors = map[string]float64{
	"web-pwa": 0.8,
	"mobile":  1.2,
	"desktop": 1,
	"console": 1.8,
}

var gamePlatformNames = map[string]string{
	"web-pwa": "Web/PWA",
	"mobile":  "Móvil",
	"desktop": "Desktop",
}

var gameTypeLabels = map[string]string{
	"casual":    "Casual",
	"arcade":    "Arcade",
	"puzzle":    "Puzzle",
	"adventure": "Aventura",
}

func gamePlatformDetails(platform, target string) string {
	if platform != "mobile" {
		return label(gamePlatformNames, platform, "Consola")
	}
	switch {
	case rates.Key(target) == "both":
		return "Móvil (iOS y Android)"
	case target != "":
		return fmt.Sprintf("Móvil (%s)", strings.ToUpper(target))
	default:
		return "Móvil (Móvil)"
	}
}

func gameQuote(p model.GameProjectParams) quote {
	platform := rates.Key(p.Platform)

	var costs []cost
	if platform == "mobile" {
		costs = append(costs, storeFees(p.MobileTarget)...)
	}
	if platform == "web-pwa" {
		costs = append(costs, monthly("Hosting para Juego Web", 10, "Pago mensual CDN + storage (a cargo del cliente)"))
	}
	if p.NeedsBackend || p.NeedsMultiplayer {
		if p.NeedsMultiplayer {
			costs = append(costs, monthly("Servidor Multijugador", 50, "Pago mensual con escalabilidad para jugadores (a cargo del cliente)"))
		} else {
			costs = append(costs, monthly("Backend para Guardado", 20, "Pago mensual para datos de usuario (a cargo del cliente)"))
		}
	}
	if p.NeedsLeaderboards || p.NeedsBackend {
		costs = append(costs, monthly("Base de Datos", 15, "Pago mensual para rankings y datos (a cargo del cliente)"))
	}
	if platform == "console" || p.Needs3D {
		costs = append(costs, monthly("Licencia de Game Engine", 40, "Unity Pro o Unreal (según revenue) - Pago mensual a cargo del cliente"))
	}

	graphics := "gráficos 2D"
	art := "sprites y animaciones 2D"
	if p.Needs3D {
		graphics = "gráficos 3D"
		art = "gráficos y animaciones 3D"
	}

	return quote{
		category:  model.CategoryGame,
		rate:      rateRule{multiplier: 1.3, roundInText: true},
		baseHours: lookup(gameBaseHours, p.GameType, 100),
		adjustments: []adjustment{
			times(lookup(gamePlatformFactors, p.Platform, 1)),
			times(float64(p.Complexity)),
			when(p.Needs3D, times(1.5)),
			when(p.NeedsMultiplayer, plus(80)),
			when(p.NeedsBackend, plus(40)),
			when(p.NeedsIAP, plus(30)),
			when(p.NeedsAds, plus(15)),
			when(p.NeedsLeaderboards, plus(20)),
		},
		spread: uncertainSpread,
		phases: []phase{
			{"Fase 1: Prototipo y GDD", 20, fmt.Sprintf("Game Design Document, prototipo jugable, mecánicas core, diseño de niveles%s",
				optional(p.Needs3D, ", modelado 3D básico"))},
			{"Fase 2: Desarrollo Principal", 50, fmt.Sprintf("Implementación completa del gameplay, %s%s%s",
				art, optional(p.NeedsMultiplayer, ", sistema multijugador"), optional(p.NeedsIAP, ", tienda in-app"))},
			{"Fase 3: Testing y Publicación", 30, fmt.Sprintf("Balanceo del juego, optimización de rendimiento, corrección de bugs%s, publicación",
				optional(p.NeedsLeaderboards, ", integración de leaderboards"))},
		},
		costs: costs,
		details: fmt.Sprintf("%s - %s",
			label(gameTypeLabels, p.GameType, "Multijugador"),
			gamePlatformDetails(platform, p.MobileTarget)),
		summary: fmt.Sprintf("Videojuego %s para %s con %s y complejidad %s.%s",
			p.GameType, label(gamePlatformNames, platform, "Consola"), graphics, complexityWord(p.Complexity),
			optional(p.NeedsMultiplayer, " Incluye multijugador online.")),
	}
}

// EstimateGame prices a video game for web, mobile, desktop or console.
func EstimateGame(p model.GameProjectParams) model.EstimateResult {
	return gameQuote(p).run(p.Pricing)
}
