package estimate

import (
	"fmt"

	"github.com/nurpe/freelance-pricing/internal/model"
)

// Estimate dispatches to the category-specific estimator.
func Estimate(p model.EstimationParams) (model.EstimateResult, error) {
	if v, ok := model.Deref(p); ok {
		p = v
	}
	switch v := p.(type) {
	case model.WebProjectParams:
		return EstimateWeb(v), nil
	case model.BackendParams:
		return EstimateBackend(v), nil
	case model.MobileAppParams:
		return EstimateMobile(v), nil
	case model.DesktopAppParams:
		return EstimateDesktop(v), nil
	case model.GameProjectParams:
		return EstimateGame(v), nil
	case model.BusinessSystemParams:
		return EstimateBusinessSystem(v), nil
	case model.AIParams:
		return EstimateAI(v), nil
	case model.AutomationParams:
		return EstimateAutomation(v), nil
	default:
		return model.EstimateResult{}, fmt.Errorf("estimate: unsupported params %T", p)
	}
}
