package model

import "strings"

type Category string

const (
	CategoryHourly         Category = "hourly"
	CategoryWeb            Category = "web"
	CategoryBackend        Category = "backend"
	CategoryMobile         Category = "mobile"
	CategoryDesktop        Category = "desktop"
	CategoryGame           Category = "game"
	CategoryBusinessSystem Category = "business-system"
	CategoryAI             Category = "ai"
	CategoryAutomation     Category = "automation"
)

var projectCategories = []Category{
	CategoryWeb,
	CategoryBackend,
	CategoryMobile,
	CategoryDesktop,
	CategoryGame,
	CategoryBusinessSystem,
	CategoryAI,
	CategoryAutomation,
}

// ProjectCategories lists every category that produces an EstimateResult.
func ProjectCategories() []Category {
	out := make([]Category, len(projectCategories))
	copy(out, projectCategories)
	return out
}

func ParseCategory(raw string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if c == CategoryHourly {
		return c, true
	}
	for _, known := range projectCategories {
		if c == known {
			return c, true
		}
	}
	return "", false
}
