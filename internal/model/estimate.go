package model

type Milestone struct {
	Name        string  `json:"name"`
	Percentage  float64 `json:"percentage"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}

// AdditionalCost is paid by the client after delivery. At least one of
// MonthlyCost and OneTimeCost is set.
type AdditionalCost struct {
	Item        string   `json:"item"`
	MonthlyCost *float64 `json:"monthly_cost,omitempty"`
	OneTimeCost *float64 `json:"one_time_cost,omitempty"`
	Description string   `json:"description"`
}

func (c AdditionalCost) IsRecurring() bool {
	return c.MonthlyCost != nil
}

type EstimateResult struct {
	Hours           float64          `json:"hours"`
	MinPrice        float64          `json:"min_price"`
	MaxPrice        float64          `json:"max_price"`
	Currency        string           `json:"currency"`
	HourlyRate      float64          `json:"hourly_rate"`
	ProjectType     Category         `json:"project_type"`
	ProjectDetails  string           `json:"project_details"`
	Milestones      []Milestone      `json:"milestones"`
	AdditionalCosts []AdditionalCost `json:"additional_costs"`
	Explanation     string           `json:"explanation"`
}

type HourlyRateResult struct {
	MinimumRate    float64 `json:"minimum_rate"`
	RecommendedMin float64 `json:"recommended_min"`
	RecommendedMax float64 `json:"recommended_max"`
	Explanation    string  `json:"explanation"`

	Role            string  `json:"role"`
	Seniority       string  `json:"seniority"`
	Country         string  `json:"country"`
	Currency        string  `json:"currency"`
	MonthlyExpenses float64 `json:"monthly_expenses"`
	WorkingHours    float64 `json:"working_hours"`
}

// RateDefaults feeds the hourly-rate form before the user edits anything.
type RateDefaults struct {
	MonthlyExpenses   float64 `json:"monthly_expenses"`
	BillableHours     float64 `json:"billable_hours"`
	DefaultHourlyRate float64 `json:"default_hourly_rate"`
	Currency          string  `json:"currency"`
}
