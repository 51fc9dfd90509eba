package model

type MarketRate struct {
	Role      string  `json:"role" gorm:"column:role"`
	Seniority string  `json:"seniority" gorm:"column:seniority"`
	Country   string  `json:"country" gorm:"column:country"`
	Currency  string  `json:"currency" gorm:"column:currency"`
	MinRate   float64 `json:"min_rate" gorm:"column:min_rate"`
	MaxRate   float64 `json:"max_rate" gorm:"column:max_rate"`
	AvgRate   float64 `json:"avg_rate" gorm:"column:avg_rate"`
}

type MarketRateFilter struct {
	Role      string
	Seniority string
	Country   string
}
