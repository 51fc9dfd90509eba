package model

// Pricing carries the fields every estimation request shares.
// A nil or zero HourlyRate means "derive it from the market default".
type Pricing struct {
	Currency   string   `json:"currency"`
	HourlyRate *float64 `json:"hourly_rate,omitempty"`
}

// EstimationParams is the closed set of per-category inputs accepted by the engine.
type EstimationParams interface {
	Category() Category
	PricingInput() Pricing
	isEstimationParams()
}

type WebProjectParams struct {
	ProjectType    string `json:"project_type"`
	Pages          int    `json:"pages"`
	Complexity     int    `json:"complexity"`
	Deadline       string `json:"deadline"`
	IncludesDesign bool   `json:"includes_design"`
	NeedsDomain    bool   `json:"needs_domain"`
	NeedsHosting   bool   `json:"needs_hosting"`
	HostingType    string `json:"hosting_type"`
	NeedsDatabase  bool   `json:"needs_database"`
	Pricing
}

type BackendParams struct {
	Type             string   `json:"type"`
	Endpoints        int      `json:"endpoints"`
	Integrations     []string `json:"integrations"`
	Complexity       int      `json:"complexity"`
	NeedsDatabase    bool     `json:"needs_database"`
	DatabaseType     string   `json:"database_type"`
	NeedsAuth        bool     `json:"needs_auth"`
	NeedsFileStorage bool     `json:"needs_file_storage"`
	Pricing
}

type MobileAppParams struct {
	Platform               string `json:"platform"`
	Screens                int    `json:"screens"`
	Complexity             int    `json:"complexity"`
	NeedsBackend           bool   `json:"needs_backend"`
	NeedsAuth              bool   `json:"needs_auth"`
	NeedsPayments          bool   `json:"needs_payments"`
	NeedsPushNotifications bool   `json:"needs_push_notifications"`
	NeedsDesign            bool   `json:"needs_design"`
	Pricing
}

type DesktopAppParams struct {
	Platform        string `json:"platform"`
	AppType         string `json:"app_type"`
	NeedsDatabase   bool   `json:"needs_database"`
	DatabaseHosting bool   `json:"database_hosting"`
	NeedsInstaller  bool   `json:"needs_installer"`
	Pricing
}

type GameProjectParams struct {
	Platform          string `json:"platform"`
	GameType          string `json:"game_type"`
	Complexity        int    `json:"complexity"`
	MobileTarget      string `json:"mobile_target"`
	NeedsMultiplayer  bool   `json:"needs_multiplayer"`
	NeedsBackend      bool   `json:"needs_backend"`
	NeedsIAP          bool   `json:"needs_iap"`
	NeedsAds          bool   `json:"needs_ads"`
	NeedsLeaderboards bool   `json:"needs_leaderboards"`
	Needs3D           bool   `json:"needs_3d"`
	Pricing
}

type BusinessSystemParams struct {
	SystemType       string   `json:"system_type"`
	Users            int      `json:"users"`
	Modules          []string `json:"modules"`
	Complexity       int      `json:"complexity"`
	NeedsReports     bool     `json:"needs_reports"`
	NeedsMobile      bool     `json:"needs_mobile"`
	NeedsAPI         bool     `json:"needs_api"`
	NeedsGeolocation bool     `json:"needs_geolocation"`
	DatabaseHosting  bool     `json:"database_hosting"`
	Pricing
}

type AIParams struct {
	ImplementationType string  `json:"implementation_type"`
	Users              int     `json:"users"`
	NeedsTraining      bool    `json:"needs_training"`
	MonthlyTokens      float64 `json:"monthly_tokens"`
	AIProvider         string  `json:"ai_provider"`
	Pricing
}

type AutomationParams struct {
	ScriptType         string `json:"script_type"`
	Complexity         int    `json:"complexity"`
	NeedsScheduling    bool   `json:"needs_scheduling"`
	NeedsDatabase      bool   `json:"needs_database"`
	NeedsNotifications bool   `json:"needs_notifications"`
	Pricing
}

type HourlyRateParams struct {
	Role            string  `json:"role"`
	Seniority       string  `json:"seniority"`
	Country         string  `json:"country"`
	Currency        string  `json:"currency"`
	MonthlyExpenses float64 `json:"monthly_expenses"`
	ProfitMargin    float64 `json:"profit_margin"`
	BillableHours   float64 `json:"billable_hours"`
}

func (WebProjectParams) Category() Category     { return CategoryWeb }
func (BackendParams) Category() Category        { return CategoryBackend }
func (MobileAppParams) Category() Category      { return CategoryMobile }
func (DesktopAppParams) Category() Category     { return CategoryDesktop }
func (GameProjectParams) Category() Category    { return CategoryGame }
func (BusinessSystemParams) Category() Category { return CategoryBusinessSystem }
func (AIParams) Category() Category             { return CategoryAI }
func (AutomationParams) Category() Category     { return CategoryAutomation }

func (p WebProjectParams) PricingInput() Pricing     { return p.Pricing }
func (p BackendParams) PricingInput() Pricing        { return p.Pricing }
func (p MobileAppParams) PricingInput() Pricing      { return p.Pricing }
func (p DesktopAppParams) PricingInput() Pricing     { return p.Pricing }
func (p GameProjectParams) PricingInput() Pricing    { return p.Pricing }
func (p BusinessSystemParams) PricingInput() Pricing { return p.Pricing }
func (p AIParams) PricingInput() Pricing             { return p.Pricing }
func (p AutomationParams) PricingInput() Pricing     { return p.Pricing }

func (WebProjectParams) isEstimationParams()     {}
func (BackendParams) isEstimationParams()        {}
func (MobileAppParams) isEstimationParams()      {}
func (DesktopAppParams) isEstimationParams()     {}
func (GameProjectParams) isEstimationParams()    {}
func (BusinessSystemParams) isEstimationParams() {}
func (AIParams) isEstimationParams()             {}
func (AutomationParams) isEstimationParams()     {}

// NewParams returns a pointer to the zero params struct of a project category,
// ready to be decoded into.
func NewParams(c Category) (any, bool) {
	switch c {
	case CategoryWeb:
		return &WebProjectParams{}, true
	case CategoryBackend:
		return &BackendParams{}, true
	case CategoryMobile:
		return &MobileAppParams{}, true
	case CategoryDesktop:
		return &DesktopAppParams{}, true
	case CategoryGame:
		return &GameProjectParams{}, true
	case CategoryBusinessSystem:
		return &BusinessSystemParams{}, true
	case CategoryAI:
		return &AIParams{}, true
	case CategoryAutomation:
		return &AutomationParams{}, true
	default:
		return nil, false
	}
}

// Deref turns the pointer produced by NewParams back into a value.
func Deref(p any) (EstimationParams, bool) {
	switch v := p.(type) {
	case *WebProjectParams:
		return *v, true
	case *BackendParams:
		return *v, true
	case *MobileAppParams:
		return *v, true
	case *DesktopAppParams:
		return *v, true
	case *GameProjectParams:
		return *v, true
	case *BusinessSystemParams:
		return *v, true
	case *AIParams:
		return *v, true
	case *AutomationParams:
		return *v, true
	default:
		return nil, false
	}
}
