package domain

// CompanySize buckets a business into one of the four pricing categories.
type CompanySize string

const (
	CompanySizeStartup    CompanySize = "startup"
	CompanySizeSmall      CompanySize = "small"
	CompanySizeMedium     CompanySize = "medium"
	CompanySizeEnterprise CompanySize = "enterprise"
)

// Timeline is the client's expected kickoff horizon.
type Timeline string

const (
	TimelineImmediate   Timeline = "immediate"
	TimelineOneMonth    Timeline = "1-month"
	TimelineThreeMonths Timeline = "3-months"
	TimelineSixMonths   Timeline = "6-months"
	TimelineFlexible    Timeline = "flexible"
)

// Urgency is how fast the client wants results, independent of the timeline.
type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

// Priority ranks a marketing objective.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type BusinessInfo struct {
	CompanyName    string
	ContactName    string
	Email          string
	Phone          string
	Website        string
	Industry       string // open string, keyed into the ROI table with a default
	CompanySize    CompanySize
	MonthlyRevenue string // revenue bracket label, empty when not disclosed
}

type Objective struct {
	ID       string
	Name     string
	Icon     string
	Priority Priority
}

type MarketingGoals struct {
	Objectives          []Objective
	TargetAudience      string
	Competitors         string
	UniqueSellingPoints string
	Timeline            Timeline
	Urgency             Urgency
}

type SelectedService struct {
	ID        string
	Name      string
	BasePrice float64
	Selected  bool
}

type SelectedPlatform struct {
	ID       string
	Name     string
	Icon     string
	Selected bool
}

type ServicesSelection struct {
	Services         []SelectedService
	Platforms        []SelectedPlatform
	MonthlyBudget    float64
	AdSpendBudget    float64
	CurrentCampaigns []string
}

type AdditionalRequirements struct {
	CreativeDesign    bool
	LandingPages      bool
	Copywriting       bool
	AnalyticsSetup    bool
	HasExistingAssets bool
	SpecialRequests   string
}

// QuoteSubmission is the validated output of the quote wizard. The engine
// assumes an upstream form layer already rejected malformed submissions.
type QuoteSubmission struct {
	Business     BusinessInfo
	Goals        MarketingGoals
	Services     ServicesSelection
	Requirements AdditionalRequirements
}

// SelectedServiceCount counts services the client actually ticked,
// regardless of whether the id is known to the catalog.
func (s ServicesSelection) SelectedServiceCount() int {
	count := 0
	for _, svc := range s.Services {
		if svc.Selected {
			count++
		}
	}
	return count
}
