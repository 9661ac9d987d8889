package response_models

type Plan struct {
	ID                int               `json:"id"`
	Name              string            `json:"name"`
	Provider          string            `json:"provider"`
	MonthlyPremium    float64           `json:"monthlyPremium"`
	Coverage          float64           `json:"coverage"`
	MonthlyPremiumINR *float64          `json:"monthlyPremiumINR,omitempty"` // set by enrichment only
	CoverageINR       *float64          `json:"coverageINR,omitempty"`
	Benefits          []string          `json:"benefits"`
	Features          map[string]string `json:"features"`
	Rating            float64           `json:"rating"`
	APISource         string            `json:"apiSource"` // "hdfc" | "bajaj" | "care" | "goDigit" | "icici"
}

type WaitingPeriods struct {
	General     string `json:"general"`
	PreExisting string `json:"preExisting"`
	Maternity   string `json:"maternity"`
}

type DetailedPlan struct {
	Plan
	DetailedBenefits []string       `json:"detailedBenefits"`
	WaitingPeriods   WaitingPeriods `json:"waitingPeriods"`
	Exclusions       []string       `json:"exclusions"`
}

// SubmissionReceipt is not collision-checked across processes; see services.referenceIssuer.
type SubmissionReceipt struct {
	Success     bool     `json:"success"`
	ReferenceID string   `json:"referenceId"`
	Message     string   `json:"message"`
	NextSteps   []string `json:"nextSteps"`
}

type InsuranceProvider struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type FeatureRow struct {
	Feature string   `json:"feature"`
	Values  []string `json:"values"`
}

type PlanComparison struct {
	Plans []Plan       `json:"plans"`
	Rows  []FeatureRow `json:"rows"`
}
