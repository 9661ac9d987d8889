package services

import (
	"context"
	"log"
	"time"

	"github.com/goccy/go-json"
	"insureguide/internal/config"
	"insureguide/internal/models/request_models"
	"insureguide/internal/models/response_models"
	"insureguide/internal/repositories"
	mem "insureguide/pkg/memcache"
	"insureguide/pkg/utils"
)

const (
	msgFetchPlansFailed     = "Failed to fetch insurance plans. Please try again later."
	msgFetchDetailsFailed   = "Failed to fetch plan details. Please try again later."
	msgPlanNotFound         = "Plan not found"
	msgSubmissionFailed     = "Failed to submit your selection. Please try again later."
	msgFetchProvidersFailed = "Failed to fetch insurance providers. Please try again later."
	msgSubmissionAccepted   = "Your insurance plan selection has been submitted successfully."

	comparisonSize = 3
)

var submissionNextSteps = []string{
	"Our team will review your application",
	"You will receive a confirmation email within 24 hours",
	"A representative may contact you for additional information if needed",
}

type InsurancePlanServiceInterface interface {
	FetchPlans(ctx context.Context, prefs request_models.Preferences) ([]response_models.Plan, error)
	FetchPlanDetails(ctx context.Context, planID interface{}, providerHint string) (response_models.DetailedPlan, error)
	SubmitSelection(ctx context.Context, userData request_models.UserData, selectedPlan request_models.SelectedPlan) (response_models.SubmissionReceipt, error)
	ListProviders(ctx context.Context) ([]response_models.InsuranceProvider, error)
	// ComparePlans puts the selected plan first when selectedID is non-nil.
	ComparePlans(ctx context.Context, selectedID interface{}) (response_models.PlanComparison, error)
}

type InsurancePlanService struct {
	planRepo       repositories.IPlanRepository
	selectionGate  repositories.ISelectionGateway
	references     *referenceIssuer
	conversionRate float64
}

func NewInsurancePlanService(
	planRepo repositories.IPlanRepository,
	selectionGate repositories.ISelectionGateway,
	references mem.ReferenceStore,
	cfg *config.Config,
) InsurancePlanServiceInterface {
	return &InsurancePlanService{
		planRepo:       planRepo,
		selectionGate:  selectionGate,
		references:     newReferenceIssuer(references, cfg.Selection.ReferenceTTL, utils.NowUnixMillis),
		conversionRate: cfg.Catalog.INRConversionRate,
	}
}

func (s *InsurancePlanService) FetchPlans(ctx context.Context, prefs request_models.Preferences) ([]response_models.Plan, error) {
	log.Printf("Fetching insurance plans with preferences: %s", toLogJSON(prefs))

	plans, err := s.planRepo.GetAllPlans(ctx, prefs)
	if err != nil {
		log.Printf("Error fetching insurance plans: %v", err)
		return nil, utils.NewServiceError(utils.ErrFetchFailure, msgFetchPlansFailed, err)
	}

	return plans, nil
}

func (s *InsurancePlanService) FetchPlanDetails(ctx context.Context, planID interface{}, providerHint string) (response_models.DetailedPlan, error) {
	log.Printf("Fetching details for plan %v from %s", planID, providerHint)

	id, err := NormalizePlanID(planID)
	if err != nil {
		return response_models.DetailedPlan{}, utils.NewServiceError(utils.ErrPlanNotFound, msgPlanNotFound, err)
	}

	plan, err := s.planRepo.GetPlanInfoById(ctx, id, providerHint)
	if err != nil {
		log.Printf("Error fetching plan details: %v", err)
		return response_models.DetailedPlan{}, utils.NewServiceError(utils.ErrFetchFailure, msgFetchDetailsFailed, err)
	}

	if plan == nil {
		return response_models.DetailedPlan{}, utils.NewServiceError(utils.ErrPlanNotFound, msgPlanNotFound, nil)
	}

	return EnrichPlan(plan, s.conversionRate), nil
}

func (s *InsurancePlanService) SubmitSelection(ctx context.Context, userData request_models.UserData, selectedPlan request_models.SelectedPlan) (response_models.SubmissionReceipt, error) {
	log.Printf("Submitting plan selection: %s", toLogJSON(map[string]interface{}{
		"userData":     userData,
		"selectedPlan": selectedPlan,
	}))

	if err := s.selectionGate.SubmitSelection(ctx, userData, selectedPlan); err != nil {
		log.Printf("Error submitting plan selection: %v", err)
		return response_models.SubmissionReceipt{}, utils.NewServiceError(utils.ErrSubmissionFailure, msgSubmissionFailed, err)
	}

	return response_models.SubmissionReceipt{
		Success:     true,
		ReferenceID: s.references.Issue(),
		Message:     msgSubmissionAccepted,
		NextSteps:   append([]string(nil), submissionNextSteps...),
	}, nil
}

func (s *InsurancePlanService) ListProviders(ctx context.Context) ([]response_models.InsuranceProvider, error) {
	providers, err := s.planRepo.GetProviders(ctx)
	if err != nil {
		log.Printf("Error fetching insurance providers: %v", err)
		return nil, utils.NewServiceError(utils.ErrFetchFailure, msgFetchProvidersFailed, err)
	}
	return providers, nil
}

func (s *InsurancePlanService) ComparePlans(ctx context.Context, selectedID interface{}) (response_models.PlanComparison, error) {
	plans, err := s.FetchPlans(ctx, request_models.Preferences{})
	if err != nil {
		return response_models.PlanComparison{}, err
	}

	selected := make([]response_models.Plan, 0, comparisonSize)
	if selectedID != nil {
		id, err := NormalizePlanID(selectedID)
		if err != nil {
			return response_models.PlanComparison{}, utils.NewServiceError(utils.ErrPlanNotFound, msgPlanNotFound, err)
		}

		idx := indexOfPlan(plans, id)
		if idx < 0 {
			return response_models.PlanComparison{}, utils.NewServiceError(utils.ErrPlanNotFound, msgPlanNotFound, nil)
		}
		selected = append(selected, plans[idx])
		plans = append(plans[:idx:idx], plans[idx+1:]...)
	}

	for _, p := range plans {
		if len(selected) == comparisonSize {
			break
		}
		selected = append(selected, p)
	}

	return response_models.PlanComparison{
		Plans: selected,
		Rows:  buildFeatureRows(selected),
	}, nil
}

func indexOfPlan(plans []response_models.Plan, id string) int {
	for i, p := range plans {
		if pid, _ := NormalizePlanID(p.ID); pid == id {
			return i
		}
	}
	return -1
}

func buildFeatureRows(plans []response_models.Plan) []response_models.FeatureRow {
	rows := make([]response_models.FeatureRow, 0, len(repositories.FeatureNames))
	for _, name := range repositories.FeatureNames {
		row := response_models.FeatureRow{Feature: name, Values: make([]string, 0, len(plans))}
		for _, p := range plans {
			row.Values = append(row.Values, p.Features[name])
		}
		rows = append(rows, row)
	}
	return rows
}

func toLogJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "<unserializable>"
	}
	return string(b)
}

// referenceIssuer derives REF-<digits> ids from the millisecond clock. Ids issued in the same
// process within ttl never repeat; ids from different processes may.
type referenceIssuer struct {
	store mem.ReferenceStore
	ttl   time.Duration
	now   func() int64
}

const (
	referencePrefix   = "REF-"
	referenceDigits   = 6
	referenceAttempts = 1000
)

func newReferenceIssuer(store mem.ReferenceStore, ttl time.Duration, now func() int64) *referenceIssuer {
	return &referenceIssuer{store: store, ttl: ttl, now: now}
}

func (r *referenceIssuer) Issue() string {
	ms := r.now()
	var ref string
	for i := int64(0); i < referenceAttempts; i++ {
		ref = referencePrefix + utils.MillisSuffix(ms+i, referenceDigits)
		if r.store.Reserve(ref, r.ttl) {
			return ref
		}
	}
	log.Printf("Reference id space exhausted near %d, reusing %s", ms, ref)
	return ref
}
