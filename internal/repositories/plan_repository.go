package repositories

import (
	"context"
	"log"
	"strconv"

	"insureguide/internal/config"
	"insureguide/internal/infra"
	"insureguide/internal/models/request_models"
	"insureguide/internal/models/response_models"
)

// IPlanRepository is the seam to the upstream insurers. The mock below serves the static catalog;
// an HTTP client per provider can implement the same interface.
type IPlanRepository interface {
	GetAllPlans(ctx context.Context, prefs request_models.Preferences) ([]response_models.Plan, error)
	// GetPlanInfoById returns nil, nil when no plan has the given id.
	GetPlanInfoById(ctx context.Context, planID string, providerHint string) (*response_models.Plan, error)
	GetProviders(ctx context.Context) ([]response_models.InsuranceProvider, error)
}

type MockPlanRepository struct {
	latency   infra.LatencySimulator
	providers []config.ProviderConfig
}

func NewMockPlanRepository(latency infra.LatencySimulator, cfg *config.Config) IPlanRepository {
	return &MockPlanRepository{
		latency:   latency,
		providers: cfg.Providers,
	}
}

func (m *MockPlanRepository) GetAllPlans(ctx context.Context, prefs request_models.Preferences) ([]response_models.Plan, error) {
	if err := m.latency.Simulate(ctx, infra.OpListPlans); err != nil {
		return nil, err
	}
	return GenerateCatalog(prefs), nil
}

func (m *MockPlanRepository) GetPlanInfoById(ctx context.Context, planID string, providerHint string) (*response_models.Plan, error) {
	if err := m.latency.Simulate(ctx, infra.OpPlanDetails); err != nil {
		return nil, err
	}

	// the hint does not partition the lookup; every provider's plans are searched
	if providerHint != "" && !m.knownProvider(providerHint) {
		log.Printf("Plan lookup with unknown provider hint %q", providerHint)
	}

	for _, plan := range GenerateCatalog(nil) {
		if strconv.Itoa(plan.ID) == planID {
			p := plan
			return &p, nil
		}
	}

	return nil, nil
}

func (m *MockPlanRepository) GetProviders(ctx context.Context) ([]response_models.InsuranceProvider, error) {
	if err := m.latency.Simulate(ctx, infra.OpListProviders); err != nil {
		return nil, err
	}

	providers := make([]response_models.InsuranceProvider, 0, len(m.providers))
	for _, p := range m.providers {
		providers = append(providers, response_models.InsuranceProvider{
			ID:   p.ID,
			Name: p.Name,
			Logo: p.Logo,
		})
	}
	return providers, nil
}

func (m *MockPlanRepository) knownProvider(id string) bool {
	for _, p := range m.providers {
		if p.ID == id {
			return true
		}
	}
	return false
}
