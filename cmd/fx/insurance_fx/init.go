package insurance_fx

import (
	"go.uber.org/fx"
	"insureguide/internal/config"
	"insureguide/internal/infra"
	"insureguide/internal/repositories"
	"insureguide/internal/services"
	mem "insureguide/pkg/memcache"
)

var Module = fx.Provide(
	provideLatency, providePlanRepo, provideSelectionGateway, provideInsurancePlanService)

func provideLatency(cfg *config.Config) infra.LatencySimulator {
	return infra.NewFixedLatency(cfg.Latency)
}

func providePlanRepo(latency infra.LatencySimulator, cfg *config.Config) repositories.IPlanRepository {
	return repositories.NewMockPlanRepository(latency, cfg)
}

func provideSelectionGateway(latency infra.LatencySimulator) repositories.ISelectionGateway {
	return repositories.NewMockSelectionGateway(latency)
}

func provideInsurancePlanService(
	planRepo repositories.IPlanRepository,
	selectionGate repositories.ISelectionGateway,
	references mem.ReferenceStore,
	cfg *config.Config,
) services.InsurancePlanServiceInterface {
	return services.NewInsurancePlanService(planRepo, selectionGate, references, cfg)
}
