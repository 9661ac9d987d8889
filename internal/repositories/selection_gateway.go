package repositories

import (
	"context"

	"insureguide/internal/infra"
	"insureguide/internal/models/request_models"
)

// ISelectionGateway forwards a chosen plan to the insurer. Nothing is stored locally.
type ISelectionGateway interface {
	SubmitSelection(ctx context.Context, userData request_models.UserData, selectedPlan request_models.SelectedPlan) error
}

type MockSelectionGateway struct {
	latency infra.LatencySimulator
}

func NewMockSelectionGateway(latency infra.LatencySimulator) ISelectionGateway {
	return &MockSelectionGateway{latency: latency}
}

func (g *MockSelectionGateway) SubmitSelection(ctx context.Context, _ request_models.UserData, _ request_models.SelectedPlan) error {
	return g.latency.Simulate(ctx, infra.OpSubmit)
}
