package infra

import (
	"context"
	"time"

	"insureguide/internal/config"
)

type Operation string

const (
	OpListPlans     Operation = "list_plans"
	OpPlanDetails   Operation = "plan_details"
	OpSubmit        Operation = "submit_selection"
	OpListProviders Operation = "list_providers"
)

// LatencySimulator stands in for the network round trip of an upstream call.
// A real provider client replaces it; callers only see the returned error.
type LatencySimulator interface {
	Simulate(ctx context.Context, op Operation) error
}

type FixedLatency struct {
	delays map[Operation]time.Duration
}

func NewFixedLatency(cfg config.LatencyConfig) *FixedLatency {
	return &FixedLatency{delays: map[Operation]time.Duration{
		OpListPlans:     cfg.Plans,
		OpPlanDetails:   cfg.PlanDetails,
		OpSubmit:        cfg.Submission,
		OpListProviders: cfg.Providers,
	}}
}

func (f *FixedLatency) Delay(op Operation) time.Duration {
	return f.delays[op]
}

// Simulate waits the configured delay or until ctx is done, whichever is first.
func (f *FixedLatency) Simulate(ctx context.Context, op Operation) error {
	d := f.delays[op]
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// FailureInjector makes selected operations fail after the wrapped simulator returns.
type FailureInjector struct {
	Base     LatencySimulator
	Failures map[Operation]error
}

func (f *FailureInjector) Simulate(ctx context.Context, op Operation) error {
	if f.Base != nil {
		if err := f.Base.Simulate(ctx, op); err != nil {
			return err
		}
	}
	if err, ok := f.Failures[op]; ok {
		return err
	}
	return nil
}
