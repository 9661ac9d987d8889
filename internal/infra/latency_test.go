package infra

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"insureguide/internal/config"
)

func TestFixedLatency_DelaysPerOperation(t *testing.T) {
	l := NewFixedLatency(config.LatencyConfig{
		Plans:       1000 * time.Millisecond,
		PlanDetails: 800 * time.Millisecond,
		Submission:  1200 * time.Millisecond,
		Providers:   500 * time.Millisecond,
	})

	// detail lookup is lighter than the list fetch, submission is the slowest
	assert.Less(t, l.Delay(OpPlanDetails), l.Delay(OpListPlans))
	assert.Greater(t, l.Delay(OpSubmit), l.Delay(OpListPlans))
	assert.Equal(t, 500*time.Millisecond, l.Delay(OpListProviders))
}

func TestFixedLatency_Waits(t *testing.T) {
	l := NewFixedLatency(config.LatencyConfig{Plans: 20 * time.Millisecond})

	start := time.Now()
	err := l.Simulate(context.Background(), OpListPlans)

	assert.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestFixedLatency_HonoursCancellation(t *testing.T) {
	l := NewFixedLatency(config.LatencyConfig{Submission: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := l.Simulate(ctx, OpSubmit)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFixedLatency_ZeroDelayStillChecksContext(t *testing.T) {
	l := NewFixedLatency(config.LatencyConfig{})

	assert.NoError(t, l.Simulate(context.Background(), OpPlanDetails))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, l.Simulate(ctx, OpPlanDetails), context.Canceled)
}

func TestFailureInjector(t *testing.T) {
	boom := errors.New("connection reset")
	f := &FailureInjector{
		Base:     NewFixedLatency(config.LatencyConfig{}),
		Failures: map[Operation]error{OpSubmit: boom},
	}

	assert.NoError(t, f.Simulate(context.Background(), OpListPlans))
	assert.ErrorIs(t, f.Simulate(context.Background(), OpSubmit), boom)
}
