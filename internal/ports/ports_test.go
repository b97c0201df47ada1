package ports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name string
	err  error
}

func (s *stubChecker) Name() string                { return s.name }
func (s *stubChecker) Check(context.Context) error { return s.err }

// slowChecker answers after a delay unless its context ends first.
type slowChecker struct {
	name  string
	delay time.Duration
}

func (s *slowChecker) Name() string { return s.name }

func (s *slowChecker) Check(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.delay):
		return nil
	}
}

func TestRegister(t *testing.T) {
	registry := NewHealthRegistry()

	require.NoError(t, registry.Register(&stubChecker{name: "postgresql"}))
	require.NoError(t, registry.Register(&stubChecker{name: "sqlite"}))

	err := registry.Register(&stubChecker{name: "postgresql"})
	require.ErrorIs(t, err, ErrDuplicateChecker)
	assert.Contains(t, err.Error(), "postgresql")
	assert.Len(t, registry.checkers, 2)
}

func TestCheckAll(t *testing.T) {
	tests := []struct {
		name       string
		checkers   []HealthChecker
		wantStatus HealthStatus
		wantChecks map[string]HealthStatus
		wantMsg    map[string]string
	}{
		{
			name:       "no checkers is healthy",
			wantStatus: HealthStatusHealthy,
			wantChecks: map[string]HealthStatus{},
		},
		{
			name: "all healthy",
			checkers: []HealthChecker{
				&stubChecker{name: "postgresql"},
				&stubChecker{name: "sqlite"},
			},
			wantStatus: HealthStatusHealthy,
			wantChecks: map[string]HealthStatus{
				"postgresql": HealthStatusHealthy,
				"sqlite":     HealthStatusHealthy,
			},
		},
		{
			name: "one failure makes the service unhealthy",
			checkers: []HealthChecker{
				&stubChecker{name: "postgresql", err: errors.New("connection refused")},
				&stubChecker{name: "sqlite"},
			},
			wantStatus: HealthStatusUnhealthy,
			wantChecks: map[string]HealthStatus{
				"postgresql": HealthStatusUnhealthy,
				"sqlite":     HealthStatusHealthy,
			},
			wantMsg: map[string]string{"postgresql": "connection refused"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewHealthRegistry()
			for _, c := range tt.checkers {
				require.NoError(t, registry.Register(c))
			}

			result := registry.CheckAll(context.Background())

			require.NotNil(t, result)
			assert.Equal(t, tt.wantStatus, result.Status)
			assert.False(t, result.Timestamp.IsZero())
			require.Len(t, result.Checks, len(tt.wantChecks))

			for name, status := range tt.wantChecks {
				assert.Equal(t, status, result.Checks[name].Status, name)
				assert.Equal(t, tt.wantMsg[name], result.Checks[name].Message, name)
			}
		})
	}
}

func TestCheckAll_CancelledContext(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(&slowChecker{name: "postgresql", delay: 100 * time.Millisecond}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := registry.CheckAll(ctx)

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Contains(t, result.Checks["postgresql"].Message, "context canceled")
}

func TestCheckAll_PerCheckTimeout(t *testing.T) {
	registry := NewHealthRegistryWithTimeout(10 * time.Millisecond)
	require.NoError(t, registry.Register(&slowChecker{name: "postgresql", delay: time.Second}))

	result := registry.CheckAll(context.Background())

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Contains(t, result.Checks["postgresql"].Message, "deadline exceeded")
}

func TestCheckAll_NoTimeout(t *testing.T) {
	registry := NewHealthRegistryWithTimeout(0)
	require.NoError(t, registry.Register(&slowChecker{name: "sqlite", delay: 20 * time.Millisecond}))

	result := registry.CheckAll(context.Background())

	assert.Equal(t, HealthStatusHealthy, result.Status)
	assert.GreaterOrEqual(t, result.Checks["sqlite"].Duration, 20*time.Millisecond)
}

func TestNewHealthRegistry_DefaultTimeout(t *testing.T) {
	assert.Equal(t, DefaultCheckTimeout, NewHealthRegistry().timeout)
}
