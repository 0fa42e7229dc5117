package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tc "github.com/testcontainers/testcontainers-go/modules/compose"
	"github.com/testcontainers/testcontainers-go/wait"
)

// stackSpy records which services had wait strategies registered.
type stackSpy struct {
	waited map[string]wait.Strategy
}

func (s *stackSpy) Up(ctx context.Context, opts ...tc.StackUpOption) error {
	return nil
}

func (s *stackSpy) Down(ctx context.Context, opts ...tc.StackDownOption) error {
	return nil
}

func (s *stackSpy) Services() []string {
	return nil
}

func (s *stackSpy) WaitForService(service string, strategy wait.Strategy) tc.ComposeStack {
	s.waited[service] = strategy
	return s
}

func (s *stackSpy) WithEnv(m map[string]string) tc.ComposeStack {
	return s
}

func (s *stackSpy) WithOsEnv() tc.ComposeStack {
	return s
}

func (s *stackSpy) ServiceContainer(ctx context.Context, svcName string) (*testcontainers.DockerContainer, error) {
	return nil, nil
}

func Test_WithWaitStrategies_Retains_Every_Strategy(t *testing.T) {
	// Arrange
	spy := &stackSpy{waited: map[string]wait.Strategy{}}

	strategies := map[string]wait.Strategy{
		"svc-store": wait.ForLog("ready"),
		"svc-api":   wait.ForLog("listening"),
	}

	// Act
	stack := withWaitStrategies(spy, strategies)

	// Assert - both registrations survive, not just the last one applied.
	require.Len(t, spy.waited, 2)
	require.NotNil(t, spy.waited["svc-store"])
	require.NotNil(t, spy.waited["svc-api"])
	require.Equal(t, tc.ComposeStack(spy), stack)
}
