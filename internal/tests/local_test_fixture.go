package tests

import (
	"context"
	"os"

	tc "github.com/testcontainers/testcontainers-go/modules/compose"
	"github.com/testcontainers/testcontainers-go/wait"
)

// LocalTestFixture boots the docker-compose stack backing integration tests.
// SKIP_INFRASTRUCTURE=true turns Start/Stop into no-ops for environments
// where the stack is already running.
type LocalTestFixture struct {
	compose tc.ComposeStack
}

func NewLocalTestFixture(dockerComposePath string, strategies map[string]wait.Strategy) (LocalTestFixture, error) {
	compose, err := tc.NewDockerCompose(dockerComposePath)
	if err != nil {
		return LocalTestFixture{}, err
	}

	return LocalTestFixture{withWaitStrategies(compose, strategies)}, nil
}

// withWaitStrategies registers every wait strategy onto the stack,
// accumulating across calls so no registration is lost.
func withWaitStrategies(stack tc.ComposeStack, strategies map[string]wait.Strategy) tc.ComposeStack {
	for serviceName, strategy := range strategies {
		stack = stack.WaitForService(serviceName, strategy)
	}

	return stack
}

func (f *LocalTestFixture) Start(ctx context.Context) error {
	if skip := os.Getenv("SKIP_INFRASTRUCTURE"); skip == "true" {
		return nil
	}

	return f.compose.Up(ctx)
}

func (f *LocalTestFixture) Stop(ctx context.Context) error {
	if skip := os.Getenv("SKIP_INFRASTRUCTURE"); skip == "true" {
		return nil
	}

	return f.compose.Down(ctx)
}
