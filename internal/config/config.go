package config

import (
	"time"

	"github.com/thorvi/playtrack/internal/env"

	"go.uber.org/zap"
)

const (
	PortEnv           = "PORT"
	RecordStoreURLEnv = "POCKETBASE_URL"
	PollIntervalEnv   = "POLL_INTERVAL"

	// DefaultRecordStoreURL is used when POCKETBASE_URL is unset.
	DefaultRecordStoreURL = "https://pb.thorvi.dev"

	// DefaultPollInterval bounds the staleness window for polling subscribers.
	DefaultPollInterval = 5 * time.Second
)

type Config struct {
	Logger *zap.Logger

	Port           int
	RecordStoreURL string
	PollInterval   time.Duration
}

func Load() (Config, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return Config{}, err
	}

	port, err := env.GetIntOrDefault(PortEnv, 8080)
	if err != nil {
		return Config{}, err
	}

	recordStoreURL := env.GetStringOrDefault(RecordStoreURLEnv, DefaultRecordStoreURL)

	pollInterval, err := env.GetDurationOrDefault(PollIntervalEnv, DefaultPollInterval)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Logger:         logger,
		Port:           port,
		RecordStoreURL: recordStoreURL,
		PollInterval:   pollInterval,
	}, nil
}
