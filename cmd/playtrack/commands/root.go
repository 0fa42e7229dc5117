package commands

import (
	"fmt"

	"github.com/thorvi/playtrack/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "playtrack",
	Short: "Game collection and play-session tracker backed by a remote record store",
	RunE:  runAPI, // default: run the API (same as "playtrack api")
}

func init() {
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(clearCmd)
}

// Execute runs the root command and returns the error for main to report.
func Execute() error {
	return rootCmd.Execute()
}

func loadConfig() (config.Config, error) {
	_ = godotenv.Load(".env")

	conf, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}

	zap.ReplaceGlobals(conf.Logger)

	return conf, nil
}
