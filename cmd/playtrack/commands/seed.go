package commands

import (
	"github.com/thorvi/playtrack/internal/modules/game"
	"github.com/thorvi/playtrack/internal/modules/session"
	"github.com/thorvi/playtrack/internal/record"
	"github.com/thorvi/playtrack/internal/seed"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the games and sessions collections with demo data",
	RunE:  runSeed,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every record from the sessions and games collections",
	RunE:  runClear,
}

func newSeeder() (*seed.Seeder, error) {
	conf, err := loadConfig()
	if err != nil {
		return nil, err
	}

	client := record.NewHTTPClient(conf.RecordStoreURL, conf.Logger)
	games := game.NewStore(client, conf.Logger)
	sessions := session.NewStore(client, conf.RecordStoreURL, conf.PollInterval, conf.Logger)

	return seed.New(client, games, sessions, conf.Logger), nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	seeder, err := newSeeder()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	seeder.SeedGames(ctx)

	_, err = seeder.SeedSessions(ctx)
	return err
}

func runClear(cmd *cobra.Command, args []string) error {
	seeder, err := newSeeder()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	// Sessions first so no session is left referencing a deleted game.
	if _, err := seeder.ClearAllSessions(ctx); err != nil {
		return err
	}

	_, err = seeder.ClearAllGames(ctx)
	return err
}
