// Package seed bulk-populates and clears the games and sessions collections
// with fixed demo data. Best-effort: individual item failures are counted,
// never fatal - only a failed precondition fetch aborts an operation.
package seed

import (
	"context"
	"fmt"

	"github.com/thorvi/playtrack/internal/modules/game"
	gamedomain "github.com/thorvi/playtrack/internal/modules/game/domain"
	"github.com/thorvi/playtrack/internal/modules/session"
	sessiondomain "github.com/thorvi/playtrack/internal/modules/session/domain"
	"github.com/thorvi/playtrack/internal/record"

	"go.uber.org/zap"
)

// Result counts the per-item outcomes of one bulk operation.
type Result struct {
	Succeeded int
	Skipped   int
	Failed    int
}

var demoGames = []map[string]any{
	{
		"name":        "The Legend of Zelda",
		"genre":       "Aventura",
		"description": "Um jogo de aventura épico onde você explora o reino de Hyrule, resolve enigmas e enfrenta inimigos poderosos.",
		"platform":    "Nintendo Switch",
		"releaseYear": "2017",
		"isFavorite":  false,
	},
	{
		"name":        "Super Mario Bros",
		"genre":       "Plataforma",
		"description": "O clássico jogo de plataforma onde Mario precisa resgatar a Princesa Peach das garras de Bowser.",
		"platform":    "Nintendo Switch",
		"releaseYear": "1985",
		"isFavorite":  false,
	},
	{
		"name":        "Minecraft",
		"genre":       "Sandbox",
		"description": "Um jogo de mundo aberto onde você pode construir, explorar e sobreviver em um mundo feito de blocos.",
		"platform":    "Multi-plataforma",
		"releaseYear": "2011",
		"isFavorite":  false,
	},
	{
		"name":        "FIFA 24",
		"genre":       "Esportes",
		"description": "O mais recente simulador de futebol com times e jogadores reais de todo o mundo.",
		"platform":    "PlayStation, Xbox, PC",
		"releaseYear": "2023",
		"isFavorite":  false,
	},
	{
		"name":        "Elden Ring",
		"genre":       "RPG",
		"description": "Um RPG de ação desafiador em um mundo de fantasia sombrio, criado por FromSoftware e George R.R. Martin.",
		"platform":    "PlayStation, Xbox, PC",
		"releaseYear": "2022",
		"isFavorite":  false,
	},
}

type demoSession struct {
	GameName      string
	ScheduledTime string
	Duration      string
	IsCompleted   bool
}

var demoSessions = []demoSession{
	{GameName: "The Legend of Zelda", ScheduledTime: "Hoje - 20:00", Duration: "1 hora", IsCompleted: true},
	{GameName: "Minecraft", ScheduledTime: "Amanhã - 18:30", Duration: "30 minutos", IsCompleted: false},
	{GameName: "FIFA 24", ScheduledTime: "Sexta - 21:00", Duration: "1 hora", IsCompleted: false},
}

type Seeder struct {
	client   record.Client
	games    *game.Store
	sessions *session.Store
	logger   *zap.Logger
}

func New(client record.Client, games *game.Store, sessions *session.Store, logger *zap.Logger) *Seeder {
	return &Seeder{
		client:   client,
		games:    games,
		sessions: sessions,
		logger:   logger,
	}
}

// SeedGames creates each demo game. A validation failure naming the "name"
// field is taken to mean the game was already seeded and counts as a skip -
// the duplicate detection is heuristic, not exact. Other failures are
// counted and the remaining items still run.
func (s *Seeder) SeedGames(ctx context.Context) Result {
	var result Result

	for _, fields := range demoGames {
		name, _ := fields["name"].(string)

		_, err := s.client.Create(ctx, game.Collection, fields)
		switch {
		case record.HasFieldError(err, "name"):
			s.logger.Info("game may already exist, skipping", zap.String("name", name))
			result.Skipped++
		case err != nil:
			s.logger.Error("failed to create game", zap.String("name", name), zap.Error(err))
			result.Failed++
		default:
			s.logger.Info("created game", zap.String("name", name))
			result.Succeeded++
		}
	}

	s.logResult("seed games", result)

	return result
}

// SeedSessions requires games to be seeded first: it fetches all games and
// fails loudly when that fetch fails. Demo sessions are matched to games by
// name; a session whose game is missing is counted as failed and skipped.
func (s *Seeder) SeedSessions(ctx context.Context) (Result, error) {
	games, err := s.games.ListAll(ctx)
	if err != nil {
		return Result{}, fmt.Errorf(
			"cannot seed sessions: failed to fetch games, ensure games are seeded first: %w", err,
		)
	}

	var result Result

	for _, demo := range demoSessions {
		matched := matchGameByName(games, demo.GameName)
		if matched == nil {
			s.logger.Error("no game found for session", zap.String("game_name", demo.GameName))
			result.Failed++
			continue
		}

		input := sessiondomain.SessionInput{
			GameID:        matched.ID,
			GameName:      demo.GameName,
			ScheduledTime: demo.ScheduledTime,
			Duration:      demo.Duration,
			IsCompleted:   demo.IsCompleted,
		}

		if _, err := s.sessions.Create(ctx, input); err != nil {
			s.logger.Error("failed to create session", zap.String("game_name", demo.GameName), zap.Error(err))
			result.Failed++
			continue
		}

		s.logger.Info("created session",
			zap.String("game_name", demo.GameName),
			zap.String("scheduled_time", demo.ScheduledTime))
		result.Succeeded++
	}

	s.logResult("seed sessions", result)

	return result, nil
}

// ClearAllGames deletes every game. Only the initial list fetch is fatal;
// each delete runs in its own failure boundary so one failed item never
// aborts the rest of the batch.
func (s *Seeder) ClearAllGames(ctx context.Context) (Result, error) {
	result, err := s.clearCollection(ctx, game.Collection)
	if err != nil {
		return Result{}, err
	}

	s.logResult("clear games", result)

	return result, nil
}

// ClearAllSessions deletes every session with the same isolation behavior as
// ClearAllGames.
func (s *Seeder) ClearAllSessions(ctx context.Context) (Result, error) {
	result, err := s.clearCollection(ctx, session.Collection)
	if err != nil {
		return Result{}, err
	}

	s.logResult("clear sessions", result)

	return result, nil
}

func (s *Seeder) clearCollection(ctx context.Context, collection string) (Result, error) {
	records, err := s.client.List(ctx, collection, record.ListOptions{})
	if err != nil {
		return Result{}, fmt.Errorf("failed to list collection %q: %w", collection, err)
	}

	var result Result

	for _, rec := range records {
		if err := s.client.Delete(ctx, collection, rec.ID()); err != nil {
			s.logger.Error("failed to delete record",
				zap.String("collection", collection),
				zap.String("id", rec.ID()),
				zap.Error(err))
			result.Failed++
			continue
		}

		result.Succeeded++
	}

	return result, nil
}

func (s *Seeder) logResult(operation string, result Result) {
	s.logger.Info(operation+" completed",
		zap.Int("succeeded", result.Succeeded),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", result.Failed))
}

func matchGameByName(games []gamedomain.Game, name string) *gamedomain.Game {
	for i := range games {
		if games[i].Name == name {
			return &games[i]
		}
	}

	return nil
}
