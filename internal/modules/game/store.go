package game

import (
	"context"

	"github.com/thorvi/playtrack/internal/modules/core"
	"github.com/thorvi/playtrack/internal/modules/game/domain"
	"github.com/thorvi/playtrack/internal/record"

	"go.uber.org/zap"
)

// Collection is the record store collection holding games.
const Collection = "games"

// Store is the read/update façade over the record store's games collection.
type Store struct {
	client record.Client
	logger *zap.Logger
}

func NewStore(client record.Client, logger *zap.Logger) *Store {
	return &Store{client: client, logger: logger}
}

// ListAll fetches every game sorted by name ascending. Fetch failures
// propagate to the caller.
func (s *Store) ListAll(ctx context.Context) ([]domain.Game, error) {
	records, err := s.client.List(ctx, Collection, record.ListOptions{Sort: "name"})
	if err != nil {
		return nil, err
	}

	return core.Map(records, domain.FromRecord), nil
}

// GetByID returns nil both when the game does not exist and when the fetch
// fails - callers cannot tell the two apart, which is the intended contract.
// Failures are logged here, not surfaced.
func (s *Store) GetByID(ctx context.Context, id string) *domain.Game {
	rec, err := s.client.GetOne(ctx, Collection, id)
	if err != nil {
		s.logger.Warn("failed to fetch game", zap.String("game_id", id), zap.Error(err))
		return nil
	}

	game := domain.FromRecord(rec)

	return &game
}

// ToggleFavorite flips isFavorite from the state the caller observed. There
// is no concurrency token - two concurrent toggles race and the last write
// wins.
func (s *Store) ToggleFavorite(ctx context.Context, id string, current bool) (domain.Game, error) {
	rec, err := s.client.Update(ctx, Collection, id, map[string]any{"isFavorite": !current})
	if err != nil {
		return domain.Game{}, err
	}

	return domain.FromRecord(rec), nil
}
