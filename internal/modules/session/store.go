package session

import (
	"context"
	"io"
	"time"

	"github.com/thorvi/playtrack/internal/modules/core"
	"github.com/thorvi/playtrack/internal/modules/session/domain"
	"github.com/thorvi/playtrack/internal/record"

	"go.uber.org/zap"
)

// Collection is the record store collection holding sessions.
const Collection = "sessions"

// Store is the read/write/subscribe façade over the record store's sessions
// collection.
type Store struct {
	client       record.Client
	baseURL      string
	pollInterval time.Duration
	logger       *zap.Logger
}

func NewStore(client record.Client, baseURL string, pollInterval time.Duration, logger *zap.Logger) *Store {
	return &Store{
		client:       client,
		baseURL:      baseURL,
		pollInterval: pollInterval,
		logger:       logger,
	}
}

func (s *Store) fromRecord(rec record.Record) domain.Session {
	return domain.FromRecord(s.baseURL, rec)
}

// ListAll fetches every session sorted by creation time descending.
func (s *Store) ListAll(ctx context.Context) ([]domain.Session, error) {
	records, err := s.client.List(ctx, Collection, record.ListOptions{Sort: "-created"})
	if err != nil {
		return nil, err
	}

	return core.Map(records, s.fromRecord), nil
}

// GetByID returns nil both when the session does not exist and when the
// fetch fails, same collapse as the game store.
func (s *Store) GetByID(ctx context.Context, id string) *domain.Session {
	rec, err := s.client.GetOne(ctx, Collection, id)
	if err != nil {
		s.logger.Warn("failed to fetch session", zap.String("session_id", id), zap.Error(err))
		return nil
	}

	session := s.fromRecord(rec)

	return &session
}

// Create schedules a new session. The backend assigns the id.
func (s *Store) Create(ctx context.Context, input domain.SessionInput) (domain.Session, error) {
	rec, err := s.client.Create(ctx, Collection, input.Fields())
	if err != nil {
		return domain.Session{}, err
	}

	return s.fromRecord(rec), nil
}

// Remove deletes the session. Delete failures, not-found included, propagate.
func (s *Store) Remove(ctx context.Context, id string) error {
	return s.client.Delete(ctx, Collection, id)
}

// MarkCompleted updates only the completion flag. The record is retained -
// completed sessions stay listable as history.
func (s *Store) MarkCompleted(ctx context.Context, id string, completed bool) (domain.Session, error) {
	rec, err := s.client.Update(ctx, Collection, id, map[string]any{"isCompleted": completed})
	if err != nil {
		return domain.Session{}, err
	}

	return s.fromRecord(rec), nil
}

// AttachPhoto uploads a captured photo into the session's picture field and
// returns the session with its synthesized photo URL.
func (s *Store) AttachPhoto(ctx context.Context, id, filename string, contents io.Reader) (domain.Session, error) {
	rec, err := s.client.UpdateFile(ctx, Collection, id, "picture", filename, contents)
	if err != nil {
		return domain.Session{}, err
	}

	return s.fromRecord(rec), nil
}
