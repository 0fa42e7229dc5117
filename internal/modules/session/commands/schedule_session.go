package commands

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"slices"

	"github.com/thorvi/playtrack/internal/modules/core"
	"github.com/thorvi/playtrack/internal/modules/game"
	"github.com/thorvi/playtrack/internal/modules/session"
	"github.com/thorvi/playtrack/internal/modules/session/domain"

	"github.com/eskrenkovic/mediator-go"
)

// ScheduleSessionCommand schedules a play session for a game right now. The
// game's name is denormalized onto the session at schedule time and not kept
// in sync with later renames.
type ScheduleSessionCommand struct {
	GameID   string `json:"gameId"`
	Duration string `json:"duration"`
}

func (c ScheduleSessionCommand) Validate() error {
	if c.GameID == "" {
		return fmt.Errorf("invalid GameID - '%s'", c.GameID)
	}

	if !slices.Contains(domain.Durations, c.Duration) {
		return fmt.Errorf("invalid Duration - '%s'", c.Duration)
	}

	return nil
}

func HandleScheduleSession(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[ScheduleSessionCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}

	response, err := mediator.Send[ScheduleSessionCommand, domain.Session](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	location := path.Join(r.Host, "sessions", response.ID)
	core.WriteCreated(w, r, location, response)
}

type ScheduleSessionCommandHandler struct {
	games    *game.Store
	sessions *session.Store
}

func NewScheduleSessionCommandHandler(games *game.Store, sessions *session.Store) *ScheduleSessionCommandHandler {
	return &ScheduleSessionCommandHandler{games: games, sessions: sessions}
}

func (h *ScheduleSessionCommandHandler) Handle(
	ctx context.Context,
	request ScheduleSessionCommand,
) (domain.Session, error) {
	g := h.games.GetByID(ctx, request.GameID)
	if g == nil {
		return domain.Session{}, core.NewCommandError(
			404,
			fmt.Errorf("game '%s' not found", request.GameID),
		)
	}

	input := domain.SessionInput{
		GameID:        g.ID,
		GameName:      g.Name,
		ScheduledTime: domain.FormatScheduledTime(request.Duration),
		Duration:      request.Duration,
	}

	created, err := h.sessions.Create(ctx, input)
	if err != nil {
		return domain.Session{}, core.NewCommandError(502, err, core.WithReason("failed to create session"))
	}

	return created, nil
}
