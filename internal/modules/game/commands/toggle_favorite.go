package commands

import (
	"context"
	"fmt"
	"net/http"

	"github.com/thorvi/playtrack/internal/modules/core"
	"github.com/thorvi/playtrack/internal/modules/game"
	"github.com/thorvi/playtrack/internal/modules/game/domain"
	"github.com/thorvi/playtrack/internal/record"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
)

// ToggleFavoriteCommand flips a game's favorite flag. IsFavorite is the
// state the caller last observed, not the target state.
type ToggleFavoriteCommand struct {
	GameID     string `json:"-"`
	IsFavorite bool   `json:"isFavorite"`
}

func (c ToggleFavoriteCommand) Validate() error {
	if c.GameID == "" {
		return fmt.Errorf("invalid GameID - '%s'", c.GameID)
	}

	return nil
}

func HandleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[ToggleFavoriteCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}

	command.GameID = chi.URLParam(r, "id")

	response, err := mediator.Send[ToggleFavoriteCommand, domain.Game](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type ToggleFavoriteCommandHandler struct {
	store *game.Store
}

func NewToggleFavoriteCommandHandler(store *game.Store) *ToggleFavoriteCommandHandler {
	return &ToggleFavoriteCommandHandler{store}
}

func (h *ToggleFavoriteCommandHandler) Handle(
	ctx context.Context,
	request ToggleFavoriteCommand,
) (domain.Game, error) {
	updated, err := h.store.ToggleFavorite(ctx, request.GameID, request.IsFavorite)
	switch {
	case record.IsNotFound(err):
		return domain.Game{}, core.NewCommandError(404, err)
	case err != nil:
		return domain.Game{}, core.NewCommandError(502, err)
	}

	return updated, nil
}
