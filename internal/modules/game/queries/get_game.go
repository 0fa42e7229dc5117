package queries

import (
	"context"
	"fmt"
	"net/http"

	"github.com/thorvi/playtrack/internal/modules/core"
	"github.com/thorvi/playtrack/internal/modules/game"
	"github.com/thorvi/playtrack/internal/modules/game/domain"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
)

type GetGameQuery struct {
	GameID string
}

func (q GetGameQuery) Validate() error {
	if q.GameID == "" {
		return fmt.Errorf("invalid GameID - '%s'", q.GameID)
	}

	return nil
}

func HandleGetGame(w http.ResponseWriter, r *http.Request) {
	query := GetGameQuery{GameID: chi.URLParam(r, "id")}

	response, err := mediator.Send[GetGameQuery, *domain.Game](r.Context(), query)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	if response == nil {
		core.WriteNotFound(w, r, fmt.Errorf("game '%s' not found", query.GameID))
		return
	}

	core.WriteOK(w, r, response)
}

type GetGameQueryHandler struct {
	store *game.Store
}

func NewGetGameQueryHandler(store *game.Store) *GetGameQueryHandler {
	return &GetGameQueryHandler{store}
}

// Handle returns nil without error when the game is missing or the fetch
// failed - the store collapses both cases.
func (h *GetGameQueryHandler) Handle(
	ctx context.Context,
	request GetGameQuery,
) (*domain.Game, error) {
	return h.store.GetByID(ctx, request.GameID), nil
}
