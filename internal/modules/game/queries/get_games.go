package queries

import (
	"context"
	"net/http"

	"github.com/thorvi/playtrack/internal/modules/core"
	"github.com/thorvi/playtrack/internal/modules/game"
	"github.com/thorvi/playtrack/internal/modules/game/domain"

	"github.com/eskrenkovic/mediator-go"
)

type GetGamesQuery struct{}

func HandleGetGames(w http.ResponseWriter, r *http.Request) {
	response, err := mediator.Send[GetGamesQuery, []domain.Game](r.Context(), GetGamesQuery{})
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type GetGamesQueryHandler struct {
	store *game.Store
}

func NewGetGamesQueryHandler(store *game.Store) *GetGamesQueryHandler {
	return &GetGamesQueryHandler{store}
}

func (h *GetGamesQueryHandler) Handle(
	ctx context.Context,
	request GetGamesQuery,
) ([]domain.Game, error) {
	games, err := h.store.ListAll(ctx)
	if err != nil {
		return nil, core.NewCommandError(502, err, core.WithReason("failed to list games"))
	}

	return games, nil
}
