package queries

import (
	"context"
	"net/http"

	"github.com/thorvi/playtrack/internal/modules/core"
	"github.com/thorvi/playtrack/internal/modules/session"
	"github.com/thorvi/playtrack/internal/modules/session/domain"

	"github.com/eskrenkovic/mediator-go"
)

type GetSessionsQuery struct{}

func HandleGetSessions(w http.ResponseWriter, r *http.Request) {
	response, err := mediator.Send[GetSessionsQuery, []domain.Session](r.Context(), GetSessionsQuery{})
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type GetSessionsQueryHandler struct {
	store *session.Store
}

func NewGetSessionsQueryHandler(store *session.Store) *GetSessionsQueryHandler {
	return &GetSessionsQueryHandler{store}
}

func (h *GetSessionsQueryHandler) Handle(
	ctx context.Context,
	request GetSessionsQuery,
) ([]domain.Session, error) {
	sessions, err := h.store.ListAll(ctx)
	if err != nil {
		return nil, core.NewCommandError(502, err, core.WithReason("failed to list sessions"))
	}

	return sessions, nil
}
