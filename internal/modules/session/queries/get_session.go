package queries

import (
	"context"
	"fmt"
	"net/http"

	"github.com/thorvi/playtrack/internal/modules/core"
	"github.com/thorvi/playtrack/internal/modules/session"
	"github.com/thorvi/playtrack/internal/modules/session/domain"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
)

type GetSessionQuery struct {
	SessionID string
}

func (q GetSessionQuery) Validate() error {
	if q.SessionID == "" {
		return fmt.Errorf("invalid SessionID - '%s'", q.SessionID)
	}

	return nil
}

func HandleGetSession(w http.ResponseWriter, r *http.Request) {
	query := GetSessionQuery{SessionID: chi.URLParam(r, "id")}

	response, err := mediator.Send[GetSessionQuery, *domain.Session](r.Context(), query)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	if response == nil {
		core.WriteNotFound(w, r, fmt.Errorf("session '%s' not found", query.SessionID))
		return
	}

	core.WriteOK(w, r, response)
}

type GetSessionQueryHandler struct {
	store *session.Store
}

func NewGetSessionQueryHandler(store *session.Store) *GetSessionQueryHandler {
	return &GetSessionQueryHandler{store}
}

func (h *GetSessionQueryHandler) Handle(
	ctx context.Context,
	request GetSessionQuery,
) (*domain.Session, error) {
	return h.store.GetByID(ctx, request.SessionID), nil
}
