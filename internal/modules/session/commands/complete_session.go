package commands

import (
	"context"
	"fmt"
	"net/http"

	"github.com/thorvi/playtrack/internal/modules/core"
	"github.com/thorvi/playtrack/internal/modules/session"
	"github.com/thorvi/playtrack/internal/modules/session/domain"
	"github.com/thorvi/playtrack/internal/record"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
)

// CompleteSessionCommand sets the completion flag. The session record is
// retained so completed sessions remain visible as history.
type CompleteSessionCommand struct {
	SessionID   string `json:"-"`
	IsCompleted bool   `json:"isCompleted"`
}

func (c CompleteSessionCommand) Validate() error {
	if c.SessionID == "" {
		return fmt.Errorf("invalid SessionID - '%s'", c.SessionID)
	}

	return nil
}

func HandleCompleteSession(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[CompleteSessionCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}

	command.SessionID = chi.URLParam(r, "id")

	response, err := mediator.Send[CompleteSessionCommand, domain.Session](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type CompleteSessionCommandHandler struct {
	store *session.Store
}

func NewCompleteSessionCommandHandler(store *session.Store) *CompleteSessionCommandHandler {
	return &CompleteSessionCommandHandler{store}
}

func (h *CompleteSessionCommandHandler) Handle(
	ctx context.Context,
	request CompleteSessionCommand,
) (domain.Session, error) {
	updated, err := h.store.MarkCompleted(ctx, request.SessionID, request.IsCompleted)
	switch {
	case record.IsNotFound(err):
		return domain.Session{}, core.NewCommandError(404, err)
	case err != nil:
		return domain.Session{}, core.NewCommandError(502, err)
	}

	return updated, nil
}
