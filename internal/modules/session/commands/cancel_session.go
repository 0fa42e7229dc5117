package commands

import (
	"context"
	"fmt"
	"net/http"

	"github.com/thorvi/playtrack/internal/modules/core"
	"github.com/thorvi/playtrack/internal/modules/session"
	"github.com/thorvi/playtrack/internal/record"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
)

// CancelSessionCommand removes a scheduled session entirely.
type CancelSessionCommand struct {
	SessionID string
}

func (c CancelSessionCommand) Validate() error {
	if c.SessionID == "" {
		return fmt.Errorf("invalid SessionID - '%s'", c.SessionID)
	}

	return nil
}

func HandleCancelSession(w http.ResponseWriter, r *http.Request) {
	command := CancelSessionCommand{SessionID: chi.URLParam(r, "id")}

	_, err := mediator.Send[CancelSessionCommand, core.Unit](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, nil)
}

type CancelSessionCommandHandler struct {
	store *session.Store
}

func NewCancelSessionCommandHandler(store *session.Store) *CancelSessionCommandHandler {
	return &CancelSessionCommandHandler{store}
}

func (h *CancelSessionCommandHandler) Handle(
	ctx context.Context,
	request CancelSessionCommand,
) (core.Unit, error) {
	err := h.store.Remove(ctx, request.SessionID)
	switch {
	case record.IsNotFound(err):
		return core.Unit{}, core.NewCommandError(404, err)
	case err != nil:
		return core.Unit{}, core.NewCommandError(502, err)
	}

	return core.Unit{}, nil
}
