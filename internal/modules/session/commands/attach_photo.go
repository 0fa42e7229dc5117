package commands

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/thorvi/playtrack/internal/modules/core"
	"github.com/thorvi/playtrack/internal/modules/session"
	"github.com/thorvi/playtrack/internal/modules/session/domain"
	"github.com/thorvi/playtrack/internal/record"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
	"go.uber.org/zap"
)

// maxPhotoSize caps an uploaded photo memory at 10 MiB.
const maxPhotoSize = 10 << 20

// AttachPhotoCommand attaches a captured photo to a session as its memory
// ("recordação").
type AttachPhotoCommand struct {
	SessionID string
	Filename  string
	Contents  []byte
}

func (c AttachPhotoCommand) Validate() error {
	if c.SessionID == "" {
		return fmt.Errorf("invalid SessionID - '%s'", c.SessionID)
	}

	if c.Filename == "" {
		return fmt.Errorf("invalid Filename - '%s'", c.Filename)
	}

	if len(c.Contents) == 0 {
		return fmt.Errorf("empty photo contents")
	}

	return nil
}

func HandleAttachPhoto(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}

	file, header, err := r.FormFile("picture")
	if err != nil {
		core.WriteBadRequest(w, r, fmt.Errorf("missing 'picture' file field: %w", err))
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			core.LogError(r.Context(), "failed to close uploaded file", zap.Error(err))
		}
	}()

	contents, err := io.ReadAll(io.LimitReader(file, maxPhotoSize))
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}

	command := AttachPhotoCommand{
		SessionID: chi.URLParam(r, "id"),
		Filename:  header.Filename,
		Contents:  contents,
	}

	response, err := mediator.Send[AttachPhotoCommand, domain.Session](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type AttachPhotoCommandHandler struct {
	store *session.Store
}

func NewAttachPhotoCommandHandler(store *session.Store) *AttachPhotoCommandHandler {
	return &AttachPhotoCommandHandler{store}
}

func (h *AttachPhotoCommandHandler) Handle(
	ctx context.Context,
	request AttachPhotoCommand,
) (domain.Session, error) {
	updated, err := h.store.AttachPhoto(
		ctx,
		request.SessionID,
		request.Filename,
		bytes.NewReader(request.Contents),
	)
	switch {
	case record.IsNotFound(err):
		return domain.Session{}, core.NewCommandError(404, err)
	case err != nil:
		return domain.Session{}, core.NewCommandError(502, err)
	}

	return updated, nil
}
