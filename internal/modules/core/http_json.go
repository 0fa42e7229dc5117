package core

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

func RequestBody[TRequest any](r *http.Request) (TRequest, error) {
	var request TRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	return request, err
}

type ResponseOption func(http.ResponseWriter, *http.Request)

func WithHeader(header, value string) ResponseOption {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add(header, value)
	}
}

func WriteOK(w http.ResponseWriter, r *http.Request, body interface{}) {
	WriteResponse(w, r, http.StatusOK, body)
}

func WriteCreated(w http.ResponseWriter, r *http.Request, location string, body interface{}) {
	WriteResponse(w, r, http.StatusCreated, body, WithHeader("Location", location))
}

func WriteBadRequest(w http.ResponseWriter, r *http.Request, body interface{}) {
	WriteResponse(w, r, http.StatusBadRequest, body)
}

func WriteNotFound(w http.ResponseWriter, r *http.Request, body interface{}) {
	WriteResponse(w, r, http.StatusNotFound, body)
}

func WriteCommandError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := http.StatusInternalServerError
	if commandErr, ok := err.(CommandError); ok {
		statusCode = commandErr.StatusCode
	}
	WriteResponse(w, r, statusCode, err)
}

func WriteResponse(
	w http.ResponseWriter,
	r *http.Request,
	statusCode int,
	body interface{},
	opts ...ResponseOption,
) {
	for _, opt := range opts {
		opt(w, r)
	}

	if body != nil {
		w.Header().Set("Content-Type", "application/json")
	}

	w.WriteHeader(statusCode)
	writeBodyIfPresent(r.Context(), w, body)
}

func writeBodyIfPresent(ctx context.Context, w http.ResponseWriter, body interface{}) {
	if body == nil {
		return
	}

	// Handle special case where the body is error
	// as error marshals into an empty object.
	if err, ok := body.(error); ok {
		payload := struct {
			Error string `json:"error"`
		}{Error: err.Error()}

		responseBytes, err := json.Marshal(payload)
		if err != nil {
			LogError(ctx, "failed to serialize response error", zap.Error(err))
			return
		}

		if _, err := w.Write(responseBytes); err != nil {
			LogError(ctx, "failed to write response", zap.Error(err))
		}
		return
	}

	responseBytes, err := json.Marshal(body)
	if err != nil {
		if _, err := w.Write([]byte(err.Error())); err != nil {
			LogError(ctx, "failed to write response", zap.Error(err))
		}
		return
	}

	if _, err := w.Write(responseBytes); err != nil {
		LogError(ctx, "failed to write response", zap.Error(err))
	}
}
