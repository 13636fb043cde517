package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/repline-dev/repline/internal/errors"
	"github.com/repline-dev/repline/internal/logger"
)

type errorBody struct {
	Error errorPayload `json:"error"`
}

type errorPayload struct {
	Kind    errors.Kind `json:"kind"`
	Message string      `json:"message"`
}

// WriteErrorAndStatusCode renders err as a structured JSON error.
// Unexpected errors collapse to a generic 500 so storage internals
// never leak to the caller.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	payload := errorPayload{Kind: errors.KindInternal, Message: "Internal server error"}

	if e, ok := err.(*errors.ErrorWithStatusCode); ok {
		status = e.StatusCode
		payload = errorPayload{Kind: e.Kind, Message: e.Message}
	} else {
		logger.Log.Error("unexpected error", "err", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{Error: payload})
}

func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return errors.Validation("Body is invalid json")
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		return errors.Validation("Required fields missing")
	}
	return nil
}
