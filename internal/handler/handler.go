package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/repline-dev/repline/internal/config"
	"github.com/repline-dev/repline/internal/logger"
	"github.com/repline-dev/repline/internal/service"
)

// HealthChecker is what Ready needs from the storage.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	submission service.SubmissionService
	message    service.MessageService
	readStatus service.ReadStatusService
	health     HealthChecker
	cfg        *config.Config
}

func New(submission service.SubmissionService, message service.MessageService, readStatus service.ReadStatusService, health HealthChecker, cfg *config.Config) *Handler {
	return &Handler{submission, message, readStatus, health, cfg}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "err", err)
	}
}
