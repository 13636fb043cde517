package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/repline-dev/repline/internal/api"
	"github.com/repline-dev/repline/internal/domain"
	mw "github.com/repline-dev/repline/internal/middleware"
	"github.com/repline-dev/repline/internal/utils"
)

func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	submissionId, err := parseIntParam(mux.Vars(r)["submission"], "submission ID")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.CreateMessageRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	message, err := h.message.Create(domain.MessageCreationData{
		Submission: submissionId,
		Author:     *user,
		Text:       body.Text,
		VideoRef:   body.VideoRef,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.NewMessageResponse(&message))
}

func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	submissionId, err := parseIntParam(mux.Vars(r)["submission"], "submission ID")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	messages, err := h.message.List(submissionId, domain.VisibilityFor(user))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.NewMessageListResponse(messages))
}
