package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/repline-dev/repline/internal/api"
	"github.com/repline-dev/repline/internal/domain"
	mw "github.com/repline-dev/repline/internal/middleware"
	"github.com/repline-dev/repline/internal/utils"
)

func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	messageId, err := parseIntParam(mux.Vars(r)["message"], "message ID")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.readStatus.MarkRead(user.Id, messageId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) GetUnreadCounts(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	programId, err := parseProgramIdQuery(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	counts, err := h.readStatus.UnreadCounts(domain.VisibilityFor(user), programId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.NewUnreadCountsResponse(&counts))
}
