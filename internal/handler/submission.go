package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/repline-dev/repline/internal/api"
	"github.com/repline-dev/repline/internal/domain"
	mw "github.com/repline-dev/repline/internal/middleware"
	"github.com/repline-dev/repline/internal/utils"
)

func (h *Handler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	programId, err := parseIntParam(mux.Vars(r)["program"], "program ID")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.CreateSubmissionRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	submission, err := h.submission.Create(domain.SubmissionCreationData{
		Program: programId,
		Student: user.Id,
		Title:   body.Title,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.NewSubmissionResponse(&submission))
}

func (h *Handler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := parseIntParam(mux.Vars(r)["submission"], "submission ID")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	submission, err := h.submission.Get(id, domain.VisibilityFor(user))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.NewSubmissionResponse(&submission))
}

func (h *Handler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
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
	limit, offset, err := parsePagination(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	summaries, err := h.submission.List(domain.VisibilityFor(user), programId, limit, offset)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.NewSubmissionListResponse(summaries))
}

func (h *Handler) DeleteSubmission(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := parseIntParam(mux.Vars(r)["submission"], "submission ID")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.submission.Delete(id, domain.VisibilityFor(user)); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
