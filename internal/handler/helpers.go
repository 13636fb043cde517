package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/repline-dev/repline/internal/domain"
	"github.com/repline-dev/repline/internal/errors"
)

func parseIntParam(value, name string) (int64, error) {
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, errors.Validation(fmt.Sprintf("Invalid %s", name))
	}
	return parsed, nil
}

// parseProgramIdQuery returns nil when program_id is absent.
func parseProgramIdQuery(r *http.Request) (*domain.ProgramId, error) {
	raw := r.URL.Query().Get("program_id")
	if raw == "" {
		return nil, nil
	}
	id, err := parseIntParam(raw, "program_id")
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// parsePagination returns (0, 0) when both params are absent; the
// service substitutes the configured default limit.
func parsePagination(r *http.Request) (limit, offset int, err error) {
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := parseIntParam(raw, "limit")
		if err != nil {
			return 0, 0, err
		}
		limit = int(parsed)
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		parsed, err := parseIntParam(raw, "offset")
		if err != nil {
			return 0, 0, err
		}
		offset = int(parsed)
	}
	return limit, offset, nil
}
