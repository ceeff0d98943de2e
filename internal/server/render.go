package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"gramsahayak/pkg/types"
)

func (s *Service) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}

// respondDetail matches the {"detail": ...} error shape existing clients
// parse.
func (s *Service) respondDetail(w http.ResponseWriter, status int, detail string) {
	s.respondJSON(w, status, map[string]string{"detail": detail})
}

func (s *Service) respondError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		s.logger.WithError(err).Error("request failed")
		s.respondDetail(w, status, "internal server error")
		return
	}

	s.respondDetail(w, status, err.Error())
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, types.ErrVillagerNotFound),
		errors.Is(err, types.ErrOfficialNotFound),
		errors.Is(err, types.ErrContractorNotFound),
		errors.Is(err, types.ErrComplaintNotFound),
		errors.Is(err, types.ErrSchemeNotFound),
		errors.Is(err, types.ErrProposalNotFound),
		errors.Is(err, types.ErrDiscussionNotFound),
		errors.Is(err, types.ErrUserNotFound):
		return http.StatusNotFound

	case errors.Is(err, types.ErrInvalidID),
		errors.Is(err, types.ErrPhoneTaken),
		errors.Is(err, types.ErrBadPhone),
		errors.Is(err, types.ErrNotReopenable):
		return http.StatusBadRequest

	case errors.Is(err, types.ErrBadLogin):
		return http.StatusUnauthorized

	case errors.Is(err, types.ErrVillageMismatch),
		errors.Is(err, types.ErrPhoneMismatch),
		errors.Is(err, types.ErrResolveWindowClosed),
		errors.Is(err, types.ErrNotOfficial):
		return http.StatusForbidden
	}

	return http.StatusInternalServerError
}
