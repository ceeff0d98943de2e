package server

import (
	"net/http"

	"github.com/alexedwards/flow"
)

func (s *Service) handleListSchemes(w http.ResponseWriter, r *http.Request) {
	schemes, err := s.schemesRepo.Schemes(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, schemes)
}

func (s *Service) handleSchemeByID(w http.ResponseWriter, r *http.Request) {
	schemeID := flow.Param(r.Context(), "scheme_id")

	scheme, err := s.schemesRepo.SchemeBySchemeID(r.Context(), schemeID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, scheme)
}
