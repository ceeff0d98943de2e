package server

import (
	"net/http"

	"gramsahayak/internal/utils"
	"gramsahayak/pkg/types"
)

// handleDashboardStats aggregates the numbers shown on the villager home
// screen: village budget in flight, resolved discussions, and the
// villager's own contribution.
func (s *Service) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	villagerID := r.URL.Query().Get("villager_id")
	if !utils.ValidID(villagerID) {
		s.respondError(w, types.ErrInvalidID)
		return
	}

	villager, err := s.villagersRepo.Villager(r.Context(), villagerID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	budget, err := s.projectsRepo.BudgetInProgress(r.Context(), villager.VillageName)
	if err != nil {
		s.respondError(w, err)
		return
	}

	resolved, err := s.discussionsRepo.CountResolved(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}

	personal, err := s.discussionsRepo.CountResolvedByUser(r.Context(), villager.ID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, types.DashboardStats{
		BudgetUsed:     budget,
		IssuesResolved: resolved,
		VillageMood:    "Neutral 😐",
		PersonalImpact: personal,
		NextMeeting:    "Jan 24, 10 AM",
	})
}
