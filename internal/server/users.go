package server

import (
	"net/http"

	"gramsahayak/pkg/types"

	"github.com/alexedwards/flow"
)

func (s *Service) handleListVillagers(w http.ResponseWriter, r *http.Request) {
	villagers, err := s.villagersRepo.Villagers(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, villagers)
}

func (s *Service) handleVillagerByPhone(w http.ResponseWriter, r *http.Request) {
	phoneNumber := flow.Param(r.Context(), "phone_number")

	villager, err := s.villagersRepo.VillagerByPhone(r.Context(), phoneNumber)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, villager)
}

func (s *Service) handleListOfficials(w http.ResponseWriter, r *http.Request) {
	officials, err := s.officialsRepo.Officials(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, officials)
}

func (s *Service) handleOfficialByGovernmentID(w http.ResponseWriter, r *http.Request) {
	governmentID := flow.Param(r.Context(), "government_id")

	official, err := s.officialsRepo.OfficialByGovernmentID(r.Context(), governmentID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, official)
}

func (s *Service) handleListContractors(w http.ResponseWriter, r *http.Request) {
	contractors, err := s.contractorsRepo.Contractors(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, contractors)
}

// handleContractorDashboard returns the contractor profile along with
// stats derived from their project portfolio.
func (s *Service) handleContractorDashboard(w http.ResponseWriter, r *http.Request) {
	contractorID := flow.Param(r.Context(), "contractor_id")

	contractor, err := s.contractorsRepo.ContractorByContractorID(r.Context(), contractorID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	projects, err := s.projectsRepo.ProjectsByContractor(r.Context(), contractor.ContractorID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	dashboard := types.ContractorDashboard{
		Contractor:     *contractor,
		ActiveProjects: []types.ProjectSummary{},
	}

	for _, project := range projects {
		dashboard.Stats.TotalContractValue += project.AllocatedBudget

		switch project.Status {
		case types.ProjectStatusCompleted:
			dashboard.Stats.ProjectsCompletedCount++
		case types.ProjectStatusPending:
			dashboard.Stats.PendingIssuesCount++
		default:
			dashboard.Stats.ActiveProjectsCount++
			dashboard.ActiveProjects = append(dashboard.ActiveProjects, types.ProjectSummary{
				ID:              project.ID,
				ProjectName:     project.ProjectName,
				Status:          string(project.Status),
				AllocatedBudget: project.AllocatedBudget,
				Location:        project.Location,
				StartDate:       project.StartDate,
			})
		}
	}

	s.respondJSON(w, http.StatusOK, dashboard)
}
