package server

import (
	"encoding/json"
	"net/http"

	"gramsahayak/pkg/types"
)

func (s *Service) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var project types.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		s.respondDetail(w, http.StatusBadRequest, "invalid json payload")
		return
	}

	if project.ProjectName == "" || project.VillageName == "" {
		s.respondDetail(w, http.StatusBadRequest, "project_name and village_name are required")
		return
	}

	if project.Status == "" {
		project.Status = types.ProjectStatusPending
	}

	if err := s.projectsRepo.CreateProject(r.Context(), &project); err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusCreated, &project)
}

func (s *Service) handleListProjects(w http.ResponseWriter, r *http.Request) {
	villageName := r.URL.Query().Get("village_name")
	if villageName == "" {
		s.respondDetail(w, http.StatusBadRequest, "village_name query parameter is required")
		return
	}

	projects, err := s.projectsRepo.ProjectsByVillage(r.Context(), villageName)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, projects)
}
