package server

import (
	"encoding/json"
	"net/http"

	"gramsahayak/internal/utils"
	"gramsahayak/pkg/types"

	"github.com/alexedwards/flow"
)

// verifyOfficial confirms the acting user is a registered official. Used
// by the proposal decision endpoints, which are official-only.
func (s *Service) verifyOfficial(r *http.Request, officialID string) error {
	if !utils.ValidID(officialID) {
		return types.ErrInvalidID
	}

	if _, err := s.officialsRepo.Official(r.Context(), officialID); err != nil {
		return types.ErrNotOfficial
	}

	return nil
}

type createProposalRequest struct {
	VillageID            string `json:"village_id"`
	ProposedProjectTitle string `json:"proposed_project_title"`
}

func (s *Service) handleCreateProposal(w http.ResponseWriter, r *http.Request) {
	var req createProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondDetail(w, http.StatusBadRequest, "invalid json payload")
		return
	}

	if req.VillageID == "" || req.ProposedProjectTitle == "" {
		s.respondDetail(w, http.StatusBadRequest, "village_id and proposed_project_title are required")
		return
	}

	proposal := &types.Proposal{
		VillageID:            req.VillageID,
		ProposedProjectTitle: req.ProposedProjectTitle,
	}

	if err := s.proposalsRepo.CreateProposal(r.Context(), proposal); err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusCreated, proposal)
}

func (s *Service) handleListProposals(w http.ResponseWriter, r *http.Request) {
	proposals, err := s.proposalsRepo.Proposals(r.Context(), r.URL.Query().Get("village_id"))
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, proposals)
}

func (s *Service) handleApproveProposal(w http.ResponseWriter, r *http.Request) {
	s.decideProposal(w, r, types.ProposalStatusApproved)
}

func (s *Service) handleRejectProposal(w http.ResponseWriter, r *http.Request) {
	s.decideProposal(w, r, types.ProposalStatusRejected)
}

func (s *Service) decideProposal(w http.ResponseWriter, r *http.Request, status types.ProposalStatus) {
	proposalID := flow.Param(r.Context(), "proposal_id")

	var req struct {
		OfficialID string `json:"official_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondDetail(w, http.StatusBadRequest, "invalid json payload")
		return
	}

	if err := s.verifyOfficial(r, req.OfficialID); err != nil {
		s.respondError(w, err)
		return
	}

	if err := s.proposalsRepo.UpdateProposalStatus(r.Context(), proposalID, status); err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{
		"message": "Proposal " + string(status),
		"id":      proposalID,
	})
}
