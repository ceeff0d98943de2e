package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"gramsahayak/pkg/types"

	"golang.org/x/crypto/bcrypt"
)

type villagerSignupRequest struct {
	Name        string `json:"name"`
	Gender      string `json:"gender"`
	Age         int    `json:"age"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	VillageName string `json:"village_name"`
	Taluk       string `json:"taluk"`
	District    string `json:"district"`
	State       string `json:"state"`
	Password    string `json:"password"`
}

func validPhone(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (s *Service) handleSignupVillager(w http.ResponseWriter, r *http.Request) {
	var req villagerSignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondDetail(w, http.StatusBadRequest, "invalid json payload")
		return
	}

	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	if !validPhone(req.PhoneNumber) {
		s.respondError(w, types.ErrBadPhone)
		return
	}

	if req.Name == "" || req.Password == "" || req.VillageName == "" {
		s.respondDetail(w, http.StatusBadRequest, "name, password and village_name are required")
		return
	}

	_, err := s.villagersRepo.VillagerByPhone(r.Context(), req.PhoneNumber)
	if err == nil {
		s.respondError(w, types.ErrPhoneTaken)
		return
	}
	if !errors.Is(err, types.ErrVillagerNotFound) {
		s.respondError(w, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.respondError(w, err)
		return
	}

	villager := &types.Villager{
		Name:        req.Name,
		Gender:      req.Gender,
		Age:         req.Age,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		VillageName: req.VillageName,
		Taluk:       req.Taluk,
		District:    req.District,
		State:       req.State,
		Password:    string(hash),
		Role:        types.RoleVillager,
	}

	if err := s.villagersRepo.CreateVillager(r.Context(), villager); err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusCreated, map[string]string{
		"message": "Villager account created successfully",
		"user_id": villager.ID,
		"name":    villager.Name,
	})
}

type loginRequest struct {
	PhoneNumber  string `json:"phone_number"`
	ContractorID string `json:"contractor_id"`
	GovernmentID string `json:"government_id"`
	Password     string `json:"password"`
}

func (s *Service) handleLoginVillager(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondDetail(w, http.StatusBadRequest, "invalid json payload")
		return
	}

	villager, err := s.villagersRepo.VillagerByPhone(r.Context(), strings.TrimSpace(req.PhoneNumber))
	if err != nil {
		s.respondError(w, types.ErrBadLogin)
		return
	}

	s.finishLogin(w, villager.ID, types.RoleVillager, villager.Name, villager.Password, req.Password)
}

func (s *Service) handleLoginContractor(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondDetail(w, http.StatusBadRequest, "invalid json payload")
		return
	}

	contractor, err := s.contractorsRepo.ContractorByContractorID(r.Context(), req.ContractorID)
	if err != nil {
		s.respondError(w, types.ErrBadLogin)
		return
	}

	s.finishLogin(w, contractor.ID, types.RoleContractor, contractor.Name, contractor.Password, req.Password)
}

func (s *Service) handleLoginOfficial(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondDetail(w, http.StatusBadRequest, "invalid json payload")
		return
	}

	official, err := s.officialsRepo.OfficialByGovernmentID(r.Context(), req.GovernmentID)
	if err != nil {
		s.respondError(w, types.ErrBadLogin)
		return
	}

	s.finishLogin(w, official.ID, types.RoleOfficial, official.Name, official.Password, req.Password)
}

func (s *Service) finishLogin(w http.ResponseWriter, userID, role, name, hash, password string) {
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		s.respondError(w, types.ErrBadLogin)
		return
	}

	token, err := s.issueToken(userID, role, name)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{
		"message": "Login successful",
		"role":    role,
		"name":    name,
		"id":      userID,
		"token":   token,
	})
}
