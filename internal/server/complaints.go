package server

import (
	"encoding/json"
	"mime/multipart"
	"net/http"

	"gramsahayak/internal/complaint"

	"github.com/alexedwards/flow"
)

const maxUploadBytes = 32 << 20

// uploadFormFiles pushes every file under the given form field to object
// storage and returns their public URLs.
func (s *Service) uploadFormFiles(r *http.Request, field, folder string) ([]string, error) {
	urls := []string{}

	if r.MultipartForm == nil {
		return urls, nil
	}

	for _, header := range r.MultipartForm.File[field] {
		url, err := s.uploadOne(r, header, folder)
		if err != nil {
			return nil, err
		}

		urls = append(urls, url)
	}

	return urls, nil
}

func (s *Service) uploadOne(r *http.Request, header *multipart.FileHeader, folder string) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", err
	}

	defer file.Close()

	return s.uploads.UploadFile(r.Context(), folder, header.Filename, file, header.Header.Get("Content-Type"))
}

type raiseComplaintForm struct {
	PhoneNumber   string `form:"phone_number"`
	ComplaintName string `form:"complaint_name"`
	ComplaintDesc string `form:"complaint_desc"`
	Location      string `form:"location"`
}

func (s *Service) handleRaiseComplaint(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.respondDetail(w, http.StatusBadRequest, "expected multipart form data")
		return
	}

	var form raiseComplaintForm
	if err := decoder.Decode(&form, r.MultipartForm.Value); err != nil {
		s.respondDetail(w, http.StatusBadRequest, "invalid form data")
		return
	}

	if form.PhoneNumber == "" || form.ComplaintName == "" {
		s.respondDetail(w, http.StatusBadRequest, "phone_number and complaint_name are required")
		return
	}

	attachments, err := s.uploadFormFiles(r, "attachments", "complaints")
	if err != nil {
		s.respondError(w, err)
		return
	}

	created, err := s.engine.Raise(r.Context(), complaint.RaiseInput{
		PhoneNumber:   form.PhoneNumber,
		ComplaintName: form.ComplaintName,
		ComplaintDesc: form.ComplaintDesc,
		Location:      form.Location,
		Attachments:   attachments,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusCreated, created)
}

func (s *Service) handleComplaintsByVillager(w http.ResponseWriter, r *http.Request) {
	phoneNumber := flow.Param(r.Context(), "phone_number")

	complaints, err := s.engine.ComplaintsForVillager(r.Context(), phoneNumber)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, complaints)
}

func (s *Service) handleComplaintsForOfficial(w http.ResponseWriter, r *http.Request) {
	governmentID := flow.Param(r.Context(), "government_id")

	complaints, err := s.engine.ComplaintsForOfficial(r.Context(), governmentID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, complaints)
}

type resolveComplaintForm struct {
	GovernmentID    string `form:"government_id"`
	ResolutionNotes string `form:"resolution_notes"`
}

func (s *Service) handleResolveComplaint(w http.ResponseWriter, r *http.Request) {
	complaintID := flow.Param(r.Context(), "complaint_id")

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.respondDetail(w, http.StatusBadRequest, "expected multipart form data")
		return
	}

	var form resolveComplaintForm
	if err := decoder.Decode(&form, r.MultipartForm.Value); err != nil {
		s.respondDetail(w, http.StatusBadRequest, "invalid form data")
		return
	}

	if form.GovernmentID == "" {
		s.respondDetail(w, http.StatusBadRequest, "government_id is required")
		return
	}

	proof, err := s.uploadFormFiles(r, "proof_attachments", "resolutions")
	if err != nil {
		s.respondError(w, err)
		return
	}

	resolved, err := s.engine.Resolve(r.Context(), complaintID, complaint.ResolveInput{
		GovernmentID:     form.GovernmentID,
		Notes:            form.ResolutionNotes,
		ProofAttachments: proof,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, resolved)
}

func (s *Service) handleReopenComplaint(w http.ResponseWriter, r *http.Request) {
	complaintID := flow.Param(r.Context(), "complaint_id")

	var req struct {
		PhoneNumber string `json:"phone_number"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondDetail(w, http.StatusBadRequest, "invalid json payload")
		return
	}

	reopened, err := s.engine.Reopen(r.Context(), complaintID, req.PhoneNumber)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, reopened)
}
