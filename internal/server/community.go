package server

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"gramsahayak/internal/utils"
	"gramsahayak/pkg/types"

	"github.com/alexedwards/flow"
)

// Word lists for anonymous villager identities on the community feed.
var (
	anonAdjectives = []string{
		"Brave", "Calm", "Clever", "Gentle", "Honest",
		"Kind", "Quiet", "Swift", "Wise", "Bold",
	}
	anonNouns = []string{
		"Peacock", "Banyan", "River", "Lotus", "Sparrow",
		"Mango", "Tiger", "Monsoon", "Lantern", "Wheat",
	}
)

func randomAnonymousIdentity() string {
	adjective := anonAdjectives[rand.IntN(len(anonAdjectives))]
	noun := anonNouns[rand.IntN(len(anonNouns))]

	return fmt.Sprintf("%s %s %02d", adjective, noun, rand.IntN(100))
}

type communityUser struct {
	ID          string
	DisplayName string
	Role        string
	VillageName string
}

// resolveCommunityUser accepts any identifier a client may hold for the
// acting user: an internal id, an official's government id, or a
// villager's phone number. Villagers post under a stable anonymous
// identity; officials post under their real name.
func (s *Service) resolveCommunityUser(r *http.Request, userID string) (*communityUser, error) {
	ctx := r.Context()

	if utils.ValidID(userID) {
		if villager, err := s.villagersRepo.Villager(ctx, userID); err == nil {
			return s.anonymizeVillager(r, villager)
		}

		if official, err := s.officialsRepo.Official(ctx, userID); err == nil {
			return officialCommunityUser(official), nil
		}
	}

	if official, err := s.officialsRepo.OfficialByGovernmentID(ctx, userID); err == nil {
		return officialCommunityUser(official), nil
	}

	if villager, err := s.villagersRepo.VillagerByPhone(ctx, userID); err == nil {
		return s.anonymizeVillager(r, villager)
	}

	return nil, types.ErrUserNotFound
}

func officialCommunityUser(official *types.Official) *communityUser {
	return &communityUser{
		ID:          official.ID,
		DisplayName: "Official " + official.Name,
		Role:        types.RoleOfficial,
		VillageName: official.VillageName,
	}
}

// anonymizeVillager returns the villager's stable anonymous identity,
// minting and persisting one on first use.
func (s *Service) anonymizeVillager(r *http.Request, villager *types.Villager) (*communityUser, error) {
	user := &communityUser{
		ID:          villager.ID,
		Role:        types.RoleVillager,
		VillageName: villager.VillageName,
	}

	if villager.AnonymousIdentity != nil && *villager.AnonymousIdentity != "" {
		user.DisplayName = *villager.AnonymousIdentity
		return user, nil
	}

	identity := randomAnonymousIdentity()
	if err := s.villagersRepo.SetAnonymousIdentity(r.Context(), villager.ID, identity); err != nil {
		return nil, err
	}

	user.DisplayName = identity

	return user, nil
}

type postDiscussionForm struct {
	UserID   string `form:"user_id"`
	Content  string `form:"content"`
	Category string `form:"category"`
}

func (s *Service) handlePostDiscussion(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.respondDetail(w, http.StatusBadRequest, "expected multipart form data")
		return
	}

	var form postDiscussionForm
	if err := decoder.Decode(&form, r.MultipartForm.Value); err != nil {
		s.respondDetail(w, http.StatusBadRequest, "invalid form data")
		return
	}

	if form.UserID == "" || form.Content == "" {
		s.respondDetail(w, http.StatusBadRequest, "user_id and content are required")
		return
	}

	user, err := s.resolveCommunityUser(r, form.UserID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	var imageURL *string
	images, err := s.uploadFormFiles(r, "image", "community")
	if err != nil {
		s.respondError(w, err)
		return
	}
	if len(images) > 0 {
		imageURL = &images[0]
	}

	discussion := &types.Discussion{
		VillageName: user.VillageName,
		UserName:    user.DisplayName,
		UserRole:    user.Role,
		RealUserID:  user.ID,
		Content:     form.Content,
		Category:    form.Category,
		ImageURL:    imageURL,
	}

	if err := s.discussionsRepo.CreateDiscussion(r.Context(), discussion); err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusCreated, discussion)
}

func (s *Service) handleFeed(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		s.respondDetail(w, http.StatusBadRequest, "user_id query parameter is required")
		return
	}

	user, err := s.resolveCommunityUser(r, userID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, _ = strconv.ParseUint(raw, 10, 64)
	}

	feed, err := s.discussionsRepo.Feed(r.Context(), user.VillageName, limit)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, feed)
}

// handleUpvoteDiscussion toggles the caller's upvote. A second request
// from the same user takes the vote back.
func (s *Service) handleUpvoteDiscussion(w http.ResponseWriter, r *http.Request) {
	discussionID := flow.Param(r.Context(), "discussion_id")

	var req struct {
		UserID string `json:"user_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondDetail(w, http.StatusBadRequest, "invalid json payload")
		return
	}

	user, err := s.resolveCommunityUser(r, req.UserID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	discussion, err := s.discussionsRepo.Discussion(r.Context(), discussionID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	if discussion.VillageName != user.VillageName {
		s.respondError(w, types.ErrVillageMismatch)
		return
	}

	voted := false
	for _, upvoter := range discussion.Upvoters {
		if upvoter == user.ID {
			voted = true
			break
		}
	}

	if voted {
		err = s.discussionsRepo.RemoveUpvote(r.Context(), discussionID, user.ID)
	} else {
		err = s.discussionsRepo.AddUpvote(r.Context(), discussionID, user.ID)
	}
	if err != nil {
		s.respondError(w, err)
		return
	}

	message := "Upvoted"
	if voted {
		message = "Upvote removed"
	}

	s.respondJSON(w, http.StatusOK, map[string]string{
		"message": message,
		"id":      discussionID,
	})
}

func (s *Service) handleCommentDiscussion(w http.ResponseWriter, r *http.Request) {
	discussionID := flow.Param(r.Context(), "discussion_id")

	var req struct {
		UserID  string `json:"user_id"`
		Content string `json:"content"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondDetail(w, http.StatusBadRequest, "invalid json payload")
		return
	}

	if req.Content == "" {
		s.respondDetail(w, http.StatusBadRequest, "content is required")
		return
	}

	user, err := s.resolveCommunityUser(r, req.UserID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	if _, err := s.discussionsRepo.Discussion(r.Context(), discussionID); err != nil {
		s.respondError(w, err)
		return
	}

	reply := types.DiscussionComment{
		UserName:  user.DisplayName,
		UserRole:  user.Role,
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.discussionsRepo.AppendReply(r.Context(), discussionID, reply); err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusCreated, reply)
}

func (s *Service) handleResetDiscussions(w http.ResponseWriter, r *http.Request) {
	if err := s.discussionsRepo.DeleteAll(r.Context()); err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{
		"message": "Community feed cleared",
	})
}
