package server

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"gramsahayak/internal/complaint"
	"gramsahayak/internal/store"
	"gramsahayak/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

var decoder = form.NewDecoder()

// Uploader stores uploaded attachments and hands back public URLs.
type Uploader interface {
	UploadFile(ctx context.Context, folder, filename string, file multipart.File, contentType string) (string, error)
}

type Service struct {
	logger *logrus.Logger
	config *types.Config
	pool   *pgxpool.Pool

	engine *complaint.Engine

	villagersRepo   *store.VillagerRepository
	officialsRepo   *store.OfficialRepository
	contractorsRepo *store.ContractorRepository
	schemesRepo     *store.SchemeRepository
	proposalsRepo   *store.ProposalRepository
	projectsRepo    *store.ProjectRepository
	discussionsRepo *store.DiscussionRepository

	uploads Uploader

	signingKey []byte
	tokenTTL   time.Duration

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	pool *pgxpool.Pool,
	engine *complaint.Engine,
	villagersRepo *store.VillagerRepository,
	officialsRepo *store.OfficialRepository,
	contractorsRepo *store.ContractorRepository,
	schemesRepo *store.SchemeRepository,
	proposalsRepo *store.ProposalRepository,
	projectsRepo *store.ProjectRepository,
	discussionsRepo *store.DiscussionRepository,
	uploads Uploader,
) (*Service, error) {
	mux := flow.New()

	s := &Service{
		logger: logger,
		config: config,
		pool:   pool,

		engine: engine,

		villagersRepo:   villagersRepo,
		officialsRepo:   officialsRepo,
		contractorsRepo: contractorsRepo,
		schemesRepo:     schemesRepo,
		proposalsRepo:   proposalsRepo,
		projectsRepo:    projectsRepo,
		discussionsRepo: discussionsRepo,

		uploads: uploads,

		signingKey: []byte(config.TokenSigningKey),
		tokenTTL:   time.Duration(config.TokenTTLSec) * time.Second,

		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	s.buildRouter(mux)

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.CORSMiddleware)
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/", s.handleRoot, http.MethodGet)
	r.HandleFunc("/health", s.handleHealth, http.MethodGet)

	r.HandleFunc("/auth/signup/villager", s.handleSignupVillager, http.MethodPost)
	r.HandleFunc("/auth/login/villager", s.handleLoginVillager, http.MethodPost)
	r.HandleFunc("/auth/login/contractor", s.handleLoginContractor, http.MethodPost)
	r.HandleFunc("/auth/login/official", s.handleLoginOfficial, http.MethodPost)

	r.HandleFunc("/users/villagers", s.handleListVillagers, http.MethodGet)
	r.HandleFunc("/users/villagers/:phone_number", s.handleVillagerByPhone, http.MethodGet)
	r.HandleFunc("/users/contractors", s.handleListContractors, http.MethodGet)
	r.HandleFunc("/users/contractors/:contractor_id", s.handleContractorDashboard, http.MethodGet)
	r.HandleFunc("/users/officials", s.handleListOfficials, http.MethodGet)
	r.HandleFunc("/users/officials/:government_id", s.handleOfficialByGovernmentID, http.MethodGet)

	r.HandleFunc("/complaints/raise", s.handleRaiseComplaint, http.MethodPost)
	r.HandleFunc("/complaints/villager/:phone_number", s.handleComplaintsByVillager, http.MethodGet)
	r.HandleFunc("/complaints/official/:government_id", s.handleComplaintsForOfficial, http.MethodGet)
	r.HandleFunc("/complaints/:complaint_id/resolve", s.handleResolveComplaint, http.MethodPatch)
	r.HandleFunc("/complaints/:complaint_id/reopen", s.handleReopenComplaint, http.MethodPatch)

	r.HandleFunc("/schemes", s.handleListSchemes, http.MethodGet)
	r.HandleFunc("/schemes/:scheme_id", s.handleSchemeByID, http.MethodGet)

	r.HandleFunc("/proposals", s.handleCreateProposal, http.MethodPost)
	r.HandleFunc("/proposals", s.handleListProposals, http.MethodGet)
	r.HandleFunc("/proposals/:proposal_id/approve", s.handleApproveProposal, http.MethodPatch)
	r.HandleFunc("/proposals/:proposal_id/reject", s.handleRejectProposal, http.MethodPatch)

	r.HandleFunc("/projects", s.handleCreateProject, http.MethodPost)
	r.HandleFunc("/projects", s.handleListProjects, http.MethodGet)

	r.HandleFunc("/dashboard/stats", s.handleDashboardStats, http.MethodGet)

	r.HandleFunc("/community/discuss", s.handlePostDiscussion, http.MethodPost)
	r.HandleFunc("/community/feed", s.handleFeed, http.MethodGet)
	r.HandleFunc("/community/:discussion_id/upvote", s.handleUpvoteDiscussion, http.MethodPatch)
	r.HandleFunc("/community/:discussion_id/comment", s.handleCommentDiscussion, http.MethodPost)

	r.Group(func(r *flow.Mux) {
		r.Use(s.RequireAuth)

		r.HandleFunc("/community/reset", s.handleResetDiscussions, http.MethodDelete)
	})
}

func (s *Service) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to Gram-Sahayak Backend",
	})
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.pool.Ping(r.Context()); err != nil {
		s.respondJSON(w, http.StatusOK, map[string]string{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{
		"status":   "healthy",
		"database": "connected",
	})
}
