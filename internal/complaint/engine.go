// Package complaint implements the grievance lifecycle: raising,
// resolution by the village's own officials, villager-driven reopens, and
// automatic escalation to higher officials once a complaint sits pending
// past the resolve window.
package complaint

import (
	"context"
	"math"
	"strings"
	"time"

	"gramsahayak/internal/utils"
	"gramsahayak/pkg/types"

	"github.com/sirupsen/logrus"
)

// VillagerDirectory resolves reporting villagers and records the
// complaints they raise.
type VillagerDirectory interface {
	VillagerByPhone(ctx context.Context, phoneNumber string) (*types.Villager, error)
	AppendComplaintRaised(ctx context.Context, villagerID, complaintID string) error
}

// OfficialDirectory resolves the officials allowed to act on a village's
// complaints.
type OfficialDirectory interface {
	OfficialByGovernmentID(ctx context.Context, governmentID string) (*types.Official, error)
}

type Store interface {
	CreateComplaint(ctx context.Context, complaint *types.Complaint) error
	Complaint(ctx context.Context, complaintID string) (*types.Complaint, error)
	ComplaintsByVillage(ctx context.Context, villageName string) ([]*types.Complaint, error)
	ComplaintsByVillagerPhone(ctx context.Context, phoneNumber string) ([]*types.Complaint, error)
	UpdateComplaintFields(ctx context.Context, complaintID string, fields map[string]any) error
}

type Engine struct {
	villagers VillagerDirectory
	officials OfficialDirectory
	store     Store
	logger    *logrus.Logger
	now       func() time.Time
}

type Option func(*Engine)

// WithClock overrides the engine's time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func NewEngine(villagers VillagerDirectory, officials OfficialDirectory, store Store, logger *logrus.Logger, opts ...Option) *Engine {
	e := &Engine{
		villagers: villagers,
		officials: officials,
		store:     store,
		logger:    logger,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// daysSince is the number of whole days between a stored created_at value
// and now, both UTC. ok is false when the timestamp does not parse.
func (e *Engine) daysSince(createdAt string, now time.Time) (days int, ok bool) {
	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return 0, false
	}

	return int(math.Floor(now.Sub(created.UTC()).Hours() / 24)), true
}

// Materialize computes the derived fields (days_pending, is_escalated,
// resolution_tier) and applies the time-based escalation rule. Every
// complaint passes through here before reaching a caller. It never fails:
// a malformed created_at disables the time rule for that record instead of
// breaking the read.
func (e *Engine) Materialize(ctx context.Context, c *types.Complaint) *types.Complaint {
	now := e.now().UTC()

	daysPending, parsed := e.daysSince(c.CreatedAt, now)
	if !parsed {
		e.logger.WithField("complaint_id", c.ID).Warn("unparsable created_at, skipping time-based escalation")
	}

	if c.Status == types.ComplaintStatusPending && daysPending > types.ResolveWindowDays {
		c.Status = types.ComplaintStatusMigrated
		// Fail-open: the caller sees the escalated view even if this
		// write is lost; an overdue complaint is never surfaced as Pending.
		err := e.store.UpdateComplaintFields(ctx, c.ID, map[string]any{
			"status": types.ComplaintStatusMigrated,
		})
		if err != nil {
			e.logger.WithError(err).WithField("complaint_id", c.ID).Error("failed to persist auto-escalation")
		}
	}

	escalated := c.Status == types.ComplaintStatusMigrated || c.ReopenCount >= 2

	tier := types.ResolutionTierFirstAttempt
	switch {
	case escalated:
		tier = types.ResolutionTierEscalated
	case c.ReopenCount == 1:
		tier = types.ResolutionTierSecondAttempt
	}

	c.DaysPending = daysPending
	c.IsEscalated = escalated
	c.ResolutionTier = tier

	if c.Attachments == nil {
		c.Attachments = []string{}
	}
	if c.ResolutionAttachments == nil {
		c.ResolutionAttachments = []string{}
	}

	return c
}

type RaiseInput struct {
	PhoneNumber   string
	ComplaintName string
	ComplaintDesc string
	Location      string
	Attachments   []string
}

// Raise files a new complaint for the villager registered under the given
// phone number and records it on their profile.
func (e *Engine) Raise(ctx context.Context, in RaiseInput) (*types.Complaint, error) {
	villager, err := e.villagers.VillagerByPhone(ctx, strings.TrimSpace(in.PhoneNumber))
	if err != nil {
		return nil, err
	}

	attachments := in.Attachments
	if attachments == nil {
		attachments = []string{}
	}

	c := &types.Complaint{
		ComplaintName:         in.ComplaintName,
		ComplaintDesc:         in.ComplaintDesc,
		Location:              in.Location,
		VillagerID:            villager.ID,
		VillagerName:          villager.Name,
		VillagerPhone:         villager.PhoneNumber,
		VillageName:           villager.VillageName,
		Attachments:           attachments,
		Status:                types.ComplaintStatusPending,
		CreatedAt:             e.now().UTC().Format(time.RFC3339),
		ResolutionAttachments: []string{},
	}

	if err := e.store.CreateComplaint(ctx, c); err != nil {
		return nil, err
	}

	if err := e.villagers.AppendComplaintRaised(ctx, villager.ID, c.ID); err != nil {
		return nil, err
	}

	return e.Materialize(ctx, c), nil
}

type ResolveInput struct {
	GovernmentID     string
	Notes            string
	ProofAttachments []string
}

// Resolve marks a complaint resolved by an official of the complaint's
// own village. Complaints already past the resolve window cannot be
// resolved here; they belong to higher officials.
func (e *Engine) Resolve(ctx context.Context, complaintID string, in ResolveInput) (*types.Complaint, error) {
	official, err := e.officials.OfficialByGovernmentID(ctx, in.GovernmentID)
	if err != nil {
		return nil, err
	}

	if !utils.ValidID(complaintID) {
		return nil, types.ErrInvalidID
	}

	c, err := e.store.Complaint(ctx, complaintID)
	if err != nil {
		return nil, err
	}

	if c.VillageName != official.VillageName {
		return nil, types.ErrVillageMismatch
	}

	now := e.now().UTC()
	if days, ok := e.daysSince(c.CreatedAt, now); ok && days > types.ResolveWindowDays {
		return nil, types.ErrResolveWindowClosed
	}

	proof := in.ProofAttachments
	if proof == nil {
		proof = []string{}
	}

	var notes *string
	if in.Notes != "" {
		notes = utils.StringPtr(in.Notes)
	}

	fields := map[string]any{
		"status":                 types.ComplaintStatusResolved,
		"resolution_notes":       notes,
		"resolution_attachments": proof,
		"resolved_by":            official.Name,
		"resolved_at":            now,
	}
	if err := e.store.UpdateComplaintFields(ctx, c.ID, fields); err != nil {
		return nil, err
	}

	c.Status = types.ComplaintStatusResolved
	c.ResolutionNotes = notes
	c.ResolutionAttachments = proof
	c.ResolvedBy = utils.StringPtr(official.Name)
	c.ResolvedAt = utils.TimePtr(now)

	return e.Materialize(ctx, c), nil
}

// Reopen lets the reporting villager dispute a resolution. The first
// reopen re-arms the resolve window for a second attempt; any reopen after
// that escalates the complaint for good.
func (e *Engine) Reopen(ctx context.Context, complaintID, phoneNumber string) (*types.Complaint, error) {
	if !utils.ValidID(complaintID) {
		return nil, types.ErrInvalidID
	}

	c, err := e.store.Complaint(ctx, complaintID)
	if err != nil {
		return nil, err
	}

	if c.VillagerPhone != phoneNumber {
		return nil, types.ErrPhoneMismatch
	}

	if c.Status != types.ComplaintStatusResolved {
		return nil, types.ErrNotReopenable
	}

	c.ReopenCount++
	fields := map[string]any{"reopen_count": c.ReopenCount}

	if c.ReopenCount == 1 {
		c.Status = types.ComplaintStatusPending
		c.CreatedAt = e.now().UTC().Format(time.RFC3339)
		fields["status"] = c.Status
		fields["created_at"] = c.CreatedAt
	} else {
		// Escalated complaints carry no timer; created_at stays put.
		c.Status = types.ComplaintStatusMigrated
		fields["status"] = c.Status
	}

	if err := e.store.UpdateComplaintFields(ctx, c.ID, fields); err != nil {
		return nil, err
	}

	return e.Materialize(ctx, c), nil
}

// ComplaintsForVillager lists a villager's own complaints, newest first.
func (e *Engine) ComplaintsForVillager(ctx context.Context, phoneNumber string) ([]*types.Complaint, error) {
	complaints, err := e.store.ComplaintsByVillagerPhone(ctx, strings.TrimSpace(phoneNumber))
	if err != nil {
		return nil, err
	}

	for _, c := range complaints {
		e.Materialize(ctx, c)
	}

	return complaints, nil
}

// ComplaintsForOfficial lists every complaint in the official's village,
// newest first.
func (e *Engine) ComplaintsForOfficial(ctx context.Context, governmentID string) ([]*types.Complaint, error) {
	official, err := e.officials.OfficialByGovernmentID(ctx, governmentID)
	if err != nil {
		return nil, err
	}

	complaints, err := e.store.ComplaintsByVillage(ctx, official.VillageName)
	if err != nil {
		return nil, err
	}

	for _, c := range complaints {
		e.Materialize(ctx, c)
	}

	return complaints, nil
}
