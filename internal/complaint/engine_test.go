package complaint_test

import (
	"context"
	"io"
	"testing"
	"time"

	"gramsahayak/internal/complaint"
	"gramsahayak/internal/utils"
	"gramsahayak/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type fixture struct {
	engine    *complaint.Engine
	clock     *fakeClock
	store     *fakeStore
	villagers *fakeVillagers
	officials *fakeOfficials
}

func newFixture() *fixture {
	clock := newFakeClock(t0)
	store := newFakeStore()
	villagers := newFakeVillagers(&types.Villager{
		ID:          utils.NanoID(),
		Name:        "Meera Devi",
		PhoneNumber: "9876543210",
		VillageName: "Rampur",
	})
	officials := newFakeOfficials(
		&types.Official{ID: utils.NanoID(), Name: "Nikhil Rao", GovernmentID: "GOV-RAM-01", VillageName: "Rampur"},
		&types.Official{ID: utils.NanoID(), Name: "Asha Patil", GovernmentID: "GOV-CHA-01", VillageName: "Chandpur"},
	)

	return &fixture{
		engine:    complaint.NewEngine(villagers, officials, store, quietLogger(), complaint.WithClock(clock.Now)),
		clock:     clock,
		store:     store,
		villagers: villagers,
		officials: officials,
	}
}

func (f *fixture) pendingComplaint(createdAt string) *types.Complaint {
	c := &types.Complaint{
		ComplaintName: "Broken hand pump",
		ComplaintDesc: "The pump near the school has been dry for a week.",
		Location:      "Ward 3",
		VillagerName:  "Meera Devi",
		VillagerPhone: "9876543210",
		VillageName:   "Rampur",
		Status:        types.ComplaintStatusPending,
		CreatedAt:     createdAt,
	}
	f.store.put(c)
	return c
}

func TestRaiseCreatesPendingComplaint(t *testing.T) {
	f := newFixture()

	c, err := f.engine.Raise(context.Background(), complaint.RaiseInput{
		PhoneNumber:   " 9876543210 ",
		ComplaintName: "Streetlight out",
		ComplaintDesc: "Main road is dark after sunset.",
		Location:      "Bus stand",
	})
	require.NoError(t, err)

	assert.Equal(t, types.ComplaintStatusPending, c.Status)
	assert.Equal(t, "Rampur", c.VillageName)
	assert.Equal(t, "9876543210", c.VillagerPhone)
	assert.Equal(t, t0.Format(time.RFC3339), c.CreatedAt)
	assert.Equal(t, 0, c.ReopenCount)
	assert.Equal(t, 0, c.DaysPending)
	assert.False(t, c.IsEscalated)
	assert.Equal(t, types.ResolutionTierFirstAttempt, c.ResolutionTier)

	// Optional fields come back as empty collections, never nil.
	assert.NotNil(t, c.Attachments)
	assert.NotNil(t, c.ResolutionAttachments)

	// The complaint is recorded on the reporter's profile.
	reporter := f.villagers.byPhone["9876543210"]
	assert.Equal(t, []string{c.ID}, f.villagers.appended[reporter.ID])
}

func TestRaiseUnknownVillager(t *testing.T) {
	f := newFixture()

	_, err := f.engine.Raise(context.Background(), complaint.RaiseInput{PhoneNumber: "0000000000"})
	assert.ErrorIs(t, err, types.ErrVillagerNotFound)
}

// Scenario: a complaint pending past the resolve window escalates on read,
// and the escalated view survives a failed persistence write.
func TestMaterializeAutoEscalation(t *testing.T) {
	f := newFixture()
	c := f.pendingComplaint(t0.Format(time.RFC3339))

	f.clock.Advance(15 * 24 * time.Hour)

	got := f.engine.Materialize(context.Background(), cloneComplaint(f.store.complaints[c.ID]))

	assert.Equal(t, types.ComplaintStatusMigrated, got.Status)
	assert.True(t, got.IsEscalated)
	assert.Equal(t, 15, got.DaysPending)
	assert.Equal(t, types.ResolutionTierEscalated, got.ResolutionTier)

	// The transition was written back.
	assert.Equal(t, types.ComplaintStatusMigrated, f.store.complaints[c.ID].Status)
}

func TestMaterializeAutoEscalationFailOpen(t *testing.T) {
	f := newFixture()
	c := f.pendingComplaint(t0.Format(time.RFC3339))
	f.clock.Advance(15 * 24 * time.Hour)
	f.store.failUpdates = true

	got := f.engine.Materialize(context.Background(), cloneComplaint(f.store.complaints[c.ID]))

	// Write lost, but the caller still sees the escalated view.
	assert.Equal(t, types.ComplaintStatusMigrated, got.Status)
	assert.True(t, got.IsEscalated)
	assert.Equal(t, types.ComplaintStatusPending, f.store.complaints[c.ID].Status)
}

func TestMaterializeIdempotentWithinWindow(t *testing.T) {
	f := newFixture()
	c := f.pendingComplaint(t0.Format(time.RFC3339))
	f.clock.Advance(3 * 24 * time.Hour)

	first := f.engine.Materialize(context.Background(), cloneComplaint(f.store.complaints[c.ID]))
	second := f.engine.Materialize(context.Background(), cloneComplaint(f.store.complaints[c.ID]))

	assert.Equal(t, first, second)
	assert.Equal(t, types.ComplaintStatusPending, first.Status)
	assert.Equal(t, 3, first.DaysPending)
	assert.False(t, first.IsEscalated)
	assert.Empty(t, f.store.updateCalls)
}

func TestMaterializeMalformedCreatedAt(t *testing.T) {
	f := newFixture()
	c := f.pendingComplaint("last tuesday")
	f.clock.Advance(30 * 24 * time.Hour)

	got := f.engine.Materialize(context.Background(), cloneComplaint(f.store.complaints[c.ID]))

	// Degrades instead of failing: no elapsed time, no escalation.
	assert.Equal(t, 0, got.DaysPending)
	assert.Equal(t, types.ComplaintStatusPending, got.Status)
	assert.False(t, got.IsEscalated)
	assert.Empty(t, f.store.updateCalls)
}

func TestMaterializeReopenCountForcesEscalatedTier(t *testing.T) {
	f := newFixture()
	c := f.pendingComplaint(t0.Format(time.RFC3339))
	stored := f.store.complaints[c.ID]
	stored.Status = types.ComplaintStatusResolved
	stored.ReopenCount = 2

	got := f.engine.Materialize(context.Background(), cloneComplaint(stored))

	// Time-based rule wouldn't fire (0 days, not Pending); reopen_count wins.
	assert.True(t, got.IsEscalated)
	assert.Equal(t, types.ResolutionTierEscalated, got.ResolutionTier)
}

// Scenario: resolution two days in by the village's own official.
func TestResolveWithinWindow(t *testing.T) {
	f := newFixture()
	c := f.pendingComplaint(t0.Format(time.RFC3339))
	f.clock.Advance(2 * 24 * time.Hour)

	got, err := f.engine.Resolve(context.Background(), c.ID, complaint.ResolveInput{
		GovernmentID:     "GOV-RAM-01",
		Notes:            "Pump repaired, washer replaced.",
		ProofAttachments: []string{"https://bucket.s3.ap-south-1.amazonaws.com/resolutions/a.jpg"},
	})
	require.NoError(t, err)

	assert.Equal(t, types.ComplaintStatusResolved, got.Status)
	require.NotNil(t, got.ResolvedBy)
	assert.Equal(t, "Nikhil Rao", *got.ResolvedBy)
	require.NotNil(t, got.ResolvedAt)
	assert.Equal(t, t0.Add(2*24*time.Hour), *got.ResolvedAt)
	assert.Equal(t, types.ResolutionTierFirstAttempt, got.ResolutionTier)
	assert.False(t, got.IsEscalated)

	assert.Equal(t, types.ComplaintStatusResolved, f.store.complaints[c.ID].Status)
}

// Scenario: an official from another village is turned away untouched.
func TestResolveVillageMismatch(t *testing.T) {
	f := newFixture()
	c := f.pendingComplaint(t0.Format(time.RFC3339))

	_, err := f.engine.Resolve(context.Background(), c.ID, complaint.ResolveInput{GovernmentID: "GOV-CHA-01"})
	assert.ErrorIs(t, err, types.ErrVillageMismatch)

	assert.Equal(t, types.ComplaintStatusPending, f.store.complaints[c.ID].Status)
	assert.Empty(t, f.store.updateCalls)
}

func TestResolvePastWindow(t *testing.T) {
	f := newFixture()
	c := f.pendingComplaint(t0.Format(time.RFC3339))
	f.clock.Advance(15 * 24 * time.Hour)

	_, err := f.engine.Resolve(context.Background(), c.ID, complaint.ResolveInput{GovernmentID: "GOV-RAM-01"})
	assert.ErrorIs(t, err, types.ErrResolveWindowClosed)
}

func TestResolveAtWindowBoundary(t *testing.T) {
	f := newFixture()
	c := f.pendingComplaint(t0.Format(time.RFC3339))
	f.clock.Advance(14 * 24 * time.Hour)

	// Exactly 14 days is still within the window.
	got, err := f.engine.Resolve(context.Background(), c.ID, complaint.ResolveInput{GovernmentID: "GOV-RAM-01"})
	require.NoError(t, err)
	assert.Equal(t, types.ComplaintStatusResolved, got.Status)
}

func TestResolveErrors(t *testing.T) {
	f := newFixture()
	c := f.pendingComplaint(t0.Format(time.RFC3339))

	_, err := f.engine.Resolve(context.Background(), c.ID, complaint.ResolveInput{GovernmentID: "GOV-NOPE"})
	assert.ErrorIs(t, err, types.ErrOfficialNotFound)

	_, err = f.engine.Resolve(context.Background(), "not-a-real-id", complaint.ResolveInput{GovernmentID: "GOV-RAM-01"})
	assert.ErrorIs(t, err, types.ErrInvalidID)

	_, err = f.engine.Resolve(context.Background(), utils.NanoID(), complaint.ResolveInput{GovernmentID: "GOV-RAM-01"})
	assert.ErrorIs(t, err, types.ErrComplaintNotFound)
}

// Scenarios: first reopen re-arms the window, the second escalates for good.
func TestReopenLifecycle(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c := f.pendingComplaint(t0.Format(time.RFC3339))

	f.clock.Advance(2 * 24 * time.Hour)
	_, err := f.engine.Resolve(ctx, c.ID, complaint.ResolveInput{GovernmentID: "GOV-RAM-01", Notes: "done"})
	require.NoError(t, err)

	// First reopen: back to Pending with a fresh timer.
	f.clock.Advance(24 * time.Hour)
	reopenedAt := t0.Add(3 * 24 * time.Hour)
	got, err := f.engine.Reopen(ctx, c.ID, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, types.ComplaintStatusPending, got.Status)
	assert.Equal(t, 1, got.ReopenCount)
	assert.Equal(t, reopenedAt.Format(time.RFC3339), got.CreatedAt)
	assert.Equal(t, types.ResolutionTierSecondAttempt, got.ResolutionTier)
	assert.False(t, got.IsEscalated)

	// Second attempt gets resolved, then disputed again.
	f.clock.Advance(24 * time.Hour)
	_, err = f.engine.Resolve(ctx, c.ID, complaint.ResolveInput{GovernmentID: "GOV-RAM-01", Notes: "done again"})
	require.NoError(t, err)

	got, err = f.engine.Reopen(ctx, c.ID, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, types.ComplaintStatusMigrated, got.Status)
	assert.Equal(t, 2, got.ReopenCount)
	assert.True(t, got.IsEscalated)
	assert.Equal(t, types.ResolutionTierEscalated, got.ResolutionTier)
	// The timer from the second attempt is left alone.
	assert.Equal(t, reopenedAt.Format(time.RFC3339), got.CreatedAt)
}

func TestReopenGuards(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c := f.pendingComplaint(t0.Format(time.RFC3339))

	// Pending complaints cannot be reopened.
	_, err := f.engine.Reopen(ctx, c.ID, "9876543210")
	assert.ErrorIs(t, err, types.ErrNotReopenable)

	_, err = f.engine.Resolve(ctx, c.ID, complaint.ResolveInput{GovernmentID: "GOV-RAM-01"})
	require.NoError(t, err)

	// Only the reporting villager's phone may reopen.
	_, err = f.engine.Reopen(ctx, c.ID, "1112223334")
	assert.ErrorIs(t, err, types.ErrPhoneMismatch)

	_, err = f.engine.Reopen(ctx, "short", "9876543210")
	assert.ErrorIs(t, err, types.ErrInvalidID)

	_, err = f.engine.Reopen(ctx, utils.NanoID(), "9876543210")
	assert.ErrorIs(t, err, types.ErrComplaintNotFound)
}

func TestReopenMigratedIsTerminal(t *testing.T) {
	f := newFixture()
	c := f.pendingComplaint(t0.Format(time.RFC3339))
	f.store.complaints[c.ID].Status = types.ComplaintStatusMigrated

	_, err := f.engine.Reopen(context.Background(), c.ID, "9876543210")
	assert.ErrorIs(t, err, types.ErrNotReopenable)
}

func TestComplaintsForOfficialMaterializesEachRecord(t *testing.T) {
	f := newFixture()
	fresh := f.pendingComplaint(t0.Format(time.RFC3339))
	stale := f.pendingComplaint(t0.Add(-20 * 24 * time.Hour).Format(time.RFC3339))

	list, err := f.engine.ComplaintsForOfficial(context.Background(), "GOV-RAM-01")
	require.NoError(t, err)
	require.Len(t, list, 2)

	byID := map[string]*types.Complaint{list[0].ID: list[0], list[1].ID: list[1]}
	assert.Equal(t, types.ComplaintStatusPending, byID[fresh.ID].Status)
	assert.Equal(t, types.ComplaintStatusMigrated, byID[stale.ID].Status)
	assert.True(t, byID[stale.ID].IsEscalated)

	_, err = f.engine.ComplaintsForOfficial(context.Background(), "GOV-NOPE")
	assert.ErrorIs(t, err, types.ErrOfficialNotFound)
}

func TestComplaintsForVillagerTrimsPhone(t *testing.T) {
	f := newFixture()
	f.pendingComplaint(t0.Format(time.RFC3339))

	list, err := f.engine.ComplaintsForVillager(context.Background(), " 9876543210 ")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
