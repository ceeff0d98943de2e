package complaint_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"gramsahayak/internal/utils"
	"gramsahayak/pkg/types"
)

// fakeClock hands out a controllable "now" to the engine under test.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock(t time.Time) *fakeClock {
	return &fakeClock{t: t}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type fakeVillagers struct {
	byPhone  map[string]*types.Villager
	appended map[string][]string
}

func newFakeVillagers(villagers ...*types.Villager) *fakeVillagers {
	f := &fakeVillagers{
		byPhone:  make(map[string]*types.Villager),
		appended: make(map[string][]string),
	}
	for _, v := range villagers {
		f.byPhone[v.PhoneNumber] = v
	}
	return f
}

func (f *fakeVillagers) VillagerByPhone(_ context.Context, phoneNumber string) (*types.Villager, error) {
	v, ok := f.byPhone[phoneNumber]
	if !ok {
		return nil, types.ErrVillagerNotFound
	}
	return v, nil
}

func (f *fakeVillagers) AppendComplaintRaised(_ context.Context, villagerID, complaintID string) error {
	f.appended[villagerID] = append(f.appended[villagerID], complaintID)
	return nil
}

type fakeOfficials struct {
	byGovernmentID map[string]*types.Official
}

func newFakeOfficials(officials ...*types.Official) *fakeOfficials {
	f := &fakeOfficials{byGovernmentID: make(map[string]*types.Official)}
	for _, o := range officials {
		f.byGovernmentID[o.GovernmentID] = o
	}
	return f
}

func (f *fakeOfficials) OfficialByGovernmentID(_ context.Context, governmentID string) (*types.Official, error) {
	o, ok := f.byGovernmentID[governmentID]
	if !ok {
		return nil, types.ErrOfficialNotFound
	}
	return o, nil
}

// fakeStore keeps complaints in memory. Reads return clones so persisted
// state only changes through UpdateComplaintFields, mirroring a real
// database.
type fakeStore struct {
	complaints  map[string]*types.Complaint
	updateCalls []map[string]any
	failUpdates bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{complaints: make(map[string]*types.Complaint)}
}

func cloneComplaint(c *types.Complaint) *types.Complaint {
	clone := *c
	clone.Attachments = append([]string(nil), c.Attachments...)
	clone.ResolutionAttachments = append([]string(nil), c.ResolutionAttachments...)
	return &clone
}

func (f *fakeStore) put(c *types.Complaint) {
	if c.ID == "" {
		c.ID = utils.NanoID()
	}
	f.complaints[c.ID] = cloneComplaint(c)
}

func (f *fakeStore) CreateComplaint(_ context.Context, c *types.Complaint) error {
	c.ID = utils.NanoID()
	f.complaints[c.ID] = cloneComplaint(c)
	return nil
}

func (f *fakeStore) Complaint(_ context.Context, complaintID string) (*types.Complaint, error) {
	c, ok := f.complaints[complaintID]
	if !ok {
		return nil, types.ErrComplaintNotFound
	}
	return cloneComplaint(c), nil
}

func (f *fakeStore) ComplaintsByVillage(_ context.Context, villageName string) ([]*types.Complaint, error) {
	out := make([]*types.Complaint, 0)
	for _, c := range f.complaints {
		if c.VillageName == villageName {
			out = append(out, cloneComplaint(c))
		}
	}
	return out, nil
}

func (f *fakeStore) ComplaintsByVillagerPhone(_ context.Context, phoneNumber string) ([]*types.Complaint, error) {
	out := make([]*types.Complaint, 0)
	for _, c := range f.complaints {
		if c.VillagerPhone == phoneNumber {
			out = append(out, cloneComplaint(c))
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateComplaintFields(_ context.Context, complaintID string, fields map[string]any) error {
	if f.failUpdates {
		return errors.New("store unavailable")
	}

	c, ok := f.complaints[complaintID]
	if !ok {
		return types.ErrComplaintNotFound
	}

	f.updateCalls = append(f.updateCalls, fields)

	for key, value := range fields {
		switch key {
		case "status":
			c.Status = value.(types.ComplaintStatus)
		case "reopen_count":
			c.ReopenCount = value.(int)
		case "created_at":
			c.CreatedAt = value.(string)
		case "resolution_notes":
			c.ResolutionNotes = value.(*string)
		case "resolution_attachments":
			c.ResolutionAttachments = append([]string(nil), value.([]string)...)
		case "resolved_by":
			name := value.(string)
			c.ResolvedBy = &name
		case "resolved_at":
			at := value.(time.Time)
			c.ResolvedAt = &at
		}
	}

	return nil
}
