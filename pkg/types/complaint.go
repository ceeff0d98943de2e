package types

import (
	"time"
)

type ComplaintStatus string

const (
	ComplaintStatusPending  ComplaintStatus = "Pending"
	ComplaintStatusResolved ComplaintStatus = "Resolved"
	ComplaintStatusMigrated ComplaintStatus = "MigratedToHigherOfficials"
)

type ResolutionTier string

const (
	ResolutionTierFirstAttempt  ResolutionTier = "FirstAttempt"
	ResolutionTierSecondAttempt ResolutionTier = "SecondAttempt"
	ResolutionTierEscalated     ResolutionTier = "Escalated"
)

// ResolveWindow is how long the reporting village's own officials may
// resolve a complaint before it escalates to higher officials.
const ResolveWindowDays = 14

type Complaint struct {
	ID            string `db:"id" json:"id"`
	ComplaintName string `db:"complaint_name" json:"complaint_name"`
	ComplaintDesc string `db:"complaint_desc" json:"complaint_desc"`
	Location      string `db:"location" json:"location"`

	VillagerID    string `db:"villager_id" json:"villager_id"`
	VillagerName  string `db:"villager_name" json:"villager_name"`
	VillagerPhone string `db:"villager_phone" json:"villager_phone"`
	VillageName   string `db:"village_name" json:"village_name"`

	Attachments []string        `db:"attachments" json:"attachments"` // jsonb array
	Status      ComplaintStatus `db:"status" json:"status"`

	// RFC 3339 UTC. Kept as text: rows imported from the legacy system may
	// carry timestamps that don't parse, and reads must survive them.
	CreatedAt string `db:"created_at" json:"created_at"`

	ResolutionNotes       *string    `db:"resolution_notes" json:"resolution_notes"`
	ResolutionAttachments []string   `db:"resolution_attachments" json:"resolution_attachments"` // jsonb array
	ResolvedBy            *string    `db:"resolved_by" json:"resolved_by"`
	ResolvedAt            *time.Time `db:"resolved_at" json:"resolved_at"`

	ReopenCount int `db:"reopen_count" json:"reopen_count"`

	// Derived on every read, never persisted.
	DaysPending    int            `db:"-" json:"days_pending"`
	IsEscalated    bool           `db:"-" json:"is_escalated"`
	ResolutionTier ResolutionTier `db:"-" json:"resolution_tier"`
}
