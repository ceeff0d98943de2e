package types

import "time"

type ProposalStatus string

const (
	ProposalStatusPending  ProposalStatus = "Pending"
	ProposalStatusApproved ProposalStatus = "Approved"
	ProposalStatusRejected ProposalStatus = "Rejected"
)

type Proposal struct {
	ID                   string         `db:"id" json:"id"`
	VillageID            string         `db:"village_id" json:"village_id"`
	ProposedProjectTitle string         `db:"proposed_project_title" json:"proposed_project_title"`
	Status               ProposalStatus `db:"status" json:"status"`
	CreatedAt            time.Time      `db:"created_at" json:"created_at"`
}
