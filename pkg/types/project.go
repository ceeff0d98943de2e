package types

import "time"

type ProjectStatus string

const (
	ProjectStatusPending    ProjectStatus = "Pending"
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusCompleted  ProjectStatus = "Completed"
)

type Project struct {
	ID                string        `db:"id" json:"id"`
	ProjectName       string        `db:"project_name" json:"project_name"`
	Description       string        `db:"description" json:"description"`
	Category          string        `db:"category" json:"category"`
	VillageName       string        `db:"village_name" json:"village_name"`
	Location          string        `db:"location" json:"location"`
	ContractorName    string        `db:"contractor_name" json:"contractor_name"`
	ContractorID      string        `db:"contractor_id" json:"contractor_id"`
	ContractorAddress string        `db:"contractor_address" json:"contractor_address"`
	AllocatedBudget   float64       `db:"allocated_budget" json:"allocated_budget"`
	ApprovedBy        string        `db:"approved_by" json:"approved_by"`
	StartDate         time.Time     `db:"start_date" json:"start_date"`
	DueDate           time.Time     `db:"due_date" json:"due_date"`
	Status            ProjectStatus `db:"status" json:"status"`
	Images            []string      `db:"images" json:"images"`         // jsonb array
	Milestones        []string      `db:"milestones" json:"milestones"` // jsonb array
	CreatedAt         time.Time     `db:"created_at" json:"created_at"`
}
