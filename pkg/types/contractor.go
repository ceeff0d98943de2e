package types

import "time"

type Contractor struct {
	ID           string `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	Email        string `db:"email" json:"email"`
	PhoneNumber  string `db:"phone_number" json:"phone_number"`
	ContractorID string `db:"contractor_id" json:"contractor_id"`
	Password     string `db:"password" json:"-"`
	Role         string `db:"role" json:"role"`
}

const RoleContractor = "contractor"

type ContractorStats struct {
	TotalContractValue     float64 `json:"total_contract_value"`
	ActiveProjectsCount    int     `json:"active_projects_count"`
	ProjectsCompletedCount int     `json:"projects_completed_count"`
	PendingIssuesCount     int     `json:"pending_issues_count"`
}

type ProjectSummary struct {
	ID              string    `json:"id"`
	ProjectName     string    `json:"project_name"`
	Status          string    `json:"status"`
	AllocatedBudget float64   `json:"allocated_budget"`
	Location        string    `json:"location"`
	StartDate       time.Time `json:"start_date"`
}

// ContractorDashboard is the contractor profile plus derived stats and the
// contractor's active projects, returned by the users API.
type ContractorDashboard struct {
	Contractor
	Stats          ContractorStats  `json:"stats"`
	ActiveProjects []ProjectSummary `json:"active_projects"`
}
