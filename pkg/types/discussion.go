package types

import "time"

type DiscussionComment struct {
	UserName  string    `json:"user_name"`
	UserRole  string    `json:"user_role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type Discussion struct {
	ID          string              `db:"id" json:"id"`
	VillageName string              `db:"village_name" json:"village_name"`
	UserName    string              `db:"user_name" json:"user_name"`
	UserRole    string              `db:"user_role" json:"user_role"`
	RealUserID  string              `db:"real_user_id" json:"-"`
	Content     string              `db:"content" json:"content"`
	Category    string              `db:"category" json:"category"`
	ImageURL    *string             `db:"image_url" json:"image_url"`
	Status      string              `db:"status" json:"status"`
	Replies     []DiscussionComment `db:"replies" json:"replies"`   // jsonb array
	Upvoters    []string            `db:"upvoters" json:"-"`        // jsonb array
	Upvotes     int                 `db:"upvotes" json:"upvotes"`
	CreatedAt   time.Time           `db:"created_at" json:"created_at"`
}

type DashboardStats struct {
	BudgetUsed     float64 `json:"budget_used"`
	IssuesResolved int     `json:"issues_resolved"`
	VillageMood    string  `json:"village_mood"`
	PersonalImpact int     `json:"personal_impact"`
	NextMeeting    string  `json:"next_meeting"`
}
