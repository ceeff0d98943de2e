package types

type Official struct {
	ID           string `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	Email        string `db:"email" json:"email"`
	GovernmentID string `db:"government_id" json:"government_id"`
	VillageName  string `db:"village_name" json:"village_name"`
	Password     string `db:"password" json:"-"`
	Role         string `db:"role" json:"role"`
}

const RoleOfficial = "government_official"
