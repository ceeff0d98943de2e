package types

type Villager struct {
	ID               string   `db:"id" json:"id"`
	Name             string   `db:"name" json:"name"`
	Gender           string   `db:"gender" json:"gender"`
	Age              int      `db:"age" json:"age"`
	Email            string   `db:"email" json:"email"`
	PhoneNumber      string   `db:"phone_number" json:"phone_number"`
	VillageName      string   `db:"village_name" json:"village_name"`
	Taluk            string   `db:"taluk" json:"taluk"`
	District         string   `db:"district" json:"district"`
	State            string   `db:"state" json:"state"`
	Password         string   `db:"password" json:"-"`
	Role             string   `db:"role" json:"role"`
	ComplaintsRaised []string `db:"complaints_raised" json:"complaints_raised"` // jsonb array

	// Assigned on first anonymous community post, stable afterwards.
	AnonymousIdentity *string `db:"anonymous_identity" json:"anonymous_identity"`
}

const RoleVillager = "villager"
