package types

type Scheme struct {
	ID         string `db:"id" json:"id"`
	SchemeID   string `db:"scheme_id" json:"scheme_id"`
	SchemeName string `db:"scheme_name" json:"scheme_name"`
	SchemeDesc string `db:"scheme_desc" json:"scheme_desc"`
	SchemeDept string `db:"scheme_dept" json:"scheme_dept"`
}
