package entity

type CareerType struct {
	BaseSimple
	Name       string `db:"name"`
	IsApproved bool   `db:"is_approved"`
}
