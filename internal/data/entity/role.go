package entity

// RoleAdmin is compared case-insensitively by the admin guard.
const RoleAdmin = "admin"

type Role struct {
	BaseSimple
	Name string `db:"name"`
}
