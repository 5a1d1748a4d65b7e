package entity

type User struct {
	Base
	Email        string `db:"email"`
	FullName     string `db:"full_name"`
	PasswordHash string `db:"password_hash"`
	IsActive     bool   `db:"is_active"`
	IsVerified   bool   `db:"is_verified"`
}
