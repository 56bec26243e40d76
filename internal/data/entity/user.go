package entity

type UserRole string

const (
	RoleParent UserRole = "parent"
	RoleAdmin  UserRole = "admin"
)

// User is a parent account. Children hang off it.
type User struct {
	Base
	Username      string   `db:"username"`
	Email         string   `db:"email"`
	PasswordHash  string   `db:"password"`
	Phone         *string  `db:"phone"`
	Role          UserRole `db:"role"`
	EmailVerified bool     `db:"email_verified"`
	IsActive      bool     `db:"is_active"`
}
