package model

// UserRole distinguishes console operators from site customers.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// User represents a registered account. Passwords are stored as plaintext by
// contract: this is a demo credential scheme, not an authentication system.
type User struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Role     UserRole `json:"role"`
	Password string   `json:"password"`
	Avatar   string   `json:"avatar"`
}
