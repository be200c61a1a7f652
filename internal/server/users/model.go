package users

import "time"

// User is an authenticated principal. PasswordHash is a bcrypt hash and is
// never serialized outward. Every user holds the single flat "USER"
// capability; there is no role hierarchy.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Role is the fixed capability attached to every account.
const Role = "USER"
