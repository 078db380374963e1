package models

import "time"

// User represents an account that owns folders and notes.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Password holds the plaintext password on the way in and the bcrypt
	// hash at the persistence layer. Never serialized.
	Password string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the payload of the register and login endpoints.
type Credentials struct {
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Password string `json:"password"`
}
