package model

import "time"

// User represents an account that can log in to the admin panel. Only
// accounts with the Admin flag may mutate the catalog; the flag is set
// when the account is created and never inferred from anything else.
type User struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Admin        bool       `json:"admin"`
	CreatedAt    time.Time  `json:"created_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}
