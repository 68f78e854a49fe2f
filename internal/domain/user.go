// Package domain defines the entities of the board and time-tracking system.
// Entities carry explicit foreign-key fields and are navigated via store
// lookups; there are no embedded back-references between them.
package domain

import "time"

// User represents an authenticated account in the system.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
