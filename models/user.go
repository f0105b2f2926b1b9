package models

import "time"

// User is a game profile owning save slots.
type User struct {
	ID           int       `json:"id"`
	Nickname     string    `json:"nickname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Save is one persisted save slot. The world snapshot itself is stored as a
// single JSON document.
type Save struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Slot      int       `json:"slot"`
	Label     string    `json:"label"`
	UpdatedAt time.Time `json:"updated_at"`
}
