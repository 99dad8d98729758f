package model

import "time"

// Artisan represents a registered craftsperson profile.
// This is a pure domain model with no database-specific dependencies or tags.
// It can be used across layers (HTTP, service, storage) without coupling to persistence.
type Artisan struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CraftType string    `json:"craft_type"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"created_at"`
}
