package models

import "time"

// Event represents a loggable action in the system.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`  // e.g., "item.created", "user.registered"
	Level     string    `json:"level"` // e.g., "info", "warn"
	Message   string    `json:"message"`
	ItemID    *string   `json:"itemId,omitempty"` // Nullable for events not tied to an item
	CreatedAt time.Time `json:"createdAt"`
}

// Event types recorded by the services.
const (
	EventItemCreated    = "item.created"
	EventItemUpdated    = "item.updated"
	EventItemClaimed    = "item.claimed"
	EventItemDeleted    = "item.deleted"
	EventUserRegistered = "user.registered"
)
