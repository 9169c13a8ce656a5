package services

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Mouad22Hakimi/lost-and-found-platform/internal/models"
)

// EventServiceProvider defines the interface for the activity log.
type EventServiceProvider interface {
	Record(ctx context.Context, eventType, level, message string, itemID *string)
	GetRecent(ctx context.Context, limit int) ([]models.Event, error)
}

// EventService provides business logic for the activity log.
type EventService struct {
	db *sql.DB
}

// NewEventService creates a new EventService.
func NewEventService(db *sql.DB) *EventService {
	return &EventService{db: db}
}

// Record logs a new event to the database. A failed write is logged and
// swallowed so it never fails the operation that triggered it.
func (s *EventService) Record(ctx context.Context, eventType, level, message string, itemID *string) {
	event := models.Event{
		ID:      uuid.New().String(),
		Type:    eventType,
		Level:   level,
		Message: message,
		ItemID:  itemID,
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO events (id, type, level, message, item_id) VALUES (?, ?, ?, ?, ?)",
		event.ID, event.Type, event.Level, event.Message, event.ItemID,
	)
	if err != nil {
		log.Error().Err(err).Str("event_type", eventType).Msg("Failed to record event")
	}
}

// GetRecent retrieves the most recent events from the database.
func (s *EventService) GetRecent(ctx context.Context, limit int) ([]models.Event, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, type, level, message, item_id, created_at FROM events ORDER BY created_at DESC, id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		if err := rows.Scan(&event.ID, &event.Type, &event.Level, &event.Message, &event.ItemID, &event.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}
