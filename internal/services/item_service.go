package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Mouad22Hakimi/lost-and-found-platform/internal/models"
)

// ItemServiceProvider defines the interface for item services.
type ItemServiceProvider interface {
	Create(ctx context.Context, ownerID string, input ItemInput) (models.Item, error)
	Get(ctx context.Context, id string) (models.Item, error)
	Update(ctx context.Context, id, actorID string, patch ItemPatch) (models.Item, error)
	Delete(ctx context.Context, id, actorID string) error
	Search(ctx context.Context, criteria SearchCriteria) ([]models.Item, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Item, error)
}

// ItemInput holds the fields a user submits when reporting an item.
// Status is optional; when empty it is derived from Type.
type ItemInput struct {
	Title       string          `json:"title"`
	Type        models.ItemType `json:"type"`
	Category    models.Category `json:"category"`
	Location    string          `json:"location"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Status      models.Status   `json:"status"`
	Image       *string         `json:"image"`
}

// ItemPatch holds a partial update. Nil fields are left unchanged.
type ItemPatch struct {
	Title       *string          `json:"title"`
	Type        *models.ItemType `json:"type"`
	Category    *models.Category `json:"category"`
	Location    *string          `json:"location"`
	Date        *string          `json:"date"`
	Description *string          `json:"description"`
	Status      *models.Status   `json:"status"`
	Image       *string          `json:"image"`
}

// SearchCriteria filters the shared board. All supplied criteria must hold.
// Category "all" (any casing) matches every category. Text matches a
// case-insensitive substring of title or description.
type SearchCriteria struct {
	Type     models.ItemType
	Category string
	Text     string
}

// ItemService provides business logic for item reports.
type ItemService struct {
	db     *sql.DB
	events EventServiceProvider
}

// NewItemService creates a new ItemService.
func NewItemService(db *sql.DB, events EventServiceProvider) *ItemService {
	return &ItemService{db: db, events: events}
}

// selectItem joins each item with the public attributes of its reporter,
// matching what the API returns.
const selectItem = `
	SELECT i.id, i.title, i.type, i.category, i.location, i.date, i.description,
	       i.status, i.image, i.owner_id, i.created_at, i.updated_at,
	       u.full_name, u.email, u.student_id
	FROM items i
	JOIN users u ON u.id = i.owner_id`

// Create validates a report, applies the default status when none was
// supplied, and stores it under a fresh identifier.
func (s *ItemService) Create(ctx context.Context, ownerID string, input ItemInput) (models.Item, error) {
	status := input.Status
	if status == "" {
		status = models.DefaultStatus(input.Type)
	}

	if err := validateItemFields(input.Title, input.Type, input.Category, input.Location, input.Date, input.Description, status); err != nil {
		return models.Item{}, err
	}

	id := uuid.New().String()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO items (id, title, type, category, location, date, description, status, image, owner_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, input.Title, input.Type, input.Category, input.Location, input.Date,
		input.Description, status, input.Image, ownerID,
	)
	if err != nil {
		return models.Item{}, fmt.Errorf("creating item: %w", err)
	}

	s.events.Record(ctx, models.EventItemCreated, "info",
		fmt.Sprintf("%s item reported: %s", input.Type, input.Title), &id)

	return s.Get(ctx, id)
}

// Get retrieves a single item by its ID, including the reporter.
func (s *ItemService) Get(ctx context.Context, id string) (models.Item, error) {
	row := s.db.QueryRowContext(ctx, selectItem+" WHERE i.id = ?", id)
	item, err := scanItem(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Item{}, ErrNotFound
		}
		return models.Item{}, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// Update merges the non-nil patch fields over the stored record. Only the
// owner may update an item. The read-merge-write runs in one transaction so
// concurrent updates to the same item cannot interleave partial merges.
// Status is never re-derived here, even when the type changes.
func (s *ItemService) Update(ctx context.Context, id, actorID string, patch ItemPatch) (models.Item, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Item{}, fmt.Errorf("beginning update: %w", err)
	}
	defer tx.Rollback()

	var (
		item  models.Item
		image sql.NullString
	)
	row := tx.QueryRowContext(ctx, `
		SELECT title, type, category, location, date, description, status, image, owner_id
		FROM items WHERE id = ?`, id)
	err = row.Scan(&item.Title, &item.Type, &item.Category, &item.Location,
		&item.Date, &item.Description, &item.Status, &image, &item.OwnerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Item{}, ErrNotFound
		}
		return models.Item{}, fmt.Errorf("loading item: %w", err)
	}
	if image.Valid {
		item.Image = &image.String
	}

	if item.OwnerID != actorID {
		return models.Item{}, ErrUnauthorized
	}

	prevStatus := item.Status

	if patch.Title != nil {
		item.Title = *patch.Title
	}
	if patch.Type != nil {
		item.Type = *patch.Type
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Location != nil {
		item.Location = *patch.Location
	}
	if patch.Date != nil {
		item.Date = *patch.Date
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Status != nil {
		item.Status = *patch.Status
	}
	if patch.Image != nil {
		item.Image = patch.Image
	}

	if err := validateItemFields(item.Title, item.Type, item.Category, item.Location, item.Date, item.Description, item.Status); err != nil {
		return models.Item{}, err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE items
		SET title = ?, type = ?, category = ?, location = ?, date = ?,
		    description = ?, status = ?, image = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		item.Title, item.Type, item.Category, item.Location, item.Date,
		item.Description, item.Status, item.Image, id,
	)
	if err != nil {
		return models.Item{}, fmt.Errorf("updating item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Item{}, fmt.Errorf("committing update: %w", err)
	}

	if item.Status == models.StatusClaimed && prevStatus != models.StatusClaimed {
		s.events.Record(ctx, models.EventItemClaimed, "info",
			fmt.Sprintf("item claimed: %s", item.Title), &id)
	} else {
		s.events.Record(ctx, models.EventItemUpdated, "info",
			fmt.Sprintf("item updated: %s", item.Title), &id)
	}

	return s.Get(ctx, id)
}

// Delete removes an item permanently. Only the owner may delete it.
func (s *ItemService) Delete(ctx context.Context, id, actorID string) error {
	var ownerID, title string
	row := s.db.QueryRowContext(ctx, "SELECT owner_id, title FROM items WHERE id = ?", id)
	if err := row.Scan(&ownerID, &title); err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return fmt.Errorf("loading item: %w", err)
	}

	if ownerID != actorID {
		return ErrUnauthorized
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}

	s.events.Record(ctx, models.EventItemDeleted, "info",
		fmt.Sprintf("item removed: %s", title), &id)

	return nil
}

// Search returns the items matching all supplied criteria, newest first.
func (s *ItemService) Search(ctx context.Context, criteria SearchCriteria) ([]models.Item, error) {
	var (
		where []string
		args  []any
	)

	if criteria.Type != "" {
		where = append(where, "i.type = ?")
		args = append(args, criteria.Type)
	}
	if criteria.Category != "" && !strings.EqualFold(criteria.Category, "all") {
		where = append(where, "i.category = ?")
		args = append(args, criteria.Category)
	}
	if criteria.Text != "" {
		where = append(where, "(LOWER(i.title) LIKE ? OR LOWER(i.description) LIKE ?)")
		pattern := "%" + strings.ToLower(criteria.Text) + "%"
		args = append(args, pattern, pattern)
	}

	query := selectItem
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY i.created_at DESC, i.id DESC"

	return s.queryItems(ctx, query, args...)
}

// ListByOwner returns every item reported by the given user, newest first.
func (s *ItemService) ListByOwner(ctx context.Context, ownerID string) ([]models.Item, error) {
	return s.queryItems(ctx,
		selectItem+" WHERE i.owner_id = ? ORDER BY i.created_at DESC, i.id DESC",
		ownerID,
	)
}

func (s *ItemService) queryItems(ctx context.Context, query string, args ...any) ([]models.Item, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (models.Item, error) {
	var (
		item     models.Item
		image    sql.NullString
		reporter models.Reporter
	)
	err := row.Scan(&item.ID, &item.Title, &item.Type, &item.Category,
		&item.Location, &item.Date, &item.Description, &item.Status, &image,
		&item.OwnerID, &item.CreatedAt, &item.UpdatedAt,
		&reporter.FullName, &reporter.Email, &reporter.StudentID)
	if err != nil {
		return models.Item{}, err
	}
	if image.Valid {
		item.Image = &image.String
	}
	reporter.ID = item.OwnerID
	item.Reporter = &reporter
	return item, nil
}

func validateItemFields(title string, itemType models.ItemType, category models.Category, location, date, description string, status models.Status) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if !itemType.Valid() {
		return &ValidationError{Field: "type", Reason: "must be lost or found"}
	}
	if !category.Valid() {
		return &ValidationError{Field: "category", Reason: "unknown category"}
	}
	if strings.TrimSpace(location) == "" {
		return &ValidationError{Field: "location", Reason: "must not be empty"}
	}
	if _, err := time.Parse(models.DateFormat, date); err != nil {
		return &ValidationError{Field: "date", Reason: "must be a date in YYYY-MM-DD form"}
	}
	if strings.TrimSpace(description) == "" {
		return &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if !status.Valid() {
		return &ValidationError{Field: "status", Reason: "must be searching, available or claimed"}
	}
	return nil
}
