package models

import "time"

// ItemType says whether an item was lost by the reporter or found by them.
type ItemType string

const (
	TypeLost  ItemType = "lost"
	TypeFound ItemType = "found"
)

// Valid reports whether t is a known item type.
func (t ItemType) Valid() bool {
	return t == TypeLost || t == TypeFound
}

// Category classifies an item on the board.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryClothing    Category = "Clothing"
	CategoryBooks       Category = "Books"
	CategoryKeys        Category = "Keys"
	CategoryIDs         Category = "IDs"
	CategoryBags        Category = "Bags"
	CategoryOther       Category = "Other"
)

// Categories lists every valid category, in display order.
func Categories() []Category {
	return []Category{
		CategoryElectronics,
		CategoryClothing,
		CategoryBooks,
		CategoryKeys,
		CategoryIDs,
		CategoryBags,
		CategoryOther,
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Status is the lifecycle marker on an item.
type Status string

const (
	StatusSearching Status = "searching"
	StatusAvailable Status = "available"
	StatusClaimed   Status = "claimed"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s == StatusSearching || s == StatusAvailable || s == StatusClaimed
}

// DefaultStatus returns the status a new item gets when the reporter did not
// choose one: found items go up as available, lost items as searching.
// Claimed is never assigned automatically.
func DefaultStatus(t ItemType) Status {
	if t == TypeFound {
		return StatusAvailable
	}
	return StatusSearching
}

// Item represents a lost or found report posted by a user.
type Item struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Type        ItemType  `json:"type"`
	Category    Category  `json:"category"`
	Location    string    `json:"location"`
	Date        string    `json:"date"` // YYYY-MM-DD, the day the item was lost/found
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Image       *string   `json:"image,omitempty"`
	OwnerID     string    `json:"userId"`
	Reporter    *Reporter `json:"user,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DateFormat is the wire and storage layout of Item.Date.
const DateFormat = "2006-01-02"
