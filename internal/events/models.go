package events

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

type EventStatus string

const (
	StatusDraft     EventStatus = "draft"
	StatusPublished EventStatus = "published"
	StatusCancelled EventStatus = "cancelled"
	StatusCompleted EventStatus = "completed"
)

type Event struct {
	ID          uuid.UUID   `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name        string      `json:"name" gorm:"not null;size:255"`
	Description string      `json:"description" gorm:"type:text"`
	Venue       string      `json:"venue" gorm:"not null;size:255"`
	DateTime    time.Time   `json:"date_time" gorm:"not null"`
	IsUnseated  bool        `json:"is_unseated" gorm:"default:false"`
	MinimumAge  int         `json:"minimum_age" gorm:"default:0;check:minimum_age >= 0"`
	CountryCode string      `json:"country_code" gorm:"type:varchar(2);default:'EG'"`
	Status      EventStatus `json:"status" gorm:"type:varchar(20);default:'draft'"`
	ImageURL    string      `json:"image_url" gorm:"size:500"`

	Tiers []TicketTier `json:"tiers,omitempty" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE;"`

	CreatedBy uuid.UUID `json:"created_by" gorm:"type:uuid;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TicketTier is one purchasable ticket category of an event.
// Key is derived from the label and unique within an event; SortOrder
// fixes the catalog order that the discount allocation depends on.
type TicketTier struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	EventID        uuid.UUID `json:"event_id" gorm:"type:uuid;index;not null;uniqueIndex:idx_event_tier_key"`
	Key            string    `json:"key" gorm:"not null;size:100;uniqueIndex:idx_event_tier_key"`
	Label          string    `json:"label" gorm:"not null;size:255"`
	CategoryName   string    `json:"category_name" gorm:"not null;size:255"`
	Color          string    `json:"color" gorm:"size:20"`
	Price          float64   `json:"price" gorm:"not null;check:price >= 0"`
	AvailableCount int       `json:"available_count" gorm:"not null;check:available_count >= 0"`
	SortOrder      int       `json:"sort_order" gorm:"default:0"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}

func (TicketTier) TableName() string {
	return "ticket_tiers"
}

var tierKeyPattern = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeTierKey derives a stable tier key from a tier label
func NormalizeTierKey(label string) string {
	key := strings.ToLower(strings.TrimSpace(label))
	key = tierKeyPattern.ReplaceAllString(key, "-")
	return strings.Trim(key, "-")
}

// Catalog is the immutable tier list plus event flags handed to the
// booking engine for one session
type Catalog struct {
	EventID     string        `json:"event_id"`
	EventName   string        `json:"event_name"`
	Status      EventStatus   `json:"status"`
	IsUnseated  bool          `json:"is_unseated"`
	MinimumAge  int           `json:"minimum_age"`
	CountryCode string        `json:"country_code"`
	Tiers       []CatalogTier `json:"tiers"`
}

type CatalogTier struct {
	Key            string  `json:"key"`
	Label          string  `json:"label"`
	CategoryName   string  `json:"category_name"`
	Color          string  `json:"color"`
	Price          float64 `json:"price"`
	AvailableCount int     `json:"available_count"`
}
