package events

import "time"

type EventResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Venue       string         `json:"venue"`
	DateTime    time.Time      `json:"date_time"`
	IsUnseated  bool           `json:"is_unseated"`
	MinimumAge  int            `json:"minimum_age"`
	CountryCode string         `json:"country_code"`
	Status      EventStatus    `json:"status"`
	ImageURL    string         `json:"image_url"`
	Tiers       []TierResponse `json:"tiers"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type TierResponse struct {
	Key            string  `json:"key"`
	Label          string  `json:"label"`
	CategoryName   string  `json:"category_name"`
	Color          string  `json:"color"`
	Price          float64 `json:"price"`
	AvailableCount int     `json:"available_count"`
}

type PaginatedEvents struct {
	Events     []EventResponse `json:"events"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

// ToResponse converts an Event (with preloaded tiers) to its API shape
func (e *Event) ToResponse() EventResponse {
	tiers := make([]TierResponse, 0, len(e.Tiers))
	for _, t := range e.Tiers {
		tiers = append(tiers, TierResponse{
			Key:            t.Key,
			Label:          t.Label,
			CategoryName:   t.CategoryName,
			Color:          t.Color,
			Price:          t.Price,
			AvailableCount: t.AvailableCount,
		})
	}

	return EventResponse{
		ID:          e.ID.String(),
		Name:        e.Name,
		Description: e.Description,
		Venue:       e.Venue,
		DateTime:    e.DateTime,
		IsUnseated:  e.IsUnseated,
		MinimumAge:  e.MinimumAge,
		CountryCode: e.CountryCode,
		Status:      e.Status,
		ImageURL:    e.ImageURL,
		Tiers:       tiers,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToCatalog converts an Event to the booking engine's catalog view
func (e *Event) ToCatalog() Catalog {
	tiers := make([]CatalogTier, 0, len(e.Tiers))
	for _, t := range e.Tiers {
		tiers = append(tiers, CatalogTier{
			Key:            t.Key,
			Label:          t.Label,
			CategoryName:   t.CategoryName,
			Color:          t.Color,
			Price:          t.Price,
			AvailableCount: t.AvailableCount,
		})
	}

	return Catalog{
		EventID:     e.ID.String(),
		EventName:   e.Name,
		Status:      e.Status,
		IsUnseated:  e.IsUnseated,
		MinimumAge:  e.MinimumAge,
		CountryCode: e.CountryCode,
		Tiers:       tiers,
	}
}
