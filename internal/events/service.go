package events

import (
	"context"
	"fmt"
	"math"
	"time"

	"tixora/pkg/cache"

	"github.com/google/uuid"
)

const (
	eventDetailKeyPrefix = "tixora:events:detail:"
	catalogKeyPrefix     = "tixora:events:catalog:"
)

type Service interface {
	SetCacheService(cacheService cache.Service)

	CreateEvent(ctx context.Context, adminID uuid.UUID, req CreateEventRequest) (*EventResponse, error)
	GetEventByID(ctx context.Context, id uuid.UUID) (*EventResponse, error)
	GetAllEvents(ctx context.Context, query EventListQuery) (*PaginatedEvents, error)
	PublishEvent(ctx context.Context, id uuid.UUID) error

	// GetCatalog returns the immutable tier catalog the booking engine
	// binds to a session
	GetCatalog(ctx context.Context, eventID uuid.UUID) (*Catalog, error)
}

type service struct {
	repo         Repository
	cacheService cache.Service
	catalogTTL   time.Duration
}

func NewService(repo Repository, catalogTTL time.Duration) Service {
	return &service{
		repo:       repo,
		catalogTTL: catalogTTL,
	}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) CreateEvent(ctx context.Context, adminID uuid.UUID, req CreateEventRequest) (*EventResponse, error) {
	countryCode := req.CountryCode
	if countryCode == "" {
		countryCode = "EG"
	}

	event := &Event{
		Name:        req.Name,
		Description: req.Description,
		Venue:       req.Venue,
		DateTime:    req.DateTime,
		IsUnseated:  req.IsUnseated,
		MinimumAge:  req.MinimumAge,
		CountryCode: countryCode,
		Status:      StatusDraft,
		ImageURL:    req.ImageURL,
		CreatedBy:   adminID,
	}

	seen := make(map[string]bool, len(req.Tiers))
	for i, t := range req.Tiers {
		key := NormalizeTierKey(t.Label)
		if key == "" {
			return nil, fmt.Errorf("tier label %q normalizes to an empty key", t.Label)
		}
		if seen[key] {
			return nil, fmt.Errorf("duplicate tier key %q", key)
		}
		seen[key] = true

		event.Tiers = append(event.Tiers, TicketTier{
			Key:            key,
			Label:          t.Label,
			CategoryName:   t.CategoryName,
			Color:          t.Color,
			Price:          t.Price,
			AvailableCount: t.AvailableCount,
			SortOrder:      i,
		})
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	resp := event.ToResponse()
	return &resp, nil
}

func (s *service) GetEventByID(ctx context.Context, id uuid.UUID) (*EventResponse, error) {
	cacheKey := eventDetailKeyPrefix + id.String()

	var cached EventResponse
	if s.cacheService != nil {
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := event.ToResponse()

	if s.cacheService != nil {
		go func() {
			_ = s.cacheService.Set(context.Background(), cacheKey, resp, s.catalogTTL)
		}()
	}

	return &resp, nil
}

func (s *service) GetAllEvents(ctx context.Context, query EventListQuery) (*PaginatedEvents, error) {
	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 20
	}

	events, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	responses := make([]EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, events[i].ToResponse())
	}

	return &PaginatedEvents{
		Events:     responses,
		TotalCount: total,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(query.Limit))),
	}, nil
}

func (s *service) PublishEvent(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.UpdateStatus(ctx, id, StatusPublished); err != nil {
		return err
	}
	s.invalidateEventCache(ctx, id)
	return nil
}

func (s *service) GetCatalog(ctx context.Context, eventID uuid.UUID) (*Catalog, error) {
	cacheKey := catalogKeyPrefix + eventID.String()

	var cached Catalog
	if s.cacheService != nil {
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	catalog := event.ToCatalog()

	if s.cacheService != nil {
		go func() {
			_ = s.cacheService.Set(context.Background(), cacheKey, catalog, s.catalogTTL)
		}()
	}

	return &catalog, nil
}

func (s *service) invalidateEventCache(ctx context.Context, eventID uuid.UUID) {
	if s.cacheService == nil {
		return
	}
	_ = s.cacheService.Delete(ctx, eventDetailKeyPrefix+eventID.String())
	_ = s.cacheService.Delete(ctx, catalogKeyPrefix+eventID.String())
}
