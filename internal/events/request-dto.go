package events

import "time"

type CreateEventRequest struct {
	Name        string              `json:"name" binding:"required,min=3,max=255"`
	Description string              `json:"description" binding:"max=2000"`
	Venue       string              `json:"venue" binding:"required,min=3,max=255"`
	DateTime    time.Time           `json:"date_time" binding:"required"`
	IsUnseated  bool                `json:"is_unseated"`
	MinimumAge  int                 `json:"minimum_age" binding:"omitempty,min=0,max=99"`
	CountryCode string              `json:"country_code" binding:"omitempty,len=2"`
	ImageURL    string              `json:"image_url" binding:"omitempty,url"`
	Tiers       []CreateTierRequest `json:"tiers" binding:"required,min=1,dive"`
}

type CreateTierRequest struct {
	Label          string  `json:"label" binding:"required,min=2,max=255"`
	CategoryName   string  `json:"category_name" binding:"required,min=2,max=255"`
	Color          string  `json:"color" binding:"omitempty,max=20"`
	Price          float64 `json:"price" binding:"min=0"`
	AvailableCount int     `json:"available_count" binding:"required,min=1"`
}

type EventListQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Search string `form:"search"`
	Venue  string `form:"venue"`
	Status string `form:"status" binding:"omitempty,oneof=draft published cancelled completed"`
}
