package events

import (
	"errors"
	"net/http"

	"tixora/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// CreateEvent handles POST /api/v1/events (admin only)
func (c *Controller) CreateEvent(ctx *gin.Context) {
	adminIDStr, exists := ctx.Get("customer_id")
	if !exists {
		response.Error(ctx, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	adminID, err := uuid.Parse(adminIDStr.(string))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid customer ID", nil)
		return
	}

	var req CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	resp, err := c.service.CreateEvent(ctx.Request.Context(), adminID, req)
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Failed to create event", err.Error())
		return
	}

	response.Success(ctx, http.StatusCreated, "Event created successfully", resp)
}

// GetEvent handles GET /api/v1/events/:id
func (c *Controller) GetEvent(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid event ID", nil)
		return
	}

	resp, err := c.service.GetEventByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			response.Error(ctx, http.StatusNotFound, "Event not found", nil)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to get event", nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Event retrieved successfully", resp)
}

// ListEvents handles GET /api/v1/events
func (c *Controller) ListEvents(ctx *gin.Context) {
	var query EventListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return
	}

	resp, err := c.service.GetAllEvents(ctx.Request.Context(), query)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to list events", nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Events retrieved successfully", resp)
}

// PublishEvent handles POST /api/v1/events/:id/publish (admin only)
func (c *Controller) PublishEvent(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid event ID", nil)
		return
	}

	if err := c.service.PublishEvent(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, ErrEventNotFound) {
			response.Error(ctx, http.StatusNotFound, "Event not found", nil)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to publish event", nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Event published successfully", nil)
}
