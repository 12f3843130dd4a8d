package cards

import (
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

// GetStatus handles GET /api/v1/cards/status
func (c *Controller) GetStatus(ctx *gin.Context) {
	customerIDStr, exists := ctx.Get("customer_id")
	if !exists {
		response.Error(ctx, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	customerID, err := uuid.Parse(customerIDStr.(string))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid customer ID", nil)
		return
	}

	status := c.service.GetStatus(ctx.Request.Context(), customerID)
	response.Success(ctx, http.StatusOK, "Card status retrieved successfully", status)
}
