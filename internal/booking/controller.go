package booking

import (
	"errors"
	"net/http"
	"strconv"

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

// StartSession handles POST /api/v1/bookings/sessions
func (c *Controller) StartSession(ctx *gin.Context) {
	customerID, ok := c.customerID(ctx)
	if !ok {
		return
	}

	var req StartSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid event ID", nil)
		return
	}

	session, err := c.service.StartSession(ctx.Request.Context(), customerID, eventID)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusCreated, "Booking session started", c.sessionResponse(session))
}

// GetSession handles GET /api/v1/bookings/sessions/:id
func (c *Controller) GetSession(ctx *gin.Context) {
	customerID, ok := c.customerID(ctx)
	if !ok {
		return
	}

	session, err := c.service.GetSession(ctx.Request.Context(), ctx.Param("id"), customerID)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "Booking session retrieved", c.sessionResponse(session))
}

// ChangeQuantity handles POST /api/v1/bookings/sessions/:id/quantity
func (c *Controller) ChangeQuantity(ctx *gin.Context) {
	customerID, ok := c.customerID(ctx)
	if !ok {
		return
	}

	var req ChangeQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	session, err := c.service.ChangeQuantity(ctx.Request.Context(), ctx.Param("id"), customerID, req.TierKey, req.Delta)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "Quantity updated", c.sessionResponse(session))
}

// UpdateSlot handles PUT /api/v1/bookings/sessions/:id/slots/:index
func (c *Controller) UpdateSlot(ctx *gin.Context) {
	customerID, ok := c.customerID(ctx)
	if !ok {
		return
	}

	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid slot index", nil)
		return
	}

	var upd SlotUpdate
	if err := ctx.ShouldBindJSON(&upd); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	session, err := c.service.UpdateSlot(ctx.Request.Context(), ctx.Param("id"), customerID, index, upd)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "Ticket details updated", c.sessionResponse(session))
}

// AssignOwner handles POST /api/v1/bookings/sessions/:id/owner
func (c *Controller) AssignOwner(ctx *gin.Context) {
	customerID, ok := c.customerID(ctx)
	if !ok {
		return
	}

	var req AssignOwnerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	session, err := c.service.AssignOwner(ctx.Request.Context(), ctx.Param("id"), customerID, req.Index)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "Owner ticket assigned", c.sessionResponse(session))
}

// GetQuote handles GET /api/v1/bookings/sessions/:id/quote
func (c *Controller) GetQuote(ctx *gin.Context) {
	customerID, ok := c.customerID(ctx)
	if !ok {
		return
	}

	session, err := c.service.GetSession(ctx.Request.Context(), ctx.Param("id"), customerID)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "Quote calculated", c.service.Quote(session))
}

// Submit handles POST /api/v1/bookings/sessions/:id/submit
func (c *Controller) Submit(ctx *gin.Context) {
	customerID, ok := c.customerID(ctx)
	if !ok {
		return
	}

	result, err := c.service.Submit(ctx.Request.Context(), ctx.Param("id"), customerID)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusCreated, "Booking submitted", result)
}

// PaymentCallback handles POST /api/v1/payments/callback. The gateway
// calls it server-to-server with the checkout reference it was issued.
func (c *Controller) PaymentCallback(ctx *gin.Context) {
	var req PaymentCallbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	err := c.service.ConfirmPayment(ctx.Request.Context(), req.Reference, req.Status == "success")
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "Payment result recorded", nil)
}

// GetOrder handles GET /api/v1/bookings/orders/:id
func (c *Controller) GetOrder(ctx *gin.Context) {
	customerID, ok := c.customerID(ctx)
	if !ok {
		return
	}

	orderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid order ID", nil)
		return
	}

	order, err := c.service.GetOrder(ctx.Request.Context(), orderID, customerID)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "Order retrieved", order)
}

// ListOrders handles GET /api/v1/bookings/orders
func (c *Controller) ListOrders(ctx *gin.Context) {
	customerID, ok := c.customerID(ctx)
	if !ok {
		return
	}

	var query OrderListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return
	}

	orders, err := c.service.GetCustomerOrders(ctx.Request.Context(), customerID, query.Limit, query.Offset)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "Orders retrieved", OrderListResponse{
		Orders: orders,
		Limit:  query.Limit,
		Offset: query.Offset,
	})
}

func (c *Controller) sessionResponse(session *Session) SessionResponse {
	return SessionResponse{
		Session:   session,
		Breakdown: c.service.Quote(session),
	}
}

func (c *Controller) customerID(ctx *gin.Context) (uuid.UUID, bool) {
	idStr, exists := ctx.Get("customer_id")
	if !exists {
		response.Error(ctx, http.StatusUnauthorized, "Not authenticated", nil)
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idStr.(string))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid customer ID", nil)
		return uuid.Nil, false
	}

	return id, true
}

// respondError maps service errors onto the response envelope. Rule
// violations carry their machine-readable code so clients can react
// without parsing messages.
func (c *Controller) respondError(ctx *gin.Context, err error) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		response.Error(ctx, http.StatusUnprocessableEntity, ve.Message, ve)
		return
	}

	var ude *UpstreamDataError
	if errors.As(err, &ude) {
		response.Error(ctx, http.StatusBadGateway, "Failed to load event data", nil)
		return
	}

	var pie *PaymentInitiationError
	if errors.As(err, &pie) {
		response.Error(ctx, http.StatusBadGateway, "Payment could not be initiated, please try again", nil)
		return
	}

	switch {
	case errors.Is(err, ErrSessionNotFound):
		response.Error(ctx, http.StatusNotFound, "Booking session not found or expired", nil)
	case errors.Is(err, ErrOrderNotFound):
		response.Error(ctx, http.StatusNotFound, "Order not found", nil)
	default:
		response.Error(ctx, http.StatusInternalServerError, "Something went wrong", nil)
	}
}
