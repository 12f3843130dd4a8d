package booking

// StartSessionRequest opens a booking session for an event
type StartSessionRequest struct {
	EventID string `json:"event_id" binding:"required,uuid"`
}

// ChangeQuantityRequest adjusts one tier's selected quantity
type ChangeQuantityRequest struct {
	TierKey string `json:"tier_key" binding:"required"`
	Delta   int    `json:"delta" binding:"required"`
}

// AssignOwnerRequest marks one slot as the account holder's own ticket
type AssignOwnerRequest struct {
	Index int `json:"index" binding:"min=0"`
}

// PaymentCallbackRequest is the gateway's server-to-server result
type PaymentCallbackRequest struct {
	Reference string `json:"reference" binding:"required"`
	Status    string `json:"status" binding:"required,oneof=success failed"`
}

// OrderListQuery paginates the customer's order history
type OrderListQuery struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}
