package booking

// SessionResponse pairs the session snapshot with a fresh quote so the
// client never renders a stale total
type SessionResponse struct {
	Session   *Session       `json:"session"`
	Breakdown PriceBreakdown `json:"breakdown"`
}

// OrderListResponse is a page of the customer's order history
type OrderListResponse struct {
	Orders []Order `json:"orders"`
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
}
