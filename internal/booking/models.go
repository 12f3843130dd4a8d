package booking

import (
	"time"

	"github.com/google/uuid"
)

// Order statuses
const (
	OrderStatusPending   = "PENDING"
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusFailed    = "FAILED"
)

// Order is a submitted booking awaiting (or past) payment. It is
// created when the gateway session opens; ticket issuance happens
// server-side after the gateway confirms payment.
type Order struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OrderRef   string    `gorm:"unique;not null" json:"order_ref"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customer_id"`
	EventID    uuid.UUID `gorm:"type:uuid;index;not null" json:"event_id"`
	Category   string    `gorm:"not null;size:255" json:"category"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	Amount     float64   `gorm:"not null" json:"amount"`
	Currency   string    `gorm:"type:varchar(3);default:'EGP'" json:"currency"`
	Status     string    `gorm:"type:varchar(20);check:status IN ('PENDING', 'CONFIRMED', 'FAILED');default:'PENDING'" json:"status"`
	GatewayRef string    `gorm:"index" json:"gateway_ref"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	Tickets []OrderTicket `json:"tickets,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE;"`
}

// OrderTicket is one ticket line of a submitted order
type OrderTicket struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OrderID  uuid.UUID `gorm:"type:uuid;index;not null" json:"order_id"`
	Name     string    `json:"name"`
	Mobile   string    `json:"mobile"`
	Email    string    `json:"email"`
	IsOwner  bool      `gorm:"default:false" json:"is_owner"`
	Category string    `gorm:"not null;size:255" json:"category"`
	Price    float64   `gorm:"not null" json:"price"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the table name for Order
func (Order) TableName() string {
	return "orders"
}

// TableName sets the table name for OrderTicket
func (OrderTicket) TableName() string {
	return "order_tickets"
}
