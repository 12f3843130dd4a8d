package customers

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

func IsValidRole(role string) bool {
	switch role {
	case string(RoleCustomer), string(RoleAdmin):
		return true
	default:
		return false
	}
}

// Customer is the authenticated account holder of a booking session
type Customer struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Name      string    `json:"name" gorm:"not null"`
	Mobile    string    `json:"mobile" gorm:"uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // hide in json
	IsVip     bool      `json:"is_vip" gorm:"default:false"`
	Role      Role      `json:"role" gorm:"not null;default:'CUSTOMER'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}

// Profile is the identity snapshot handed to the booking engine
type Profile struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
	Email  string `json:"email"`
	IsVip  bool   `json:"is_vip"`
}

func (c *Customer) ToProfile() Profile {
	return Profile{
		ID:     c.ID.String(),
		Name:   c.Name,
		Mobile: c.Mobile,
		Email:  c.Email,
		IsVip:  c.IsVip,
	}
}
