package database

import (
	"tixora/internal/booking"
	"tixora/internal/cards"
	"tixora/internal/customers"
	"tixora/internal/events"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// uuid_generate_v4() defaults need the extension present
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&customers.Customer{},
		&events.Event{},
		&events.TicketTier{},
		&cards.Card{},
		&booking.Order{},
		&booking.OrderTicket{},
	)
}
