package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"tixora/internal/cards"
	"tixora/internal/customers"
	"tixora/internal/events"
	"tixora/internal/shared/config"
	"tixora/internal/shared/database"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Tixora Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	// Delete in reverse dependency order
	tables := []string{
		"order_tickets",
		"orders",
		"cards",
		"ticket_tiers",
		"events",
		"customers",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	customerIDs, err := s.SeedCustomers()
	if err != nil {
		return fmt.Errorf("failed to seed customers: %w", err)
	}

	if err := s.SeedEvents(customerIDs["admin"]); err != nil {
		return fmt.Errorf("failed to seed events: %w", err)
	}

	if err := s.SeedCards(customerIDs); err != nil {
		return fmt.Errorf("failed to seed cards: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
		log.Printf("Warning: Failed to clear Redis cache: %v", err)
	}

	return nil
}

// SeedCustomers creates 1 admin and 3 customers (one VIP)
func (s *Seeder) SeedCustomers() (map[string]uuid.UUID, error) {
	fmt.Println("  👤 Seeding customers...")

	customerIDs := make(map[string]uuid.UUID)

	// Hash password for all customers (using "qwerty")
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	customersData := []struct {
		key    string
		name   string
		mobile string
		email  string
		isVip  bool
		role   customers.Role
	}{
		{"admin", "Admin User", "+201000000001", "admin@tixora.app", false, customers.RoleAdmin},
		{"omar", "Omar Hassan", "+201012345678", "omar.hassan@gmail.com", false, customers.RoleCustomer},
		{"nour", "Nour El-Sayed", "+201155554444", "nour.elsayed@gmail.com", true, customers.RoleCustomer},
		{"laila", "Laila Mansour", "+971501234567", "laila.mansour@gmail.com", false, customers.RoleCustomer},
	}

	for _, customerData := range customersData {
		customer := customers.Customer{
			ID:        uuid.New(),
			Name:      customerData.name,
			Mobile:    customerData.mobile,
			Email:     customerData.email,
			Password:  string(hashedPassword),
			IsVip:     customerData.isVip,
			Role:      customerData.role,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&customer).Error; err != nil {
			return nil, fmt.Errorf("failed to create customer %s: %w", customerData.email, err)
		}

		customerIDs[customerData.key] = customer.ID
		fmt.Printf("    ✅ Created customer: %s (%s)\n", customer.Email, customer.Role)
	}

	return customerIDs, nil
}

// SeedEvents creates one unseated festival and one seated concert with tiers
func (s *Seeder) SeedEvents(adminID uuid.UUID) error {
	fmt.Println("  🎫 Seeding events...")

	eventsData := []struct {
		name       string
		venue      string
		isUnseated bool
		minimumAge int
		tiers      []struct {
			label    string
			category string
			color    string
			price    float64
			count    int
		}
	}{
		{
			name:       "Cairo Sound Festival",
			venue:      "New Capital Arena Grounds",
			isUnseated: true,
			minimumAge: 16,
			tiers: []struct {
				label    string
				category string
				color    string
				price    float64
				count    int
			}{
				{"Golden Circle", "Golden Circle", "#F59E0B", 300, 500},
				{"Regular", "Regular", "#3B82F6", 100, 3000},
			},
		},
		{
			name:       "Omar Khairat Live",
			venue:      "Cairo Opera House",
			isUnseated: false,
			minimumAge: 0,
			tiers: []struct {
				label    string
				category string
				color    string
				price    float64
				count    int
			}{
				{"VIP Box", "VIP", "#8B5CF6", 1500, 40},
				{"Orchestra", "Orchestra", "#EF4444", 800, 200},
				{"Balcony", "Balcony", "#10B981", 400, 300},
			},
		},
	}

	for _, eventData := range eventsData {
		event := events.Event{
			ID:          uuid.New(),
			Name:        eventData.name,
			Description: fmt.Sprintf("%s at %s", eventData.name, eventData.venue),
			Venue:       eventData.venue,
			DateTime:    time.Now().AddDate(0, 2, 0),
			IsUnseated:  eventData.isUnseated,
			MinimumAge:  eventData.minimumAge,
			CountryCode: "EG",
			Status:      events.StatusPublished,
			CreatedBy:   adminID,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		for i, tierData := range eventData.tiers {
			event.Tiers = append(event.Tiers, events.TicketTier{
				ID:             uuid.New(),
				Key:            events.NormalizeTierKey(tierData.label),
				Label:          tierData.label,
				CategoryName:   tierData.category,
				Color:          tierData.color,
				Price:          tierData.price,
				AvailableCount: tierData.count,
				SortOrder:      i,
			})
		}

		if err := s.db.PostgreSQL.Create(&event).Error; err != nil {
			return fmt.Errorf("failed to create event %s: %w", event.Name, err)
		}

		fmt.Printf("    ✅ Created event: %s (%d tiers)\n", event.Name, len(event.Tiers))
	}

	return nil
}

// SeedCards issues cards in different states so each charge path is testable
func (s *Seeder) SeedCards(customerIDs map[string]uuid.UUID) error {
	fmt.Println("  💳 Seeding cards...")

	activeExpiry := time.Now().AddDate(2, 0, 0)
	pastExpiry := time.Now().AddDate(-1, 0, 0)

	cardsData := []struct {
		customerKey string
		serialNo    string
		state       cards.CardState
		expiresAt   *time.Time
	}{
		// omar has a valid card: no charges at checkout
		{"omar", "TIX-CARD-000101", cards.CardStateActive, &activeExpiry},
		// nour's card lapsed: renewal cost applies
		{"nour", "TIX-CARD-000102", cards.CardStateExpired, &pastExpiry},
		// laila has no card at all: issue fee applies
	}

	for _, cardData := range cardsData {
		card := cards.Card{
			ID:         uuid.New(),
			CustomerID: customerIDs[cardData.customerKey],
			SerialNo:   cardData.serialNo,
			State:      cardData.state,
			IssuedAt:   time.Now().AddDate(-2, 0, 0),
			ExpiresAt:  cardData.expiresAt,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&card).Error; err != nil {
			return fmt.Errorf("failed to create card %s: %w", card.SerialNo, err)
		}

		fmt.Printf("    ✅ Created card: %s (%s)\n", card.SerialNo, card.State)
	}

	return nil
}
