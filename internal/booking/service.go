package booking

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"tixora/internal/cards"
	"tixora/internal/customers"
	"tixora/internal/events"
	"tixora/internal/payments"
	"tixora/pkg/logger"

	"github.com/google/uuid"
)

// CatalogProvider supplies the immutable tier catalog for an event
// (narrow interface to avoid a hard dependency on the events service)
type CatalogProvider interface {
	GetCatalog(ctx context.Context, eventID uuid.UUID) (*events.Catalog, error)
}

// IdentityProvider supplies the authenticated customer's profile
type IdentityProvider interface {
	GetProfile(ctx context.Context, customerID uuid.UUID) (*customers.Profile, error)
}

// CardStatusProvider supplies the card-charge flags for a customer
type CardStatusProvider interface {
	GetStatus(ctx context.Context, customerID uuid.UUID) cards.Status
}

// SubmissionResult is returned when a booking is handed to the gateway
type SubmissionResult struct {
	OrderID   string                    `json:"order_id"`
	OrderRef  string                    `json:"order_ref"`
	Breakdown PriceBreakdown            `json:"breakdown"`
	Checkout  *payments.CheckoutSession `json:"checkout"`
	Payload   *SubmissionPayload        `json:"payload"`
}

// Service drives one customer's booking flow from tier selection
// through payment initiation
type Service interface {
	StartSession(ctx context.Context, customerID, eventID uuid.UUID) (*Session, error)
	GetSession(ctx context.Context, sessionID string, customerID uuid.UUID) (*Session, error)
	ChangeQuantity(ctx context.Context, sessionID string, customerID uuid.UUID, tierKey string, delta int) (*Session, error)
	UpdateSlot(ctx context.Context, sessionID string, customerID uuid.UUID, index int, upd SlotUpdate) (*Session, error)
	AssignOwner(ctx context.Context, sessionID string, customerID uuid.UUID, index int) (*Session, error)
	Quote(session *Session) PriceBreakdown
	Submit(ctx context.Context, sessionID string, customerID uuid.UUID) (*SubmissionResult, error)
	ConfirmPayment(ctx context.Context, gatewayRef string, succeeded bool) error

	GetOrder(ctx context.Context, orderID, customerID uuid.UUID) (*Order, error)
	GetCustomerOrders(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]Order, error)
}

type service struct {
	store    SessionStore
	repo     Repository
	catalog  CatalogProvider
	identity IdentityProvider
	cards    CardStatusProvider
	gateway  payments.Client
	producer payments.Producer
	rules     PricingRules
	currency  string
	country   string
	returnURL string
	log       *logger.Logger
}

// Deps bundles the collaborators the booking service is wired with
type Deps struct {
	Store    SessionStore
	Repo     Repository
	Catalog  CatalogProvider
	Identity IdentityProvider
	Cards    CardStatusProvider
	Gateway  payments.Client
	Producer payments.Producer
	Rules     PricingRules
	Currency  string
	Country   string
	ReturnURL string
	Logger    *logger.Logger
}

func NewService(deps Deps) Service {
	return &service{
		store:    deps.Store,
		repo:     deps.Repo,
		catalog:  deps.Catalog,
		identity: deps.Identity,
		cards:    deps.Cards,
		gateway:  deps.Gateway,
		producer: deps.Producer,
		rules:     deps.Rules,
		currency:  deps.Currency,
		country:   deps.Country,
		returnURL: deps.ReturnURL,
		log:       deps.Logger,
	}
}

func (s *service) StartSession(ctx context.Context, customerID, eventID uuid.UUID) (*Session, error) {
	profile, err := s.identity.GetProfile(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer profile: %w", err)
	}

	catalog, err := s.catalog.GetCatalog(ctx, eventID)
	if err != nil {
		return nil, &UpstreamDataError{Source: "catalog", Err: err}
	}

	if catalog.Status != events.StatusPublished {
		return nil, newValidationError(CodeEventNotBookable, "this event is not open for booking")
	}

	// Card status degrades to charge-both internally, never fails
	status := s.cards.GetStatus(ctx, customerID)

	tiers := make([]Tier, 0, len(catalog.Tiers))
	for _, t := range catalog.Tiers {
		tiers = append(tiers, Tier{
			Key:            t.Key,
			Label:          t.Label,
			CategoryName:   t.CategoryName,
			Color:          t.Color,
			Price:          t.Price,
			AvailableCount: t.AvailableCount,
		})
	}

	defaultCountry := catalog.CountryCode
	if defaultCountry == "" {
		defaultCountry = s.country
	}

	account := AccountHolder{
		ID:          profile.ID,
		Name:        profile.Name,
		Mobile:      profile.Mobile,
		Email:       profile.Email,
		CountryCode: detectCountryCode(profile.Mobile, defaultCountry),
		IsVip:       profile.IsVip,
	}

	session := NewSession(uuid.New().String(), account, catalog.EventID, catalog.EventName,
		catalog.IsUnseated, defaultCountry, tiers, status.NeedsCardFee, status.NeedsRenewalCost)

	if err := s.store.Save(ctx, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

func (s *service) GetSession(ctx context.Context, sessionID string, customerID uuid.UUID) (*Session, error) {
	return s.loadOwned(ctx, sessionID, customerID)
}

func (s *service) ChangeQuantity(ctx context.Context, sessionID string, customerID uuid.UUID, tierKey string, delta int) (*Session, error) {
	session, err := s.loadOwned(ctx, sessionID, customerID)
	if err != nil {
		return nil, err
	}

	tier, ok := session.tierByKey(tierKey)
	if !ok {
		return nil, newValidationError(CodeUnknownTier, "unknown ticket tier")
	}

	// The available count is a snapshot taken at session start, not a
	// reservation; it caps the selection, never consumes inventory
	if delta > 0 && session.TierQuantity(tierKey)+delta > tier.AvailableCount {
		return nil, newValidationError(CodeTierUnavailable, "not enough tickets left in this tier")
	}

	next := session.ChangeQuantity(tierKey, delta)
	if err := s.store.Save(ctx, &next); err != nil {
		return nil, err
	}

	return &next, nil
}

func (s *service) UpdateSlot(ctx context.Context, sessionID string, customerID uuid.UUID, index int, upd SlotUpdate) (*Session, error) {
	session, err := s.loadOwned(ctx, sessionID, customerID)
	if err != nil {
		return nil, err
	}

	next, err := session.UpdateSlot(index, upd)
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, &next); err != nil {
		return nil, err
	}

	return &next, nil
}

func (s *service) AssignOwner(ctx context.Context, sessionID string, customerID uuid.UUID, index int) (*Session, error) {
	session, err := s.loadOwned(ctx, sessionID, customerID)
	if err != nil {
		return nil, err
	}

	next, err := session.AssignOwner(index)
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, &next); err != nil {
		return nil, err
	}

	return &next, nil
}

func (s *service) Quote(session *Session) PriceBreakdown {
	return session.Quote(s.rules)
}

// Submit validates the session, opens a gateway checkout and records
// the pending order. The session itself is left in the store so a
// gateway failure can be retried by resubmitting.
func (s *service) Submit(ctx context.Context, sessionID string, customerID uuid.UUID) (*SubmissionResult, error) {
	session, err := s.loadOwned(ctx, sessionID, customerID)
	if err != nil {
		return nil, err
	}

	payload, err := session.BuildSubmission(s.rules)
	if err != nil {
		return nil, err
	}

	breakdown := session.Quote(s.rules)

	checkout, err := s.gateway.Initiate(ctx, s.buildGatewayRequest(session, payload))
	if err != nil {
		return nil, &PaymentInitiationError{Err: err}
	}

	orderRef, err := generateOrderRef()
	if err != nil {
		return nil, fmt.Errorf("failed to generate order reference: %w", err)
	}

	eventUUID, err := uuid.Parse(session.EventID)
	if err != nil {
		return nil, fmt.Errorf("invalid event ID on session: %w", err)
	}

	order := &Order{
		OrderRef:   orderRef,
		CustomerID: customerID,
		EventID:    eventUUID,
		Category:   payload.Category,
		Quantity:   payload.Quantity,
		Amount:     payload.Amount,
		Currency:   s.currency,
		Status:     OrderStatusPending,
		GatewayRef: checkout.Reference,
	}
	for _, detail := range payload.TicketDetails {
		order.Tickets = append(order.Tickets, OrderTicket{
			Name:     detail.Name,
			Mobile:   detail.Mobile,
			Email:    detail.Email,
			IsOwner:  detail.IsOwner,
			Category: detail.Category,
			Price:    detail.Price,
		})
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.publishOrderEvent(ctx, payments.OrderEventSubmitted, order)

	return &SubmissionResult{
		OrderID:   order.ID.String(),
		OrderRef:  order.OrderRef,
		Breakdown: breakdown,
		Checkout:  checkout,
		Payload:   payload,
	}, nil
}

// ConfirmPayment applies the gateway's out-of-band result to the order.
// The gateway reference is stored opaquely; ticket issuance happens
// downstream of the published event.
func (s *service) ConfirmPayment(ctx context.Context, gatewayRef string, succeeded bool) error {
	order, err := s.repo.GetByGatewayRef(ctx, gatewayRef)
	if err != nil {
		return err
	}

	status := OrderStatusConfirmed
	eventType := payments.OrderEventConfirmed
	if !succeeded {
		status = OrderStatusFailed
		eventType = payments.OrderEventFailed
	}

	if err := s.repo.UpdateStatus(ctx, order.ID, status); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	order.Status = status
	s.publishOrderEvent(ctx, eventType, order)

	return nil
}

func (s *service) GetOrder(ctx context.Context, orderID, customerID uuid.UUID) (*Order, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *service) GetCustomerOrders(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]Order, error) {
	return s.repo.GetByCustomerID(ctx, customerID, limit, offset)
}

func (s *service) loadOwned(ctx context.Context, sessionID string, customerID uuid.UUID) (*Session, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.CustomerID != customerID.String() {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *service) buildGatewayRequest(session *Session, payload *SubmissionPayload) *payments.InitiateRequest {
	details := make([]payments.TicketDetail, 0, len(payload.TicketDetails))
	for _, d := range payload.TicketDetails {
		details = append(details, payments.TicketDetail{
			Name:     d.Name,
			Mobile:   d.Mobile,
			Email:    d.Email,
			IsOwner:  d.IsOwner,
			Category: d.Category,
			Price:    d.Price,
		})
	}

	return &payments.InitiateRequest{
		EventID:   session.EventID,
		Amount:    payload.Amount,
		Currency:  s.currency,
		ReturnURL: s.returnURL,
		BookingData: payments.BookingData{
			Category:      payload.Category,
			Quantity:      payload.Quantity,
			TicketDetails: details,
		},
	}
}

func (s *service) publishOrderEvent(ctx context.Context, eventType payments.OrderEventType, order *Order) {
	if s.producer == nil {
		return
	}

	event := &payments.OrderEvent{
		Type:       eventType,
		OrderID:    order.ID.String(),
		OrderRef:   order.OrderRef,
		GatewayRef: order.GatewayRef,
		CustomerID: order.CustomerID.String(),
		EventID:    order.EventID.String(),
		Amount:     order.Amount,
		Currency:   order.Currency,
	}

	if err := s.producer.PublishOrderEvent(ctx, event); err != nil {
		// The order is already persisted; losing the event is not fatal
		s.log.Warn("failed to publish order event",
			"order_id", order.ID.String(), "type", string(eventType), "error", err.Error())
	}
}

// generateOrderRef generates a unique order reference
func generateOrderRef() (string, error) {
	timestamp := time.Now().Format("20060102")

	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	randomPart := make([]byte, 6)

	for i := range randomPart {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(letters))))
		if err != nil {
			return "", err
		}
		randomPart[i] = letters[num.Int64()]
	}

	return fmt.Sprintf("TIX-%s-%s", timestamp, string(randomPart)), nil
}
