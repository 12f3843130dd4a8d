package auth

import (
	"context"
	"testing"
	"time"

	"tixora/internal/customers"
	"tixora/internal/shared/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memCustomerRepo struct {
	byID     map[uuid.UUID]*customers.Customer
	byMobile map[string]*customers.Customer
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{
		byID:     make(map[uuid.UUID]*customers.Customer),
		byMobile: make(map[string]*customers.Customer),
	}
}

func (m *memCustomerRepo) Create(ctx context.Context, customer *customers.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	m.byID[customer.ID] = customer
	m.byMobile[customer.Mobile] = customer
	return nil
}

func (m *memCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*customers.Customer, error) {
	customer, ok := m.byID[id]
	if !ok {
		return nil, customers.ErrCustomerNotFound
	}
	return customer, nil
}

func (m *memCustomerRepo) GetByMobile(ctx context.Context, mobile string) (*customers.Customer, error) {
	customer, ok := m.byMobile[mobile]
	if !ok {
		return nil, customers.ErrCustomerNotFound
	}
	return customer, nil
}

func (m *memCustomerRepo) MobileExists(ctx context.Context, mobile string) (bool, error) {
	_, ok := m.byMobile[mobile]
	return ok, nil
}

func (m *memCustomerRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	for _, customer := range m.byID {
		if customer.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memCustomerRepo) UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error {
	customer, ok := m.byID[id]
	if !ok {
		return customers.ErrCustomerNotFound
	}
	customer.Password = hashedPassword
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			JWTExpiresIn:     15 * time.Minute,
			RefreshExpiresIn: 24 * time.Hour,
		},
	}
}

func registerRequest() *RegisterRequest {
	return &RegisterRequest{
		Name:     "Omar Hassan",
		Mobile:   "+201012345678",
		Email:    "omar.hassan@gmail.com",
		Password: "qwerty",
	}
}

func TestRegisterIssuesTokenPair(t *testing.T) {
	svc := NewService(newMemCustomerRepo(), testConfig())

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Omar Hassan", resp.Customer.Name)
	assert.Equal(t, "CUSTOMER", resp.Customer.Role)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.Customer.ID, claims.CustomerID)
	assert.Equal(t, "access", claims.Type)
}

func TestRegisterDuplicateMobile(t *testing.T) {
	svc := NewService(newMemCustomerRepo(), testConfig())

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	req := registerRequest()
	req.Email = "other@gmail.com"
	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrCustomerAlreadyExists)
}

func TestLogin(t *testing.T) {
	repo := newMemCustomerRepo()
	svc := NewService(repo, testConfig())

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Mobile:   "+201012345678",
		Password: "qwerty",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = svc.Login(context.Background(), &LoginRequest{
		Mobile:   "+201012345678",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &LoginRequest{
		Mobile:   "+201099999999",
		Password: "qwerty",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshTokenRequiresRefreshType(t *testing.T) {
	svc := NewService(newMemCustomerRepo(), testConfig())

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	pair, err := svc.RefreshToken(context.Background(), resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)

	// An access token must not pass as a refresh token
	_, err = svc.RefreshToken(context.Background(), resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsForgedSignature(t *testing.T) {
	svc := NewService(newMemCustomerRepo(), testConfig())

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.JWT.Secret = "another-secret"
	other := NewService(newMemCustomerRepo(), otherCfg)

	_, err = other.ValidateToken(resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newMemCustomerRepo()
	svc := NewService(repo, testConfig())

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	id, err := uuid.Parse(resp.Customer.ID)
	require.NoError(t, err)
	stored, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)

	assert.NotEqual(t, "qwerty", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("qwerty")))
}
