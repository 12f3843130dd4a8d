package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tixora/internal/customers"
	"tixora/internal/shared/config"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrCustomerAlreadyExists = errors.New("customer already exists")
	ErrInvalidToken          = errors.New("invalid token")
)

type Service interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	ValidateToken(tokenString string) (*JWTClaims, error)
}

type service struct {
	repo   customers.Repository
	config *config.Config
}

func NewService(repo customers.Repository, cfg *config.Config) Service {
	return &service{
		repo:   repo,
		config: cfg,
	}
}

func (s *service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	// A mobile number identifies one account
	exists, err := s.repo.MobileExists(ctx, req.Mobile)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCustomerAlreadyExists
	}

	exists, err = s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCustomerAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	customer := &customers.Customer{
		Name:     req.Name,
		Mobile:   req.Mobile,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     customers.RoleCustomer,
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}

	tokenPair, err := s.generateTokenPair(customer)
	if err != nil {
		return nil, err
	}

	return s.buildAuthResponse(customer, tokenPair), nil
}

func (s *service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	customer, err := s.repo.GetByMobile(ctx, req.Mobile)
	if err != nil {
		if errors.Is(err, customers.ErrCustomerNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokenPair, err := s.generateTokenPair(customer)
	if err != nil {
		return nil, err
	}

	return s.buildAuthResponse(customer, tokenPair), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.validateToken(refreshToken)
	if err != nil {
		return nil, err
	}

	if claims.Type != "refresh" {
		return nil, ErrInvalidToken
	}

	customerID, err := uuid.Parse(claims.CustomerID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	customer, err := s.repo.GetByID(ctx, customerID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return s.generateTokenPair(customer)
}

func (s *service) ValidateToken(tokenString string) (*JWTClaims, error) {
	return s.validateToken(tokenString)
}

func (s *service) buildAuthResponse(customer *customers.Customer, tokenPair *TokenPair) *AuthResponse {
	return &AuthResponse{
		Customer: CustomerResponse{
			ID:        customer.ID.String(),
			Name:      customer.Name,
			Mobile:    customer.Mobile,
			Email:     customer.Email,
			IsVip:     customer.IsVip,
			Role:      string(customer.Role),
			CreatedAt: customer.CreatedAt,
		},
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	}
}

func (s *service) generateTokenPair(customer *customers.Customer) (*TokenPair, error) {
	now := time.Now()

	accessClaims := JWTClaims{
		CustomerID: customer.ID.String(),
		Mobile:     customer.Mobile,
		Email:      customer.Email,
		Role:       string(customer.Role),
		Type:       "access",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.JWT.JWTExpiresIn)),
			Issuer:    "tixora",
			Subject:   customer.ID.String(),
		},
	}

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(s.config.JWT.Secret))
	if err != nil {
		return nil, err
	}

	refreshClaims := JWTClaims{
		CustomerID: customer.ID.String(),
		Mobile:     customer.Mobile,
		Email:      customer.Email,
		Role:       string(customer.Role),
		Type:       "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.JWT.RefreshExpiresIn)),
			Issuer:    "tixora",
			Subject:   customer.ID.String(),
		},
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(s.config.JWT.Secret))
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessTokenString,
		RefreshToken: refreshTokenString,
		ExpiresIn:    int64(s.config.JWT.JWTExpiresIn.Seconds()),
	}, nil
}

func (s *service) validateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.config.JWT.Secret), nil
	})

	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
