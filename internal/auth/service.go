package auth

import (
	"errors"
	"fmt"
	"time"

	"expense-portal-backend/internal/database/models"
	"expense-portal-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthService validates bearer tokens and keeps the local user table in sync
// with the identities the authenticator asserts.
type AuthService struct {
	config   *AuthConfig
	userRepo repository.UserRepositoryInterface
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID string `json:"user_id" example:"7f9c24e8-3b5a-4d2c-9f1e-8a6b5c4d3e2f"`
	Email  string `json:"email" example:"jane.doe@example.com"`
	Name   string `json:"name" example:"Jane Doe"`
	jwt.RegisteredClaims
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, userRepo repository.UserRepositoryInterface) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	return &AuthService{
		config:   config,
		userRepo: userRepo,
	}, nil
}

// GenerateJWT creates a signed token for a known user
func (s *AuthService) GenerateJWT(userID uuid.UUID, email, name string) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID: userID.String(),
		Email:  email,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Audience:  jwt.ClaimStrings{s.config.Audience},
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if _, err := uuid.Parse(claims.UserID); err != nil {
		return nil, fmt.Errorf("invalid user_id claim: %w", err)
	}

	return claims, nil
}

// EnsureUser makes sure the identity asserted by the token exists in the
// local user table, creating it on first sight. The authenticator owns the
// identity; this table only shadows it for invitations and display.
func (s *AuthService) EnsureUser(claims *AuthClaims) (*models.User, error) {
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user_id claim: %w", err)
	}

	user, err := s.userRepo.GetByID(userID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user = &models.User{
		BaseModel: models.BaseModel{ID: userID},
		Name:      claims.Name,
		Email:     claims.Email,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to provision user: %w", err)
	}
	return user, nil
}
