// Package services – AuthService
//
// This file implements account registration, login, and bearer-token
// verification. Passwords are hashed with bcrypt and never stored or returned
// in plain form; sessions are stateless HS256 JWTs whose subject is the user
// id, so logout is purely client-side token disposal.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lunara-store/go-store-backend/internal/domain"
	"github.com/lunara-store/go-store-backend/internal/store"
)

// minPasswordLen is the minimum accepted password length in bytes.
const minPasswordLen = 6

// AuthService manages customer accounts and issues bearer tokens.
type AuthService struct {
	// Store is the persistence backend for user accounts.
	Store store.Store

	// Secret signs and verifies JWTs (HS256).
	Secret []byte
	// TTL is the token lifetime.
	TTL time.Duration

	// Now is the clock, injectable for tests. Defaults to time.Now.
	Now func() time.Time
}

// NewAuthService constructs an AuthService.
func NewAuthService(s store.Store, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Store: s, Secret: []byte(secret), TTL: ttl, Now: time.Now}
}

// Register creates an account and returns the public profile plus a fresh
// bearer token. Emails are lowercased; duplicates map to ErrDuplicateEmail.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.PublicUser, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, "", ErrMissingFields
	}
	if len(password) < minPasswordLen {
		return nil, "", ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	u := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.Now().UTC(),
	}
	if err := s.Store.CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return nil, "", ErrDuplicateEmail
		}
		return nil, "", err
	}

	token, err := s.issueToken(u.ID)
	if err != nil {
		return nil, "", err
	}
	pub := u.Public()
	return &pub, token, nil
}

// Login verifies the credentials and returns the public profile plus a fresh
// bearer token. Unknown emails and wrong passwords are both reported as
// ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.PublicUser, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.Store.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(u.ID)
	if err != nil {
		return nil, "", err
	}
	pub := u.Public()
	return &pub, token, nil
}

// CurrentUser resolves an authenticated user id to its public profile.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.PublicUser, error) {
	u, err := s.Store.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	pub := u.Public()
	return &pub, nil
}

// VerifyToken validates a bearer token and returns the user id it carries.
func (s *AuthService) VerifyToken(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.Secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.Now() }))
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

func (s *AuthService) issueToken(userID string) (string, error) {
	now := s.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}
