package auth

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"festival-scoreboard/internal/domain"
	"festival-scoreboard/internal/repository"
	"festival-scoreboard/internal/service"
	"festival-scoreboard/pkg/errors"
	"festival-scoreboard/pkg/logger"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Issuer is the iss claim of every session token
const Issuer = "festival-scoreboard"

// sessionClaims is the JWT payload of an admin session
type sessionClaims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Service implements the AuthService interface with bcrypt-checked
// credentials and HS256-signed session tokens
type Service struct {
	users  repository.UserRepository
	secret []byte
	ttl    time.Duration
	logger *logger.Logger
	now    func() time.Time
}

// NewService creates a new auth service
func NewService(users repository.UserRepository, secret string, ttl time.Duration, logger *logger.Logger) service.AuthService {
	return &Service{
		users:  users,
		secret: []byte(secret),
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

// SessionTTL returns how long issued tokens stay valid
func (s *Service) SessionTTL() time.Duration {
	return s.ttl
}

// Login verifies the credentials and issues a session token
func (s *Service) Login(ctx context.Context, username, password string) (*domain.LoginResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, errors.NewValidationError("Username and password are required", nil)
	}

	user := s.users.GetUserByUsername(ctx, username)
	if user == nil {
		s.logger.WithField("username", username).Warn("Login attempt for unknown user")
		return nil, errors.NewAuthenticationError("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.WithField("user_id", user.ID).Warn("Login attempt with wrong password")
		return nil, errors.NewAuthenticationError("Invalid credentials")
	}

	token, expiresAt, err := s.issueToken(user)
	if err != nil {
		s.logger.WithError(err).Error("Failed to sign session token")
		return nil, errors.NewInternalError("Failed to create session", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id":    user.ID,
		"expires_at": expiresAt,
	}).Info("Admin logged in")

	return &domain.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

func (s *Service) issueToken(user *domain.User) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := sessionClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    Issuer,
			Subject:   strconv.Itoa(user.ID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateToken parses and verifies a session token
func (s *Service) ValidateToken(ctx context.Context, token string) (*domain.SessionClaims, error) {
	if !isJWTToken(token) {
		return nil, errors.NewAuthenticationError("Unrecognized token format")
	}

	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(Issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		s.logger.WithError(err).Debug("Session token rejected")
		return nil, errors.NewAuthenticationError("Invalid or expired session")
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid || claims.UserID <= 0 {
		return nil, errors.NewAuthenticationError("Invalid or expired session")
	}

	return &domain.SessionClaims{UserID: claims.UserID, Username: claims.Username}, nil
}

// GetUser loads the account behind validated claims
func (s *Service) GetUser(ctx context.Context, claims *domain.SessionClaims) (*domain.User, error) {
	if claims == nil {
		return nil, errors.NewAuthenticationError("Not authenticated")
	}
	user := s.users.GetUser(ctx, claims.UserID)
	if user == nil {
		return nil, errors.NewNotFoundError("User not found")
	}
	return user, nil
}

// isJWTToken checks if the token has the three dot-separated segments of a JWT
func isJWTToken(token string) bool {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return false
	}
	for _, p := range parts {
		if p == "" {
			return false
		}
	}
	return true
}
