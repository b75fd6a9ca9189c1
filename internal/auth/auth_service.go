// Package auth is the access gate for the staff-only operations: it
// authenticates staff accounts and manages their sessions. Session tokens are
// signed JWTs whose jti is bound to a server-side session record, so an
// explicit logout revokes the token even though the signature stays valid.
package auth

import (
	"errors"
	"fmt"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"complaintdesk/backend/internal/config"
	"complaintdesk/backend/internal/storage"
)

var (
	// ErrInvalidCredentials is deliberately generic: it never reveals
	// whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUnauthorized is returned for missing, malformed or revoked tokens.
	ErrUnauthorized = errors.New("unauthorized")
)

// Service authenticates staff users and validates their session tokens.
type Service struct {
	Storage storage.Storage
	secret  []byte
}

// NewService creates a new access gate signing tokens with the given secret.
func NewService(s storage.Storage, secret string) *Service {
	return &Service{Storage: s, secret: []byte(secret)}
}

// Login verifies the credentials and, on success, creates a session and
// returns its signed token. Sessions carry no expiry; they end when Logout
// deletes the server-side record.
func (s *Service) Login(username, password string) (string, error) {
	user, err := s.Storage.GetUserByUsername(username)
	if errors.Is(err, storage.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if !user.CheckPassword(password) {
		return "", ErrInvalidCredentials
	}

	sessionID := uuid.New().String()
	if err := s.Storage.SaveSession(sessionID, user.ID); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	claims := jwt.MapClaims{
		"sub": user.ID,
		"jti": sessionID,
		"iss": config.JWTIssuer,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// Authorize validates a session token and returns the staff user ID it was
// issued to. A token whose session record was deleted is rejected.
func (s *Service) Authorize(tokenString string) (string, error) {
	userID, sessionID, err := s.parseToken(tokenString)
	if err != nil {
		return "", ErrUnauthorized
	}

	storedUserID, err := s.Storage.GetSessionUserID(sessionID)
	if errors.Is(err, storage.ErrNotFound) {
		return "", ErrUnauthorized
	}
	if err != nil {
		return "", err
	}
	if storedUserID != userID {
		return "", ErrUnauthorized
	}

	return userID, nil
}

// Logout destroys the session behind the token. Logging out with a bad token
// is not an error: the session is gone either way.
func (s *Service) Logout(tokenString string) error {
	_, sessionID, err := s.parseToken(tokenString)
	if err != nil {
		return nil
	}
	return s.Storage.DeleteSession(sessionID)
}

// parseToken verifies the signature and extracts the sub and jti claims.
func (s *Service) parseToken(tokenString string) (userID, sessionID string, err error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", "", ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", ErrUnauthorized
	}

	userID, _ = claims["sub"].(string)
	sessionID, _ = claims["jti"].(string)
	if userID == "" || sessionID == "" {
		return "", "", ErrUnauthorized
	}

	return userID, sessionID, nil
}
