package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidSession = errors.New("invalid session token")

// SessionService issues and verifies the signed cookie value that names a
// visitor's session.
type SessionService struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

func NewSessionService(secret string, expiration time.Duration) *SessionService {
	return &SessionService{
		secret:     []byte(secret),
		expiration: expiration,
		now:        time.Now,
	}
}

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

func (s *SessionService) NewSessionID() string {
	return uuid.NewString()
}

func (s *SessionService) GenerateToken(sessionID string) (string, error) {
	now := s.now()
	claims := sessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *SessionService) ParseToken(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", errors.Join(ErrInvalidSession, err)
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return "", ErrInvalidSession
	}
	if _, err := uuid.Parse(claims.SessionID); err != nil {
		return "", errors.Join(ErrInvalidSession, err)
	}
	return claims.SessionID, nil
}

func (s *SessionService) TTL() time.Duration {
	return s.expiration
}
