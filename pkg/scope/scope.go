package scope

import (
	"fmt"

	"logistic-api/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Verify checks signature and expiry and returns the payload.
func (m *implManager) Verify(token string) (Payload, error) {
	if token == "" {
		return Payload{}, fmt.Errorf("%w: token is empty", ErrInvalidToken)
	}
	keyFunc := func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method: %v", ErrInvalidToken, t.Header["alg"])
		}
		return []byte(m.secretKey), nil
	}
	jwtToken, err := jwt.ParseWithClaims(token, &Payload{}, keyFunc,
		jwt.WithTimeFunc(m.clock),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	payload, ok := jwtToken.Claims.(*Payload)
	if !ok || !jwtToken.Valid {
		return Payload{}, fmt.Errorf("%w: failed to parse claims", ErrInvalidToken)
	}
	if payload.Subject == "" {
		return Payload{}, fmt.Errorf("%w: subject is missing", ErrInvalidToken)
	}
	return *payload, nil
}

// CreateToken signs payload with HS256. Registered time claims and the
// token id are always overwritten.
func (m *implManager) CreateToken(payload Payload) (string, error) {
	now := m.clock()
	payload.ExpiresAt = jwt.NewNumericDate(now.Add(m.ttl))
	payload.NotBefore = jwt.NewNumericDate(now)
	payload.IssuedAt = jwt.NewNumericDate(now)
	payload.ID = uuid.NewString()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	return token.SignedString([]byte(m.secretKey))
}

// NewScope builds model.Scope from Payload.
func NewScope(payload Payload) model.Scope {
	return model.Scope{
		UserID:   payload.Subject,
		Username: payload.Username,
		Role:     payload.Role,
	}
}
