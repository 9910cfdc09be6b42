package scope

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Payload represents the JWT token claims. The user id travels as the
// registered "sub" claim.
type Payload struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role"`
}

// UserID returns the subject claim.
func (p Payload) UserID() string {
	return p.Subject
}

type implManager struct {
	secretKey string
	ttl       time.Duration
	clock     func() time.Time
}

// Context key types for payload and scope.
type (
	PayloadCtxKey struct{}
	ScopeCtxKey   struct{}
)
