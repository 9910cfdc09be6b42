package scope

import "time"

// Manager issues and verifies access tokens.
// Implementations are safe for concurrent use.
type Manager interface {
	Verify(token string) (Payload, error)
	CreateToken(payload Payload) (string, error)
}

// New creates a new scope Manager signing with secretKey.
// Panics if secretKey is empty.
func New(secretKey string, ttl time.Duration) Manager {
	if secretKey == "" {
		panic("scope: secret key cannot be empty")
	}
	if ttl <= 0 {
		ttl = TokenExpirationDuration
	}
	return &implManager{secretKey: secretKey, ttl: ttl, clock: time.Now}
}
