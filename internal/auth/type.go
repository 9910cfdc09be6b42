package auth

import "time"

type TokenInput struct {
	Username string
	Password string
}

type TokenOutput struct {
	AccessToken string
	TokenType   string
	ExpiresIn   time.Duration
}

// LimitConfig bounds failed logins per username.
type LimitConfig struct {
	MaxFailures int
	Window      time.Duration
}

// DefaultLimitConfig allows 5 failures per username per 15 minutes.
func DefaultLimitConfig() LimitConfig {
	return LimitConfig{
		MaxFailures: 5,
		Window:      15 * time.Minute,
	}
}
