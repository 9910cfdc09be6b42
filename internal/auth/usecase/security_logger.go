package usecase

import (
	"context"
	"encoding/json"
	"time"

	"logistic-api/pkg/log"
)

type securityEventType string

const (
	securityEventLoginFailure      securityEventType = "login_failure"
	securityEventRateLimitExceeded securityEventType = "rate_limit_exceeded"
	securityEventLoginSuccess      securityEventType = "login_success"
)

type securityEvent struct {
	Type      securityEventType `json:"type"`
	Username  string            `json:"username"`
	UserID    string            `json:"user_id,omitempty"`
	Reason    string            `json:"reason,omitempty"`
	Failures  int               `json:"failures,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// securityLogger writes authentication events as single JSON log lines.
type securityLogger struct {
	l     log.Logger
	clock func() time.Time
}

func (sl securityLogger) log(ctx context.Context, event securityEvent) {
	event.Timestamp = sl.clock().UTC()
	b, err := json.Marshal(event)
	if err != nil {
		sl.l.Errorf(ctx, "internal.auth.usecase.securityLogger: %v", err)
		return
	}
	if event.Type == securityEventLoginSuccess {
		sl.l.Infof(ctx, "SECURITY_EVENT: %s", b)
		return
	}
	sl.l.Warnf(ctx, "SECURITY_EVENT: %s", b)
}

func (sl securityLogger) loginFailure(ctx context.Context, username, reason string, failures int) {
	sl.log(ctx, securityEvent{Type: securityEventLoginFailure, Username: username, Reason: reason, Failures: failures})
}

func (sl securityLogger) rateLimited(ctx context.Context, username string) {
	sl.log(ctx, securityEvent{Type: securityEventRateLimitExceeded, Username: username})
}

func (sl securityLogger) loginSuccess(ctx context.Context, username, userID string) {
	sl.log(ctx, securityEvent{Type: securityEventLoginSuccess, Username: username, UserID: userID})
}
