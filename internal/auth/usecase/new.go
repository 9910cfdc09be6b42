package usecase

import (
	"time"

	"logistic-api/internal/auth"
	"logistic-api/internal/user"
	pkgLog "logistic-api/pkg/log"
	"logistic-api/pkg/scope"
)

type usecase struct {
	l        pkgLog.Logger
	userUC   user.UseCase
	jwtMgr   scope.Manager
	ttl      time.Duration
	limiter  *attemptLimiter
	security securityLogger
}

func New(l pkgLog.Logger, userUC user.UseCase, jwtMgr scope.Manager, ttl time.Duration, limit auth.LimitConfig) auth.UseCase {
	return &usecase{
		l:        l,
		userUC:   userUC,
		jwtMgr:   jwtMgr,
		ttl:      ttl,
		limiter:  newAttemptLimiter(limit, time.Now),
		security: securityLogger{l: l, clock: time.Now},
	}
}
