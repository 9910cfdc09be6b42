package usecase

import (
	"context"
	"strings"

	"logistic-api/internal/auth"
	"logistic-api/internal/model"
	"logistic-api/internal/user"
	"logistic-api/pkg/encrypter"
	"logistic-api/pkg/scope"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTypeBearer = "Bearer"

// Token exchanges an email and password for a signed access token.
func (uc *usecase) Token(ctx context.Context, ip auth.TokenInput) (auth.TokenOutput, error) {
	username := strings.TrimSpace(ip.Username)
	if !uc.limiter.Allow(username) {
		uc.security.rateLimited(ctx, username)
		return auth.TokenOutput{}, auth.ErrTooManyAttempts
	}

	usr, err := uc.userUC.GetOne(ctx, model.Scope{}, user.GetOneInput{Email: username})
	if err != nil {
		if err == user.ErrUserNotFound {
			uc.security.loginFailure(ctx, username, "unknown user", uc.limiter.Fail(username))
			return auth.TokenOutput{}, auth.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "internal.auth.usecase.Token.GetOne: %v", err)
		return auth.TokenOutput{}, err
	}

	if !encrypter.CheckPasswordHash(ip.Password, usr.Password) {
		uc.security.loginFailure(ctx, username, "wrong password", uc.limiter.Fail(username))
		return auth.TokenOutput{}, auth.ErrInvalidCredentials
	}
	if usr.Status != model.UserStatusActive {
		uc.security.loginFailure(ctx, username, "status "+usr.Status, 0)
		return auth.TokenOutput{}, auth.ErrInactiveUser
	}

	token, err := uc.jwtMgr.CreateToken(scope.Payload{
		RegisteredClaims: jwt.RegisteredClaims{Subject: usr.ID},
		Username:         usr.Email,
		Role:             usr.Role,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Token.CreateToken: %v", err)
		return auth.TokenOutput{}, err
	}

	uc.limiter.Reset(username)
	uc.security.loginSuccess(ctx, username, usr.ID)

	return auth.TokenOutput{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   uc.ttl,
	}, nil
}
