package auth

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Token(ctx context.Context, ip TokenInput) (TokenOutput, error)
}
