package scope

import (
	"context"

	"logistic-api/internal/model"
)

// SetPayloadToContext attaches Payload to context.
func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, PayloadCtxKey{}, payload)
}

// GetPayloadFromContext returns Payload from context.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	payload, ok := ctx.Value(PayloadCtxKey{}).(Payload)
	return payload, ok
}

// SetScopeToContext attaches model.Scope to context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, ScopeCtxKey{}, sc)
}

// GetScopeFromContext returns the request scope, or the zero Scope.
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, ok := ctx.Value(ScopeCtxKey{}).(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}
