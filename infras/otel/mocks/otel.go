package mocks

import (
	"context"
	"resto/infras/otel"
)

// noopOtel hands out scopes that record nothing, for unit tests.
type noopOtel struct{}

func NewOtel() otel.Otel {
	return &noopOtel{}
}

func (o *noopOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

func (o *noopOtel) Shutdown(_ context.Context) error {
	return nil
}
