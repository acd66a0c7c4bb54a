package di

import (
	"context"
	"resto/infras/kafka"
	"resto/infras/otel"
	"resto/infras/postgres"
	"resto/transport/http"

	goRedis "github.com/redis/go-redis/v9"
)

// App is the wired application plus the resources released on shutdown.
type App struct {
	HTTP  *http.HTTP
	DB    *postgres.Connection
	Redis *goRedis.Client
	Kafka kafka.Client
	Otel  otel.Otel
}

// Closers are released in order: the producer flushes before traces are exported.
func (a *App) Closers() []func(context.Context) error {
	return []func(context.Context) error{
		func(context.Context) error { return a.Kafka.Close() },
		func(context.Context) error { return a.Redis.Close() },
		func(context.Context) error { return a.DB.Close() },
		a.Otel.Shutdown,
	}
}
