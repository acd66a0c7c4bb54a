package handler

import (
	"net/http"
	"resto/config"
	"resto/di"
	"resto/shared/logger"
	"sync"
)

var (
	app  *di.App
	once sync.Once
)

// Handler serves the application from a serverless function.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		app = di.InitializeService()
	})

	r.RequestURI = r.URL.String()

	app.HTTP.ServeHTTP(w, r)
}
