package health_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"resto/internal/handlers/health"
)

func TestHealth(t *testing.T) {
	tests := []struct {
		name     string
		state    health.ServerState
		wantCode int
		wantBody string
	}{
		{name: "ready", state: health.ServerStateReady, wantCode: http.StatusOK, wantBody: `{"message":"OK"}`},
		{name: "grace period", state: health.ServerStateInGracePeriod, wantCode: http.StatusServiceUnavailable, wantBody: `{"message":"SERVER PREPARING TO SHUT DOWN"}`},
		{name: "cleanup period", state: health.ServerStateInCleanupPeriod, wantCode: http.StatusServiceUnavailable, wantBody: `{"message":"SERVER PREPARING TO SHUT DOWN"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := health.NewState()
			state.Set(tt.state)

			handler := health.New(state)
			router := chi.NewRouter()
			handler.Router(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
