package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nutriledger/config"
	"nutriledger/internal/delivery/worker/handler"
	"nutriledger/internal/infra/metrics"
	mockUsecase "nutriledger/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
)

func newTestEcho(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{PubSub: &config.PubSubConfig{}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := metrics.NewRegistry()
	metrics.NewLedgerMetrics(reg)

	return newEcho(ServerParams{
		Cfg:    cfg,
		Logger: logger,
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Config:     cfg,
			Logger:     logger,
			AnalysisUC: mockUsecase.NewMockAnalysisUsecase(t),
		}),
		Registry: reg,
	})
}

func TestWorkerRoutes(t *testing.T) {
	e := newTestEcho(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{name: "health", method: http.MethodGet, path: "/health", wantStatus: http.StatusOK, wantBody: `"status":"ok"`},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK, wantBody: "go_goroutines"},
		{name: "push rejects garbage", method: http.MethodPost, path: "/push", body: "{", wantStatus: http.StatusBadRequest},
		{name: "unknown route", method: http.MethodGet, path: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
			assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
		})
	}
}
