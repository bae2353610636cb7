package worker

import (
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vendorhub/config"
	"vendorhub/internal/delivery/worker/handler"
	"vendorhub/internal/infra/metrics"
	mockUsecase "vendorhub/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWorkerEcho(t *testing.T) {
	cfg := &config.Config{}
	cfg.Metrics.Enabled = true
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	auditLog := mockUsecase.NewMockAccountEventUsecase(t)

	e := NewEcho(ServerParams{
		Cfg:     cfg,
		Logger:  logger,
		Metrics: metrics.New(cfg),
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Config:   cfg,
			Logger:   logger,
			AuditLog: auditLog,
		}),
	})

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("push carries the header request id", func(t *testing.T) {
		auditLog.EXPECT().Record(mock.Anything, mock.Anything).Return(nil).Once()

		data := base64.StdEncoding.EncodeToString([]byte(`{"event_id":"e","type":"account.deleted"}`))
		req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`{"message":{"data":"`+data+`"}}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(echo.HeaderXRequestID, "req-42")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "req-42", rec.Header().Get(echo.HeaderXRequestID))
	})

	t.Run("metrics", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
