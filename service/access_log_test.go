package service

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestAccessLog(t *testing.T) {
	tests := []struct {
		name       string
		handler    echo.HandlerFunc
		logLevel   level.Option
		wantStatus int
		wantLog    []string
	}{
		{
			name:       "ok request",
			handler:    func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			logLevel:   level.AllowDebug(),
			wantStatus: http.StatusOK,
			wantLog:    []string{"level=debug", "method=GET", "path=/ping", "status=200", "component=AccessLog"},
		},
		{
			name:       "error status comes from error handler",
			handler:    func(c echo.Context) error { return NewBadParameterError("invalid body", nil) },
			logLevel:   level.AllowDebug(),
			wantStatus: http.StatusBadRequest,
			wantLog:    []string{"method=GET", "path=/ping", "status=400"},
		},
		{
			name:       "filtered above debug",
			handler:    func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			logLevel:   level.AllowInfo(),
			wantStatus: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := level.NewFilter(log.NewLogfmtLogger(&buf), tt.logLevel)

			e := echo.New()
			RegisterErrorHandler(e, log.NewNopLogger())
			e.Use(AccessLog(logger))
			e.GET("/ping", tt.handler)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if len(tt.wantLog) == 0 {
				assert.NotContains(t, buf.String(), "HTTP request")
				return
			}
			for _, want := range tt.wantLog {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
