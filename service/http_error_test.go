package service

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrorCodeToStatusCodeMaps(t *testing.T) {
	m := NewErrorCodeToStatusCodeMaps()
	require.NotNil(t, m)
	assert.Equal(t, http.StatusBadRequest, m[ErrBadParameter])
	assert.Equal(t, http.StatusNotFound, m[ErrEntityNotFound])
	assert.Equal(t, http.StatusInternalServerError, m[ErrInternalServerError])
}

func TestHTTPErrorHandler_Handler(t *testing.T) {
	requestErrorHTTP := echo.NewHTTPError(http.StatusBadRequest, "request body has an error")
	requestErrorHTTP.Internal = &openapi3filter.RequestError{Err: assert.AnError}

	tests := []struct {
		name       string
		method     string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "bad parameter",
			method:     http.MethodPost,
			err:        NewBadParameterError("invalid body", nil),
			wantStatus: http.StatusBadRequest,
			wantError:  "Bad Request",
		},
		{
			name:       "bad parameter wrapping echo error",
			method:     http.MethodPost,
			err:        NewBadParameterError("invalid body", echo.ErrUnsupportedMediaType),
			wantStatus: http.StatusBadRequest,
			wantError:  "Bad Request",
		},
		{
			name:       "internal server error",
			method:     http.MethodPost,
			err:        NewInternalServerError("redis down", assert.AnError),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal Server Error",
		},
		{
			name:       "plain error is internal",
			method:     http.MethodPost,
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal Server Error",
		},
		{
			name:       "echo not found",
			method:     http.MethodGet,
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantError:  "Not Found",
		},
		{
			name:       "openapi request error",
			method:     http.MethodPost,
			err:        requestErrorHTTP,
			wantStatus: http.StatusBadRequest,
			wantError:  "Bad Request",
		},
		{
			name:       "method not allowed",
			method:     http.MethodPut,
			err:        echo.ErrMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantError:  "Method Not Allowed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(tt.method, "/login", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), log.NewNopLogger())
			handler.Handler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body ErrResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantError, body.Error)
		})
	}
}

func TestHTTPErrorHandler_Handler_Head(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodHead, "/missing.css", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), log.NewNopLogger()).Handler(echo.ErrNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestHTTPErrorHandler_Handler_Committed(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, c.JSON(http.StatusOK, map[string]bool{"success": true}))

	NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), log.NewNopLogger()).Handler(assert.AnError, c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestRegisterErrorHandler(t *testing.T) {
	e := echo.New()
	RegisterErrorHandler(e, log.NewNopLogger())
	require.NotNil(t, e.HTTPErrorHandler)
}
