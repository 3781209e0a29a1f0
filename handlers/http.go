// Package handlers contains http handlers for mylogin.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"mylogin/helpers"
	"mylogin/interfaces"
	"mylogin/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

var errBodyNotObject = errors.New("request body is not a JSON object")

// HTTPServer implements ServerInterface.
type HTTPServer struct {
	store   interfaces.CredentialStore
	hasher  interfaces.PasswordHasher
	timeout time.Duration
	logger  log.Logger
}

// NewHTTPServer creates a new HTTPServer. timeout bounds the store work of one request.
func NewHTTPServer(store interfaces.CredentialStore, hasher interfaces.PasswordHasher, timeout time.Duration, logger log.Logger) *HTTPServer {
	if timeout <= 0 {
		panic("handlers: timeout must be positive")
	}
	return &HTTPServer{
		store:   helpers.NilPanic(store, "handlers: store is required"),
		hasher:  helpers.NilPanic(hasher, "handlers: hasher is required"),
		timeout: timeout,
		logger:  log.WithPrefix(helpers.NilPanic(logger, "handlers: logger is required"), "component", "HTTPServer"),
	}
}

// Login (POST /login) checks the credentials. Returns 200 {"success": bool} when the check completes,
// 400 on an unparseable JSON body, 500 when the store fails.
// Bodies that parse but do not carry string credentials are a no-match and never reach the store.
func (h *HTTPServer) Login(ectx echo.Context) error {
	req, err := readLoginRequest(ectx.Request())
	if errors.Is(err, errBodyNotObject) {
		return h.reject(ectx, "")
	}
	if err != nil {
		return err
	}
	username, password, ok := req.Credentials()
	if !ok {
		return h.reject(ectx, username)
	}

	ctx, cancel := context.WithTimeout(ectx.Request().Context(), h.timeout)
	defer cancel()

	session, err := h.store.Connect(ctx)
	if err != nil {
		return fmt.Errorf("login failed to connect to credential store, err: %w", err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			level.Warn(h.logger).Log("msg", "Failed to close credential store session", "err", err)
		}
	}()

	success, err := service.CheckCredential(ctx, session, h.hasher, username, password)
	if err != nil {
		return fmt.Errorf("login failed to check credential, err: %w", err)
	}

	level.Info(h.logger).Log("msg", "Credential checked", "username", username, "success", success)
	return ectx.JSON(http.StatusOK, LoginResponse{Success: success})
}

func (h *HTTPServer) reject(ectx echo.Context, username string) error {
	level.Info(h.logger).Log("msg", "Credential checked", "username", username, "success", false, "reason", "malformed credentials")
	return ectx.JSON(http.StatusOK, LoginResponse{Success: false})
}

// Credentials returns the string fields of the request. Absent fields are empty strings;
// ok is false when a field holds any other JSON type.
func (r LoginRequest) Credentials() (username, password string, ok bool) {
	username, usernameOK := optionalString(r.Username)
	password, passwordOK := optionalString(r.Password)
	return username, password, usernameOK && passwordOK
}

func optionalString(v interface{}) (string, bool) {
	if v == nil {
		return "", true
	}
	s, ok := v.(string)
	return s, ok
}

// readLoginRequest decodes a JSON body. Bodies of any other content type are ignored, as is an empty body.
func readLoginRequest(req *http.Request) (LoginRequest, error) {
	if !strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return LoginRequest{}, nil
	}

	var fields map[string]interface{}
	err := json.NewDecoder(req.Body).Decode(&fields)
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return LoginRequest{}, nil
	case errors.As(err, &typeErr):
		return LoginRequest{}, errBodyNotObject
	case err != nil:
		return LoginRequest{}, service.NewBadParameterError("invalid request body", err)
	}
	return LoginRequest{Username: fields["username"], Password: fields["password"]}, nil
}
