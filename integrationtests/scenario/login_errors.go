package scenario

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const scenarioLoginErrors = "login_errors"

func init() {
	Register(scenarioLoginErrors, runLoginErrors)
}

// runLoginErrors sends unparseable JSON and expects 400 {"success":false,"error":"Bad Request"},
// then bodies that parse but carry no string credentials and expects a plain no-match.
func runLoginErrors(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client := NewClient(cfg.Addr)

	credentials, err := json.Marshal(map[string]string{"username": cfg.Username, "password": cfg.Password})
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}

	requests := []struct {
		name        string
		contentType string
		body        string
		wantStatus  int
	}{
		{name: "invalid JSON", contentType: "application/json", body: `{"username":`, wantStatus: http.StatusBadRequest},
		{name: "wrong field type", contentType: "application/json", body: `{"username":42,"password":"x"}`, wantStatus: http.StatusOK},
		{name: "form body", contentType: "application/x-www-form-urlencoded", body: "username=a&password=b", wantStatus: http.StatusOK},
		{name: "no content type", body: string(credentials), wantStatus: http.StatusOK},
		{name: "empty object", contentType: "application/json", body: `{}`, wantStatus: http.StatusOK},
	}
	for _, r := range requests {
		result, err := client.PostLogin(ctx, r.contentType, []byte(r.body))
		if err != nil {
			return fmt.Errorf("%s: %w", r.name, err)
		}
		if err := ExpectLogin(result, r.wantStatus, false); err != nil {
			return fmt.Errorf("%s: %w", r.name, err)
		}
	}

	return nil
}
