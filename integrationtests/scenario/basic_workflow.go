package scenario

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const scenarioBasicWorkflow = "basic_workflow"

func init() {
	Register(scenarioBasicWorkflow, runBasicWorkflow)
}

// runBasicWorkflow logs in with the seeded credentials, then with a wrong password, then as an
// unknown user, and expects true, false, false.
func runBasicWorkflow(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client := NewClient(cfg.Addr)

	result, err := client.Login(ctx, cfg.Username, cfg.Password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := ExpectLogin(result, http.StatusOK, true); err != nil {
		return fmt.Errorf("login with valid credentials: %w", err)
	}

	result, err = client.Login(ctx, cfg.Username, cfg.Password+"-wrong")
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := ExpectLogin(result, http.StatusOK, false); err != nil {
		return fmt.Errorf("login with wrong password: %w", err)
	}

	result, err = client.Login(ctx, "unknown-"+time.Now().Format("20060102150405"), cfg.Password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := ExpectLogin(result, http.StatusOK, false); err != nil {
		return fmt.Errorf("login with unknown user: %w", err)
	}

	return nil
}
