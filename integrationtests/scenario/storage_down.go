package scenario

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"mylogin/integrationtests/docker"
)

const (
	scenarioStorageDown = "storage_down"
	storeServiceName    = "redis"
)

func init() {
	Register(scenarioStorageDown, runStorageDown)
}

// runStorageDown stops the store, expects 500 {"success":false,"error":"Internal Server Error"},
// starts it again and expects logins to recover without restarting mylogin.
func runStorageDown(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 90*time.Second)
	defer cancel()

	if cfg.ComposePath == "" {
		return fmt.Errorf("compose path is required for this scenario (set --compose-file or COMPOSE_FILE)")
	}
	workDir, err := docker.ComposeDir(cfg.ComposePath)
	if err != nil {
		return err
	}

	client := NewClient(cfg.Addr)

	if err := docker.StopService(workDir, storeServiceName); err != nil {
		return fmt.Errorf("stop %s: %w", storeServiceName, err)
	}
	started := false
	defer func() {
		if !started {
			_ = docker.StartService(workDir, storeServiceName)
		}
	}()

	result, err := client.Login(ctx, cfg.Username, cfg.Password)
	if err != nil {
		return fmt.Errorf("login while store is down: %w", err)
	}
	if err := ExpectLogin(result, http.StatusInternalServerError, false); err != nil {
		return fmt.Errorf("login while store is down: %w", err)
	}

	if err := docker.StartService(workDir, storeServiceName); err != nil {
		return fmt.Errorf("start %s: %w", storeServiceName, err)
	}
	started = true

	return waitForLogin(ctx, client, cfg)
}

func waitForLogin(ctx context.Context, client *Client, cfg *Config) error {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	var lastErr error
	for {
		result, err := client.Login(ctx, cfg.Username, cfg.Password)
		if err == nil {
			if lastErr = ExpectLogin(result, http.StatusOK, true); lastErr == nil {
				return nil
			}
		} else {
			lastErr = err
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("login did not recover after store restart: %w", lastErr)
		case <-ticker.C:
		}
	}
}
