package scenario

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"
)

const scenarioStaticFiles = "static_files"

func init() {
	Register(scenarioStaticFiles, runStaticFiles)
}

// runStaticFiles fetches the root document, one asset and a missing file.
func runStaticFiles(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client := NewClient(cfg.Addr)

	status, body, err := client.Get(ctx, "/")
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("GET /: status=%d, want %d", status, http.StatusOK)
	}
	if !bytes.Contains(body, []byte("<form")) {
		return fmt.Errorf("GET /: body does not contain the login form")
	}

	status, _, err = client.Get(ctx, "/login.js")
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("GET /login.js: status=%d, want %d", status, http.StatusOK)
	}

	status, _, err = client.Get(ctx, "/does-not-exist.css")
	if err != nil {
		return err
	}
	if status != http.StatusNotFound {
		return fmt.Errorf("GET /does-not-exist.css: status=%d, want %d", status, http.StatusNotFound)
	}

	return nil
}
