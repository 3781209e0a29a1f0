package scenario

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"
)

const (
	scenarioConcurrentLogins = "concurrent_logins"
	concurrentLoginWorkers   = 20
)

func init() {
	Register(scenarioConcurrentLogins, runConcurrentLogins)
}

// runConcurrentLogins fires valid and invalid logins in parallel; every request gets its own
// store connection, so the answers must not mix.
func runConcurrentLogins(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	client := NewClient(cfg.Addr)

	var wg sync.WaitGroup
	errs := make([]error, concurrentLoginWorkers)
	for i := 0; i < concurrentLoginWorkers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			password, want := cfg.Password, true
			if i%2 == 1 {
				password, want = cfg.Password+"-wrong", false
			}
			result, err := client.Login(ctx, cfg.Username, password)
			if err != nil {
				errs[i] = fmt.Errorf("worker %d: %w", i, err)
				return
			}
			if err := ExpectLogin(result, http.StatusOK, want); err != nil {
				errs[i] = fmt.Errorf("worker %d: %w", i, err)
			}
		}(i)
	}
	wg.Wait()

	return errors.Join(errs...)
}
