// Package scenario holds the end-to-end scenarios run against a live mylogin environment.
package scenario

import (
	"context"
	"fmt"
	"sort"
)

// Runner runs one scenario. Each runner builds its own Client from cfg.
type Runner func(ctx context.Context, cfg *Config) error

var runners = map[string]Runner{}

// Register binds a runner to name from a scenario file's init. Registering a name twice
// or a nil runner is a programming error and panics.
func Register(name string, fn Runner) {
	if fn == nil {
		panic("scenario: nil runner for " + name)
	}
	if _, dup := runners[name]; dup {
		panic("scenario: duplicate registration of " + name)
	}
	runners[name] = fn
}

// Names lists the registered scenarios in lexical order.
func Names() []string {
	names := make([]string, 0, len(runners))
	for name := range runners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run looks up name and runs it. Failures are prefixed with the scenario name.
func Run(ctx context.Context, name string, cfg *Config) error {
	fn, ok := runners[name]
	if !ok {
		return &UnknownScenarioError{Name: name, Available: Names()}
	}
	if err := fn(ctx, cfg); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
