package scenario

import (
	"fmt"
	"strings"
)

// UnknownScenarioError reports a scenario name missing from the registry, with the names that exist.
type UnknownScenarioError struct {
	Name      string
	Available []string
}

func (e *UnknownScenarioError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("unknown scenario %q: none registered", e.Name)
	}
	return fmt.Sprintf("unknown scenario %q (available: %s)", e.Name, strings.Join(e.Available, ", "))
}
