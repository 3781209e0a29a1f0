package docker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContainersStatus(t *testing.T) {
	tests := []struct {
		name       string
		output     string
		wantUp     bool
		wantFailed string
	}{
		{
			name: "all running, seed finished",
			output: `{"Name":"mylogin-redis-1","State":"running","Status":"Up 3 seconds","ExitCode":0}
{"Name":"mylogin-seed-1","State":"exited","Status":"Exited (0) 1 second ago","ExitCode":0}
{"Name":"mylogin-mylogin-1","State":"running","Status":"Up 2 seconds","ExitCode":0}`,
			wantUp: true,
		},
		{
			name:   "json array output",
			output: `[{"Name":"mylogin-redis-1","State":"running","Status":"Up","ExitCode":0},{"Name":"mylogin-mylogin-1","State":"running","Status":"Up","ExitCode":0}]`,
			wantUp: true,
		},
		{
			name: "still starting",
			output: `{"Name":"mylogin-redis-1","State":"running","Status":"Up","ExitCode":0}
{"Name":"mylogin-mylogin-1","State":"created","Status":"Created","ExitCode":0}`,
			wantUp: false,
		},
		{
			name: "seed failed",
			output: `{"Name":"mylogin-redis-1","State":"running","Status":"Up","ExitCode":0}
{"Name":"mylogin-seed-1","State":"exited","Status":"Exited (2) 1 second ago","ExitCode":2}`,
			wantUp:     false,
			wantFailed: "mylogin-seed-1",
		},
		{
			name:   "no containers yet",
			output: "",
			wantUp: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := parseContainersStatus(tt.output)
			require.NoError(t, err)
			assert.Equal(t, tt.wantUp, status.allUp)
			assert.Equal(t, tt.wantFailed != "", status.hasFailed)
			assert.Equal(t, tt.wantFailed, status.failedContainers)
		})
	}
}

func TestComposeDir(t *testing.T) {
	dir := t.TempDir()
	composePath := filepath.Join(dir, "docker-compose.yml")
	require.NoError(t, os.WriteFile(composePath, []byte("services: {}\n"), 0o644))

	got, err := ComposeDir(composePath)
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	_, err = ComposeDir(filepath.Join(dir, "missing.yml"))
	require.Error(t, err)
}
