// Package docker drives the docker-compose environment used by the end-to-end scenarios.
package docker

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultComposeFile is the path to docker-compose.yml relative to cmd/integrationtests.
	DefaultComposeFile = "../../docker-compose.yml"
	// ContainerStartupTimeout is the maximum time to wait for containers to start.
	ContainerStartupTimeout = 90 * time.Second
	// PostStartupDelay is the delay after containers are ready before starting tests.
	PostStartupDelay = 2 * time.Second
	// StatusCheckInterval is the interval between status checks.
	StatusCheckInterval = 2 * time.Second
)

// SetupEnvironment recreates the compose environment (down, up -d) and waits until every
// long-running container is up and every one-shot container has exited with code 0.
func SetupEnvironment(composePath string) error {
	workDir, err := ComposeDir(composePath)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "=== Setting up docker-compose environment ===\n")
	fmt.Fprintf(os.Stderr, "Working directory: %s\n\n", workDir)

	if err := runComposeCommand(workDir, "down"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: docker-compose down failed (this is okay if nothing was running): %v\n", err)
	}

	if err := runComposeCommand(workDir, "up", "-d", "--build"); err != nil {
		return fmt.Errorf("docker-compose up failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "\nWaiting for containers to be ready...\n")
	if err := waitForContainersReady(workDir); err != nil {
		return fmt.Errorf("containers failed to start: %w", err)
	}

	time.Sleep(PostStartupDelay)
	fmt.Fprintf(os.Stderr, "=== Docker-compose environment ready ===\n\n")
	return nil
}

// ComposeDir resolves composePath and returns the directory holding it.
func ComposeDir(composePath string) (string, error) {
	if composePath == "" {
		composePath = DefaultComposeFile
	}
	absPath, err := filepath.Abs(composePath)
	if err != nil {
		return "", fmt.Errorf("resolve compose file path: %w", err)
	}
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return "", fmt.Errorf("docker-compose.yml not found at %s", absPath)
	}
	return filepath.Dir(absPath), nil
}

func runComposeCommand(workDir string, args ...string) error {
	cmd := exec.Command("docker-compose", args...)
	cmd.Dir = workDir
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// StopService stops a docker-compose service by name (e.g. "redis").
func StopService(workDir string, serviceName string) error {
	return runComposeCommand(workDir, "stop", serviceName)
}

// StartService starts a docker-compose service by name.
func StartService(workDir string, serviceName string) error {
	return runComposeCommand(workDir, "start", serviceName)
}

func waitForContainersReady(workDir string) error {
	ctx, cancel := context.WithTimeout(context.Background(), ContainerStartupTimeout)
	defer cancel()

	ticker := time.NewTicker(StatusCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for containers to start (waited %v)", ContainerStartupTimeout)
		case <-ticker.C:
			cmd := exec.Command("docker-compose", "ps", "--all", "--format", "json")
			cmd.Dir = workDir
			output, err := cmd.Output()
			if err != nil {
				return fmt.Errorf("docker-compose ps failed: %w", err)
			}
			status, err := parseContainersStatus(string(output))
			if err != nil {
				return fmt.Errorf("failed to check container status: %w", err)
			}
			if status.hasFailed {
				return fmt.Errorf("one or more containers failed to start: %s", status.failedContainers)
			}
			if status.allUp {
				return nil
			}
		}
	}
}

type containerStatus struct {
	allUp            bool
	hasFailed        bool
	failedContainers string
}

type containerInfo struct {
	Name     string `json:"Name"`
	State    string `json:"State"`
	Status   string `json:"Status"`
	ExitCode int    `json:"ExitCode"`
}

// parseContainersStatus reads `docker-compose ps --format json` output: either one JSON object
// per line or a single JSON array.
func parseContainersStatus(output string) (*containerStatus, error) {
	var containers []containerInfo
	trimmed := strings.TrimSpace(output)
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal([]byte(trimmed), &containers); err != nil {
			return nil, fmt.Errorf("parse docker-compose ps output: %w", err)
		}
	} else {
		scanner := bufio.NewScanner(strings.NewReader(trimmed))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			var container containerInfo
			if err := json.Unmarshal([]byte(line), &container); err != nil {
				continue
			}
			containers = append(containers, container)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("parse docker-compose ps output: %w", err)
		}
	}

	if len(containers) == 0 {
		return &containerStatus{}, nil
	}

	status := &containerStatus{allUp: true}
	var failedNames []string
	for _, container := range containers {
		state := strings.ToLower(container.State)
		switch {
		case state == "running":
		case state == "exited" && container.ExitCode == 0:
			// one-shot job such as the credential seed
		case state == "exited" || state == "dead" || strings.Contains(strings.ToLower(container.Status), "restarting"):
			status.allUp = false
			status.hasFailed = true
			failedNames = append(failedNames, container.Name)
		default:
			status.allUp = false
		}
	}
	status.failedContainers = strings.Join(failedNames, ", ")
	return status, nil
}
