package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"mylogin/integrationtests/docker"
	"mylogin/integrationtests/scenario"
)

const defaultAddr = "http://localhost:3000"

// Credentials seeded by the docker-compose seed job.
const (
	defaultTestUsername = "TestUser"
	defaultTestPassword = "TestPassword"
)

func main() {
	list := flag.Bool("list", false, "list available scenarios and exit")
	scenarioName := flag.String("scenario", "", "scenario to run (or pass as positional arg)")
	addr := flag.String("addr", "", "mylogin base URL (default: MYLOGIN_ADDR env or "+defaultAddr+")")
	username := flag.String("username", "", "username for Login (default: TEST_USERNAME env or seeded test user)")
	password := flag.String("password", "", "password for Login (default: TEST_PASSWORD env or seeded test user)")
	composeFile := flag.String("compose-file", "", "path to docker-compose.yml (default: COMPOSE_FILE env or "+docker.DefaultComposeFile+")")
	skipSetup := flag.Bool("skip-setup", false, "run against an already running environment")
	flag.Parse()

	if *list {
		for _, name := range scenario.Names() {
			fmt.Println(name)
		}
		os.Exit(0)
	}

	name := *scenarioName
	if name == "" && flag.NArg() > 0 {
		name = flag.Arg(0)
	}
	if name == "" {
		fmt.Fprintln(os.Stderr, "usage: integrationtests [--list] [--scenario=NAME] [--addr=URL] [--username=U] [--password=P] [--compose-file=PATH] [--skip-setup] [scenario_name]")
		fmt.Fprintln(os.Stderr, "  use --list to list scenarios")
		os.Exit(2)
	}

	composePath := firstNonEmpty(*composeFile, os.Getenv("COMPOSE_FILE"), docker.DefaultComposeFile)
	if !*skipSetup {
		if err := docker.SetupEnvironment(composePath); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to setup docker-compose environment: %v\n", err)
			os.Exit(1)
		}
	}

	cfg := &scenario.Config{
		Addr:        firstNonEmpty(*addr, os.Getenv("MYLOGIN_ADDR"), defaultAddr),
		Username:    firstNonEmpty(*username, os.Getenv("TEST_USERNAME"), defaultTestUsername),
		Password:    firstNonEmpty(*password, os.Getenv("TEST_PASSWORD"), defaultTestPassword),
		ComposePath: composePath,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	err := scenario.Run(ctx, name, cfg)

	fmt.Println("\n=== Scenario Result ===")
	fmt.Printf("Scenario: %s\n", name)

	if err != nil {
		fmt.Printf("Status: FAILED\n")
		fmt.Printf("Error: %v\n", err)
		fmt.Println("=====================")
		var unknown *scenario.UnknownScenarioError
		if errors.As(err, &unknown) {
			fmt.Fprintf(os.Stderr, "\navailable scenarios: %s\n", strings.Join(unknown.Available, ", "))
			os.Exit(2)
		}
		os.Exit(1)
	}

	fmt.Printf("Status: PASSED\n")
	fmt.Println("=====================")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
