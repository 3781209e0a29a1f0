// Command loginctl manages credential records in the mylogin store.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"mylogin/adapters"
	"mylogin/domain"
	"mylogin/interfaces"
	"mylogin/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/crypto/bcrypt"
)

// Defaults match the mylogin service.
const (
	defaultStoreURI   = "redis://localhost:6379/0"
	defaultDatabase   = "login"
	defaultCollection = "credential"
	commandTimeout    = 30 * time.Second
)

// Exit codes.
const (
	exitOK       = 0
	exitMismatch = 1
	exitError    = 2
)

const usage = `usage: loginctl <command> [flags]

commands:
  put     -username U -password P [-cost N]   create or replace a credential
  delete  -username U                         remove a credential
  check   -username U -password P             exit 0 on match, 1 on mismatch

store flags (all commands): -store-uri, -database, -collection
  (default: STORE_URI, STORE_DATABASE, STORE_COLLECTION env, then service defaults)
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	storeURI   string
	database   string
	collection string
	username   string
	password   string
	cost       int
}

func parseFlags(command string, args []string, stderr io.Writer) (*options, error) {
	opts := &options{cost: bcrypt.DefaultCost}
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.storeURI, "store-uri", "", "credential store URI (default: STORE_URI env or "+defaultStoreURI+")")
	fs.StringVar(&opts.database, "database", "", "database name (default: STORE_DATABASE env or "+defaultDatabase+")")
	fs.StringVar(&opts.collection, "collection", "", "collection name (default: STORE_COLLECTION env or "+defaultCollection+")")
	fs.StringVar(&opts.username, "username", "", "username")
	if command != "delete" {
		fs.StringVar(&opts.password, "password", "", "password")
	}
	if command == "put" {
		fs.IntVar(&opts.cost, "cost", bcrypt.DefaultCost, "bcrypt cost")
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts.storeURI = firstNonEmpty(opts.storeURI, os.Getenv("STORE_URI"), defaultStoreURI)
	opts.database = firstNonEmpty(opts.database, os.Getenv("STORE_DATABASE"), defaultDatabase)
	opts.collection = firstNonEmpty(opts.collection, os.Getenv("STORE_COLLECTION"), defaultCollection)

	if opts.username == "" {
		return nil, errors.New("-username is required")
	}
	if command == "put" && opts.password == "" {
		return nil, errors.New("-password is required")
	}
	return opts, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)

	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitError
	}
	command := args[0]
	switch command {
	case "put", "delete", "check":
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return exitOK
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", command, usage)
		return exitError
	}

	opts, err := parseFlags(command, args[1:], stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return exitError
	}
	logger = log.With(logger, "command", command, "username", opts.username)

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	store, err := adapters.NewCredentialStore(ctx, adapters.StoreConfig{
		URI:        opts.storeURI,
		Database:   opts.database,
		Collection: opts.collection,
	})
	if err != nil {
		level.Error(logger).Log("msg", "Failed to create credential store", "err", err)
		return exitError
	}
	defer store.Close()

	hasher, err := service.NewBcryptHasher(opts.cost)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to create password hasher", "err", err)
		return exitError
	}

	session, err := store.Connect(ctx)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to connect to credential store", "err", err)
		return exitError
	}
	defer session.Close()

	switch command {
	case "put":
		err = put(ctx, session, hasher, opts)
	case "delete":
		err = session.DeleteCredential(ctx, opts.username)
	case "check":
		var ok bool
		if ok, err = service.CheckCredential(ctx, session, hasher, opts.username, opts.password); err == nil {
			if !ok {
				fmt.Fprintln(stdout, "mismatch")
				return exitMismatch
			}
			fmt.Fprintln(stdout, "match")
			return exitOK
		}
	}
	if err != nil {
		if service.IsEntityNotFoundError(err) {
			level.Error(logger).Log("msg", "Credential not found")
			return exitMismatch
		}
		level.Error(logger).Log("msg", "Command failed", "err", err)
		return exitError
	}

	level.Info(logger).Log("msg", "Done")
	return exitOK
}

func put(ctx context.Context, session interfaces.CredentialSession, hasher interfaces.PasswordHasher, opts *options) error {
	hash, err := hasher.Hash(opts.password)
	if err != nil {
		return err
	}
	return session.SaveCredential(ctx, domain.Credential{Username: opts.username, PasswordHash: hash})
}
