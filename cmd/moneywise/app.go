package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/moneywise/client-go/internal/api"
	"github.com/moneywise/client-go/internal/config"
	"github.com/moneywise/client-go/internal/logging"
	"github.com/moneywise/client-go/internal/service"
	"github.com/moneywise/client-go/internal/session"
)

// app wires the shared dependencies for one CLI invocation.
type app struct {
	cfg     *config.Config
	store   *session.Store
	client  *api.Client
	auth    *session.Manager
	tracker *service.Tracker
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := logging.Setup(cfg.LogLevel)

	storage, err := session.OpenSQLite(cfg.StatePath)
	if err != nil {
		return nil, fmt.Errorf("open session storage: %w", err)
	}
	store := session.NewStore(storage)

	client := api.New(cfg.APIBaseURL, store,
		api.WithLogger(logger),
		api.WithUnauthorizedHook(store.Invalidate),
	)

	return &app{
		cfg:     cfg,
		store:   store,
		client:  client,
		auth:    session.NewManager(client, store),
		tracker: service.NewTracker(client),
	}, nil
}

func (a *app) Close() {
	_ = a.store.Close()
}

// readPassword prompts on the terminal without echo, falling back to a
// plain line read for pipes and tests.
func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	if term.IsTerminal(int(os.Stdin.Fd())) {
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text()), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
