package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"ghprofile/internal/config"
	"ghprofile/internal/github"
	"ghprofile/internal/logging"
	"ghprofile/internal/lookup"
	"ghprofile/internal/notify"
	"ghprofile/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI; logs go to LOG_FILE or nowhere.
	var logOut io.Writer = io.Discard
	if path := os.Getenv("LOG_FILE"); path != "" {
		f, err := tea.LogToFile(path, "")
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := logging.New(logOut, cfg.LogLevel, cfg.LogFormat, false)

	client := github.NewClient(github.Config{
		BaseURL:    cfg.GitHubAPIURL,
		APIVersion: cfg.GitHubAPIVersion,
		UserAgent:  cfg.UserAgent,
	}, &http.Client{Timeout: cfg.HTTPTimeout})

	notes := notify.NewChannel(16)
	opts := []lookup.Option{
		lookup.WithMessages(cfg.Messages),
		lookup.WithLogger(logger),
	}
	if cfg.SequencedLookups {
		opts = append(opts, lookup.WithSequencing())
	}
	ctrl := lookup.NewController(client, notes, opts...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if _, err := tea.NewProgram(tui.New(ctx, ctrl, notes, cfg)).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tui error: %v\n", err)
		os.Exit(1)
	}
}
