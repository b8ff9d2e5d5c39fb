// Command mealctl records employees, deposits and daily meals and prints balances.
//
// It works against the record service at REMOTE_URL and falls back to JSON files in
// LOCAL_DATA_DIR when the service cannot be reached.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mmynk/mealwiser/internal/config"
	"github.com/mmynk/mealwiser/internal/ledger"
	"github.com/mmynk/mealwiser/internal/storage"
	"github.com/mmynk/mealwiser/internal/storage/local"
	"github.com/mmynk/mealwiser/internal/storage/remote"
	"github.com/mmynk/mealwiser/pkg/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg := config.Load()
	// CLI output goes to stdout; keep the log quiet unless asked otherwise.
	if os.Getenv("LOG_LEVEL") == "" {
		cfg.LogLevel = "warn"
	}
	logging.Configure(cfg.LogLevel, cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	localStore, err := local.New(cfg.LocalDataDir)
	if err != nil {
		fmt.Fprintf(stderr, "Cannot open local storage: %v\n", err)
		return 1
	}

	var remoteStore storage.Store
	if cfg.RemoteURL != "" {
		remoteStore = remote.New(cfg.RemoteURL, cfg.RemoteTimeout)
	}

	adapter := storage.NewAdapter(remoteStore, localStore)
	defer adapter.Close()

	return execute(ctx, adapter, args, stdout, stderr)
}

// execute loads the ledger through adapter and runs one command.
func execute(ctx context.Context, adapter *storage.Adapter, args []string, stdout, stderr io.Writer) int {
	snap, err := adapter.Load(ctx)
	if err != nil {
		fmt.Fprintln(stderr, ledger.Advice(err))
		return 1
	}
	if w := adapter.Warning(); w != "" {
		fmt.Fprintf(stderr, "warning: %s\n", w)
	}

	a := &app{
		engine: ledger.NewEngine(adapter),
		ledger: ledger.New(snap),
		out:    stdout,
	}

	if err := a.dispatch(ctx, args); err != nil {
		var usage *usageError
		if errors.As(err, &usage) {
			fmt.Fprintln(stderr, usage.Error())
			return 2
		}
		fmt.Fprintln(stderr, ledger.Advice(err))
		return 1
	}
	return 0
}
