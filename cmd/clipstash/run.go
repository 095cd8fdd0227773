package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/clipstash/clipstash/internal/clip"
	"github.com/clipstash/clipstash/internal/control"
	"github.com/clipstash/clipstash/internal/core"
	"github.com/clipstash/clipstash/internal/event"
	"github.com/clipstash/clipstash/internal/history"
	"github.com/clipstash/clipstash/internal/hotkey"
	"github.com/clipstash/clipstash/internal/ipc"
	"github.com/clipstash/clipstash/internal/logging"
	"github.com/clipstash/clipstash/internal/paste"
	"github.com/clipstash/clipstash/internal/storage"
	"github.com/clipstash/clipstash/internal/tui"
	"github.com/clipstash/clipstash/internal/watcher"
)

func newRunCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the clipboard history manager",
		Long: `Starts the clipboard watcher, the global hotkey listener, and the
history view, and keeps running until interrupted.

With --no-tui the terminal view is disabled and the manager runs as a plain
background process; the list/select/toggle sub-commands remain available
over the control socket.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runRun(v) },
	}

	f := cmd.Flags()
	f.Int("history-size", history.DefaultMax, "maximum number of history entries")
	f.Duration("poll-interval", watcher.DefaultInterval, "clipboard poll interval")
	f.String("data-dir", "", "history storage directory (default: platform data dir)")
	f.Bool("no-tui", false, "disable the terminal history view")
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runRun(v *viper.Viper) error {
	noTUI := v.GetBool("no-tui")

	dataDir := v.GetString("data-dir")
	if dataDir == "" {
		var err error
		dataDir, err = storage.DefaultDir()
		if err != nil {
			return err
		}
	}

	store, err := storage.New(dataDir)
	if err != nil {
		return err
	}

	// With the TUI on, the terminal belongs to the history view; logs go
	// to a file in the data dir instead of stderr.
	if noTUI {
		resolveLogging(logging.IsTTY(os.Stderr), v.GetString("log-format"), v.GetString("log-level"))
	} else {
		logPath := filepath.Join(dataDir, "clipstash.log")
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer logFile.Close()
		logging.SetupWriter(logFile, logging.FormatJSON, logging.ParseLevel(v.GetString("log-level")))
	}

	slog.Info("clipstash starting",
		"version", Version,
		"data_dir", dataDir,
		"history_size", v.GetInt("history-size"),
		"poll_interval", v.GetDuration("poll-interval"),
	)

	clipboard, err := clip.NewSystem()
	if err != nil {
		return fmt.Errorf("clipboard is a startup requirement: %w", err)
	}

	hist := history.New(store.Load(), v.GetInt("history-size"), store)
	slog.Info("history loaded", "entries", hist.Len(), "path", store.Path())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	bus := event.NewBus()

	w := watcher.New(clipboard, bus, v.GetDuration("poll-interval"))
	if initial, err := clipboard.ReadText(); err == nil {
		// Whatever is on the clipboard at startup is not a change.
		w.Prime(initial)
	}

	c := core.New(bus, hist, clipboard, paste.Robotgo{}, w)
	hk := hotkey.New(bus)

	go w.Run(ctx)
	go hk.Run(ctx)
	go func() {
		_ = c.Run(ctx)
	}()

	if ln, err := ipc.Listen(); err != nil {
		slog.Warn("control socket unavailable", "err", err)
	} else {
		slog.Info("control socket listening", "path", ipc.SocketPath())
		go control.NewServer(bus, c.State(), Version).Serve(ctx, ln)
	}

	if noTUI {
		<-ctx.Done()
		slog.Info("clipstash stopping")
		// Give the core a beat to drain the event it may be applying.
		time.Sleep(50 * time.Millisecond)
		return nil
	}

	err = tui.Run(ctx, bus, c.State())
	cancel()
	slog.Info("clipstash stopping")
	return err
}
