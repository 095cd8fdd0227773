// clipstash: clipboard history manager.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clipstash/clipstash/internal/logging"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "clipstash",
		Short: "Clipboard history manager",
		Long: `clipstash watches the system clipboard and keeps a bounded history of
everything you copy, persisted across restarts. A global hotkey
(ctrl+shift+v, cmd+shift+v on macOS) toggles the history view; selecting an
entry puts it back on the clipboard and pastes it into the focused window.

Run "clipstash run" to start the manager. While it is running, the
list/select/toggle/status sub-commands control it over a local socket.

Config file search order (first found wins):
  /etc/clipstash/clipstash.toml
  $HOME/.config/clipstash/clipstash.toml
  path supplied via --config

All flags can be set via CLIPSTASH_<FLAG> env vars or config-file keys.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newRunCmd(),
		newListCmd(),
		newSelectCmd(),
		newToggleCmd(),
		newStatusCmd(),
		newAutostartCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("clipstash %s\n", Version)
		},
	}
}

// resolveLogging sets up the global slog logger after flags are parsed.
func resolveLogging(interactive bool, formatStr, levelStr string) {
	format := logging.ParseFormat(formatStr)
	level := logging.ParseLevel(levelStr)
	if levelStr == "" {
		if interactive {
			level = logging.ParseLevel("debug")
		} else {
			level = logging.ParseLevel("info")
		}
	}
	logging.Setup(format, level)
}
