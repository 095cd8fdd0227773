package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clipstash/clipstash/internal/autostart"
)

func newAutostartCmd() *cobra.Command {
	var uninstall bool

	cmd := &cobra.Command{
		Use:   "autostart",
		Short: "Register clipstash to start with your session",
		Long: `Performs one-time autostart registration with the OS (launchd on macOS,
systemd on Linux, the service manager on Windows) and exits. Use --uninstall
to remove the registration.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if uninstall {
				if err := autostart.Uninstall(); err != nil {
					return fmt.Errorf("autostart removal failed: %w", err)
				}
				fmt.Println("clipstash autostart removed")
				return nil
			}
			if err := autostart.Install(); err != nil {
				return fmt.Errorf("autostart registration failed: %w", err)
			}
			fmt.Println("clipstash will now start automatically when you log in")
			return nil
		},
	}

	cmd.Flags().BoolVar(&uninstall, "uninstall", false, "remove the autostart registration")
	return cmd
}
