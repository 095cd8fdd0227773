package main

import (
	"github.com/spf13/cobra"

	"github.com/clipstash/clipstash/internal/control"
)

func newToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Toggle the history view of a running clipstash",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := request(&control.Request{Op: control.OpToggle})
			return err
		},
	}
}
