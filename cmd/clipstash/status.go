package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clipstash/clipstash/internal/control"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show status of a running clipstash",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			resp, err := request(&control.Request{Op: control.OpStatus})
			if err != nil {
				return err
			}
			fmt.Printf("clipstash %s\n", resp.Version)
			fmt.Printf("history entries: %d\n", resp.History)
			fmt.Printf("pending events:  %d\n", resp.Pending)
			return nil
		},
	}
}
