package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/clipstash/clipstash/internal/control"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the clipboard history of a running clipstash",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			resp, err := request(&control.Request{Op: control.OpList})
			if err != nil {
				return err
			}
			if len(resp.Entries) == 0 {
				fmt.Println("history is empty")
				return nil
			}
			for i, e := range resp.Entries {
				ts := time.Unix(int64(e.Timestamp), 0).Format("2006-01-02 15:04:05")
				fmt.Printf("%3d  %s  %s\n", i, ts, e.Preview(60))
			}
			return nil
		},
	}
}
