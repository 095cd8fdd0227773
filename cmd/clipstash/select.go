package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/clipstash/clipstash/internal/control"
	"github.com/clipstash/clipstash/internal/ipc"
)

func newSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select INDEX",
		Short: "Restore a history entry to the clipboard and paste it",
		Long: `Asks the running clipstash to restore history entry INDEX (newest = 0)
to the system clipboard and inject a paste keystroke, exactly as selecting
it in the history view would. An out-of-range index is silently ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index must be a number: %q", args[0])
			}
			_, err = request(&control.Request{Op: control.OpSelect, Index: index})
			return err
		},
	}
}

// request performs one request/response round trip with the daemon.
func request(req *control.Request) (*control.Response, error) {
	if !ipc.IsRunning() {
		return nil, fmt.Errorf("no running clipstash found at %s (start one with \"clipstash run\")", ipc.SocketPath())
	}
	conn, err := ipc.Dial()
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	cc := control.NewConn(conn)
	if err := cc.WriteRequest(req); err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	resp, err := cc.ReadResponse()
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.Err != "" {
		return nil, fmt.Errorf("daemon: %s", resp.Err)
	}
	return resp, nil
}
