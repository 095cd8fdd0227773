// Package ipc provides the local Unix-socket channel used by CLI
// sub-commands (list/select/toggle/status) to talk to a running clipstash
// daemon.
//
// The channel carries the newline-delimited JSON protocol from
// internal/control. The daemon listens on the socket; sub-commands probe for
// it and fail with a diagnostic if no daemon is running.
package ipc

import (
	"net"
	"os"
	"path/filepath"
)

// SocketPath returns the path for the control socket.
//
//   - $CLIPSTASH_SOCKET if set
//   - $XDG_RUNTIME_DIR/clipstash.sock (Linux)
//   - $TMPDIR/clipstash.sock otherwise
func SocketPath() string {
	if s := os.Getenv("CLIPSTASH_SOCKET"); s != "" {
		return s
	}
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, "clipstash.sock")
	}
	return filepath.Join(os.TempDir(), "clipstash.sock")
}

// IsRunning reports whether a clipstash daemon appears to be listening on
// the control socket. It does a cheap dial-and-close; no data is exchanged.
func IsRunning() bool {
	c, err := net.Dial("unix", SocketPath())
	if err != nil {
		return false
	}
	_ = c.Close()
	return true
}

// Listen creates a net.Listener on the socket path, removing any stale
// socket file from a previous (crashed) run first.
func Listen() (net.Listener, error) {
	path := SocketPath()
	_ = os.Remove(path)
	return net.Listen("unix", path)
}

// Dial connects to the control socket.
func Dial() (net.Conn, error) {
	return net.Dial("unix", SocketPath())
}
