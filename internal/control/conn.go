package control

import (
	"bufio"
	"fmt"
	"net"
	"time"
)

const (
	// MaxMessageSize is the largest message we will read (16 MiB).
	MaxMessageSize = 16 * 1024 * 1024

	ioDeadline = 5 * time.Second
)

// Conn wraps a net.Conn with buffered newline-delimited JSON framing.
type Conn struct {
	conn net.Conn
	br   *bufio.Reader
}

// NewConn wraps conn.
func NewConn(conn net.Conn) *Conn {
	return &Conn{
		conn: conn,
		br:   bufio.NewReaderSize(conn, 64*1024),
	}
}

// Close closes the underlying connection.
func (c *Conn) Close() error { return c.conn.Close() }

// WriteRequest writes one request line.
func (c *Conn) WriteRequest(req *Request) error {
	raw, err := req.Encode()
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return c.writeLine(raw)
}

// ReadRequest reads one request line.
func (c *Conn) ReadRequest() (*Request, error) {
	raw, err := c.readLine()
	if err != nil {
		return nil, err
	}
	return DecodeRequest(raw)
}

// WriteResponse writes one response line.
func (c *Conn) WriteResponse(resp *Response) error {
	raw, err := resp.Encode()
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return c.writeLine(raw)
}

// ReadResponse reads one response line.
func (c *Conn) ReadResponse() (*Response, error) {
	raw, err := c.readLine()
	if err != nil {
		return nil, err
	}
	return DecodeResponse(raw)
}

func (c *Conn) writeLine(raw []byte) error {
	_ = c.conn.SetWriteDeadline(time.Now().Add(ioDeadline))
	_, err := c.conn.Write(append(raw, '\n'))
	_ = c.conn.SetWriteDeadline(time.Time{})
	return err
}

func (c *Conn) readLine() ([]byte, error) {
	_ = c.conn.SetReadDeadline(time.Now().Add(ioDeadline))
	line, err := c.br.ReadBytes('\n')
	_ = c.conn.SetReadDeadline(time.Time{})
	if err != nil {
		return nil, err
	}
	if len(line) > MaxMessageSize {
		return nil, fmt.Errorf("message too large (%d bytes)", len(line))
	}
	return line[:len(line)-1], nil
}
