// Package control defines the daemon's local control protocol.
//
// All messages are newline-delimited JSON, one message per line, exchanged
// over the Unix socket from internal/ipc. Each connection carries exactly one
// request and one response.
package control

import (
	"encoding/json"
	"fmt"

	"github.com/clipstash/clipstash/internal/entry"
)

// Op identifies the kind of request.
type Op string

const (
	// OpList asks for the current history snapshot.
	OpList Op = "LIST"
	// OpSelect injects an entry-selection event; Index names the entry.
	OpSelect Op = "SELECT"
	// OpToggle injects a visibility-toggle event.
	OpToggle Op = "TOGGLE"
	// OpStatus asks for daemon status.
	OpStatus Op = "STATUS"
)

// Request is the client → daemon envelope.
type Request struct {
	Op    Op  `json:"op"`
	Index int `json:"index,omitempty"` // SELECT
}

// Response is the daemon → client envelope.
type Response struct {
	// Always present
	OK  bool   `json:"ok"`
	Err string `json:"error,omitempty"`

	// LIST
	Entries []entry.Entry `json:"entries,omitempty"`
	Visible bool          `json:"visible,omitempty"`

	// STATUS
	Version string `json:"version,omitempty"`
	Pending int    `json:"pending,omitempty"`
	History int    `json:"history,omitempty"`
}

// Encode serialises the request to JSON without a trailing newline.
func (r *Request) Encode() ([]byte, error) {
	return json.Marshal(r)
}

// DecodeRequest deserialises a request from raw JSON bytes.
func DecodeRequest(b []byte) (*Request, error) {
	var r Request
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("request decode: %w", err)
	}
	return &r, nil
}

// Encode serialises the response to JSON without a trailing newline.
func (r *Response) Encode() ([]byte, error) {
	return json.Marshal(r)
}

// DecodeResponse deserialises a response from raw JSON bytes.
func DecodeResponse(b []byte) (*Response, error) {
	var r Response
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("response decode: %w", err)
	}
	return &r, nil
}
