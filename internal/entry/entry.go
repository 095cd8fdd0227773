// Package entry defines the clipboard history data model.
package entry

import "time"

// Entry is one historical clipboard snapshot. Immutable once created.
type Entry struct {
	Content   string `json:"content"`
	Timestamp uint64 `json:"timestamp"` // seconds since epoch
}

// New creates an Entry for content stamped with the current time.
func New(content string) Entry {
	return Entry{
		Content:   content,
		Timestamp: uint64(time.Now().Unix()),
	}
}

// Preview returns a single-line rendering of the content truncated to max
// runes, with newlines replaced by a return symbol. Used by list displays.
func (e Entry) Preview(max int) string {
	runes := []rune(e.Content)
	truncated := false
	if len(runes) > max {
		runes = runes[:max]
		truncated = true
	}
	out := make([]rune, 0, len(runes)+1)
	for _, r := range runes {
		if r == '\n' {
			out = append(out, '↵')
			continue
		}
		out = append(out, r)
	}
	if truncated {
		out = append(out, '…')
	}
	return string(out)
}
