// Package bridge defines how the checkout page talks back to the host:
// a JSON message protocol, the bootstrap script that exposes it to the page,
// and deep-link URLs that signal completion through navigation.
package bridge

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/paysurface/internal/domain/entity"
)

// DefaultName is the global the bootstrap script installs in the page.
const DefaultName = "paysurface"

// Message types accepted from the page.
const (
	TypeComplete = "complete"
	TypeError    = "error"
	TypeClose    = "close"
	TypeLoaded   = "loaded"
)

// ErrUnknownMessage is returned for well-formed messages with an unknown type.
var ErrUnknownMessage = errors.New("unknown bridge message")

// Message is the wire form posted by the page.
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Message string          `json:"message,omitempty"`
	URL     string          `json:"url,omitempty"`
}

// Decode parses one page message into a surface event.
func Decode(raw string) (entity.SurfaceEvent, error) {
	var msg Message
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		return entity.SurfaceEvent{}, fmt.Errorf("decode bridge message: %w", err)
	}
	return msg.Event()
}

// Event converts the message into a surface event.
func (m Message) Event() (entity.SurfaceEvent, error) {
	switch strings.ToLower(strings.TrimSpace(m.Type)) {
	case TypeComplete, "payment_complete":
		return entity.SurfaceEvent{Kind: entity.SurfacePaymentComplete, Payload: payloadText(m.Payload)}, nil
	case TypeError, "payment_error":
		text := m.Message
		if text == "" {
			text = payloadText(m.Payload)
		}
		if text == "" {
			text = "payment failed"
		}
		return entity.SurfaceEvent{Kind: entity.SurfaceError, Message: text}, nil
	case TypeClose, "cancel":
		return entity.SurfaceEvent{Kind: entity.SurfaceCloseRequested}, nil
	case TypeLoaded:
		return entity.SurfaceEvent{Kind: entity.SurfacePageLoaded, URL: m.URL}, nil
	default:
		return entity.SurfaceEvent{}, fmt.Errorf("%w: %q", ErrUnknownMessage, m.Type)
	}
}

// Encode renders a message as JSON, for tests and host-side replies.
func Encode(msg Message) string {
	data, err := json.Marshal(msg)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// payloadText returns string payloads unquoted and anything else as compact JSON.
func payloadText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if raw[0] == '"' && json.Unmarshal(raw, &s) == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
