package websocket

import (
	"encoding/json"

	"github.com/nfrund/demosite/internal/nav"
)

// Inbound message types.
const (
	TypeEvent    = "event"
	TypeRendered = "rendered"
)

// Outbound message types.
const (
	TypeHTML   = "html"
	TypeResult = "result"
	TypeFocus  = "focus"
	TypeError  = "error"
)

// ClientMessage is a frame sent by the browser. Rendered acknowledges that
// the last html frame has been swapped into the page.
type ClientMessage struct {
	Type  string    `json:"type"`
	Path  string    `json:"path,omitempty"`
	Event nav.Event `json:"event"`
}

// Message is a frame sent to the browser.
type Message struct {
	Type    string      `json:"type"`
	Target  string      `json:"target,omitempty"`
	Payload interface{} `json:"payload"`
}

// MarshalJSON sends []byte payloads as strings rather than base64.
func (m Message) MarshalJSON() ([]byte, error) {
	type alias Message
	out := alias(m)
	if b, ok := m.Payload.([]byte); ok {
		out.Payload = string(b)
	}
	return json.Marshal(out)
}

// FocusPayload lists element ids to focus, in order.
type FocusPayload struct {
	IDs []string `json:"ids"`
}

func newHTMLMessage(html []byte, target string) Message {
	return Message{Type: TypeHTML, Target: target, Payload: html}
}

func newFocusMessage(ids []string) Message {
	return Message{Type: TypeFocus, Payload: FocusPayload{IDs: ids}}
}

func newErrorMessage(msg string) Message {
	return Message{Type: TypeError, Payload: msg}
}
