package bridge

import (
	"context"
	"encoding/json"
	"net/http"
)

// Dispatcher runs a named command with JSON-encoded arguments.
type Dispatcher interface {
	Dispatch(ctx context.Context, command string, args json.RawMessage) (interface{}, error)
}

// Request is an inbound command invocation.
type Request struct {
	ID      string          `json:"id"`
	Command string          `json:"command"`
	Args    json.RawMessage `json:"args,omitempty"`
}

// Response answers one Request. Exactly one of Result and Error is set on success or failure.
type Response struct {
	ID     string      `json:"id"`
	Result interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// Event is a payload-free notification addressed to a UI surface.
type Event struct {
	Event  string `json:"event"`
	Target string `json:"target"`
}

// Server serves the command bridge and its operational endpoints.
type Server interface {
	Handler() http.Handler
}
