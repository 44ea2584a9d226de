// Package transport is the bridge's edge of the RPC substrate: typed
// request/response calls issued to the native rendering peer and the
// fire-and-forget event channel coming back, multiplexed over a single
// websocket connection.
//
// The wire contract is three JSON frame shapes: a call (id, method, view id,
// params), a reply (id, result or error) and an event (kind, view id,
// payload). Frames are ordered per connection; individual calls may still
// fail with a boundary error carried in the reply.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
)

// ErrNoNativePeer is returned when a call is issued while no native
// renderer is connected to the host.
var ErrNoNativePeer = errors.New("transport: no native peer connected")

// ErrChannelClosed is returned for calls in flight when the native
// connection goes away.
var ErrChannelClosed = errors.New("transport: channel closed")

// Caller issues one request/response call against the native side.
type Caller interface {
	Call(ctx context.Context, method string, viewID int, params, result any) error
}

// EventHandler receives every inbound native event frame. The view id is
// the transport-level tag naming the originating view instance.
type EventHandler func(kind string, viewID int, payload json.RawMessage)

// EventSource is anything that can deliver native event frames to a single
// handler.
type EventSource interface {
	SetEventHandler(EventHandler)
}

// CallError is the enumerated boundary failure reported by the native side
// for a specific call. Code uses the gRPC status code vocabulary.
type CallError struct {
	Code    codes.Code `json:"code"`
	Message string     `json:"message"`
}

// Error implements the error interface.
func (e *CallError) Error() string {
	return fmt.Sprintf("native call failed: %s (%s)", e.Message, e.Code)
}

type frameType string

const (
	frameCall  frameType = "call"
	frameReply frameType = "reply"
	frameEvent frameType = "event"
)

// frame is the single wire envelope. Call frames populate ID/Method/Params,
// replies ID and Result or Error, events Kind and Params.
type frame struct {
	Type   frameType       `json:"type"`
	ID     uint64          `json:"id,omitempty"`
	Method string          `json:"method,omitempty"`
	ViewID int             `json:"viewId"`
	Params json.RawMessage `json:"params,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  *CallError      `json:"error,omitempty"`
	Kind   string          `json:"kind,omitempty"`
}

// Options tune the websocket channel. Zero values take defaults.
type Options struct {
	WriteWait      time.Duration
	PongWait       time.Duration
	PingPeriod     time.Duration
	SendBuffer     int
	ReplyCacheSize int
}

func (o Options) withDefaults() Options {
	if o.WriteWait <= 0 {
		o.WriteWait = 10 * time.Second
	}
	if o.PongWait <= 0 {
		o.PongWait = 60 * time.Second
	}
	if o.PingPeriod <= 0 {
		o.PingPeriod = o.PongWait * 9 / 10
	}
	if o.SendBuffer <= 0 {
		o.SendBuffer = 256
	}
	if o.ReplyCacheSize <= 0 {
		o.ReplyCacheSize = 1024
	}
	return o
}
