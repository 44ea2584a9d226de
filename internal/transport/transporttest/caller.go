// Package transporttest provides an in-memory transport.Caller fake for
// facade tests: scripted per-method handlers plus a record of every issued
// call.
package transporttest

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Call records one issued call.
type Call struct {
	Method string
	ViewID int
	Params json.RawMessage
}

// HandlerFunc produces the native side's response for one method. The
// returned value is round-tripped through JSON into the caller's result;
// errors are returned to the caller unchanged.
type HandlerFunc func(viewID int, params json.RawMessage) (any, error)

// Caller is a scripted transport.Caller. Methods without a handler succeed
// with an empty result.
type Caller struct {
	mu       sync.Mutex
	calls    []Call
	handlers map[string]HandlerFunc
}

// New creates an empty scripted caller.
func New() *Caller {
	return &Caller{handlers: make(map[string]HandlerFunc)}
}

// Handle scripts the response for a method.
func (c *Caller) Handle(method string, fn HandlerFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[method] = fn
}

// Call implements transport.Caller.
func (c *Caller) Call(_ context.Context, method string, viewID int, params, result any) error {
	var raw json.RawMessage
	if params != nil {
		b, err := json.Marshal(params)
		if err != nil {
			return fmt.Errorf("marshal %s params: %w", method, err)
		}
		raw = b
	}

	c.mu.Lock()
	c.calls = append(c.calls, Call{Method: method, ViewID: viewID, Params: raw})
	fn := c.handlers[method]
	c.mu.Unlock()

	if fn == nil {
		return nil
	}
	res, err := fn(viewID, raw)
	if err != nil {
		return err
	}
	if result == nil || res == nil {
		return nil
	}
	b, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal %s response: %w", method, err)
	}
	if err := json.Unmarshal(b, result); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	return nil
}

// Calls returns every recorded call in order.
func (c *Caller) Calls() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Call, len(c.calls))
	copy(out, c.calls)
	return out
}

// CallsFor returns the recorded calls for one method, in order.
func (c *Caller) CallsFor(method string) []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []Call
	for _, call := range c.calls {
		if call.Method == method {
			out = append(out, call)
		}
	}
	return out
}
