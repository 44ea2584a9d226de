package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/puzpuzpuz/xsync/v4"
)

// Channel is one live connection to a native renderer. A single reader
// (ReadPump) dispatches replies to pending calls and events to the handler;
// a single writer (WritePump) drains the send queue and keeps pings going.
type Channel struct {
	conn    *websocket.Conn
	logger  *slog.Logger
	opts    Options
	onEvent EventHandler

	send    chan []byte
	nextID  atomic.Uint64
	pending *xsync.Map[uint64, chan frame]

	// completed call ids, so replies redelivered by the peer after a
	// hiccup are dropped instead of waking a recycled pending slot
	done *lru.Cache[uint64, struct{}]

	closed    chan struct{}
	closeOnce sync.Once
}

// NewChannel wraps an established websocket connection.
func NewChannel(conn *websocket.Conn, logger *slog.Logger, opts Options, onEvent EventHandler) (*Channel, error) {
	opts = opts.withDefaults()
	done, err := lru.New[uint64, struct{}](opts.ReplyCacheSize)
	if err != nil {
		return nil, fmt.Errorf("reply cache: %w", err)
	}
	return &Channel{
		conn:    conn,
		logger:  logger,
		opts:    opts,
		onEvent: onEvent,
		send:    make(chan []byte, opts.SendBuffer),
		pending: xsync.NewMap[uint64, chan frame](),
		done:    done,
		closed:  make(chan struct{}),
	}, nil
}

// Call issues one request and blocks until its reply, context cancellation
// or channel teardown. A reply carrying a boundary error is returned as a
// *CallError; otherwise the result payload is decoded into result when both
// are non-nil.
func (c *Channel) Call(ctx context.Context, method string, viewID int, params, result any) error {
	var raw json.RawMessage
	if params != nil {
		b, err := json.Marshal(params)
		if err != nil {
			return fmt.Errorf("marshal %s params: %w", method, err)
		}
		raw = b
	}

	id := c.nextID.Add(1)
	reply := make(chan frame, 1)
	c.pending.Store(id, reply)
	defer c.pending.Delete(id)

	b, err := json.Marshal(frame{Type: frameCall, ID: id, Method: method, ViewID: viewID, Params: raw})
	if err != nil {
		return fmt.Errorf("marshal %s call: %w", method, err)
	}

	select {
	case c.send <- b:
	case <-c.closed:
		return ErrChannelClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case f := <-reply:
		if f.Error != nil {
			return f.Error
		}
		if result != nil && f.Result != nil {
			if err := json.Unmarshal(f.Result, result); err != nil {
				return fmt.Errorf("decode %s result: %w", method, err)
			}
		}
		return nil
	case <-c.closed:
		return ErrChannelClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ReadPump consumes frames until the connection fails or is closed.
func (c *Channel) ReadPump() error {
	defer c.Close()

	c.conn.SetReadDeadline(time.Now().Add(c.opts.PongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.opts.PongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err
		}

		var f frame
		if err := json.Unmarshal(data, &f); err != nil {
			c.logger.Warn("undecodable frame", "err", err)
			continue
		}

		switch f.Type {
		case frameReply:
			if c.done.Contains(f.ID) {
				c.logger.Warn("duplicate reply dropped", "call", f.ID)
				continue
			}
			ch, ok := c.pending.LoadAndDelete(f.ID)
			if !ok {
				c.logger.Warn("reply for unknown call", "call", f.ID)
				continue
			}
			c.done.Add(f.ID, struct{}{})
			ch <- f
		case frameEvent:
			if c.onEvent != nil {
				c.onEvent(f.Kind, f.ViewID, f.Params)
			}
		default:
			c.logger.Warn("unexpected frame", "type", string(f.Type))
		}
	}
}

// WritePump drains the send queue and pings on an interval.
func (c *Channel) WritePump() {
	ticker := time.NewTicker(c.opts.PingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(c.opts.WriteWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(c.opts.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.closed:
			c.conn.SetWriteDeadline(time.Now().Add(c.opts.WriteWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}

// Close tears the channel down; in-flight calls fail with ErrChannelClosed.
func (c *Channel) Close() {
	c.closeOnce.Do(func() {
		close(c.closed)
	})
}
