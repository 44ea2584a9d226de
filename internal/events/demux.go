// Package events turns the single inbound native event stream into typed,
// per-view-instance subscriptions.
//
// Every native event arrives tagged with the view instance it belongs to.
// The demultiplexer broadcasts each tagged event to all live subscribers in
// subscription order; a subscriber installs a view-id and event-type filter
// at subscribe time and receives already re-typed values with the tag
// stripped. Subscribers only see events published after they subscribe.
package events

import (
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/tidwall/btree"

	"github.com/navkit/navbridge/internal/dto"
	"github.com/navkit/navbridge/internal/transport"
	"github.com/navkit/navbridge/internal/types"
)

type subscriber struct {
	// deliver filters, re-types and enqueues; reports whether the event
	// was accepted by this subscriber's filters
	deliver func(viewID int, ev types.Event) bool
}

// Demux is the process-wide broadcast over tagged native events. The only
// writer is the transport's event callback; any number of subscribers read
// concurrently.
type Demux struct {
	logger *slog.Logger

	mu     sync.RWMutex
	seq    atomic.Uint64
	subs   btree.Map[uint64, *subscriber]
	attach sync.Once
}

// NewDemux creates an empty demultiplexer.
func NewDemux(logger *slog.Logger) *Demux {
	return &Demux{logger: logger}
}

// Attach registers the demux as the source's event handler. Idempotent:
// only the first call installs the handler, no matter how many views or
// subscribers exist.
func (d *Demux) Attach(src transport.EventSource) {
	d.attach.Do(func() {
		src.SetEventHandler(func(kind string, viewID int, payload json.RawMessage) {
			ev, err := dto.DecodeEvent(kind, payload)
			if err != nil {
				d.logger.Warn("dropping undecodable native event", "kind", kind, "err", err)
				return
			}
			d.Publish(viewID, ev)
		})
	})
}

// Publish broadcasts one tagged event to every subscriber, in subscription
// order. Serialized by the transport's single event callback.
func (d *Demux) Publish(viewID int, ev types.Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	d.subs.Scan(func(_ uint64, s *subscriber) bool {
		s.deliver(viewID, ev)
		return true
	})
}

// On subscribes to events of kind T addressed to the given view instance.
// The returned channel carries events in transport delivery order; when its
// buffer is full further events for this subscriber are dropped rather than
// blocking ingestion. The cancel func removes the subscription and closes
// the channel; it is safe to call more than once.
func On[T types.Event](d *Demux, viewID int, buffer int) (<-chan T, func()) {
	if buffer <= 0 {
		buffer = 16
	}
	ch := make(chan T, buffer)
	seq := d.seq.Add(1)

	s := &subscriber{
		deliver: func(id int, ev types.Event) bool {
			if id != viewID {
				return false
			}
			typed, ok := ev.(T)
			if !ok {
				return false
			}
			select {
			case ch <- typed:
			default:
				d.logger.Warn("event dropped", "view", id, "subscription", seq)
			}
			return true
		},
	}

	d.mu.Lock()
	d.subs.Set(seq, s)
	d.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			d.mu.Lock()
			defer d.mu.Unlock()
			d.subs.Delete(seq)
			close(ch)
		})
	}
	return ch, cancel
}
