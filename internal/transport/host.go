package transport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"
)

// Host owns the channel endpoint the native renderer connects to. At most
// one native peer is active at a time; a new connection replaces the old
// one. The host implements Caller against the current peer and EventSource
// for the event demultiplexer.
type Host struct {
	logger   *slog.Logger
	opts     Options
	upgrader websocket.Upgrader

	mu      sync.Mutex
	channel *Channel
	onEvent EventHandler
}

// NewHost creates a host with the given channel options.
func NewHost(logger *slog.Logger, opts Options) *Host {
	return &Host{
		logger: logger,
		opts:   opts.withDefaults(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
}

// SetEventHandler installs the single inbound event handler. Must be called
// before the host starts serving.
func (h *Host) SetEventHandler(fn EventHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onEvent = fn
}

// Call issues a request against the connected native peer.
func (h *Host) Call(ctx context.Context, method string, viewID int, params, result any) error {
	h.mu.Lock()
	ch := h.channel
	h.mu.Unlock()
	if ch == nil {
		return ErrNoNativePeer
	}
	return ch.Call(ctx, method, viewID, params, result)
}

// Router builds the host's HTTP surface.
func (h *Host) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(chimw.RequestID)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/channel", h.handleChannel)

	return r
}

func (h *Host) handleChannel(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("channel upgrade failed", "err", err)
		return
	}

	h.mu.Lock()
	onEvent := h.onEvent
	h.mu.Unlock()

	ch, err := NewChannel(conn, h.logger, h.opts, onEvent)
	if err != nil {
		h.logger.Error("channel setup failed", "err", err)
		conn.Close()
		return
	}

	h.mu.Lock()
	if h.channel != nil {
		h.logger.Warn("replacing native peer")
		h.channel.Close()
	}
	h.channel = ch
	h.mu.Unlock()

	h.logger.Info("native peer connected", "remote", r.RemoteAddr)

	g := new(errgroup.Group)
	g.Go(ch.ReadPump)
	g.Go(func() error {
		ch.WritePump()
		return nil
	})
	if err := g.Wait(); err != nil {
		h.logger.Warn("native channel closed", "err", err)
	} else {
		h.logger.Info("native peer disconnected")
	}

	h.mu.Lock()
	if h.channel == ch {
		h.channel = nil
	}
	h.mu.Unlock()
}

// ListenAndServe serves the host endpoint until the context is canceled.
func (h *Host) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: h.Router()}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
