// Package view exposes the per-view-instance facade over the native map
// renderer: every query, mutation and event stream for one rendering
// surface, each mapped one-to-one onto a transport call with DTO
// conversion at the boundary.
//
// A View holds no native-side state beyond its id, its identity counters
// and the animation-completion table, so it is cheap to recreate for an
// existing surface. Calls are issued and awaited sequentially by the
// caller.
package view

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v4"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc/codes"

	errs "github.com/navkit/navbridge/internal/errors"
	"github.com/navkit/navbridge/internal/events"
	"github.com/navkit/navbridge/internal/transport"
	"github.com/navkit/navbridge/internal/types"
)

// View is the facade for one view instance.
type View struct {
	id     int
	caller transport.Caller
	demux  *events.Demux

	markers   registry
	polygons  registry
	polylines registry
	circles   registry

	ready   atomic.Bool
	readySF singleflight.Group

	animToken atomic.Uint64
	animDone  *xsync.Map[uint64, chan bool]
	animOnce  sync.Once
}

// New creates a facade for the view instance with the given id.
func New(id int, caller transport.Caller, demux *events.Demux) *View {
	return &View{
		id:        id,
		caller:    caller,
		demux:     demux,
		markers:   newRegistry("Marker"),
		polygons:  newRegistry("Polygon"),
		polylines: newRegistry("Polyline"),
		circles:   newRegistry("Circle"),
		animDone:  xsync.NewMap[uint64, chan bool](),
	}
}

// ID returns the view instance id.
func (v *View) ID() int {
	return v.id
}

// AwaitReady resolves once the native rendering surface has reported
// readiness. Idempotent: concurrent callers share one in-flight call and
// later callers return immediately.
func (v *View) AwaitReady(ctx context.Context) error {
	if v.ready.Load() {
		return nil
	}
	_, err, _ := v.readySF.Do("ready", func() (any, error) {
		if v.ready.Load() {
			return nil, nil
		}
		if err := v.caller.Call(ctx, "awaitMapReady", v.id, nil, nil); err != nil {
			return nil, err
		}
		v.ready.Store(true)
		return nil, nil
	})
	return err
}

// emptyStyleSentinel is what the native side accepts for "no style"; it
// does not accept a literal null.
const emptyStyleSentinel = "[]"

type mapStyleParams struct {
	MapStyle string `json:"mapStyle"`
}

// SetMapStyle applies a style specification, or resets to the default
// styling when style is nil. A style the native side cannot parse surfaces
// as CodeInvalidMapStyle.
func (v *View) SetMapStyle(ctx context.Context, style *string) error {
	s := emptyStyleSentinel
	if style != nil {
		s = *style
	}
	err := v.caller.Call(ctx, "setMapStyle", v.id, mapStyleParams{MapStyle: s}, nil)
	return translateBoundary(err, map[codes.Code]translation{
		codes.InvalidArgument: {errs.CodeInvalidMapStyle, "map style rejected by the native renderer"},
	})
}

type mapTypeParams struct {
	MapType string `json:"mapType"`
}

// MapType returns the current base map imagery type.
func (v *View) MapType(ctx context.Context) (types.MapType, error) {
	var out string
	if err := v.caller.Call(ctx, "getMapType", v.id, nil, &out); err != nil {
		return "", err
	}
	return types.MapType(out), nil
}

// SetMapType selects the base map imagery type.
func (v *View) SetMapType(ctx context.Context, t types.MapType) error {
	return v.caller.Call(ctx, "setMapType", v.id, mapTypeParams{MapType: string(t)}, nil)
}

// Event streams, one per kind, filtered to this view instance. See
// events.On for buffer and cancellation semantics.

func (v *View) OnMapClick(buffer int) (<-chan types.MapClickEvent, func()) {
	return events.On[types.MapClickEvent](v.demux, v.id, buffer)
}

func (v *View) OnMapLongClick(buffer int) (<-chan types.MapLongClickEvent, func()) {
	return events.On[types.MapLongClickEvent](v.demux, v.id, buffer)
}

func (v *View) OnMarkerEvent(buffer int) (<-chan types.MarkerEvent, func()) {
	return events.On[types.MarkerEvent](v.demux, v.id, buffer)
}

func (v *View) OnPolygonClick(buffer int) (<-chan types.PolygonClickEvent, func()) {
	return events.On[types.PolygonClickEvent](v.demux, v.id, buffer)
}

func (v *View) OnPolylineClick(buffer int) (<-chan types.PolylineClickEvent, func()) {
	return events.On[types.PolylineClickEvent](v.demux, v.id, buffer)
}

func (v *View) OnCircleClick(buffer int) (<-chan types.CircleClickEvent, func()) {
	return events.On[types.CircleClickEvent](v.demux, v.id, buffer)
}

func (v *View) OnRecenterButtonClick(buffer int) (<-chan types.RecenterButtonClickEvent, func()) {
	return events.On[types.RecenterButtonClickEvent](v.demux, v.id, buffer)
}

// translation pairs a domain code with the message used when a boundary
// code is recognized at a call site.
type translation struct {
	code    errs.Code
	message string
}

// translateBoundary maps an enumerated boundary error code to its typed
// domain failure. Anything that is not a CallError with a recognized code
// is re-raised unchanged; this layer never swallows errors it does not
// specifically understand.
func translateBoundary(err error, table map[codes.Code]translation) error {
	if err == nil {
		return nil
	}
	var ce *transport.CallError
	if errors.As(err, &ce) {
		if t, ok := table[ce.Code]; ok {
			return errs.Wrap(t.code, t.message, err)
		}
	}
	return err
}
