package view

import (
	"context"
	"encoding/json"
	"testing"

	"google.golang.org/grpc/codes"

	"github.com/navkit/navbridge/internal/dto"
	errs "github.com/navkit/navbridge/internal/errors"
	"github.com/navkit/navbridge/internal/transport"
	"github.com/navkit/navbridge/internal/transport/transporttest"
	"github.com/navkit/navbridge/internal/types"
)

// echoMarkers scripts the native side to accept a marker batch unchanged.
func echoMarkers(_ int, params json.RawMessage) (any, error) {
	var p struct {
		Markers []dto.MarkerDTO `json:"markers"`
	}
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, err
	}
	return p.Markers, nil
}

func TestAddMarkersAssignsSequentialIdentities(t *testing.T) {
	caller := transporttest.New()
	caller.Handle("addMarkers", echoMarkers)
	v := New(1, caller, testDemux())

	opts := []types.MarkerOptions{
		{Position: types.LatLng{Latitude: 1}, Visible: true},
		{Position: types.LatLng{Latitude: 2}, Visible: true},
		{Position: types.LatLng{Latitude: 3}, Visible: true},
	}
	markers, err := v.AddMarkers(context.Background(), opts)
	if err != nil {
		t.Fatalf("add markers: %v", err)
	}
	wantIDs := []string{"Marker_0", "Marker_1", "Marker_2"}
	for i, m := range markers {
		if m.ID != wantIDs[i] {
			t.Fatalf("marker %d: got id %s, want %s", i, m.ID, wantIDs[i])
		}
		if m.Options.Position != opts[i].Position {
			t.Fatalf("marker %d: options did not round trip", i)
		}
	}

	// a second batch continues the sequence, no reuse
	more, err := v.AddMarkers(context.Background(), opts[:1])
	if err != nil {
		t.Fatalf("add more markers: %v", err)
	}
	if more[0].ID != "Marker_3" {
		t.Fatalf("expected Marker_3, got %s", more[0].ID)
	}
}

func TestAddMarkersCountMismatchIsFatal(t *testing.T) {
	caller := transporttest.New()
	caller.Handle("addMarkers", func(_ int, params json.RawMessage) (any, error) {
		var p struct {
			Markers []dto.MarkerDTO `json:"markers"`
		}
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, err
		}
		return p.Markers[:len(p.Markers)-1], nil // silently drop one
	})
	v := New(1, caller, testDemux())

	_, err := v.AddMarkers(context.Background(), []types.MarkerOptions{{}, {}})
	if !errs.IsCode(err, errs.CodeOverlayCountMismatch) {
		t.Fatalf("expected CodeOverlayCountMismatch, got %v", err)
	}
	// distinct from the per-item not-found failure
	if errs.IsCode(err, errs.CodeOverlayNotFound) {
		t.Fatal("count mismatch must not look like a not-found failure")
	}
}

func TestUpdateMarkersNotFoundTranslated(t *testing.T) {
	caller := transporttest.New()
	caller.Handle("updateMarkers", func(int, json.RawMessage) (any, error) {
		return nil, &transport.CallError{Code: codes.NotFound, Message: "Marker_9 gone"}
	})
	v := New(1, caller, testDemux())

	_, err := v.UpdateMarkers(context.Background(), []types.Marker{{ID: "Marker_9"}})
	if !errs.IsCode(err, errs.CodeOverlayNotFound) {
		t.Fatalf("expected CodeOverlayNotFound, got %v", err)
	}
}

func TestRemoveCirclesNotFoundTranslated(t *testing.T) {
	caller := transporttest.New()
	caller.Handle("removeCircles", func(int, json.RawMessage) (any, error) {
		return nil, &transport.CallError{Code: codes.NotFound, Message: "Circle_0 gone"}
	})
	v := New(1, caller, testDemux())

	err := v.RemoveCircles(context.Background(), []types.Circle{{ID: "Circle_0"}})
	if !errs.IsCode(err, errs.CodeOverlayNotFound) {
		t.Fatalf("expected CodeOverlayNotFound, got %v", err)
	}
}

func TestMarkersQueryDropsUnresolved(t *testing.T) {
	caller := transporttest.New()
	caller.Handle("getMarkers", func(int, json.RawMessage) (any, error) {
		return []any{
			map[string]any{"markerId": "Marker_0", "options": map[string]any{"position": map[string]any{"latitude": 1.0, "longitude": 2.0}}},
			nil, // removed on the native side
			map[string]any{"markerId": "Marker_2", "options": map[string]any{"position": map[string]any{"latitude": 3.0, "longitude": 4.0}}},
		}, nil
	})
	v := New(1, caller, testDemux())

	markers, err := v.Markers(context.Background())
	if err != nil {
		t.Fatalf("get markers: %v", err)
	}
	if len(markers) != 2 {
		t.Fatalf("expected a compact result of 2 markers, got %d", len(markers))
	}
	if markers[0].ID != "Marker_0" || markers[1].ID != "Marker_2" {
		t.Fatalf("unexpected ids: %s, %s", markers[0].ID, markers[1].ID)
	}
}

func TestAddPolylinesCountMismatch(t *testing.T) {
	caller := transporttest.New()
	caller.Handle("addPolylines", func(int, json.RawMessage) (any, error) {
		return []dto.PolylineDTO{}, nil
	})
	v := New(1, caller, testDemux())

	_, err := v.AddPolylines(context.Background(), []types.PolylineOptions{{Width: 2}})
	if !errs.IsCode(err, errs.CodeOverlayCountMismatch) {
		t.Fatalf("expected CodeOverlayCountMismatch, got %v", err)
	}
}

func TestClearAllSendsSingleCall(t *testing.T) {
	caller := transporttest.New()
	v := New(5, caller, testDemux())

	if err := v.Clear(context.Background()); err != nil {
		t.Fatalf("clear: %v", err)
	}
	calls := caller.Calls()
	if len(calls) != 1 || calls[0].Method != "clear" {
		t.Fatalf("expected a single clear call, got %+v", calls)
	}
	if len(calls[0].Params) != 0 {
		t.Fatalf("clear must carry no payload, got %s", calls[0].Params)
	}
}
