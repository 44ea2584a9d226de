package dto

import (
	"encoding/json"
	"testing"

	"github.com/navkit/navbridge/internal/types"
)

func TestDecodeEvent(t *testing.T) {
	tests := []struct {
		kind    string
		payload string
		want    types.Event
	}{
		{
			EventMapClick,
			`{"location":{"latitude":1,"longitude":2}}`,
			types.MapClickEvent{Location: types.LatLng{Latitude: 1, Longitude: 2}},
		},
		{
			EventMapLongClick,
			`{"location":{"latitude":-3,"longitude":4}}`,
			types.MapLongClickEvent{Location: types.LatLng{Latitude: -3, Longitude: 4}},
		},
		{
			EventMarkerClick,
			`{"markerId":"Marker_2","position":{"latitude":5,"longitude":6}}`,
			types.MarkerEvent{MarkerID: "Marker_2", Type: types.MarkerEventClick, Position: types.LatLng{Latitude: 5, Longitude: 6}},
		},
		{
			EventMarkerDragEnd,
			`{"markerId":"Marker_0","position":{"latitude":7,"longitude":8}}`,
			types.MarkerEvent{MarkerID: "Marker_0", Type: types.MarkerEventDragEnd, Position: types.LatLng{Latitude: 7, Longitude: 8}},
		},
		{
			EventPolygonClick,
			`{"overlayId":"Polygon_1"}`,
			types.PolygonClickEvent{PolygonID: "Polygon_1"},
		},
		{
			EventPolylineClick,
			`{"overlayId":"Polyline_4"}`,
			types.PolylineClickEvent{PolylineID: "Polyline_4"},
		},
		{
			EventCircleClick,
			`{"overlayId":"Circle_9"}`,
			types.CircleClickEvent{CircleID: "Circle_9"},
		},
		{
			EventRecenterButtonClick,
			`{}`,
			types.RecenterButtonClickEvent{},
		},
		{
			EventCameraAnimationDone,
			`{"token":12,"finished":true}`,
			types.CameraAnimationDoneEvent{Token: 12, Finished: true},
		},
	}

	for _, tc := range tests {
		t.Run(tc.kind, func(t *testing.T) {
			got, err := DecodeEvent(tc.kind, json.RawMessage(tc.payload))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestDecodeEventUnknownKind(t *testing.T) {
	if _, err := DecodeEvent("teleport", json.RawMessage(`{}`)); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestDecodeEventBadPayload(t *testing.T) {
	if _, err := DecodeEvent(EventMapClick, json.RawMessage(`"nope"`)); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}
