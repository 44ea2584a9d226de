package dto

import (
	"encoding/json"
	"fmt"

	"github.com/navkit/navbridge/internal/types"
)

// Wire names of the native event entry points. One name per event kind;
// marker interactions use one name per interaction type.
const (
	EventMapClick              = "mapClick"
	EventMapLongClick          = "mapLongClick"
	EventMarkerClick           = "markerClick"
	EventMarkerInfoWindowClick = "markerInfoWindowClick"
	EventMarkerDragStart       = "markerDragStart"
	EventMarkerDrag            = "markerDrag"
	EventMarkerDragEnd         = "markerDragEnd"
	EventPolygonClick          = "polygonClick"
	EventPolylineClick         = "polylineClick"
	EventCircleClick           = "circleClick"
	EventRecenterButtonClick   = "recenterButtonClick"
	EventCameraAnimationDone   = "cameraAnimationDone"
)

// MapClickEventDTO carries map click and long-click payloads.
type MapClickEventDTO struct {
	Location LatLngDTO `json:"location"`
}

// MarkerEventDTO carries all marker interaction payloads.
type MarkerEventDTO struct {
	MarkerID string    `json:"markerId"`
	Position LatLngDTO `json:"position"`
}

// OverlayClickEventDTO carries polygon, polyline and circle click payloads.
type OverlayClickEventDTO struct {
	OverlayID string `json:"overlayId"`
}

// CameraAnimationDoneEventDTO carries animation completion signals.
type CameraAnimationDoneEventDTO struct {
	Token    uint64 `json:"token"`
	Finished bool   `json:"finished"`
}

var markerEventTypes = map[string]types.MarkerEventType{
	EventMarkerClick:           types.MarkerEventClick,
	EventMarkerInfoWindowClick: types.MarkerEventInfoWindowClick,
	EventMarkerDragStart:       types.MarkerEventDragStart,
	EventMarkerDrag:            types.MarkerEventDrag,
	EventMarkerDragEnd:         types.MarkerEventDragEnd,
}

// DecodeEvent turns a native event frame payload into its domain event.
// Unknown kinds are an error; the caller decides whether to drop or fail.
func DecodeEvent(kind string, payload json.RawMessage) (types.Event, error) {
	switch kind {
	case EventMapClick, EventMapLongClick:
		var d MapClickEventDTO
		if err := json.Unmarshal(payload, &d); err != nil {
			return nil, fmt.Errorf("decode %s event: %w", kind, err)
		}
		if kind == EventMapLongClick {
			return types.MapLongClickEvent{Location: d.Location.ToLatLng()}, nil
		}
		return types.MapClickEvent{Location: d.Location.ToLatLng()}, nil

	case EventMarkerClick, EventMarkerInfoWindowClick, EventMarkerDragStart, EventMarkerDrag, EventMarkerDragEnd:
		var d MarkerEventDTO
		if err := json.Unmarshal(payload, &d); err != nil {
			return nil, fmt.Errorf("decode %s event: %w", kind, err)
		}
		return types.MarkerEvent{
			MarkerID: d.MarkerID,
			Type:     markerEventTypes[kind],
			Position: d.Position.ToLatLng(),
		}, nil

	case EventPolygonClick:
		var d OverlayClickEventDTO
		if err := json.Unmarshal(payload, &d); err != nil {
			return nil, fmt.Errorf("decode %s event: %w", kind, err)
		}
		return types.PolygonClickEvent{PolygonID: d.OverlayID}, nil

	case EventPolylineClick:
		var d OverlayClickEventDTO
		if err := json.Unmarshal(payload, &d); err != nil {
			return nil, fmt.Errorf("decode %s event: %w", kind, err)
		}
		return types.PolylineClickEvent{PolylineID: d.OverlayID}, nil

	case EventCircleClick:
		var d OverlayClickEventDTO
		if err := json.Unmarshal(payload, &d); err != nil {
			return nil, fmt.Errorf("decode %s event: %w", kind, err)
		}
		return types.CircleClickEvent{CircleID: d.OverlayID}, nil

	case EventRecenterButtonClick:
		return types.RecenterButtonClickEvent{}, nil

	case EventCameraAnimationDone:
		var d CameraAnimationDoneEventDTO
		if err := json.Unmarshal(payload, &d); err != nil {
			return nil, fmt.Errorf("decode %s event: %w", kind, err)
		}
		return types.CameraAnimationDoneEvent{Token: d.Token, Finished: d.Finished}, nil
	}
	return nil, fmt.Errorf("unknown native event kind %q", kind)
}
