package types

// Event is the closed set of native map events. The view-instance tag that
// routes an event to its view is transport metadata and is stripped before
// an event value reaches a subscriber.
type Event interface {
	isEvent()
}

// MapClickEvent fires when the base map is tapped.
type MapClickEvent struct {
	Location LatLng
}

// MapLongClickEvent fires when the base map is long-pressed.
type MapLongClickEvent struct {
	Location LatLng
}

// MarkerEventType discriminates marker interactions.
type MarkerEventType string

const (
	MarkerEventClick           MarkerEventType = "click"
	MarkerEventInfoWindowClick MarkerEventType = "infoWindowClick"
	MarkerEventDragStart       MarkerEventType = "dragStart"
	MarkerEventDrag            MarkerEventType = "drag"
	MarkerEventDragEnd         MarkerEventType = "dragEnd"
)

// MarkerEvent fires for clicks and drags on a marker.
type MarkerEvent struct {
	MarkerID string
	Type     MarkerEventType
	Position LatLng
}

// PolygonClickEvent fires when a clickable polygon is tapped.
type PolygonClickEvent struct {
	PolygonID string
}

// PolylineClickEvent fires when a clickable polyline is tapped.
type PolylineClickEvent struct {
	PolylineID string
}

// CircleClickEvent fires when a clickable circle is tapped.
type CircleClickEvent struct {
	CircleID string
}

// RecenterButtonClickEvent fires when the navigation recenter button is
// pressed.
type RecenterButtonClickEvent struct{}

// CameraAnimationDoneEvent reports completion of a requested camera
// animation. It is consumed internally to resolve animation futures and is
// not part of the subscriber-facing event surface.
type CameraAnimationDoneEvent struct {
	Token    uint64
	Finished bool
}

func (MapClickEvent) isEvent()            {}
func (MapLongClickEvent) isEvent()        {}
func (MarkerEvent) isEvent()              {}
func (PolygonClickEvent) isEvent()        {}
func (PolylineClickEvent) isEvent()       {}
func (CircleClickEvent) isEvent()         {}
func (RecenterButtonClickEvent) isEvent() {}
func (CameraAnimationDoneEvent) isEvent() {}
