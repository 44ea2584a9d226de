package types

import (
	"github.com/navkit/navbridge/internal/errors"
)

// CameraUpdateKind discriminates the seven camera update variants.
type CameraUpdateKind string

const (
	CameraUpdateKindPosition     CameraUpdateKind = "cameraPosition"
	CameraUpdateKindLatLng       CameraUpdateKind = "latLng"
	CameraUpdateKindLatLngBounds CameraUpdateKind = "latLngBounds"
	CameraUpdateKindLatLngZoom   CameraUpdateKind = "latLngZoom"
	CameraUpdateKindScrollBy     CameraUpdateKind = "scrollBy"
	CameraUpdateKindZoomBy       CameraUpdateKind = "zoomBy"
	CameraUpdateKindZoomTo       CameraUpdateKind = "zoomTo"
)

// CameraUpdate is a tagged variant: exactly one kind's payload fields are
// populated per instance. Build values with the constructors below; Validate
// rejects updates whose declared kind is missing required fields.
type CameraUpdate struct {
	Kind CameraUpdateKind

	Position *CameraPosition // position
	Point    *LatLng         // latLng, latLngZoom
	Bounds   *LatLngBounds   // latLngBounds
	Padding  float64         // latLngBounds
	Zoom     *float64        // latLngZoom, zoomTo
	ScrollDX float64         // scrollBy
	ScrollDY float64         // scrollBy
	ZoomBy   *float64        // zoomBy
	Focus    *LatLng         // zoomBy, optional
}

// NewCameraUpdatePosition moves the camera to an absolute position.
func NewCameraUpdatePosition(position CameraPosition) CameraUpdate {
	return CameraUpdate{Kind: CameraUpdateKindPosition, Position: &position}
}

// NewCameraUpdateLatLng points the camera at a location, keeping zoom.
func NewCameraUpdateLatLng(point LatLng) CameraUpdate {
	return CameraUpdate{Kind: CameraUpdateKindLatLng, Point: &point}
}

// NewCameraUpdateLatLngBounds fits the camera to bounds with padding.
func NewCameraUpdateLatLngBounds(bounds LatLngBounds, padding float64) CameraUpdate {
	return CameraUpdate{Kind: CameraUpdateKindLatLngBounds, Bounds: &bounds, Padding: padding}
}

// NewCameraUpdateLatLngZoom points the camera at a location with a zoom level.
func NewCameraUpdateLatLngZoom(point LatLng, zoom float64) CameraUpdate {
	return CameraUpdate{Kind: CameraUpdateKindLatLngZoom, Point: &point, Zoom: &zoom}
}

// NewCameraUpdateScrollBy scrolls the camera by a screen-point delta.
func NewCameraUpdateScrollBy(dx, dy float64) CameraUpdate {
	return CameraUpdate{Kind: CameraUpdateKindScrollBy, ScrollDX: dx, ScrollDY: dy}
}

// NewCameraUpdateZoomBy changes zoom by a delta, optionally around a focus
// point. Pass a nil focus to zoom around the camera target.
func NewCameraUpdateZoomBy(delta float64, focus *LatLng) CameraUpdate {
	u := CameraUpdate{Kind: CameraUpdateKindZoomBy, ZoomBy: &delta}
	if focus != nil {
		f := *focus
		u.Focus = &f
	}
	return u
}

// NewCameraUpdateZoomTo sets an absolute zoom level.
func NewCameraUpdateZoomTo(zoom float64) CameraUpdate {
	return CameraUpdate{Kind: CameraUpdateKindZoomTo, Zoom: &zoom}
}

// Validate checks that the fields required by the declared kind are present.
func (u CameraUpdate) Validate() error {
	switch u.Kind {
	case CameraUpdateKindPosition:
		if u.Position == nil {
			return errors.New(errors.CodeCameraUpdateInvalid, "camera update: position kind requires a camera position")
		}
	case CameraUpdateKindLatLng:
		if u.Point == nil {
			return errors.New(errors.CodeCameraUpdateInvalid, "camera update: latLng kind requires a point")
		}
	case CameraUpdateKindLatLngBounds:
		if u.Bounds == nil {
			return errors.New(errors.CodeCameraUpdateInvalid, "camera update: latLngBounds kind requires bounds")
		}
	case CameraUpdateKindLatLngZoom:
		if u.Point == nil || u.Zoom == nil {
			return errors.New(errors.CodeCameraUpdateInvalid, "camera update: latLngZoom kind requires a point and a zoom level")
		}
	case CameraUpdateKindScrollBy:
		// dx/dy are plain values; nothing to check
	case CameraUpdateKindZoomBy:
		if u.ZoomBy == nil {
			return errors.New(errors.CodeCameraUpdateInvalid, "camera update: zoomBy kind requires a zoom delta")
		}
	case CameraUpdateKindZoomTo:
		if u.Zoom == nil {
			return errors.New(errors.CodeCameraUpdateInvalid, "camera update: zoomTo kind requires a zoom level")
		}
	default:
		return errors.Newf(errors.CodeCameraUpdateInvalid, "camera update: unknown kind %q", string(u.Kind))
	}
	return nil
}
