// Package dto holds the plain data structures marshaled across the native
// boundary, plus lossless converters to and from the domain types. DTOs
// carry no behavior; field names are fixed by the wire contract.
package dto

import (
	"github.com/navkit/navbridge/internal/types"
)

// LatLngDTO mirrors types.LatLng.
type LatLngDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewLatLngDTO converts a domain point to its wire form.
func NewLatLngDTO(v types.LatLng) LatLngDTO {
	return LatLngDTO{Latitude: v.Latitude, Longitude: v.Longitude}
}

// ToLatLng converts back to the domain point.
func (d LatLngDTO) ToLatLng() types.LatLng {
	return types.LatLng{Latitude: d.Latitude, Longitude: d.Longitude}
}

// LatLngBoundsDTO mirrors types.LatLngBounds.
type LatLngBoundsDTO struct {
	Southwest LatLngDTO `json:"southwest"`
	Northeast LatLngDTO `json:"northeast"`
}

// NewLatLngBoundsDTO converts domain bounds to their wire form.
func NewLatLngBoundsDTO(v types.LatLngBounds) LatLngBoundsDTO {
	return LatLngBoundsDTO{
		Southwest: NewLatLngDTO(v.Southwest),
		Northeast: NewLatLngDTO(v.Northeast),
	}
}

// ToLatLngBounds converts back to the domain bounds.
func (d LatLngBoundsDTO) ToLatLngBounds() types.LatLngBounds {
	return types.LatLngBounds{
		Southwest: d.Southwest.ToLatLng(),
		Northeast: d.Northeast.ToLatLng(),
	}
}

// CameraPositionDTO mirrors types.CameraPosition.
type CameraPositionDTO struct {
	Target  LatLngDTO `json:"target"`
	Zoom    float64   `json:"zoom"`
	Bearing float64   `json:"bearing"`
	Tilt    float64   `json:"tilt"`
}

// NewCameraPositionDTO converts a domain camera position to its wire form.
func NewCameraPositionDTO(v types.CameraPosition) CameraPositionDTO {
	return CameraPositionDTO{
		Target:  NewLatLngDTO(v.Target),
		Zoom:    v.Zoom,
		Bearing: v.Bearing,
		Tilt:    v.Tilt,
	}
}

// ToCameraPosition converts back to the domain camera position.
func (d CameraPositionDTO) ToCameraPosition() types.CameraPosition {
	return types.CameraPosition{
		Target:  d.Target.ToLatLng(),
		Zoom:    d.Zoom,
		Bearing: d.Bearing,
		Tilt:    d.Tilt,
	}
}

// EdgeInsetsDTO mirrors types.EdgeInsets.
type EdgeInsetsDTO struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Bottom float64 `json:"bottom"`
	Right  float64 `json:"right"`
}

// NewEdgeInsetsDTO converts domain insets to their wire form.
func NewEdgeInsetsDTO(v types.EdgeInsets) EdgeInsetsDTO {
	return EdgeInsetsDTO{Top: v.Top, Left: v.Left, Bottom: v.Bottom, Right: v.Right}
}

// ToEdgeInsets converts back to the domain insets.
func (d EdgeInsetsDTO) ToEdgeInsets() types.EdgeInsets {
	return types.EdgeInsets{Top: d.Top, Left: d.Left, Bottom: d.Bottom, Right: d.Right}
}

// MapOptionsDTO mirrors types.MapOptions.
type MapOptionsDTO struct {
	CameraPosition        CameraPositionDTO `json:"cameraPosition"`
	MapType               string            `json:"mapType"`
	CompassEnabled        bool              `json:"compassEnabled"`
	RotateGesturesEnabled bool              `json:"rotateGesturesEnabled"`
	ScrollGesturesEnabled bool              `json:"scrollGesturesEnabled"`
	TiltGesturesEnabled   bool              `json:"tiltGesturesEnabled"`
	ZoomGesturesEnabled   bool              `json:"zoomGesturesEnabled"`
	MinZoom               *float64          `json:"minZoom,omitempty"`
	MaxZoom               *float64          `json:"maxZoom,omitempty"`
	CameraTargetBounds    *LatLngBoundsDTO  `json:"cameraTargetBounds,omitempty"`
	Style                 *string           `json:"style,omitempty"`
}

// NewMapOptionsDTO converts domain map options to their wire form.
func NewMapOptionsDTO(v types.MapOptions) MapOptionsDTO {
	d := MapOptionsDTO{
		CameraPosition:        NewCameraPositionDTO(v.CameraPosition),
		MapType:               string(v.MapType),
		CompassEnabled:        v.CompassEnabled,
		RotateGesturesEnabled: v.RotateGesturesEnabled,
		ScrollGesturesEnabled: v.ScrollGesturesEnabled,
		TiltGesturesEnabled:   v.TiltGesturesEnabled,
		ZoomGesturesEnabled:   v.ZoomGesturesEnabled,
	}
	if v.MinZoom != nil {
		z := *v.MinZoom
		d.MinZoom = &z
	}
	if v.MaxZoom != nil {
		z := *v.MaxZoom
		d.MaxZoom = &z
	}
	if v.CameraTargetBounds != nil {
		b := NewLatLngBoundsDTO(*v.CameraTargetBounds)
		d.CameraTargetBounds = &b
	}
	if v.Style != nil {
		s := *v.Style
		d.Style = &s
	}
	return d
}

// ToMapOptions converts back to the domain map options.
func (d MapOptionsDTO) ToMapOptions() types.MapOptions {
	v := types.MapOptions{
		CameraPosition:        d.CameraPosition.ToCameraPosition(),
		MapType:               types.MapType(d.MapType),
		CompassEnabled:        d.CompassEnabled,
		RotateGesturesEnabled: d.RotateGesturesEnabled,
		ScrollGesturesEnabled: d.ScrollGesturesEnabled,
		TiltGesturesEnabled:   d.TiltGesturesEnabled,
		ZoomGesturesEnabled:   d.ZoomGesturesEnabled,
	}
	if d.MinZoom != nil {
		z := *d.MinZoom
		v.MinZoom = &z
	}
	if d.MaxZoom != nil {
		z := *d.MaxZoom
		v.MaxZoom = &z
	}
	if d.CameraTargetBounds != nil {
		b := d.CameraTargetBounds.ToLatLngBounds()
		v.CameraTargetBounds = &b
	}
	if d.Style != nil {
		s := *d.Style
		v.Style = &s
	}
	return v
}

// NavigationUIOptionsDTO mirrors types.NavigationUIOptions.
type NavigationUIOptionsDTO struct {
	HeaderEnabled          bool `json:"headerEnabled"`
	FooterEnabled          bool `json:"footerEnabled"`
	SpeedLimitIconEnabled  bool `json:"speedLimitIconEnabled"`
	SpeedometerEnabled     bool `json:"speedometerEnabled"`
	IncidentCardsEnabled   bool `json:"incidentCardsEnabled"`
	RecenterButtonEnabled  bool `json:"recenterButtonEnabled"`
	TripProgressBarEnabled bool `json:"tripProgressBarEnabled"`
}

// NewNavigationUIOptionsDTO converts domain navigation UI options to their
// wire form.
func NewNavigationUIOptionsDTO(v types.NavigationUIOptions) NavigationUIOptionsDTO {
	return NavigationUIOptionsDTO(v)
}

// ToNavigationUIOptions converts back to the domain options.
func (d NavigationUIOptionsDTO) ToNavigationUIOptions() types.NavigationUIOptions {
	return types.NavigationUIOptions(d)
}
