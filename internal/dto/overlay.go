package dto

import (
	"github.com/navkit/navbridge/internal/types"
)

// MarkerOptionsDTO mirrors types.MarkerOptions.
type MarkerOptionsDTO struct {
	Position  LatLngDTO `json:"position"`
	Title     string    `json:"title,omitempty"`
	Snippet   string    `json:"snippet,omitempty"`
	Alpha     float64   `json:"alpha"`
	Rotation  float64   `json:"rotation"`
	Draggable bool      `json:"draggable"`
	Flat      bool      `json:"flat"`
	Clickable bool      `json:"clickable"`
	Visible   bool      `json:"visible"`
	ZIndex    float64   `json:"zIndex"`
	Tag       string    `json:"tag,omitempty"`
}

// MarkerDTO pairs a marker identity with its options.
type MarkerDTO struct {
	MarkerID string           `json:"markerId"`
	Options  MarkerOptionsDTO `json:"options"`
}

// NewMarkerDTO converts a domain marker to its wire form.
func NewMarkerDTO(v types.Marker) MarkerDTO {
	o := v.Options
	return MarkerDTO{
		MarkerID: v.ID,
		Options: MarkerOptionsDTO{
			Position:  NewLatLngDTO(o.Position),
			Title:     o.Title,
			Snippet:   o.Snippet,
			Alpha:     o.Alpha,
			Rotation:  o.Rotation,
			Draggable: o.Draggable,
			Flat:      o.Flat,
			Clickable: o.Clickable,
			Visible:   o.Visible,
			ZIndex:    o.ZIndex,
			Tag:       o.Tag,
		},
	}
}

// ToMarker converts back to the domain marker.
func (d MarkerDTO) ToMarker() types.Marker {
	o := d.Options
	return types.Marker{
		ID: d.MarkerID,
		Options: types.MarkerOptions{
			Position:  o.Position.ToLatLng(),
			Title:     o.Title,
			Snippet:   o.Snippet,
			Alpha:     o.Alpha,
			Rotation:  o.Rotation,
			Draggable: o.Draggable,
			Flat:      o.Flat,
			Clickable: o.Clickable,
			Visible:   o.Visible,
			ZIndex:    o.ZIndex,
			Tag:       o.Tag,
		},
	}
}

// PolygonOptionsDTO mirrors types.PolygonOptions.
type PolygonOptionsDTO struct {
	Points      []LatLngDTO   `json:"points"`
	Holes       [][]LatLngDTO `json:"holes,omitempty"`
	StrokeColor uint32        `json:"strokeColor"`
	StrokeWidth float64       `json:"strokeWidth"`
	FillColor   uint32        `json:"fillColor"`
	Geodesic    bool          `json:"geodesic"`
	Clickable   bool          `json:"clickable"`
	Visible     bool          `json:"visible"`
	ZIndex      float64       `json:"zIndex"`
	Tag         string        `json:"tag,omitempty"`
}

// PolygonDTO pairs a polygon identity with its options.
type PolygonDTO struct {
	PolygonID string            `json:"polygonId"`
	Options   PolygonOptionsDTO `json:"options"`
}

// NewPolygonDTO converts a domain polygon to its wire form.
func NewPolygonDTO(v types.Polygon) PolygonDTO {
	o := v.Options
	d := PolygonOptionsDTO{
		Points:      newLatLngSlice(o.Points),
		StrokeColor: o.StrokeColor,
		StrokeWidth: o.StrokeWidth,
		FillColor:   o.FillColor,
		Geodesic:    o.Geodesic,
		Clickable:   o.Clickable,
		Visible:     o.Visible,
		ZIndex:      o.ZIndex,
		Tag:         o.Tag,
	}
	if len(o.Holes) > 0 {
		d.Holes = make([][]LatLngDTO, len(o.Holes))
		for i, hole := range o.Holes {
			d.Holes[i] = newLatLngSlice(hole)
		}
	}
	return PolygonDTO{PolygonID: v.ID, Options: d}
}

// ToPolygon converts back to the domain polygon.
func (d PolygonDTO) ToPolygon() types.Polygon {
	o := d.Options
	v := types.PolygonOptions{
		Points:      toLatLngSlice(o.Points),
		StrokeColor: o.StrokeColor,
		StrokeWidth: o.StrokeWidth,
		FillColor:   o.FillColor,
		Geodesic:    o.Geodesic,
		Clickable:   o.Clickable,
		Visible:     o.Visible,
		ZIndex:      o.ZIndex,
		Tag:         o.Tag,
	}
	if len(o.Holes) > 0 {
		v.Holes = make([][]types.LatLng, len(o.Holes))
		for i, hole := range o.Holes {
			v.Holes[i] = toLatLngSlice(hole)
		}
	}
	return types.Polygon{ID: d.PolygonID, Options: v}
}

// PolylineOptionsDTO mirrors types.PolylineOptions.
type PolylineOptionsDTO struct {
	Points    []LatLngDTO `json:"points"`
	Color     uint32      `json:"color"`
	Width     float64     `json:"width"`
	Geodesic  bool        `json:"geodesic"`
	Clickable bool        `json:"clickable"`
	Visible   bool        `json:"visible"`
	ZIndex    float64     `json:"zIndex"`
	Tag       string      `json:"tag,omitempty"`
}

// PolylineDTO pairs a polyline identity with its options.
type PolylineDTO struct {
	PolylineID string             `json:"polylineId"`
	Options    PolylineOptionsDTO `json:"options"`
}

// NewPolylineDTO converts a domain polyline to its wire form.
func NewPolylineDTO(v types.Polyline) PolylineDTO {
	o := v.Options
	return PolylineDTO{
		PolylineID: v.ID,
		Options: PolylineOptionsDTO{
			Points:    newLatLngSlice(o.Points),
			Color:     o.Color,
			Width:     o.Width,
			Geodesic:  o.Geodesic,
			Clickable: o.Clickable,
			Visible:   o.Visible,
			ZIndex:    o.ZIndex,
			Tag:       o.Tag,
		},
	}
}

// ToPolyline converts back to the domain polyline.
func (d PolylineDTO) ToPolyline() types.Polyline {
	o := d.Options
	return types.Polyline{
		ID: d.PolylineID,
		Options: types.PolylineOptions{
			Points:    toLatLngSlice(o.Points),
			Color:     o.Color,
			Width:     o.Width,
			Geodesic:  o.Geodesic,
			Clickable: o.Clickable,
			Visible:   o.Visible,
			ZIndex:    o.ZIndex,
			Tag:       o.Tag,
		},
	}
}

// CircleOptionsDTO mirrors types.CircleOptions.
type CircleOptionsDTO struct {
	Center      LatLngDTO `json:"center"`
	Radius      float64   `json:"radius"`
	StrokeColor uint32    `json:"strokeColor"`
	StrokeWidth float64   `json:"strokeWidth"`
	FillColor   uint32    `json:"fillColor"`
	Clickable   bool      `json:"clickable"`
	Visible     bool      `json:"visible"`
	ZIndex      float64   `json:"zIndex"`
	Tag         string    `json:"tag,omitempty"`
}

// CircleDTO pairs a circle identity with its options.
type CircleDTO struct {
	CircleID string           `json:"circleId"`
	Options  CircleOptionsDTO `json:"options"`
}

// NewCircleDTO converts a domain circle to its wire form.
func NewCircleDTO(v types.Circle) CircleDTO {
	o := v.Options
	return CircleDTO{
		CircleID: v.ID,
		Options: CircleOptionsDTO{
			Center:      NewLatLngDTO(o.Center),
			Radius:      o.Radius,
			StrokeColor: o.StrokeColor,
			StrokeWidth: o.StrokeWidth,
			FillColor:   o.FillColor,
			Clickable:   o.Clickable,
			Visible:     o.Visible,
			ZIndex:      o.ZIndex,
			Tag:         o.Tag,
		},
	}
}

// ToCircle converts back to the domain circle.
func (d CircleDTO) ToCircle() types.Circle {
	o := d.Options
	return types.Circle{
		ID: d.CircleID,
		Options: types.CircleOptions{
			Center:      o.Center.ToLatLng(),
			Radius:      o.Radius,
			StrokeColor: o.StrokeColor,
			StrokeWidth: o.StrokeWidth,
			FillColor:   o.FillColor,
			Clickable:   o.Clickable,
			Visible:     o.Visible,
			ZIndex:      o.ZIndex,
			Tag:         o.Tag,
		},
	}
}

func newLatLngSlice(points []types.LatLng) []LatLngDTO {
	if points == nil {
		return nil
	}
	out := make([]LatLngDTO, len(points))
	for i, p := range points {
		out[i] = NewLatLngDTO(p)
	}
	return out
}

func toLatLngSlice(points []LatLngDTO) []types.LatLng {
	if points == nil {
		return nil
	}
	out := make([]types.LatLng, len(points))
	for i, p := range points {
		out[i] = p.ToLatLng()
	}
	return out
}
