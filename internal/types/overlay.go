package types

// MarkerOptions is the mutable state of a marker.
type MarkerOptions struct {
	Position  LatLng
	Title     string
	Snippet   string
	Alpha     float64
	Rotation  float64
	Draggable bool
	Flat      bool
	Clickable bool
	Visible   bool
	ZIndex    float64
	Tag       string
}

// Marker is a marker overlay with its bridge-assigned identity.
type Marker struct {
	ID      string
	Options MarkerOptions
}

// PolygonOptions is the mutable state of a polygon.
type PolygonOptions struct {
	Points      []LatLng
	Holes       [][]LatLng
	StrokeColor uint32
	StrokeWidth float64
	FillColor   uint32
	Geodesic    bool
	Clickable   bool
	Visible     bool
	ZIndex      float64
	Tag         string
}

// Polygon is a polygon overlay with its bridge-assigned identity.
type Polygon struct {
	ID      string
	Options PolygonOptions
}

// PolylineOptions is the mutable state of a polyline.
type PolylineOptions struct {
	Points    []LatLng
	Color     uint32
	Width     float64
	Geodesic  bool
	Clickable bool
	Visible   bool
	ZIndex    float64
	Tag       string
}

// Polyline is a polyline overlay with its bridge-assigned identity.
type Polyline struct {
	ID      string
	Options PolylineOptions
}

// CircleOptions is the mutable state of a circle.
type CircleOptions struct {
	Center      LatLng
	Radius      float64
	StrokeColor uint32
	StrokeWidth float64
	FillColor   uint32
	Clickable   bool
	Visible     bool
	ZIndex      float64
	Tag         string
}

// Circle is a circle overlay with its bridge-assigned identity.
type Circle struct {
	ID      string
	Options CircleOptions
}
