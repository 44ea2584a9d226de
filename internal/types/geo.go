package types

// LatLng is a geographic point in degrees.
type LatLng struct {
	Latitude  float64
	Longitude float64
}

// LatLngBounds is a rectangle aligned to the lat/lng grid.
type LatLngBounds struct {
	Southwest LatLng
	Northeast LatLng
}

// Contains reports whether the point lies inside the bounds.
func (b LatLngBounds) Contains(p LatLng) bool {
	if p.Latitude < b.Southwest.Latitude || p.Latitude > b.Northeast.Latitude {
		return false
	}
	if b.Southwest.Longitude <= b.Northeast.Longitude {
		return p.Longitude >= b.Southwest.Longitude && p.Longitude <= b.Northeast.Longitude
	}
	// bounds crossing the antimeridian
	return p.Longitude >= b.Southwest.Longitude || p.Longitude <= b.Northeast.Longitude
}

// EdgeInsets is padding around the visible map region, in screen points.
type EdgeInsets struct {
	Top    float64
	Left   float64
	Bottom float64
	Right  float64
}

// CameraPosition describes where the camera looks and how.
type CameraPosition struct {
	Target  LatLng
	Zoom    float64
	Bearing float64
	Tilt    float64
}
