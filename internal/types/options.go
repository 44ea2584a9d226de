package types

// MapType selects the base map imagery.
type MapType string

const (
	MapTypeNone      MapType = "none"
	MapTypeNormal    MapType = "normal"
	MapTypeSatellite MapType = "satellite"
	MapTypeTerrain   MapType = "terrain"
	MapTypeHybrid    MapType = "hybrid"
)

// MapOptions configures a map view at creation time. Individual fields can
// be changed later through their own setter calls; the bundle itself is
// never diffed or merged.
type MapOptions struct {
	CameraPosition        CameraPosition
	MapType               MapType
	CompassEnabled        bool
	RotateGesturesEnabled bool
	ScrollGesturesEnabled bool
	TiltGesturesEnabled   bool
	ZoomGesturesEnabled   bool
	MinZoom               *float64
	MaxZoom               *float64
	CameraTargetBounds    *LatLngBounds
	Style                 *string
}

// NavigationUIOptions configures the navigation chrome at creation time.
type NavigationUIOptions struct {
	HeaderEnabled          bool
	FooterEnabled          bool
	SpeedLimitIconEnabled  bool
	SpeedometerEnabled     bool
	IncidentCardsEnabled   bool
	RecenterButtonEnabled  bool
	TripProgressBarEnabled bool
}
