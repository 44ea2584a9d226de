package types

import (
	"testing"

	"github.com/navkit/navbridge/internal/errors"
)

func TestCameraUpdateConstructorsValid(t *testing.T) {
	focus := LatLng{Latitude: 1, Longitude: 2}

	updates := []CameraUpdate{
		NewCameraUpdatePosition(CameraPosition{Target: focus, Zoom: 10}),
		NewCameraUpdateLatLng(focus),
		NewCameraUpdateLatLngBounds(LatLngBounds{Southwest: focus, Northeast: focus}, 20),
		NewCameraUpdateLatLngZoom(focus, 12),
		NewCameraUpdateScrollBy(10, -10),
		NewCameraUpdateZoomBy(1.5, &focus),
		NewCameraUpdateZoomBy(-1, nil),
		NewCameraUpdateZoomTo(8),
	}
	for _, u := range updates {
		if err := u.Validate(); err != nil {
			t.Fatalf("%s: unexpected validation error: %v", u.Kind, err)
		}
	}
}

func TestCameraUpdateValidateMissingFields(t *testing.T) {
	zoom := 5.0

	tests := []struct {
		name   string
		update CameraUpdate
	}{
		{"position without payload", CameraUpdate{Kind: CameraUpdateKindPosition}},
		{"latLng without point", CameraUpdate{Kind: CameraUpdateKindLatLng}},
		{"bounds without bounds", CameraUpdate{Kind: CameraUpdateKindLatLngBounds, Padding: 10}},
		{"latLngZoom without point", CameraUpdate{Kind: CameraUpdateKindLatLngZoom, Zoom: &zoom}},
		{"latLngZoom without zoom", CameraUpdate{Kind: CameraUpdateKindLatLngZoom, Point: &LatLng{}}},
		{"zoomBy without delta", CameraUpdate{Kind: CameraUpdateKindZoomBy}},
		{"zoomTo without zoom", CameraUpdate{Kind: CameraUpdateKindZoomTo}},
		{"unknown kind", CameraUpdate{Kind: "warp"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.update.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.IsCode(err, errors.CodeCameraUpdateInvalid) {
				t.Fatalf("expected CodeCameraUpdateInvalid, got %v", err)
			}
		})
	}
}

func TestLatLngBoundsContains(t *testing.T) {
	b := LatLngBounds{
		Southwest: LatLng{Latitude: -10, Longitude: -20},
		Northeast: LatLng{Latitude: 10, Longitude: 20},
	}

	if !b.Contains(LatLng{Latitude: 0, Longitude: 0}) {
		t.Fatal("expected origin inside bounds")
	}
	if b.Contains(LatLng{Latitude: 11, Longitude: 0}) {
		t.Fatal("expected point north of bounds to be outside")
	}

	// bounds straddling the antimeridian
	am := LatLngBounds{
		Southwest: LatLng{Latitude: -10, Longitude: 170},
		Northeast: LatLng{Latitude: 10, Longitude: -170},
	}
	if !am.Contains(LatLng{Latitude: 0, Longitude: 175}) {
		t.Fatal("expected point east of the antimeridian inside bounds")
	}
	if !am.Contains(LatLng{Latitude: 0, Longitude: -175}) {
		t.Fatal("expected point west of the antimeridian inside bounds")
	}
	if am.Contains(LatLng{Latitude: 0, Longitude: 0}) {
		t.Fatal("expected point far from the antimeridian outside bounds")
	}
}
