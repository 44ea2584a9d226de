package view

import (
	"fmt"
	"testing"
)

func TestRegistryIdentityFormat(t *testing.T) {
	r := newRegistry("Marker")

	for i := 0; i < 5; i++ {
		want := fmt.Sprintf("Marker_%d", i)
		if got := r.nextID(); got != want {
			t.Fatalf("expected %s, got %s", want, got)
		}
	}
}

func TestRegistryIdentitiesUnique(t *testing.T) {
	r := newRegistry("Circle")

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := r.nextID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate identity %s", id)
		}
		seen[id] = struct{}{}
	}
}

func TestRegistriesIndependentPerDomain(t *testing.T) {
	v := New(1, nil, nil)

	if got := v.markers.nextID(); got != "Marker_0" {
		t.Fatalf("expected Marker_0, got %s", got)
	}
	if got := v.markers.nextID(); got != "Marker_1" {
		t.Fatalf("expected Marker_1, got %s", got)
	}
	// other domains still start at zero
	if got := v.polygons.nextID(); got != "Polygon_0" {
		t.Fatalf("expected Polygon_0, got %s", got)
	}
	if got := v.polylines.nextID(); got != "Polyline_0" {
		t.Fatalf("expected Polyline_0, got %s", got)
	}
	if got := v.circles.nextID(); got != "Circle_0" {
		t.Fatalf("expected Circle_0, got %s", got)
	}
}

func TestRegistriesIndependentPerView(t *testing.T) {
	a := New(1, nil, nil)
	b := New(2, nil, nil)

	a.markers.nextID()
	a.markers.nextID()

	if got := b.markers.nextID(); got != "Marker_0" {
		t.Fatalf("expected fresh counter on second view, got %s", got)
	}
}
