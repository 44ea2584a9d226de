package view

import (
	"context"

	"google.golang.org/grpc/codes"

	"github.com/navkit/navbridge/internal/dto"
	errs "github.com/navkit/navbridge/internal/errors"
	"github.com/navkit/navbridge/internal/types"
)

// Overlay CRUD. Creates assign identities from this view's registries
// before the batch goes out and insist on a same-length response; updates
// and removes are all-or-nothing per call, with the boundary's not-found
// code translated to a typed failure. Queries return only the overlays the
// native side can still resolve.

var notFoundTable = map[codes.Code]translation{
	codes.NotFound: {errs.CodeOverlayNotFound, "overlay no longer exists on the native side"},
}

type markersParams struct {
	Markers []dto.MarkerDTO `json:"markers"`
}

func (v *View) AddMarkers(ctx context.Context, opts []types.MarkerOptions) ([]types.Marker, error) {
	items := make([]dto.MarkerDTO, len(opts))
	for i, o := range opts {
		items[i] = dto.NewMarkerDTO(types.Marker{ID: v.markers.nextID(), Options: o})
	}
	var out []dto.MarkerDTO
	if err := v.caller.Call(ctx, "addMarkers", v.id, markersParams{Markers: items}, &out); err != nil {
		return nil, err
	}
	if len(out) != len(items) {
		return nil, errs.Newf(errs.CodeOverlayCountMismatch,
			"could not add all markers: sent %d, native returned %d", len(items), len(out))
	}
	res := make([]types.Marker, len(out))
	for i, d := range out {
		res[i] = d.ToMarker()
	}
	return res, nil
}

func (v *View) UpdateMarkers(ctx context.Context, markers []types.Marker) ([]types.Marker, error) {
	items := make([]dto.MarkerDTO, len(markers))
	for i, m := range markers {
		items[i] = dto.NewMarkerDTO(m)
	}
	var out []dto.MarkerDTO
	if err := v.caller.Call(ctx, "updateMarkers", v.id, markersParams{Markers: items}, &out); err != nil {
		return nil, translateBoundary(err, notFoundTable)
	}
	res := make([]types.Marker, len(out))
	for i, d := range out {
		res[i] = d.ToMarker()
	}
	return res, nil
}

func (v *View) RemoveMarkers(ctx context.Context, markers []types.Marker) error {
	items := make([]dto.MarkerDTO, len(markers))
	for i, m := range markers {
		items[i] = dto.NewMarkerDTO(m)
	}
	err := v.caller.Call(ctx, "removeMarkers", v.id, markersParams{Markers: items}, nil)
	return translateBoundary(err, notFoundTable)
}

func (v *View) ClearMarkers(ctx context.Context) error {
	return v.caller.Call(ctx, "clearMarkers", v.id, nil, nil)
}

// Markers returns every marker still live on the native side.
func (v *View) Markers(ctx context.Context) ([]types.Marker, error) {
	var out []*dto.MarkerDTO
	if err := v.caller.Call(ctx, "getMarkers", v.id, nil, &out); err != nil {
		return nil, err
	}
	res := make([]types.Marker, 0, len(out))
	for _, d := range out {
		if d == nil {
			continue
		}
		res = append(res, d.ToMarker())
	}
	return res, nil
}

type polygonsParams struct {
	Polygons []dto.PolygonDTO `json:"polygons"`
}

func (v *View) AddPolygons(ctx context.Context, opts []types.PolygonOptions) ([]types.Polygon, error) {
	items := make([]dto.PolygonDTO, len(opts))
	for i, o := range opts {
		items[i] = dto.NewPolygonDTO(types.Polygon{ID: v.polygons.nextID(), Options: o})
	}
	var out []dto.PolygonDTO
	if err := v.caller.Call(ctx, "addPolygons", v.id, polygonsParams{Polygons: items}, &out); err != nil {
		return nil, err
	}
	if len(out) != len(items) {
		return nil, errs.Newf(errs.CodeOverlayCountMismatch,
			"could not add all polygons: sent %d, native returned %d", len(items), len(out))
	}
	res := make([]types.Polygon, len(out))
	for i, d := range out {
		res[i] = d.ToPolygon()
	}
	return res, nil
}

func (v *View) UpdatePolygons(ctx context.Context, polygons []types.Polygon) ([]types.Polygon, error) {
	items := make([]dto.PolygonDTO, len(polygons))
	for i, p := range polygons {
		items[i] = dto.NewPolygonDTO(p)
	}
	var out []dto.PolygonDTO
	if err := v.caller.Call(ctx, "updatePolygons", v.id, polygonsParams{Polygons: items}, &out); err != nil {
		return nil, translateBoundary(err, notFoundTable)
	}
	res := make([]types.Polygon, len(out))
	for i, d := range out {
		res[i] = d.ToPolygon()
	}
	return res, nil
}

func (v *View) RemovePolygons(ctx context.Context, polygons []types.Polygon) error {
	items := make([]dto.PolygonDTO, len(polygons))
	for i, p := range polygons {
		items[i] = dto.NewPolygonDTO(p)
	}
	err := v.caller.Call(ctx, "removePolygons", v.id, polygonsParams{Polygons: items}, nil)
	return translateBoundary(err, notFoundTable)
}

func (v *View) ClearPolygons(ctx context.Context) error {
	return v.caller.Call(ctx, "clearPolygons", v.id, nil, nil)
}

// Polygons returns every polygon still live on the native side.
func (v *View) Polygons(ctx context.Context) ([]types.Polygon, error) {
	var out []*dto.PolygonDTO
	if err := v.caller.Call(ctx, "getPolygons", v.id, nil, &out); err != nil {
		return nil, err
	}
	res := make([]types.Polygon, 0, len(out))
	for _, d := range out {
		if d == nil {
			continue
		}
		res = append(res, d.ToPolygon())
	}
	return res, nil
}

type polylinesParams struct {
	Polylines []dto.PolylineDTO `json:"polylines"`
}

func (v *View) AddPolylines(ctx context.Context, opts []types.PolylineOptions) ([]types.Polyline, error) {
	items := make([]dto.PolylineDTO, len(opts))
	for i, o := range opts {
		items[i] = dto.NewPolylineDTO(types.Polyline{ID: v.polylines.nextID(), Options: o})
	}
	var out []dto.PolylineDTO
	if err := v.caller.Call(ctx, "addPolylines", v.id, polylinesParams{Polylines: items}, &out); err != nil {
		return nil, err
	}
	if len(out) != len(items) {
		return nil, errs.Newf(errs.CodeOverlayCountMismatch,
			"could not add all polylines: sent %d, native returned %d", len(items), len(out))
	}
	res := make([]types.Polyline, len(out))
	for i, d := range out {
		res[i] = d.ToPolyline()
	}
	return res, nil
}

func (v *View) UpdatePolylines(ctx context.Context, polylines []types.Polyline) ([]types.Polyline, error) {
	items := make([]dto.PolylineDTO, len(polylines))
	for i, p := range polylines {
		items[i] = dto.NewPolylineDTO(p)
	}
	var out []dto.PolylineDTO
	if err := v.caller.Call(ctx, "updatePolylines", v.id, polylinesParams{Polylines: items}, &out); err != nil {
		return nil, translateBoundary(err, notFoundTable)
	}
	res := make([]types.Polyline, len(out))
	for i, d := range out {
		res[i] = d.ToPolyline()
	}
	return res, nil
}

func (v *View) RemovePolylines(ctx context.Context, polylines []types.Polyline) error {
	items := make([]dto.PolylineDTO, len(polylines))
	for i, p := range polylines {
		items[i] = dto.NewPolylineDTO(p)
	}
	err := v.caller.Call(ctx, "removePolylines", v.id, polylinesParams{Polylines: items}, nil)
	return translateBoundary(err, notFoundTable)
}

func (v *View) ClearPolylines(ctx context.Context) error {
	return v.caller.Call(ctx, "clearPolylines", v.id, nil, nil)
}

// Polylines returns every polyline still live on the native side.
func (v *View) Polylines(ctx context.Context) ([]types.Polyline, error) {
	var out []*dto.PolylineDTO
	if err := v.caller.Call(ctx, "getPolylines", v.id, nil, &out); err != nil {
		return nil, err
	}
	res := make([]types.Polyline, 0, len(out))
	for _, d := range out {
		if d == nil {
			continue
		}
		res = append(res, d.ToPolyline())
	}
	return res, nil
}

type circlesParams struct {
	Circles []dto.CircleDTO `json:"circles"`
}

func (v *View) AddCircles(ctx context.Context, opts []types.CircleOptions) ([]types.Circle, error) {
	items := make([]dto.CircleDTO, len(opts))
	for i, o := range opts {
		items[i] = dto.NewCircleDTO(types.Circle{ID: v.circles.nextID(), Options: o})
	}
	var out []dto.CircleDTO
	if err := v.caller.Call(ctx, "addCircles", v.id, circlesParams{Circles: items}, &out); err != nil {
		return nil, err
	}
	if len(out) != len(items) {
		return nil, errs.Newf(errs.CodeOverlayCountMismatch,
			"could not add all circles: sent %d, native returned %d", len(items), len(out))
	}
	res := make([]types.Circle, len(out))
	for i, d := range out {
		res[i] = d.ToCircle()
	}
	return res, nil
}

func (v *View) UpdateCircles(ctx context.Context, circles []types.Circle) ([]types.Circle, error) {
	items := make([]dto.CircleDTO, len(circles))
	for i, c := range circles {
		items[i] = dto.NewCircleDTO(c)
	}
	var out []dto.CircleDTO
	if err := v.caller.Call(ctx, "updateCircles", v.id, circlesParams{Circles: items}, &out); err != nil {
		return nil, translateBoundary(err, notFoundTable)
	}
	res := make([]types.Circle, len(out))
	for i, d := range out {
		res[i] = d.ToCircle()
	}
	return res, nil
}

func (v *View) RemoveCircles(ctx context.Context, circles []types.Circle) error {
	items := make([]dto.CircleDTO, len(circles))
	for i, c := range circles {
		items[i] = dto.NewCircleDTO(c)
	}
	err := v.caller.Call(ctx, "removeCircles", v.id, circlesParams{Circles: items}, nil)
	return translateBoundary(err, notFoundTable)
}

func (v *View) ClearCircles(ctx context.Context) error {
	return v.caller.Call(ctx, "clearCircles", v.id, nil, nil)
}

// Circles returns every circle still live on the native side.
func (v *View) Circles(ctx context.Context) ([]types.Circle, error) {
	var out []*dto.CircleDTO
	if err := v.caller.Call(ctx, "getCircles", v.id, nil, &out); err != nil {
		return nil, err
	}
	res := make([]types.Circle, 0, len(out))
	for _, d := range out {
		if d == nil {
			continue
		}
		res = append(res, d.ToCircle())
	}
	return res, nil
}

// Clear removes every overlay of every domain from the view.
func (v *View) Clear(ctx context.Context) error {
	return v.caller.Call(ctx, "clear", v.id, nil, nil)
}
