package view

import (
	"context"

	"google.golang.org/grpc/codes"

	errs "github.com/navkit/navbridge/internal/errors"
)

type boolParams struct {
	Enabled bool `json:"enabled"`
}

func (v *View) getBool(ctx context.Context, method string) (bool, error) {
	var out bool
	if err := v.caller.Call(ctx, method, v.id, nil, &out); err != nil {
		return false, err
	}
	return out, nil
}

func (v *View) setBool(ctx context.Context, method string, enabled bool) error {
	return v.caller.Call(ctx, method, v.id, boolParams{Enabled: enabled}, nil)
}

// Platform-conditional toggles report codes.Unimplemented when the native
// platform lacks the control; that translates to CodeUnsupportedFeature so
// callers can branch on capability, on queries as much as on setters.
func (v *View) getGatedBool(ctx context.Context, method string) (bool, error) {
	out, err := v.getBool(ctx, method)
	return out, translateBoundary(err, capabilityTable)
}

func (v *View) setGatedBool(ctx context.Context, method string, enabled bool) error {
	return translateBoundary(v.setBool(ctx, method, enabled), capabilityTable)
}

var capabilityTable = map[codes.Code]translation{
	codes.Unimplemented: {errs.CodeUnsupportedFeature, "feature not supported on this platform"},
}

func (v *View) IsCompassEnabled(ctx context.Context) (bool, error) {
	return v.getBool(ctx, "isCompassEnabled")
}

func (v *View) SetCompassEnabled(ctx context.Context, enabled bool) error {
	return v.setBool(ctx, "setCompassEnabled", enabled)
}

func (v *View) IsZoomGesturesEnabled(ctx context.Context) (bool, error) {
	return v.getBool(ctx, "isZoomGesturesEnabled")
}

func (v *View) SetZoomGesturesEnabled(ctx context.Context, enabled bool) error {
	return v.setBool(ctx, "setZoomGesturesEnabled", enabled)
}

func (v *View) IsScrollGesturesEnabled(ctx context.Context) (bool, error) {
	return v.getBool(ctx, "isScrollGesturesEnabled")
}

func (v *View) SetScrollGesturesEnabled(ctx context.Context, enabled bool) error {
	return v.setBool(ctx, "setScrollGesturesEnabled", enabled)
}

func (v *View) IsRotateGesturesEnabled(ctx context.Context) (bool, error) {
	return v.getBool(ctx, "isRotateGesturesEnabled")
}

func (v *View) SetRotateGesturesEnabled(ctx context.Context, enabled bool) error {
	return v.setBool(ctx, "setRotateGesturesEnabled", enabled)
}

func (v *View) IsTiltGesturesEnabled(ctx context.Context) (bool, error) {
	return v.getBool(ctx, "isTiltGesturesEnabled")
}

func (v *View) SetTiltGesturesEnabled(ctx context.Context, enabled bool) error {
	return v.setBool(ctx, "setTiltGesturesEnabled", enabled)
}

func (v *View) IsTrafficEnabled(ctx context.Context) (bool, error) {
	return v.getBool(ctx, "isTrafficEnabled")
}

func (v *View) SetTrafficEnabled(ctx context.Context, enabled bool) error {
	return v.setBool(ctx, "setTrafficEnabled", enabled)
}

func (v *View) IsNavigationHeaderEnabled(ctx context.Context) (bool, error) {
	return v.getBool(ctx, "isNavigationHeaderEnabled")
}

func (v *View) SetNavigationHeaderEnabled(ctx context.Context, enabled bool) error {
	return v.setBool(ctx, "setNavigationHeaderEnabled", enabled)
}

func (v *View) IsNavigationFooterEnabled(ctx context.Context) (bool, error) {
	return v.getBool(ctx, "isNavigationFooterEnabled")
}

func (v *View) SetNavigationFooterEnabled(ctx context.Context, enabled bool) error {
	return v.setBool(ctx, "setNavigationFooterEnabled", enabled)
}

func (v *View) IsSpeedLimitIconEnabled(ctx context.Context) (bool, error) {
	return v.getBool(ctx, "isSpeedLimitIconEnabled")
}

func (v *View) SetSpeedLimitIconEnabled(ctx context.Context, enabled bool) error {
	return v.setBool(ctx, "setSpeedLimitIconEnabled", enabled)
}

func (v *View) IsSpeedometerEnabled(ctx context.Context) (bool, error) {
	return v.getBool(ctx, "isSpeedometerEnabled")
}

func (v *View) SetSpeedometerEnabled(ctx context.Context, enabled bool) error {
	return v.setBool(ctx, "setSpeedometerEnabled", enabled)
}

func (v *View) IsIncidentCardsEnabled(ctx context.Context) (bool, error) {
	return v.getBool(ctx, "isIncidentCardsEnabled")
}

func (v *View) SetIncidentCardsEnabled(ctx context.Context, enabled bool) error {
	return v.setBool(ctx, "setIncidentCardsEnabled", enabled)
}

func (v *View) IsRecenterButtonEnabled(ctx context.Context) (bool, error) {
	return v.getBool(ctx, "isRecenterButtonEnabled")
}

func (v *View) SetRecenterButtonEnabled(ctx context.Context, enabled bool) error {
	return v.setBool(ctx, "setRecenterButtonEnabled", enabled)
}

func (v *View) IsTripProgressBarEnabled(ctx context.Context) (bool, error) {
	return v.getBool(ctx, "isTripProgressBarEnabled")
}

func (v *View) SetTripProgressBarEnabled(ctx context.Context, enabled bool) error {
	return v.setBool(ctx, "setTripProgressBarEnabled", enabled)
}

// Zoom controls exist only on platforms whose native SDK renders them.

func (v *View) IsZoomControlsEnabled(ctx context.Context) (bool, error) {
	return v.getGatedBool(ctx, "isZoomControlsEnabled")
}

func (v *View) SetZoomControlsEnabled(ctx context.Context, enabled bool) error {
	return v.setGatedBool(ctx, "setZoomControlsEnabled", enabled)
}

// The map toolbar is likewise platform-conditional.

func (v *View) IsMapToolbarEnabled(ctx context.Context) (bool, error) {
	return v.getGatedBool(ctx, "isMapToolbarEnabled")
}

func (v *View) SetMapToolbarEnabled(ctx context.Context, enabled bool) error {
	return v.setGatedBool(ctx, "setMapToolbarEnabled", enabled)
}
