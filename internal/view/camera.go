package view

import (
	"context"
	"time"

	"github.com/navkit/navbridge/internal/dto"
	"github.com/navkit/navbridge/internal/events"
	"github.com/navkit/navbridge/internal/types"
)

// AnimateOption tunes a camera animation.
type AnimateOption func(*animateOptions)

type animateOptions struct {
	durationMS *int64
	completion bool
}

// WithDuration overrides the native side's default animation duration.
func WithDuration(d time.Duration) AnimateOption {
	return func(o *animateOptions) {
		ms := d.Milliseconds()
		o.durationMS = &ms
	}
}

// WithCompletion requests a completion signal. AnimateCamera then returns a
// one-shot channel resolved when the native side reports the animation
// finished. On platforms without end-to-end completion signaling the
// channel is never resolved; no value is fabricated.
func WithCompletion() AnimateOption {
	return func(o *animateOptions) {
		o.completion = true
	}
}

// CameraPosition returns the camera's current position.
func (v *View) CameraPosition(ctx context.Context) (types.CameraPosition, error) {
	var out dto.CameraPositionDTO
	if err := v.caller.Call(ctx, "getCameraPosition", v.id, nil, &out); err != nil {
		return types.CameraPosition{}, err
	}
	return out.ToCameraPosition(), nil
}

// MoveCamera applies a camera update instantly. Fire-and-forget with
// respect to completion: there is no completion signal for moves.
func (v *View) MoveCamera(ctx context.Context, update types.CameraUpdate) error {
	if err := update.Validate(); err != nil {
		return err
	}
	suffix, params := cameraCall(update, nil, nil)
	return v.caller.Call(ctx, "moveCamera"+suffix, v.id, params, nil)
}

// AnimateCamera applies a camera update as an animation. The returned
// channel is non-nil only when WithCompletion was given; it receives true
// once if the animation ran to its end, false once if it was interrupted,
// and nothing at all when the platform cannot signal completion. The call
// itself returns as soon as the native side acknowledges the command.
func (v *View) AnimateCamera(ctx context.Context, update types.CameraUpdate, opts ...AnimateOption) (<-chan bool, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}
	var o animateOptions
	for _, opt := range opts {
		opt(&o)
	}

	var done chan bool
	var token *uint64
	if o.completion {
		v.ensureAnimationStream()
		t := v.animToken.Add(1)
		done = make(chan bool, 1)
		v.animDone.Store(t, done)
		token = &t
	}

	suffix, params := cameraCall(update, o.durationMS, token)
	var res animateResult
	if err := v.caller.Call(ctx, "animateCamera"+suffix, v.id, params, &res); err != nil {
		if token != nil {
			v.animDone.Delete(*token)
		}
		return nil, err
	}
	if token != nil && !res.CompletionSupported {
		v.animDone.Delete(*token)
	}
	return done, nil
}

// ensureAnimationStream starts, once per view, the consumer that resolves
// animation futures from the native completion events.
func (v *View) ensureAnimationStream() {
	v.animOnce.Do(func() {
		ch, _ := events.On[types.CameraAnimationDoneEvent](v.demux, v.id, 16)
		go func() {
			for ev := range ch {
				done, ok := v.animDone.LoadAndDelete(ev.Token)
				if !ok {
					continue
				}
				done <- ev.Finished
				close(done)
			}
		}()
	})
}

type animateResult struct {
	CompletionSupported bool `json:"completionSupported"`
}

type cameraToPositionParams struct {
	Position        dto.CameraPositionDTO `json:"position"`
	DurationMillis  *int64                `json:"durationMillis,omitempty"`
	CompletionToken *uint64               `json:"completionToken,omitempty"`
}

type cameraToLatLngParams struct {
	Point           dto.LatLngDTO `json:"point"`
	DurationMillis  *int64        `json:"durationMillis,omitempty"`
	CompletionToken *uint64       `json:"completionToken,omitempty"`
}

type cameraToLatLngBoundsParams struct {
	Bounds          dto.LatLngBoundsDTO `json:"bounds"`
	Padding         float64             `json:"padding"`
	DurationMillis  *int64              `json:"durationMillis,omitempty"`
	CompletionToken *uint64             `json:"completionToken,omitempty"`
}

type cameraToLatLngZoomParams struct {
	Point           dto.LatLngDTO `json:"point"`
	Zoom            float64       `json:"zoom"`
	DurationMillis  *int64        `json:"durationMillis,omitempty"`
	CompletionToken *uint64       `json:"completionToken,omitempty"`
}

type cameraByScrollParams struct {
	DX              float64 `json:"dx"`
	DY              float64 `json:"dy"`
	DurationMillis  *int64  `json:"durationMillis,omitempty"`
	CompletionToken *uint64 `json:"completionToken,omitempty"`
}

type cameraByZoomParams struct {
	ZoomBy          float64        `json:"zoomBy"`
	Focus           *dto.LatLngDTO `json:"focus,omitempty"`
	DurationMillis  *int64         `json:"durationMillis,omitempty"`
	CompletionToken *uint64        `json:"completionToken,omitempty"`
}

type cameraToZoomParams struct {
	Zoom            float64 `json:"zoom"`
	DurationMillis  *int64  `json:"durationMillis,omitempty"`
	CompletionToken *uint64 `json:"completionToken,omitempty"`
}

// cameraCall maps a validated update to its method suffix and the params
// carrying exactly that variant's fields.
func cameraCall(u types.CameraUpdate, durationMS *int64, token *uint64) (string, any) {
	switch u.Kind {
	case types.CameraUpdateKindPosition:
		return "ToCameraPosition", cameraToPositionParams{
			Position:        dto.NewCameraPositionDTO(*u.Position),
			DurationMillis:  durationMS,
			CompletionToken: token,
		}
	case types.CameraUpdateKindLatLng:
		return "ToLatLng", cameraToLatLngParams{
			Point:           dto.NewLatLngDTO(*u.Point),
			DurationMillis:  durationMS,
			CompletionToken: token,
		}
	case types.CameraUpdateKindLatLngBounds:
		return "ToLatLngBounds", cameraToLatLngBoundsParams{
			Bounds:          dto.NewLatLngBoundsDTO(*u.Bounds),
			Padding:         u.Padding,
			DurationMillis:  durationMS,
			CompletionToken: token,
		}
	case types.CameraUpdateKindLatLngZoom:
		return "ToLatLngZoom", cameraToLatLngZoomParams{
			Point:           dto.NewLatLngDTO(*u.Point),
			Zoom:            *u.Zoom,
			DurationMillis:  durationMS,
			CompletionToken: token,
		}
	case types.CameraUpdateKindScrollBy:
		return "ByScroll", cameraByScrollParams{
			DX:              u.ScrollDX,
			DY:              u.ScrollDY,
			DurationMillis:  durationMS,
			CompletionToken: token,
		}
	case types.CameraUpdateKindZoomBy:
		p := cameraByZoomParams{
			ZoomBy:          *u.ZoomBy,
			DurationMillis:  durationMS,
			CompletionToken: token,
		}
		if u.Focus != nil {
			f := dto.NewLatLngDTO(*u.Focus)
			p.Focus = &f
		}
		return "ByZoom", p
	default: // types.CameraUpdateKindZoomTo, Validate rejects the rest
		return "ToZoom", cameraToZoomParams{
			Zoom:            *u.Zoom,
			DurationMillis:  durationMS,
			CompletionToken: token,
		}
	}
}
