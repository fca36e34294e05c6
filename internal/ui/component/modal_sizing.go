package component

import (
	"math"

	"github.com/bnema/paysurface/internal/domain/entity"
)

// ModalSizeConfig holds configuration for payment modal sizing calculations.
type ModalSizeConfig struct {
	MaxWidthPct         float64 // Fraction of viewport width the modal may use (e.g., 0.95)
	FixedChrome         int     // Vertical pixels reserved for host chrome
	TallHeightThreshold int     // Landscape viewports at least this tall keep the 9:16 modal (0 = never)
	CloseSizePct        float64 // Close control size as a fraction of the longest viewport side
	CloseMinSize        int     // Close control lower bound in pixels
	CloseMaxSize        int     // Close control upper bound in pixels
	CloseMargin         int     // Unscaled gap between the modal edge and the close control
	ReferenceShortSide  int     // Viewport short side at which the layout scale is 1.0
}

// PaymentModalSizeDefaults provides default sizing for the checkout modal.
var PaymentModalSizeDefaults = ModalSizeConfig{
	MaxWidthPct:         0.95,
	FixedChrome:         120,
	TallHeightThreshold: 1400,
	CloseSizePct:        0.04,
	CloseMinSize:        32,
	CloseMaxSize:        64,
	CloseMargin:         16,
	ReferenceShortSide:  1080,
}

const (
	minLayoutScale = 0.5
	maxLayoutScale = 2.0
)

// ClassifyViewport returns the viewport orientation and whether a landscape
// viewport is tall enough to still prefer a portrait modal. Checkout pages are
// authored for vertical viewports, so big landscape screens keep 9:16.
// A square viewport counts as portrait.
func ClassifyViewport(viewport entity.Size, tallThreshold int) (entity.Orientation, bool) {
	if viewport.W > viewport.H {
		tall := tallThreshold > 0 && viewport.H >= tallThreshold
		return entity.OrientationLandscape, tall
	}
	return entity.OrientationPortrait, false
}

// TargetAspect picks 16:9 for short landscape viewports and 9:16 otherwise.
func TargetAspect(orientation entity.Orientation, tall bool) float64 {
	if orientation == entity.OrientationLandscape && !tall {
		return entity.AspectWide
	}
	return entity.AspectTall
}

// FitAspect returns the largest width/height with the given ratio (width /
// height) that fits inside maxWidth x maxHeight. It starts from the dimension
// that binds for the ratio's orientation and falls back to the other one when
// the derived side overflows. Results are truncated to whole pixels.
func FitAspect(maxWidth, maxHeight int, ratio float64) (width, height int) {
	if maxWidth <= 0 || maxHeight <= 0 || ratio <= 0 {
		return 0, 0
	}
	fw, fh := float64(maxWidth), float64(maxHeight)

	var w, h float64
	if ratio >= 1 {
		w = fw
		h = fw / ratio
		if h > fh {
			h = fh
			w = fh * ratio
		}
	} else {
		h = fh
		w = fh * ratio
		if w > fw {
			w = fw
			h = fw / ratio
		}
	}
	return int(w), int(h)
}

// CloseControlSize returns the close control edge length for a viewport:
// a fraction of the longest side, clamped to [CloseMinSize, CloseMaxSize].
func CloseControlSize(viewport entity.Size, cfg ModalSizeConfig) int {
	size := int(float64(viewport.Longest()) * cfg.CloseSizePct)
	if cfg.CloseMaxSize > 0 && size > cfg.CloseMaxSize {
		size = cfg.CloseMaxSize
	}
	if size < cfg.CloseMinSize {
		size = cfg.CloseMinSize
	}
	return size
}

// LayoutScale returns the viewport short side relative to ReferenceShortSide,
// clamped to [0.5, 2.0].
func LayoutScale(viewport entity.Size, cfg ModalSizeConfig) float64 {
	if cfg.ReferenceShortSide <= 0 || viewport.Shortest() <= 0 {
		return 1.0
	}
	scale := float64(viewport.Shortest()) / float64(cfg.ReferenceShortSide)
	return math.Min(math.Max(scale, minLayoutScale), maxLayoutScale)
}

// CalculatePaymentModal computes the checkout modal geometry for a viewport.
// It is a pure function: callers recompute on every viewport change.
//
// The modal is centered horizontally. Vertically the modal and the close
// control footprint above it are centered together, and the close control is
// anchored to the modal's top-right corner.
func CalculatePaymentModal(viewport entity.Size, cfg ModalSizeConfig) entity.Geometry {
	geo := entity.Geometry{Viewport: viewport, Scale: 1.0}
	if !viewport.Valid() {
		return geo
	}

	geo.Orientation, geo.Tall = ClassifyViewport(viewport, cfg.TallHeightThreshold)
	geo.AspectRatio = TargetAspect(geo.Orientation, geo.Tall)
	geo.Scale = LayoutScale(viewport, cfg)

	closeSize := CloseControlSize(viewport, cfg)
	margin := ScaleValue(cfg.CloseMargin, geo.Scale)
	geo.CloseFootprint = closeSize + margin

	geo.MaxWidth = int(float64(viewport.W) * cfg.MaxWidthPct)
	geo.MaxHeight = viewport.H - cfg.FixedChrome - geo.CloseFootprint
	if geo.MaxWidth <= 0 || geo.MaxHeight <= 0 {
		return geo
	}

	w, h := FitAspect(geo.MaxWidth, geo.MaxHeight, geo.AspectRatio)
	if w <= 0 || h <= 0 {
		return geo
	}

	x := (viewport.W - w) / 2
	y := (viewport.H-h-geo.CloseFootprint)/2 + geo.CloseFootprint
	geo.Modal = entity.Rect{X: x, Y: y, W: w, H: h}
	geo.Close = entity.Rect{
		X: x + w - closeSize,
		Y: y - geo.CloseFootprint,
		W: closeSize,
		H: closeSize,
	}
	return geo
}

// ScaleValue scales a base pixel value by UI scale factor.
// Returns the base value if scale is <= 0.
func ScaleValue(base int, uiScale float64) int {
	if uiScale <= 0 {
		uiScale = 1.0
	}
	return int(float64(base) * uiScale)
}
