package terrain

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	pmath "github.com/Faultbox/midgard-terrain/pkg/math"
)

// White is returned for heights no range matches.
var White = [4]float32{1, 1, 1, 1}

// Gradient interpolates between two RGBA stops.
type Gradient struct {
	Low  [4]float32 `json:"low" yaml:"low"`
	High [4]float32 `json:"high" yaml:"high"`
}

// Color is either a flat RGBA value or a gradient. Exactly one is set.
type Color struct {
	Flat     *[4]float32 `json:"flat,omitempty" yaml:"flat,omitempty"`
	Gradient *Gradient   `json:"gradient,omitempty" yaml:"gradient,omitempty"`
}

// FlatColor returns a flat color.
func FlatColor(c [4]float32) Color {
	return Color{Flat: &c}
}

// GradientColor returns a gradient from low to high.
func GradientColor(low, high [4]float32) Color {
	return Color{Gradient: &Gradient{Low: low, High: high}}
}

// Apply returns the color of height within [from, to). Gradients scale by
// the position of height inside that interval; an empty interval maps to
// the low stop.
func (c Color) Apply(height, from, to float32) [4]float32 {
	switch {
	case c.Flat != nil:
		return *c.Flat
	case c.Gradient != nil:
		var scale float32
		if span := to - from; span != 0 {
			scale = (height - from) / span
		}
		var out [4]float32
		for i := range out {
			out[i] = pmath.Lerp(c.Gradient.Low[i], c.Gradient.High[i], scale)
		}
		return out
	default:
		return White
	}
}

// ColorRange maps the half-open height interval [From, To) to a color.
type ColorRange struct {
	From  float32 `json:"from" yaml:"from"`
	To    float32 `json:"to" yaml:"to"`
	Color Color   `json:"color" yaml:"color"`
}

// Colors is an ordered list of ranges. The first matching range wins.
type Colors struct {
	Ranges []ColorRange `json:"ranges" yaml:"ranges"`
}

// Apply returns the color of height.
//
// Gradients interpolate against the bounds of the matching range. The
// mesh-wide min and max are accepted but not used for interpolation.
func (c Colors) Apply(height, _, _ float32) [4]float32 {
	for _, r := range c.Ranges {
		if height >= r.From && height < r.To {
			return r.Color.Apply(height, r.From, r.To)
		}
	}
	return White
}

// Validate checks that every range is ordered, finite and has exactly one
// color.
func (c Colors) Validate() error {
	var errs []error
	for i, r := range c.Ranges {
		if math32.IsNaN(r.From) || math32.IsNaN(r.To) || r.From > r.To {
			errs = append(errs, fmt.Errorf("ranges[%d]: from %v must not exceed to %v", i, r.From, r.To))
		}
		if (r.Color.Flat == nil) == (r.Color.Gradient == nil) {
			errs = append(errs, fmt.Errorf("ranges[%d]: exactly one of flat or gradient must be set", i))
		}
	}
	return errors.Join(errs...)
}
