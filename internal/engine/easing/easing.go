// Package easing provides the easing curves shared by the height modifiers.
package easing

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Kind names an easing curve.
type Kind string

// Easing kinds.
const (
	None             Kind = "none"
	SmoothStep       Kind = "smooth_step"
	SmoothStart      Kind = "smooth_start"
	SmoothStop       Kind = "smooth_stop"
	SmoothEnd        Kind = "smooth_end"
	AbsoluteValue    Kind = "absolute_value"
	AbsoluteValuePow Kind = "absolute_value_pow"
)

// Kinds lists every supported kind.
var Kinds = []Kind{None, SmoothStep, SmoothStart, SmoothStop, SmoothEnd, AbsoluteValue, AbsoluteValuePow}

// Easing is a curve with its optional parameter.
// The zero value is the identity curve.
type Easing struct {
	Kind     Kind    `json:"kind" yaml:"kind"`
	Exponent float32 `json:"exponent,omitempty" yaml:"exponent,omitempty"` // absolute_value_pow only
}

// Of returns the parameterless curve of kind k.
func Of(k Kind) Easing {
	return Easing{Kind: k}
}

// Pow returns an absolute_value_pow curve.
func Pow(exponent float32) Easing {
	return Easing{Kind: AbsoluteValuePow, Exponent: exponent}
}

// Validate reports an unknown kind.
func (e Easing) Validate() error {
	switch e.Kind {
	case "", None, SmoothStep, SmoothStart, SmoothStop, SmoothEnd, AbsoluteValue, AbsoluteValuePow:
		return nil
	default:
		return fmt.Errorf("unknown easing kind %q", e.Kind)
	}
}

// Apply evaluates the curve at x.
func (e Easing) Apply(x float32) float32 {
	switch e.Kind {
	case SmoothStart:
		return x * x
	case SmoothStop, SmoothEnd:
		return 1 - (1-x)*(1-x)
	case SmoothStep:
		xc := clamp01(x)
		return xc * xc * (3 - 2*xc)
	case AbsoluteValue:
		return math32.Abs(x)
	case AbsoluteValuePow:
		return math32.Pow(math32.Abs(x), e.Exponent)
	default:
		return x
	}
}

// OrDefault returns e, or def when e is unset.
func (e Easing) OrDefault(def Easing) Easing {
	if e.Kind == "" {
		return def
	}
	return e
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
