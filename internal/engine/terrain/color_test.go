package terrain

import (
	"testing"

	"github.com/chewxy/math32"
)

var (
	black = [4]float32{0, 0, 0, 1}
	red   = [4]float32{1, 0, 0, 1}
)

func colorApprox(a, b [4]float32) bool {
	for i := range a {
		if math32.Abs(a[i]-b[i]) > 1e-6 {
			return false
		}
	}
	return true
}

func TestColorsGradientBranch(t *testing.T) {
	c := Colors{Ranges: []ColorRange{
		{From: 0, To: 10, Color: FlatColor(White)},
		{From: 10, To: 20, Color: GradientColor(black, White)},
	}}

	got := c.Apply(15, -100, 100)
	want := [4]float32{0.5, 0.5, 0.5, 1}
	if !colorApprox(got, want) {
		t.Errorf("Apply(15) = %v, want %v", got, want)
	}
}

func TestColorsFlatAndBoundaries(t *testing.T) {
	c := Colors{Ranges: []ColorRange{
		{From: 0, To: 10, Color: FlatColor(red)},
		{From: 10, To: 20, Color: GradientColor(black, White)},
	}}

	tests := []struct {
		name   string
		height float32
		want   [4]float32
	}{
		{"flat lower bound", 0, red},
		{"flat interior", 9.99, red},
		{"upper bound is exclusive", 10, black},
		{"below every range", -1, White},
		{"above every range", 20, White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Apply(tt.height, 0, 0); !colorApprox(got, tt.want) {
				t.Errorf("Apply(%v) = %v, want %v", tt.height, got, tt.want)
			}
		})
	}
}

func TestColorsFirstMatchWins(t *testing.T) {
	c := Colors{Ranges: []ColorRange{
		{From: 0, To: 10, Color: FlatColor(red)},
		{From: 5, To: 15, Color: FlatColor(black)},
	}}
	if got := c.Apply(7, 0, 0); got != red {
		t.Errorf("overlap should pick the first range, got %v", got)
	}
	if got := c.Apply(12, 0, 0); got != black {
		t.Errorf("Apply(12) = %v, want black", got)
	}
}

func TestColorsIgnoresGlobalExtrema(t *testing.T) {
	c := Colors{Ranges: []ColorRange{{From: 0, To: 4, Color: GradientColor(black, White)}}}
	a := c.Apply(1, 0, 4)
	b := c.Apply(1, -50, 50)
	if a != b {
		t.Errorf("global extrema changed the color: %v vs %v", a, b)
	}
}

func TestColorEmptyInterval(t *testing.T) {
	g := GradientColor(black, White)
	got := g.Apply(3, 3, 3)
	if got != black {
		t.Errorf("empty interval should map to the low stop, got %v", got)
	}
	for _, v := range got {
		if math32.IsNaN(v) {
			t.Fatal("NaN in color")
		}
	}
}

func TestEmptyColorsIsWhite(t *testing.T) {
	if got := (Colors{}).Apply(42, 0, 100); got != White {
		t.Errorf("Apply() = %v, want white", got)
	}
}

func TestColorsValidate(t *testing.T) {
	good := Colors{Ranges: []ColorRange{{From: 0, To: 1, Color: FlatColor(red)}}}
	if err := good.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	tests := []struct {
		name string
		r    ColorRange
	}{
		{"inverted", ColorRange{From: 2, To: 1, Color: FlatColor(red)}},
		{"nan", ColorRange{From: math32.NaN(), To: 1, Color: FlatColor(red)}},
		{"no color", ColorRange{From: 0, To: 1}},
		{"two colors", ColorRange{From: 0, To: 1, Color: Color{Flat: &red, Gradient: &Gradient{}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := (Colors{Ranges: []ColorRange{tt.r}}).Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
