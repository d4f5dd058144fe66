package math

import "github.com/chewxy/math32"

// AABB is an axis-aligned rectangle in plane-local XZ space.
type AABB struct {
	MinX float32 `json:"min_x" yaml:"min_x"`
	MaxX float32 `json:"max_x" yaml:"max_x"`
	MinZ float32 `json:"min_z" yaml:"min_z"`
	MaxZ float32 `json:"max_z" yaml:"max_z"`
}

// CenteredAABB returns the rectangle of the given size centered on the origin.
func CenteredAABB(width, length float32) AABB {
	return AABB{
		MinX: -width / 2,
		MaxX: width / 2,
		MinZ: -length / 2,
		MaxZ: length / 2,
	}
}

// Valid reports whether both axes are ordered and finite.
func (a AABB) Valid() bool {
	for _, f := range [...]float32{a.MinX, a.MaxX, a.MinZ, a.MaxZ} {
		if math32.IsNaN(f) || math32.IsInf(f, 0) {
			return false
		}
	}
	return a.MinX <= a.MaxX && a.MinZ <= a.MaxZ
}

// Width returns the X extent.
func (a AABB) Width() float32 {
	return a.MaxX - a.MinX
}

// Length returns the Z extent.
func (a AABB) Length() float32 {
	return a.MaxZ - a.MinZ
}

// Center returns the midpoint.
func (a AABB) Center() Vec2 {
	return Vec2{(a.MinX + a.MaxX) / 2, (a.MinZ + a.MaxZ) / 2}
}

// Contains reports whether p lies inside a. Bounds are inclusive.
func (a AABB) Contains(p Vec2) bool {
	return p.X >= a.MinX && p.X <= a.MaxX && p.Y >= a.MinZ && p.Y <= a.MaxZ
}

// Intersect clips a to outer. ok is false when the result has no area,
// which covers degenerate and fully outside rectangles.
func (a AABB) Intersect(outer AABB) (clipped AABB, ok bool) {
	clipped = AABB{
		MinX: math32.Max(a.MinX, outer.MinX),
		MaxX: math32.Min(a.MaxX, outer.MaxX),
		MinZ: math32.Max(a.MinZ, outer.MinZ),
		MaxZ: math32.Min(a.MaxZ, outer.MaxZ),
	}
	// Negated comparisons also reject NaN.
	if !(clipped.MinX < clipped.MaxX) || !(clipped.MinZ < clipped.MaxZ) {
		return AABB{}, false
	}
	return clipped, true
}

// ToEdges returns the sides of a that separate it from the rest of outer.
// a is first clipped to outer; sides lying on the outer boundary are
// skipped since nothing borders them. Sides are emitted west, east, north,
// south.
func (a AABB) ToEdges(outer AABB) []EdgeLine {
	c, ok := a.Intersect(outer)
	if !ok {
		return nil
	}

	var edges []EdgeLine
	if c.MinX > outer.MinX {
		edges = append(edges, EdgeLine{
			Start:  Vec2{c.MinX, c.MinZ},
			End:    Vec2{c.MinX, c.MaxZ},
			Inward: Vec2{1, 0},
		})
	}
	if c.MaxX < outer.MaxX {
		edges = append(edges, EdgeLine{
			Start:  Vec2{c.MaxX, c.MinZ},
			End:    Vec2{c.MaxX, c.MaxZ},
			Inward: Vec2{-1, 0},
		})
	}
	if c.MinZ > outer.MinZ {
		edges = append(edges, EdgeLine{
			Start:  Vec2{c.MinX, c.MinZ},
			End:    Vec2{c.MaxX, c.MinZ},
			Inward: Vec2{0, 1},
		})
	}
	if c.MaxZ < outer.MaxZ {
		edges = append(edges, EdgeLine{
			Start:  Vec2{c.MinX, c.MaxZ},
			End:    Vec2{c.MaxX, c.MaxZ},
			Inward: Vec2{0, -1},
		})
	}
	return edges
}

// ToEdges concatenates the edges of every box in order.
func ToEdges(boxes []AABB, outer AABB) []EdgeLine {
	var edges []EdgeLine
	for _, b := range boxes {
		edges = append(edges, b.ToEdges(outer)...)
	}
	return edges
}
