package math

// EdgeLine is a boundary segment used as a distance reference for smoothing.
type EdgeLine struct {
	Start  Vec2
	End    Vec2
	Inward Vec2    // unit direction pointing into the region the edge bounds
	Height float32 // reference height vertices blend toward
}

// Closest returns the point on the segment nearest to p.
func (e EdgeLine) Closest(p Vec2) Vec2 {
	d := e.End.Sub(e.Start)
	lenSq := d.Dot(d)
	if lenSq == 0 {
		return e.Start
	}
	t := Clamp(p.Sub(e.Start).Dot(d)/lenSq, 0, 1)
	return e.Start.Add(d.Scale(t))
}

// Distance returns the distance from p to the segment.
func (e EdgeLine) Distance(p Vec2) float32 {
	return p.Distance(e.Closest(p))
}

// Inside reports whether p lies on the inward side of the line through the
// segment. Points on the line count as outside.
func (e EdgeLine) Inside(p Vec2) bool {
	return p.Sub(e.Start).Dot(e.Inward) > 0
}

// WithHeight sets the reference height of every edge to h and returns edges.
func WithHeight(edges []EdgeLine, h float32) []EdgeLine {
	for i := range edges {
		edges[i].Height = h
	}
	return edges
}
