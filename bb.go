package phys2d

import "github.com/setanarut/vec"

// BB is an axis-aligned 2D bounding box. (left, bottom, right, top)
type BB struct {
	L, B, R, T float64
}

func NewBB(l, b, r, t float64) BB {
	return BB{L: l, B: b, R: r, T: t}
}

// NewBBForCircle returns the box around a circle at p with radius r.
func NewBBForCircle(p vec.Vec2, r float64) BB {
	return BB{L: p.X - r, B: p.Y - r, R: p.X + r, T: p.Y + r}
}

// Intersects reports whether bb and b overlap. Touching edges count.
func (bb BB) Intersects(b BB) bool {
	return bb.L <= b.R && b.L <= bb.R && bb.B <= b.T && b.B <= bb.T
}

// ContainsVect returns true if bb contains v.
func (bb BB) ContainsVect(v vec.Vec2) bool {
	return bb.L <= v.X && bb.R >= v.X && bb.B <= v.Y && bb.T >= v.Y
}

func (bb BB) Width() float64 {
	return bb.R - bb.L
}

func (bb BB) Height() float64 {
	return bb.T - bb.B
}

// ClipResult holds the boundary points where an infinite line crosses a BB.
//
// Count is 0 when the line misses, 1 when it only touches (the second point
// is absent) and 2 otherwise.
type ClipResult struct {
	Points [2]vec.Vec2
	Count  int
}

// First returns the first boundary point, if any.
func (r ClipResult) First() (vec.Vec2, bool) {
	return r.Points[0], r.Count > 0
}

// Second returns the second boundary point, if any.
func (r ClipResult) Second() (vec.Vec2, bool) {
	return r.Points[1], r.Count > 1
}

func (r *ClipResult) push(p vec.Vec2) {
	if r.Count >= 2 || (r.Count == 1 && r.Points[0] == p) {
		return
	}
	r.Points[r.Count] = p
	r.Count++
}

// ClipLine intersects the infinite line through p along d with the box.
//
// Axis-aligned lines take a fast path. Otherwise the boundaries are tested
// in the order left, right, bottom, top; a point shared by two boundaries
// (a corner) is reported once.
func (bb BB) ClipLine(p, d vec.Vec2) ClipResult {
	var res ClipResult

	// horizontal
	if d.Y == 0 {
		if p.Y >= bb.B && p.Y <= bb.T {
			res.push(vec.Vec2{X: bb.L, Y: p.Y})
			res.push(vec.Vec2{X: bb.R, Y: p.Y})
		}
		return res
	}
	// vertical
	if d.X == 0 {
		if p.X >= bb.L && p.X <= bb.R {
			res.push(vec.Vec2{X: p.X, Y: bb.B})
			res.push(vec.Vec2{X: p.X, Y: bb.T})
		}
		return res
	}

	ts := [4]float64{
		(bb.L - p.X) / d.X,
		(bb.R - p.X) / d.X,
		(bb.B - p.Y) / d.Y,
		(bb.T - p.Y) / d.Y,
	}
	for i, t := range ts {
		q := p.Add(d.Scale(t))
		// snap the coordinate of the boundary being tested
		if i < 2 {
			q.X = [2]float64{bb.L, bb.R}[i]
		} else {
			q.Y = [2]float64{bb.B, bb.T}[i-2]
		}
		if bb.ContainsVect(q) {
			res.push(q)
		}
	}
	return res
}
