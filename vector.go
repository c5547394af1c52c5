package phys2d

import (
	"fmt"
	"math"

	"github.com/setanarut/vec"
)

// ZeroReplace is what Normalize returns for vectors shorter than DivEpsilon.
var ZeroReplace = vec.Vec2{X: 1, Y: 0}

// Normalize returns the unit vector of v.
//
// If the length of v is less than DivEpsilon, ZeroReplace is returned instead.
func Normalize(v vec.Vec2) vec.Vec2 {
	return NormalizeOr(v, DivEpsilon, ZeroReplace)
}

// NormalizeOr returns the unit vector of v, or replace if |v| < eps.
func NormalizeOr(v vec.Vec2, eps float64, replace vec.Vec2) vec.Vec2 {
	mag := v.Mag()
	if mag < eps {
		return replace
	}
	return vec.Vec2{X: v.X / mag, Y: v.Y / mag}
}

// Div divides v by s.
//
// Unlike plain float division it refuses zero, infinite and NaN divisors.
func Div(v vec.Vec2, s float64) (vec.Vec2, error) {
	if s == 0 || math.IsInf(s, 0) || math.IsNaN(s) {
		return vec.Vec2{}, fmt.Errorf("%w: %v / %v", ErrDivision, v, s)
	}
	return vec.Vec2{X: v.X / s, Y: v.Y / s}, nil
}

// Rotate90 rotates v counterclockwise by 90 degrees.
func Rotate90(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -v.Y, Y: v.X}
}

func magSq(v vec.Vec2) float64 {
	return v.Dot(v)
}
