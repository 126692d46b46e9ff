package geom

// Box is an axis-aligned region using the half-open convention
// [Lo, Hi) on every axis: a point exactly on Hi belongs to the
// neighboring box, not this one.
type Box struct {
	Lo, Hi Vec3
}

// Contains reports whether p lies in [Lo, Hi) on every axis.
func (b Box) Contains(p Vec3) bool {
	return p.X >= b.Lo.X && p.X < b.Hi.X &&
		p.Y >= b.Lo.Y && p.Y < b.Hi.Y &&
		p.Z >= b.Lo.Z && p.Z < b.Hi.Z
}

// RelativeIndex classifies x against [lo, hi): 0 if x < lo, 1 if
// lo <= x < hi, 2 if x >= hi.
func RelativeIndex(x, lo, hi float64) int {
	if x < lo {
		return 0
	}
	if x < hi {
		return 1
	}
	return 2
}

// RelativeIndexFor classifies p against b on every axis at once,
// returning an Index3 of the three RelativeIndex results. Uses the
// same comparisons as Contains so the two never disagree: p is inside
// b exactly when RelativeIndexFor(p) == (1,1,1).
func (b Box) RelativeIndexFor(p Vec3) Index3 {
	return Index3{
		Ix: RelativeIndex(p.X, b.Lo.X, b.Hi.X),
		Iy: RelativeIndex(p.Y, b.Lo.Y, b.Hi.Y),
		Iz: RelativeIndex(p.Z, b.Lo.Z, b.Hi.Z),
	}
}
