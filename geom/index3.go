package geom

// Index3 is a 3-D grid index: a cell index, a process-grid index, or
// a unit direction offset, depending on context.
type Index3 struct {
	Ix, Iy, Iz int
}

// Add returns a+b.
func (a Index3) Add(b Index3) Index3 {
	return Index3{a.Ix + b.Ix, a.Iy + b.Iy, a.Iz + b.Iz}
}

// Sub returns a-b.
func (a Index3) Sub(b Index3) Index3 {
	return Index3{a.Ix - b.Ix, a.Iy - b.Iy, a.Iz - b.Iz}
}

// Equals reports whether a and b are the same index.
func (a Index3) Equals(b Index3) bool {
	return a.Ix == b.Ix && a.Iy == b.Iy && a.Iz == b.Iz
}

// LessThan reports whether a is lexicographically before b, comparing
// Ix first, then Iy, then Iz. Used to visit each unordered pair of
// local cells from exactly one direction during force calculation.
func (a Index3) LessThan(b Index3) bool {
	if a.Ix != b.Ix {
		return a.Ix < b.Ix
	}
	if a.Iy != b.Iy {
		return a.Iy < b.Iy
	}
	return a.Iz < b.Iz
}

// Range3 is an inclusive rectangular range of grid indices.
type Range3 struct {
	Xmin, Ymin, Zmin int
	Xmax, Ymax, Zmax int
}

// NewRange3 builds a range from its six inclusive bounds.
func NewRange3(xmin, ymin, zmin, xmax, ymax, zmax int) Range3 {
	return Range3{xmin, ymin, zmin, xmax, ymax, zmax}
}

// Size returns the number of indices covered by the range on each
// axis, as (nx, ny, nz).
func (r Range3) Size() (nx, ny, nz int) {
	return r.Xmax - r.Xmin + 1, r.Ymax - r.Ymin + 1, r.Zmax - r.Zmin + 1
}

// WrapIndex wraps i into [0,n) by periodic shift, used to fold a
// process-grid coordinate that has stepped off one edge of the torus
// back onto the opposite edge.
func WrapIndex(i, n int) int {
	for i < 0 {
		i += n
	}
	for i >= n {
		i -= n
	}
	return i
}
