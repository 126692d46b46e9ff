package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_vec01(tst *testing.T) {

	chk.PrintTitle("vec01")

	a := Vec3{1, 2, 3}
	b := Vec3{10, 20, 30}

	chk.Vector(tst, "a+b", []float64{a.Add(b).X, a.Add(b).Y, a.Add(b).Z}, []float64{11, 22, 33})
	chk.Vector(tst, "a-b", []float64{a.Sub(b).X, a.Sub(b).Y, a.Sub(b).Z}, []float64{-9, -18, -27})
	chk.Vector(tst, "a*2", []float64{a.Scale(2).X, a.Scale(2).Y, a.Scale(2).Z}, []float64{2, 4, 6})
	chk.Scalar(tst, "a.Square", 1e-15, a.Square(), 1+4+9)

	c := a
	c.AddScaled(b, 2)
	chk.Vector(tst, "c", []float64{c.X, c.Y, c.Z}, []float64{21, 42, 63})

	var z Vec3
	z.X, z.Y, z.Z = 5, 5, 5
	z.Zero()
	chk.Vector(tst, "zero", []float64{z.X, z.Y, z.Z}, []float64{0, 0, 0})
}

func Test_index01(tst *testing.T) {

	chk.PrintTitle("index01")

	a := Index3{1, 2, 3}
	b := Index3{1, 1, 1}

	s := a.Add(b)
	chk.IntAssert(s.Ix, 2)
	chk.IntAssert(s.Iy, 3)
	chk.IntAssert(s.Iz, 4)

	d := a.Sub(b)
	chk.IntAssert(d.Ix, 0)
	chk.IntAssert(d.Iy, 1)
	chk.IntAssert(d.Iz, 2)

	if !a.Equals(Index3{1, 2, 3}) {
		tst.Error("Equals should be true for identical indices")
	}
	if a.Equals(b) {
		tst.Error("Equals should be false for different indices")
	}

	if !(Index3{0, 0, 0}).LessThan(Index3{0, 0, 1}) {
		tst.Error("(0,0,0) should be LessThan (0,0,1)")
	}
	if (Index3{1, 0, 0}).LessThan(Index3{0, 9, 9}) {
		tst.Error("(1,0,0) should not be LessThan (0,9,9)")
	}

	for _, v := range []struct{ i, n, want int }{
		{-1, 5, 4}, {0, 5, 0}, {4, 5, 4}, {5, 5, 0}, {6, 5, 1}, {-6, 5, 4},
	} {
		got := WrapIndex(v.i, v.n)
		if got != v.want {
			tst.Errorf("WrapIndex(%d,%d) = %d, want %d", v.i, v.n, got, v.want)
		}
	}
}

func Test_range01(tst *testing.T) {

	chk.PrintTitle("range01")

	r := NewRange3(0, 0, 0, 2, 3, 1)
	nx, ny, nz := r.Size()
	chk.IntAssert(nx, 3)
	chk.IntAssert(ny, 4)
	chk.IntAssert(nz, 2)

	it := NewRangeIter(r)
	count := 0
	var last Index3
	for it.Next() {
		last = it.Index()
		count++
	}
	chk.IntAssert(count, nx*ny*nz)
	chk.IntAssert(last.Ix, 2)
	chk.IntAssert(last.Iy, 3)
	chk.IntAssert(last.Iz, 1)
}

func Test_dirIter01(tst *testing.T) {

	chk.PrintTitle("dirIter01")

	it := NewDirIter26()
	count := 0
	for it.Next() {
		d := it.Index()
		if d.Ix == 0 && d.Iy == 0 && d.Iz == 0 {
			tst.Error("DirIter26 must never yield (0,0,0)")
		}
		if d.Ix < -1 || d.Ix > 1 || d.Iy < -1 || d.Iy > 1 || d.Iz < -1 || d.Iz > 1 {
			tst.Errorf("direction %+v out of range", d)
		}
		count++
	}
	chk.IntAssert(count, 26)
}

func Test_peerIter01(tst *testing.T) {

	chk.PrintTitle("peerIter01")

	it := NewPeerIter27()
	count := 0
	for it.Next() {
		d := it.Index()
		if d.Ix == 1 && d.Iy == 1 && d.Iz == 1 {
			tst.Error("PeerIter27 must never yield (1,1,1)")
		}
		count++
	}
	chk.IntAssert(count, 26)
}

func Test_box01(tst *testing.T) {

	chk.PrintTitle("box01")

	b := Box{Lo: Vec3{0, 0, 0}, Hi: Vec3{10, 10, 10}}

	if !b.Contains(Vec3{0, 0, 0}) {
		tst.Error("box should contain its low corner")
	}
	if b.Contains(Vec3{10, 5, 5}) {
		tst.Error("box should not contain its high corner (half-open)")
	}
	if !b.Contains(Vec3{9.999, 9.999, 9.999}) {
		tst.Error("box should contain a point just inside its high corner")
	}

	chk.IntAssert(RelativeIndex(-1, 0, 10), 0)
	chk.IntAssert(RelativeIndex(5, 0, 10), 1)
	chk.IntAssert(RelativeIndex(10, 0, 10), 2)

	ri := b.RelativeIndexFor(Vec3{5, 5, 5})
	chk.IntAssert(ri.Ix, 1)
	chk.IntAssert(ri.Iy, 1)
	chk.IntAssert(ri.Iz, 1)
}
