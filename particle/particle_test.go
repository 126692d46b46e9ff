package particle

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_list01(tst *testing.T) {

	chk.PrintTitle("list01")

	var l List
	if !l.Empty() {
		tst.Error("a zero-value List should be empty")
	}

	p1 := &Particle{Serial: 1}
	p2 := &Particle{Serial: 2}
	p3 := &Particle{Serial: 3}

	l.Append(p1)
	l.Append(p2)
	l.Append(p3)
	chk.IntAssert(l.Count(), 3)

	var serials []int
	for p := l.Head(); p != nil; p = Next(p) {
		serials = append(serials, p.Serial)
	}
	chk.Ints(tst, "serials", serials, []int{1, 2, 3})

	l.Remove(p2)
	chk.IntAssert(l.Count(), 2)
	serials = nil
	for p := l.Head(); p != nil; p = Next(p) {
		serials = append(serials, p.Serial)
	}
	chk.Ints(tst, "serials after remove", serials, []int{1, 3})

	tail := l.RemoveTail()
	if tail != p3 {
		tst.Error("RemoveTail should return the last-appended remaining particle")
	}
	chk.IntAssert(l.Count(), 1)
}

func Test_list02_moveAllTo(tst *testing.T) {

	chk.PrintTitle("list02")

	var src, dst List
	src.Append(&Particle{Serial: 1})
	src.Append(&Particle{Serial: 2})
	dst.Append(&Particle{Serial: 9})

	src.MoveAllTo(&dst)
	if !src.Empty() {
		tst.Error("src should be empty after MoveAllTo")
	}
	chk.IntAssert(dst.Count(), 3)

	var serials []int
	for p := dst.Head(); p != nil; p = Next(p) {
		serials = append(serials, p.Serial)
	}
	chk.Ints(tst, "dst serials", serials, []int{9, 1, 2})
}

func Test_freelist01(tst *testing.T) {

	chk.PrintTitle("freelist01")

	var fl FreeList
	chk.IntAssert(fl.Len(), 0)

	p := fl.Alloc()
	if p == nil {
		tst.Fatal("Alloc should never return nil")
	}
	chk.IntAssert(fl.Len(), 0)

	p.Serial = 42
	fl.Release(p)
	chk.IntAssert(fl.Len(), 1)

	p2 := fl.Alloc()
	if p2.Serial != 0 {
		tst.Error("Alloc must zero a reused record")
	}
	chk.IntAssert(fl.Len(), 0)

	var batch List
	batch.Append(&Particle{Serial: 1})
	batch.Append(&Particle{Serial: 2})
	fl.ReleaseAll(&batch)
	chk.IntAssert(fl.Len(), 2)
	if !batch.Empty() {
		tst.Error("ReleaseAll should empty its source list")
	}
}
