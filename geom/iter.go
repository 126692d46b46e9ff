package geom

// RangeIter walks every index in a Range3, innermost axis z first,
// then y, then x — the same order the cell arrays are laid out in.
type RangeIter struct {
	r       Range3
	started bool
	cur     Index3
}

// NewRangeIter returns an iterator over r.
func NewRangeIter(r Range3) *RangeIter {
	return &RangeIter{r: r, cur: Index3{r.Xmin, r.Ymin, r.Zmin}}
}

// Next advances to the next index and reports whether one exists.
func (it *RangeIter) Next() bool {
	if !it.started {
		it.started = true
		return it.r.Xmin <= it.r.Xmax && it.r.Ymin <= it.r.Ymax && it.r.Zmin <= it.r.Zmax
	}
	it.cur.Iz++
	if it.cur.Iz > it.r.Zmax {
		it.cur.Iz = it.r.Zmin
		it.cur.Iy++
		if it.cur.Iy > it.r.Ymax {
			it.cur.Iy = it.r.Ymin
			it.cur.Ix++
			if it.cur.Ix > it.r.Xmax {
				return false
			}
		}
	}
	return true
}

// Index returns the current index.
func (it *RangeIter) Index() Index3 {
	return it.cur
}

// DirIter26 walks the 26 unit offsets in {-1,0,1}^3 excluding (0,0,0),
// the full set of neighbor directions used by the force kernel scan.
type DirIter26 struct {
	started bool
	cur     Index3
}

// NewDirIter26 returns a fresh 26-direction iterator.
func NewDirIter26() *DirIter26 {
	return &DirIter26{cur: Index3{-1, -1, -1}}
}

func (it *DirIter26) advance() bool {
	it.cur.Iz++
	if it.cur.Iz > 1 {
		it.cur.Iz = -1
		it.cur.Iy++
		if it.cur.Iy > 1 {
			it.cur.Iy = -1
			it.cur.Ix++
			if it.cur.Ix > 1 {
				return false
			}
		}
	}
	return true
}

// Next advances to the next direction, skipping (0,0,0), and reports
// whether one exists.
func (it *DirIter26) Next() bool {
	if !it.started {
		it.started = true
		return true
	}
	for it.advance() {
		if it.cur != (Index3{0, 0, 0}) {
			return true
		}
	}
	return false
}

// Index returns the current direction offset.
func (it *DirIter26) Index() Index3 {
	return it.cur
}

// PeerIter27 walks {0,1,2}^3 excluding (1,1,1), the 26 communication
// peer slots surrounding the local one.
type PeerIter27 struct {
	started bool
	cur     Index3
}

// NewPeerIter27 returns a fresh 27-slot peer iterator.
func NewPeerIter27() *PeerIter27 {
	return &PeerIter27{cur: Index3{0, 0, 0}}
}

func (it *PeerIter27) advance() bool {
	it.cur.Iz++
	if it.cur.Iz > 2 {
		it.cur.Iz = 0
		it.cur.Iy++
		if it.cur.Iy > 2 {
			it.cur.Iy = 0
			it.cur.Ix++
			if it.cur.Ix > 2 {
				return false
			}
		}
	}
	return true
}

// Next advances to the next peer slot, skipping (1,1,1), and reports
// whether one exists.
func (it *PeerIter27) Next() bool {
	if !it.started {
		it.started = true
		return true
	}
	for it.advance() {
		if it.cur != (Index3{1, 1, 1}) {
			return true
		}
	}
	return false
}

// Index returns the current peer slot.
func (it *PeerIter27) Index() Index3 {
	return it.cur
}
