package proc

import "github.com/cpmech/mdlj/geom"

// CalcForce computes pairwise forces over every locally-owned cell:
// within itself, against each local neighbor exactly once (the
// lexicographically-negative-offset rule below), and against every
// halo cell once.
func (d *Data) CalcForce() {
	d.forcePass(false)
}

// CalcForceAndUp is CalcForce plus potential energy accumulation.
func (d *Data) CalcForceAndUp() {
	d.forcePass(true)
}

func (d *Data) forcePass(wantUp bool) {
	it := geom.NewRangeIter(d.localRange)
	for it.Next() {
		c := d.cellAt(it.Index())
		c.ClearForces()
		if wantUp {
			c.ClearUp()
		}
	}
	it = geom.NewRangeIter(d.localRange)
	for it.Next() {
		idx := it.Index()
		c := d.cellAt(idx)
		if wantUp {
			c.CalcForceWithinSelfAndUp()
		} else {
			c.CalcForceWithinSelf()
		}
		dit := geom.NewDirIter26()
		for dit.Next() {
			ofs := dit.Index()
			otherIdx := idx.Add(ofs)
			other := d.cellAt(otherIdx)
			if d.IsLocalCell(otherIdx) {
				if ofs.LessThan(geom.Index3{}) {
					if wantUp {
						c.CalcForceWithLocalCellAndUp(other)
					} else {
						c.CalcForceWithLocalCell(other)
					}
				}
			} else {
				if wantUp {
					c.CalcForceWithSurroundingCellAndUp(other)
				} else {
					c.CalcForceWithSurroundingCell(other)
				}
			}
		}
	}
}

// UpdatePosition advances every locally-owned particle's position,
// then migrates every particle that has left its cell to the
// appropriate neighbor. The two passes are kept separate so no cell
// starts migrating before every cell has finished moving, matching
// the original's two full grid scans.
func (d *Data) UpdatePosition() {
	it := geom.NewRangeIter(d.localRange)
	for it.Next() {
		d.cellAt(it.Index()).UpdatePosition()
	}
	it = geom.NewRangeIter(d.localRange)
	for it.Next() {
		d.cellAt(it.Index()).MigrateToNeighbor()
	}
}

// UpdateVelocityHalf advances every locally-owned particle's scaled
// velocity by its scaled acceleration.
func (d *Data) UpdateVelocityHalf() {
	it := geom.NewRangeIter(d.localRange)
	for it.Next() {
		d.cellAt(it.Index()).UpdateVelocityHalf()
	}
}

// UpdateVelocityHalfAndCalcUk is UpdateVelocityHalf plus kinetic
// energy accumulation.
func (d *Data) UpdateVelocityHalfAndCalcUk() {
	it := geom.NewRangeIter(d.localRange)
	for it.Next() {
		d.cellAt(it.Index()).UpdateVelocityHalfAndCalcUk()
	}
}
