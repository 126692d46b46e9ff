// Package cell implements the per-cell particle list, the
// Lennard-Jones force kernels, and position/velocity update and local
// migration.
package cell

import (
	"github.com/cpmech/mdlj/errs"
	"github.com/cpmech/mdlj/geom"
	"github.com/cpmech/mdlj/ljparam"
	"github.com/cpmech/mdlj/particle"
)

// Cell owns the particles currently resident in one grid cell, plus
// pointers to its 26 neighbors (local cells for interior cells, halo
// cells at the edge of the locally-owned range).
type Cell struct {
	Box       geom.Box
	List      particle.List
	Neighbors [3][3][3]*Cell // [1][1][1] is unused, see SetNeighbor
	Up, Uk    float64

	table *ljparam.Table
}

// New returns a cell bound to table, with no box or neighbors set yet.
func New(table *ljparam.Table) *Cell {
	return &Cell{table: table}
}

// SetBox sets the cell's spatial extent. Init-time only.
func (c *Cell) SetBox(b geom.Box) { c.Box = b }

// SetNeighbor records the neighbor cell in direction ofs, where ofs is
// a {0,1,2}^3 peer slot ((1,1,1) is this cell itself and is never
// set). Init-time only.
func (c *Cell) SetNeighbor(ofs geom.Index3, n *Cell) {
	c.Neighbors[ofs.Ix][ofs.Iy][ofs.Iz] = n
}

func (c *Cell) neighborFor(idx geom.Index3) *Cell {
	return c.Neighbors[idx.Ix][idx.Iy][idx.Iz]
}

// AddParticle files p under this cell. In debug builds (tag "debug")
// this asserts p.Pos lies in c.Box.
func (c *Cell) AddParticle(p *particle.Particle) {
	assertContains(c, p)
	c.List.Append(p)
}

// MoveAllTo splices every resident particle onto dst.
func (c *Cell) MoveAllTo(dst *particle.List) {
	c.List.MoveAllTo(dst)
}

// ClearForces zeroes the scaled acceleration of every resident, ahead
// of a force-calculation pass.
func (c *Cell) ClearForces() {
	for p := c.List.Head(); p != nil; p = particle.Next(p) {
		p.AccDt2Half.Zero()
	}
}

// ClearUp zeroes the accumulated potential energy.
func (c *Cell) ClearUp() { c.Up = 0 }

func calcLJForce(dist geom.Vec3, r2 float64, pair ljparam.PairScaled) geom.Vec3 {
	r8 := r2 * r2 * r2 * r2
	return dist.Scale((pair.A*r2)/(r8*r8) + pair.B/r8)
}

func potential(r2 float64, pair ljparam.PairScaled) float64 {
	r6 := r2 * r2 * r2
	return -pair.A/(r6*r6*12) - pair.B/(r6*6)
}

// CalcForceWithinSelf accumulates pairwise forces between every
// distinct pair of residents of this cell.
func (c *Cell) CalcForceWithinSelf() {
	for pi := c.List.Head(); pi != nil; pi = particle.Next(pi) {
		parami := c.table.Single(pi.Species)
		for pj := particle.Next(pi); pj != nil; pj = particle.Next(pj) {
			c.forcePair(pi, pj, parami, false)
		}
	}
}

// CalcForceWithinSelfAndUp is CalcForceWithinSelf plus potential
// energy accumulation.
func (c *Cell) CalcForceWithinSelfAndUp() {
	for pi := c.List.Head(); pi != nil; pi = particle.Next(pi) {
		parami := c.table.Single(pi.Species)
		for pj := particle.Next(pi); pj != nil; pj = particle.Next(pj) {
			c.forcePair(pi, pj, parami, true)
		}
	}
}

func (c *Cell) forcePair(pi, pj *particle.Particle, parami ljparam.Scaled, wantUp bool) {
	disp := pj.Pos.Sub(pi.Pos)
	r2 := disp.Square()
	if r2 >= c.table.CutoffSq() {
		return
	}
	paramj := c.table.Single(pj.Species)
	pair := c.table.Pair(pi.Species, pj.Species)
	force := calcLJForce(disp, r2, pair)
	pi.AccDt2Half.AddScaled(force, parami.Dt2By2M)
	pj.AccDt2Half.AddScaled(force, -paramj.Dt2By2M)
	if wantUp {
		c.Up += potential(r2, pair)
	}
}

// CalcForceWithLocalCell accumulates forces between residents of c and
// residents of other, updating both sides (other is a fully local
// cell owned by this process, visited once for the unordered pair).
func (c *Cell) CalcForceWithLocalCell(other *Cell) {
	c.forceAgainst(other, true, false)
}

// CalcForceWithLocalCellAndUp is CalcForceWithLocalCell plus potential
// energy accumulation (full, not halved: both cells are local).
func (c *Cell) CalcForceWithLocalCellAndUp(other *Cell) {
	c.forceAgainst(other, true, true)
}

// CalcForceWithSurroundingCell accumulates force on residents of c
// from residents of other, a halo cell mirroring a remote process's
// data; only c's side is updated since other's particles are not
// owned here.
func (c *Cell) CalcForceWithSurroundingCell(other *Cell) {
	c.forceAgainst(other, false, false)
}

// CalcForceWithSurroundingCellAndUp is CalcForceWithSurroundingCell
// plus potential energy accumulation, halved since the pair is also
// counted by the remote process that owns other's particles.
func (c *Cell) CalcForceWithSurroundingCellAndUp(other *Cell) {
	c.forceAgainst(other, false, true)
}

func (c *Cell) forceAgainst(other *Cell, bothSides, wantUp bool) {
	for pi := c.List.Head(); pi != nil; pi = particle.Next(pi) {
		parami := c.table.Single(pi.Species)
		for pj := other.List.Head(); pj != nil; pj = particle.Next(pj) {
			disp := pj.Pos.Sub(pi.Pos)
			r2 := disp.Square()
			if r2 >= c.table.CutoffSq() {
				continue
			}
			pair := c.table.Pair(pi.Species, pj.Species)
			force := calcLJForce(disp, r2, pair)
			pi.AccDt2Half.AddScaled(force, parami.Dt2By2M)
			if bothSides {
				paramj := c.table.Single(pj.Species)
				pj.AccDt2Half.AddScaled(force, -paramj.Dt2By2M)
			}
			if wantUp {
				up := potential(r2, pair)
				if !bothSides {
					up /= 2.0
				}
				c.Up += up
			}
		}
	}
}

// UpdatePosition advances every resident's position by its scaled
// velocity. Does not migrate particles that leave the cell; that is a
// separate pass (MigrateToNeighbor) so every cell finishes updating
// positions before any cell starts moving particles between lists.
func (c *Cell) UpdatePosition() {
	for p := c.List.Head(); p != nil; p = particle.Next(p) {
		p.Pos = p.Pos.Add(p.VelDt)
	}
}

// UpdateVelocityHalf advances every resident's scaled velocity by its
// scaled acceleration (one half-kick of velocity-Verlet).
func (c *Cell) UpdateVelocityHalf() {
	for p := c.List.Head(); p != nil; p = particle.Next(p) {
		p.VelDt = p.VelDt.Add(p.AccDt2Half)
	}
}

// UpdateVelocityHalfAndCalcUk is UpdateVelocityHalf plus kinetic
// energy accumulation, resetting Uk first.
func (c *Cell) UpdateVelocityHalfAndCalcUk() {
	c.Uk = 0
	for p := c.List.Head(); p != nil; p = particle.Next(p) {
		p.VelDt = p.VelDt.Add(p.AccDt2Half)
		parami := c.table.Single(p.Species)
		c.Uk += p.VelDt.Square() * parami.MBy2Dt2
	}
}

// MigrateToNeighbor moves every resident whose position has left this
// cell's box to the appropriate neighbor cell. Must only be called
// after every cell in the local grid has finished UpdatePosition.
func (c *Cell) MigrateToNeighbor() {
	p := c.List.Head()
	for p != nil {
		idx := c.Box.RelativeIndexFor(p.Pos)
		next := particle.Next(p)
		if idx != (geom.Index3{Ix: 1, Iy: 1, Iz: 1}) {
			dest := c.neighborFor(idx)
			if dest == nil {
				errs.Raise("particle %d migrated out of the local halo in one step", p.Serial)
			}
			c.List.Remove(p)
			dest.AddParticle(p)
		}
		p = next
	}
}
