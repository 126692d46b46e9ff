// Package proc owns the per-process cell grid: the cells local to
// this rank plus one layer of halo cells all around, the directional
// ranges used to address that halo during export/import, and the
// whole-grid drivers for force calculation, integration, and local
// migration.
package proc

import (
	"math"

	"github.com/cpmech/mdlj/cell"
	"github.com/cpmech/mdlj/geom"
	"github.com/cpmech/mdlj/ljparam"
	"github.com/cpmech/mdlj/particle"
)

// Geometry is the subset of case data the cell grid needs: local cell
// counts, local cell size, and this rank's box in the global frame.
type Geometry struct {
	Ncx, Ncy, Ncz    int
	Clx, Cly, Clz    float64
	LocalBox         geom.Box
	CellBoxFor       func(idx geom.Index3) geom.Box
}

// Data is the full local state of one process: its cell grid (local
// cells plus one halo layer), the free list backing particle
// allocation, and the precomputed directional ranges.
type Data struct {
	geom Geometry
	table *ljparam.Table

	cells            []*cell.Cell
	acx, acy, acz    int
	allRange         geom.Range3
	localRange       geom.Range3
	surfaceRanges    [3][3][3]geom.Range3
	surroundingRanges [3][3][3]geom.Range3

	free particle.FreeList

	totalMoleculeCount int
}

// NewData allocates the cell grid for geom and wires every local
// cell's box and neighbor pointers. It does not read any file; the
// caller is expected to populate particles afterward via Alloc plus
// AddParticle on the returned cells (see inp.ReadInitialState).
func NewData(g Geometry, table *ljparam.Table) *Data {
	d := &Data{geom: g, table: table}
	d.acx = g.Ncx + 2
	d.acy = g.Ncy + 2
	d.acz = g.Ncz + 2
	n := d.acx * d.acy * d.acz
	d.cells = make([]*cell.Cell, n)
	for i := range d.cells {
		d.cells[i] = cell.New(table)
	}
	d.initRanges()
	d.initCells()
	return d
}

func surroundingLow(i, n int) int {
	switch i {
	case 0:
		return 0
	case 1:
		return 1
	default:
		return n + 1
	}
}

func surroundingHigh(i, n int) int {
	switch i {
	case 0:
		return 0
	case 1:
		return n
	default:
		return n + 1
	}
}

func surfaceLow(i, n int) int {
	switch i {
	case 0:
		return 1
	case 1:
		return 1
	default:
		return n
	}
}

func surfaceHigh(i, n int) int {
	switch i {
	case 0:
		return 1
	case 1:
		return n
	default:
		return n
	}
}

func (d *Data) initRanges() {
	ncx, ncy, ncz := d.geom.Ncx, d.geom.Ncy, d.geom.Ncz
	d.allRange = geom.NewRange3(0, 0, 0, ncx+1, ncy+1, ncz+1)
	d.localRange = geom.NewRange3(1, 1, 1, ncx, ncy, ncz)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				d.surroundingRanges[i][j][k] = geom.NewRange3(
					surroundingLow(i, ncx), surroundingLow(j, ncy), surroundingLow(k, ncz),
					surroundingHigh(i, ncx), surroundingHigh(j, ncy), surroundingHigh(k, ncz))
				d.surfaceRanges[i][j][k] = geom.NewRange3(
					surfaceLow(i, ncx), surfaceLow(j, ncy), surfaceLow(k, ncz),
					surfaceHigh(i, ncx), surfaceHigh(j, ncy), surfaceHigh(k, ncz))
			}
		}
	}
}

func (d *Data) initCells() {
	it := geom.NewRangeIter(d.allRange)
	for it.Next() {
		idx := it.Index()
		d.cellAt(idx).SetBox(d.geom.CellBoxFor(idx))
	}
	lit := geom.NewRangeIter(d.localRange)
	for lit.Next() {
		idx := lit.Index()
		c := d.cellAt(idx)
		dit := geom.NewDirIter26()
		for dit.Next() {
			ofs := dit.Index()
			neighborIdx := idx.Add(ofs)
			c.SetNeighbor(geom.Index3{Ix: 1 + ofs.Ix, Iy: 1 + ofs.Iy, Iz: 1 + ofs.Iz}, d.cellAt(neighborIdx))
		}
	}
}

func (d *Data) cellAt(idx geom.Index3) *cell.Cell {
	i := idx.Ix*d.acy*d.acz + idx.Iy*d.acz + idx.Iz
	return d.cells[i]
}

// CellFor returns the cell at idx in the local-plus-halo grid.
func (d *Data) CellFor(idx geom.Index3) *cell.Cell { return d.cellAt(idx) }

// IsLocalCell reports whether idx addresses a cell this process owns
// (as opposed to a halo cell).
func (d *Data) IsLocalCell(idx geom.Index3) bool {
	return idx.Ix > 0 && idx.Ix <= d.geom.Ncx &&
		idx.Iy > 0 && idx.Iy <= d.geom.Ncy &&
		idx.Iz > 0 && idx.Iz <= d.geom.Ncz
}

// SurfaceRangeFor returns the range of local boundary cells facing
// peer direction dir.
func (d *Data) SurfaceRangeFor(dir geom.Index3) geom.Range3 {
	return d.surfaceRanges[dir.Ix][dir.Iy][dir.Iz]
}

// SurroundingRangeFor returns the range of halo cells facing peer
// direction dir.
func (d *Data) SurroundingRangeFor(dir geom.Index3) geom.Range3 {
	return d.surroundingRanges[dir.Ix][dir.Iy][dir.Iz]
}

// LocalRange returns the range covering every locally-owned cell.
func (d *Data) LocalRange() geom.Range3 { return d.localRange }

// CellIndexForPos computes the cell index (in local-plus-halo
// coordinates) that owns position pos, by flooring its offset from
// the local box's low corner over the cell size.
func (d *Data) CellIndexForPos(pos geom.Vec3) geom.Index3 {
	off := pos.Sub(d.geom.LocalBox.Lo)
	return geom.Index3{
		Ix: 1 + int(math.Floor(off.X/d.geom.Clx)),
		Iy: 1 + int(math.Floor(off.Y/d.geom.Cly)),
		Iz: 1 + int(math.Floor(off.Z/d.geom.Clz)),
	}
}

// Alloc returns a reusable particle record from the free list arena.
func (d *Data) Alloc() *particle.Particle { return d.free.Alloc() }

// SetMoleculeCount records the total particle count read from the
// initial-state file, across every process.
func (d *Data) SetMoleculeCount(n int) { d.totalMoleculeCount = n }

// MoleculeCount returns the total particle count recorded by
// SetMoleculeCount.
func (d *Data) MoleculeCount() int { return d.totalMoleculeCount }

// ClearSurroundingCells empties every halo cell, releasing its
// particles to the free list. Must run before each round of export/
// import so stale ghost copies from the previous step don't linger.
func (d *Data) ClearSurroundingCells() {
	pit := geom.NewPeerIter27()
	for pit.Next() {
		r := d.SurroundingRangeFor(pit.Index())
		cit := geom.NewRangeIter(r)
		for cit.Next() {
			c := d.cellAt(cit.Index())
			var tmp particle.List
			c.MoveAllTo(&tmp)
			d.free.ReleaseAll(&tmp)
		}
	}
}
