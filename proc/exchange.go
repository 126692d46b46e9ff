package proc

import (
	"github.com/cpmech/mdlj/comm"
	"github.com/cpmech/mdlj/geom"
	"github.com/cpmech/mdlj/particle"
)

// ExportExitingMoleculeFull collects, for every one of the 26
// directions, the particles currently parked in that direction's halo
// cells (put there by a prior MigrateToNeighbor pass) into pb's
// migration send buffers.
func (d *Data) ExportExitingMoleculeFull(pb *comm.PeerBuffers) {
	pit := geom.NewPeerIter27()
	for pit.Next() {
		dir := pit.Index()
		peer := pb.BufferFor(dir)
		cit := geom.NewRangeIter(d.SurroundingRangeFor(dir))
		for cit.Next() {
			peer.AddMoleculeFullFrom(d.cellAt(cit.Index()))
		}
	}
}

// ImportEnteringMoleculeFull distributes the migration receive payload
// of every direction into the matching local boundary ("surface")
// cells, in the same per-cell order the sender iterated in.
func (d *Data) ImportEnteringMoleculeFull(pb *comm.PeerBuffers) {
	pit := geom.NewPeerIter27()
	for pit.Next() {
		dir := pit.Index()
		peer := pb.BufferFor(dir)
		countIdx, dataIdx := 0, 0
		cit := geom.NewRangeIter(d.SurfaceRangeFor(dir))
		for cit.Next() {
			c := d.cellAt(cit.Index())
			n := int(peer.RecvCountPerCell[countIdx])
			countIdx++
			for k := 0; k < n; k++ {
				rec := peer.RecvFull[dataIdx]
				dataIdx++
				p := d.Alloc()
				p.Species = int(rec.Species)
				p.Serial = int(rec.Serial)
				p.Pos = geom.Vec3{X: rec.Rx, Y: rec.Ry, Z: rec.Rz}
				p.VelDt = geom.Vec3{X: rec.VdtX, Y: rec.VdtY, Z: rec.VdtZ}
				p.AccDt2Half = geom.Vec3{X: rec.Adt2X, Y: rec.Adt2Y, Z: rec.Adt2Z}
				c.AddParticle(p)
			}
		}
		peer.RecvFull = peer.RecvFull[:0]
		peer.RecvCountPerCell = peer.RecvCountPerCell[:0]
	}
}

// ExportSurfacingMoleculePos collects every resident of the local
// boundary ("surface") cells facing each direction into pb's halo
// send buffers — a read-only snapshot, the source cells keep their
// particles.
func (d *Data) ExportSurfacingMoleculePos(pb *comm.PeerBuffers) {
	pit := geom.NewPeerIter27()
	for pit.Next() {
		dir := pit.Index()
		peer := pb.BufferFor(dir)
		cit := geom.NewRangeIter(d.SurfaceRangeFor(dir))
		for cit.Next() {
			peer.AddMoleculePosFrom(d.cellAt(cit.Index()))
		}
	}
}

// ImportSurroundingMoleculePos distributes the halo receive payload of
// every direction into the matching halo cells.
func (d *Data) ImportSurroundingMoleculePos(pb *comm.PeerBuffers) {
	pit := geom.NewPeerIter27()
	for pit.Next() {
		dir := pit.Index()
		peer := pb.BufferFor(dir)
		countIdx, dataIdx := 0, 0
		cit := geom.NewRangeIter(d.SurroundingRangeFor(dir))
		for cit.Next() {
			c := d.cellAt(cit.Index())
			n := int(peer.RecvCountPerCell[countIdx])
			countIdx++
			for k := 0; k < n; k++ {
				rec := peer.RecvPos[dataIdx]
				dataIdx++
				p := d.Alloc()
				p.Species = int(rec.Species)
				p.Pos = geom.Vec3{X: rec.Rx, Y: rec.Ry, Z: rec.Rz}
				c.AddParticle(p)
			}
		}
		peer.RecvPos = peer.RecvPos[:0]
		peer.RecvCountPerCell = peer.RecvCountPerCell[:0]
	}
}

// ExportTrajectoryData appends every particle in the locally-owned
// cells to buf, scaling the stored velocity*delta_t back to a plain
// velocity by dividing by delta_t.
func (d *Data) ExportTrajectoryData(buf *[]comm.TrajRecord, deltaT float64) {
	invDt := 1.0 / deltaT
	it := geom.NewRangeIter(d.localRange)
	for it.Next() {
		c := d.cellAt(it.Index())
		for p := c.List.Head(); p != nil; p = particle.Next(p) {
			*buf = append(*buf, comm.TrajRecord{
				Species: int32(p.Species),
				Serial:  int32(p.Serial),
				Rx:      p.Pos.X, Ry: p.Pos.Y, Rz: p.Pos.Z,
				Vx: p.VelDt.X * invDt, Vy: p.VelDt.Y * invDt, Vz: p.VelDt.Z * invDt,
			})
		}
	}
}

// ExportEnergyData sums the potential and kinetic energy of every
// locally-owned cell.
func (d *Data) ExportEnergyData() (up, uk float64) {
	it := geom.NewRangeIter(d.localRange)
	for it.Next() {
		c := d.cellAt(it.Index())
		up += c.Up
		uk += c.Uk
	}
	return up, uk
}
