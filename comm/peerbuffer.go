package comm

import (
	"github.com/cpmech/mdlj/cell"
	"github.com/cpmech/mdlj/geom"
	"github.com/cpmech/mdlj/particle"
)

// PeerBuffer is the send/receive state for one of the 26 communication
// directions: the peer rank and tags, the periodic position offset to
// apply on send, and the per-cell counts plus payload for both the
// migration (full) and the halo (position-only) protocols.
type PeerBuffer struct {
	Rank             int
	TagSend, TagRecv int
	Offset           geom.Vec3

	SendCountPerCell []int32
	RecvCountPerCell []int32

	SendFull []FullRecord
	RecvFull []FullRecord

	SendPos []PosRecord
	RecvPos []PosRecord
}

// SetRankAndTags records the peer rank and the send/receive tags for
// this direction. Init-time only.
func (b *PeerBuffer) SetRankAndTags(rank, tagSend, tagRecv int) {
	b.Rank, b.TagSend, b.TagRecv = rank, tagSend, tagRecv
}

// SetOffset records the periodic position correction to apply to
// every particle sent in this direction. Init-time only.
func (b *PeerBuffer) SetOffset(offset geom.Vec3) {
	b.Offset = offset
}

// AddMoleculeFullFrom appends every resident of c to the migration
// send buffer (with the periodic offset applied), and always pushes a
// per-cell count — even zero — so the receiver's count-to-offset
// demultiplexing stays aligned with the fixed per-cell iteration
// order on both ends.
func (b *PeerBuffer) AddMoleculeFullFrom(c *cell.Cell) {
	count := int32(0)
	for p := c.List.Head(); p != nil; p = particle.Next(p) {
		b.SendFull = append(b.SendFull, FullRecord{
			Species: int32(p.Species),
			Serial:  int32(p.Serial),
			Rx:      p.Pos.X + b.Offset.X,
			Ry:      p.Pos.Y + b.Offset.Y,
			Rz:      p.Pos.Z + b.Offset.Z,
			VdtX:    p.VelDt.X,
			VdtY:    p.VelDt.Y,
			VdtZ:    p.VelDt.Z,
			Adt2X:   p.AccDt2Half.X,
			Adt2Y:   p.AccDt2Half.Y,
			Adt2Z:   p.AccDt2Half.Z,
		})
		count++
	}
	b.SendCountPerCell = append(b.SendCountPerCell, count)
}

// AddMoleculePosFrom appends every resident of c to the halo send
// buffer (with the periodic offset applied), again always pushing a
// per-cell count.
func (b *PeerBuffer) AddMoleculePosFrom(c *cell.Cell) {
	count := int32(0)
	for p := c.List.Head(); p != nil; p = particle.Next(p) {
		b.SendPos = append(b.SendPos, PosRecord{
			Species: int32(p.Species),
			Rx:      p.Pos.X + b.Offset.X,
			Ry:      p.Pos.Y + b.Offset.Y,
			Rz:      p.Pos.Z + b.Offset.Z,
		})
		count++
	}
	b.SendCountPerCell = append(b.SendCountPerCell, count)
}

// ClearSendFull drops the migration send payload and per-cell counts,
// keeping the underlying capacity for reuse next step.
func (b *PeerBuffer) ClearSendFull() {
	b.SendFull = b.SendFull[:0]
	b.SendCountPerCell = b.SendCountPerCell[:0]
}

// ClearSendPos drops the halo send payload and per-cell counts.
func (b *PeerBuffer) ClearSendPos() {
	b.SendPos = b.SendPos[:0]
	b.SendCountPerCell = b.SendCountPerCell[:0]
}

// SizeRecvFull sizes the migration receive payload from the sum of
// RecvCountPerCell, which must already hold this round's counts.
func (b *PeerBuffer) SizeRecvFull() {
	b.RecvFull = make([]FullRecord, sumInt32(b.RecvCountPerCell))
}

// SizeRecvPos sizes the halo receive payload from the sum of
// RecvCountPerCell.
func (b *PeerBuffer) SizeRecvPos() {
	b.RecvPos = make([]PosRecord, sumInt32(b.RecvCountPerCell))
}

func sumInt32(vs []int32) int {
	s := 0
	for _, v := range vs {
		s += int(v)
	}
	return s
}

// PeerBuffers is the full [3][3][3] table of peer buffers, one per
// communication direction ([1][1][1] unused).
type PeerBuffers struct {
	Table [3][3][3]PeerBuffer
}

// BufferFor returns the buffer for direction dir.
func (p *PeerBuffers) BufferFor(dir geom.Index3) *PeerBuffer {
	return &p.Table[dir.Ix][dir.Iy][dir.Iz]
}
