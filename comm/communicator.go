package comm

import (
	"github.com/cpmech/gosl/mpi"
	"github.com/cpmech/mdlj/geom"
)

// ProcessGeometry is the subset of case data the communicator needs
// to resolve peer ranks, tags, and periodic position offsets.
type ProcessGeometry struct {
	Npx, Npy, Npz int
	Plx, Ply, Plz float64
	MyIndex       geom.Index3
	RankForIndex  func(geom.Index3) int
}

// Communicator drives the 26-direction halo exchange over MPI: the
// two-phase non-blocking migration/halo protocols, the root-gather of
// trajectory data, and the energy reduction.
type Communicator struct {
	geo ProcessGeometry
	pb  PeerBuffers
}

// New computes, for every one of the 26 communication directions, the
// peer rank under periodic process-grid wrap, the position offset to
// apply when sending in that direction, and the send/receive tag
// pair, grounded on the original's dir=9*dx+3*dy+dz / recv=26-dir
// scheme that disambiguates a rank that is its own neighbor in
// opposite directions on a small process grid.
func New(geo ProcessGeometry) *Communicator {
	c := &Communicator{geo: geo}
	pit := geom.NewPeerIter27()
	for pit.Next() {
		dir := pit.Index()
		other := geo.MyIndex.Add(dir).Sub(geom.Index3{Ix: 1, Iy: 1, Iz: 1})
		w := geom.Index3{
			Ix: geom.WrapIndex(other.Ix, geo.Npx),
			Iy: geom.WrapIndex(other.Iy, geo.Npy),
			Iz: geom.WrapIndex(other.Iz, geo.Npz),
		}
		offset := geom.Vec3{
			X: float64(w.Ix-other.Ix) * geo.Plx,
			Y: float64(w.Iy-other.Iy) * geo.Ply,
			Z: float64(w.Iz-other.Iz) * geo.Plz,
		}
		peerRank := geo.RankForIndex(w)
		tagSend := dir.Ix*9 + dir.Iy*3 + dir.Iz
		tagRecv := 26 - tagSend
		peer := c.pb.BufferFor(dir)
		peer.SetRankAndTags(peerRank, tagSend, tagRecv)
		peer.SetOffset(offset)
	}
	return c
}

// Buffers exposes the peer buffer table for proc.Data's export/import
// calls.
func (c *Communicator) Buffers() *PeerBuffers { return &c.pb }

// ExchangeMoleculeFull runs the two-phase non-blocking migration
// exchange: phase 1 trades per-cell particle counts over all 26
// directions, phase 2 sizes and trades the payload, then every send
// buffer is cleared for the next round.
func (c *Communicator) ExchangeMoleculeFull() {
	type pending struct {
		dir     geom.Index3
		recvBuf []float64
	}
	reqs := make([]*mpi.Request, 0, 52)
	pendCounts := make([]pending, 0, 26)
	pit := geom.NewPeerIter27()
	for pit.Next() {
		dir := pit.Index()
		peer := c.pb.BufferFor(dir)
		n := len(peer.SendCountPerCell)
		recvBuf := make([]float64, n)
		reqs = append(reqs,
			mpi.Isend(flattenCounts(peer.SendCountPerCell), peer.Rank, peer.TagSend),
			mpi.Irecv(recvBuf, peer.Rank, peer.TagRecv))
		pendCounts = append(pendCounts, pending{dir: dir, recvBuf: recvBuf})
	}
	mpi.WaitAll(reqs)
	for _, p := range pendCounts {
		c.pb.BufferFor(p.dir).RecvCountPerCell = unflattenCounts(p.recvBuf)
	}

	reqs = reqs[:0]
	pendPayload := make([]pending, 0, 26)
	pit = geom.NewPeerIter27()
	for pit.Next() {
		dir := pit.Index()
		peer := c.pb.BufferFor(dir)
		peer.SizeRecvFull()
		recvBuf := make([]float64, len(peer.RecvFull)*fullWidth)
		reqs = append(reqs,
			mpi.Isend(flattenFull(peer.SendFull), peer.Rank, peer.TagSend),
			mpi.Irecv(recvBuf, peer.Rank, peer.TagRecv))
		pendPayload = append(pendPayload, pending{dir: dir, recvBuf: recvBuf})
	}
	mpi.WaitAll(reqs)
	for _, p := range pendPayload {
		c.pb.BufferFor(p.dir).RecvFull = unflattenFull(p.recvBuf)
	}

	pit = geom.NewPeerIter27()
	for pit.Next() {
		c.pb.BufferFor(pit.Index()).ClearSendFull()
	}
}

// ExchangeMoleculePos runs the same two-phase protocol as
// ExchangeMoleculeFull, for the halo (position-only) payload.
func (c *Communicator) ExchangeMoleculePos() {
	type pending struct {
		dir     geom.Index3
		recvBuf []float64
	}
	reqs := make([]*mpi.Request, 0, 52)
	pendCounts := make([]pending, 0, 26)
	pit := geom.NewPeerIter27()
	for pit.Next() {
		dir := pit.Index()
		peer := c.pb.BufferFor(dir)
		n := len(peer.SendCountPerCell)
		recvBuf := make([]float64, n)
		reqs = append(reqs,
			mpi.Isend(flattenCounts(peer.SendCountPerCell), peer.Rank, peer.TagSend),
			mpi.Irecv(recvBuf, peer.Rank, peer.TagRecv))
		pendCounts = append(pendCounts, pending{dir: dir, recvBuf: recvBuf})
	}
	mpi.WaitAll(reqs)
	for _, p := range pendCounts {
		c.pb.BufferFor(p.dir).RecvCountPerCell = unflattenCounts(p.recvBuf)
	}

	reqs = reqs[:0]
	pendPayload := make([]pending, 0, 26)
	pit = geom.NewPeerIter27()
	for pit.Next() {
		dir := pit.Index()
		peer := c.pb.BufferFor(dir)
		peer.SizeRecvPos()
		recvBuf := make([]float64, len(peer.RecvPos)*posWidth)
		reqs = append(reqs,
			mpi.Isend(flattenPos(peer.SendPos), peer.Rank, peer.TagSend),
			mpi.Irecv(recvBuf, peer.Rank, peer.TagRecv))
		pendPayload = append(pendPayload, pending{dir: dir, recvBuf: recvBuf})
	}
	mpi.WaitAll(reqs)
	for _, p := range pendPayload {
		c.pb.BufferFor(p.dir).RecvPos = unflattenPos(p.recvBuf)
	}

	pit = geom.NewPeerIter27()
	for pit.Next() {
		c.pb.BufferFor(pit.Index()).ClearSendPos()
	}
}

// ReduceEnergy sums localUp/localUk across every rank, available on
// every rank after the call returns (AllReduce, not a root-only
// Reduce, so every rank can log the instantaneous total if it wants).
func ReduceEnergy(localUp, localUk float64) (up, uk float64) {
	buf := []float64{localUp, localUk}
	mpi.AllReduceSum(buf, buf)
	return buf[0], buf[1]
}
