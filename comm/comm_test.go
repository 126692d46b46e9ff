package comm

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mdlj/cell"
	"github.com/cpmech/mdlj/geom"
	"github.com/cpmech/mdlj/ljparam"
	"github.com/cpmech/mdlj/particle"
)

func Test_wireio01(tst *testing.T) {

	chk.PrintTitle("wireio01")

	recs := []FullRecord{
		{Species: 2, Serial: 7, Rx: 1, Ry: 2, Rz: 3, VdtX: 0.1, VdtY: 0.2, VdtZ: 0.3, Adt2X: 0.01, Adt2Y: 0.02, Adt2Z: 0.03},
		{Species: 5, Serial: 9, Rx: -1, Ry: -2, Rz: -3},
	}
	got := unflattenFull(flattenFull(recs))
	if len(got) != len(recs) {
		tst.Fatal("round trip should preserve record count")
	}
	for i := range recs {
		if got[i] != recs[i] {
			tst.Errorf("record %d: got %+v, want %+v", i, got[i], recs[i])
		}
	}

	pos := []PosRecord{{Species: 1, Rx: 1, Ry: 2, Rz: 3}}
	gotPos := unflattenPos(flattenPos(pos))
	if gotPos[0] != pos[0] {
		tst.Error("PosRecord round trip mismatch")
	}

	counts := []int32{1, 0, 3, 5}
	gotCounts := unflattenCounts(flattenCounts(counts))
	for i := range counts {
		if gotCounts[i] != counts[i] {
			tst.Errorf("count %d: got %d, want %d", i, gotCounts[i], counts[i])
		}
	}
}

func Test_peerBuffer01(tst *testing.T) {

	chk.PrintTitle("peerBuffer01")

	table := ljparam.NewTable(0.01, 10.0)
	c := cell.New(table)
	c.SetBox(geom.Box{Lo: geom.Vec3{X: 0, Y: 0, Z: 0}, Hi: geom.Vec3{X: 10, Y: 10, Z: 10}})
	c.AddParticle(&particle.Particle{Species: 0, Serial: 1, Pos: geom.Vec3{X: 1, Y: 1, Z: 1}})
	c.AddParticle(&particle.Particle{Species: 1, Serial: 2, Pos: geom.Vec3{X: 2, Y: 2, Z: 2}})

	empty := cell.New(table)
	empty.SetBox(geom.Box{Lo: geom.Vec3{X: 10, Y: 0, Z: 0}, Hi: geom.Vec3{X: 20, Y: 10, Z: 10}})

	var pb PeerBuffer
	pb.SetOffset(geom.Vec3{X: 100, Y: 0, Z: 0})
	pb.AddMoleculeFullFrom(c)
	pb.AddMoleculeFullFrom(empty)

	chk.IntAssert(len(pb.SendCountPerCell), 2)
	chk.IntAssert(int(pb.SendCountPerCell[0]), 2)
	chk.IntAssert(int(pb.SendCountPerCell[1]), 0)
	chk.IntAssert(len(pb.SendFull), 2)
	chk.Scalar(tst, "offset applied", 1e-12, pb.SendFull[0].Rx, 101)

	pb.ClearSendFull()
	chk.IntAssert(len(pb.SendFull), 0)
	chk.IntAssert(cap(pb.SendFull) >= 2, 1)

	pb.RecvCountPerCell = []int32{2, 3}
	pb.SizeRecvFull()
	chk.IntAssert(len(pb.RecvFull), 5)
}

func Test_peerBuffers01(tst *testing.T) {

	chk.PrintTitle("peerBuffers01")

	var pbs PeerBuffers
	dir := geom.Index3{Ix: 2, Iy: 0, Iz: 1}
	b := pbs.BufferFor(dir)
	b.Rank = 42
	if pbs.Table[2][0][1].Rank != 42 {
		tst.Error("BufferFor should return a pointer into the backing table")
	}
}

func Test_communicatorNew01(tst *testing.T) {

	chk.PrintTitle("communicatorNew01")

	// a 1x1x1 process grid: every one of the 26 directions must wrap
	// back onto rank 0, with a send/receive tag pair summing to 26.
	geo := ProcessGeometry{
		Npx: 1, Npy: 1, Npz: 1,
		Plx: 10, Ply: 10, Plz: 10,
		MyIndex:      geom.Index3{Ix: 0, Iy: 0, Iz: 0},
		RankForIndex: func(geom.Index3) int { return 0 },
	}
	c := New(geo)
	pit := geom.NewPeerIter27()
	for pit.Next() {
		dir := pit.Index()
		b := c.pb.BufferFor(dir)
		chk.IntAssert(b.Rank, 0)
		chk.IntAssert(b.TagSend+b.TagRecv, 26)
	}
}

func Test_gatherTrajectorySingleProc01(tst *testing.T) {

	chk.PrintTitle("gatherTrajectorySingleProc01")

	local := []TrajRecord{
		{Species: 0, Serial: 1, Rx: 1, Ry: 2, Rz: 3, Vx: 0.1, Vy: 0.2, Vz: 0.3},
		{Species: 1, Serial: 0, Rx: 4, Ry: 5, Rz: 6},
	}
	all, err := GatherTrajectory(local, 2, 0, 1)
	if err != nil {
		tst.Fatal(err)
	}
	chk.IntAssert(len(all), 2)
	chk.IntAssert(int(all[1].Serial), 1)
	chk.IntAssert(int(all[0].Serial), 0)
}
