package cell

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mdlj/geom"
	"github.com/cpmech/mdlj/ljparam"
	"github.com/cpmech/mdlj/particle"
)

func unitBox() geom.Box {
	return geom.Box{Lo: geom.Vec3{X: 0, Y: 0, Z: 0}, Hi: geom.Vec3{X: 10, Y: 10, Z: 10}}
}

func Test_cellForceWithinSelf01(tst *testing.T) {

	chk.PrintTitle("cellForceWithinSelf01")

	table := ljparam.NewTable(0.01, 10.0)
	c := New(table)
	c.SetBox(unitBox())

	p1 := &particle.Particle{Species: 0, Pos: geom.Vec3{X: 4, Y: 5, Z: 5}}
	p2 := &particle.Particle{Species: 0, Pos: geom.Vec3{X: 6, Y: 5, Z: 5}}
	c.AddParticle(p1)
	c.AddParticle(p2)

	c.ClearForces()
	c.ClearUp()
	c.CalcForceWithinSelfAndUp()

	// the pair should have pulled/pushed each particle in opposite
	// directions along x, with equal and opposite magnitude.
	if p1.AccDt2Half.X == 0 {
		tst.Error("p1 should have accumulated a nonzero x-acceleration")
	}
	chk.Scalar(tst, "opposite reaction", 1e-12, p1.AccDt2Half.X, -p2.AccDt2Half.X)
}

func Test_cellForceCutoff01(tst *testing.T) {

	chk.PrintTitle("cellForceCutoff01")

	table := ljparam.NewTable(0.01, 2.0)
	c := New(table)
	c.SetBox(unitBox())

	p1 := &particle.Particle{Species: 0, Pos: geom.Vec3{X: 0, Y: 5, Z: 5}}
	p2 := &particle.Particle{Species: 0, Pos: geom.Vec3{X: 9, Y: 5, Z: 5}}
	c.AddParticle(p1)
	c.AddParticle(p2)

	c.ClearForces()
	c.CalcForceWithinSelf()

	if p1.AccDt2Half.X != 0 || p2.AccDt2Half.X != 0 {
		tst.Error("a pair beyond the cutoff radius should exert no force")
	}
}

func Test_cellWithSurroundingCell01(tst *testing.T) {

	chk.PrintTitle("cellWithSurroundingCell01")

	table := ljparam.NewTable(0.01, 10.0)
	local := New(table)
	local.SetBox(unitBox())
	halo := New(table)
	halo.SetBox(geom.Box{Lo: geom.Vec3{X: 10, Y: 0, Z: 0}, Hi: geom.Vec3{X: 20, Y: 10, Z: 10}})

	p1 := &particle.Particle{Species: 0, Pos: geom.Vec3{X: 9, Y: 5, Z: 5}}
	p2 := &particle.Particle{Species: 0, Pos: geom.Vec3{X: 11, Y: 5, Z: 5}}
	local.AddParticle(p1)
	halo.AddParticle(p2)

	local.ClearForces()
	halo.ClearForces()
	local.CalcForceWithSurroundingCell(halo)

	if p1.AccDt2Half.X == 0 {
		tst.Error("p1 should feel the halo particle's force")
	}
	if p2.AccDt2Half.X != 0 {
		tst.Error("a surrounding-cell kernel must not update the halo side")
	}
}

func Test_cellUpdatePositionAndVelocity01(tst *testing.T) {

	chk.PrintTitle("cellUpdatePositionAndVelocity01")

	table := ljparam.NewTable(0.01, 10.0)
	c := New(table)
	c.SetBox(unitBox())

	p := &particle.Particle{Species: 0, Pos: geom.Vec3{X: 1, Y: 1, Z: 1}, VelDt: geom.Vec3{X: 0.5, Y: 0, Z: 0}}
	c.AddParticle(p)

	c.UpdatePosition()
	chk.Scalar(tst, "x after move", 1e-12, p.Pos.X, 1.5)

	p.AccDt2Half = geom.Vec3{X: 0.1, Y: 0, Z: 0}
	c.UpdateVelocityHalfAndCalcUk()
	chk.Scalar(tst, "velDt after kick", 1e-12, p.VelDt.X, 0.6)
	if c.Uk <= 0 {
		tst.Error("Uk should be positive with a nonzero velocity")
	}
}

func Test_cellMigrate01(tst *testing.T) {

	chk.PrintTitle("cellMigrate01")

	table := ljparam.NewTable(0.01, 10.0)
	center := New(table)
	center.SetBox(unitBox())
	right := New(table)
	right.SetBox(geom.Box{Lo: geom.Vec3{X: 10, Y: 0, Z: 0}, Hi: geom.Vec3{X: 20, Y: 10, Z: 10}})

	center.SetNeighbor(geom.Index3{Ix: 2, Iy: 1, Iz: 1}, right)

	p := &particle.Particle{Species: 0, Pos: geom.Vec3{X: 9.9, Y: 5, Z: 5}, VelDt: geom.Vec3{X: 0.5, Y: 0, Z: 0}}
	center.AddParticle(p)
	center.UpdatePosition()
	chk.IntAssert(center.List.Count(), 1)

	center.MigrateToNeighbor()
	chk.IntAssert(center.List.Count(), 0)
	chk.IntAssert(right.List.Count(), 1)
	if right.List.Head() != p {
		tst.Error("the migrated particle should now be resident in the right cell")
	}
}
