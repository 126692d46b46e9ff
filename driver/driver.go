// Package driver wires inp, ljparam, proc, and comm together into the
// per-rank step loop: one initial step, then a run of regular steps
// that alternate plain integration rounds with output rounds.
package driver

import (
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/mdlj/comm"
	"github.com/cpmech/mdlj/inp"
	"github.com/cpmech/mdlj/ljparam"
	"github.com/cpmech/mdlj/proc"
)

// Driver owns one rank's whole simulation state: the case parameters
// and step cursor, the local cell grid, the LJ parameter table, and
// the communicator used to exchange halo and migration data with the
// 26 neighboring ranks.
type Driver struct {
	Case  *inp.Case
	Data  *proc.Data
	Table *ljparam.Table
	Comm  *comm.Communicator

	rank, nprocs int
	out          *comm.OutputFiles
}

// New reads the case file and initial state, builds the cell grid and
// communicator for this rank, and — on rank 0 — opens the trajectory
// and energy output files.
func New(caseFile string, rank, nprocs int) (*Driver, error) {
	c, err := inp.ReadCase(caseFile, rank, nprocs)
	if err != nil {
		return nil, err
	}
	table := ljparam.NewTable(c.DeltaT, c.CutoffR)

	geometry := proc.Geometry{
		Ncx: c.NCx, Ncy: c.NCy, Ncz: c.NCz,
		Clx: c.CLx, Cly: c.CLy, Clz: c.CLz,
		LocalBox:   c.LocalBox,
		CellBoxFor: c.CellBox,
	}
	data := proc.NewData(geometry, table)

	assignments, total, err := inp.ReadInitialState(c.InitialStateFile, c, table, data.Alloc)
	if err != nil {
		return nil, err
	}
	for _, a := range assignments {
		data.CellFor(a.CellIndex).AddParticle(a.Particle)
	}
	data.SetMoleculeCount(total)

	pgeo := comm.ProcessGeometry{
		Npx: c.NPx, Npy: c.NPy, Npz: c.NPz,
		Plx: c.PLx, Ply: c.PLy, Plz: c.PLz,
		MyIndex:      c.MyProcess,
		RankForIndex: c.RankForProcess,
	}
	communicator := comm.New(pgeo)

	d := &Driver{Case: c, Data: data, Table: table, Comm: communicator, rank: rank, nprocs: nprocs}

	if rank == 0 {
		out, err := comm.OpenOutputFiles(c.TrajectoryFile, c.EnergyFile)
		if err != nil {
			return nil, err
		}
		d.out = out
		utl.Pfblue2("mdlj: rank 0 ready, %d total molecules, %d ranks\n", total, nprocs)
	}
	return d, nil
}

// Close flushes and closes the output files opened on rank 0; a no-op
// on every other rank.
func (d *Driver) Close() error {
	if d.out == nil {
		return nil
	}
	return d.out.Close()
}

// DoInitialStep runs the step-0 sequence: halo position exchange,
// force calculation, halo teardown, and the first velocity half-step.
// Unlike every later step it performs no position update or migration
// pass first, since the system has not moved yet. It ends by advancing
// the step cursor to step 1.
func (d *Driver) DoInitialStep() {
	d.haloPositionRound()
	d.Data.CalcForce()
	d.Data.ClearSurroundingCells()
	d.Data.UpdateVelocityHalf()
	d.Case.Advance()
}

// DoStepWithoutOutput runs one full velocity-Verlet step with no
// trajectory or energy output.
func (d *Driver) DoStepWithoutOutput() {
	d.Data.UpdateVelocityHalf()
	d.Data.UpdatePosition()

	d.migrationRound()
	d.haloPositionRound()

	d.Data.CalcForce()
	d.Data.ClearSurroundingCells()
	d.Data.UpdateVelocityHalf()

	d.Case.Advance()
}

// DoStepWithOutput is DoStepWithoutOutput plus potential/kinetic
// energy accumulation, a trajectory gather, and — on rank 0 — the
// trajectory and energy file writes.
func (d *Driver) DoStepWithOutput() error {
	d.Data.UpdateVelocityHalf()
	d.Data.UpdatePosition()

	d.migrationRound()
	d.haloPositionRound()

	d.Data.CalcForceAndUp()
	d.Data.ClearSurroundingCells()
	d.Data.UpdateVelocityHalfAndCalcUk()

	var traj []comm.TrajRecord
	d.Data.ExportTrajectoryData(&traj, d.Case.DeltaT)
	localUp, localUk := d.Data.ExportEnergyData()
	up, uk := comm.ReduceEnergy(localUp, localUk)

	all, err := comm.GatherTrajectory(traj, d.Data.MoleculeCount(), d.rank, d.nprocs)
	if err != nil {
		return err
	}
	if d.rank == 0 {
		if err := d.out.WriteTrajectory(all); err != nil {
			return err
		}
		if err := d.out.WriteEnergy(d.Case.T, uk, up); err != nil {
			return err
		}
	}

	d.Case.Advance()
	return nil
}

// migrationRound exports every particle that crossed into a halo cell
// during the position update, exchanges the migration payload with
// every neighbor, and imports arrivals into the local boundary cells.
func (d *Driver) migrationRound() {
	pb := d.Comm.Buffers()
	d.Data.ExportExitingMoleculeFull(pb)
	d.Data.ClearSurroundingCells()
	d.Comm.ExchangeMoleculeFull()
	d.Data.ImportEnteringMoleculeFull(pb)
}

// haloPositionRound refreshes every halo cell with a read-only
// position snapshot of the neighboring rank's boundary cells, used to
// compute forces across process boundaries.
func (d *Driver) haloPositionRound() {
	pb := d.Comm.Buffers()
	d.Data.ExportSurfacingMoleculePos(pb)
	d.Comm.ExchangeMoleculePos()
	d.Data.ImportSurroundingMoleculePos(pb)
}

// Run drives the whole simulation to completion: step 0 is
// DoInitialStep alone, which advances the cursor to step 1, and the
// same loop pass then dispatches step 1; every later step runs
// DoStepWithOutput or DoStepWithoutOutput according to the case file's
// output_interval, until the case's duration has elapsed.
func (d *Driver) Run() error {
	for d.Case.ShouldProceed() {
		if d.Case.Step == 0 {
			d.DoInitialStep()
		}
		if d.Case.IsOutputRound() {
			if err := d.DoStepWithOutput(); err != nil {
				return err
			}
		} else {
			d.DoStepWithoutOutput()
		}
	}
	return nil
}
