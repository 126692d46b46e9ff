// Package inp parses the case file and initial state file that drive
// one run: process/cell division, box size, time stepping parameters,
// and the starting positions and velocities of every particle.
package inp

import (
	"github.com/cpmech/mdlj/errs"
	"github.com/cpmech/mdlj/geom"
)

// Case holds everything read from the case file plus the per-process
// geometry derived from it and rank, and the current-step cursor
// advanced by the driver's main loop.
type Case struct {
	InitialStateFile string
	RestartFile      string
	TrajectoryFile   string
	EnergyFile       string

	Lx, Ly, Lz    float64
	NPx, NPy, NPz int
	NCx, NCy, NCz int

	DeltaT         float64
	Duration       float64
	OutputInterval int
	CutoffR        float64

	// PLx..PLz is the physical size of one process's box.
	PLx, PLy, PLz float64
	// CLx..CLz is the physical size of one cell.
	CLx, CLy, CLz float64

	Rank, NProcs int
	MyProcess    geom.Index3
	LocalBox     geom.Box

	T    float64
	Step int
}

// ShouldProceed reports whether the time-stepping loop should keep
// running.
func (c *Case) ShouldProceed() bool { return c.T <= c.Duration }

// IsOutputRound reports whether the current step should produce
// trajectory and energy output.
func (c *Case) IsOutputRound() bool { return c.Step%c.OutputInterval == 0 }

// Advance moves the cursor one step forward.
func (c *Case) Advance() {
	c.T += c.DeltaT
	c.Step++
}

// ProcessCoordForRank computes the 3D process-grid coordinate of a
// rank, the inverse of RankForProcess.
func (c *Case) ProcessCoordForRank(rank int) geom.Index3 {
	ipx := rank / (c.NPy * c.NPz)
	rem := rank % (c.NPy * c.NPz)
	ipy := rem / c.NPz
	ipz := rem % c.NPz
	return geom.Index3{Ix: ipx, Iy: ipy, Iz: ipz}
}

// RankForProcess is the inverse of ProcessCoordForRank.
func (c *Case) RankForProcess(p geom.Index3) int {
	return p.Ix*c.NPy*c.NPz + p.Iy*c.NPz + p.Iz
}

// BoxForProcess computes the physical box owned by a process-grid
// coordinate.
func (c *Case) BoxForProcess(p geom.Index3) geom.Box {
	xl := float64(p.Ix) * c.PLx
	yl := float64(p.Iy) * c.PLy
	zl := float64(p.Iz) * c.PLz
	return geom.Box{
		Lo: geom.Vec3{X: xl, Y: yl, Z: zl},
		Hi: geom.Vec3{X: xl + c.PLx, Y: yl + c.PLy, Z: zl + c.PLz},
	}
}

// CellBox computes the physical box of a cell within this rank's
// local box, given a 1-based cell index over the local range (index 0
// and Ncx+1 are the halo shell, matching setBoxForCell's "-1" shift).
func (c *Case) CellBox(idx geom.Index3) geom.Box {
	icx := idx.Ix - 1
	icy := idx.Iy - 1
	icz := idx.Iz - 1
	xl := c.LocalBox.Lo.X + float64(icx)*c.CLx
	yl := c.LocalBox.Lo.Y + float64(icy)*c.CLy
	zl := c.LocalBox.Lo.Z + float64(icz)*c.CLz
	return geom.Box{
		Lo: geom.Vec3{X: xl, Y: yl, Z: zl},
		Hi: geom.Vec3{X: xl + c.CLx, Y: yl + c.CLy, Z: zl + c.CLz},
	}
}

// CellIndexForPos locates the 1-based local cell index containing a
// position known to lie in this rank's LocalBox.
func (c *Case) CellIndexForPos(pos geom.Vec3) geom.Index3 {
	ox := pos.X - c.LocalBox.Lo.X
	oy := pos.Y - c.LocalBox.Lo.Y
	oz := pos.Z - c.LocalBox.Lo.Z
	return geom.Index3{
		Ix: 1 + floorDiv(ox, c.CLx),
		Iy: 1 + floorDiv(oy, c.CLy),
		Iz: 1 + floorDiv(oz, c.CLz),
	}
}

func floorDiv(x, cellSize float64) int {
	q := x / cellSize
	n := int(q)
	if q < float64(n) {
		n--
	}
	return n
}

// ReadCase reads the keyword case file at path, validates it against
// nprocs, and derives this rank's process geometry.
func ReadCase(path string, rank, nprocs int) (*Case, error) {
	rdr, err := newKeywordReader(path)
	if err != nil {
		return nil, err
	}
	defer rdr.close()

	c := &Case{Rank: rank, NProcs: nprocs}

	c.InitialStateFile, err = rdr.labeledString("initial_state_file")
	if err != nil {
		return nil, err
	}
	c.RestartFile, err = rdr.labeledString("restart_file")
	if err != nil {
		return nil, err
	}
	c.TrajectoryFile, err = rdr.labeledString("trajectory_file")
	if err != nil {
		return nil, err
	}
	c.EnergyFile, err = rdr.labeledString("energy_file")
	if err != nil {
		return nil, err
	}

	if err := rdr.keywordLine("box_size"); err != nil {
		return nil, err
	}
	if c.Lx, err = rdr.float("Lx"); err != nil {
		return nil, err
	}
	if c.Ly, err = rdr.float("Ly"); err != nil {
		return nil, err
	}
	if c.Lz, err = rdr.float("Lz"); err != nil {
		return nil, err
	}

	if err := rdr.keywordLine("process_division"); err != nil {
		return nil, err
	}
	if c.NPx, err = rdr.int_("Npx"); err != nil {
		return nil, err
	}
	if c.NPy, err = rdr.int_("Npy"); err != nil {
		return nil, err
	}
	if c.NPz, err = rdr.int_("Npz"); err != nil {
		return nil, err
	}

	if err := rdr.keywordLine("cell_division"); err != nil {
		return nil, err
	}
	if c.NCx, err = rdr.int_("Ncx"); err != nil {
		return nil, err
	}
	if c.NCy, err = rdr.int_("Ncy"); err != nil {
		return nil, err
	}
	if c.NCz, err = rdr.int_("Ncz"); err != nil {
		return nil, err
	}

	if c.DeltaT, err = rdr.labeledFloat("delta_t"); err != nil {
		return nil, err
	}
	if c.Duration, err = rdr.labeledFloat("duration"); err != nil {
		return nil, err
	}
	if c.OutputInterval, err = rdr.labeledInt("output_interval"); err != nil {
		return nil, err
	}
	if c.CutoffR, err = rdr.labeledFloat("cutoff_radius"); err != nil {
		return nil, err
	}

	if c.NPx*c.NPy*c.NPz != nprocs {
		return nil, errs.NewDataError(path, rdr.lineNo,
			"num_procs = %d, does not match Npx*Npy*Npz = %d*%d*%d",
			nprocs, c.NPx, c.NPy, c.NPz)
	}

	c.PLx = c.Lx / float64(c.NPx)
	c.PLy = c.Ly / float64(c.NPy)
	c.PLz = c.Lz / float64(c.NPz)
	c.CLx = c.PLx / float64(c.NCx)
	c.CLy = c.PLy / float64(c.NCy)
	c.CLz = c.PLz / float64(c.NCz)

	if c.CutoffR > c.CLx || c.CutoffR > c.CLy || c.CutoffR > c.CLz {
		return nil, errs.NewDataError(path, rdr.lineNo,
			"cutoff_radius %g exceeds a cell dimension (%g, %g, %g)",
			c.CutoffR, c.CLx, c.CLy, c.CLz)
	}

	c.MyProcess = c.ProcessCoordForRank(rank)
	c.LocalBox = c.BoxForProcess(c.MyProcess)
	c.T = 0
	c.Step = 0

	return c, nil
}
