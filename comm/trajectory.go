package comm

import (
	"bufio"
	"fmt"
	"os"

	"github.com/cpmech/gosl/mpi"
	"github.com/cpmech/mdlj/errs"
)

// GatherTrajectory collects every rank's locally-exported trajectory
// records into an array indexed by particle serial, available on the
// root rank only. total is the whole-system particle count recorded
// at startup. Non-root ranks send their local slice to root and
// return nil.
func GatherTrajectory(local []TrajRecord, total, rank, nprocs int) ([]TrajRecord, error) {
	if rank != 0 {
		n := len(local)
		mpi.Send([]float64{float64(n)}, 0, 0)
		mpi.Send(flattenTraj(local), 0, 0)
		return nil, nil
	}
	all := make([]TrajRecord, total)
	for r := 0; r < nprocs; r++ {
		var recs []TrajRecord
		if r == 0 {
			recs = local
		} else {
			countBuf := make([]float64, 1)
			mpi.Recv(countBuf, r, 0)
			n := int(countBuf[0])
			buf := make([]float64, n*trajWidth)
			mpi.Recv(buf, r, 0)
			recs = unflattenTraj(buf)
		}
		for _, rec := range recs {
			if int(rec.Serial) < 0 || int(rec.Serial) >= total {
				return nil, &errs.Invariant{Msg: fmt.Sprintf("trajectory record serial %d out of range [0,%d)", rec.Serial, total)}
			}
			all[rec.Serial] = rec
		}
	}
	return all, nil
}

const trajWidth = 8

func flattenTraj(recs []TrajRecord) []float64 {
	buf := make([]float64, len(recs)*trajWidth)
	for i, r := range recs {
		o := i * trajWidth
		buf[o+0] = float64(r.Species)
		buf[o+1] = float64(r.Serial)
		buf[o+2], buf[o+3], buf[o+4] = r.Rx, r.Ry, r.Rz
		buf[o+5], buf[o+6], buf[o+7] = r.Vx, r.Vy, r.Vz
	}
	return buf
}

func unflattenTraj(buf []float64) []TrajRecord {
	n := len(buf) / trajWidth
	recs := make([]TrajRecord, n)
	for i := range recs {
		o := i * trajWidth
		recs[i] = TrajRecord{
			Species: int32(buf[o+0]), Serial: int32(buf[o+1]),
			Rx: buf[o+2], Ry: buf[o+3], Rz: buf[o+4],
			Vx: buf[o+5], Vy: buf[o+6], Vz: buf[o+7],
		}
	}
	return recs
}

// OutputFiles holds the open trajectory and energy file handles kept
// by the root rank for the lifetime of a run.
type OutputFiles struct {
	traj *os.File
	en   *os.File
}

// OpenOutputFiles truncates and opens the trajectory and energy
// output files, to be called once by the root rank.
func OpenOutputFiles(trajPath, energyPath string) (*OutputFiles, error) {
	tf, err := os.Create(trajPath)
	if err != nil {
		return nil, errs.NewIOError(trajPath, err)
	}
	ef, err := os.Create(energyPath)
	if err != nil {
		tf.Close()
		return nil, errs.NewIOError(energyPath, err)
	}
	return &OutputFiles{traj: tf, en: ef}, nil
}

// Close closes both output files.
func (o *OutputFiles) Close() error {
	err1 := o.traj.Close()
	err2 := o.en.Close()
	if err1 != nil {
		return err1
	}
	return err2
}

// speciesLabels is shared with ljparam's fixed table order so the
// trajectory file can print a human-readable species name instead of
// its numeric index.
var speciesLabels = []string{"He", "Ne", "Ar", "Kr", "Xe", "N2", "I2", "Hg", "CCl4"}

// WriteTrajectory appends one frame of every particle's position and
// velocity, ordered by serial number.
func (o *OutputFiles) WriteTrajectory(all []TrajRecord) error {
	w := bufio.NewWriter(o.traj)
	fmt.Fprintf(w, "%d\n", len(all))
	fmt.Fprintf(w, "# Output of mdlj\n")
	for _, r := range all {
		label := "?"
		if int(r.Species) >= 0 && int(r.Species) < len(speciesLabels) {
			label = speciesLabels[r.Species]
		}
		fmt.Fprintf(w, "%s %g %g %g %g %g %g\n", label, r.Rx, r.Ry, r.Rz, r.Vx, r.Vy, r.Vz)
	}
	return w.Flush()
}

// WriteEnergy appends one line of (time, kinetic, potential, total)
// energy to the energy file.
func (o *OutputFiles) WriteEnergy(t, uk, up float64) error {
	_, err := fmt.Fprintf(o.en, "%g %g %g %g\n", t, uk, up, uk+up)
	return err
}
