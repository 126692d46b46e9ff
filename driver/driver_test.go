package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

const sampleCase = `initial_state_file %s
restart_file restart.dat
trajectory_file %s
energy_file %s
box_size 20.0 20.0 20.0
process_division 1 1 1
cell_division 2 2 2
delta_t 0.001
duration 1.0
output_interval 10
cutoff_radius 5.0
`

const sampleState = `Ar 1.0 1.0 1.0 0.0 0.0 0.0
Ar 11.0 11.0 11.0 0.0 0.0 0.0
`

func writeFixture(tst *testing.T) string {
	dir := tst.TempDir()
	caseText := fmt.Sprintf(sampleCase,
		filepath.Join(dir, "state.dat"), filepath.Join(dir, "traj.dat"), filepath.Join(dir, "energy.dat"))
	if err := os.WriteFile(filepath.Join(dir, "case.dat"), []byte(caseText), 0644); err != nil {
		tst.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "state.dat"), []byte(sampleState), 0644); err != nil {
		tst.Fatal(err)
	}
	return filepath.Join(dir, "case.dat")
}

// Test_driverNew01 builds a single-rank Driver end to end (case file,
// LJ table, cell grid, communicator wiring, output files) without
// exercising the MPI-dependent exchange paths, the same boundary the
// teacher's own test suite keeps around anything that touches mpi.
func Test_driverNew01(tst *testing.T) {

	chk.PrintTitle("driverNew01")

	caseFile := writeFixture(tst)

	d, err := New(caseFile, 0, 1)
	if err != nil {
		tst.Fatal(err)
	}
	defer d.Close()

	chk.IntAssert(d.Data.MoleculeCount(), 2)
	chk.Scalar(tst, "duration", 1e-12, d.Case.Duration, 1.0)

	if !d.Case.ShouldProceed() {
		tst.Error("a fresh case should be ready to proceed")
	}
}

func Test_driverNewBadCase01(tst *testing.T) {

	chk.PrintTitle("driverNewBadCase01")

	dir := tst.TempDir()
	path := filepath.Join(dir, "case.dat")
	if err := os.WriteFile(path, []byte("garbage\n"), 0644); err != nil {
		tst.Fatal(err)
	}
	if _, err := New(path, 0, 1); err == nil {
		tst.Error("New should fail on a malformed case file")
	}
}
