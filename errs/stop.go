package errs

import (
	"fmt"
	"os"

	"github.com/cpmech/gosl/mpi"
	"github.com/cpmech/gosl/utl"
)

// stopFlags is the per-rank scratch buffer used to all-reduce a
// local failure into a collective one, mirroring fem's WspcStop.
var stopFlags []float64

// Stop reports a local failure to the whole communicator and returns
// true if ANY rank (including this one) failed. On the reporting
// rank it prints err to stderr; every rank then learns
// whether to abort via a max-reduction, the same two-step shape as
// gofem's fem.Stop.
func Stop(err error) bool {
	if err == nil {
		if !mpi.IsOn() {
			return false
		}
		return anyoneFailed(0)
	}
	fmt.Fprintf(os.Stderr, "%s\n", utl.PfRed("%v", err))
	if !mpi.IsOn() {
		return true
	}
	return anyoneFailed(1)
}

func anyoneFailed(local int) bool {
	rank, nprocs := mpi.Rank(), mpi.Size()
	if len(stopFlags) != nprocs {
		stopFlags = make([]float64, nprocs)
	}
	stopFlags[rank] = float64(local)
	mpi.IntAllReduceMax(stopFlags)
	for _, v := range stopFlags {
		if v > 0 {
			return true
		}
	}
	return false
}
