// Command mdlj runs a spatially-decomposed Lennard-Jones molecular
// dynamics simulation across an MPI process grid. Usage:
//
//	mdlj <case-file>
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cpmech/gosl/mpi"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/mdlj/driver"
	"github.com/cpmech/mdlj/errs"
	"github.com/cpmech/mdlj/inp"
)

func main() {
	start := time.Now()

	exitCode := 0
	defer func() {
		if r := recover(); r != nil {
			if mpi.Rank() == 0 {
				utl.PfRed("ERROR: %v\n", r)
			}
			exitCode = 1
		}
		mpi.Stop(false)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	}()
	mpi.Start(false)

	rank, nprocs := mpi.Rank(), mpi.Size()

	if errs.Stop(inp.InitLogFile(".", "mdlj", rank)) {
		exitCode = 1
		return
	}
	defer inp.FlushLog()

	flag.Parse()
	var argErr error
	if len(flag.Args()) < 1 {
		argErr = fmt.Errorf("please provide a case file. Ex.: mdlj case.dat")
	}
	if errs.Stop(argErr) {
		exitCode = 1
		return
	}
	caseFile := flag.Arg(0)

	d, err := driver.New(caseFile, rank, nprocs)
	if errs.Stop(err) {
		exitCode = 1
		return
	}
	defer d.Close()

	if errs.Stop(d.Run()) {
		exitCode = 1
		return
	}

	if rank == 0 {
		utl.Pfblue2("time = %v sec.\n", time.Since(start).Seconds())
	}
}
