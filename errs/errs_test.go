package errs

import (
	"errors"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_ioError01(tst *testing.T) {

	chk.PrintTitle("ioError01")

	wrapped := errors.New("no such file")
	e := NewIOError("case.dat", wrapped)
	if !strings.Contains(e.Error(), "case.dat") {
		tst.Error("IOError.Error should mention the path")
	}
	if errors.Unwrap(e) != wrapped {
		tst.Error("IOError.Unwrap should return the wrapped error")
	}
}

func Test_dataError01(tst *testing.T) {

	chk.PrintTitle("dataError01")

	e := NewDataError("case.dat", 7, "keyword %q was expected, but %q was found", "box_size", "box_siz")
	msg := e.Error()
	if !strings.Contains(msg, "case.dat") || !strings.Contains(msg, "7") {
		tst.Error("DataError.Error should mention file and line")
	}

	e2 := NewDataError("case.dat", 0, "trailing garbage")
	if strings.Contains(e2.Error(), "line 0") {
		tst.Error("DataError with no line number should not print a line reference")
	}
}

func Test_invariant01(tst *testing.T) {

	chk.PrintTitle("invariant01")

	defer func() {
		r := recover()
		if r == nil {
			tst.Fatal("Raise should panic")
		}
		inv, ok := r.(*Invariant)
		if !ok {
			tst.Fatal("Raise should panic with *Invariant")
		}
		if !strings.Contains(inv.Error(), "particle 3 outside its cell") {
			tst.Error("Invariant message should be formatted")
		}
	}()
	Raise("particle %d outside its cell", 3)
}

func Test_stop01(tst *testing.T) {

	chk.PrintTitle("stop01")

	// outside mpi.Start, mpi.IsOn() is false, so Stop degrades to a
	// plain local check instead of an all-reduce.
	if Stop(nil) {
		tst.Error("Stop(nil) should report no failure")
	}
	if !Stop(errors.New("boom")) {
		tst.Error("Stop(err) should report a failure")
	}
}
