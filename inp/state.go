package inp

import (
	"bufio"
	"os"
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/mdlj/errs"
	"github.com/cpmech/mdlj/geom"
	"github.com/cpmech/mdlj/ljparam"
	"github.com/cpmech/mdlj/particle"
)

// Assignment pairs a freshly allocated, fully populated particle with
// the local cell index it belongs to, for ReadInitialState's caller to
// file into the right cell.
type Assignment struct {
	CellIndex geom.Index3
	Particle  *particle.Particle
}

// ReadInitialState ingests every line of the whole-system initial
// state file, keeping only particles that fall within c.LocalBox.
// Serial numbers are assigned sequentially over the whole file
// regardless of which rank keeps the particle, so every rank agrees on
// a particle's serial without communication. total is the whole file's
// particle count, needed later to size the root rank's trajectory
// gather buffer.
func ReadInitialState(path string, c *Case, table *ljparam.Table, alloc func() *particle.Particle) (assignments []Assignment, total int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, errs.NewIOError(path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	serial := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 7 {
			return nil, 0, errs.NewDataError(path, lineNo,
				"expected \"name x y z u v w\", found %d fields", len(fields))
		}
		kind, err := table.Lookup(fields[0])
		if err != nil {
			return nil, 0, err
		}
		vals, perr := parseSixFloats(fields[1:], path, lineNo)
		if perr != nil {
			return nil, 0, perr
		}
		pos := geom.Vec3{X: vals[0], Y: vals[1], Z: vals[2]}
		vel := geom.Vec3{X: vals[3], Y: vals[4], Z: vals[5]}

		if c.LocalBox.Contains(pos) {
			p := alloc()
			p.Species = kind
			p.Serial = serial
			p.Pos = pos
			p.VelDt = vel.Scale(c.DeltaT)
			assignments = append(assignments, Assignment{
				CellIndex: c.CellIndexForPos(pos),
				Particle:  p,
			})
		}
		serial++
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, errs.NewIOError(path, err)
	}
	return assignments, serial, nil
}

// parseSixFloats converts the x,y,z,u,v,w fields of one initial-state
// line, recovering io.Atof's panic on a malformed value into a data
// error that names the offending file and line.
func parseSixFloats(fields []string, path string, lineNo int) (vals [6]float64, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = errs.NewDataError(path, lineNo, "floating point value expected among %v", fields)
		}
	}()
	for i, s := range fields {
		vals[i] = io.Atof(s)
	}
	return vals, nil
}
