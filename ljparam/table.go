// Package ljparam holds the Lennard-Jones species table and the
// scaled per-species and per-pair constants derived from it for a
// given case (which fixes the timestep and cutoff radius).
package ljparam

import (
	"math"
	"strings"

	"github.com/cpmech/mdlj/errs"
)

// source is one entry of the fixed species table, carried over
// verbatim from the original implementation's constant list.
type source struct {
	Label   string
	Mass    float64 // atomic mass units
	Epsilon float64 // well depth, J
	Sigma   float64 // finite-distance zero-potential, angstrom
}

// sourceParams is the fixed 9-species table. Units and values match
// the original source exactly; see DESIGN.md for why they are kept as
// data rather than reduced to a configurable policy.
var sourceParams = []source{
	{"He", 4.0026022, 0.141e-21, 2.56},
	{"Ne", 20.17976, 0.492e-21, 2.75},
	{"Ar", 39.948, 1.70e-21, 3.40},
	{"Kr", 83.7982, 2.30e-21, 3.68},
	{"Xe", 131.2936, 3.1e-21, 4.07},
	{"N2", 28.01344, 1.25e-21, 3.70},
	{"I2", 253.808946, 7.6e-21, 4.98},
	{"Hg", 200.592, 11.74e-21, 2.90},
	{"CCl4", 153.82358, 4.51e-21, 5.88},
}

// combiningK is the SI-to-reduced-unit conversion constant used when
// deriving the pairwise a/b coefficients below.
const combiningK = 6.02e16

// Scaled holds the per-species constants needed by the velocity-Verlet
// update once delta_t has folded into the inner loop.
type Scaled struct {
	Dt2By2M float64 // delta_t^2 / (2*mass), multiplies force to get position increment
	MBy2Dt2 float64 // mass / (2*delta_t^2), multiplies scaled-velocity-squared for kinetic energy
}

// PairScaled holds the Lennard-Jones a/b coefficients for one ordered
// pair of species, combined via the Lorentz-Berthelot rule.
type PairScaled struct {
	A, B float64
}

// Table is the full set of scaled constants derived for one case.
type Table struct {
	labels   []string
	single   []Scaled
	pair     [][]PairScaled
	cutoffSq float64
}

// NewTable derives the scaled constants for every species in the
// fixed table, given the case's timestep and cutoff radius.
func NewTable(deltaT, cutoffRadius float64) *Table {
	n := len(sourceParams)
	t := &Table{
		labels:   make([]string, n),
		single:   make([]Scaled, n),
		pair:     make([][]PairScaled, n),
		cutoffSq: cutoffRadius * cutoffRadius,
	}
	for i, alpha := range sourceParams {
		t.labels[i] = alpha.Label
		t.single[i] = Scaled{
			Dt2By2M: deltaT * deltaT / (2 * alpha.Mass),
			MBy2Dt2: alpha.Mass / (2 * deltaT * deltaT),
		}
		t.pair[i] = make([]PairScaled, n)
		for j, beta := range sourceParams {
			eps := math.Sqrt(alpha.Epsilon * beta.Epsilon)
			sig := (alpha.Sigma + beta.Sigma) / 2
			sig6 := sig * sig * sig * sig * sig * sig
			t.pair[i][j] = PairScaled{
				A: -48 * eps * combiningK * sig6 * sig6,
				B: 24 * eps * combiningK * sig6,
			}
		}
	}
	return t
}

// CutoffSq returns the squared cutoff radius used to build the table.
func (t *Table) CutoffSq() float64 { return t.cutoffSq }

// Single returns the scaled per-species constants for species kind.
func (t *Table) Single(kind int) Scaled { return t.single[kind] }

// Pair returns the scaled pair coefficients for the ordered pair
// (kind i, kind j).
func (t *Table) Pair(i, j int) PairScaled { return t.pair[i][j] }

// Lookup resolves a species label to its index in the table, or
// returns a data error listing every supported label.
func (t *Table) Lookup(label string) (int, error) {
	for i, l := range t.labels {
		if l == label {
			return i, nil
		}
	}
	return 0, errs.NewDataError("", 0,
		"molecule name %q not found. Supported names are: %s",
		label, strings.Join(t.labels, ", "))
}
