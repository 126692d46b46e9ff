//go:build debug

package cell

import (
	"github.com/cpmech/mdlj/errs"
	"github.com/cpmech/mdlj/particle"
)

// assertContains panics if p is filed under a cell whose box does not
// contain it. Compiled in only under the debug build tag, matching
// the original's assert() calls that compile out in a release build.
func assertContains(c *Cell, p *particle.Particle) {
	if !c.Box.Contains(p.Pos) {
		errs.Raise("particle added to a cell that does not contain its position")
	}
}
