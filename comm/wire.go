// Package comm implements the 26-direction halo exchange: the wire
// record layouts, per-direction send/receive buffers, and the MPI
// communicator that drives the two-phase non-blocking exchange
// protocol and the root-gather of trajectory/energy data.
package comm

// FullRecord is exchanged when a particle migrates to a neighboring
// process: every field needed to resume its simulation there.
type FullRecord struct {
	Species, Serial          int32
	Rx, Ry, Rz               float64
	VdtX, VdtY, VdtZ         float64
	Adt2X, Adt2Y, Adt2Z      float64
}

// PosRecord is exchanged for halo (ghost) copies: only what the force
// kernel needs to compute an interaction, never velocity or
// acceleration.
type PosRecord struct {
	Species  int32
	Rx, Ry, Rz float64
}

// TrajRecord is exchanged when gathering the whole system's state to
// the root rank for trajectory output.
type TrajRecord struct {
	Species, Serial int32
	Rx, Ry, Rz      float64
	Vx, Vy, Vz      float64
}
