package comm

// fullWidth and posWidth are the number of float64 slots one wire
// record occupies once flattened. gosl/mpi's point-to-point surface
// (like its collective AllReduceSum) is assumed to operate on flat
// []float64 buffers rather than arbitrary struct slices, so every
// record is packed/unpacked around the Isend/Irecv calls instead of
// being sent as a custom MPI datatype.
const (
	fullWidth = 11
	posWidth  = 4
)

func flattenFull(recs []FullRecord) []float64 {
	buf := make([]float64, len(recs)*fullWidth)
	for i, r := range recs {
		o := i * fullWidth
		buf[o+0] = float64(r.Species)
		buf[o+1] = float64(r.Serial)
		buf[o+2] = r.Rx
		buf[o+3] = r.Ry
		buf[o+4] = r.Rz
		buf[o+5] = r.VdtX
		buf[o+6] = r.VdtY
		buf[o+7] = r.VdtZ
		buf[o+8] = r.Adt2X
		buf[o+9] = r.Adt2Y
		buf[o+10] = r.Adt2Z
	}
	return buf
}

func unflattenFull(buf []float64) []FullRecord {
	n := len(buf) / fullWidth
	recs := make([]FullRecord, n)
	for i := range recs {
		o := i * fullWidth
		recs[i] = FullRecord{
			Species: int32(buf[o+0]),
			Serial:  int32(buf[o+1]),
			Rx:      buf[o+2], Ry: buf[o+3], Rz: buf[o+4],
			VdtX: buf[o+5], VdtY: buf[o+6], VdtZ: buf[o+7],
			Adt2X: buf[o+8], Adt2Y: buf[o+9], Adt2Z: buf[o+10],
		}
	}
	return recs
}

func flattenPos(recs []PosRecord) []float64 {
	buf := make([]float64, len(recs)*posWidth)
	for i, r := range recs {
		o := i * posWidth
		buf[o+0] = float64(r.Species)
		buf[o+1] = r.Rx
		buf[o+2] = r.Ry
		buf[o+3] = r.Rz
	}
	return buf
}

func unflattenPos(buf []float64) []PosRecord {
	n := len(buf) / posWidth
	recs := make([]PosRecord, n)
	for i := range recs {
		o := i * posWidth
		recs[i] = PosRecord{Species: int32(buf[o+0]), Rx: buf[o+1], Ry: buf[o+2], Rz: buf[o+3]}
	}
	return recs
}

func flattenCounts(counts []int32) []float64 {
	buf := make([]float64, len(counts))
	for i, c := range counts {
		buf[i] = float64(c)
	}
	return buf
}

func unflattenCounts(buf []float64) []int32 {
	counts := make([]int32, len(buf))
	for i, v := range buf {
		counts[i] = int32(v)
	}
	return counts
}
