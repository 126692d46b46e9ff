package particle

// FreeList is a List used as an arena of reusable Particle records,
// grounded on MdProcData's allocateParticle/stockAllParticlesInList:
// particles leaving the simulation are spliced here instead of being
// discarded, and Alloc reuses one before allocating a fresh record.
type FreeList struct {
	list List
}

// Alloc returns a particle from the free list, or a freshly allocated
// one if the free list is empty.
func (f *FreeList) Alloc() *Particle {
	if p := f.list.RemoveTail(); p != nil {
		*p = Particle{}
		return p
	}
	return &Particle{}
}

// Release returns p to the free list for later reuse.
func (f *FreeList) Release(p *Particle) {
	f.list.Append(p)
}

// ReleaseAll splices every particle in src onto the free list.
func (f *FreeList) ReleaseAll(src *List) {
	src.MoveAllTo(&f.list)
}

// Len returns the number of particles currently held in reserve.
func (f *FreeList) Len() int { return f.list.Count() }
