// Package particle implements the particle record and the intrusive
// doubly-linked list used both per-cell and as a process-wide free
// list of reusable records.
package particle

import "github.com/cpmech/mdlj/geom"

// Particle is one molecule. Pos is an absolute position; VelDt and
// AccDt2Half are already scaled by delta_t and delta_t^2/2
// respectively, so the inner update loop never multiplies by delta_t.
type Particle struct {
	Species    int
	Serial     int
	Pos        geom.Vec3
	VelDt      geom.Vec3
	AccDt2Half geom.Vec3

	next, prev *Particle
}

// List is an intrusive doubly-linked list of particles. The zero
// value is an empty list.
type List struct {
	head, tail *Particle
}

// Empty reports whether the list has no particles.
func (l *List) Empty() bool { return l.head == nil }

// Head returns the first particle, or nil if the list is empty.
func (l *List) Head() *Particle { return l.head }

// Next returns the particle following p in its list.
func Next(p *Particle) *Particle { return p.next }

// Append adds p to the tail of the list. p must not already belong to
// a list.
func (l *List) Append(p *Particle) {
	p.prev = l.tail
	p.next = nil
	if l.tail != nil {
		l.tail.next = p
	} else {
		l.head = p
	}
	l.tail = p
}

// Remove splices p out of the list. p must currently belong to l.
func (l *List) Remove(p *Particle) {
	if p.prev != nil {
		p.prev.next = p.next
	} else {
		l.head = p.next
	}
	if p.next != nil {
		p.next.prev = p.prev
	} else {
		l.tail = p.prev
	}
	p.next, p.prev = nil, nil
}

// RemoveTail removes and returns the last particle in the list, or
// nil if the list is empty. Used by the free-list arena to hand out a
// reusable record.
func (l *List) RemoveTail() *Particle {
	p := l.tail
	if p == nil {
		return nil
	}
	l.Remove(p)
	return p
}

// MoveAllTo splices every particle in l onto the tail of dst in O(1),
// leaving l empty.
func (l *List) MoveAllTo(dst *List) {
	if l.head == nil {
		return
	}
	if dst.tail != nil {
		dst.tail.next = l.head
		l.head.prev = dst.tail
	} else {
		dst.head = l.head
	}
	dst.tail = l.tail
	l.head, l.tail = nil, nil
}

// Count returns the number of particles currently in the list. O(n);
// intended for diagnostics and tests, not the hot path.
func (l *List) Count() int {
	n := 0
	for p := l.head; p != nil; p = p.next {
		n++
	}
	return n
}
