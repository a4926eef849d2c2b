package extrude

// PointArena is a reusable backing store for the points of one subpath.
//
// The arena keeps its storage across Reset calls; Len is the number of
// points currently recorded and is tracked separately from the capacity.
// Slices returned by Points alias the arena and are only valid until the
// next mutating call. Use Snapshot to obtain an independent copy.
type PointArena struct {
	buf []Point2
	n   int
}

// NewPointArena creates an arena with room for capacity points.
func NewPointArena(capacity int) *PointArena {
	return &PointArena{buf: make([]Point2, 0, max(capacity, 0))}
}

// Len returns the number of recorded points.
func (a *PointArena) Len() int {
	return a.n
}

// Cap returns the number of points the arena can hold without growing.
func (a *PointArena) Cap() int {
	return cap(a.buf)
}

// Reset forgets all recorded points. Storage is kept.
func (a *PointArena) Reset() {
	a.n = 0
}

// Reserve grows the arena so that at least n more points fit without
// reallocation.
func (a *PointArena) Reserve(n int) {
	if need := a.n + n; need > cap(a.buf) {
		grown := make([]Point2, a.n, need)
		copy(grown, a.buf[:a.n])
		a.buf = grown
	}
}

// Append records p unless it equals the last recorded point exactly.
// It reports whether the point was recorded.
func (a *PointArena) Append(p Point2) bool {
	if a.n > 0 && a.buf[a.n-1] == p {
		return false
	}
	if a.n < len(a.buf) {
		a.buf[a.n] = p
	} else {
		a.buf = append(a.buf, p)
	}
	a.n++
	return true
}

// At returns the i-th recorded point.
func (a *PointArena) At(i int) Point2 {
	if i < 0 || i >= a.n {
		panic("extrude: PointArena index out of range")
	}
	return a.buf[i]
}

// First returns the first recorded point.
func (a *PointArena) First() (Point2, bool) {
	if a.n == 0 {
		return Point2{}, false
	}
	return a.buf[0], true
}

// Last returns the last recorded point.
func (a *PointArena) Last() (Point2, bool) {
	if a.n == 0 {
		return Point2{}, false
	}
	return a.buf[a.n-1], true
}

// TrimLast drops the last recorded point.
func (a *PointArena) TrimLast() {
	if a.n > 0 {
		a.n--
	}
}

// Reverse reverses the order of the recorded points in place.
func (a *PointArena) Reverse() {
	for i, j := 0, a.n-1; i < j; i, j = i+1, j-1 {
		a.buf[i], a.buf[j] = a.buf[j], a.buf[i]
	}
}

// Points returns the recorded points. The slice aliases the arena.
func (a *PointArena) Points() []Point2 {
	return a.buf[:a.n]
}

// Snapshot returns a copy of the recorded points, or nil when empty.
func (a *PointArena) Snapshot() []Point2 {
	if a.n == 0 {
		return nil
	}
	out := make([]Point2, a.n)
	copy(out, a.buf[:a.n])
	return out
}
