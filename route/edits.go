package route

// PushBack inserts node as the last interior position, immediately before
// the dump sandwich.
func (r *Route) PushBack(nodeID int) {
	pos := r.dumpPos()
	r.insertAt(nodeID, pos)
	r.evalFrom(pos)
}

// Insert places node at pos, shifting the sandwich and any later interior
// nodes one position to the right. pos must be in [1, dumpPos()].
func (r *Route) Insert(nodeID, pos int) error {
	if err := r.checkInsertable(pos); err != nil {
		return err
	}
	r.insertAt(nodeID, pos)
	r.evalFrom(pos)
	return nil
}

func (r *Route) insertAt(nodeID, pos int) {
	r.nodes = append(r.nodes, 0)
	copy(r.nodes[pos+1:], r.nodes[pos:len(r.nodes)-1])
	r.nodes[pos] = nodeID
	r.st = append(r.st, state{})
}

// Erase removes the interior node at pos. pos must be in [1, interiorLast()].
func (r *Route) Erase(pos int) error {
	if err := r.checkInterior(pos); err != nil {
		return err
	}
	r.eraseAt(pos)
	r.evalFrom(pos)
	return nil
}

func (r *Route) eraseAt(pos int) {
	copy(r.nodes[pos:], r.nodes[pos+1:])
	r.nodes = r.nodes[:len(r.nodes)-1]
	r.st = r.st[:len(r.st)-1]
}

// EraseRange removes the interior positions [from, to] inclusive.
func (r *Route) EraseRange(from, to int) error {
	if err := r.checkInterior(from); err != nil {
		return err
	}
	if err := r.checkInterior(to); err != nil {
		return err
	}
	if from > to {
		return ErrPositionOutOfRange
	}
	count := to - from + 1
	copy(r.nodes[from:], r.nodes[to+1:])
	r.nodes = r.nodes[:len(r.nodes)-count]
	r.st = r.st[:len(r.st)-count]
	r.evalFrom(from)
	return nil
}

// SwapPositions exchanges the interior nodes at i and j.
func (r *Route) SwapPositions(i, j int) error {
	if err := r.checkInterior(i); err != nil {
		return err
	}
	if err := r.checkInterior(j); err != nil {
		return err
	}
	r.nodes[i], r.nodes[j] = r.nodes[j], r.nodes[i]
	from := i
	if j < from {
		from = j
	}
	r.evalFrom(from)
	return nil
}

// MovePosition removes the node at from and reinserts it at to, where to
// is measured against the route as it reads once the gap left by from
// has already closed.
func (r *Route) MovePosition(from, to int) error {
	if err := r.checkInterior(from); err != nil {
		return err
	}
	// Validate the destination against the post-removal length before
	// mutating anything, so a rejected move leaves the route untouched.
	postDumpPos := r.dumpPos() - 1
	if to < 1 || to > postDumpPos {
		return ErrSandwichViolation
	}

	nodeID := r.nodes[from]
	r.eraseAt(from)
	r.insertAt(nodeID, to)
	start := from
	if to < start {
		start = to
	}
	r.evalFrom(start)
	return nil
}

// Reverse reverses the interior segment [i, j] (i <= j) in place.
func (r *Route) Reverse(i, j int) error {
	if err := r.checkInterior(i); err != nil {
		return err
	}
	if err := r.checkInterior(j); err != nil {
		return err
	}
	if i > j {
		return ErrPositionOutOfRange
	}
	for lo, hi := i, j; lo < hi; lo, hi = lo+1, hi-1 {
		r.nodes[lo], r.nodes[hi] = r.nodes[hi], r.nodes[lo]
	}
	r.evalFrom(i)
	return nil
}

// MoveReverse removes the segment [i, j], reverses it, and reinserts it
// at dest, measured against the route once the gap has closed (as with
// MovePosition).
func (r *Route) MoveReverse(i, j, dest int) error {
	if err := r.checkInterior(i); err != nil {
		return err
	}
	if err := r.checkInterior(j); err != nil {
		return err
	}
	if i > j {
		return ErrPositionOutOfRange
	}
	width := j - i + 1

	postLen := len(r.nodes) - width
	postDumpPos := postLen - 2
	if dest < 1 || dest > postDumpPos {
		return ErrSandwichViolation
	}

	seg := make([]int, width)
	copy(seg, r.nodes[i:j+1])
	for lo, hi := 0, len(seg)-1; lo < hi; lo, hi = lo+1, hi-1 {
		seg[lo], seg[hi] = seg[hi], seg[lo]
	}

	remaining := make([]int, 0, postLen)
	remaining = append(remaining, r.nodes[:i]...)
	remaining = append(remaining, r.nodes[j+1:]...)

	final := make([]int, 0, len(r.nodes))
	final = append(final, remaining[:dest]...)
	final = append(final, seg...)
	final = append(final, remaining[dest:]...)

	start := i
	if dest < start {
		start = dest
	}

	oldSt := r.st
	r.nodes = final
	r.st = make([]state, len(final))
	copy(r.st[:start], oldSt[:start])
	r.evalFrom(start)
	return nil
}

// SwapWith exchanges the interior node at position i of r with the
// interior node at position j of other. Both routes re-evaluate from
// their respective touched position.
func (r *Route) SwapWith(other *Route, i, j int) error {
	if err := r.checkInterior(i); err != nil {
		return err
	}
	if err := other.checkInterior(j); err != nil {
		return err
	}
	r.nodes[i], other.nodes[j] = other.nodes[j], r.nodes[i]
	r.evalFrom(i)
	other.evalFrom(j)
	return nil
}
