package game

// evaluateStability marks every disk that can no longer be captured and
// tallies the stability counters. Marks are never removed: a stable disk stays
// stable in every later position, and newly marked disks can unlock their
// neighbours, so the scan repeats until a pass marks nothing new.
func (b *Board) evaluateStability() {
	for changed := true; changed; {
		changed = false
		for row := 0; row < Size; row++ {
			for col := 0; col < Size; col++ {
				disk := b.cells[row][col]
				if disk == Empty || b.stable[row][col] != Empty {
					continue
				}
				if b.safeAxes(Position{Row: row, Col: col}) == len(axes) {
					b.stable[row][col] = disk
					changed = true
				}
			}
		}
	}

	b.blackStable, b.whiteStable = 0, 0
	b.blackSemiStable, b.whiteSemiStable = 0, 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			disk := b.cells[row][col]
			if disk == Empty {
				continue
			}
			if b.stable[row][col] != Empty {
				if disk == Black {
					b.blackStable++
				} else {
					b.whiteStable++
				}
				continue
			}

			safe := b.safeAxes(Position{Row: row, Col: col})
			if disk == Black {
				b.blackSemiStable += safe
			} else {
				b.whiteSemiStable += safe
			}
		}
	}
}

func (b *Board) safeAxes(p Position) int {
	safe := 0
	for _, axis := range axes {
		if b.axisSafe(p, axis) {
			safe++
		}
	}
	return safe
}

// axisSafe reports whether the disk at p can never be flanked along axis.
// That holds when an immediate neighbour on the axis is the board edge or a
// stable disk of the same color, or when both walks outward cross only
// occupied cells before reaching the edge or a stable disk of either color.
func (b *Board) axisSafe(p Position, axis direction) bool {
	disk := b.at(p)
	resolved := 0

	for _, d := range [2]direction{axis, axis.reverse()} {
		next := p.step(d)
		if !next.InBounds() || b.stable[next.Row][next.Col] == disk {
			return true
		}
		if b.walkResolves(next, d) {
			resolved++
		}
	}
	return resolved == 2
}

// walkResolves follows d from p and reports whether it reaches the edge or a
// stable disk before meeting an empty cell.
func (b *Board) walkResolves(p Position, d direction) bool {
	for ; p.InBounds(); p = p.step(d) {
		if b.at(p) == Empty {
			return false
		}
		if b.stable[p.Row][p.Col] != Empty {
			return true
		}
	}
	return true
}

// StableAt returns the color of the stable disk at p, or Empty when the cell
// holds no stable disk.
func (b *Board) StableAt(p Position) Disk {
	if !p.InBounds() {
		return Empty
	}
	return b.stable[p.Row][p.Col]
}

// StableCount returns the number of stable disks of the given color.
func (b *Board) StableCount(d Disk) int {
	switch d {
	case Black:
		return b.blackStable
	case White:
		return b.whiteStable
	default:
		return 0
	}
}

// SemiStableDirections returns, summed over the non-stable disks of the given
// color, the number of axes on which each of them is already safe (0-3 each).
func (b *Board) SemiStableDirections(d Disk) int {
	switch d {
	case Black:
		return b.blackSemiStable
	case White:
		return b.whiteSemiStable
	default:
		return 0
	}
}

// SafeAxes returns on how many of the four axes the disk at p cannot be
// flanked. Empty and off-board cells report 0.
func (b *Board) SafeAxes(p Position) int {
	if !p.InBounds() || b.at(p) == Empty {
		return 0
	}
	return b.safeAxes(p)
}
