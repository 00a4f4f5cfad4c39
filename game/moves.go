package game

// findLegalMoves returns every empty cell where player would sandwich at least
// one run of opponent disks, in row-major order and without duplicates.
func (b *Board) findLegalMoves(player Disk) []Position {
	var found [Size][Size]bool
	opponent := player.Opponent()

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.cells[row][col] != player {
				continue
			}
			origin := Position{Row: row, Col: col}
			for _, d := range directions {
				p := origin.step(d)
				if !p.InBounds() || b.at(p) != opponent {
					continue
				}
				for p.InBounds() && b.at(p) == opponent {
					p = p.step(d)
				}
				if p.InBounds() && b.at(p) == Empty {
					found[p.Row][p.Col] = true
				}
			}
		}
	}

	var moves []Position
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if found[row][col] {
				moves = append(moves, Position{Row: row, Col: col})
			}
		}
	}
	return moves
}

// capture flips, in every direction from p, the opponent run closed off by a
// disk of the player to move. It expects the mover's disk to be on p already
// and returns the number of flipped disks.
func (b *Board) capture(p Position) int {
	mover := b.player
	opponent := mover.Opponent()
	flipped := 0

	for _, d := range directions {
		end := p.step(d)
		for end.InBounds() && b.at(end) == opponent {
			end = end.step(d)
		}
		// Off the board or an empty cell: nothing is closed off this way
		if !end.InBounds() || b.at(end) != mover {
			continue
		}
		for q := p.step(d); q != end; q = q.step(d) {
			b.cells[q.Row][q.Col] = mover
			flipped++
		}
	}
	return flipped
}
