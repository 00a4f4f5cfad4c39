package game

import (
	"fmt"
	"strings"
)

// ParseBoard builds a board from a diagram of Size rows. Cells are 'B' or 'X'
// for Black, 'W' or 'O' for White and '.', '-' or '*' for empty; spaces and
// blank lines are ignored. player is the color to move.
func ParseBoard(diagram string, player Disk) (*Board, error) {
	if player != Black && player != White {
		return nil, fmt.Errorf("parse board: player must be Black or White, got %v", player)
	}

	b := &Board{player: player}
	row := 0
	for _, line := range strings.Split(diagram, "\n") {
		line = strings.ReplaceAll(strings.TrimSpace(line), " ", "")
		if line == "" {
			continue
		}
		if row >= Size {
			return nil, fmt.Errorf("parse board: more than %d rows", Size)
		}
		if len(line) != Size {
			return nil, fmt.Errorf("parse board: row %d has %d cells, want %d", row+1, len(line), Size)
		}
		for col, c := range line {
			switch c {
			case 'B', 'b', 'X', 'x':
				b.cells[row][col] = Black
			case 'W', 'w', 'O', 'o':
				b.cells[row][col] = White
			case '.', '-', '*':
				b.cells[row][col] = Empty
			default:
				return nil, fmt.Errorf("parse board: unexpected cell %q at %v", c, Position{Row: row, Col: col})
			}
		}
		row++
	}
	if row != Size {
		return nil, fmt.Errorf("parse board: got %d rows, want %d", row, Size)
	}

	b.recomputeAll()
	return b, nil
}

// String draws the board with column letters and row numbers. Legal
// destinations for the player to move are shown as '*'.
func (b *Board) String() string {
	var sb strings.Builder

	sb.WriteString(" ")
	for col := 0; col < Size; col++ {
		fmt.Fprintf(&sb, " %c", 'a'+col)
	}
	sb.WriteString("\n")

	for row := 0; row < Size; row++ {
		fmt.Fprintf(&sb, "%d", row+1)
		for col := 0; col < Size; col++ {
			c := "."
			switch {
			case b.cells[row][col] == Black:
				c = "B"
			case b.cells[row][col] == White:
				c = "W"
			case b.legal[row][col]:
				c = "*"
			}
			sb.WriteString(" " + c)
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "Black %d  White %d  %v to move", b.blackCount, b.whiteCount, b.player)
	return sb.String()
}
