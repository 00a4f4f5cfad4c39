package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Position is a zero-indexed (row, column) cell coordinate.
type Position struct {
	Row int
	Col int
}

// NoMove is returned when the player to move has nothing to play.
var NoMove = Position{Row: -1, Col: -1}

func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// String uses algebraic notation: column letter then 1-based row, so (2,3) is "d3".
func (p Position) String() string {
	if !p.InBounds() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+p.Col, p.Row+1)
}

func (p Position) step(d direction) Position {
	return Position{Row: p.Row + d.row, Col: p.Col + d.col}
}

// ParsePosition accepts algebraic notation ("d3") or a zero-indexed "row,col" pair ("2,3").
func ParsePosition(s string) (Position, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	var p Position
	if row, col, ok := strings.Cut(s, ","); ok {
		r, err := strconv.Atoi(strings.TrimSpace(row))
		if err != nil {
			return NoMove, fmt.Errorf("parse position %q: bad row: %w", s, err)
		}
		c, err := strconv.Atoi(strings.TrimSpace(col))
		if err != nil {
			return NoMove, fmt.Errorf("parse position %q: bad column: %w", s, err)
		}
		p = Position{Row: r, Col: c}
	} else {
		if len(s) != 2 || s[0] < 'a' || s[0] > 'z' || s[1] < '0' || s[1] > '9' {
			return NoMove, fmt.Errorf("parse position %q: expected a column letter and a row digit like d3", s)
		}
		p = Position{Row: int(s[1] - '1'), Col: int(s[0] - 'a')}
	}

	if !p.InBounds() {
		return NoMove, fmt.Errorf("parse position %q: %w", s, ErrOutOfBounds)
	}
	return p, nil
}

type direction struct {
	row int
	col int
}

func (d direction) reverse() direction {
	return direction{row: -d.row, col: -d.col}
}

// The eight compass directions a line of disks can run in.
var directions = [8]direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// axes holds one half of each opposite pair: vertical, horizontal and the two diagonals.
var axes = [4]direction{
	{-1, 0},
	{0, 1},
	{-1, -1},
	{-1, 1},
}
