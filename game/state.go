package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// Board is one position of an Othello game. Boards are never mutated once
// returned to a caller: Play and Pass always derive a new one.
type Board struct {
	cells  [Size][Size]Disk
	legal  [Size][Size]bool // overlay of legal destinations for player
	stable [Size][Size]Disk // color of a stable disk, Empty if not (yet) stable
	player Disk             // player to move
	moves  []Position       // legal destinations, row-major

	blackCount int
	whiteCount int

	blackStable     int
	whiteStable     int
	blackSemiStable int // safe axes summed over non-stable black disks
	whiteSemiStable int

	flipped int // disks flipped by the move that produced this board
}

// NewBoard returns the standard starting position with Black to move.
func NewBoard() *Board {
	b := &Board{player: Black}
	mid := Size / 2
	b.cells[mid-1][mid-1], b.cells[mid][mid] = White, White
	b.cells[mid-1][mid], b.cells[mid][mid-1] = Black, Black
	b.recomputeAll()
	return b
}

func (b *Board) clone() *Board {
	nb := *b // arrays are copied by value
	nb.moves = nil
	nb.flipped = 0
	return &nb
}

// recomputeAll refreshes every derived field after the grid or the player changed.
func (b *Board) recomputeAll() {
	b.evaluateStability()
	b.updateCounts()
	b.evaluateLegalMoves()
}

func (b *Board) updateCounts() {
	b.blackCount, b.whiteCount = 0, 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			switch b.cells[row][col] {
			case Black:
				b.blackCount++
			case White:
				b.whiteCount++
			}
		}
	}
}

func (b *Board) evaluateLegalMoves() {
	b.legal = [Size][Size]bool{}
	b.moves = b.findLegalMoves(b.player)
	for _, p := range b.moves {
		b.legal[p.Row][p.Col] = true
	}
}

func (b *Board) at(p Position) Disk {
	return b.cells[p.Row][p.Col]
}

// Player returns the color to move.
func (b *Board) Player() Disk {
	return b.player
}

// Cell returns the disk at p, or Empty when p is off the board.
func (b *Board) Cell(p Position) Disk {
	if !p.InBounds() {
		return Empty
	}
	return b.at(p)
}

// Cells returns a copy of the grid.
func (b *Board) Cells() [Size][Size]Disk {
	return b.cells
}

// IsLegal reports whether p is marked as a legal destination for the player to move.
func (b *Board) IsLegal(p Position) bool {
	return p.InBounds() && b.legal[p.Row][p.Col]
}

// LegalMoves returns the legal destinations for the player to move in row-major order.
func (b *Board) LegalMoves() []Position {
	moves := make([]Position, len(b.moves))
	copy(moves, b.moves)
	return moves
}

func (b *Board) BlackCount() int { return b.blackCount }
func (b *Board) WhiteCount() int { return b.whiteCount }
func (b *Board) EmptyCount() int { return Size*Size - b.blackCount - b.whiteCount }

// Count returns the number of disks of the given color.
func (b *Board) Count(d Disk) int {
	switch d {
	case Black:
		return b.blackCount
	case White:
		return b.whiteCount
	default:
		return b.EmptyCount()
	}
}

// Flipped returns the number of disks captured by the move that produced b.
func (b *Board) Flipped() int {
	return b.flipped
}

// Play places a disk for the player to move at p, captures, and hands the turn
// to the opponent. The input board is left untouched; a rejected move returns
// an error wrapping ErrIllegalMove and no board.
func Play(b *Board, p Position) (*Board, error) {
	if !p.InBounds() {
		return nil, fmt.Errorf("play %v: %w", p, ErrOutOfBounds)
	}
	if b.at(p) != Empty {
		return nil, fmt.Errorf("play %v: %w", p, ErrOccupied)
	}
	if !b.legal[p.Row][p.Col] {
		return nil, fmt.Errorf("play %v for %v: %w", p, b.player, ErrIllegalMove)
	}

	nb := b.clone()
	nb.cells[p.Row][p.Col] = nb.player
	nb.flipped = nb.capture(p)
	nb.player = nb.player.Opponent()
	nb.recomputeAll()
	return nb, nil
}

// Pass hands the turn to the opponent. It is only allowed when the player to
// move is stuck and the game is not over.
func Pass(b *Board) (*Board, error) {
	if len(b.moves) > 0 {
		return nil, ErrCannotPass
	}
	if b.IsOver() {
		return nil, ErrGameOver
	}

	nb := b.clone()
	nb.player = nb.player.Opponent()
	nb.recomputeAll()
	return nb, nil
}

// IsOver reports whether neither player has a legal move.
func (b *Board) IsOver() bool {
	return len(b.moves) == 0 && len(b.findLegalMoves(b.player.Opponent())) == 0
}

// Winner returns the color with more disks once the game is over. It returns
// Empty on a tie or while the game is still running.
func (b *Board) Winner() Disk {
	if !b.IsOver() {
		return Empty
	}
	switch {
	case b.blackCount > b.whiteCount:
		return Black
	case b.whiteCount > b.blackCount:
		return White
	default:
		return Empty
	}
}

// Hash identifies the grid and the player to move.
func (b *Board) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int8(b.player))
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			binary.Write(hasher, binary.LittleEndian, int8(b.cells[row][col]))
		}
	}

	return StateHash(hasher.Sum64())
}
