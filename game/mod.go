package game

import (
	"errors"
	"fmt"
)

// Size is the number of rows and columns on the board.
const Size = 8

// Disk is the content of a cell, and doubles as the player owning that color.
type Disk int8

const (
	Empty Disk = iota
	Black
	White
)

// Opponent returns the other color. Empty has no opponent.
func (d Disk) Opponent() Disk {
	switch d {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (d Disk) String() string {
	switch d {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Empty"
	}
}

type StateHash uint64

// Evaluate scores a board from the perspective of the player to move.
// Larger is better for that player.
type Evaluate func(*Board) int

var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrOutOfBounds  = fmt.Errorf("%w: position out of bounds", ErrIllegalMove)
	ErrOccupied     = fmt.Errorf("%w: cell is occupied", ErrIllegalMove)
	ErrNoLegalMoves = errors.New("no legal moves")
	ErrCannotPass   = errors.New("cannot pass: a legal move is available")
	ErrGameOver     = errors.New("game is over")
)
