package main

import (
	"fmt"
	"io"
	"othello/game"
	"othello/searcher"
	"strings"

	"github.com/muesli/termenv"
)

// view prints boards with colors when the terminal supports them.
type view struct {
	out   *termenv.Output
	felt  termenv.Color
	black termenv.Color
	white termenv.Color
	hint  termenv.Color
}

func newView(w io.Writer) *view {
	out := termenv.NewOutput(w)
	return &view{
		out:   out,
		felt:  out.Color("#2e7d32"),
		black: out.Color("#000000"),
		white: out.Color("#ffffff"),
		hint:  out.Color("#ffd54f"),
	}
}

func (v *view) cell(b *game.Board, p game.Position) string {
	symbol, color := " ", v.hint
	switch {
	case b.Cell(p) == game.Black:
		symbol, color = "●", v.black
	case b.Cell(p) == game.White:
		symbol, color = "●", v.white
	case b.IsLegal(p):
		symbol = "·"
	}
	return v.out.String(" " + symbol).Foreground(color).Background(v.felt).String()
}

func (v *view) board(b *game.Board) {
	var sb strings.Builder
	sb.WriteString("   a b c d e f g h\n")
	for row := 0; row < game.Size; row++ {
		fmt.Fprintf(&sb, "%d ", row+1)
		for col := 0; col < game.Size; col++ {
			sb.WriteString(v.cell(b, game.Position{Row: row, Col: col}))
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "black %d, white %d", b.BlackCount(), b.WhiteCount())
	if !b.IsOver() {
		fmt.Fprintf(&sb, ", %v to move", b.Player())
	}
	sb.WriteString("\n")
	fmt.Fprint(v.out, sb.String())
}

// ply prints who played what, then the resulting board.
func (v *view) ply(segment searcher.Segment) {
	mover := segment.Board.Player().Opponent()
	if segment.Move == game.NoMove {
		v.message(fmt.Sprintf("%v has no legal move and passes", mover))
	} else {
		v.message(fmt.Sprintf("%v plays %v, flipping %d", mover, segment.Move, segment.Board.Flipped()))
	}
	v.board(segment.Board)
}

func (v *view) message(text string) {
	fmt.Fprintln(v.out, v.out.String(text).Bold().String())
}

func (v *view) result(winner game.Disk, black, white int) {
	if winner == game.Empty {
		v.message(fmt.Sprintf("Tie at %d-%d", black, white))
		return
	}
	v.message(fmt.Sprintf("%v wins %d-%d", winner, black, white))
}
