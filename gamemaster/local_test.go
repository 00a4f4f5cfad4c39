package gamemaster

import (
	"errors"
	"othello/game"
	"othello/searcher"
	"testing"
)

// Black takes a1; White is then stuck while Black can still play c8.
const whiteGetsStuck = `
. W B . . . . .
. . . . . . . .
. . . . . . . .
. . . . . . . .
. . . . . . . .
. . . . . . . .
. . . . . . . .
B W . . . . . .`

func startFrom(t *testing.T, diagram string, player game.Disk) (*localEngine, UpdateGetter) {
	t.Helper()
	engine := NewLocalEngine()
	_, getUpdate := engine.Init()
	board, err := game.ParseBoard(diagram, player)
	if err != nil {
		t.Fatalf("invalid fixture: %v", err)
	}
	engine.board = board // force internal state
	engine.tree = searcher.NewGameTree(board)
	return engine, getUpdate
}

func TestLocalEngineInit(t *testing.T) {
	engine := NewLocalEngine()
	board, getUpdate := engine.Init()

	if board == nil {
		t.Fatal("expected a board, got nil")
	}
	if board.Hash() != game.NewBoard().Hash() {
		t.Errorf("expected the starting position, got\n%v", board)
	}
	if engine.State() != board {
		t.Error("expected State to return the starting board")
	}

	// Check that getUpdate returns nil if no moves have been played
	move, next := getUpdate()
	if move != game.NoMove || next != nil {
		t.Errorf("expected no update yet, got move=%v board=%v", move, next)
	}
}

func TestLocalEnginePlay_ValidMove(t *testing.T) {
	engine := NewLocalEngine()
	_, getUpdate := engine.Init()

	d3 := game.Position{Row: 2, Col: 3}
	if err := engine.Play(d3); err != nil {
		t.Fatalf("expected no error for a valid move, got %v", err)
	}

	move, next := getUpdate()
	if next == nil {
		t.Fatal("expected an update after playing a move, got none")
	}
	if move != d3 {
		t.Errorf("expected move %v, got %v", d3, move)
	}
	if next.BlackCount() != 4 || next.WhiteCount() != 1 {
		t.Errorf("expected 4 black and 1 white disks, got %d and %d", next.BlackCount(), next.WhiteCount())
	}
	if next.Player() != game.White {
		t.Errorf("expected White to move, got %v", next.Player())
	}
}

func TestLocalEnginePlay_IllegalMove(t *testing.T) {
	engine := NewLocalEngine()
	if err := engine.Play(game.Position{Row: 2, Col: 3}); err == nil {
		t.Error("expected error before Init, got none")
	}

	board, _ := engine.Init()
	cases := map[game.Position]error{
		{Row: 0, Col: 0}:  game.ErrIllegalMove,
		{Row: 3, Col: 3}:  game.ErrOccupied,
		{Row: 8, Col: 0}:  game.ErrOutOfBounds,
		{Row: -1, Col: 2}: game.ErrOutOfBounds,
	}
	for move, want := range cases {
		if err := engine.Play(move); !errors.Is(err, want) {
			t.Errorf("move %v: expected %v, got %v", move, want, err)
		}
	}
	if engine.State() != board {
		t.Error("expected illegal moves to leave the board unchanged")
	}
}

func TestLocalEnginePlay_AutomaticPass(t *testing.T) {
	engine, getUpdate := startFrom(t, whiteGetsStuck, game.Black)

	a1 := game.Position{Row: 0, Col: 0}
	if err := engine.Play(a1); err != nil {
		t.Fatalf("expected a1 to be legal, got %v", err)
	}

	move, board := getUpdate()
	if move != a1 || board == nil {
		t.Fatalf("expected the a1 update, got move=%v board=%v", move, board)
	}
	move, board = getUpdate()
	if move != game.NoMove || board == nil {
		t.Fatalf("expected White's pass, got move=%v board=%v", move, board)
	}
	if board.Player() != game.Black {
		t.Errorf("expected Black to move after the pass, got %v", board.Player())
	}
	if engine.State().Player() != game.Black {
		t.Errorf("expected the engine to hold Black's turn, got %v", engine.State().Player())
	}
}

func TestLocalEnginePlay_GameOver(t *testing.T) {
	engine, getUpdate := startFrom(t, whiteGetsStuck, game.Black)
	for _, move := range []game.Position{{Row: 0, Col: 0}, {Row: 7, Col: 2}} {
		if err := engine.Play(move); err != nil {
			t.Fatalf("did not expect error on %v, got %v", move, err)
		}
	}

	// a1, White's pass, c8, then the channel is closed
	for i := 0; i < 3; i++ {
		if _, board := getUpdate(); board == nil {
			t.Fatalf("expected update %d before the game ends", i)
		}
	}
	if move, board := getUpdate(); board != nil {
		t.Errorf("expected no updates after game over, got move=%v board=%v", move, board)
	}

	if winner := engine.State().Winner(); winner != game.Black {
		t.Errorf("expected Black to win, got %v", winner)
	}
	if err := engine.Play(game.Position{Row: 0, Col: 3}); !errors.Is(err, game.ErrGameOver) {
		t.Errorf("expected %v, got %v", game.ErrGameOver, err)
	}
	if move := engine.BestMove(2); move != game.NoMove {
		t.Errorf("expected no best move after game over, got %v", move)
	}
}

func TestLocalEngineBestMove(t *testing.T) {
	engine := NewLocalEngine()
	if move := engine.BestMove(1); move != game.NoMove {
		t.Errorf("expected no best move before Init, got %v", move)
	}

	board, _ := engine.Init()
	for _, depth := range []int{1, 2, 3} {
		want := searcher.NewGameTree(board, searcher.WithDepth(depth)).BestMove(board.Player())
		if got := engine.BestMove(depth); got != want {
			t.Errorf("depth %d: expected %v, got %v", depth, want, got)
		}
	}

	// The hint keeps working as the game moves on
	if err := engine.Play(game.Position{Row: 2, Col: 3}); err != nil {
		t.Fatal(err)
	}
	next := engine.State()
	want := searcher.NewGameTree(next, searcher.WithDepth(2)).BestMove(next.Player())
	if got := engine.BestMove(2); got != want {
		t.Errorf("expected %v after d3, got %v", want, got)
	}
}

func TestLocalEngine_IdenticalInitStates(t *testing.T) {
	first, _ := NewLocalEngine().Init()
	second, _ := NewLocalEngine().Init()

	if first == second {
		t.Error("expected separate boards for separate engines")
	}
	if first.Hash() != second.Hash() {
		t.Error("expected the same initial position, got differences")
	}
}

func TestLocalEngineBestMove_EvaluationFn(t *testing.T) {
	f5 := game.Position{Row: 4, Col: 5}
	// Scores a board low for the player to move (White) once Black holds f5
	preferF5 := func(b *game.Board) int {
		if b.Cell(f5) == game.Black {
			return -100
		}
		return 0
	}

	engine := NewLocalEngine(searcher.WithEvaluationFn(preferF5))
	engine.Init()
	if got := engine.BestMove(1); got != f5 {
		t.Errorf("expected the evaluation function to pick %v, got %v", f5, got)
	}
	if got := NewLocalEngine().BestMove(1); got != game.NoMove {
		t.Errorf("expected no best move before Init, got %v", got)
	}

	positional := NewLocalEngine(searcher.WithEvaluationFn(game.EvaluatePositional))
	positional.Init()
	for _, move := range []game.Position{{Row: 2, Col: 3}, {Row: 2, Col: 2}} {
		if err := positional.Play(move); err != nil {
			t.Fatal(err)
		}
	}
	board := positional.State()
	want := searcher.NewGameTree(board, searcher.WithDepth(2), searcher.WithEvaluationFn(game.EvaluatePositional)).
		BestMove(board.Player())
	if got := positional.BestMove(2); got != want {
		t.Errorf("expected the positional choice %v, got %v", want, got)
	}
}

func TestLocalEngineInit_ClosesPreviousGame(t *testing.T) {
	engine := NewLocalEngine()
	engine.Init()
	if err := engine.Play(game.Position{Row: 2, Col: 3}); err != nil {
		t.Fatal(err)
	}
	previous := engine.updateCh

	board, getUpdate := engine.Init()

	// The unread update is still delivered, then the old stream reports closed
	if _, ok := <-previous; !ok {
		t.Fatal("expected the pending update of the previous game")
	}
	if _, ok := <-previous; ok {
		t.Error("expected the previous game's stream to be closed")
	}
	if move, next := getUpdate(); next != nil {
		t.Errorf("expected no update in the new game, got move=%v", move)
	}
	if board.Hash() != game.NewBoard().Hash() {
		t.Error("expected a fresh starting position")
	}
}
