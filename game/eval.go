package game

// Weight of one stable disk relative to one semi-stable direction.
const stableWeight = 100

// EvaluateStability weighs stable disks heavily and uses the count of
// semi-stable directions as a tie breaker, from the current player's perspective:
// 100*(own stable - opponent stable) + (own semi-stable directions - opponent's).
func EvaluateStability(b *Board) int {
	own, opponent := b.player, b.player.Opponent()
	return stableWeight*(b.StableCount(own)-b.StableCount(opponent)) +
		(b.SemiStableDirections(own) - b.SemiStableDirections(opponent))
}

// EvaluateDiskCount is the plain disk difference from the current player's perspective
func EvaluateDiskCount(b *Board) int {
	return b.Count(b.player) - b.Count(b.player.Opponent())
}

// squareWeights favours corners and punishes the squares that hand corners to the opponent.
var squareWeights = [Size][Size]int{
	{100, -20, 10, 5, 5, 10, -20, 100},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{10, -2, 5, 1, 1, 5, -2, 10},
	{5, -2, 1, 1, 1, 1, -2, 5},
	{5, -2, 1, 1, 1, 1, -2, 5},
	{10, -2, 5, 1, 1, 5, -2, 10},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{100, -20, 10, 5, 5, 10, -20, 100},
}

// EvaluatePositional sums square weights of own disks minus the opponent's.
func EvaluatePositional(b *Board) int {
	score := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			switch b.cells[row][col] {
			case b.player:
				score += squareWeights[row][col]
			case b.player.Opponent():
				score -= squareWeights[row][col]
			}
		}
	}
	return score
}

// Evaluators maps the names accepted on the command line to evaluation functions.
var Evaluators = map[string]Evaluate{
	"stability":  EvaluateStability,
	"disks":      EvaluateDiskCount,
	"positional": EvaluatePositional,
}
