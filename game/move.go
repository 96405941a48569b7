package game

// FiniteTurnLogic describes games that are deterministic, turn based, with a
// finite move set in every state and full information for every player.
// Views handled by the logic must be immutable: Apply returns a new view.
type FiniteTurnLogic interface {
	// CurrentPlayer returns the seat that is supposed to make the next move
	CurrentPlayer(view View) int
	Moves(view View) []Move
	IsTerminal(view View) bool
	Apply(view View, move Move) View
	// Evaluate scores the view from the point of view of seat; higher is better
	Evaluate(view View, seat int) float64
}
