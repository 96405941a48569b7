package game

import "errors"

var (
	ErrInvalidGameInfo = errors.New("invalid game info: must contain number of players")
	ErrIllegalMove     = errors.New("illegal move")
	ErrNotCurrent      = errors.New("move from a player who is not allowed to act")
	ErrGameOver        = errors.New("game is over - no moves allowed")
)

// View is an opaque, player-specific projection of the game state.
type View any

// Move is an opaque move understood by the game that produced the view.
type Move any

// Info describes how many players a game accepts. Either Players is set (exact
// count) or MinPlayers and MaxPlayers form a range.
type Info struct {
	Players    int
	MinPlayers int
	MaxPlayers int
}

// Exact returns info for a game with a fixed number of players.
func Exact(n int) Info {
	return Info{Players: n}
}

// Range returns info for a game that accepts min to max players.
func Range(min, max int) Info {
	return Info{MinPlayers: min, MaxPlayers: max}
}

// Bounds resolves the info into a (min, max) pair.
func (i Info) Bounds() (min, max int, err error) {
	if i.Players > 0 {
		return i.Players, i.Players, nil
	}
	if i.MinPlayers > 0 && i.MaxPlayers >= i.MinPlayers {
		return i.MinPlayers, i.MaxPlayers, nil
	}
	return 0, 0, ErrInvalidGameInfo
}

// Game is a rule engine driven by the tournament engine. Players are addressed by
// seat, their index in the roster passed to PrepareNewGame.
type Game interface {
	Info() Info
	PrepareNewGame(players []Player) error
	PlayerView(seat int) View
	// CurrentPlayers returns the seats allowed to act this turn
	CurrentPlayers() []int
	// SetPlayersMoves applies all moves of the turn as one transition
	SetPlayersMoves(moves map[int]Move) error
	IsGameOver() bool
	// Result must be comparable across seats if the game is used with pools
	Result(seat int) float64
}

// Player is a game participant. Standalone players are owned by the configuration,
// the others are produced by a Pool for a single game.
type Player interface {
	Name() string
	SetSeat(seat int)
	PrepareNewGame()
	SetCurrentView(view View)
	NextMove() (Move, error)
	// TrainGameOver is a notification only
	TrainGameOver(result float64)
}

// Outcome is the result of one pool-produced player, reported in draw order.
type Outcome struct {
	Player Player
	Result float64
}

// Pool is a bounded generator of up to MaxCount players per game. It owns its
// population and outlives individual games.
type Pool interface {
	Name() string
	MaxCount() int
	Player() (Player, error)
	TrainOnGameOver(outcomes []Outcome) error
	PrepareNewGame()
}
