package engine

import (
	"fmt"

	"aitournament/game"
)

type mockPlayer struct {
	name     string
	seat     int
	prepared int
	views    []game.View
	trained  []float64
	err      error
}

func (m *mockPlayer) Name() string                  { return m.name }
func (m *mockPlayer) SetSeat(seat int)              { m.seat = seat }
func (m *mockPlayer) PrepareNewGame()               { m.prepared++ }
func (m *mockPlayer) SetCurrentView(view game.View) { m.views = append(m.views, view) }
func (m *mockPlayer) TrainGameOver(result float64)  { m.trained = append(m.trained, result) }

func (m *mockPlayer) NextMove() (game.Move, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.name, nil
}

type mockPool struct {
	name     string
	maxCount int
	drawn    int // this game
	issued   int // overall
	prepared int
	trained  [][]game.Outcome
	err      error
}

func (m *mockPool) Name() string    { return m.name }
func (m *mockPool) MaxCount() int   { return m.maxCount }
func (m *mockPool) PrepareNewGame() { m.prepared++; m.drawn = 0 }

func (m *mockPool) Player() (game.Player, error) {
	if m.drawn >= m.maxCount {
		return nil, fmt.Errorf("%s: drew %d of %d", m.name, m.drawn+1, m.maxCount)
	}
	m.drawn++
	m.issued++
	return &mockPlayer{name: fmt.Sprintf("%s-%d", m.name, m.issued)}, nil
}

func (m *mockPool) TrainOnGameOver(outcomes []game.Outcome) error {
	m.trained = append(m.trained, outcomes)
	return m.err
}

// mockGame lasts a fixed number of rounds in which seats move one after the
// other; seat 0 wins.
type mockGame struct {
	info     game.Info
	rounds   int
	players  []game.Player
	played   int
	moves    []map[int]game.Move
	prepared int
	err      error
}

func (m *mockGame) Info() game.Info { return m.info }

func (m *mockGame) PrepareNewGame(players []game.Player) error {
	m.players = players
	m.played = 0
	m.prepared++
	return nil
}

func (m *mockGame) PlayerView(seat int) game.View { return fmt.Sprintf("view %d/%d", seat, m.played) }

func (m *mockGame) CurrentPlayers() []int { return []int{m.played % len(m.players)} }

func (m *mockGame) SetPlayersMoves(moves map[int]game.Move) error {
	if m.err != nil {
		return m.err
	}
	m.moves = append(m.moves, moves)
	m.played++
	return nil
}

func (m *mockGame) IsGameOver() bool { return m.played >= m.rounds }

func (m *mockGame) Result(seat int) float64 {
	if seat == 0 {
		return 1
	}
	return 0
}
