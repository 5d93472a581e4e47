package ludo

// GameState is a copy of the board which is safe to read while the game continues.
type GameState struct {
	ID      string
	Turn    int
	Winner  int
	Finish  bool
	Players []*Player
}

func (g *Game) State() GameState {
	s := GameState{
		ID:     g.ID,
		Turn:   g.Turn,
		Winner: g.Winner,
		Finish: g.Finish,
	}
	for _, p := range g.Players {
		s.Players = append(s.Players, p.Copy())
	}
	return s
}

func (s *GameState) TurnPlayer() *Player {
	if s.Turn < 0 || s.Turn >= len(s.Players) {
		return nil
	}
	return s.Players[s.Turn]
}
