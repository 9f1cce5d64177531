package runner

// Snapshot contains the observable state of a game at one tick.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Edition    string
	Phase      string
	Paused     bool
	Frame      int
	Speed      float64
	Score      int
	Multiplier int
	FinalScore int // Published score of the last finished run
	HighScore  int
	Sliding    bool

	PlayerX, PlayerY float64
	PlayerDY         float64

	Platforms int
	Orbs      int
	Obstacles int
	Particles int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	p := s.Player()
	return Snapshot{
		Edition:    string(g.edition),
		Phase:      s.Phase().String(),
		Paused:     g.paused,
		Frame:      s.Frame(),
		Speed:      s.Speed(),
		Score:      s.Score(),
		Multiplier: s.Multiplier(),
		FinalScore: s.LastFinalScore(),
		HighScore:  s.HighScore(),
		Sliding:    s.Sliding(),
		PlayerX:    p.X,
		PlayerY:    p.Y,
		PlayerDY:   p.DY,
		Platforms:  len(s.Platforms()),
		Orbs:       len(s.Orbs()),
		Obstacles:  len(s.Obstacles()),
		Particles:  len(s.Particles()),
	}
}
