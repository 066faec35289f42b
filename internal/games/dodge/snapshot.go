package dodge

// Snapshot contains the complete game state in primitive types,
// for determinism checks and debugging.
type Snapshot struct {
	Tick      int
	Phase     string
	Mode      int // 0=TimeTrial, 1=Endless
	PlayerX   int
	PlayerY   int
	BlockX    int
	BlockY    float64
	BlockV    float64
	ObstacleX int
	ObstacleY float64
	ObstacleV float64
	Score     int
	Level     int
	Highscore int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	return Snapshot{
		Tick:      g.tickCount,
		Phase:     g.phase.String(),
		Mode:      int(g.mode),
		PlayerX:   s.Player.X,
		PlayerY:   s.Player.Y,
		BlockX:    s.Block.X,
		BlockY:    s.Block.Y,
		BlockV:    s.Block.Speed,
		ObstacleX: s.Obstacle.X,
		ObstacleY: s.Obstacle.Y,
		ObstacleV: s.Obstacle.Speed,
		Score:     s.Difficulty.Score,
		Level:     s.Difficulty.Level,
		Highscore: g.highscore.Value(),
	}
}
