package blockgame

// Snapshot contains the observable state of a game for determinism tests.
type Snapshot struct {
	Tick    uint64
	BallX   int
	BallY   int
	BallVX  int // Velocity scaled by 1000
	BallVY  int // Velocity scaled by 1000
	PaddleX int
	Score   int
	Lives   int
	Level   int
	Live    int // Blocks still standing
	State   string
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tick,
		BallX:   int(g.ball.Position.X),
		BallY:   int(g.ball.Position.Y),
		BallVX:  int(g.ball.Velocity.X * 1000),
		BallVY:  int(g.ball.Velocity.Y * 1000),
		PaddleX: int(g.seat.Paddle.Position.X),
		Score:   g.seat.Score.Current(),
		Lives:   g.lives,
		Level:   g.level,
		Live:    g.grid.Live(),
		State:   g.monitor.Current().String(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.BallX, snap.BallY, snap.BallVX, snap.BallVY, snap.PaddleX,
		snap.Score, snap.Lives, snap.Level, snap.Live,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, r := range snap.State {
		h = h*31 + uint64(r)
	}
	return h
}
