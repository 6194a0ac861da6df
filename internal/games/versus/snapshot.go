package versus

// Snapshot contains the observable state of a round for determinism tests.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick     uint64
	BallX    int
	BallY    int
	BallVX   int // Velocity scaled by 1000 (for precision)
	BallVY   int // Velocity scaled by 1000
	Speed    int // Speed factor scaled by 1e6
	Paddle1Y int
	Paddle2Y int
	Score1   int
	Score2   int
	TimeLeft int
	State    string
	Winner   int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		BallX:    int(g.ball.Position.X),
		BallY:    int(g.ball.Position.Y),
		BallVX:   int(g.ball.Velocity.X * 1000),
		BallVY:   int(g.ball.Velocity.Y * 1000),
		Speed:    int(g.ball.SpeedFactor() * 1e6),
		Paddle1Y: int(g.seats[0].Paddle.Position.Y),
		Paddle2Y: int(g.seats[1].Paddle.Position.Y),
		Score1:   g.seats[0].Score.Current(),
		Score2:   g.seats[1].Score.Current(),
		TimeLeft: g.timeLeft,
		State:    g.monitor.Current().String(),
		Winner:   g.winner,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.BallX, snap.BallY, snap.BallVX, snap.BallVY, snap.Speed,
		snap.Paddle1Y, snap.Paddle2Y, snap.Score1, snap.Score2,
		snap.TimeLeft, snap.Winner,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, r := range snap.State {
		h = h*31 + uint64(r)
	}
	return h
}
