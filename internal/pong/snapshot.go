package pong

// Snapshot is the complete observable state of a match at one tick.
// Primitive fields only, so it stays cheap to compare in tests and
// stable to serialize if it ever needs to travel.
type Snapshot struct {
	Ticks       int
	BallX       int
	BallY       int
	BallVX      int
	BallVY      int
	PlayerY     int
	CPUY        int
	PlayerScore int
	CPUScore    int
}

// Snapshot captures the current match state.
func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		Ticks:       m.ticks,
		BallX:       m.ball.Rect.X,
		BallY:       m.ball.Rect.Y,
		BallVX:      m.ball.Vel.X,
		BallVY:      m.ball.Vel.Y,
		PlayerY:     m.player.Rect.Y,
		CPUY:        m.cpu.Rect.Y,
		PlayerScore: m.judge.PlayerScore(),
		CPUScore:    m.judge.CPUScore(),
	}
}
