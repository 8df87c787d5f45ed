package pong

// Judge keeps the two score counters and awards points when the ball
// crosses an undefended boundary. Counters only ever increase; they
// reset at process restart, never during a match.
type Judge struct {
	playerScore int
	cpuScore    int
}

// NewJudge creates a judge with a 0-0 score.
func NewJudge() *Judge {
	return &Judge{}
}

// Update checks the ball against the scoring walls after movement and
// collision response. intercepted reports whether a paddle deflected
// the ball this tick; a defended edge never scores, so the check is
// skipped entirely in that case.
//
// Left edge crossed scores for the player, right edge for the CPU.
// On a score the ball is reset; scored reports whether a point was
// awarded and scorer names the side that took it.
func (j *Judge) Update(b *Ball, arenaW int, intercepted bool) (scorer Side, scored bool) {
	if intercepted {
		return 0, false
	}

	switch {
	case b.Rect.X <= 0:
		j.playerScore++
		b.Reset()
		return SidePlayer, true
	case b.Rect.Right() >= arenaW:
		j.cpuScore++
		b.Reset()
		return SideCPU, true
	}
	return 0, false
}

// PlayerScore returns the player's score.
func (j *Judge) PlayerScore() int {
	return j.playerScore
}

// CPUScore returns the computer's score.
func (j *Judge) CPUScore() int {
	return j.cpuScore
}
