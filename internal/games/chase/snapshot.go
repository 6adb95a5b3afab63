package chase

// Snapshot contains the complete game state for determinism checks.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	NowMs      int64
	Phase      int
	ColorIndex int
	HighScore  int

	// Zero when no session exists
	Score     int
	PlayerX   int
	PlayerY   int
	PlayerVX  int
	PlayerVY  int
	LastScore int64

	// Each enemy is 6 ints: X, Y, VX, VY, Speed, LastDecisionMs
	EnemyCount int
	EnemyData  []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	m := g.machine
	snap := Snapshot{
		NowMs:      g.clock.Now().Milliseconds(),
		Phase:      int(m.phase),
		ColorIndex: m.colorIndex,
		HighScore:  m.highScore,
	}

	s := m.session
	if s == nil {
		return snap
	}

	snap.Score = s.Score
	snap.PlayerX = s.Player.Box.X
	snap.PlayerY = s.Player.Box.Y
	snap.PlayerVX = s.Player.Vel.X
	snap.PlayerVY = s.Player.Vel.Y
	snap.LastScore = s.LastScore.Milliseconds()
	snap.EnemyCount = len(s.Enemies)
	snap.EnemyData = make([]int, 0, len(s.Enemies)*6)
	for _, e := range s.Enemies {
		snap.EnemyData = append(snap.EnemyData,
			e.Box.X, e.Box.Y, e.Vel.X, e.Vel.Y, e.Speed, int(e.LastDecision.Milliseconds()))
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.NowMs)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ColorIndex) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerVX)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerVY)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LastScore)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount) //#nosec G115 -- hash computation

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
