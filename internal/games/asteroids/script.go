package asteroids

// Script drives a World without a terminal, for the sim command and for
// soak tests. Fire is asserted on every FireEvery-th frame; the fire
// toggle means that launches a projectile on every second assertion.
type Script struct {
	Frames    int
	DT        float64
	FireEvery int // 0 disables firing
	Thrust    bool
	Turn      bool // Hold turn right
}

// Summary reports where a scripted run ended.
type Summary struct {
	Frames      uint64
	Elapsed     float64
	Phase       Phase
	Obstacles   int
	Projectiles int
	Destroyed   int
}

// Run steps w according to s and stops early on GameOver.
// onFrame, if not nil, is called after every step.
func (s Script) Run(w *World, onFrame func(*World)) Summary {
	for i := 0; i < s.Frames && w.Phase() == Running; i++ {
		in := Intents{
			Thrust:    s.Thrust,
			TurnRight: s.Turn,
			Fire:      s.FireEvery > 0 && i%s.FireEvery == 0,
		}
		w.Step(in, s.DT)
		if onFrame != nil {
			onFrame(w)
		}
	}
	return w.Summary()
}

// Summary returns counters describing the current world.
func (w *World) Summary() Summary {
	return Summary{
		Frames:      w.frames,
		Elapsed:     w.elapsed,
		Phase:       w.phase,
		Obstacles:   len(w.obstacles),
		Projectiles: len(w.projectiles),
		Destroyed:   w.destroyed,
	}
}
