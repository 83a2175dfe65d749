package asteroids

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// emptyWorld returns a world with no initial obstacles.
func emptyWorld(seed int64) *World {
	cfg := config.DefaultAsteroidsConfig()
	cfg.Obstacles.InitialCount = 0
	return NewWorld(cfg, rand.New(rand.NewSource(seed)))
}

// disableCraftHits keeps random obstacles from ending long-running tests.
func disableCraftHits(w *World) {
	w.craft.Radius = math.Inf(-1)
}

func countLevel(obstacles []Obstacle, level int) int {
	n := 0
	for _, o := range obstacles {
		if o.Level == level {
			n++
		}
	}
	return n
}

func TestNewWorld(t *testing.T) {
	w := NewWorld(config.DefaultAsteroidsConfig(), rand.New(rand.NewSource(1)))

	if w.Phase() != Running {
		t.Errorf("Phase() = %v, expected Running", w.Phase())
	}
	if w.Craft().Pos != core.V(400, 300) {
		t.Errorf("craft at %v, expected center (400, 300)", w.Craft().Pos)
	}
	obstacles := w.Obstacles()
	if len(obstacles) != 5 || countLevel(obstacles, LevelLarge) != 5 {
		t.Errorf("expected 5 level-2 obstacles, got %d (%d large)", len(obstacles), countLevel(obstacles, LevelLarge))
	}
	for _, o := range obstacles {
		if !w.Playfield().Contains(o.Pos) {
			t.Errorf("obstacle at %v outside playfield", o.Pos)
		}
	}
	if len(w.Projectiles()) != 0 {
		t.Errorf("expected no projectiles, got %d", len(w.Projectiles()))
	}
}

func TestObstacleOnCraftEndsGame(t *testing.T) {
	for _, level := range []int{LevelSmall, LevelLarge} {
		w := emptyWorld(3)
		w.SpawnObstacle(w.Craft().Pos, level)

		if phase := w.Step(Intents{}, 1.0/60); phase != GameOver {
			t.Errorf("level %d: Step() = %v, expected GameOver", level, phase)
		}
	}
}

func TestGameOverIsTerminal(t *testing.T) {
	w := emptyWorld(3)
	w.SpawnObstacle(w.Craft().Pos, LevelLarge)
	w.Step(Intents{}, 1.0/60)

	before := w.Snapshot()
	for i := 0; i < 100; i++ {
		w.Step(Intents{Thrust: true, Fire: true, TurnLeft: true}, 0.5)
	}
	after := w.Snapshot()

	if !reflect.DeepEqual(before, after) {
		t.Error("world changed after GameOver")
	}
}

func TestProjectileAtSmallObstacleCenter(t *testing.T) {
	w := emptyWorld(4)
	target := w.SpawnObstacle(core.V(100, 100), LevelSmall)
	w.AddProjectile(Projectile{Pos: target.Pos, Life: 2})

	report := w.ResolveProjectileHits()

	if len(w.Obstacles()) != 0 {
		t.Errorf("expected the obstacle removed and nothing added, got %d obstacles", len(w.Obstacles()))
	}
	if len(w.Projectiles()) != 0 {
		t.Errorf("expected the projectile removed, got %d", len(w.Projectiles()))
	}
	if report.Destroyed != 1 || report.Fragments != 0 || w.Destroyed() != 1 {
		t.Errorf("report = %+v, Destroyed() = %d", report, w.Destroyed())
	}
}

func TestLargeObstacleFragmentsOnce(t *testing.T) {
	w := emptyWorld(5)
	parent := w.SpawnObstacle(core.V(100, 100), LevelLarge)

	w.AddProjectile(Projectile{Pos: parent.Pos, Life: 2})
	w.ResolveProjectileHits()

	children := w.Obstacles()
	if len(children) != 2 || countLevel(children, LevelSmall) != 2 {
		t.Fatalf("expected two level-1 fragments, got %+v", children)
	}
	for _, c := range children {
		if c.Pos != parent.Pos {
			t.Errorf("fragment at %v, expected parent position %v", c.Pos, parent.Pos)
		}
	}

	// Destroying both fragments yields no further children.
	for range children {
		w.AddProjectile(Projectile{Pos: parent.Pos, Life: 2})
		report := w.ResolveProjectileHits()
		if report.Fragments != 0 {
			t.Errorf("level-1 obstacle produced %d fragments", report.Fragments)
		}
	}
	if n := len(w.Obstacles()); n != 0 {
		t.Errorf("expected no obstacles left, got %d", n)
	}
	if w.Destroyed() != 3 {
		t.Errorf("Destroyed() = %d, expected 3", w.Destroyed())
	}
}

func TestPeriodicSpawn(t *testing.T) {
	tests := []struct {
		name   string
		dt     float64
		frames int
	}{
		{"half second frames", 0.5, 10},
		{"quarter second frames", 0.25, 20},
		{"60 fps", 1.0 / 60, 300},
		{"single frame", 5.0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := emptyWorld(6)

			for i := 0; i < tc.frames-1; i++ {
				w.Step(Intents{}, tc.dt)
			}
			if n := len(w.Obstacles()); n != 0 {
				t.Fatalf("spawned %d obstacles before 5s", n)
			}

			w.Step(Intents{}, tc.dt)
			obstacles := w.Obstacles()
			if len(obstacles) != 1 || obstacles[0].Level != LevelLarge {
				t.Fatalf("expected exactly one level-2 obstacle after 5s, got %+v", obstacles)
			}
		})
	}
}

func TestSpawnTimerResets(t *testing.T) {
	w := emptyWorld(6)
	disableCraftHits(w)

	for i := 0; i < 19; i++ {
		w.Step(Intents{}, 0.5)
	}
	if n := len(w.Obstacles()); n != 1 {
		t.Fatalf("after 9.5s expected 1 obstacle, got %d", n)
	}
	w.Step(Intents{}, 0.5)
	if n := len(w.Obstacles()); n != 2 {
		t.Fatalf("after 10s expected 2 obstacles, got %d", n)
	}
}

func TestFireToggleAlternates(t *testing.T) {
	w := emptyWorld(7)
	expected := []int{1, 1, 2, 2, 3, 3}

	for i, want := range expected {
		w.Step(Intents{Fire: true}, 1.0/60)
		if got := len(w.Projectiles()); got != want {
			t.Fatalf("frame %d: %d projectiles, expected %d", i+1, got, want)
		}
	}
}

func TestFireToggleSurvivesRelease(t *testing.T) {
	// Releasing the key does not re-arm: press, release, press fires only once.
	w := emptyWorld(7)
	frames := []struct {
		fire bool
		want int
	}{
		{true, 1},
		{false, 1},
		{true, 1},
		{false, 1},
		{true, 2},
	}

	for i, f := range frames {
		w.Step(Intents{Fire: f.fire}, 1.0/60)
		if got := len(w.Projectiles()); got != f.want {
			t.Fatalf("frame %d: %d projectiles, expected %d", i+1, got, f.want)
		}
	}
}

func TestFireSpawnsAtNose(t *testing.T) {
	w := emptyWorld(8)
	w.craft.Rotate(90)
	w.Fire()

	p := w.Projectiles()[0]
	if !near(p.Pos, w.Craft().Nose()) {
		t.Errorf("projectile at %v, expected nose %v", p.Pos, w.Craft().Nose())
	}
	if !near(p.Vel, core.V(400, 0)) {
		t.Errorf("projectile velocity %v, expected (400, 0)", p.Vel)
	}
	if p.Life != 2.0 {
		t.Errorf("projectile life %v, expected 2", p.Life)
	}
}

func TestProjectilesExpireInWorld(t *testing.T) {
	w := emptyWorld(9)
	w.Fire()

	for i := 0; i < 3; i++ {
		w.Step(Intents{}, 0.5)
	}
	if n := len(w.Projectiles()); n != 1 {
		t.Fatalf("projectile expired early, %d left", n)
	}
	w.Step(Intents{}, 0.5)
	if n := len(w.Projectiles()); n != 0 {
		t.Fatalf("projectile should have expired, %d left", n)
	}
}

func TestRotateAndThrustIntents(t *testing.T) {
	tests := []struct {
		name    string
		in      Intents
		heading float64
	}{
		{"right", Intents{TurnRight: true}, 50},
		{"left", Intents{TurnLeft: true}, -50},
		{"both cancel", Intents{TurnLeft: true, TurnRight: true}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := emptyWorld(10)
			w.Step(tc.in, 0.5)
			if got := w.Craft().Heading; math.Abs(got-tc.heading) > eps {
				t.Errorf("Heading = %v, expected %v", got, tc.heading)
			}
		})
	}

	w := emptyWorld(10)
	w.Step(Intents{Thrust: true}, 0.5)
	// Thrust adds 200*0.5 upward, then one damping call.
	if got := w.Craft().Vel; !near(got, core.V(0, -99)) {
		t.Errorf("Vel = %v, expected (0, -99)", got)
	}
	if got := w.Craft().Pos; !near(got, core.V(400, 250)) {
		t.Errorf("Pos = %v, expected (400, 250)", got)
	}
}

func TestNegativeDtClamped(t *testing.T) {
	w := emptyWorld(11)
	w.Step(Intents{TurnRight: true}, -3)

	if w.Elapsed() != 0 {
		t.Errorf("Elapsed() = %v, expected 0", w.Elapsed())
	}
	if w.Craft().Heading != 0 {
		t.Errorf("Heading = %v, expected 0", w.Craft().Heading)
	}

	// The spawn timer was not wound back either.
	for i := 0; i < 10; i++ {
		w.Step(Intents{}, 0.5)
	}
	if n := len(w.Obstacles()); n != 1 {
		t.Errorf("expected one spawn after 5s, got %d", n)
	}
}

func TestWorldDeterminism(t *testing.T) {
	inputs := make([]Intents, 600)
	for i := range inputs {
		inputs[i] = Intents{
			TurnLeft: i%50 < 10,
			Thrust:   i%30 < 5,
			Fire:     i%7 == 0,
		}
	}

	run := func() WorldSnapshot {
		w := NewWorld(config.DefaultAsteroidsConfig(), rand.New(rand.NewSource(12345)))
		for _, in := range inputs {
			if w.Step(in, 1.0/60) == GameOver {
				break
			}
		}
		return w.Snapshot()
	}

	s1, s2 := run(), run()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("same seed and inputs diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestEntitiesStayInPlayfield(t *testing.T) {
	w := NewWorld(config.DefaultAsteroidsConfig(), rand.New(rand.NewSource(21)))
	disableCraftHits(w)
	rng := rand.New(rand.NewSource(22))
	field := w.Playfield()

	for i := 0; i < 2000; i++ {
		in := Intents{
			TurnLeft: rng.Intn(2) == 0,
			Thrust:   rng.Intn(3) == 0,
			Fire:     rng.Intn(2) == 0,
		}
		w.Step(in, rng.Float64()/20)

		if !field.Contains(w.Craft().Pos) {
			t.Fatalf("frame %d: craft at %v", i, w.Craft().Pos)
		}
		for _, o := range w.Obstacles() {
			if !field.Contains(o.Pos) {
				t.Fatalf("frame %d: obstacle at %v", i, o.Pos)
			}
		}
		for _, p := range w.Projectiles() {
			if !field.Contains(p.Pos) {
				t.Fatalf("frame %d: projectile at %v", i, p.Pos)
			}
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	w := emptyWorld(13)
	w.SpawnObstacle(core.V(10, 10), LevelLarge)

	obstacles := w.Obstacles()
	obstacles[0].Pos = core.V(500, 500)

	if w.Obstacles()[0].Pos != core.V(10, 10) {
		t.Error("mutating Obstacles() result changed the world")
	}
}

func TestIntentsFrom(t *testing.T) {
	in := core.NewInputFrame()
	in.Set(core.ActionTurnLeft)
	in.Set(core.ActionFire)

	got := IntentsFrom(in)
	expected := Intents{TurnLeft: true, Fire: true}
	if got != expected {
		t.Errorf("IntentsFrom() = %+v, expected %+v", got, expected)
	}
}
