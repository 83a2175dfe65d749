package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Overlaps reports whether two centers are closer than the combined radius r.
// The test is symmetric in a and b.
func Overlaps(a, b core.Vec2, r float64) bool {
	return a.Dist(b) < r
}

// HitReport summarizes one projectile/obstacle collision pass.
type HitReport struct {
	Destroyed int // Obstacles removed
	Fragments int // Obstacles inserted by fragmentation
}

// resolveProjectileHits tests every projectile against the obstacles in
// collection order. The first overlapping obstacle wins: both are removed and
// the obstacle's fragments are built with spawn and appended after all
// survivors. Removals and insertions are collected during the scan and
// applied afterwards, so fragments are never tested in the pass that
// created them.
func resolveProjectileHits(
	projectiles []Projectile,
	obstacles []Obstacle,
	spawn func(ObstacleSpec) Obstacle,
) ([]Projectile, []Obstacle, HitReport) {
	var report HitReport
	if len(projectiles) == 0 || len(obstacles) == 0 {
		return projectiles, obstacles, report
	}

	deadObstacle := make([]bool, len(obstacles))
	deadProjectile := make([]bool, len(projectiles))
	var pending []ObstacleSpec

	for i, p := range projectiles {
		for j, o := range obstacles {
			if deadObstacle[j] {
				continue
			}
			if Overlaps(p.Pos, o.Pos, o.Radius()) {
				deadObstacle[j] = true
				deadProjectile[i] = true
				pending = append(pending, o.Fragment()...)
				report.Destroyed++
				break
			}
		}
	}

	if report.Destroyed == 0 {
		return projectiles, obstacles, report
	}

	keptProjectiles := projectiles[:0]
	for i, p := range projectiles {
		if !deadProjectile[i] {
			keptProjectiles = append(keptProjectiles, p)
		}
	}

	keptObstacles := obstacles[:0]
	for j, o := range obstacles {
		if !deadObstacle[j] {
			keptObstacles = append(keptObstacles, o)
		}
	}
	for _, spec := range pending {
		keptObstacles = append(keptObstacles, spawn(spec))
	}
	report.Fragments = len(pending)

	return keptProjectiles, keptObstacles, report
}

// craftHit returns the index of the first obstacle overlapping the craft,
// or -1 when there is none.
func craftHit(c Craft, obstacles []Obstacle) int {
	for i, o := range obstacles {
		if Overlaps(c.Pos, o.Pos, c.Radius+o.Radius()) {
			return i
		}
	}
	return -1
}
