package runner

import (
	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
)

// resolveCollisions tests the player against every pool in the fixed order
// platforms, orbs, obstacles and applies landings, pickups and the sliding
// edge. It returns CauseCollision when an obstacle was touched; that outcome
// holds regardless of what the platforms and orbs did this tick.
func (s *Session) resolveCollisions() core.EndCause {
	s.resolvePlatforms()
	s.resolveOrbs()

	box := s.player.Box()
	for _, o := range s.obstacles.Items() {
		if box.Overlaps(o.Box()) {
			return core.CauseCollision
		}
	}
	return core.CauseNone
}

// resolvePlatforms lands the player on every overlapping platform while it is
// falling or resting. Each landing scores and snaps on its own, so with
// several overlaps the last platform in pool order decides the final height.
func (s *Session) resolvePlatforms() {
	onPlatform := false

	for _, p := range s.platforms.Items() {
		if s.player.DY < 0 || !s.player.Box().Overlaps(p.Box()) {
			continue
		}
		s.player.LandOn(p.Y)
		onPlatform = true
		s.score += s.cfg.Scoring.LandingBase
		s.emit(core.EventLand)

		cx := s.player.X + s.player.Width/2
		s.particles.Burst(cx, s.player.Y+s.player.Height, s.rng)
	}

	switch {
	case onPlatform && !s.sliding:
		s.sliding = true
		s.emit(core.EventSlideStart)
	case !onPlatform && s.sliding:
		s.sliding = false
		s.emit(core.EventSlideStop)
	}
}

// resolveOrbs collects every orb whose center is closer to the player's
// center than half the player width plus the orb radius. A collected orb is
// removed at once, so it can never reward twice.
func (s *Session) resolveOrbs() {
	px, py := s.player.Center()
	reach := s.player.Width / 2

	for i := 0; i < s.orbs.Len(); {
		o := s.orbs.Items()[i]
		if core.Distance(px, py, o.X, o.Y) >= reach+o.Radius {
			i++
			continue
		}
		s.orbs.Remove(i)

		if s.cfg.Scoring.Mode == config.ScoringMultiplier {
			s.multiplier++
		} else {
			s.score += s.cfg.Orbs.Bonus
		}
		s.emit(core.EventPickup)
	}
}
