package runner

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/neon-runner/internal/config"
)

func TestPlayerAdvance(t *testing.T) {
	p := NewPlayer(config.DefaultRunnerConfig().Player)

	if breach := p.Advance(600); breach {
		t.Fatal("Advance() reported breach on first tick")
	}
	if math.Abs(p.DY-0.6) > 1e-9 || math.Abs(p.Y-300.6) > 1e-9 {
		t.Errorf("after 1 tick (Y, DY) = (%v, %v), expected (300.6, 0.6)", p.Y, p.DY)
	}

	p.Advance(600)
	if math.Abs(p.DY-1.2) > 1e-9 || math.Abs(p.Y-301.8) > 1e-9 {
		t.Errorf("after 2 ticks (Y, DY) = (%v, %v), expected (301.8, 1.2)", p.Y, p.DY)
	}
}

func TestPlayerCeiling(t *testing.T) {
	p := NewPlayer(config.DefaultRunnerConfig().Player)
	p.Y = 5
	p.Jump()

	p.Advance(600)
	if p.Y != 0 || p.DY != 0 {
		t.Errorf("at ceiling (Y, DY) = (%v, %v), expected (0, 0)", p.Y, p.DY)
	}
}

func TestPlayerFloorBreach(t *testing.T) {
	tests := []struct {
		name     string
		y        float64
		expected bool
	}{
		{"well above floor", 300, false},
		{"just above floor", 570, false},
		{"past floor", 585, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(config.DefaultRunnerConfig().Player)
			p.Y = tc.y
			if got := p.Advance(600); got != tc.expected {
				t.Errorf("Advance() breach = %v, expected %v (Y=%v)", got, tc.expected, p.Y)
			}
		})
	}
}

func TestPlayerLandOn(t *testing.T) {
	p := NewPlayer(config.DefaultRunnerConfig().Player)
	p.DY = 4
	p.LandOn(320)
	if p.Y != 300 || p.DY != 0 {
		t.Errorf("LandOn(320) (Y, DY) = (%v, %v), expected (300, 0)", p.Y, p.DY)
	}
}

func TestPoolCullFrontOnly(t *testing.T) {
	pool := NewPool[*Obstacle](4)
	pool.Push(&Obstacle{X: -50, Width: 30})
	pool.Push(&Obstacle{X: -40, Width: 30})
	pool.Push(&Obstacle{X: 100, Width: 30})

	if !pool.Cull() {
		t.Fatal("Cull() = false, expected true for off-canvas front")
	}
	if pool.Len() != 2 {
		t.Errorf("Len() after one Cull = %d, expected 2", pool.Len())
	}
	if pool.Items()[0].X != -40 {
		t.Errorf("front X = %v, expected -40", pool.Items()[0].X)
	}
}

func TestPoolCullStopsAtLiveFront(t *testing.T) {
	pool := NewPool[*Platform](4)
	pool.Push(&Platform{X: 10, Width: 80})
	pool.Push(&Platform{X: -200, Width: 80})

	if pool.Cull() {
		t.Error("Cull() = true, expected false while the front is on canvas")
	}
	if pool.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", pool.Len())
	}
}

func TestPoolAdvanceKeepsOrder(t *testing.T) {
	pool := NewPool[*Orb](4)
	for _, x := range []float64{100, 200, 300} {
		pool.Push(&Orb{X: x, Radius: 10})
	}

	pool.Advance(2.5)
	pool.Remove(1)

	items := pool.Items()
	if len(items) != 2 {
		t.Fatalf("Len() = %d, expected 2", len(items))
	}
	if items[0].X != 97.5 || items[1].X != 297.5 {
		t.Errorf("X = [%v %v], expected [97.5 297.5]", items[0].X, items[1].X)
	}

	pool.Clear()
	if pool.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", pool.Len())
	}
}

func TestPoolRemoveZeroesVacatedSlot(t *testing.T) {
	pool := NewPool[*Orb](4)
	for _, x := range []float64{10, 20, 30} {
		pool.Push(&Orb{X: x, Radius: 10})
	}

	pool.Remove(0)
	if pool.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", pool.Len())
	}
	if vacated := pool.items[:3][2]; vacated != nil {
		t.Errorf("vacated slot = %+v, expected nil", vacated)
	}

	pool.Remove(5) // Out of range is ignored
	if pool.Len() != 2 || pool.Items()[0].X != 20 || pool.Items()[1].X != 30 {
		t.Errorf("Items() changed by out-of-range Remove")
	}
}

func TestSchedulerDue(t *testing.T) {
	s := NewScheduler(config.DefaultRunnerConfig())

	tests := []struct {
		frame    int
		expected []Kind
	}{
		{0, []Kind{KindPlatform, KindOrb, KindObstacle}},
		{50, nil},
		{100, []Kind{KindPlatform}},
		{200, []Kind{KindPlatform, KindOrb}},
		{300, []Kind{KindPlatform, KindObstacle}},
		{600, []Kind{KindPlatform, KindOrb, KindObstacle}},
	}

	for _, tc := range tests {
		got := s.Due(tc.frame)
		if len(got) != len(tc.expected) {
			t.Errorf("Due(%d) = %v, expected %v", tc.frame, got, tc.expected)
			continue
		}
		for i := range got {
			if got[i] != tc.expected[i] {
				t.Errorf("Due(%d) = %v, expected %v", tc.frame, got, tc.expected)
				break
			}
		}
	}
}

func TestPlatformOscillate(t *testing.T) {
	p := &Platform{Y: 499.8, Dir: 1}
	p.Oscillate(0.5, 50, 500)
	if p.Y != 500 || p.Dir != -1 {
		t.Errorf("at lower bound (Y, Dir) = (%v, %v), expected (500, -1)", p.Y, p.Dir)
	}

	p.Oscillate(0.5, 50, 500)
	if p.Y != 499.5 {
		t.Errorf("after reversal Y = %v, expected 499.5", p.Y)
	}
}

func TestParticleBurstAndDecay(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Particles
	ps := NewParticleSystem(cfg)
	ps.Burst(100, 100, rand.New(rand.NewSource(7)))

	if ps.Len() != cfg.Burst {
		t.Fatalf("Len() after Burst = %d, expected %d", ps.Len(), cfg.Burst)
	}
	for _, p := range ps.Items() {
		if p.Size < cfg.MinSize || p.Size > cfg.MaxSize {
			t.Errorf("particle size %v outside [%v, %v]", p.Size, cfg.MinSize, cfg.MaxSize)
		}
		if math.Abs(p.VX) > cfg.Spread || math.Abs(p.VY) > cfg.Spread {
			t.Errorf("particle velocity (%v, %v) exceeds spread %v", p.VX, p.VY, cfg.Spread)
		}
	}

	before := ps.Items()[0].Size
	ps.Update()
	if after := ps.Items()[0].Size; math.Abs(after-before*cfg.Decay) > 1e-9 {
		t.Errorf("size after Update = %v, expected %v", after, before*cfg.Decay)
	}

	for i := 0; i < 100; i++ {
		ps.Update()
	}
	if ps.Len() != 0 {
		t.Errorf("Len() after 100 updates = %d, expected 0", ps.Len())
	}
}

func TestBackdrop(t *testing.T) {
	cfg := config.DefaultRunnerConfig()

	off := NewBackdrop(cfg.Backdrop, cfg.Canvas, rand.New(rand.NewSource(1)))
	if len(off.Items()) != 0 {
		t.Errorf("disabled backdrop has %d items, expected 0", len(off.Items()))
	}

	cfg.Backdrop.Enabled = true
	b := NewBackdrop(cfg.Backdrop, cfg.Canvas, rand.New(rand.NewSource(1)))
	expected := cfg.Backdrop.Stars + cfg.Backdrop.Planets + cfg.Backdrop.Galaxies
	if len(b.Items()) != expected {
		t.Fatalf("enabled backdrop has %d items, expected %d", len(b.Items()), expected)
	}

	for i := 0; i < 1000; i++ {
		b.Advance(4)
	}
	for _, d := range b.Items() {
		if _, ok := d.(*Star); !ok {
			continue
		}
		sp := d.Sprite()
		if sp.X < 0 || sp.X >= cfg.Canvas.Width {
			t.Errorf("star X = %v, expected within [0, %v)", sp.X, cfg.Canvas.Width)
		}
	}
}
