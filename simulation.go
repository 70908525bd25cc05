// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package ballmachine

// simulation.go is the top-level engine API, the same role vu/simulation.go
// plays for the 3-D engine's physics component manager: it owns the dense
// ball/owner arrays and drives them through the fixed-step tick.

import (
	"log/slog"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/antzelino/ballmachine/geom"
	"github.com/antzelino/ballmachine/physics"
)

// Simulation owns the ball population, the chamber topology, and the
// deterministic PRNG used to (re)seed ball layout. A single exclusive
// lock mediates cross-thread access: it is held for the duration of
// Tick and AddChamber, matching the "no suspension points inside a
// tick" scheduling model.
type Simulation struct {
	mu sync.Mutex

	cfg    Config
	seed   uint64
	rng    *rand.Rand
	layout ChamberLayout

	chambers []Chamber
	balls    []Ball
	owners   []int

	numStepsTaken uint64
	startInstant  time.Time
	shutdown      atomic.Bool
	timing        Timing

	// Reused per-tick scratch so view assembly doesn't allocate every
	// chamber, every tick. Purely an implementation optimization; no
	// observable contract depends on it.
	viewBuf []AdjustedBallView
	stepBuf []Ball
}

// Init creates a simulation with a deterministic ball layout derived from
// seed. Chambers start empty; add them with AddChamber.
func Init(seed uint64, attrs ...Attr) *Simulation {
	cfg := configDefaults
	for _, attr := range attrs {
		attr(&cfg)
	}

	s := &Simulation{
		cfg:    cfg,
		seed:   seed,
		layout: NewChamberLayout(0, cfg.ChambersPerRow),
	}
	s.seedBalls()
	return s
}

// seedBalls (re)creates the ball and owner arrays from the stored seed.
// Ball count and chamber topology are left alone; only positions,
// velocities, and owners are regenerated, which is what lets Reset
// reseed without disturbing registered chambers.
func (s *Simulation) seedBalls() {
	s.rng = rand.New(rand.NewSource(int64(s.seed)))
	s.balls = make([]Ball, s.cfg.NumBalls)
	s.owners = make([]int, s.cfg.NumBalls)

	const margin = physics.BallRadius
	for i := range s.balls {
		x := margin + s.rng.Float64()*(1-2*margin)
		y := margin + s.rng.Float64()*(physics.ChamberHeight-2*margin)
		s.balls[i] = physics.NewBall(geom.Point{X: x, Y: y})
		if s.layout.NumChambers > 0 {
			s.owners[i] = i % s.layout.NumChambers
		}
	}
}

// AddChamber registers a chamber, invokes its Init once, and extends the
// toroidal topology to include it. Returns a *CapacityError, leaving the
// simulation unchanged, if the deployment's chamber limit is exceeded.
func (s *Simulation) AddChamber(c Chamber) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.chambers) >= s.cfg.MaxChambers {
		return &CapacityError{Limit: s.cfg.MaxChambers}
	}
	c.Init(len(s.balls))
	s.chambers = append(s.chambers, c)
	s.layout = NewChamberLayout(len(s.chambers), s.cfg.ChambersPerRow)
	return nil
}

// NumChambers returns the layout's padded chamber count.
func (s *Simulation) NumChambers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.layout.NumChambers
}

// Seed returns the PRNG seed the simulation was constructed with.
func (s *Simulation) Seed() uint64 { return s.seed }

// NumStepsTaken returns the number of ticks run so far.
func (s *Simulation) NumStepsTaken() uint64 {
	return atomic.LoadUint64(&s.numStepsTaken)
}

// Balls returns a copy of the current ball state, safe to read without
// racing the tick loop.
func (s *Simulation) Balls() []Ball {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Ball, len(s.balls))
	copy(out, s.balls)
	return out
}

// Reset reseeds balls from the stored PRNG state and zeroes the step
// counter, without disturbing registered chambers.
func (s *Simulation) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seedBalls()
	atomic.StoreUint64(&s.numStepsTaken, 0)
	s.startInstant = time.Time{}
}

// Tick advances the simulation by one fixed timestep: integrate, wrap,
// then for every chamber in ascending index order assemble its view,
// delegate to its program (if registered), resolve local ball-ball
// collisions, and write the result back to global state.
func (s *Simulation) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.balls {
		physics.Integrate(&s.balls[i], physics.DT)
	}
	if s.layout.NumChambers == 0 {
		atomic.AddUint64(&s.numStepsTaken, 1)
		return
	}
	applyWrap(s.balls, s.owners, s.layout)

	for c := 0; c < s.layout.NumChambers; c++ {
		s.viewBuf = assembleView(s.balls, s.owners, s.layout, c, physics.BallRadius, s.viewBuf)
		if c < len(s.chambers) {
			s.stepChamber(c, s.viewBuf)
		}
		runLocalCollisions(s.viewBuf)
		writeBack(s.balls, s.viewBuf)
	}

	atomic.AddUint64(&s.numStepsTaken, 1)
}

// stepChamber invokes a chamber's program on its view, isolating the rest
// of the tick from a panic or misbehaving call: the contract is that
// Step is best-effort, and on failure the view keeps its pre-call state
// as if the call had been a no-op.
func (s *Simulation) stepChamber(c int, views []AdjustedBallView) {
	s.stepBuf = s.stepBuf[:0]
	for _, v := range views {
		s.stepBuf = append(s.stepBuf, v.Adjusted)
	}

	if err := callChamberStep(s.chambers[c], s.stepBuf, physics.DT); err != nil {
		slog.Error("chamber step failed, treating as no-op", "chamber", c, "error", err.(*chamberProgramError).withChamber(c))
		return
	}

	for i := range views {
		views[i].Adjusted = s.stepBuf[i]
	}
}

// callChamberStep runs a chamber's Step under a panic guard, turning an
// untrusted program's crash into a *chamberProgramError rather than
// letting it take down the engine.
func callChamberStep(c Chamber, balls []Ball, dt float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &chamberProgramError{cause: r}
		}
	}()
	c.Step(balls, dt)
	return nil
}
