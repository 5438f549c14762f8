package nestedfade

import (
	"math"
	"math/rand/v2"
)

// particle holds per-particle simulation state. Unexported; managed by ParticleEmitter.
type particle struct {
	x, y       float64
	vx, vy     float64
	life       float64 // remaining lifetime in seconds
	maxLife    float64 // initial lifetime (for computing t)
	startScale float32
	endScale   float32
	scale      float32
	startAlpha float32
	endAlpha   float32
	alpha      float32
	tint       Color // per-particle start color; A multiplies alpha
	colorR     float32
	colorG     float32
	colorB     float32
}

// Particle is the exported view of a live particle used by Particles and
// SetParticles.
type Particle struct {
	X, Y  float64
	Life  float64
	Alpha float64 // current lifetime-interpolated alpha
	Tint  Color   // start color captured at spawn; Tint.A scales the drawn alpha
}

// RateMode selects how the emission rate is specified.
type RateMode uint8

const (
	RateConstant      RateMode = iota // EmitRate particles per second
	RateRandomBetween                 // a fresh rate in EmitRateRange every second
	RateCurve                         // EmitRateCurve keyed on time within Duration
)

func (m RateMode) String() string {
	switch m {
	case RateConstant:
		return "constant"
	case RateRandomBetween:
		return "random-between"
	case RateCurve:
		return "curve"
	default:
		return "unknown"
	}
}

// EmitterConfig controls how particles are spawned and behave.
type EmitterConfig struct {
	// MaxParticles is the pool size. New particles are silently dropped when full.
	MaxParticles int
	// RateMode selects which of EmitRate, EmitRateRange or EmitRateCurve applies.
	RateMode RateMode
	// EmitRate is the number of particles spawned per second (RateConstant).
	EmitRate float64
	// EmitRateRange bounds the per-second rate (RateRandomBetween).
	EmitRateRange Range
	// EmitRateCurve holds (time, rate) keys sorted by time (RateCurve).
	EmitRateCurve []Vec2
	// Loop restarts emission every Duration seconds. A zero Duration with
	// Loop set emits forever.
	Loop bool
	// Duration is the length of one emission cycle in seconds.
	Duration float64
	// Lifetime is the range of particle lifetimes in seconds.
	Lifetime Range
	// Speed is the range of initial particle speeds in pixels per second.
	Speed Range
	// Angle is the range of emission angles in radians.
	Angle Range
	// StartScale is the range of scale factors at birth, interpolated to EndScale over lifetime.
	StartScale Range
	// EndScale is the range of scale factors at death.
	EndScale Range
	// StartAlpha is the range of alpha values at birth, interpolated to EndAlpha over lifetime.
	StartAlpha Range
	// EndAlpha is the range of alpha values at death.
	EndAlpha Range
	// Gravity is the constant acceleration applied to all particles each frame.
	Gravity Vec2
	// StartColor is the tint at birth, interpolated to EndColor over lifetime.
	// StartColor.A is captured per particle and scales its alpha; ParticleFader
	// writes into it. The zero Color means ColorWhite.
	StartColor Color
	// EndColor is the tint at death (RGB only).
	EndColor Color
	// BlendMode is the compositing operation for particle rendering.
	BlendMode BlendMode
}

// ParticleEmitter manages a pool of particles with CPU-based simulation.
type ParticleEmitter struct {
	config    EmitterConfig
	particles []particle
	alive     int
	emitAccum float64
	elapsed   float64 // time within the current cycle
	rate      float64 // current per-second rate for RateRandomBetween
	rateAge   float64
	active    bool
}

// newParticleEmitter creates a ParticleEmitter with a preallocated pool.
func newParticleEmitter(cfg EmitterConfig) *ParticleEmitter {
	max := cfg.MaxParticles
	if max <= 0 {
		max = 128
		cfg.MaxParticles = max
	}
	if cfg.StartColor == (Color{}) {
		cfg.StartColor = ColorWhite
	}
	return &ParticleEmitter{
		config:    cfg,
		particles: make([]particle, max),
	}
}

// Start begins emitting particles from the start of a cycle.
func (e *ParticleEmitter) Start() {
	e.active = true
	e.elapsed = 0
	e.rateAge = 0
}

// Stop stops emitting new particles. Existing particles continue to live out.
func (e *ParticleEmitter) Stop() {
	e.active = false
}

// Reset stops emitting and kills all alive particles.
func (e *ParticleEmitter) Reset() {
	e.active = false
	e.alive = 0
	e.emitAccum = 0
	e.elapsed = 0
}

// IsActive reports whether the emitter is currently emitting new particles.
func (e *ParticleEmitter) IsActive() bool {
	return e.active
}

// AliveCount returns the number of alive particles.
func (e *ParticleEmitter) AliveCount() int {
	return e.alive
}

// Config returns a pointer to the emitter's config for live tuning.
func (e *ParticleEmitter) Config() *EmitterConfig {
	return &e.config
}

// Particles copies up to len(buf) live particles into buf and returns the
// number copied.
func (e *ParticleEmitter) Particles(buf []Particle) int {
	n := min(e.alive, len(buf))
	for i := 0; i < n; i++ {
		p := &e.particles[i]
		buf[i] = Particle{X: p.x, Y: p.y, Life: p.life, Alpha: float64(p.alpha), Tint: p.tint}
	}
	return n
}

// SetParticles writes back the first n entries of buf, as returned by
// Particles. Position and tint are applied; particles beyond the live count
// are ignored.
func (e *ParticleEmitter) SetParticles(buf []Particle, n int) {
	n = min(n, len(buf), e.alive)
	for i := 0; i < n; i++ {
		p := &e.particles[i]
		p.x = buf[i].X
		p.y = buf[i].Y
		p.tint = buf[i].Tint
	}
}

// currentRate returns the emission rate at the current point of the cycle.
func (e *ParticleEmitter) currentRate(dt float64) float64 {
	switch e.config.RateMode {
	case RateRandomBetween:
		e.rateAge -= dt
		if e.rateAge <= 0 {
			e.rate = e.config.EmitRateRange.Random()
			e.rateAge = 1
		}
		return e.rate
	case RateCurve:
		return evalCurve(e.config.EmitRateCurve, e.elapsed)
	default:
		return e.config.EmitRate
	}
}

// evalCurve linearly interpolates keys (X = time, Y = value), clamping at the ends.
func evalCurve(keys []Vec2, t float64) float64 {
	if len(keys) == 0 {
		return 0
	}
	if t <= keys[0].X {
		return keys[0].Y
	}
	for i := 1; i < len(keys); i++ {
		if t <= keys[i].X {
			a, b := keys[i-1], keys[i]
			if b.X == a.X {
				return b.Y
			}
			return lerp(a.Y, b.Y, (t-a.X)/(b.X-a.X))
		}
	}
	return keys[len(keys)-1].Y
}

// update advances particle simulation by dt seconds.
func (e *ParticleEmitter) update(dt float64) {
	gx := e.config.Gravity.X * dt
	gy := e.config.Gravity.Y * dt

	// Update existing particles, swap-remove dead ones.
	i := 0
	for i < e.alive {
		p := &e.particles[i]
		p.life -= dt
		if p.life <= 0 {
			e.alive--
			e.particles[i] = e.particles[e.alive]
			continue
		}

		p.vx += gx
		p.vy += gy
		p.x += p.vx * dt
		p.y += p.vy * dt

		t := float32(1.0 - p.life/p.maxLife)
		p.scale = lerp32(p.startScale, p.endScale, t)
		p.alpha = lerp32(p.startAlpha, p.endAlpha, t)
		p.colorR = lerp32(float32(p.tint.R), float32(e.config.EndColor.R), t)
		p.colorG = lerp32(float32(p.tint.G), float32(e.config.EndColor.G), t)
		p.colorB = lerp32(float32(p.tint.B), float32(e.config.EndColor.B), t)

		i++
	}

	if !e.active {
		return
	}

	// Cycle bookkeeping: one-shot emitters stop after Duration.
	if e.config.Duration > 0 {
		e.elapsed += dt
		if e.elapsed > e.config.Duration {
			if !e.config.Loop {
				e.active = false
				return
			}
			e.elapsed = math.Mod(e.elapsed, e.config.Duration)
		}
	}

	rate := e.currentRate(dt)
	if rate <= 0 {
		return
	}
	e.emitAccum += rate * dt
	for e.emitAccum >= 1.0 {
		e.emitAccum -= 1.0
		if e.alive < len(e.particles) {
			e.spawnParticle()
		}
	}
}

// spawnParticle initializes the particle at slot e.alive and increments alive.
func (e *ParticleEmitter) spawnParticle() {
	p := &e.particles[e.alive]

	angle := e.config.Angle.Random()
	speed := e.config.Speed.Random()
	p.vx = math.Cos(angle) * speed
	p.vy = math.Sin(angle) * speed
	p.x = 0
	p.y = 0

	p.life = e.config.Lifetime.Random()
	if p.life <= 0 {
		p.life = 1.0
	}
	p.maxLife = p.life

	p.startScale = float32(e.config.StartScale.Random())
	p.endScale = float32(e.config.EndScale.Random())
	p.scale = p.startScale

	p.startAlpha = float32(e.config.StartAlpha.Random())
	p.endAlpha = float32(e.config.EndAlpha.Random())
	p.alpha = p.startAlpha

	p.tint = e.config.StartColor
	p.colorR = float32(p.tint.R)
	p.colorG = float32(p.tint.G)
	p.colorB = float32(p.tint.B)

	e.alive++
}

// updateParticles advances every emitter in the active part of the subtree.
func updateParticles(n *Node, dt float64) {
	if !n.active {
		return
	}
	if n.Emitter != nil {
		n.Emitter.update(dt)
	}
	for _, child := range n.children {
		updateParticles(child, dt)
	}
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// lerp32 linearly interpolates between a and b by t (float32).
func lerp32(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Random returns a random float64 in [Min, Max].
func (r Range) Random() float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}
