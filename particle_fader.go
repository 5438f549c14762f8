package nestedfade

import "math"

// MaxFadeParticles is the largest working buffer a ParticleFader allocates.
// Emitters that could need more are left unfaded.
const MaxFadeParticles = 1000

// ParticleFader fades particle emitters. It writes the total alpha into
// EmitterConfig.StartColor.A, so new particles spawn faded, and into the tint
// of every live particle through a working buffer sized from the emitter
// config.
type ParticleFader struct {
	FadeNode
	emitter *ParticleEmitter
	buf     []Particle
	usable  bool
}

// NewParticleFader returns a detached ParticleFader.
func NewParticleFader() *ParticleFader {
	p := &ParticleFader{}
	p.init(p, p, KindParticles)
	return p
}

// ResolveReferences acquires the owner's emitter and sizes the working
// buffer. It only does work when the emitter handle changed.
func (p *ParticleFader) ResolveReferences(owner *Node) {
	var e *ParticleEmitter
	if owner != nil && !owner.disposed {
		e = owner.Emitter
	}
	if e == p.emitter {
		return
	}
	p.emitter = e
	p.buf = nil
	p.usable = false
	if e == nil {
		return
	}

	size := requiredParticleBuffer(&e.config, owner.Name)
	if size > MaxFadeParticles {
		logger.Error("particle buffer too large, emitter will not be faded",
			"node", owner.Name, "particles", size, "limit", MaxFadeParticles)
		return
	}
	p.buf = make([]Particle, size)
	p.usable = true
}

// CaptureAlpha keeps the emitter's authored start alpha as the self alpha.
func (p *ParticleFader) CaptureAlpha(owner *Node) (float64, bool) {
	if owner == nil || owner.Emitter == nil {
		return 0, false
	}
	return owner.Emitter.config.StartColor.A, true
}

// ApplyAlpha writes total into the start color and into every live particle.
func (p *ParticleFader) ApplyAlpha(total float64) {
	if !p.usable || p.emitter == nil {
		return
	}
	p.emitter.config.StartColor.A = total
	n := p.emitter.Particles(p.buf)
	for i := 0; i < n; i++ {
		p.buf[i].Tint.A = total
	}
	p.emitter.SetParticles(p.buf, n)
}

// Faded reports whether the adapter has a usable emitter and buffer.
func (p *ParticleFader) Faded() bool {
	return p.usable
}

// requiredParticleBuffer estimates how many particles an emitter can have
// alive at once. Looping emitters can reach their pool size; one-shot
// emitters emit at most maxRate*Duration particles. Unknown rate shapes are
// logged and count as zero.
func requiredParticleBuffer(cfg *EmitterConfig, name string) int {
	if cfg.Loop || cfg.Duration <= 0 {
		return cfg.MaxParticles
	}
	var maxRate float64
	switch cfg.RateMode {
	case RateConstant:
		maxRate = cfg.EmitRate
	case RateRandomBetween:
		maxRate = cfg.EmitRateRange.Max
	default:
		logger.Error("cannot size particle buffer for rate mode", "node", name, "mode", cfg.RateMode.String())
	}
	return int(math.Ceil(maxRate * cfg.Duration))
}
