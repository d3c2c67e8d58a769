package tileshift

import (
	"math/rand"

	"github.com/vovakirdan/tileshift/internal/config"
	"github.com/vovakirdan/tileshift/internal/core"
	"github.com/vovakirdan/tileshift/internal/games/tileshift/board"
)

// Particle is one cosmetic spark. It never feeds back into the board.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Color   core.Color
}

// Particles owns the live sparks. Aging is randomized so bursts dissolve
// unevenly.
type Particles struct {
	items []Particle
	rng   *rand.Rand
	cfg   config.ParticleConfig
}

// NewParticles creates an empty particle system.
func NewParticles(rng *rand.Rand, cfg config.ParticleConfig) *Particles {
	return &Particles{rng: rng, cfg: cfg}
}

// Burst spawns the configured number of particles at (x, y) drifting in dir.
func (p *Particles) Burst(x, y float64, dir board.Direction, color core.Color) {
	dx, dy := dir.Vector()
	for range p.cfg.PerEffect {
		life := p.cfg.MinLife
		if span := p.cfg.MaxLife - p.cfg.MinLife; span > 0 {
			life += p.rng.Intn(span + 1)
		}
		jitter := (p.rng.Float64() - 0.5) * p.cfg.Speed
		speed := p.cfg.Speed * (0.5 + p.rng.Float64())

		pt := Particle{
			X:       x,
			Y:       y,
			VX:      float64(dx) * speed,
			VY:      float64(dy) * speed,
			Life:    life,
			MaxLife: life,
			Color:   color,
		}
		// Spread sideways to the drift direction.
		if dx == 0 {
			pt.VX = jitter
		} else {
			pt.VY = jitter / 2
		}
		p.items = append(p.items, pt)
	}
}

// Update moves every particle one tick and drops the dead ones.
func (p *Particles) Update() {
	alive := p.items[:0]
	for _, pt := range p.items {
		pt.X += pt.VX
		pt.Y += pt.VY
		pt.Life--
		// Occasional extra aging step.
		if pt.Life > 0 && p.rng.Intn(4) == 0 {
			pt.Life--
		}
		if pt.Life > 0 {
			alive = append(alive, pt)
		}
	}
	p.items = alive
}

// Len returns the number of live particles.
func (p *Particles) Len() int {
	return len(p.items)
}

// Clear removes every particle.
func (p *Particles) Clear() {
	p.items = p.items[:0]
}

// Draw renders particles; older ones use fainter glyphs.
func (p *Particles) Draw(dst *core.Screen) {
	for _, pt := range p.items {
		glyph := '·'
		switch frac := float64(pt.Life) / float64(pt.MaxLife); {
		case frac > 0.66:
			glyph = '*'
		case frac > 0.33:
			glyph = '•'
		}
		dst.SetCell(int(pt.X+0.5), int(pt.Y+0.5), core.Cell{Rune: glyph, Color: pt.Color})
	}
}
