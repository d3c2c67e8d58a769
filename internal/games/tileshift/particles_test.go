package tileshift

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tileshift/internal/config"
	"github.com/vovakirdan/tileshift/internal/core"
	"github.com/vovakirdan/tileshift/internal/games/tileshift/board"
)

func TestParticlesBurstAndDecay(t *testing.T) {
	cfg := config.ParticleConfig{MinLife: 4, MaxLife: 6, Speed: 0.5, PerEffect: 5}
	p := NewParticles(rand.New(rand.NewSource(1)), cfg)

	p.Burst(10, 10, board.DirRight, core.ColorCyan)
	if p.Len() != 5 {
		t.Fatalf("Len = %d, want 5", p.Len())
	}
	for _, pt := range p.items {
		if pt.VX <= 0 {
			t.Errorf("particle drifting against burst direction: VX=%v", pt.VX)
		}
		if pt.Life < cfg.MinLife || pt.Life > cfg.MaxLife {
			t.Errorf("life %d outside [%d, %d]", pt.Life, cfg.MinLife, cfg.MaxLife)
		}
	}

	for range cfg.MaxLife {
		p.Update()
	}
	if p.Len() != 0 {
		t.Errorf("Len = %d after max life, want 0", p.Len())
	}
}

func TestParticlesDraw(t *testing.T) {
	cfg := config.ParticleConfig{MinLife: 10, MaxLife: 10, Speed: 0, PerEffect: 1}
	p := NewParticles(rand.New(rand.NewSource(1)), cfg)
	p.Burst(3, 2, board.DirUp, core.ColorGreen)

	scr := core.NewScreen(8, 5)
	p.Draw(scr)
	c := scr.GetCell(3, 2)
	if c.Rune != '*' || c.Color != core.ColorGreen {
		t.Errorf("cell = %+v, want fresh green spark", c)
	}

	p.Clear()
	if p.Len() != 0 {
		t.Error("Clear left particles")
	}
}
