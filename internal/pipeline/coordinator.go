// Package pipeline composes the phase-encoding stages into the end-to-end
// classification chain: pixels -> phase field -> mask interaction ->
// intensity -> quadrant label.
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/yoavsyo/optic-classifier/internal/classify"
	"github.com/yoavsyo/optic-classifier/internal/field"
	"github.com/yoavsyo/optic-classifier/internal/logger"
	"github.com/yoavsyo/optic-classifier/internal/phase"
)

// Result carries everything a single classification run produces. Intensity
// and Demodulated are retained for display; callers treat them read-only.
type Result struct {
	Label       classify.Label
	Energies    [4]float64
	Intensity   *mat.Dense
	Field       *mat.CDense
	Demodulated *field.PixelGrid
}

// Propagator models the optical path between the modulator and the output
// screen. The core stops at the mask multiply; any propagation behavior is
// supplied by the caller. A nil Propagator means the field reaches the
// screen unchanged.
type Propagator interface {
	Propagate(f *mat.CDense) (*mat.CDense, error)
}

// Coordinator runs the transform chain and caches the most recent result.
type Coordinator struct {
	mu         sync.RWMutex
	log        logger.Logger
	propagator Propagator
	latest     *Result
}

func NewCoordinator(log logger.Logger, propagator Propagator) *Coordinator {
	if log == nil {
		log = logger.Nop{}
	}
	return &Coordinator{log: log, propagator: propagator}
}

// Classify encodes the pixel grid as a phase-only field, applies the mask,
// and labels the resulting intensity pattern by quadrant energy. The mask
// must match the image shape.
func (c *Coordinator) Classify(ctx context.Context, pixels *field.PixelGrid, mask *mat.CDense) (*Result, error) {
	rows, cols := pixels.Dims()
	c.log.Debug("Pipeline", "classification started", map[string]interface{}{
		"rows": rows,
		"cols": cols,
	})

	encoded := phase.EncodePhase(pixels)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	modulated, err := field.ApplyMask(encoded, mask)
	if err != nil {
		c.log.Error("Pipeline", err, map[string]interface{}{"stage": "mask"})
		return nil, fmt.Errorf("mask application: %w", err)
	}

	screen := modulated
	if c.propagator != nil {
		screen, err = c.propagator.Propagate(modulated)
		if err != nil {
			c.log.Error("Pipeline", err, map[string]interface{}{"stage": "propagate"})
			return nil, fmt.Errorf("propagation: %w", err)
		}
	}

	intensity := field.Intensity(screen)

	label, err := classify.ByQuadrant(intensity)
	if err != nil {
		c.log.Error("Pipeline", err, map[string]interface{}{"stage": "classify"})
		return nil, fmt.Errorf("quadrant classification: %w", err)
	}

	energies, _ := classify.QuadrantEnergies(intensity)

	result := &Result{
		Label:       label,
		Energies:    energies,
		Intensity:   intensity,
		Field:       screen,
		Demodulated: phase.DemodulateMagnitude(screen),
	}

	c.mu.Lock()
	c.latest = result
	c.mu.Unlock()

	c.log.Debug("Pipeline", "classification complete", map[string]interface{}{
		"label": int(label),
	})

	return result, nil
}

// Latest returns the most recent classification result, or nil when nothing
// has been classified yet.
func (c *Coordinator) Latest() *Result {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.latest
}
