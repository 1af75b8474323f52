// Package search drives the classification pipeline repeatedly to find a
// phase mask that steers each training image's energy into its target
// quadrant. It is a collaborator of the numeric core: it only supplies
// masks and consumes labels.
package search

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/yoavsyo/optic-classifier/internal/classify"
	"github.com/yoavsyo/optic-classifier/internal/field"
	"github.com/yoavsyo/optic-classifier/internal/logger"
	"github.com/yoavsyo/optic-classifier/internal/phase"
	"github.com/yoavsyo/optic-classifier/internal/pipeline"
)

// Sample pairs a training image with the quadrant it should light up.
type Sample struct {
	Pixels *field.PixelGrid
	Want   classify.Label
}

// Options configures a run. MaskSize must match the training image
// dimensions; MutationRate is the fraction of mask elements re-randomized
// per child. Propagator is the simulated optical path between modulator and
// screen; nil leaves the field unchanged, which makes every intensity
// pattern uniform and the search inert.
type Options struct {
	MaskSize     int
	Population   int
	Generations  int
	MutationRate float64
	Propagator   pipeline.Propagator
}

// Result holds the winning mask and the best raw score of every generation.
// Scores count correctly classified samples, so a percentage curve is
// score/len(samples)*100.
type Result struct {
	BestMask   *mat.CDense
	BestScores []int
}

type Optimizer struct {
	opts Options
	rng  *rand.Rand
	gen  *phase.MaskGenerator
	log  logger.Logger
}

func NewOptimizer(opts Options, rng *rand.Rand, log logger.Logger) *Optimizer {
	if log == nil {
		log = logger.Nop{}
	}
	return &Optimizer{
		opts: opts,
		rng:  rng,
		gen:  phase.NewMaskGenerator(rng),
		log:  log,
	}
}

// Run performs an elitist random search: the best mask of each generation
// survives unchanged and the rest of the population is built by mutating
// it. Deterministic for a fixed seed and fixed inputs.
func (o *Optimizer) Run(ctx context.Context, samples []Sample) (*Result, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: no training samples", field.ErrDegenerateInput)
	}
	if o.opts.MaskSize <= 0 || o.opts.Population <= 0 || o.opts.Generations <= 0 {
		return nil, fmt.Errorf("invalid search options %+v", o.opts)
	}

	for _, s := range samples {
		rows, cols := s.Pixels.Dims()
		if rows != o.opts.MaskSize || cols != o.opts.MaskSize {
			return nil, fmt.Errorf("%w: sample %dx%d, mask size %d", field.ErrShapeMismatch, rows, cols, o.opts.MaskSize)
		}
	}

	best, err := o.gen.Random(o.opts.MaskSize)
	if err != nil {
		return nil, err
	}
	bestScore, err := o.score(best, samples)
	if err != nil {
		return nil, err
	}

	scores := make([]int, 0, o.opts.Generations)

	for generation := 0; generation < o.opts.Generations; generation++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		for i := 1; i < o.opts.Population; i++ {
			candidate := o.mutate(best)
			score, err := o.score(candidate, samples)
			if err != nil {
				return nil, err
			}
			if score > bestScore {
				best = candidate
				bestScore = score
			}
		}

		scores = append(scores, bestScore)
		o.log.Debug("Search", "generation complete", map[string]interface{}{
			"generation": generation,
			"best_score": bestScore,
			"samples":    len(samples),
		})

		if bestScore == len(samples) {
			break
		}
	}

	o.log.Info("Search", "search finished", map[string]interface{}{
		"generations": len(scores),
		"best_score":  bestScore,
	})

	mask, err := field.ReshapeMask(best, o.opts.MaskSize)
	if err != nil {
		return nil, err
	}

	return &Result{BestMask: mask, BestScores: scores}, nil
}

// score counts samples whose masked intensity lands in the wanted quadrant.
func (o *Optimizer) score(flat []complex128, samples []Sample) (int, error) {
	mask, err := field.ReshapeMask(flat, o.opts.MaskSize)
	if err != nil {
		return 0, err
	}

	correct := 0
	for _, s := range samples {
		modulated, err := field.ApplyMask(phase.EncodePhase(s.Pixels), mask)
		if err != nil {
			return 0, err
		}
		if o.opts.Propagator != nil {
			modulated, err = o.opts.Propagator.Propagate(modulated)
			if err != nil {
				return 0, err
			}
		}
		label, err := classify.ByQuadrant(field.Intensity(modulated))
		if err != nil {
			return 0, err
		}
		if label == s.Want {
			correct++
		}
	}

	return correct, nil
}

// mutate copies the parent and re-randomizes a MutationRate fraction of its
// phases.
func (o *Optimizer) mutate(parent []complex128) []complex128 {
	child := make([]complex128, len(parent))
	copy(child, parent)

	for i := range child {
		if o.rng.Float64() < o.opts.MutationRate {
			a := 2 * math.Pi * o.rng.Float64()
			child[i] = complex(math.Cos(a), math.Sin(a))
		}
	}

	return child
}
