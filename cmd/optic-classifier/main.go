package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"github.com/rs/zerolog"

	"github.com/yoavsyo/optic-classifier/internal/classify"
	"github.com/yoavsyo/optic-classifier/internal/field"
	"github.com/yoavsyo/optic-classifier/internal/imaging"
	"github.com/yoavsyo/optic-classifier/internal/logger"
	"github.com/yoavsyo/optic-classifier/internal/pipeline"
	"github.com/yoavsyo/optic-classifier/internal/search"
	"github.com/yoavsyo/optic-classifier/internal/views"
)

const (
	AppName = "Optic Classifier"
	AppID   = "com.opticclassifier.demo"
)

// Config collects the demo flags.
type Config struct {
	ImagePath   string
	Target      int
	MaskSize    int
	Population  int
	Generations int
	Mutation    float64
	Radius      int
	Seed        int64
	Headless    bool
	Debug       bool
}

func parseFlags() Config {
	var cfg Config

	flag.StringVar(&cfg.ImagePath, "image", "", "grayscale image to classify; synthetic samples are used when empty")
	flag.IntVar(&cfg.Target, "target", 0, "target quadrant label for a loaded image (0-3)")
	flag.IntVar(&cfg.MaskSize, "size", 28, "side length of the synthetic samples and the phase mask")
	flag.IntVar(&cfg.Population, "population", 20, "masks evaluated per generation")
	flag.IntVar(&cfg.Generations, "generations", 60, "maximum search generations")
	flag.Float64Var(&cfg.Mutation, "mutation", 0.05, "fraction of mask phases re-randomized per child")
	flag.IntVar(&cfg.Radius, "radius", 2, "interference neighborhood radius of the simulated optical path")
	flag.Int64Var(&cfg.Seed, "seed", 1, "random seed for mask generation and mutation")
	flag.BoolVar(&cfg.Headless, "headless", false, "log results instead of opening the viewer")
	flag.BoolVar(&cfg.Debug, "debug", false, "enable debug logging")
	flag.Parse()

	return cfg
}

func main() {
	cfg := parseFlags()

	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	log := logger.NewConsoleLogger(level)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("Main", err, nil)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, log logger.Logger) error {
	samples, maskSize, err := loadSamples(cfg)
	if err != nil {
		return err
	}

	propagator := search.Interference{Radius: cfg.Radius}
	rng := rand.New(rand.NewSource(cfg.Seed))

	optimizer := search.NewOptimizer(search.Options{
		MaskSize:     maskSize,
		Population:   cfg.Population,
		Generations:  cfg.Generations,
		MutationRate: cfg.Mutation,
		Propagator:   propagator,
	}, rng, log)

	log.Info("Main", "starting mask search", map[string]interface{}{
		"samples":     len(samples),
		"mask_size":   maskSize,
		"population":  cfg.Population,
		"generations": cfg.Generations,
	})

	searchResult, err := optimizer.Run(ctx, samples)
	if err != nil {
		return fmt.Errorf("mask search: %w", err)
	}

	coordinator := pipeline.NewCoordinator(log, propagator)
	result, err := coordinator.Classify(ctx, samples[0].Pixels, searchResult.BestMask)
	if err != nil {
		return fmt.Errorf("classification: %w", err)
	}

	log.Info("Main", "classification result", map[string]interface{}{
		"predicted": int(result.Label),
		"wanted":    int(samples[0].Want),
		"energies":  result.Energies,
	})

	if cfg.Headless {
		return nil
	}

	showResults(samples[0].Pixels, searchResult, result, len(samples))
	return nil
}

// loadSamples returns the training set and the mask side length. With no
// image configured it synthesizes one sample per quadrant so the search has
// all four labels to satisfy.
func loadSamples(cfg Config) ([]search.Sample, int, error) {
	if cfg.ImagePath != "" {
		if cfg.Target < 0 || cfg.Target > 3 {
			return nil, 0, fmt.Errorf("target label %d out of range 0-3", cfg.Target)
		}
		pixels, err := imaging.LoadGrayscale(cfg.ImagePath)
		if err != nil {
			return nil, 0, err
		}
		rows, cols := pixels.Dims()
		if rows != cols {
			return nil, 0, fmt.Errorf("%w: image %dx%d is not square", field.ErrShapeMismatch, rows, cols)
		}
		return []search.Sample{{Pixels: pixels, Want: classify.Label(cfg.Target)}}, rows, nil
	}

	if cfg.MaskSize < 2 {
		return nil, 0, fmt.Errorf("%w: size %d leaves no quadrants", field.ErrDegenerateInput, cfg.MaskSize)
	}

	samples := make([]search.Sample, 0, 4)
	for label := classify.UpperLeft; label <= classify.LowerRight; label++ {
		pixels, err := quadrantSample(cfg.MaskSize, label)
		if err != nil {
			return nil, 0, err
		}
		samples = append(samples, search.Sample{Pixels: pixels, Want: label})
	}

	return samples, cfg.MaskSize, nil
}

// quadrantSample builds a dark image with a bright block in one quadrant.
func quadrantSample(size int, label classify.Label) (*field.PixelGrid, error) {
	pixels, err := field.NewPixelGrid(size, size)
	if err != nil {
		return nil, err
	}

	mid := size / 2
	y0, x0 := 0, 0
	if label == classify.LowerLeft || label == classify.LowerRight {
		y0 = mid
	}
	if label == classify.UpperRight || label == classify.LowerRight {
		x0 = mid
	}

	for y := y0; y < y0+mid; y++ {
		for x := x0; x < x0+mid; x++ {
			pixels.Set(y, x, 255)
		}
	}

	return pixels, nil
}

func showResults(original *field.PixelGrid, searchResult *search.Result, result *pipeline.Result, sampleCount int) {
	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)

	example := views.NewExampleView(
		imaging.GridImage(original),
		imaging.AngleImage(searchResult.BestMask),
		imaging.IntensityImage(result.Intensity),
		result.Label,
	)
	plot := views.NewScorePlot(searchResult.BestScores, sampleCount)

	window.SetContent(container.NewVBox(example, plot))
	window.CenterOnScreen()
	window.ShowAndRun()
}
