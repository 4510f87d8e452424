package app

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"sync/atomic"
	"time"

	"github.com/nunziatodamino/pixel-sorting/internal/colorspace"
	"github.com/nunziatodamino/pixel-sorting/internal/display"
	"github.com/nunziatodamino/pixel-sorting/internal/imageio"
	"github.com/nunziatodamino/pixel-sorting/internal/pixelsort"
)

// ErrIO marks failures reading the input image or writing the result.
var ErrIO = errors.New("i/o error")

const windowTitle = "Display Image"

// Run is the main application logic. cfg must already be validated.
func Run(cfg *Config) error {
	var out io.Writer = os.Stdout
	if cfg.Quiet {
		out = io.Discard
	}

	seed := cfg.Seed
	if seed < 0 {
		seed = time.Now().UTC().UnixNano()
	}
	log.Printf("Starting %s sort with %d workers (seed %d).", cfg.Mode, cfg.Workers, seed)

	src, err := imageio.Load(cfg.InputPath, cfg.ImageType)
	if err != nil {
		return fmt.Errorf("%w: failed to load image: %w", ErrIO, err)
	}
	src = imageio.Fit(src, cfg.MaxDim)
	img := pixelsort.FromImage(src)
	log.Printf("Loaded %s (%dx%d).", cfg.InputPath, img.Cols, img.Rows)

	sorter := pixelsort.NewSorter(cfg.Workers)
	effect, err := sorter.Select(pixelsort.Params{
		Mode:       cfg.Mode,
		Threshold:  cfg.Threshold,
		RelEntropy: cfg.RelEntropy,
		Rand:       rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if cfg.Mode == pixelsort.ModeRandom && cfg.Threshold > 0 {
		log.Printf("Threshold %d is ignored by random sort.", cfg.Threshold)
	}

	if cfg.ColorSpace != colorspace.BGR {
		log.Printf("Converting to %s.", cfg.ColorSpace)
		colorspace.Forward(sorter, img, cfg.ColorSpace)
	}
	if cfg.Isolate != pixelsort.NoChannel {
		log.Printf("Isolating %s channel.", cfg.Isolate)
		sorter.IsolateChannel(img, cfg.Isolate)
	}

	var processed atomic.Int64
	sorter.OnUnit = func() { processed.Add(1) }
	total := int64(cfg.Mode.Units(img))
	if cfg.Mode == pixelsort.ModeRandom {
		fmt.Fprintf(out, "Sampling %d of %d pixels.\n", pixelsort.SampleCount(img.Rows, img.Cols, cfg.RelEntropy), len(img.Pix))
	}

	stop := startProgress(out, "Sorting", total, &processed)
	startTime := time.Now()
	effect(img)
	duration := time.Since(startTime)
	stop()

	log.Printf("Sorting %d units took %s.", processed.Load(), duration)
	printSummary(out, processed.Load(), duration)

	if cfg.RestoreColor && cfg.ColorSpace != colorspace.BGR {
		log.Printf("Converting back from %s.", cfg.ColorSpace)
		colorspace.Inverse(sorter, img, cfg.ColorSpace)
	}

	result := img.NRGBA()
	if cfg.Write {
		if err := imageio.Save(result, cfg.OutputPath, cfg.Quality); err != nil {
			return fmt.Errorf("%w: %w", ErrIO, err)
		}
		log.Printf("Saved result to %s.", cfg.OutputPath)
		fmt.Fprintf(out, "Wrote %s\n", cfg.OutputPath)
	}

	if cfg.Display {
		err := display.Show(windowTitle, result)
		switch {
		case errors.Is(err, display.ErrUnavailable):
			log.Printf("Display skipped: %v", err)
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		case err != nil:
			return err
		}
	}

	log.Println("Processing complete.")
	return nil
}
