package app

import (
	"errors"
	"fmt"
	"math"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/nunziatodamino/pixel-sorting/internal/colorspace"
	"github.com/nunziatodamino/pixel-sorting/internal/imageio"
	"github.com/nunziatodamino/pixel-sorting/internal/pixelsort"
)

// ErrConfig marks errors caused by invalid command-line configuration.
var ErrConfig = errors.New("configuration error")

// Config holds all the configuration parameters for the application,
// parsed from command-line flags.
type Config struct {
	InputPath    string
	OutputPath   string
	ImageType    string
	Mode         pixelsort.Mode
	ColorSpace   colorspace.Space
	RestoreColor bool
	Isolate      pixelsort.Channel
	Threshold    int
	RelEntropy   float64
	Write        bool
	Display      bool
	Workers      int
	Seed         int64
	MaxDim       int
	Quality      int
	LogFile      string
	Quiet        bool
}

// ModeNames returns the accepted sorting method names in sorted order.
func ModeNames() []string {
	names := lo.Keys(pixelsort.ModeNames)
	slices.Sort(names)
	return names
}

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, args...))
}

// Validate checks the configuration before any image is read. Every
// returned error wraps ErrConfig.
func (cfg *Config) Validate() error {
	if cfg.InputPath == "" {
		return configErrorf("--input/-i flag is required")
	}
	if _, err := os.Stat(cfg.InputPath); os.IsNotExist(err) {
		return configErrorf("input file does not exist: %s", cfg.InputPath)
	}
	if cfg.Mode == pixelsort.ModeUnset {
		return configErrorf("--method/-m flag is required (one of %s)", strings.Join(ModeNames(), ", "))
	}
	if cfg.Threshold < 0 || cfg.Threshold > pixelsort.MaxBrightness {
		return configErrorf("--threshold must be in [0, %d], got %d", pixelsort.MaxBrightness, cfg.Threshold)
	}
	if math.IsNaN(cfg.RelEntropy) || cfg.RelEntropy < 0 || cfg.RelEntropy > 1 {
		return configErrorf("--entropy must be in [0, 1], got %v", cfg.RelEntropy)
	}
	if cfg.Write {
		if cfg.OutputPath == "" {
			return configErrorf("--write requires --output/-o")
		}
		if err := imageio.CheckOutputFormat(cfg.OutputPath); err != nil {
			return configErrorf("%v", err)
		}
	}
	if cfg.ImageType != "" && !lo.Contains(imageio.DecodeTypes, strings.ToLower(cfg.ImageType)) {
		return configErrorf("unsupported image type: %s", cfg.ImageType)
	}
	if cfg.Workers <= 0 {
		return configErrorf("--workers must be a positive integer")
	}
	if cfg.MaxDim < 0 {
		return configErrorf("--max-size must not be negative")
	}
	if cfg.Quality < 1 || cfg.Quality > 100 {
		return configErrorf("--quality must be in [1, 100]")
	}
	return nil
}
