package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/pflag"

	"github.com/nunziatodamino/pixel-sorting/internal/app"
	"github.com/nunziatodamino/pixel-sorting/internal/imageio"
	"github.com/nunziatodamino/pixel-sorting/internal/logger"
	"github.com/nunziatodamino/pixel-sorting/internal/pixelsort"
)

func main() {
	cfg := parseFlags()

	logFile, err := logger.Init(cfg.LogFile, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	if err = cfg.Validate(); err != nil {
		log.Printf("Configuration error: %v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		logFile.Close()
		os.Exit(2)
	}

	if err = app.Run(cfg); err != nil {
		log.Printf("Application error: %v", err)
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		logFile.Close()
		if errors.Is(err, app.ErrConfig) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// parseFlags defines and parses command-line flags, returning them
// in a Config struct.
func parseFlags() *app.Config {
	cfg := &app.Config{Isolate: pixelsort.NoChannel}

	pflag.StringVarP(&cfg.InputPath, "input", "i", "", "Path to the input image.")
	pflag.StringVarP(&cfg.OutputPath, "output", "o", "", "Path of the output image; the extension selects the format.")
	pflag.VarP(&cfg.Mode, "method", "m", fmt.Sprintf("Sorting method (%s).", strings.Join(app.ModeNames(), ", ")))
	pflag.VarP(&cfg.ColorSpace, "color", "c", "Color space to convert to before sorting (none, hsv, lab, ycrcb).")
	pflag.BoolVar(&cfg.RestoreColor, "restore", false, "Convert back from --color to BGR after sorting.")
	pflag.Var(&cfg.Isolate, "isolate", "Keep only one channel (none, blue, green, red) before sorting.")
	pflag.IntVarP(&cfg.Threshold, "threshold", "t", 0, fmt.Sprintf("Brightness threshold in [0, %d]; darker pixels are pushed to the end of each row or column.", pixelsort.MaxBrightness))
	pflag.Float64VarP(&cfg.RelEntropy, "entropy", "e", 0, "Fraction of pixels sampled by the random sort, in [0, 1].")
	pflag.BoolVarP(&cfg.Write, "write", "w", false, "Write the result to --output.")
	pflag.BoolVar(&cfg.Display, "display", false, "Show the result in a window (requires a gocv build).")
	pflag.IntVarP(&cfg.Workers, "workers", "j", runtime.NumCPU(), "Number of goroutines sorting rows or columns.")
	pflag.Int64Var(&cfg.Seed, "seed", -1, "Random seed for the random sort; -1 derives one from the clock.")
	pflag.IntVar(&cfg.MaxDim, "max-size", 0, "Downscale the input so neither side exceeds this many pixels (0 keeps the size).")
	pflag.IntVar(&cfg.Quality, "quality", 95, "JPEG output quality.")
	pflag.StringVar(&cfg.ImageType, "type", "", fmt.Sprintf("Type of the input image (%s). If not specified, it will be inferred.", strings.Join(imageio.DecodeTypes, ", ")))
	pflag.StringVar(&cfg.LogFile, "log-file", "pixelsort.log", "File that receives the run log.")
	pflag.BoolVarP(&cfg.Quiet, "quiet", "q", false, "Suppress progress output.")

	pflag.Parse()
	return cfg
}
