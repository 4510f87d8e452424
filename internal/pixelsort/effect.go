package pixelsort

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// Mode selects the reordering operation.
type Mode int

const (
	// ModeUnset is the zero value and is rejected by Select.
	ModeUnset Mode = iota
	ModeNone
	ModeHorizontal
	ModeVertical
	ModeRandom
)

// ModeNames maps the accepted command-line spellings to modes.
var ModeNames = map[string]Mode{
	"none":       ModeNone,
	"horizontal": ModeHorizontal,
	"vertical":   ModeVertical,
	"random":     ModeRandom,
}

// ErrNoMode is returned by Select when no mode was chosen.
var ErrNoMode = errors.New("sorting method not specified")

func (m Mode) String() string {
	switch m {
	case ModeUnset:
		return ""
	case ModeNone:
		return "none"
	case ModeHorizontal:
		return "horizontal"
	case ModeVertical:
		return "vertical"
	case ModeRandom:
		return "random"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Set implements pflag.Value.
func (m *Mode) Set(s string) error {
	v, ok := ModeNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return fmt.Errorf("unknown sorting method %q", s)
	}
	*m = v
	return nil
}

// Type implements pflag.Value.
func (m *Mode) Type() string { return "method" }

// Units returns how many traversal units the mode reports through
// Sorter.OnUnit when applied to img.
func (m Mode) Units(img *Image) int {
	switch m {
	case ModeHorizontal:
		return img.Rows
	case ModeVertical:
		return img.Cols
	case ModeRandom:
		return 1
	default:
		return 0
	}
}

// Params configures one effect.
type Params struct {
	Mode       Mode
	Threshold  int
	RelEntropy float64
	// Rand drives random sampling. Required for ModeRandom.
	Rand *rand.Rand
}

// Effect mutates an image in place.
type Effect func(img *Image)

// Select returns the operation described by p. Threshold applies to the
// row and column modes only; random sampling always uses the plain
// comparator.
func (s *Sorter) Select(p Params) (Effect, error) {
	cmp := Comparator{Threshold: p.Threshold}
	switch p.Mode {
	case ModeNone:
		return func(*Image) {}, nil
	case ModeHorizontal:
		return func(img *Image) { s.SortUnits(img, Rows, cmp) }, nil
	case ModeVertical:
		return func(img *Image) { s.SortUnits(img, Columns, cmp) }, nil
	case ModeRandom:
		if p.Rand == nil {
			return nil, errors.New("random sort requires a random source")
		}
		return func(img *Image) { s.RandomSort(img, p.RelEntropy, p.Rand) }, nil
	case ModeUnset:
		return nil, ErrNoMode
	default:
		return nil, fmt.Errorf("unsupported sorting method: %v", p.Mode)
	}
}
