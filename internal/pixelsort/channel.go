package pixelsort

import (
	"fmt"
	"strings"
)

// Channel names a pixel slot.
type Channel int

const (
	// NoChannel disables channel isolation.
	NoChannel Channel = iota - 1
	Blue
	Green
	Red
)

var channelNames = map[string]Channel{
	"none":  NoChannel,
	"blue":  Blue,
	"green": Green,
	"red":   Red,
}

func (c Channel) String() string {
	switch c {
	case NoChannel:
		return "none"
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Red:
		return "red"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// Set implements pflag.Value.
func (c *Channel) Set(s string) error {
	v, ok := channelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return fmt.Errorf("unknown channel %q (want none, blue, green or red)", s)
	}
	*c = v
	return nil
}

// Type implements pflag.Value.
func (c *Channel) Type() string { return "channel" }

// MapPixels replaces every pixel p of img with fn(p), in parallel by row.
func (s *Sorter) MapPixels(img *Image, fn func(Pixel) Pixel) {
	if img == nil || img.Rows == 0 || img.Cols == 0 {
		return
	}
	s.parallelRange(img.Rows, func(start, end int) {
		for i := start * img.Cols; i < end*img.Cols; i++ {
			img.Pix[i] = fn(img.Pix[i])
		}
	})
}

// IsolateChannel zeroes every slot except ch. NoChannel leaves img as is.
func (s *Sorter) IsolateChannel(img *Image, ch Channel) {
	if ch < Blue || ch > Red {
		return
	}
	s.MapPixels(img, func(p Pixel) Pixel {
		var out Pixel
		out[ch] = p[ch]
		return out
	})
}
