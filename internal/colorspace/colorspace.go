// Package colorspace converts pixel buffers between BGR and the 8-bit
// encodings of HSV, Lab and YCrCb used by OpenCV. Sorting code treats
// the converted slots as opaque bytes, so "brightness" after a transform
// is simply the sum of the encoded channels.
package colorspace

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/nunziatodamino/pixel-sorting/internal/pixelsort"
)

// Space identifies a color space.
type Space int

const (
	// BGR leaves pixels untouched.
	BGR Space = iota
	HSV
	Lab
	YCrCb
)

var spaceNames = map[string]Space{
	"none":  BGR,
	"bgr":   BGR,
	"hsv":   HSV,
	"lab":   Lab,
	"ycrcb": YCrCb,
}

func (s Space) String() string {
	switch s {
	case BGR:
		return "none"
	case HSV:
		return "hsv"
	case Lab:
		return "lab"
	case YCrCb:
		return "ycrcb"
	default:
		return fmt.Sprintf("Space(%d)", int(s))
	}
}

// Set implements pflag.Value.
func (s *Space) Set(v string) error {
	sp, ok := spaceNames[strings.ToLower(strings.TrimSpace(v))]
	if !ok {
		return fmt.Errorf("unknown color space %q (want none, hsv, lab or ycrcb)", v)
	}
	*s = sp
	return nil
}

// Type implements pflag.Value.
func (s *Space) Type() string { return "space" }

// Forward converts every BGR pixel of img into space s.
func Forward(sorter *pixelsort.Sorter, img *pixelsort.Image, s Space) {
	if fn := forwardFunc(s); fn != nil {
		sorter.MapPixels(img, fn)
	}
}

// Inverse converts every pixel of img from space s back to BGR.
func Inverse(sorter *pixelsort.Sorter, img *pixelsort.Image, s Space) {
	if fn := inverseFunc(s); fn != nil {
		sorter.MapPixels(img, fn)
	}
}

func forwardFunc(s Space) func(pixelsort.Pixel) pixelsort.Pixel {
	switch s {
	case HSV:
		return toHSV
	case Lab:
		return toLab
	case YCrCb:
		return toYCrCb
	default:
		return nil
	}
}

func inverseFunc(s Space) func(pixelsort.Pixel) pixelsort.Pixel {
	switch s {
	case HSV:
		return fromHSV
	case Lab:
		return fromLab
	case YCrCb:
		return fromYCrCb
	default:
		return nil
	}
}

func toColorful(p pixelsort.Pixel) colorful.Color {
	return colorful.Color{
		R: float64(p[2]) / 255.0,
		G: float64(p[1]) / 255.0,
		B: float64(p[0]) / 255.0,
	}
}

func fromColorful(c colorful.Color) pixelsort.Pixel {
	r, g, b := c.Clamped().RGB255()
	return pixelsort.Pixel{b, g, r}
}

// clamp8 rounds v to the nearest byte value.
func clamp8(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}

// H is stored halved so that [0, 360) fits a byte.
func toHSV(p pixelsort.Pixel) pixelsort.Pixel {
	h, s, v := toColorful(p).Hsv()
	hue := math.Round(h / 2)
	if hue >= 180 {
		hue = 0
	}
	return pixelsort.Pixel{uint8(hue), clamp8(s * 255), clamp8(v * 255)}
}

func fromHSV(p pixelsort.Pixel) pixelsort.Pixel {
	return fromColorful(colorful.Hsv(float64(p[0])*2, float64(p[1])/255, float64(p[2])/255))
}

// L is scaled from [0, 100] to [0, 255]; a and b are offset by 128.
func toLab(p pixelsort.Pixel) pixelsort.Pixel {
	l, a, b := toColorful(p).Lab()
	return pixelsort.Pixel{clamp8(l * 255), clamp8(a*100 + 128), clamp8(b*100 + 128)}
}

func fromLab(p pixelsort.Pixel) pixelsort.Pixel {
	return fromColorful(colorful.Lab(
		float64(p[0])/255,
		(float64(p[1])-128)/100,
		(float64(p[2])-128)/100,
	))
}

func toYCrCb(p pixelsort.Pixel) pixelsort.Pixel {
	y, cb, cr := color.RGBToYCbCr(p[2], p[1], p[0])
	return pixelsort.Pixel{y, cr, cb}
}

func fromYCrCb(p pixelsort.Pixel) pixelsort.Pixel {
	r, g, b := color.YCbCrToRGB(p[0], p[2], p[1])
	return pixelsort.Pixel{b, g, r}
}
