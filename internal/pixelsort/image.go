package pixelsort

import (
	"image"
	"image/draw"
)

// Pixel is a 3-channel 8-bit value. Images decoded from disk store their
// channels in B, G, R order.
type Pixel [3]uint8

// Brightness returns the sum of the three channel values, in [0, 765].
func (p Pixel) Brightness() int {
	return int(p[0]) + int(p[1]) + int(p[2])
}

// MaxBrightness is the brightness of a white pixel.
const MaxBrightness = 3 * 255

// Image is a row-major grid of pixels, mutated in place by the engine.
type Image struct {
	Rows int
	Cols int
	Pix  []Pixel
}

// NewImage allocates a black image of the given size.
func NewImage(rows, cols int) *Image {
	if rows < 0 || cols < 0 {
		rows, cols = 0, 0
	}
	return &Image{Rows: rows, Cols: cols, Pix: make([]Pixel, rows*cols)}
}

// At returns the pixel at (row, col).
func (m *Image) At(row, col int) Pixel {
	return m.Pix[row*m.Cols+col]
}

// Set stores p at (row, col).
func (m *Image) Set(row, col int, p Pixel) {
	m.Pix[row*m.Cols+col] = p
}

// Clone returns a deep copy of m.
func (m *Image) Clone() *Image {
	c := &Image{Rows: m.Rows, Cols: m.Cols, Pix: make([]Pixel, len(m.Pix))}
	copy(c.Pix, m.Pix)
	return c
}

// FromImage copies src into a new Image, dropping alpha.
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	nrgba, ok := src.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), src, bounds.Min, draw.Src)
	}

	m := NewImage(bounds.Dy(), bounds.Dx())
	for y := 0; y < m.Rows; y++ {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < m.Cols; x++ {
			o := x * 4
			m.Pix[y*m.Cols+x] = Pixel{row[o+2], row[o+1], row[o]}
		}
	}
	return m
}

// NRGBA renders m as an opaque image, reading slots as B, G, R.
func (m *Image) NRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, m.Cols, m.Rows))
	for y := 0; y < m.Rows; y++ {
		row := out.Pix[y*out.Stride:]
		for x := 0; x < m.Cols; x++ {
			p := m.Pix[y*m.Cols+x]
			o := x * 4
			row[o], row[o+1], row[o+2], row[o+3] = p[2], p[1], p[0], 0xff
		}
	}
	return out
}
