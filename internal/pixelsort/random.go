package pixelsort

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
)

// SampleCount returns floor(rows*cols*relEntropy).
func SampleCount(rows, cols int, relEntropy float64) int {
	return int(math.Floor(float64(rows*cols) * relEntropy))
}

// RandomSort samples SampleCount positions uniformly with replacement,
// sorts the sampled pixels by brightness and writes them back in draw
// order. When a position is drawn more than once, the value written for
// its last draw is kept.
func (s *Sorter) RandomSort(img *Image, relEntropy float64, rng *rand.Rand) {
	if relEntropy < 0 || relEntropy > 1 || math.IsNaN(relEntropy) {
		panic(fmt.Sprintf("pixelsort: relative entropy %v outside [0, 1]", relEntropy))
	}
	if img == nil || img.Rows == 0 || img.Cols == 0 {
		return
	}
	n := SampleCount(img.Rows, img.Cols, relEntropy)
	if n == 0 {
		return
	}

	positions := samplePositions(rng, img.Rows, img.Cols, n)
	values := make([]Pixel, n)
	for i, pos := range positions {
		values[i] = img.Pix[pos]
	}
	slices.SortStableFunc(values, Plain.Compare)

	s.writeBack(img, positions, values)
	s.unitDone()
}

// samplePositions draws n flat indexes into a rows×cols grid.
func samplePositions(rng *rand.Rand, rows, cols, n int) []int {
	positions := make([]int, n)
	for i := range positions {
		row := rng.Intn(rows)
		col := rng.Intn(cols)
		positions[i] = row*cols + col
	}
	return positions
}

// writeBack stores values[i] at positions[i]. The draw with the highest
// index owns a repeated position, so the outcome matches a sequential
// loop regardless of goroutine scheduling.
func (s *Sorter) writeBack(img *Image, positions []int, values []Pixel) {
	owner := make([]int32, len(img.Pix))
	for i := range owner {
		owner[i] = -1
	}
	for i, pos := range positions {
		owner[pos] = int32(i)
	}

	s.parallelRange(len(positions), func(start, end int) {
		for i := start; i < end; i++ {
			pos := positions[i]
			if owner[pos] == int32(i) {
				img.Pix[pos] = values[i]
			}
		}
	})
}
