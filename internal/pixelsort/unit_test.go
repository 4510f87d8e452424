package pixelsort

import (
	"math/rand"
	"slices"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomImage(rng *rand.Rand, rows, cols int) *Image {
	img := NewImage(rows, cols)
	for i := range img.Pix {
		img.Pix[i] = Pixel{uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256))}
	}
	return img
}

func column(img *Image, col int) []Pixel {
	out := make([]Pixel, img.Rows)
	for r := range out {
		out[r] = img.At(r, col)
	}
	return out
}

func row(img *Image, r int) []Pixel {
	return slices.Clone(img.Pix[r*img.Cols : (r+1)*img.Cols])
}

func sortedMultiset(ps []Pixel) []Pixel {
	out := slices.Clone(ps)
	slices.SortFunc(out, func(a, b Pixel) int {
		for i := range a {
			if a[i] != b[i] {
				return int(a[i]) - int(b[i])
			}
		}
		return 0
	})
	return out
}

func assertAscending(t *testing.T, ps []Pixel) {
	t.Helper()
	for i := 1; i < len(ps); i++ {
		require.LessOrEqual(t, ps[i-1].Brightness(), ps[i].Brightness(), "position %d", i)
	}
}

func TestSortUnitsRows(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	img := randomImage(rng, 17, 33)
	orig := img.Clone()

	NewSorter(4).SortUnits(img, Rows, Plain)

	for r := 0; r < img.Rows; r++ {
		assertAscending(t, row(img, r))
		assert.Equal(t, sortedMultiset(row(orig, r)), sortedMultiset(row(img, r)))
	}
}

func TestSortUnitsColumns(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	img := randomImage(rng, 29, 11)
	orig := img.Clone()

	NewSorter(3).SortUnits(img, Columns, Plain)

	for c := 0; c < img.Cols; c++ {
		assertAscending(t, column(img, c))
		assert.Equal(t, sortedMultiset(column(orig, c)), sortedMultiset(column(img, c)))
	}
}

func TestSortUnitsThresholdScenario(t *testing.T) {
	img := NewImage(4, 1)
	for r, b := range []int{10, 300, 5, 700} {
		img.Set(r, 0, gray(b))
	}

	NewSorter(1).SortUnits(img, Columns, Comparator{Threshold: 100})

	got := column(img, 0)
	assert.Equal(t, 300, got[0].Brightness())
	assert.Equal(t, 700, got[1].Brightness())
	assert.ElementsMatch(t, []int{10, 5}, []int{got[2].Brightness(), got[3].Brightness()})
}

func TestSortUnitsThresholdGrouping(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	img := randomImage(rng, 9, 64)
	orig := img.Clone()
	cmp := Comparator{Threshold: 380}

	NewSorter(2).SortUnits(img, Rows, cmp)

	for r := 0; r < img.Rows; r++ {
		got := row(img, r)
		assert.Equal(t, sortedMultiset(row(orig, r)), sortedMultiset(got))

		split := slices.IndexFunc(got, func(p Pixel) bool { return p.Brightness() < cmp.Threshold })
		if split < 0 {
			split = len(got)
		}
		assertAscending(t, got[:split])
		for _, p := range got[split:] {
			assert.Less(t, p.Brightness(), cmp.Threshold)
		}
	}
}

func TestSortUnitsThresholdKeepsDarkOrder(t *testing.T) {
	img := NewImage(1, 6)
	in := []Pixel{{9, 0, 0}, {200, 200, 200}, {0, 3, 0}, {0, 0, 7}, {150, 150, 150}, {1, 1, 1}}
	copy(img.Pix, in)

	NewSorter(1).SortUnits(img, Rows, Comparator{Threshold: 100})

	assert.Equal(t, []Pixel{{150, 150, 150}, {200, 200, 200}, {9, 0, 0}, {0, 3, 0}, {0, 0, 7}, {1, 1, 1}}, img.Pix)
}

func TestSortUnitsIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for _, cmp := range []Comparator{Plain, {Threshold: 200}} {
		img := randomImage(rng, 12, 12)
		s := NewSorter(2)
		s.SortUnits(img, Columns, cmp)
		once := img.Clone()
		s.SortUnits(img, Columns, cmp)
		assert.Equal(t, once.Pix, img.Pix)
	}
}

func TestSortUnitsDegenerate(t *testing.T) {
	s := NewSorter(4)
	for _, img := range []*Image{NewImage(0, 0), NewImage(0, 5), NewImage(5, 0)} {
		assert.NotPanics(t, func() {
			s.SortUnits(img, Rows, Plain)
			s.SortUnits(img, Columns, Plain)
		})
	}
	assert.NotPanics(t, func() { s.SortUnits(nil, Rows, Plain) })

	single := NewImage(1, 1)
	single.Pix[0] = Pixel{1, 2, 3}
	s.SortUnits(single, Rows, Plain)
	s.SortUnits(single, Columns, Plain)
	assert.Equal(t, Pixel{1, 2, 3}, single.Pix[0])
}

func TestSortUnitsWorkerCountsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	base := randomImage(rng, 40, 25)

	want := base.Clone()
	NewSorter(1).SortUnits(want, Columns, Comparator{Threshold: 250})
	for _, workers := range []int{0, 2, 7, 64} {
		got := base.Clone()
		NewSorter(workers).SortUnits(got, Columns, Comparator{Threshold: 250})
		assert.Equal(t, want.Pix, got.Pix, "workers=%d", workers)
	}
}

func TestSortUnitsReportsEveryUnit(t *testing.T) {
	img := randomImage(rand.New(rand.NewSource(6)), 13, 21)
	var count atomic.Int64
	s := &Sorter{Workers: 4, OnUnit: func() { count.Add(1) }}

	s.SortUnits(img, Rows, Plain)
	assert.EqualValues(t, ModeHorizontal.Units(img), count.Load())

	count.Store(0)
	s.SortUnits(img, Columns, Plain)
	assert.EqualValues(t, ModeVertical.Units(img), count.Load())
}
