package pixelsort

import (
	"fmt"
	"slices"
)

// Axis selects the traversal unit: a whole row or a whole column.
type Axis int

const (
	// Rows sorts every row independently (horizontal streaks).
	Rows Axis = iota
	// Columns sorts every column independently (vertical streaks).
	Columns
)

func (a Axis) String() string {
	switch a {
	case Rows:
		return "rows"
	case Columns:
		return "columns"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// unitGeometry returns the number of units along axis, their length, and
// the flat-index step between consecutive pixels of one unit.
func unitGeometry(img *Image, axis Axis) (units, length, step int) {
	if axis == Columns {
		return img.Cols, img.Rows, img.Cols
	}
	return img.Rows, img.Cols, 1
}

// unitStart returns the flat index of the first pixel of unit i.
func unitStart(img *Image, axis Axis, i int) int {
	if axis == Columns {
		return i
	}
	return i * img.Cols
}

// SortUnits sorts every row or column of img in place using cmp. Units are
// independent and are processed concurrently.
func (s *Sorter) SortUnits(img *Image, axis Axis, cmp Comparator) {
	if img == nil || img.Rows == 0 || img.Cols == 0 {
		return
	}
	units, length, step := unitGeometry(img, axis)

	s.parallelRange(units, func(start, end int) {
		scratch := make([]Pixel, length)
		for i := start; i < end; i++ {
			sortUnit(img, unitStart(img, axis, i), step, scratch, cmp)
			s.unitDone()
		}
	})
}

// sortUnit extracts the unit beginning at first, sorts it and writes it
// back into the same positions.
func sortUnit(img *Image, first, step int, scratch []Pixel, cmp Comparator) {
	if len(scratch) < 2 {
		return
	}
	if step == 1 {
		slices.SortStableFunc(img.Pix[first:first+len(scratch)], cmp.Compare)
		return
	}
	for k := range scratch {
		scratch[k] = img.Pix[first+k*step]
	}
	slices.SortStableFunc(scratch, cmp.Compare)
	for k, p := range scratch {
		img.Pix[first+k*step] = p
	}
}
