package pixelsort

// Comparator orders pixels by ascending brightness. A non-zero Threshold
// gates the ordering: pixels darker than Threshold sort after every pixel
// that reaches it and are not reordered among themselves.
type Comparator struct {
	Threshold int
}

// Plain orders by brightness alone.
var Plain = Comparator{}

func (c Comparator) qualifies(p Pixel) bool {
	return p.Brightness() >= c.Threshold
}

// Less reports whether a sorts before b.
func (c Comparator) Less(a, b Pixel) bool {
	qa, qb := c.qualifies(a), c.qualifies(b)
	switch {
	case !qa:
		return false
	case !qb:
		return true
	default:
		return a.Brightness() < b.Brightness()
	}
}

// Compare is the three-way form of Less, for slices.SortStableFunc.
func (c Comparator) Compare(a, b Pixel) int {
	switch {
	case c.Less(a, b):
		return -1
	case c.Less(b, a):
		return 1
	default:
		return 0
	}
}
