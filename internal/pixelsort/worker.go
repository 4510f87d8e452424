package pixelsort

import (
	"runtime"

	"github.com/remeh/sizedwaitgroup"
)

// batchesPerWorker controls how finely units are split across workers.
const batchesPerWorker = 4

// Sorter runs reordering operations over an Image using a bounded number
// of goroutines.
type Sorter struct {
	// Workers caps the number of concurrent goroutines. Values below one
	// use runtime.NumCPU.
	Workers int

	// OnUnit, when set, is called once per finished traversal unit. It is
	// called from several goroutines.
	OnUnit func()
}

// NewSorter returns a Sorter using the given number of workers.
func NewSorter(workers int) *Sorter {
	return &Sorter{Workers: workers}
}

func (s *Sorter) workers() int {
	if s == nil || s.Workers < 1 {
		return runtime.NumCPU()
	}
	return s.Workers
}

func (s *Sorter) unitDone() {
	if s != nil && s.OnUnit != nil {
		s.OnUnit()
	}
}

// parallelRange splits [0, n) into contiguous batches and runs fn on each
// batch. Batches never overlap, so fn may write to the positions its
// indices own without synchronization.
func (s *Sorter) parallelRange(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := s.workers()
	if workers == 1 || n == 1 {
		fn(0, n)
		return
	}

	batch := (n + workers*batchesPerWorker - 1) / (workers * batchesPerWorker)
	swg := sizedwaitgroup.New(workers)
	for start := 0; start < n; start += batch {
		end := min(start+batch, n)
		swg.Add()
		go func(start, end int) {
			defer swg.Done()
			fn(start, end)
		}(start, end)
	}
	swg.Wait()
}
