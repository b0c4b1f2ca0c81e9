package zone

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync"
	"sync/atomic"
)

// FindGapContext is FindGap spread over workers goroutines, each scanning
// blocks of consecutive rows. It returns the same position FindGap would.
// A workers value of zero or less uses one goroutine per CPU.
func (s *Scanner) FindGapContext(ctx context.Context, bound int64, workers int) (Position, error) {
	if bound < 0 {
		return Position{}, fmt.Errorf("bound %v: %w", bound, ErrInvalidArgument)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		best     Position
		bestRow  = int64(math.MaxInt64)
		nextRow  int64
		scanned  int64
		claimRow = func() int64 { return atomic.AddInt64(&nextRow, progressRows) - progressRows }
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var b rowBuf
			for ctx.Err() == nil {
				low := claimRow()
				if low > bound || low > atomic.LoadInt64(&bestRow) {
					return
				}
				high := low + progressRows - 1
				if high > bound {
					high = bound
				}

				y := low
				for ; y <= high; y++ {
					merged := Clip(s.row(&b, y), 0, bound)
					if x, ok := firstGap(merged, bound); ok {
						mu.Lock()
						if y < bestRow {
							best = Position{x, y}
							atomic.StoreInt64(&bestRow, y)
						}
						mu.Unlock()
						y++
						break
					}
				}
				s.report(atomic.AddInt64(&scanned, y-low))
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return Position{}, err
	}
	if bestRow == math.MaxInt64 {
		return Position{}, fmt.Errorf("bound %v: %w", bound, ErrNotFound)
	}
	return best, nil
}
