package zone

import (
	"fmt"
)

// progressRows is how many rows a search scans between progress reports.
const progressRows = 1 << 12

// Scanner answers coverage queries over a fixed set of regions.
// It never modifies the regions and is safe for concurrent use.
type Scanner struct {
	regions  []Region
	progress func(rows int64)
}

type Option func(*Scanner)

// WithProgress makes searches call f with the number of rows scanned so
// far. f may be called from several goroutines at once.
func WithProgress(f func(rows int64)) Option {
	return func(s *Scanner) { s.progress = f }
}

func NewScanner(regions []Region, opts ...Option) *Scanner {
	s := &Scanner{regions: append([]Region(nil), regions...)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scanner) report(rows int64) {
	if s.progress != nil {
		s.progress(rows)
	}
}

// rowBuf holds the scratch slices of one scanning goroutine.
type rowBuf struct {
	raw, merged []Interval
	gaps        RangeSet
}

func (s *Scanner) row(b *rowBuf, y int64) []Interval {
	b.raw = b.raw[:0]
	for _, r := range s.regions {
		b.raw = append(b.raw, r.RowInterval(y))
	}
	b.merged = mergeInto(b.merged, b.raw)
	return b.merged
}

// Row returns the merged coverage of row y.
func (s *Scanner) Row(y int64) []Interval {
	var b rowBuf
	return s.row(&b, y)
}

// CountRow returns the number of positions on row y that are covered by
// some region and are not one of the exclusions.
func (s *Scanner) CountRow(y int64, exclusions []Position) int64 {
	return countCovered(s.Row(y), y, exclusions)
}

// CountRowWithin is CountRow restricted to lo <= x <= hi.
func (s *Scanner) CountRowWithin(y int64, exclusions []Position, lo, hi int64) int64 {
	return countCovered(Clip(s.Row(y), lo, hi), y, exclusions)
}

func countCovered(merged []Interval, y int64, exclusions []Position) int64 {
	var n int64
	for _, iv := range merged {
		n += iv.Len()
	}

	seen := make(map[Position]struct{})
	for _, p := range exclusions {
		if p.Y != y {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		if Covered(merged, p.X) {
			n--
		}
	}
	return n
}

// FindGap returns the first position of [0,bound]x[0,bound], in row-major
// order, that no region covers. Covered spans are skipped whole, so the
// cost is proportional to rows times regions.
func (s *Scanner) FindGap(bound int64) (Position, error) {
	if bound < 0 {
		return Position{}, fmt.Errorf("bound %v: %w", bound, ErrInvalidArgument)
	}

	var b rowBuf
	for y := int64(0); y <= bound; y++ {
		if y%progressRows == 0 && y > 0 {
			s.report(y)
		}
		merged := Clip(s.row(&b, y), 0, bound)
		if x, ok := firstGap(merged, bound); ok {
			s.report(y + 1)
			return Position{x, y}, nil
		}
	}
	s.report(bound + 1)
	return Position{}, fmt.Errorf("bound %v: %w", bound, ErrNotFound)
}

// firstGap walks merged, which must lie within [0,bound], from x = 0.
func firstGap(merged []Interval, bound int64) (int64, bool) {
	var x int64
	for _, iv := range merged {
		if x < iv.Lo {
			return x, true
		}
		if iv.Hi >= x {
			x = iv.Hi + 1
		}
	}
	return x, x <= bound
}

// Gaps returns the positions of row y within [0,bound] that no region
// covers.
func (s *Scanner) Gaps(y, bound int64) RangeSet {
	var b rowBuf
	return append(RangeSet(nil), s.gaps(&b, y, bound)...)
}

func (s *Scanner) gaps(b *rowBuf, y, bound int64) RangeSet {
	b.gaps = b.gaps[:0]
	if bound < 0 {
		return b.gaps
	}
	b.gaps = append(b.gaps, Range{0, bound + 1})
	for _, iv := range s.row(b, y) {
		b.gaps.DeleteInterval(iv)
	}
	return b.gaps
}

// FindGapStrict is FindGap that scans the whole square and fails with
// ErrAmbiguous when more than one position is uncovered. The first gap
// found is still returned in that case.
func (s *Scanner) FindGapStrict(bound int64) (Position, error) {
	if bound < 0 {
		return Position{}, fmt.Errorf("bound %v: %w", bound, ErrInvalidArgument)
	}

	var (
		b     rowBuf
		first Position
		count int64
	)
	for y := int64(0); y <= bound; y++ {
		if y%progressRows == 0 && y > 0 {
			s.report(y)
		}
		gaps := s.gaps(&b, y, bound)
		n := gaps.Count()
		if n == 0 {
			continue
		}
		if count == 0 {
			first = Position{gaps[0].Low, y}
		}
		count += n
		if count > 1 {
			return first, fmt.Errorf("%v and another on row %v: %w", first, y, ErrAmbiguous)
		}
	}
	s.report(bound + 1)
	if count == 0 {
		return Position{}, fmt.Errorf("bound %v: %w", bound, ErrNotFound)
	}
	return first, nil
}
