package zone

import (
	"math"
	"sort"
)

// Interval is the closed range [Lo, Hi]. Lo > Hi means empty.
type Interval struct {
	Lo, Hi int64
}

var Empty = Interval{1, 0}

func (iv Interval) IsEmpty() bool {
	return iv.Lo > iv.Hi
}

// Len returns the number of integers in iv.
func (iv Interval) Len() int64 {
	if iv.IsEmpty() {
		return 0
	}
	return iv.Hi - iv.Lo + 1
}

// Merge returns the union of intervals as a sorted sequence of disjoint,
// non-adjacent intervals. The argument is left untouched.
func Merge(intervals []Interval) []Interval {
	buf := make([]Interval, 0, len(intervals))
	return mergeInto(buf, intervals)
}

// mergeInto is Merge writing into buf[:0], so callers scanning many rows
// can reuse one buffer.
func mergeInto(buf, intervals []Interval) []Interval {
	buf = buf[:0]
	for _, iv := range intervals {
		if !iv.IsEmpty() {
			buf = append(buf, iv)
		}
	}
	if len(buf) == 0 {
		return buf
	}

	sort.Slice(buf, func(i, j int) bool {
		if buf[i].Lo != buf[j].Lo {
			return buf[i].Lo < buf[j].Lo
		}
		return buf[i].Hi < buf[j].Hi
	})

	n := 0
	for _, iv := range buf[1:] {
		cur := &buf[n]
		if cur.Hi == math.MaxInt64 || iv.Lo <= cur.Hi+1 {
			if iv.Hi > cur.Hi {
				cur.Hi = iv.Hi
			}
			continue
		}
		n++
		buf[n] = iv
	}
	return buf[:n+1]
}

// Covered reports whether x lies in one of the merged intervals.
func Covered(merged []Interval, x int64) bool {
	i := sort.Search(len(merged), func(i int) bool { return merged[i].Hi >= x })
	return i < len(merged) && merged[i].Lo <= x
}

// Clip restricts merged to [lo, hi], in place.
func Clip(merged []Interval, lo, hi int64) []Interval {
	n := 0
	for _, iv := range merged {
		if iv.Lo < lo {
			iv.Lo = lo
		}
		if iv.Hi > hi {
			iv.Hi = hi
		}
		if !iv.IsEmpty() {
			merged[n] = iv
			n++
		}
	}
	return merged[:n]
}
