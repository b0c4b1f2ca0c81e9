// Package zone computes coverage of diamond-shaped (Manhattan distance)
// sensor regions: how much of a row they cover, and which single position
// inside a bounded square none of them reaches.
package zone

import "fmt"

type Position struct {
	X, Y int64
}

// Distance returns the Manhattan distance between p and q.
func (p Position) Distance(q Position) int64 {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func (p Position) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
