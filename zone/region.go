package zone

// Region is the set of positions within Radius of Anchor.
// Landmark is the position Radius was measured to; it lies on the region's
// boundary and takes no part in the geometry.
type Region struct {
	Anchor   Position
	Landmark Position
	Radius   int64
}

func NewRegion(anchor, landmark Position) Region {
	return Region{
		Anchor:   anchor,
		Landmark: landmark,
		Radius:   anchor.Distance(landmark),
	}
}

// RowInterval returns the span of x covered on row y, or an empty interval
// if the region does not reach that row.
func (r Region) RowInterval(y int64) Interval {
	slack := r.Radius - abs(y-r.Anchor.Y)
	if slack < 0 {
		return Empty
	}
	return Interval{r.Anchor.X - slack, r.Anchor.X + slack}
}

func (r Region) Contains(p Position) bool {
	return r.Anchor.Distance(p) <= r.Radius
}
