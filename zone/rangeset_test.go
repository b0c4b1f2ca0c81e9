package zone

import (
	"fmt"
	"testing"
)

func TestRangeSet(t *testing.T) {
	var s RangeSet

	expect := func(title, expected string) {
		t.Helper()
		if got := fmt.Sprint(s); got != expected {
			t.Fatalf("%v: got %v, want %v", title, got, expected)
		}
	}

	s.AddRange(0, 0)
	expect("case 1", "[]")
	s.Add(1)
	expect("case 2", "[{1 2}]")
	s.Add(0)
	expect("case 3", "[{0 2}]")
	s.Add(2)
	expect("case 4", "[{0 3}]")
	s.AddRange(4, 7)
	expect("case 5", "[{0 3} {4 7}]")
	s.DeleteRange(10, 20)
	expect("case 6", "[{0 3} {4 7}]")
	s.DeleteInterval(Interval{1, 1})
	expect("case 7", "[{0 1} {2 3} {4 7}]")
	s.DeleteInterval(Empty)
	expect("case 8", "[{0 1} {2 3} {4 7}]")
	s.Add(1)
	expect("case 9", "[{0 3} {4 7}]")
	if n := s.Count(); n != 6 {
		t.Fatalf("Count() = %v, want 6", n)
	}
	s.DeleteInterval(Interval{1, 5})
	expect("case 10", "[{0 1} {6 7}]")
	s.DeleteInterval(Interval{-5, 10})
	expect("case 11", "[]")
}
