package textmap

import "testing"

// fixture: three segments with gaps [0,2), [4,6) and [10,14)
func posFixture() Map {
	var m Map
	m = m.InsertRange(Range{2, 4}, "a", Segmented)
	m = m.InsertRange(Range{6, 10}, "b", Segmented)
	m = m.InsertRange(Range{14, 16}, "c", Segmented)
	return m
}

func TestPosAt(t *testing.T) {
	m := posFixture()
	cases := []struct {
		pos  uint64
		want int
	}{
		{0, NoSegment}, {2, 0}, {3, 0}, {4, NoSegment}, {6, 1},
		{9, 1}, {10, NoSegment}, {15, 2}, {16, NoSegment}, {100, NoSegment},
	}
	for _, c := range cases {
		if got := m.At(c.pos); got != c.want {
			t.Errorf("At(%d): expected %d, got %d", c.pos, c.want, got)
		}
	}
}

func TestPosAfter(t *testing.T) {
	m := posFixture()
	cases := []struct {
		pos  uint64
		want int
	}{
		{0, 0}, {2, 0}, {3, 1}, {4, 1}, {6, 1}, {7, 2},
		{10, 2}, {14, 2}, {15, 3}, {16, 3}, {100, 3},
	}
	for _, c := range cases {
		if got := m.After(c.pos); got != c.want {
			t.Errorf("After(%d): expected %d, got %d", c.pos, c.want, got)
		}
	}
}

func TestPosBefore(t *testing.T) {
	m := posFixture()
	cases := []struct {
		pos  uint64
		want int
	}{
		{0, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0},
		{6, 0}, {7, 1}, {12, 1}, {14, 1}, {15, 2}, {100, 2},
	}
	for _, c := range cases {
		if got := m.Before(c.pos); got != c.want {
			t.Errorf("Before(%d): expected %d, got %d", c.pos, c.want, got)
		}
	}
}

func TestPosNearest(t *testing.T) {
	var empty Map
	if got := empty.Nearest(3); got != NoSegment {
		t.Errorf("Nearest on empty map: expected NoSegment, got %d", got)
	}
	m := posFixture()
	cases := []struct {
		pos  uint64
		want int
	}{
		{0, 0},  // before the first segment
		{3, 0},  // inside
		{4, 0},  // gap [4,6), midpoint 5, left of it
		{5, 1},  // midpoint tie resolves right
		{11, 1}, // gap [10,14), midpoint 12
		{12, 2}, // midpoint tie resolves right
		{13, 2},
		{100, 2}, // past the last segment
	}
	for _, c := range cases {
		if got := m.Nearest(c.pos); got != c.want {
			t.Errorf("Nearest(%d): expected %d, got %d", c.pos, c.want, got)
		}
	}
}
