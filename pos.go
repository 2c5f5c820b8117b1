package textmap

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "sort"

// NoSegment is returned by position queries when no segment qualifies.
const NoSegment = -1

// search returns the index of the first segment whose range end exceeds
// pos, or len(m) if there is none. All position queries refine this one
// binary search; they are O(log n) over the map length.
func (m Map) search(pos uint64) int {
	return sort.Search(len(m), func(i int) bool {
		return m[i].Range.R > pos
	})
}

// At returns the index of the segment containing pos, or NoSegment if
// pos falls into a gap (or past the end of the map).
func (m Map) At(pos uint64) int {
	i := m.search(pos)
	if i < len(m) && m[i].Range.L <= pos {
		return i
	}
	return NoSegment
}

// After returns the index of the first segment starting at or after pos.
// If pos lies strictly inside a segment, the index following that
// segment is returned. The result lies in [0, len(m)]; len(m) means no
// segment starts at or after pos.
func (m Map) After(pos uint64) int {
	i := m.search(pos)
	if i < len(m) && m[i].Range.L < pos {
		return i + 1
	}
	return i
}

// Before returns the index of the segment containing pos, unless pos
// sits exactly on that segment's start; in that case, and for gap
// positions, the index of the nearest preceding segment, clamped to 0.
func (m Map) Before(pos uint64) int {
	i := m.search(pos)
	if i < len(m) && m[i].Range.L < pos {
		return i
	}
	if i > 0 {
		return i - 1
	}
	return 0
}

// Nearest returns the index of the segment whose range is closest to
// pos, or NoSegment for an empty map. When pos falls into the gap
// between two segments, the left one wins while pos is before the
// arithmetic midpoint of the gap; midpoint ties resolve to the right
// segment.
func (m Map) Nearest(pos uint64) int {
	if len(m) == 0 {
		return NoSegment
	}
	i := m.search(pos)
	if i == len(m) {
		return len(m) - 1
	}
	if m[i].Range.L <= pos || i == 0 {
		return i
	}
	if 2*pos < m[i-1].Range.R+m[i].Range.L {
		return i - 1
	}
	return i
}
