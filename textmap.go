package textmap

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"strings"
)

// Range is a half-open byte interval [L,R) into a text.
//
// The zero Range is a valid object and behaves like the empty interval
// at position 0.
type Range struct {
	L, R uint64
}

// NewRange creates a range from two byte offsets. Directional input with
// from > to is normalized by swapping the offsets.
func NewRange(from, to uint64) Range {
	if from > to {
		from, to = to, from
	}
	return Range{L: from, R: to}
}

// Len returns the length of the range in bytes.
func (r Range) Len() uint64 {
	if r.IsVoid() {
		return 0
	}
	return r.R - r.L
}

// IsVoid reports whether the range covers no bytes.
func (r Range) IsVoid() bool {
	return r.R <= r.L
}

// Contains reports whether pos lies inside the half-open interval.
func (r Range) Contains(pos uint64) bool {
	return r.L <= pos && pos < r.R
}

// Overlaps reports whether two ranges share at least one byte.
func (r Range) Overlaps(other Range) bool {
	return r.L < other.R && other.L < r.R
}

// clamped restricts a range to the bounds of a text of length n.
func (r Range) clamped(n uint64) Range {
	if r.L > n {
		r.L = n
	}
	if r.R > n {
		r.R = n
	}
	return r
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.L, r.R)
}

// --- Origins ---------------------------------------------------------------

// Origin is one marker's contribution to a segment: the marker's name
// (its rendering class), the original extent the marker was added with,
// and a sequence number distinguishing multiple matches added under the
// same name within a single insertion call.
//
// Origins are plain comparable values. Two adjacent segments carrying an
// identical origin at the same depth represent one continuous logical
// span and will be rendered as a single unbroken tag.
type Origin struct {
	Name     string
	Range    Range
	Sequence int
}

func (o Origin) String() string {
	return fmt.Sprintf("%s#%d%s", o.Name, o.Sequence, o.Range)
}

// --- Segments --------------------------------------------------------------

// Segment is a maximal sub-range of a text with a constant, ordered set
// of overlapping origins. Origins are ordered outermost to innermost,
// i.e. in the order their markers were inserted.
type Segment struct {
	Range   Range
	Origins []Origin
}

// IsExact reports whether the segment was never split by an overlapping
// marker: it carries a single origin whose range equals the segment's
// own range.
func (seg Segment) IsExact() bool {
	return len(seg.Origins) == 1 && seg.Origins[0].Range == seg.Range
}

func (seg Segment) String() string {
	var bf strings.Builder
	bf.WriteString(seg.Range.String())
	bf.WriteByte('[')
	for i, o := range seg.Origins {
		if i > 0 {
			bf.WriteByte(' ')
		}
		bf.WriteString(o.String())
	}
	bf.WriteByte(']')
	return bf.String()
}

// CommonDepth returns the length of the common leading prefix of two
// origin lists. It determines how many tags stay open across the
// boundary between two adjacent segments.
func CommonDepth(a, b []Origin) int {
	d := 0
	for d < len(a) && d < len(b) && a[d] == b[d] {
		d++
	}
	return d
}

// --- Maps ------------------------------------------------------------------

// Map is an ordered partition of a text into non-overlapping segments.
// Gaps between segments denote unstyled text and are not represented
// explicitly. The nil map is a valid object and behaves like a partition
// with no segments.
//
// Maps are immutable: insertions return a new map and leave the receiver
// untouched.
type Map []Segment

// Check verifies the map invariant: segment ranges are non-void,
// strictly ascending and pairwise non-overlapping.
func (m Map) Check() error {
	for i, seg := range m {
		if seg.Range.IsVoid() {
			return ErrMapOrder
		}
		if i > 0 && m[i-1].Range.R > seg.Range.L {
			return ErrMapOrder
		}
	}
	return nil
}

// Covered returns the total number of bytes covered by the map's
// segments.
func (m Map) Covered() uint64 {
	var n uint64
	for _, seg := range m {
		n += seg.Range.Len()
	}
	return n
}

func (m Map) String() string {
	var bf strings.Builder
	bf.WriteByte('{')
	for i, seg := range m {
		if i > 0 {
			bf.WriteByte(' ')
		}
		bf.WriteString(seg.String())
	}
	bf.WriteByte('}')
	return bf.String()
}
