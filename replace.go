package textmap

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "bytes"

// Replace substitutes the text of segment index with repl, but only if
// that segment is exact in the sense of Segment.IsExact. For a non-exact
// segment (or an index out of range) the call is a no-op and returns
// text unchanged; callers detect "not applicable" by output equality,
// not by an error.
func Replace(text string, m Map, index int, repl string) string {
	if index < 0 || index >= len(m) {
		return text
	}
	seg := m[index]
	if !seg.IsExact() || seg.Range.R > uint64(len(text)) {
		return text
	}
	return text[:seg.Range.L] + repl + text[seg.Range.R:]
}

// ReplaceAll applies the per-segment exactness rule across the whole
// map, choosing the replacement value by the segment's sole origin name.
// The result is assembled in a single left-to-right pass, so offset
// drift from earlier replacements never corrupts later ranges.
func ReplaceAll(text string, m Map, replacements map[string]string) string {
	if len(m) == 0 || len(replacements) == 0 {
		return text
	}
	var bf bytes.Buffer
	prev := uint64(0)
	for _, seg := range m {
		if seg.Range.L < prev || seg.Range.R > uint64(len(text)) {
			T().Errorf("text map: replace-all skips ill-ranged %v", seg)
			continue
		}
		bf.WriteString(text[prev:seg.Range.L])
		repl, ok := "", false
		if seg.IsExact() {
			repl, ok = replacements[seg.Origins[0].Name]
		}
		if ok {
			bf.WriteString(repl)
		} else {
			bf.WriteString(text[seg.Range.L:seg.Range.R])
		}
		prev = seg.Range.R
	}
	bf.WriteString(text[prev:])
	return bf.String()
}
