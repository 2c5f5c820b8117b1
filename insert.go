package textmap

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "iter"

// Mode selects the insertion policy for overlapping markers.
type Mode int

const (
	// Segmented splits overlapping prior segments and stacks the new
	// origin onto the intersection. This is the default policy.
	Segmented Mode = iota
	// Overwrite discards prior segments overlapping the new range.
	Overwrite
)

// InsertRange merges a single marker range into the map. The range is
// normalized before merging; a void range leaves the map unchanged.
func (m Map) InsertRange(r Range, name string, mode Mode) Map {
	r = NewRange(r.L, r.R)
	if r.IsVoid() {
		return m
	}
	return m.insert(Origin{Name: name, Range: r, Sequence: 0}, mode)
}

// InsertMatches merges a lazy sequence of matches over text into the
// map, all under the same marker name. Matches must be ordered left to
// right and non-overlapping; this is the matcher's contract, not
// enforced here. Void or out-of-bounds-trimmed-to-void matches are
// skipped. Each merged match receives the next sequence number,
// starting at 0 for this call.
func (m Map) InsertMatches(text string, matches iter.Seq[Range], name string, mode Mode) Map {
	if matches == nil {
		return m
	}
	n := uint64(len(text))
	seq := 0
	for r := range matches {
		r = NewRange(r.L, r.R).clamped(n)
		if r.IsVoid() {
			continue
		}
		m = m.insert(Origin{Name: name, Range: r, Sequence: seq}, mode)
		seq++
	}
	return m
}

func (m Map) insert(org Origin, mode Mode) Map {
	T().Debugf("text map: insert %v (mode=%d)", org, mode)
	if mode == Overwrite {
		return m.overwrite(org)
	}
	return m.segmented(org)
}

// segmented merges org into the map, splitting every overlapped segment
// three ways: a left remainder belonging to whichever range starts
// first, a middle intersection carrying the existing origins plus org,
// and a right remainder. A right remainder of the new range is carried
// forward against subsequent segments; a final dangling fragment is
// appended once no further segments overlap. Zero-length fragments are
// dropped, never stored.
func (m Map) segmented(org Origin) Map {
	out := make(Map, 0, len(m)+2)
	i := 0
	for ; i < len(m) && m[i].Range.R <= org.Range.L; i++ {
		out = append(out, m[i])
	}
	frag := org.Range
	for ; i < len(m) && !frag.IsVoid() && m[i].Range.L < frag.R; i++ {
		seg := m[i]
		if frag.L < seg.Range.L {
			// new range starts first, left remainder carries only org
			out = append(out, Segment{
				Range:   Range{L: frag.L, R: seg.Range.L},
				Origins: []Origin{org},
			})
			frag.L = seg.Range.L
		} else if seg.Range.L < frag.L {
			// existing segment starts first, left remainder keeps its origins
			out = append(out, Segment{
				Range:   Range{L: seg.Range.L, R: frag.L},
				Origins: seg.Origins,
			})
		}
		mid := Range{L: frag.L, R: min(seg.Range.R, frag.R)}
		stacked := make([]Origin, 0, len(seg.Origins)+1)
		stacked = append(stacked, seg.Origins...)
		stacked = append(stacked, org)
		out = append(out, Segment{Range: mid, Origins: stacked})
		if seg.Range.R > frag.R {
			// existing segment extends past the new range
			out = append(out, Segment{
				Range:   Range{L: frag.R, R: seg.Range.R},
				Origins: seg.Origins,
			})
			frag.L = frag.R
		} else {
			frag.L = seg.Range.R
		}
	}
	if !frag.IsVoid() {
		out = append(out, Segment{Range: frag, Origins: []Origin{org}})
	}
	out = append(out, m[i:]...)
	return out
}

// overwrite inserts org as-is and discards every prior segment whose
// range ends inside the new range. A segment overlapping the trailing
// edge, i.e. extending past the new range, is truncated to its
// uncovered tail and retained.
func (m Map) overwrite(org Origin) Map {
	out := make(Map, 0, len(m)+2)
	i := 0
	for ; i < len(m) && m[i].Range.R <= org.Range.L; i++ {
		out = append(out, m[i])
	}
	for ; i < len(m) && m[i].Range.R <= org.Range.R; i++ {
		T().Debugf("text map: overwrite discards %v", m[i])
	}
	out = append(out, Segment{Range: org.Range, Origins: []Origin{org}})
	if i < len(m) && m[i].Range.L < org.Range.R {
		out = append(out, Segment{
			Range:   Range{L: org.Range.R, R: m[i].Range.R},
			Origins: m[i].Origins,
		})
		i++
	}
	out = append(out, m[i:]...)
	return out
}
