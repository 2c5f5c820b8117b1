package markup

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"bytes"
	"sort"
	"strings"

	"github.com/npillmayer/textmap"
)

// Text nodes escape the three characters significant to tag markup.
// '&' is rewritten before '>' and '<'; the entities just produced must
// not be escaped again. strings.Replacer scans the input once, which
// honors that order.
var textEscaper = strings.NewReplacer("&", "&amp;", ">", "&gt;", "<", "&lt;")

// Attribute values additionally escape the quote delimiter.
var attrEscaper = strings.NewReplacer("&", "&amp;", ">", "&gt;", "<", "&lt;", `"`, "&quot;")

// Render produces the nested markup for text under map m. config may be
// nil, as may hook. Rendering does not mutate its inputs; rendering the
// same map twice produces identical output.
func Render(text string, m textmap.Map, config Config, hook Hook) string {
	tracer().Debugf("markup: render %d segments over %d bytes", len(m), len(text))
	var out bytes.Buffer
	for i, seg := range m {
		gap := uint64(0)
		if i > 0 {
			gap = m[i-1].Range.R
		}
		out.WriteString(textEscaper.Replace(slice(text, textmap.Range{L: gap, R: seg.Range.L})))
		openDepth := 0
		if i > 0 {
			openDepth = textmap.CommonDepth(m[i-1].Origins, seg.Origins)
		}
		for d := openDepth; d < len(seg.Origins); d++ {
			org := seg.Origins[d]
			cfg := config[org.Name]
			class := classValue(seg, org)
			if endsAt(m, i, d) {
				class += " R"
			}
			writeOpenTag(&out, cfg, class, tagAttrs(text, m, i, d, cfg, hook))
		}
		out.WriteString(textEscaper.Replace(slice(text, seg.Range)))
		closeDepth := 0
		if i+1 < len(m) {
			closeDepth = textmap.CommonDepth(seg.Origins, m[i+1].Origins)
		}
		for d := len(seg.Origins) - 1; d >= closeDepth; d-- {
			out.WriteString(closeTag(config[seg.Origins[d].Name]))
		}
	}
	tail := uint64(0)
	if len(m) > 0 {
		tail = m[len(m)-1].Range.R
	}
	out.WriteString(textEscaper.Replace(slice(text, textmap.Range{L: tail, R: uint64(len(text))})))
	return out.String()
}

// classValue builds the class attribute for an opening tag: the origin's
// name, plus the "L" marker when the origin's own extent starts exactly
// at the current segment.
func classValue(seg textmap.Segment, org textmap.Origin) string {
	class := org.Name
	if org.Range.L == seg.Range.L {
		class += " L"
	}
	return class
}

// endsAt reports whether the tag opened at segment i, origin depth d
// reaches the origin's true right boundary. The tag stays open while
// adjacent segments share the origin-list prefix down to depth d; the
// last such segment carries the boundary when its end equals the
// origin's end.
func endsAt(m textmap.Map, i, d int) bool {
	j := i
	for j+1 < len(m) && textmap.CommonDepth(m[j].Origins, m[j+1].Origins) > d {
		j++
	}
	return m[j].Range.R == m[i].Origins[d].Range.R
}

// --- Tag assembly ----------------------------------------------------------

type attribute struct {
	name  string
	value string
}

// tagAttrs evaluates the configured attribute specs against the
// substring covered by the origin's full extent, then merges the hook's
// overrides.
func tagAttrs(text string, m textmap.Map, i, d int, cfg TagConfig, hook Hook) []attribute {
	seg := m[i]
	org := seg.Origins[d]
	var attrs []attribute
	if len(cfg.Attrs) > 0 {
		covered := slice(text, org.Range)
		attrs = make([]attribute, 0, len(cfg.Attrs))
		for _, spec := range cfg.Attrs {
			attrs = append(attrs, attribute{name: spec.Name, value: spec.value(covered)})
		}
	}
	if hook == nil {
		return attrs
	}
	over := hook(TagContext{Segment: seg, Depth: d, Index: i})
	if len(over) == 0 {
		return attrs
	}
	keys := make([]string, 0, len(over))
	for k := range over {
		if k == "class" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		replaced := false
		for idx := range attrs {
			if attrs[idx].name == k {
				attrs[idx].value = over[k]
				replaced = true
				break
			}
		}
		if !replaced {
			attrs = append(attrs, attribute{name: k, value: over[k]})
		}
	}
	return attrs
}

func writeOpenTag(out *bytes.Buffer, cfg TagConfig, class string, attrs []attribute) {
	out.WriteByte('<')
	out.WriteString(cfg.tagName())
	out.WriteString(` class="`)
	out.WriteString(attrEscaper.Replace(class))
	out.WriteByte('"')
	out.WriteString(attrString(attrs))
	out.WriteByte('>')
}

func attrString(attrs []attribute) string {
	if len(attrs) == 0 {
		return ""
	}
	var bf strings.Builder
	for _, a := range attrs {
		bf.WriteByte(' ')
		bf.WriteString(a.name)
		bf.WriteString(`="`)
		bf.WriteString(attrEscaper.Replace(a.value))
		bf.WriteByte('"')
	}
	return bf.String()
}

func closeTag(cfg TagConfig) string {
	if cfg.Void {
		return ""
	}
	name := cfg.Closing
	if name == "" {
		name = cfg.tagName()
	}
	return "</" + name + ">"
}

// slice cuts r out of text, restricted to the text's bounds.
func slice(text string, r textmap.Range) string {
	n := uint64(len(text))
	if r.L > n {
		r.L = n
	}
	if r.R > n {
		r.R = n
	}
	if r.R < r.L {
		r.R = r.L
	}
	return text[r.L:r.R]
}

// --- Patching renderer -----------------------------------------------------

// renderPatching is the fragment-buffer formulation of Render: output is
// assembled from discrete fragments, each opening tag's class value is
// its own fragment, and the "R" marker is patched into the recorded
// fragment once a segment ends at the origin's right boundary. Kept as a
// cross-check; the test suite asserts byte equality with Render.
func renderPatching(text string, m textmap.Map, config Config, hook Hook) string {
	frags := make([]string, 0, len(m)*6)
	classAt := make(map[string]int) // origin name -> index of the last class-value fragment
	for i, seg := range m {
		gap := uint64(0)
		if i > 0 {
			gap = m[i-1].Range.R
		}
		frags = append(frags, textEscaper.Replace(slice(text, textmap.Range{L: gap, R: seg.Range.L})))
		openDepth := 0
		if i > 0 {
			openDepth = textmap.CommonDepth(m[i-1].Origins, seg.Origins)
		}
		for d := openDepth; d < len(seg.Origins); d++ {
			org := seg.Origins[d]
			cfg := config[org.Name]
			frags = append(frags, "<"+cfg.tagName()+` class="`)
			classAt[org.Name] = len(frags)
			frags = append(frags, attrEscaper.Replace(classValue(seg, org)))
			frags = append(frags, `"`+attrString(tagAttrs(text, m, i, d, cfg, hook))+">")
		}
		frags = append(frags, textEscaper.Replace(slice(text, seg.Range)))
		closeDepth := 0
		if i+1 < len(m) {
			closeDepth = textmap.CommonDepth(seg.Origins, m[i+1].Origins)
		}
		for d := len(seg.Origins) - 1; d >= closeDepth; d-- {
			frags = append(frags, closeTag(config[seg.Origins[d].Name]))
		}
		// the right boundary of an origin becomes known at the segment
		// which ends exactly at the origin's extent
		for _, org := range seg.Origins {
			if org.Range.R == seg.Range.R {
				if at, ok := classAt[org.Name]; ok {
					frags[at] += " R"
				}
			}
		}
	}
	tail := uint64(0)
	if len(m) > 0 {
		tail = m[len(m)-1].Range.R
	}
	frags = append(frags, textEscaper.Replace(slice(text, textmap.Range{L: tail, R: uint64(len(text))})))
	return strings.Join(frags, "")
}
