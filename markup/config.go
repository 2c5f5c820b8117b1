package markup

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"regexp"
	"strings"

	"github.com/npillmayer/textmap"
)

// DefaultTag is the tag emitted for origins without a configured tag name.
const DefaultTag = "span"

// Placeholder is the token inside an attribute template which the
// renderer substitutes with the substring the origin's range covers.
const Placeholder = "$_&"

// Config maps origin names to their rendering configuration. Origins
// without an entry render as DefaultTag with just the class attribute.
type Config map[string]TagConfig

// TagConfig describes how a single origin name is turned into tags.
type TagConfig struct {
	Tag     string     // opening tag name; empty selects DefaultTag
	Closing string     // closing tag override; empty closes with Tag
	Void    bool       // suppress the closing tag entirely
	Attrs   []AttrSpec // additional attributes, emitted in order
}

func (cfg TagConfig) tagName() string {
	if cfg.Tag == "" {
		return DefaultTag
	}
	return cfg.Tag
}

// AttrSpec is a single attribute of an opening tag. Its value derives
// either from a template string (a literal constant, or one containing
// Placeholder), or from a sub-extraction pattern applied to the covered
// substring. The variant is fixed at construction.
type AttrSpec struct {
	Name     string
	template string
	extract  *regexp.Regexp
}

// Attr creates an attribute spec from a template string. A template
// without Placeholder acts as a literal constant.
func Attr(name, template string) AttrSpec {
	return AttrSpec{Name: name, template: template}
}

// Extract creates an attribute spec whose value is derived from the
// covered substring: the pattern's first capture group if it has one,
// the whole match otherwise. A non-matching pattern yields the empty
// string.
func Extract(name string, pattern *regexp.Regexp) AttrSpec {
	return AttrSpec{Name: name, extract: pattern}
}

func (a AttrSpec) value(covered string) string {
	if a.extract != nil {
		match := a.extract.FindStringSubmatch(covered)
		if match == nil {
			return ""
		}
		if len(match) > 1 {
			return match[1]
		}
		return match[0]
	}
	return strings.ReplaceAll(a.template, Placeholder, covered)
}

// TagContext is handed to a Hook for every emitted opening tag.
type TagContext struct {
	Segment textmap.Segment // the segment being rendered
	Depth   int             // index of the origin within the segment's origin list
	Index   int             // index of the segment within the map
}

// Hook is an optional pure function invoked once per emitted opening
// tag. The returned attributes are merged over the statically configured
// ones: known names are overridden, unknown names appended. The class
// attribute is owned by the renderer; a "class" key is ignored.
type Hook func(ctx TagContext) map[string]string
