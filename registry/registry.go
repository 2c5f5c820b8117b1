package registry

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"
	"regexp"

	"github.com/npillmayer/textmap"
	"github.com/npillmayer/textmap/markup"
)

// Matcher produces the match ranges of one marker over a text.
//
// Matches must behave like a global pattern search: ordered left to
// right, non-overlapping, exhaustive. A matcher returning nil renders
// its entry a no-op for that text; the contract itself is not enforced.
type Matcher interface {
	Matches(text string) iter.Seq[textmap.Range]
}

// entry is a tagged variant over {matcher, explicit range}, resolved
// once at registration.
type entry struct {
	name    string
	matcher Matcher        // set for pattern entries
	rng     *textmap.Range // set for explicit-range entries
	mode    textmap.Mode
	config  markup.TagConfig
}

// Registry is an ordered collection of marker entries. The zero value
// is an empty registry ready for use.
type Registry struct {
	entries []entry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// AddPattern compiles expr and registers it under name. A pattern that
// fails to compile is rejected and the registry is left unchanged; other
// entries are unaffected.
func (rg *Registry) AddPattern(name, expr string, mode textmap.Mode, config markup.TagConfig) error {
	re, err := regexp.Compile(expr)
	if err != nil {
		tracer().Errorf("registry: rejecting pattern %s: %v", name, err)
		return err
	}
	rg.entries = append(rg.entries, entry{
		name:    name,
		matcher: regexpMatcher{re: re},
		mode:    mode,
		config:  config,
	})
	return nil
}

// AddMatcher registers a custom matcher under name.
func (rg *Registry) AddMatcher(name string, m Matcher, mode textmap.Mode, config markup.TagConfig) {
	rg.entries = append(rg.entries, entry{name: name, matcher: m, mode: mode, config: config})
}

// AddRange registers an explicit range under name.
func (rg *Registry) AddRange(name string, r textmap.Range, mode textmap.Mode, config markup.TagConfig) {
	rg.entries = append(rg.entries, entry{name: name, rng: &r, mode: mode, config: config})
}

// Len returns the number of registered entries.
func (rg *Registry) Len() int {
	return len(rg.entries)
}

// Apply folds all entries into a fresh map over text, in registration
// order.
func (rg *Registry) Apply(text string) textmap.Map {
	var m textmap.Map
	for _, e := range rg.entries {
		if e.rng != nil {
			m = m.InsertRange(*e.rng, e.name, e.mode)
			continue
		}
		matches := e.matcher.Matches(text)
		if matches == nil {
			tracer().Infof("registry: matcher %s yields no match sequence, skipped", e.name)
			continue
		}
		m = m.InsertMatches(text, matches, e.name, e.mode)
	}
	return m
}

// Config collects the rendering configuration of all entries, keyed by
// marker name. With duplicate names the last registration wins.
func (rg *Registry) Config() markup.Config {
	config := make(markup.Config, len(rg.entries))
	for _, e := range rg.entries {
		config[e.name] = e.config
	}
	return config
}

// Markup builds the map for text and renders it in one step. hook may
// be nil.
func (rg *Registry) Markup(text string, hook markup.Hook) string {
	return markup.Render(text, rg.Apply(text), rg.Config(), hook)
}

// --- Regexp matcher --------------------------------------------------------

type regexpMatcher struct {
	re *regexp.Regexp
}

// Matches yields the pattern's matches lazily, left to right. The
// regexp package's find-all semantics guarantee ordered, non-overlapping
// matches.
func (rm regexpMatcher) Matches(text string) iter.Seq[textmap.Range] {
	return func(yield func(textmap.Range) bool) {
		for _, loc := range rm.re.FindAllStringIndex(text, -1) {
			if !yield(textmap.Range{L: uint64(loc[0]), R: uint64(loc[1])}) {
				return
			}
		}
	}
}
