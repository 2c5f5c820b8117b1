package registry

import (
	"bufio"
	"iter"
	"strings"

	"github.com/npillmayer/textmap"
	"github.com/npillmayer/uax/segment"
)

// WordsMatcher matches every whitespace-delimited word of a text.
// Segments consisting solely of whitespace are not reported.
type WordsMatcher struct{}

// Words creates a matcher for word boundaries.
func Words() WordsMatcher {
	return WordsMatcher{}
}

// Matches yields one range per word, left to right.
func (WordsMatcher) Matches(text string) iter.Seq[textmap.Range] {
	return func(yield func(textmap.Range) bool) {
		segmenter := segment.NewSegmenter() // defaults to breaking on whitespace
		segmenter.Init(bufio.NewReader(strings.NewReader(text)))
		pos := uint64(0)
		for segmenter.Next() {
			frag := segmenter.Bytes()
			l := pos
			pos += uint64(len(frag))
			if strings.TrimSpace(string(frag)) == "" {
				continue
			}
			if !yield(textmap.Range{L: l, R: pos}) {
				return
			}
		}
	}
}

var _ Matcher = WordsMatcher{}
