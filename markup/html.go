package markup

import (
	"io"
	"strings"

	"github.com/npillmayer/textmap"
	"golang.org/x/net/html"
)

// FromHTML builds a plain text plus its overlay map from the textual
// content of an inline HTML fragment. Every element becomes a marker
// named after its tag, covering the text of all its descendants;
// parents are inserted before children and therefore stay outermost.
// Rendering the resulting map reproduces an equivalent fragment.
//
// The fragment should reflect the content of a paragraph-like element;
// document scaffolding (html, head, body) contributes no markers.
func FromHTML(input io.Reader) (string, textmap.Map, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return "", nil, err
	}
	c := collector{}
	for _, n := range nodes {
		c.collect(n)
	}
	var m textmap.Map
	for _, sp := range c.spans {
		tracer().Debugf("markup: html fragment contributes <%s> over %s", sp.name, sp.r)
		m = m.InsertRange(sp.r, sp.name, textmap.Segmented)
	}
	return c.text.String(), m, nil
}

type htmlSpan struct {
	name string
	r    textmap.Range
}

type collector struct {
	text  strings.Builder
	spans []htmlSpan
}

// collect walks the node tree in document order, appending text content
// and recording one span per element.
func (c *collector) collect(n *html.Node) {
	at := -1
	if n.Type == html.ElementNode && !isScaffolding(n.Data) {
		tracer().Debugf("markup: collect text of <%s>", n.Data)
		at = len(c.spans)
		c.spans = append(c.spans, htmlSpan{name: n.Data})
		c.spans[at].r.L = uint64(c.text.Len())
	} else if n.Type == html.TextNode {
		c.text.WriteString(n.Data)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.collect(child)
	}
	if at >= 0 {
		c.spans[at].r.R = uint64(c.text.Len())
	}
}

func isScaffolding(name string) bool {
	switch name {
	case "html", "head", "body":
		return true
	}
	return false
}
