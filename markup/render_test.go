package markup

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textmap"
	"golang.org/x/net/html"
)

func TestRenderNoOverlap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textmap")
	defer teardown()
	//
	text := "ab cd"
	var m textmap.Map
	m = m.InsertRange(textmap.Range{L: 0, R: 2}, "X", textmap.Segmented)
	m = m.InsertRange(textmap.Range{L: 3, R: 5}, "Y", textmap.Segmented)
	out := Render(text, m, nil, nil)
	t.Logf("out = %s", out)
	want := `<span class="X L R">ab</span> <span class="Y L R">cd</span>`
	if out != want {
		t.Errorf("expected %s, got %s", want, out)
	}
}

func TestRenderOverlapNesting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textmap")
	defer teardown()
	//
	text := "0123456789"
	var m textmap.Map
	m = m.InsertRange(textmap.Range{L: 0, R: 10}, "A", textmap.Segmented)
	m = m.InsertRange(textmap.Range{L: 3, R: 6}, "B", textmap.Segmented)
	out := Render(text, m, nil, nil)
	t.Logf("out = %s", out)
	want := `<span class="A L R">012<span class="B L R">345</span>6789</span>`
	if out != want {
		t.Errorf("expected %s, got %s", want, out)
	}
	// A's tag must not be reopened after B closes
	if strings.Count(out, `class="A`) != 1 {
		t.Errorf("expected a single A tag, got %s", out)
	}
}

func TestRenderWholeDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textmap")
	defer teardown()
	//
	text := "a<b&c"
	var m textmap.Map
	m = m.InsertRange(textmap.Range{L: 0, R: uint64(len(text))}, "doc", textmap.Segmented)
	out := Render(text, m, nil, nil)
	want := `<span class="doc L R">a&lt;b&amp;c</span>`
	if out != want {
		t.Errorf("expected %s, got %s", want, out)
	}
}

func TestRenderEscapesGapAndTail(t *testing.T) {
	text := "x&y<z>"
	var m textmap.Map
	m = m.InsertRange(textmap.Range{L: 2, R: 3}, "y", textmap.Segmented)
	out := Render(text, m, nil, nil)
	want := `x&amp;<span class="y L R">y</span>&lt;z&gt;`
	if out != want {
		t.Errorf("expected %s, got %s", want, out)
	}
}

func TestRenderIdempotent(t *testing.T) {
	text := "0123456789"
	var m textmap.Map
	m = m.InsertRange(textmap.Range{L: 0, R: 10}, "A", textmap.Segmented)
	m = m.InsertRange(textmap.Range{L: 3, R: 6}, "B", textmap.Segmented)
	first := Render(text, m, nil, nil)
	second := Render(text, m, nil, nil)
	if first != second {
		t.Errorf("render is not idempotent:\n%s\n%s", first, second)
	}
}

func TestRenderVoidAndClosingOverride(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textmap")
	defer teardown()
	//
	text := "ab"
	var m textmap.Map
	m = m.InsertRange(textmap.Range{L: 0, R: 1}, "b", textmap.Segmented)
	config := Config{"b": {Tag: "br", Void: true}}
	out := Render(text, m, config, nil)
	if out != `<br class="b L R">ab` {
		t.Errorf("expected void tag without closing, got %s", out)
	}
	config = Config{"b": {Tag: "q", Closing: "quote"}}
	out = Render(text, m, config, nil)
	if out != `<q class="b L R">a</quote>b` {
		t.Errorf("expected overridden closing tag, got %s", out)
	}
}

func TestRenderAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textmap")
	defer teardown()
	//
	text := "item42"
	var m textmap.Map
	m = m.InsertRange(textmap.Range{L: 0, R: 6}, "i", textmap.Segmented)
	config := Config{"i": {
		Attrs: []AttrSpec{
			Attr("title", "match: "+Placeholder),
			Attr("data-kind", "word"),
			Extract("data-num", regexp.MustCompile(`[0-9]+`)),
		},
	}}
	out := Render(text, m, config, nil)
	t.Logf("out = %s", out)
	want := `<span class="i L R" title="match: item42" data-kind="word" data-num="42">item42</span>`
	if out != want {
		t.Errorf("expected %s, got %s", want, out)
	}
}

func TestRenderAttributeCoversOriginExtent(t *testing.T) {
	// a trimmed segment still exposes the origin's full substring
	text := "0123456789"
	var m textmap.Map
	m = m.InsertRange(textmap.Range{L: 0, R: 10}, "A", textmap.Segmented)
	m = m.InsertRange(textmap.Range{L: 3, R: 6}, "B", textmap.Segmented)
	config := Config{"A": {Attrs: []AttrSpec{Attr("data-text", Placeholder)}}}
	out := Render(text, m, config, nil)
	if !strings.Contains(out, `data-text="0123456789"`) {
		t.Errorf("expected A's attribute to cover its full extent, got %s", out)
	}
}

func TestRenderHook(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textmap")
	defer teardown()
	//
	text := "ab cd"
	var m textmap.Map
	m = m.InsertRange(textmap.Range{L: 0, R: 2}, "X", textmap.Segmented)
	m = m.InsertRange(textmap.Range{L: 3, R: 5}, "Y", textmap.Segmented)
	config := Config{"Y": {Attrs: []AttrSpec{Attr("id", "static")}}}
	hook := func(ctx TagContext) map[string]string {
		return map[string]string{
			"id": fmt.Sprintf("tag-%d-%d", ctx.Index, ctx.Depth),
		}
	}
	out := Render(text, m, config, hook)
	t.Logf("out = %s", out)
	// X has no static id: the hook's id is appended
	if !strings.Contains(out, `<span class="X L R" id="tag-0-0">`) {
		t.Errorf("expected hook-injected id on X, got %s", out)
	}
	// Y's static id is overridden in place
	if !strings.Contains(out, `<span class="Y L R" id="tag-1-0">`) {
		t.Errorf("expected hook to override Y's id, got %s", out)
	}
}

func TestRenderPatchingEquivalence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textmap")
	defer teardown()
	//
	hook := func(ctx TagContext) map[string]string {
		return map[string]string{"data-seg": fmt.Sprintf("%d", ctx.Index)}
	}
	config := Config{
		"A": {Tag: "em", Attrs: []AttrSpec{Attr("title", Placeholder)}},
		"b": {Tag: "br", Void: true},
	}
	cases := []struct {
		name string
		text string
		m    func() textmap.Map
	}{
		{"empty", "plain text only", func() textmap.Map { return nil }},
		{"no-overlap", "ab cd", func() textmap.Map {
			var m textmap.Map
			m = m.InsertRange(textmap.Range{L: 0, R: 2}, "X", textmap.Segmented)
			m = m.InsertRange(textmap.Range{L: 3, R: 5}, "Y", textmap.Segmented)
			return m
		}},
		{"nesting", "0123456789", func() textmap.Map {
			var m textmap.Map
			m = m.InsertRange(textmap.Range{L: 0, R: 10}, "A", textmap.Segmented)
			m = m.InsertRange(textmap.Range{L: 3, R: 6}, "B", textmap.Segmented)
			return m
		}},
		{"staggered", "0123456789", func() textmap.Map {
			var m textmap.Map
			m = m.InsertRange(textmap.Range{L: 0, R: 6}, "A", textmap.Segmented)
			m = m.InsertRange(textmap.Range{L: 4, R: 9}, "B", textmap.Segmented)
			m = m.InsertRange(textmap.Range{L: 1, R: 2}, "b", textmap.Segmented)
			return m
		}},
		{"overwrite", "0123456789", func() textmap.Map {
			var m textmap.Map
			m = m.InsertRange(textmap.Range{L: 0, R: 6}, "A", textmap.Segmented)
			m = m.InsertRange(textmap.Range{L: 3, R: 8}, "W", textmap.Overwrite)
			return m
		}},
	}
	for _, c := range cases {
		m := c.m()
		forward := Render(c.text, m, config, hook)
		patched := renderPatching(c.text, m, config, hook)
		t.Logf("%s: %s", c.name, forward)
		if forward != patched {
			t.Errorf("%s: renderers disagree:\nforward: %s\npatched: %s", c.name, forward, patched)
		}
	}
}

func TestRenderedMarkupParses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textmap")
	defer teardown()
	//
	text := "0123456789"
	var m textmap.Map
	m = m.InsertRange(textmap.Range{L: 0, R: 10}, "A", textmap.Segmented)
	m = m.InsertRange(textmap.Range{L: 3, R: 6}, "B", textmap.Segmented)
	out := Render(text, m, nil, nil)
	nodes, err := html.ParseFragment(strings.NewReader(out), nil)
	if err != nil {
		t.Fatal(err.Error())
	}
	var content strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			content.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	if content.String() != text {
		t.Errorf("expected parsed content %q, got %q", text, content.String())
	}
}
