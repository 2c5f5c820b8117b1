package formatter

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/textmap"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
	"golang.org/x/term"
)

// Config collects parameters for console output.
type Config struct {
	LineWidth int // target line length in fixed width “en”s; 0 disables wrapping
	Context   *uax11.Context
}

// ConsoleFixedWidth is a type for outputting a marked-up text to a
// console with a fixed width font. Colors visualize origins in place of
// tags.
type ConsoleFixedWidth struct {
	colors map[string]*color.Color
}

// NewConsoleFixedWidthFormat creates a new formatter. It is to be used
// for consoles with a fixed width font.
//
// colors is a map from origin names to colors, used for display. It may
// contain just a subset of the names occurring in the maps which will be
// handled by this formatter; segments without a colored origin print
// unstyled. Stacked origins are looked up innermost first.
func NewConsoleFixedWidthFormat(colors map[string]*color.Color) *ConsoleFixedWidth {
	fw := &ConsoleFixedWidth{}
	if colors == nil {
		fw.colors = make(map[string]*color.Color)
	} else {
		fw.colors = colors
	}
	return fw
}

// Print outputs a marked-up text to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive).
// Config.Context will also be created based on heuristics from the user
// environment.
func (fw *ConsoleFixedWidth) Print(text string, m textmap.Map, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return fw.Output(text, m, os.Stdout, config)
}

// Output writes the colored rendition of (text, m) to w, wrapping lines
// at config.LineWidth.
func (fw *ConsoleFixedWidth) Output(text string, m textmap.Map, w io.Writer, config *Config) error {
	if config == nil {
		config = &Config{LineWidth: 65, Context: uax11.LatinContext}
	}
	breaks := firstFit(text, config.LineWidth, config.Context)
	bi := 0
	prev := uint64(0)
	for _, seg := range m {
		if seg.Range.R > uint64(len(text)) {
			return textmap.ErrIndexOutOfBounds
		}
		if err := fw.emit(w, text[prev:seg.Range.L], prev, nil, breaks, &bi); err != nil {
			return err
		}
		if err := fw.emit(w, text[seg.Range.L:seg.Range.R], seg.Range.L, fw.colorFor(seg), breaks, &bi); err != nil {
			return err
		}
		prev = seg.Range.R
	}
	return fw.emit(w, text[prev:], prev, nil, breaks, &bi)
}

// colorFor finds the color of the innermost origin with a palette entry.
func (fw *ConsoleFixedWidth) colorFor(seg textmap.Segment) *color.Color {
	for d := len(seg.Origins) - 1; d >= 0; d-- {
		if c, ok := fw.colors[seg.Origins[d].Name]; ok {
			return c
		}
	}
	return nil
}

// emit writes piece, which starts at byte position base of the overall
// text, splitting it with newlines at the precomputed break positions.
func (fw *ConsoleFixedWidth) emit(w io.Writer, piece string, base uint64, c *color.Color,
	breaks []uint64, bi *int) error {
	for *bi < len(breaks) && breaks[*bi] >= base && breaks[*bi] <= base+uint64(len(piece)) {
		cut := breaks[*bi] - base
		if err := fw.write(w, piece[:cut], c); err != nil {
			return err
		}
		if _, err := w.Write([]byte{'\n'}); err != nil {
			return err
		}
		piece = piece[cut:]
		base += cut
		*bi++
	}
	return fw.write(w, piece, c)
}

func (fw *ConsoleFixedWidth) write(w io.Writer, s string, c *color.Color) error {
	if s == "" {
		return nil
	}
	if c != nil {
		_, err := c.Fprint(w, s)
		return err
	}
	_, err := w.Write([]byte(s))
	return err
}

// firstFit computes line break byte positions for text.
//
//	1. |  SpaceLeft := LineWidth
//	2. |  for each Fragment in Text
//	3. |      if Width(Fragment) > SpaceLeft
//	4. |           insert line break before Fragment in Text
//	5. |           SpaceLeft := LineWidth - Width(Fragment)
//	6. |      else
//	7. |           SpaceLeft := SpaceLeft - Width(Fragment)
//
// Fragments are UAX#14 line-wrap segments; widths are fixed width “en”s
// per UAX#11.
func firstFit(text string, linewidth int, context *uax11.Context) []uint64 {
	if linewidth <= 0 || text == "" {
		return nil
	}
	if context == nil {
		context = uax11.LatinContext
	}
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(strings.NewReader(text)))
	spaceleft := linewidth
	breaks := make([]uint64, 0, 20)
	pos := 0
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		gstr := grapheme.StringFromString(frag)
		fraglen := uax11.StringWidth(gstr, context)
		tracer().Debugf("formatter: next fragment %q (len=%d|%d)", frag, fraglen, spaceleft)
		if fraglen >= spaceleft {
			breaks = append(breaks, uint64(pos))
			tracer().Debugf("formatter: break @ %d", pos)
			spaceleft = linewidth - fraglen
		} else {
			spaceleft -= fraglen
		}
		pos += len(frag)
	}
	return breaks
}

// ConfigFromTerminal is a simple helper for creating a formatting
// Config. It checks wether stdout is a terminal, and if so it reads the
// terminal's width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
