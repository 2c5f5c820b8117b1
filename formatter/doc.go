/*
Package formatter outputs a text map to a console.

Where package markup emits nested tags, this package visualizes the
same partition with ANSI colors on a fixed width terminal, wrapping
lines at Unicode line-break opportunities.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'textmap'
func tracer() tracing.Trace {
	return tracing.Select("textmap")
}
