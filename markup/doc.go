/*
Package markup renders a text map as nested inline markup.

The renderer walks the map's segments left to right and emits one
opening tag per origin that was not already open across the previous
segment boundary, the escaped segment text, and closing tags down to
the depth shared with the next segment. Tags carry their origin's name
as a class, extended with an "L" marker where the tag coincides with
the origin's true left boundary and an "R" marker at its true right
boundary.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'textmap'
func tracer() tracing.Trace {
	return tracing.Select("textmap")
}
