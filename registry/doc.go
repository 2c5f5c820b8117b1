/*
Package registry collects named markers (compiled patterns, custom
matchers or explicit ranges) together with their rendering
configuration, and folds them into a text map in registration order.
Registration order fixes nesting order: earlier entries wrap later ones.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package registry

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'textmap'
func tracer() tracing.Trace {
	return tracing.Select("textmap")
}
