/*
Package textmap overlays independently specified markers onto plain text.

Text Maps

A text map is a flat partition of a text into segments. Every marker,
be it a pattern match or an explicit range, contributes an origin: its name,
the extent it was added with, and a per-call sequence number. Wherever
markers overlap, the overlapped stretch becomes its own segment carrying
all contributing origins, ordered outermost to innermost in the order
the markers were added. Earlier markers wrap later ones.

Maps are built fresh for a given text by folding marker insertions into
an initially empty map:

	var m textmap.Map
	m = m.InsertRange(textmap.NewRange(0, 10), "emph", textmap.Segmented)
	m = m.InsertRange(textmap.NewRange(3, 6), "code", textmap.Segmented)

yields the three segments [0,3) [3,6) [6,10), with the middle one
carrying both origins. A finished map is read-only; position queries
(At, Before, After, Nearest) run a binary search over it, and the
subpackages markup and formatter walk it to produce nested tag output
or colored console output. When the underlying text changes, clients
rebuild the map rather than patch it.

Segment-level text substitution is provided by Replace and ReplaceAll.
Both only touch segments which are exact, i.e. never split by an
overlapping marker.

All operations are pure: they take a map and return a new one, leaving
the input untouched. Independent maps may therefore be built and walked
concurrently without synchronization.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package textmap

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// MapError is an error type for the textmap module
type MapError string

func (e MapError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a text position is
// greater than the length of the underlying text.
const ErrIndexOutOfBounds = MapError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = MapError("illegal arguments")

// ErrMapOrder is flagged by Map.Check whenever the segments of a map are
// not strictly ascending and non-overlapping.
const ErrMapOrder = MapError("map segments out of order")
