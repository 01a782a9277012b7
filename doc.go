/*
Package lchar is about logical characters and the primitive operations on them.

Description

Text in complex scripts, such as the Indic scripts, cannot be processed one
code-point at a time. A Telugu syllable like “తె” is made from a consonant
and a dependent vowel sign, i.e. from two code-points, but it is rendered as
a single glyph cluster and perceived by readers as one character.
Reversing, inserting or splitting text at code-point boundaries will tear such
clusters apart and produce garbage.

This package therefore operates on logical characters: strings which each hold
one renderable unit of text. A sequence of logical characters is an ordered
slice of such strings (type Sequence). Where an operation has to look into a
logical character, it uses the character's code-point decomposition. The
record type Char bundles a logical character with its decomposition, and a
slice of Chars replaces the parallel arrays of strings and code-point tables
which are error prone to keep in lock-step.

Package lchar does not decide how code-points combine into clusters. Clients
will produce logical characters upstream, either by their own means or by
using sub-package cluster, which defers to the default grapheme rules of
UAX#29.

Contents

Operations fall into four groups:

	classification    IsSymbol, IsSpace
	filtering         RemoveInvalidCharacters, StripSymbols
	sequence algebra  Reverse, Join, IndexOf, ContainsChar, ContainsSequence,
	                  InsertAt, AppendAtEnd, SplitIntoChunks, Replace, …
	reordering        Randomize

Classification and filtering are governed by a Policy. The default policy
reproduces fixed ASCII classifications: symbols are the gaps between digits,
letters and control characters in the ASCII table, and the denylist is
made of single ASCII punctuation characters plus space. Clients may extend
a policy for script-specific needs, see sub-package profile.

All operations are pure. They return new slices and never modify their
arguments, so concurrent use on distinct or shared read-only inputs needs
no synchronization.

Failure Semantics

Operations are permissive for loosely computed indices: inserting beyond the
end appends, and a chunk width <= 0 yields a single chunk. Not-found is signalled
with -1 or false. Genuinely invalid arguments, such as a negative insertion
index or a code-point table not aligned with its sequence, are reported as
errors wrapping ErrInvalidArgument. Callers should treat these as programming
errors.

BSD License

Copyright (c) 2021, The IndicWP Authors

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package lchar

import (
	"errors"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrInvalidArgument flags input which no permissive fallback can make sense of,
// e.g. a negative index or a code-point table not aligned with its sequence.
var ErrInvalidArgument = errors.New("lchar: invalid argument")
