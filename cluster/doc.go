/*
Package cluster produces logical characters from raw text.

Package lchar works on text which has already been segmented into logical
characters. Package cluster is a convenience for clients which do not have
a segmenter of their own. It does not implement any script-specific rules:
text is normalized to NFC and then broken up into extended grapheme clusters
following the default rules of UAX#29, as implemented by package
github.com/rivo/uniseg.

For Indic scripts this will keep a consonant together with its dependent
vowel signs and other combining marks:

	chars, _ := cluster.Split("తెలుగు")
	fmt.Println(chars.Len())           // => 3
	fmt.Println(chars.CodePointCount()) // => 6

Conjuncts formed with a virama are split after the virama under the default
rules. Clients which need conjunct-aware clusters will have to provide
their own segmentation.

Words

Function Words breaks text into words according to UAX#29 word boundaries,
dropping white space. Words are the unit lchar.Randomize is meant for.

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
package cluster

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
