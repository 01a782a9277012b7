/*
Package word analyses words made from logical characters.

A Word is created from a Go string and a language profile. All measures and
predicates count logical characters, not bytes or code-points:

	w, _ := word.New("తెలుగు", profile.Lookup("telugu"))
	w.Len()          // => 3
	w.CodePointLen() // => 6
	w.Reverse()      // => "గులుతె"

For Indic profiles the complexity measures Strength and Weight look into the
code-point decompositions of the logical characters; for other profiles they
degrade to the number of logical characters.

Words are read-only and safe for concurrent use.
*/
package word

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
