package lchar

import (
	"fmt"
	"strconv"
)

// Range is an open interval of code-points: Lo and Hi themselves are not
// part of the range.
type Range struct {
	Lo, Hi rune
}

// Contains is true if Lo < r < Hi.
func (rg Range) Contains(r rune) bool {
	return r > rg.Lo && r < rg.Hi
}

func (rg Range) String() string {
	return fmt.Sprintf("(%d,%d)", rg.Lo, rg.Hi)
}

// Policy governs classification and filtering of logical characters.
// A Policy holds a denylist of logical characters, matched by exact string
// equality, and a list of code-point ranges classifying symbols.
//
// Policies are immutable after creation and safe for concurrent use.
// A nil *Policy behaves like DefaultPolicy().
type Policy struct {
	denied  map[string]struct{}
	symbols []Range
}

// DefaultSymbolRanges are the ASCII gaps between control characters, digits
// and letters.
var DefaultSymbolRanges = []Range{
	{32, 48},   // ! " # $ % & ' ( ) * + , - . /
	{57, 65},   // : ; < = > ? @
	{90, 97},   // [ \ ] ^ _ `
	{122, 127}, // { | } ~
}

// DefaultDenylist lists the logical characters RemoveInvalidCharacters strips
// by default.
var DefaultDenylist = []string{
	"!", "@", "#", "$", "%", "^", "&", "*", "(", ")", "_", "-", "+", "=",
	"{", "}", "[", "]", ":", ";", "\"", "'", "<", ",", ">", ".", "?",
	"/", "|", "\\", " ",
}

var defaultPolicy = NewPolicy(DefaultDenylist, DefaultSymbolRanges)

// DefaultPolicy returns the policy with DefaultDenylist and DefaultSymbolRanges.
func DefaultPolicy() *Policy {
	return defaultPolicy
}

// NewPolicy creates a policy from a denylist and a set of symbol ranges.
// Both arguments are copied.
func NewPolicy(denylist []string, symbolRanges []Range) *Policy {
	p := &Policy{
		denied:  make(map[string]struct{}, len(denylist)),
		symbols: make([]Range, len(symbolRanges)),
	}
	for _, s := range denylist {
		p.denied[s] = struct{}{}
	}
	copy(p.symbols, symbolRanges)
	return p
}

// Extend creates a new policy containing the denylist and symbol ranges of p
// plus the ones given. p is left unchanged.
func (p *Policy) Extend(denylist []string, symbolRanges []Range) *Policy {
	p = p.orDefault()
	deny := make([]string, 0, len(p.denied)+len(denylist))
	for s := range p.denied {
		deny = append(deny, s)
	}
	deny = append(deny, denylist...)
	ranges := make([]Range, 0, len(p.symbols)+len(symbolRanges))
	ranges = append(ranges, p.symbols...)
	ranges = append(ranges, symbolRanges...)
	return NewPolicy(deny, ranges)
}

func (p *Policy) orDefault() *Policy {
	if p == nil {
		return defaultPolicy
	}
	return p
}

// SymbolRanges returns a copy of the symbol ranges of p.
func (p *Policy) SymbolRanges() []Range {
	p = p.orDefault()
	ranges := make([]Range, len(p.symbols))
	copy(ranges, p.symbols)
	return ranges
}

// IsDenied is true if logical character c is on the denylist of p.
func (p *Policy) IsDenied(c string) bool {
	_, denied := p.orDefault().denied[c]
	return denied
}

// IsSymbol is true if code-point r falls strictly inside one of the symbol
// ranges of p.
func (p *Policy) IsSymbol(r rune) bool {
	for _, rg := range p.orDefault().symbols {
		if rg.Contains(r) {
			return true
		}
	}
	return false
}

// RemoveInvalid returns the logical characters of seq which are not on the
// denylist. Clusters are compared as a whole: a cluster which merely contains
// a denied code-point is retained.
func (p *Policy) RemoveInvalid(seq Sequence) Sequence {
	filtered := make(Sequence, 0, len(seq))
	for _, c := range seq {
		if !p.IsDenied(c) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// StripSymbols removes every Char whose leading code-point is a symbol.
// Trailing combining marks are not classified on their own.
// Chars without a decomposition are dropped silently.
func (p *Policy) StripSymbols(chars Chars) Chars {
	stripped := make(Chars, 0, len(chars))
	for i, c := range chars {
		lead, ok := c.Lead()
		if !ok {
			CT().P("index", strconv.Itoa(i)).Debugf("skipping logical character without code-points")
			continue
		}
		if !p.IsSymbol(lead) {
			stripped = append(stripped, c)
		}
	}
	return stripped
}

// --- Default policy shortcuts ---------------------------------------------

// IsSymbol is true if code-point r lies in one of the DefaultSymbolRanges.
// Punctuation outside of ASCII is never classified as a symbol.
func IsSymbol(r rune) bool {
	return defaultPolicy.IsSymbol(r)
}

// IsSpace is true if c is a single ASCII space. Tabs and other white space
// are not recognized.
func IsSpace(c string) bool {
	return c == " "
}

// RemoveInvalidCharacters removes logical characters on the DefaultDenylist.
func RemoveInvalidCharacters(seq Sequence) Sequence {
	return defaultPolicy.RemoveInvalid(seq)
}

// StripSymbols removes Chars with a leading symbol code-point, using
// DefaultSymbolRanges.
func StripSymbols(chars Chars) Chars {
	return defaultPolicy.StripSymbols(chars)
}

// StripSymbolsAligned is StripSymbols for a sequence with a separate,
// parallel code-point table. If seq and table differ in length, an error
// wrapping ErrInvalidArgument is returned. Empty table rows are skipped silently.
func StripSymbolsAligned(seq Sequence, table [][]rune) (Sequence, error) {
	chars, err := Align(seq, table)
	if err != nil {
		return nil, err
	}
	return defaultPolicy.StripSymbols(chars).Sequence(), nil
}
