package cluster

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/indicwp/lchar"
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// MaxByteLen is the maximum number of bytes Split will accept.
// Clients should split large texts into paragraphs or words first.
const MaxByteLen int = 32766

// ErrTooLong is returned for input exceeding MaxByteLen.
// ErrInvalidText is returned for input which is not valid UTF-8.
var (
	ErrTooLong     = errors.New("cluster: text too long for segmenting")
	ErrInvalidText = errors.New("cluster: text is not valid UTF-8")
)

// Split normalizes text to NFC and breaks it up into logical characters,
// i.e. extended grapheme clusters. Every resulting Char carries the
// code-points of its cluster.
func Split(text string) (lchar.Chars, error) {
	if len(text) > MaxByteLen {
		return nil, fmt.Errorf("%w: have %d bytes, max. %d", ErrTooLong, len(text), MaxByteLen)
	}
	if !utf8.ValidString(text) {
		return nil, ErrInvalidText
	}
	text = norm.NFC.String(text)
	chars := make(lchar.Chars, 0, utf8.RuneCountInString(text))
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		chars = append(chars, lchar.Char{Text: gr.Str(), CodePoints: gr.Runes()})
	}
	T().P("clusters", strconv.Itoa(len(chars))).Debugf("split %q", text)
	return chars, nil
}

// MustSplit is like Split, but panics on error. It is intended for
// initializing variables from string literals.
func MustSplit(text string) lchar.Chars {
	chars, err := Split(text)
	if err != nil {
		panic(err.Error())
	}
	return chars
}

// Sequence is a shortcut for Split(text) without the decompositions.
func Sequence(text string) (lchar.Sequence, error) {
	chars, err := Split(text)
	if err != nil {
		return nil, err
	}
	return chars.Sequence(), nil
}

// Count returns the number of logical characters of the NFC form of text.
func Count(text string) int {
	return uniseg.GraphemeClusterCount(norm.NFC.String(text))
}
