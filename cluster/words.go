package cluster

import (
	"strings"
	"unicode"

	"github.com/indicwp/lchar"
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Words breaks text into words at UAX#29 word boundaries. Segments consisting
// of white space only are dropped; punctuation is reported as separate words.
func Words(text string) []string {
	text = norm.NFC.String(text)
	words := make([]string, 0, strings.Count(text, " ")+1)
	state := -1
	var w string
	for len(text) > 0 {
		w, text, state = uniseg.FirstWordInString(text, state)
		if strings.TrimFunc(w, unicode.IsSpace) == "" {
			continue
		}
		words = append(words, w)
	}
	return words
}

// ShuffleWords returns the words of text in random order.
func ShuffleWords(text string) []string {
	return lchar.Randomize(Words(text))
}
