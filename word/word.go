package word

import (
	"errors"
	"fmt"
	"strings"

	"github.com/indicwp/lchar"
	"github.com/indicwp/lchar/cluster"
	"github.com/indicwp/lchar/profile"
)

// MaxByteLen is the maximum length of a word's text in bytes.
const MaxByteLen = 1000

// ErrTooLong is returned by New for text exceeding MaxByteLen.
var ErrTooLong = errors.New("word: text too long")

// Word is a string broken up into logical characters.
type Word struct {
	text    string
	chars   lchar.Chars
	profile *profile.Profile
}

// New creates a Word from text. If p is nil, the default profile is used.
func New(text string, p *profile.Profile) (*Word, error) {
	if len(text) > MaxByteLen {
		return nil, fmt.Errorf("%w: have %d bytes, max. %d", ErrTooLong, len(text), MaxByteLen)
	}
	if p == nil {
		p = profile.Default()
	}
	chars, err := cluster.Split(text)
	if err != nil {
		return nil, err
	}
	return &Word{text: text, chars: chars, profile: p}, nil
}

// Must is like New, but panics on error.
func Must(text string, p *profile.Profile) *Word {
	w, err := New(text, p)
	if err != nil {
		panic(err.Error())
	}
	return w
}

func (w *Word) String() string {
	return w.text
}

// Text returns the text the word has been created from.
func (w *Word) Text() string {
	return w.text
}

// Profile returns the language profile of w.
func (w *Word) Profile() *profile.Profile {
	return w.profile
}

// Chars returns the logical characters of w with their decompositions.
func (w *Word) Chars() lchar.Chars {
	c := make(lchar.Chars, len(w.chars))
	copy(c, w.chars)
	return c
}

// Sequence returns the logical characters of w.
func (w *Word) Sequence() lchar.Sequence {
	return w.chars.Sequence()
}

// Len returns the number of logical characters of w.
func (w *Word) Len() int {
	return w.chars.Len()
}

// CodePointLen returns the number of code-points of w.
func (w *Word) CodePointLen() int {
	return w.chars.CodePointCount()
}

// LenNoSpaces returns the number of logical characters which are not spaces.
func (w *Word) LenNoSpaces() int {
	n := 0
	for _, c := range w.chars {
		if !lchar.IsSpace(c.Text) {
			n++
		}
	}
	return n
}

// LenNoSpacesNoCommas returns the number of logical characters which are
// neither spaces nor commas.
func (w *Word) LenNoSpacesNoCommas() int {
	n := 0
	for _, c := range w.chars {
		if !lchar.IsSpace(c.Text) && c.Text != "," {
			n++
		}
	}
	return n
}

// ContainsSpace is true if one of the logical characters of w is a space.
func (w *Word) ContainsSpace() bool {
	return lchar.ContainsChar(w.Sequence(), " ")
}

// ContainsChar is true if c is one of the logical characters of w.
func (w *Word) ContainsChar(c string) bool {
	return lchar.ContainsChar(w.Sequence(), c)
}

// ContainsString is true if the text of w contains s as a substring,
// regardless of logical character boundaries.
func (w *Word) ContainsString(s string) bool {
	return strings.Contains(w.text, s)
}

// ContainsSequence is true if the logical characters of s occur as a
// contiguous run within w.
func (w *Word) ContainsSequence(s string) bool {
	sub, err := cluster.Sequence(s)
	if err != nil {
		return false
	}
	return lchar.ContainsSequence(w.Sequence(), sub)
}

// StartsWith is true if w starts with the logical characters of s.
func (w *Word) StartsWith(s string) bool {
	pre, err := cluster.Sequence(s)
	return err == nil && lchar.HasPrefix(w.Sequence(), pre)
}

// EndsWith is true if w ends with the logical characters of s.
func (w *Word) EndsWith(s string) bool {
	suf, err := cluster.Sequence(s)
	return err == nil && lchar.HasSuffix(w.Sequence(), suf)
}

// At returns the logical character at position i.
func (w *Word) At(i int) (string, bool) {
	return lchar.At(w.Sequence(), i)
}

// IndexOf returns the position of logical character c in w, or -1.
func (w *Word) IndexOf(c string) int {
	return lchar.IndexOf(w.Sequence(), c)
}

// Reverse returns the text of w with its logical characters in reverse order.
func (w *Word) Reverse() string {
	return lchar.Join(lchar.Reverse(w.Sequence()), "")
}

// Replace replaces all occurrences of the logical characters of old by repl.
func (w *Word) Replace(old, repl string) string {
	o, err := cluster.Sequence(old)
	if err != nil {
		return w.text
	}
	n, err := cluster.Sequence(repl)
	if err != nil {
		return w.text
	}
	return lchar.Join(lchar.Replace(w.Sequence(), o, n), "")
}

// InsertAt returns the text of w with c inserted at position i.
// See lchar.InsertAt.
func (w *Word) InsertAt(i int, c string) (string, error) {
	seq, err := lchar.InsertAt(w.Sequence(), i, c)
	if err != nil {
		return "", err
	}
	return lchar.Join(seq, ""), nil
}

// Append returns the text of w with c appended.
func (w *Word) Append(c string) string {
	return lchar.Join(lchar.AppendAtEnd(w.Sequence(), c), "")
}

// Chunks splits w into chunks of at most cols logical characters.
func (w *Word) Chunks(cols int) []lchar.Sequence {
	return lchar.SplitIntoChunks(w.Sequence(), cols)
}

// StripSymbols returns the logical characters of w without the ones
// starting with a symbol, as classified by the profile of w.
func (w *Word) StripSymbols() lchar.Sequence {
	return w.profile.Policy.StripSymbols(w.chars).Sequence()
}

// Clean returns the logical characters of w without the ones on the
// profile's denylist.
func (w *Word) Clean() lchar.Sequence {
	return w.profile.Policy.RemoveInvalid(w.Sequence())
}
