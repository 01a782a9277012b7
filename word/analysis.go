package word

import (
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/hashmap"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/indicwp/lchar"
)

// --- Complexity -------------------------------------------------------

// Strength is the complexity of the most complex logical character of w,
// i.e. the maximum number of code-points within one logical character
// (at least 1).
// For non-Indic profiles this is the number of logical characters.
func (w *Word) Strength() int {
	if !w.profile.Indic {
		return w.Len()
	}
	return strength(w.chars)
}

func strength(chars lchar.Chars) int {
	s := 1
	for _, c := range chars {
		if len(c.CodePoints) > s {
			s = len(c.CodePoints)
		}
	}
	return s
}

// Weight is the total complexity of w, i.e. the number of code-points.
// For non-Indic profiles this is the number of logical characters.
func (w *Word) Weight() int {
	if !w.profile.Indic {
		return w.Len()
	}
	return w.chars.CodePointCount()
}

// Level is the average of length, weight and strength of w, rounded down.
// Weight and strength are always measured the Indic way.
func (w *Word) Level() int {
	return (w.Len() + w.chars.CodePointCount() + strength(w.chars)) / 3
}

// --- Predicates -------------------------------------------------------

// IsPalindrome is true if w reads the same in both directions, comparing
// logical characters.
func (w *Word) IsPalindrome() bool {
	seq := w.Sequence()
	return lchar.Equal(seq, lchar.Reverse(seq))
}

// IsAnagramOf is true if w and o consist of the same logical characters,
// with the same multiplicities.
func (w *Word) IsAnagramOf(o *Word) bool {
	return w.Len() == o.Len() && w.CanMake(o)
}

// CanMake is true if o can be made from the logical characters of w, using
// every logical character of w at most once.
func (w *Word) CanMake(o *Word) bool {
	available := counts(w.Sequence())
	needed := counts(o.Sequence())
	for _, k := range needed.Keys() {
		n, _ := needed.Get(k)
		a, found := available.Get(k)
		if !found || a.(int) < n.(int) {
			return false
		}
	}
	return true
}

// CanMakeAll is true if every one of words can be made from the logical
// characters of w. Words are checked individually.
func (w *Word) CanMakeAll(words ...*Word) bool {
	for _, o := range words {
		if !w.CanMake(o) {
			return false
		}
	}
	return true
}

// IsLadderOf is true if w and o have the same length and differ in exactly
// one position.
func (w *Word) IsLadderOf(o *Word) bool {
	a, b := w.Sequence(), o.Sequence()
	if len(a) != len(b) {
		return false
	}
	diff := 0
	for i := range a {
		if a[i] != b[i] {
			if diff++; diff > 1 {
				return false
			}
		}
	}
	return diff == 1
}

// IsHeadAndTailOf is true if the first logical character of w is the last
// one of o and vice versa.
func (w *Word) IsHeadAndTailOf(o *Word) bool {
	a, b := w.Sequence(), o.Sequence()
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return a[0] == b[len(b)-1] && a[len(a)-1] == b[0]
}

// --- Intersections ----------------------------------------------------

// IntersectingRank counts the logical characters of w which occur in o.
// Duplicates within w are counted each time.
func (w *Word) IntersectingRank(o *Word) int {
	other := set(o.Sequence())
	n := 0
	for _, c := range w.Sequence() {
		if other.Contains(c) {
			n++
		}
	}
	return n
}

// Intersects is true if w and o have at least one logical character in common.
func (w *Word) Intersects(o *Word) bool {
	return w.IntersectingRank(o) > 0
}

// UniqueIntersecting returns the distinct logical characters of w which
// occur in at least one of words, in order of their first appearance in w.
func (w *Word) UniqueIntersecting(words ...*Word) lchar.Sequence {
	others := hashset.New()
	for _, o := range words {
		for _, c := range o.Sequence() {
			others.Add(c)
		}
	}
	seen := hashset.New()
	result := arraylist.New()
	for _, c := range w.Sequence() {
		if others.Contains(c) && !seen.Contains(c) {
			seen.Add(c)
			result.Add(c)
		}
	}
	seq := make(lchar.Sequence, 0, result.Size())
	for _, v := range result.Values() {
		seq = append(seq, v.(string))
	}
	return seq
}

// UniqueIntersectingRank is the number of logical characters
// UniqueIntersecting returns.
func (w *Word) UniqueIntersectingRank(words ...*Word) int {
	return len(w.UniqueIntersecting(words...))
}

// --- Comparison -------------------------------------------------------

// Compare compares the texts of w and o lexicographically, returning
// -1, 0 or +1.
func (w *Word) Compare(o *Word) int {
	return strings.Compare(w.text, o.text)
}

// CompareFold is Compare with both texts converted to lower case.
func (w *Word) CompareFold(o *Word) int {
	return strings.Compare(strings.ToLower(w.text), strings.ToLower(o.text))
}

// Equals is true if w and o consist of the same logical characters.
func (w *Word) Equals(o *Word) bool {
	return lchar.Equal(w.Sequence(), o.Sequence())
}

// ReverseEquals is true if w reversed equals o.
func (w *Word) ReverseEquals(o *Word) bool {
	return lchar.Equal(lchar.Reverse(w.Sequence()), o.Sequence())
}

// ----------------------------------------------------------------------

func counts(seq lchar.Sequence) *hashmap.Map {
	m := hashmap.New()
	for _, c := range seq {
		n, found := m.Get(c)
		if !found {
			n = 0
		}
		m.Put(c, n.(int)+1)
	}
	return m
}

func set(seq lchar.Sequence) *hashset.Set {
	s := hashset.New()
	for _, c := range seq {
		s.Add(c)
	}
	return s
}
