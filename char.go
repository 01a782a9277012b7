package lchar

import (
	"fmt"
	"strconv"
)

// Char is a logical character together with its code-point decomposition.
// CodePoints holds the code-points of Text in the order they appear within
// the cluster.
//
// Chars are values; operations of this package never modify them.
type Char struct {
	Text       string
	CodePoints []rune
}

// MakeChar creates a Char for a logical character, decomposing it into its
// code-points. Invalid UTF-8 bytes decode to utf8.RuneError.
func MakeChar(s string) Char {
	return Char{Text: s, CodePoints: []rune(s)}
}

// Lead returns the leading code-point of a Char. If the Char has no
// decomposition, ok is false.
func (c Char) Lead() (r rune, ok bool) {
	if len(c.CodePoints) == 0 {
		return 0, false
	}
	return c.CodePoints[0], true
}

func (c Char) String() string {
	return fmt.Sprintf("%q%U", c.Text, c.CodePoints)
}

// Chars is a sequence of logical characters bundled with their decompositions.
// It replaces the combination of a Sequence and a parallel code-point table;
// entry i always carries the decomposition of logical character i.
type Chars []Char

// Align bundles a sequence of logical characters and a code-point table into
// Chars. The table must be aligned 1:1 with seq, otherwise an error wrapping
// ErrInvalidArgument is returned. Table rows are copied.
func Align(seq Sequence, table [][]rune) (Chars, error) {
	if len(seq) != len(table) {
		CT().P("sequence", strconv.Itoa(len(seq))).P("table", strconv.Itoa(len(table))).
			Errorf("code-point table not aligned with logical characters")
		return nil, fmt.Errorf("%w: %d logical characters but %d code-point entries",
			ErrInvalidArgument, len(seq), len(table))
	}
	chars := make(Chars, len(seq))
	for i, s := range seq {
		cps := make([]rune, len(table[i]))
		copy(cps, table[i])
		chars[i] = Char{Text: s, CodePoints: cps}
	}
	return chars, nil
}

// Decompose creates Chars from a sequence of logical characters by decoding
// every logical character into its code-points.
func Decompose(seq Sequence) Chars {
	chars := make(Chars, len(seq))
	for i, s := range seq {
		chars[i] = MakeChar(s)
	}
	return chars
}

// Len returns the number of logical characters.
func (chars Chars) Len() int {
	return len(chars)
}

// CodePointCount returns the total number of code-points of all logical
// characters.
func (chars Chars) CodePointCount() int {
	n := 0
	for _, c := range chars {
		n += len(c.CodePoints)
	}
	return n
}

// Sequence returns the logical characters without their decompositions.
func (chars Chars) Sequence() Sequence {
	seq := make(Sequence, len(chars))
	for i, c := range chars {
		seq[i] = c.Text
	}
	return seq
}

// Table returns the code-point table aligned with chars.Sequence().
// Rows are copies.
func (chars Chars) Table() [][]rune {
	table := make([][]rune, len(chars))
	for i, c := range chars {
		row := make([]rune, len(c.CodePoints))
		copy(row, c.CodePoints)
		table[i] = row
	}
	return table
}

// Reverse returns the Chars in reverse order. Decompositions travel with
// their logical characters.
func (chars Chars) Reverse() Chars {
	rev := make(Chars, len(chars))
	for i, c := range chars {
		rev[len(chars)-1-i] = c
	}
	return rev
}
