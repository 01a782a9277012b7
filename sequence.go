package lchar

import (
	"fmt"
	"strconv"
	"strings"
)

// Sequence is an ordered sequence of logical characters. Duplicates are
// permitted. Every element is treated as an atomic unit; no operation of
// this package splits an element.
type Sequence []string

// Len returns the number of logical characters in seq.
func (seq Sequence) Len() int {
	return len(seq)
}

func (seq Sequence) String() string {
	return Join(seq, "")
}

func (seq Sequence) clone(extra int) Sequence {
	c := make(Sequence, len(seq), len(seq)+extra)
	copy(c, seq)
	return c
}

// Reverse returns the logical characters of seq in reverse order.
// Multi-code-point clusters stay intact.
func Reverse(seq Sequence) Sequence {
	rev := make(Sequence, len(seq))
	for i, c := range seq {
		rev[len(seq)-1-i] = c
	}
	return rev
}

// Join concatenates the logical characters of seq, placing sep between
// consecutive elements.
func Join(seq Sequence, sep string) string {
	return strings.Join(seq, sep)
}

// IndexOf returns the position of the first logical character equal to c,
// or -1 if there is none. A c matching only part of a cluster is not found.
func IndexOf(seq Sequence, c string) int {
	for i, x := range seq {
		if x == c {
			return i
		}
	}
	return -1
}

// ContainsChar is true if c is one of the logical characters of seq.
func ContainsChar(seq Sequence, c string) bool {
	return IndexOf(seq, c) >= 0
}

// ContainsSequence is true if sub occurs as a contiguous run within seq.
// Matches align on logical character boundaries: ["ab","c"] does not
// contain ["a","b"]. The empty sequence is contained in every sequence.
func ContainsSequence(seq, sub Sequence) bool {
	return indexOfSequence(seq, sub, 0) >= 0
}

// indexOfSequence finds sub in seq, starting at position from.
func indexOfSequence(seq, sub Sequence, from int) int {
	if len(sub) == 0 {
		return from
	}
outer:
	for i := from; i+len(sub) <= len(seq); i++ {
		for j, c := range sub {
			if seq[i+j] != c {
				continue outer
			}
		}
		return i
	}
	return -1
}

// HasPrefix is true if seq starts with the logical characters of prefix.
func HasPrefix(seq, prefix Sequence) bool {
	return len(prefix) <= len(seq) && Equal(seq[:len(prefix)], prefix)
}

// HasSuffix is true if seq ends with the logical characters of suffix.
func HasSuffix(seq, suffix Sequence) bool {
	return len(suffix) <= len(seq) && Equal(seq[len(seq)-len(suffix):], suffix)
}

// Equal is true if a and b hold the same logical characters in the same order.
func Equal(a, b Sequence) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// At returns the logical character at position i. If i is out of range,
// ok is false.
func At(seq Sequence, i int) (c string, ok bool) {
	if i < 0 || i >= len(seq) {
		return "", false
	}
	return seq[i], true
}

// InsertAt returns a copy of seq with c inserted at position index.
// An index at or beyond the end of seq appends c.
// A negative index results in an error wrapping ErrInvalidArgument.
func InsertAt(seq Sequence, index int, c string) (Sequence, error) {
	if index < 0 {
		return nil, fmt.Errorf("%w: negative insertion index %d", ErrInvalidArgument, index)
	}
	if index >= len(seq) {
		CT().P("index", strconv.Itoa(index)).Debugf("insertion index beyond end, appending")
		return AppendAtEnd(seq, c), nil
	}
	ins := make(Sequence, 0, len(seq)+1)
	ins = append(ins, seq[:index]...)
	ins = append(ins, c)
	ins = append(ins, seq[index:]...)
	return ins, nil
}

// AppendAtEnd returns a copy of seq with c added as the last element.
func AppendAtEnd(seq Sequence, c string) Sequence {
	return append(seq.clone(1), c)
}

// SplitIntoChunks partitions seq into consecutive chunks of at most columns
// logical characters. The last chunk may be shorter.
// For columns <= 0, seq is returned as a single chunk.
func SplitIntoChunks(seq Sequence, columns int) []Sequence {
	if columns <= 0 {
		CT().P("columns", strconv.Itoa(columns)).Debugf("no chunk width, returning a single chunk")
		return []Sequence{seq.clone(0)}
	}
	chunks := make([]Sequence, 0, (len(seq)+columns-1)/columns)
	for i := 0; i < len(seq); i += columns {
		end := i + columns
		if end > len(seq) {
			end = len(seq)
		}
		chunks = append(chunks, seq[i:end].clone(0))
	}
	return chunks
}

// Replace returns a copy of seq where every non-overlapping occurrence of old
// is replaced by repl, scanning from the start. Occurrences align on
// logical character boundaries. If old is empty, a copy of seq is returned.
func Replace(seq, old, repl Sequence) Sequence {
	if len(old) == 0 {
		return seq.clone(0)
	}
	res := make(Sequence, 0, len(seq))
	i := 0
	for {
		j := indexOfSequence(seq, old, i)
		if j < 0 {
			break
		}
		res = append(res, seq[i:j]...)
		res = append(res, repl...)
		i = j + len(old)
	}
	return append(res, seq[i:]...)
}
