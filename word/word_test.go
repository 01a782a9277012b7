package word

import (
	"errors"
	"strings"
	"testing"

	"github.com/indicwp/lchar"
	"github.com/indicwp/lchar/profile"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var telugu = profile.Lookup("telugu")
var english = profile.Lookup("english")

func TestNew(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	w, err := New("తెలుగు", nil)
	require.NoError(t, err)
	assert.Equal(t, profile.DefaultName, w.Profile().Name)
	assert.Equal(t, "తెలుగు", w.String())
	assert.Equal(t, 3, w.Len())
	assert.Equal(t, 6, w.CodePointLen())
	assert.Equal(t, lchar.Sequence{"తె", "లు", "గు"}, w.Sequence())
	//
	_, err = New(strings.Repeat("a", MaxByteLen+1), english)
	assert.True(t, errors.Is(err, ErrTooLong))
	assert.Panics(t, func() { Must("\xff", english) })
}

func TestComplexity(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	w := Must("తెలుగు", telugu)
	assert.Equal(t, 2, w.Strength())
	assert.Equal(t, 6, w.Weight())
	assert.Equal(t, 3, w.Level())
	e := Must("hello", english)
	assert.Equal(t, 5, e.Strength())
	assert.Equal(t, 5, e.Weight())
	assert.Equal(t, 3, e.Level()) // (5 + 5 + 1) / 3
	assert.Equal(t, 1, Must("", telugu).Strength())
}

func TestLengths(t *testing.T) {
	w := Must("a b, c", english)
	assert.Equal(t, 6, w.Len())
	assert.Equal(t, 4, w.LenNoSpaces())
	assert.Equal(t, 3, w.LenNoSpacesNoCommas())
	assert.True(t, w.ContainsSpace())
	assert.False(t, Must("తెలుగు", telugu).ContainsSpace())
}

func TestSearch(t *testing.T) {
	w := Must("తెలుగు", telugu)
	assert.True(t, w.ContainsChar("లు"))
	assert.False(t, w.ContainsChar("త"), "TA alone is only part of a cluster")
	assert.True(t, w.ContainsString("త"))
	assert.True(t, w.ContainsSequence("లుగు"))
	assert.True(t, w.StartsWith("తె"))
	assert.False(t, w.StartsWith("త"))
	assert.True(t, w.EndsWith("గు"))
	assert.Equal(t, 1, w.IndexOf("లు"))
	assert.Equal(t, -1, w.IndexOf("x"))
	c, ok := w.At(2)
	assert.True(t, ok)
	assert.Equal(t, "గు", c)
}

func TestEdits(t *testing.T) {
	w := Must("తెలుగు", telugu)
	assert.Equal(t, "గులుతె", w.Reverse())
	assert.Equal(t, "తెXగు", w.Replace("లు", "X"))
	s, err := w.InsertAt(1, "X")
	require.NoError(t, err)
	assert.Equal(t, "తెXలుగు", s)
	s, err = w.InsertAt(9, "X")
	require.NoError(t, err)
	assert.Equal(t, "తెలుగుX", s)
	_, err = w.InsertAt(-1, "X")
	assert.True(t, errors.Is(err, lchar.ErrInvalidArgument))
	assert.Equal(t, "తెలుగుX", w.Append("X"))
	assert.Equal(t, []lchar.Sequence{{"తె", "లు"}, {"గు"}}, w.Chunks(2))
}

func TestFiltering(t *testing.T) {
	assert.Equal(t, lchar.Sequence{"a", "b"}, Must("a-b", english).StripSymbols())
	assert.Equal(t, lchar.Sequence{"a", "b"}, Must("a b!", english).Clean())
	assert.Equal(t, lchar.Sequence{"తె", "లు"}, Must("తె, లు.", telugu).Clean())
}

func TestPredicates(t *testing.T) {
	assert.True(t, Must("కనక", telugu).IsPalindrome())
	assert.True(t, Must("madam", english).IsPalindrome())
	assert.False(t, Must("తెలుగు", telugu).IsPalindrome())
	//
	assert.True(t, Must("listen", english).IsAnagramOf(Must("silent", english)))
	assert.False(t, Must("listen", english).IsAnagramOf(Must("listens", english)))
	assert.True(t, Must("తెలుగు", telugu).IsAnagramOf(Must("గుతెలు", telugu)))
	//
	assert.True(t, Must("tenet", english).CanMake(Must("ten", english)))
	assert.False(t, Must("tent", english).CanMake(Must("tenet", english)))
	assert.True(t, Must("tenet", english).CanMakeAll(Must("net", english), Must("tee", english)))
	assert.False(t, Must("tenet", english).CanMakeAll(Must("net", english), Must("nun", english)))
	//
	assert.True(t, Must("cat", english).IsLadderOf(Must("cot", english)))
	assert.False(t, Must("cat", english).IsLadderOf(Must("cat", english)))
	assert.False(t, Must("cat", english).IsLadderOf(Must("dog", english)))
	assert.False(t, Must("cat", english).IsLadderOf(Must("cats", english)))
	//
	assert.True(t, Must("era", english).IsHeadAndTailOf(Must("ate", english)))
	assert.False(t, Must("era", english).IsHeadAndTailOf(Must("tea", english)))
	assert.False(t, Must("", english).IsHeadAndTailOf(Must("a", english)))
}

func TestIntersections(t *testing.T) {
	hello, world := Must("hello", english), Must("world", english)
	assert.Equal(t, 3, hello.IntersectingRank(world))
	assert.True(t, hello.Intersects(world))
	assert.False(t, hello.Intersects(Must("xyz", english)))
	assert.Equal(t, lchar.Sequence{"l", "o"}, hello.UniqueIntersecting(world))
	assert.Equal(t, lchar.Sequence{"h", "l", "o"}, hello.UniqueIntersecting(world, Must("hi", english)))
	assert.Equal(t, 2, hello.UniqueIntersectingRank(world))
	assert.Equal(t, 0, hello.UniqueIntersectingRank())
}

func TestComparison(t *testing.T) {
	a, b := Must("apple", english), Must("Apple", english)
	assert.Equal(t, 1, a.Compare(b))
	assert.Equal(t, 0, a.CompareFold(b))
	assert.Equal(t, -1, b.Compare(a))
	assert.True(t, a.Equals(Must("apple", english)))
	assert.False(t, a.Equals(b))
	assert.True(t, Must("తెలుగు", telugu).ReverseEquals(Must("గులుతె", telugu)))
}
