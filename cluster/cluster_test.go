package cluster

import (
	"errors"
	"strings"
	"testing"

	"github.com/indicwp/lchar"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestSplitTelugu(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	chars, err := Split("తెలుగు")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if chars.Len() != 3 {
		t.Fatalf("expected 3 logical characters, have %d: %v", chars.Len(), chars)
	}
	expected := []string{"తె", "లు", "గు"}
	for i, c := range chars {
		if c.Text != expected[i] {
			t.Errorf("expected logical character #%d to be %q, is %q", i, expected[i], c.Text)
		}
		if string(c.CodePoints) != c.Text {
			t.Errorf("decomposition of #%d out of sync: %U vs %q", i, c.CodePoints, c.Text)
		}
	}
	if chars.CodePointCount() != 6 {
		t.Errorf("expected 6 code-points, have %d", chars.CodePointCount())
	}
}

func TestSplitNormalizes(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	chars := MustSplit("e\u0301") // e + COMBINING ACUTE ACCENT
	if chars.Len() != 1 || len(chars[0].CodePoints) != 1 || chars[0].CodePoints[0] != 0x00e9 {
		t.Errorf("expected NFC to compose to U+00E9, have %v", chars)
	}
	chars = MustSplit("\u0c46\u0c56") // TELUGU E + AI LENGTH MARK
	if chars.Len() != 1 || chars[0].Text != "\u0c48" {
		t.Errorf("expected NFC to compose to TELUGU VOWEL SIGN AI, have %v", chars)
	}
	if n := Count("e\u0301x"); n != 2 {
		t.Errorf("expected 2 logical characters, have %d", n)
	}
}

func TestSplitErrors(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if _, err := Split("ab\xffcd"); !errors.Is(err, ErrInvalidText) {
		t.Errorf("expected invalid UTF-8 to be rejected, error is %v", err)
	}
	if _, err := Split(strings.Repeat("a", MaxByteLen+1)); !errors.Is(err, ErrTooLong) {
		t.Errorf("expected long input to be rejected, error is %v", err)
	}
	chars, err := Split("")
	if err != nil || chars.Len() != 0 {
		t.Errorf("expected empty input to yield no logical characters, have %v (err=%v)", chars, err)
	}
}

func TestSplitFeedsStripSymbols(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	chars := MustSplit("తె-లు!గు")
	seq := lchar.StripSymbols(chars).Sequence()
	if !lchar.Equal(seq, lchar.Sequence{"తె", "లు", "గు"}) {
		t.Errorf("expected symbols to be stripped, have %q", seq)
	}
	seq, _ = Sequence("తెలుగు")
	if r := lchar.Join(lchar.Reverse(seq), ""); r != "గులుతె" {
		t.Errorf("expected clusters to be reversed as units, have %q", r)
	}
}

func TestWords(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	words := Words("Hello,  world")
	expected := []string{"Hello", ",", "world"}
	if len(words) != len(expected) {
		t.Fatalf("expected %v, have %q", expected, words)
	}
	for i := range words {
		if words[i] != expected[i] {
			t.Errorf("expected word #%d to be %q, is %q", i, expected[i], words[i])
		}
	}
	words = Words("తెలుగు భాష")
	if len(words) != 2 || words[0] != "తెలుగు" {
		t.Errorf("expected two Telugu words, have %q", words)
	}
	shuffled := ShuffleWords("one two three four")
	if len(shuffled) != 4 {
		t.Errorf("expected 4 shuffled words, have %q", shuffled)
	}
	if len(Words("   ")) != 0 {
		t.Errorf("expected white space to yield no words")
	}
}
