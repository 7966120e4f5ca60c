package nlp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// tagged builds a sentence from space-separated word/TAG pairs.
func tagged(src string) Sentence {
	fields := strings.Fields(src)
	ret := make(Sentence, len(fields))
	for i, f := range fields {
		slash := strings.LastIndexByte(f, '/')
		ret[i] = MakeWord(f[slash+1:], f[:slash])
	}
	return ret
}

func phraseStrings(ss []Sentence) []string {
	ret := make([]string, len(ss))
	for i, s := range ss {
		ret[i] = s.String()
	}
	return ret
}

func TestNounPhrases(t *testing.T) {
	tests := []struct {
		sentence string
		pronouns bool
		want     []string
	}{
		{
			"Book/VB a/DT flight/NN to/TO Paris/NNP ./.",
			true,
			[]string{"a flight", "Paris"},
		},
		{
			// The tagger often mistakes an imperative verb for a noun.
			"Book/NN a/DT flight/NN to/TO Paris/NNP ./.",
			true,
			[]string{"a flight", "Paris"},
		},
		{
			"I/PRP want/VBP a/DT window/NN seat/NN ./.",
			true,
			[]string{"I", "a window seat"},
		},
		{
			"I/PRP want/VBP a/DT window/NN seat/NN ./.",
			false,
			[]string{"a window seat"},
		},
		{
			"The/DT two/CD big/JJ dogs/NNS chased/VBD John/NNP 's/POS cat/NN",
			true,
			[]string{"The two big dogs", "John's cat"},
		},
		{
			"This/DT is/VBZ very/RB good/JJ ./.",
			true,
			nil,
		},
		{
			"The/DT dog/NN 's/POS",
			true,
			[]string{"The dog"},
		},
	}
	for _, test := range tests {
		got := phraseStrings(NounPhrases(tagged(test.sentence), test.pronouns))
		if test.want == nil {
			assert.Empty(t, got, "sentence %s", test.sentence)
			continue
		}
		assert.Equal(t, test.want, got, "sentence %s", test.sentence)
	}
}

func TestRootObject(t *testing.T) {
	tests := []struct {
		sentence string
		want     Pair
		ok       bool
	}{
		{"Book/VB a/DT flight/NN to/TO Paris/NNP ./.", Pair{"Book", "flight"}, true},
		{"Book/NN a/DT flight/NN to/TO Paris/NNP ./.", Pair{"Book", "flight"}, true},
		{"Book/NNP a/DT flight/NN ./.", Pair{"Book", "flight"}, true},
		{"I/PRP want/VBP a/DT window/NN seat/NN ./.", Pair{"want", "seat"}, true},
		{"I/PRP would/MD really/RB have/VB liked/VBN some/DT tea/NN", Pair{"liked", "tea"}, true},
		{"Please/UH pick/VB up/RP the/DT kids/NNS", Pair{"pick", "kids"}, true},
		{"Book/VB me/PRP a/DT taxi/NN", Pair{"Book", "taxi"}, true},
		{"We/PRP fly/VBP to/TO Paris/NNP", Pair{}, false},
		{"I/PRP want/VBP to/TO leave/VB", Pair{}, false},
		{"The/DT weather/NN ./.", Pair{}, false},
		{"I/PRP want/VBP it/PRP", Pair{}, false},
		{"", Pair{}, false},
	}
	for _, test := range tests {
		got, ok := RootObject(tagged(test.sentence))
		assert.Equal(t, test.ok, ok, "sentence %s", test.sentence)
		assert.Equal(t, test.want, got, "sentence %s", test.sentence)
	}
}

func TestSentenceString(t *testing.T) {
	s := tagged("Hello/UH ,/, world/NN ./.")
	assert.Equal(t, "Hello, world.", s.String())
	assert.Equal(t, "Hello/UH ,/, world/NN ./.", s.StringTagged())
}

func TestPairWords(t *testing.T) {
	assert.Equal(t, []string{"Book", "flight"}, Pair{"Book", "flight"}.Words())
}

func TestRootObject_MistaggedImperative(t *testing.T) {
	got, ok := RootObject(tagged("Reserve/JJ a/DT table/NN"))
	assert.True(t, ok)
	assert.Equal(t, Pair{"Reserve", "table"}, got)
}
