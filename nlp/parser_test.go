package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bookingText = "Book a flight to Paris. I want a window seat."

func TestProseParser_SegmentSentences(t *testing.T) {
	p := NewProseParser()

	got, err := p.SegmentSentences(bookingText)
	require.NoError(t, err)
	assert.Equal(t, []string{"Book a flight to Paris.", "I want a window seat."}, got)
}

func TestProseParser_ExtractNounPhrases(t *testing.T) {
	p := NewProseParser()

	got, err := p.ExtractNounPhrases(bookingText)
	require.NoError(t, err)
	assert.Contains(t, got, "a flight")
	assert.Contains(t, got, "Paris")
	assert.Contains(t, got, "a window seat")
}

func TestProseParser_ExtractRootObjectPairs(t *testing.T) {
	p := NewProseParser()

	got, err := p.ExtractRootObjectPairs(bookingText)
	require.NoError(t, err)
	assert.Contains(t, got, Pair{"Book", "flight"})
	assert.Contains(t, got, Pair{"want", "seat"})
}

func TestProseParser_Empty(t *testing.T) {
	p := NewProseParser()

	phrases, err := p.ExtractNounPhrases("")
	require.NoError(t, err)
	assert.Empty(t, phrases)

	pairs, err := p.ExtractRootObjectPairs("")
	require.NoError(t, err)
	assert.Empty(t, pairs)
}
