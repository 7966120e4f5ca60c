package rasa

import (
	"strings"
)

// TrainingSet is the top-level structure of a Rasa NLU JSON training file.
//
// Properties of the file that this package doesn't interpret, at any level,
// are retained when a training set is loaded and written back out again
// when it is saved, so merging into an existing file never loses them.
type TrainingSet struct {
	NLUData NLUData

	extra members
}

// NLUData is the body of a training file. Only CommonExamples is interpreted
// by this package; other sections such as "regex_features" or the legacy
// "intent_examples" are carried through verbatim.
type NLUData struct {
	CommonExamples []Example

	extra members
}

// Example is a single labeled training record. Examples produced by this
// package populate either Text or Intent, never both.
type Example struct {
	Text     string
	Intent   string
	Entities []Entity

	extra members
}

// Entity is an annotated span within an example's text.
type Entity struct {
	Start  int
	End    int
	Value  string
	Entity string

	extra members
}

// NewTrainingSet returns an empty training set, ready to have examples
// added to it.
func NewTrainingSet() *TrainingSet {
	return &TrainingSet{
		NLUData: NLUData{
			CommonExamples: []Example{},
		},
	}
}

// Examples returns the examples in the set, in insertion order. The result
// shares its backing array with the set and so must not be modified.
func (ts *TrainingSet) Examples() []Example {
	return ts.NLUData.CommonExamples
}

// HasText returns true if any example in the set has exactly the given text.
func (ts *TrainingSet) HasText(text string) bool {
	for _, ex := range ts.NLUData.CommonExamples {
		if ex.Text == text {
			return true
		}
	}
	return false
}

// HasIntent returns true if any example in the set has exactly the given
// intent label.
func (ts *TrainingSet) HasIntent(intent string) bool {
	for _, ex := range ts.NLUData.CommonExamples {
		if ex.Intent == intent {
			return true
		}
	}
	return false
}

// AddUtterance appends an utterance example for the given phrase unless an
// example with exactly the same text is already present. The comparison is
// case-sensitive and the phrase is stored as given.
//
// The result is true if a new example was appended.
func (ts *TrainingSet) AddUtterance(phrase string) bool {
	if ts.HasText(phrase) {
		debugf("utterance %q already present", phrase)
		return false
	}
	ts.NLUData.CommonExamples = append(ts.NLUData.CommonExamples, Example{
		Text:     phrase,
		Entities: []Entity{},
	})
	debugf("added utterance %q", phrase)
	return true
}

// AddIntentCandidate appends an intent example whose label is derived from
// the given words using IntentLabel, unless an example already carries that
// label. An empty word list adds nothing.
//
// The result is true if a new example was appended.
func (ts *TrainingSet) AddIntentCandidate(words []string) bool {
	if len(words) == 0 {
		return false
	}
	label := IntentLabel(words)
	if ts.HasIntent(label) {
		debugf("intent %q already present", label)
		return false
	}
	ts.NLUData.CommonExamples = append(ts.NLUData.CommonExamples, Example{
		Intent:   label,
		Entities: []Entity{},
	})
	debugf("added intent %q", label)
	return true
}

// IntentLabel produces a machine-readable intent name from a sequence of
// words by lowercasing each of them and joining them with underscores.
func IntentLabel(words []string) string {
	lower := make([]string, len(words))
	for i, w := range words {
		lower[i] = strings.ToLower(w)
	}
	return strings.Join(lower, "_")
}

// normalize fills in the empty-but-present fields that a hand-edited file
// might have omitted, so that they serialize as empty arrays rather than
// null.
func (ts *TrainingSet) normalize() {
	if ts.NLUData.CommonExamples == nil {
		ts.NLUData.CommonExamples = []Example{}
	}
	for i := range ts.NLUData.CommonExamples {
		if ts.NLUData.CommonExamples[i].Entities == nil {
			ts.NLUData.CommonExamples[i].Entities = []Entity{}
		}
	}
}
