// Package harvest extracts candidate training examples from raw text and
// merges them into a training set.
package harvest

import (
	"fmt"
	"strings"

	"github.com/apparentlymart/text2rasa/nlp"
	"github.com/apparentlymart/text2rasa/rasa"
)

// Options customizes which examples Harvest adds.
type Options struct {
	// IncludeSentences adds each whole sentence as an utterance, after the
	// noun phrases and intents.
	IncludeSentences bool

	// SkipPhrases are never added as utterances. They are matched without
	// regard to case.
	SkipPhrases []string
}

// Result summarizes the changes Harvest made to a training set.
type Result struct {
	Utterances []string
	Intents    []string

	// Duplicates counts candidates that were already present in the set,
	// either before this call or from earlier in the same text.
	Duplicates int

	// Skipped counts utterances excluded by Options.SkipPhrases.
	Skipped int
}

// Harvest uses the given parser to find noun phrases and verb/object pairs
// in the text and adds any that are not already present to the training
// set, as utterances and intents respectively.
func Harvest(p nlp.Parser, text string, ts *rasa.TrainingSet, opts Options) (Result, error) {
	var ret Result

	skip := make(map[string]struct{}, len(opts.SkipPhrases))
	for _, phrase := range opts.SkipPhrases {
		skip[strings.ToLower(phrase)] = struct{}{}
	}
	addUtterance := func(phrase string) {
		if _, ok := skip[strings.ToLower(phrase)]; ok {
			ret.Skipped++
			return
		}
		if ts.AddUtterance(phrase) {
			ret.Utterances = append(ret.Utterances, phrase)
		} else {
			ret.Duplicates++
		}
	}

	phrases, err := p.ExtractNounPhrases(text)
	if err != nil {
		return ret, fmt.Errorf("failed to extract noun phrases: %w", err)
	}
	for _, phrase := range phrases {
		addUtterance(phrase)
	}

	pairs, err := p.ExtractRootObjectPairs(text)
	if err != nil {
		return ret, fmt.Errorf("failed to extract verb/object pairs: %w", err)
	}
	for _, pair := range pairs {
		if ts.AddIntentCandidate(pair.Words()) {
			ret.Intents = append(ret.Intents, rasa.IntentLabel(pair.Words()))
		} else {
			ret.Duplicates++
		}
	}

	if opts.IncludeSentences {
		sentences, err := p.SegmentSentences(text)
		if err != nil {
			return ret, fmt.Errorf("failed to segment sentences: %w", err)
		}
		for _, sentence := range sentences {
			addUtterance(sentence)
		}
	}

	return ret, nil
}
