package nlp

// span is a half-open range of word indices within a sentence.
type span struct {
	start, end int
}

// NounPhrases returns the noun phrases in the given sentence, in order.
//
// A noun phrase is any run of determiners followed by a run of adjectives,
// numbers and nouns, cut back so that it ends with a noun. If
// includePronouns is set then a personal pronoun on its own is also a noun
// phrase. The sentence's root word is never part of a noun phrase, even if
// the tagger believed it to be a noun.
func NounPhrases(s Sentence, includePronouns bool) []Sentence {
	spans := nounPhraseSpans(s, rootIndex(s), includePronouns)
	ret := make([]Sentence, len(spans))
	for i, sp := range spans {
		ret[i] = s[sp.start:sp.end]
	}
	return ret
}

func nounPhraseSpans(s Sentence, root int, includePronouns bool) []span {
	var ret []span
	i := 0
	for i < len(s) {
		if i == root {
			i++
			continue
		}
		if s[i].IsPronoun() {
			if includePronouns {
				ret = append(ret, span{i, i + 1})
			}
			i++
			continue
		}

		j := i
		for j < len(s) && j != root && s[j].IsDeterminer() {
			j++
		}
		for j < len(s) && j != root && s[j].IsModifier() {
			j++
		}
		end := j
		for end > i && !s[end-1].IsNoun() {
			end--
		}
		if end == i {
			// No noun in this run, so it isn't a noun phrase.
			i++
			continue
		}
		ret = append(ret, span{i, end})
		i = end
	}
	return ret
}
