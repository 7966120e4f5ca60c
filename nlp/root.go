package nlp

// RootObject finds the root verb of the given sentence and the head noun of
// its direct object, if it has both.
//
// This is a heuristic standing in for a dependency parse. The root is the
// main verb of the first verb group, except that a sentence beginning with
// a base-form verb, or with any word directly followed by a determiner, is
// taken to be an imperative rooted at its first word: "Book a flight" is
// often tagged as if "Book" were a noun. The direct object is the head of
// the first noun-headed phrase following the root with only adverbs,
// particles or personal pronouns between them. A pronoun there is an
// indirect object, like "me" in "book me a taxi", and is never itself the
// result. "book a flight" yields an object but "fly to Paris" does not.
func RootObject(s Sentence) (Pair, bool) {
	root := rootIndex(s)
	if root < 0 {
		debugf("no root verb in %q", s)
		return Pair{}, false
	}
	spans := nounPhraseSpans(s, root, false)

	for k := root + 1; k < len(s); k++ {
		w := s[k]
		if w.Tag == "RB" || w.Tag == "RP" || w.IsPronoun() {
			continue
		}
		for _, sp := range spans {
			if sp.start != k {
				continue
			}
			pair := Pair{
				Verb:   s[root].Text,
				Object: s[sp.end-1].Text,
			}
			debugf("root %q has object %q", pair.Verb, pair.Object)
			return pair, true
		}
		break
	}
	debugf("root %q has no direct object", s[root].Text)
	return Pair{}, false
}

// rootIndex returns the index of the word that heads the given sentence,
// or -1 if no suitable word is present.
func rootIndex(s Sentence) int {
	if len(s) == 0 {
		return -1
	}
	if s[0].Tag == "VB" {
		return 0
	}
	if len(s) > 1 && (s[0].IsNoun() || s[0].IsVerb() || s[0].Tag == "JJ") && s[1].IsDeterminer() {
		return 0
	}

	for i := 0; i < len(s); i++ {
		if !s[i].IsVerb() && s[i].Tag != "MD" {
			continue
		}
		// Auxiliaries, modals and adverbs can precede the main verb in a
		// verb group, as in "I would really have liked", so the last verb
		// in the group wins.
		root := -1
		j := i
	Group:
		for ; j < len(s); j++ {
			switch {
			case s[j].IsVerb():
				root = j
			case s[j].Tag == "MD" || s[j].Tag == "RB":
			default:
				break Group
			}
		}
		if root >= 0 {
			return root
		}
		i = j
	}
	return -1
}
