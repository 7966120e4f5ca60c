package nlp

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Word is a single token along with its Penn Treebank part-of-speech tag.
// Unlike a lot of text processing, the original case of the text is
// retained because it becomes part of the training examples we produce.
type Word struct {
	Tag  string
	Text string
}

func MakeWord(tag, text string) Word {
	return Word{tag, norm.NFC.String(text)}
}

func (w Word) GoString() string {
	return fmt.Sprintf("nlp.MakeWord(%q, %q)", w.Tag, w.Text)
}

func (w Word) IsNoun() bool {
	switch w.Tag {
	case "NN", "NNS", "NNP", "NNPS":
		return true
	default:
		return false
	}
}

func (w Word) IsVerb() bool {
	return strings.HasPrefix(w.Tag, "VB")
}

func (w Word) IsPronoun() bool {
	return w.Tag == "PRP"
}

// IsDeterminer returns true for words that can introduce a noun phrase
// without themselves carrying any meaning, like "the" or "my".
func (w Word) IsDeterminer() bool {
	switch w.Tag {
	case "DT", "PDT", "PRP$", "WP$":
		return true
	default:
		return false
	}
}

// IsModifier returns true for words that can appear within a noun phrase
// between any determiners and the head noun.
func (w Word) IsModifier() bool {
	switch w.Tag {
	case "JJ", "JJR", "JJS", "CD", "POS":
		return true
	default:
		return w.IsNoun()
	}
}

type Sentence []Word

func (s Sentence) String() string {
	var ret strings.Builder
	for i, w := range s {
		if i > 0 {
			// We'll probably want to insert a space, but there are some
			// exceptions.
			prev := s[i-1]
			switch {
			case w.Tag == "." || w.Tag == "," || w.Tag == ":" || w.Tag == ")" || w.Tag == "''" || w.Tag == "POS":
			case prev.Tag == "(" || prev.Tag == "``" || prev.Tag == "$":
			case strings.HasPrefix(w.Text, "'"):
			default:
				// In all other cases we insert a space.
				ret.WriteByte(' ')
			}
		}
		ret.WriteString(w.Text)
	}
	return ret.String()
}

// StringTagged is like String but includes the tag of each word, which is
// useful when debugging the extraction heuristics.
func (s Sentence) StringTagged() string {
	var ret strings.Builder
	for i, w := range s {
		if i > 0 {
			ret.WriteByte(' ')
		}
		ret.WriteString(w.Text)
		ret.WriteByte('/')
		ret.WriteString(w.Tag)
	}
	return ret.String()
}
