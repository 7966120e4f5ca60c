package nlp

import (
	"strings"

	"gopkg.in/jdkato/prose.v2"
)

// Parser is the natural-language capability that training examples are
// harvested from. Each method takes a whole document of raw text.
type Parser interface {
	// SegmentSentences splits the text into its sentences.
	SegmentSentences(text string) ([]string, error)

	// ExtractNounPhrases returns the surface text of each noun phrase in
	// the text, in document order. The same phrase may appear more than once.
	ExtractNounPhrases(text string) ([]string, error)

	// ExtractRootObjectPairs returns at most one verb/object pair per
	// sentence, in document order.
	ExtractRootObjectPairs(text string) ([]Pair, error)
}

// Pair is a sentence's root verb along with the head word of its direct
// object.
type Pair struct {
	Verb   string
	Object string
}

// Words returns the verb and then the object, ready to be turned into an
// intent label.
func (p Pair) Words() []string {
	return []string{p.Verb, p.Object}
}

// ProseParser is a Parser that tokenizes, segments and tags text using
// the prose library and then applies the heuristics in this package to
// the tagged words.
type ProseParser struct {
	// IncludePronouns causes lone personal pronouns, like "I" or "them",
	// to be returned as noun phrases.
	IncludePronouns bool
}

var _ Parser = (*ProseParser)(nil)

// NewProseParser returns a ProseParser with the default settings.
func NewProseParser() *ProseParser {
	return &ProseParser{
		IncludePronouns: true,
	}
}

func (p *ProseParser) SegmentSentences(text string) ([]string, error) {
	doc, err := prose.NewDocument(text, prose.WithTagging(false), prose.WithExtraction(false))
	if err != nil {
		return nil, err
	}
	sents := doc.Sentences()
	ret := make([]string, 0, len(sents))
	for _, s := range sents {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		ret = append(ret, text)
	}
	return ret, nil
}

func (p *ProseParser) ExtractNounPhrases(text string) ([]string, error) {
	sentences, err := ParseText(text)
	if err != nil {
		return nil, err
	}
	var ret []string
	for _, s := range sentences {
		for _, np := range NounPhrases(s, p.IncludePronouns) {
			ret = append(ret, np.String())
		}
	}
	return ret, nil
}

func (p *ProseParser) ExtractRootObjectPairs(text string) ([]Pair, error) {
	sentences, err := ParseText(text)
	if err != nil {
		return nil, err
	}
	var ret []Pair
	for _, s := range sentences {
		if pair, ok := RootObject(s); ok {
			ret = append(ret, pair)
		}
	}
	return ret, nil
}

// ParseText segments the given text into sentences and tags each word in
// each of them.
func ParseText(text string) ([]Sentence, error) {
	whole, err := prose.NewDocument(text, prose.WithTagging(false), prose.WithExtraction(false))
	if err != nil {
		return nil, err
	}
	sents := whole.Sentences()
	sentences := make([]Sentence, 0, len(sents))
	for _, s := range sents {
		sDoc, err := prose.NewDocument(s.Text, prose.WithSegmentation(false), prose.WithExtraction(false))
		if err != nil {
			return nil, err
		}
		toks := sDoc.Tokens()
		if len(toks) == 0 {
			continue
		}
		sentence := make(Sentence, len(toks))
		for i, token := range toks {
			sentence[i] = MakeWord(token.Tag, token.Text)
		}
		debugf("tagged: %s", sentence.StringTagged())
		sentences = append(sentences, sentence)
	}
	return sentences, nil
}
