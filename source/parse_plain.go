package source

import (
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

func parsePlain(r io.Reader, maybeEnc encoding.Encoding) ([]string, error) {
	// A byte order mark always wins, and otherwise we use the declared
	// encoding if there is one or assume UTF-8 if not.
	fallback := maybeEnc
	if fallback == nil {
		fallback = unicode.UTF8
	}
	dec := unicode.BOMOverride(fallback.NewDecoder())

	src, err := ioutil.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return nil, fmt.Errorf("failed to decode text: %w", err)
	}
	// Each line is its own passage, so that a list of short phrases without
	// terminal punctuation doesn't run together into one long sentence.
	return strings.Split(string(src), "\n"), nil
}
