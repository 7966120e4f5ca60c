// Package source extracts passages of prose from the various kinds of
// document that training examples can be harvested from.
package source

import (
	"io"
	"strings"
)

// ReadPassages attempts to extract passages of prose text from the given
// byte stream by interpreting it as one of a number of text formats:
//
//     - Plain text
//     - HTML
//     - RSS or Atom with HTML body text
//     - Markdown
//     - MegaHAL training files
//     - JSON arrays of strings
//
// It uses the given optional filename and mediaType to guess which parser to
// use. If both are given, the mediaType has precedence. If neither
// identifies a known format then the input is read as plain text.
func ReadPassages(r io.Reader, filename, mediaType string) ([]string, error) {
	format, mimeEnc := selectFormat(filename, mediaType)
	if format == formatUnknown {
		format = formatPlain
	}
	debugf("reading %q as %s", filename, format)

	passages, err := parseSource(r, format, mimeEnc)
	if err != nil {
		return nil, err
	}
	ret := passages[:0]
	for _, p := range passages {
		p = collapseSpace(p)
		if p != "" {
			ret = append(ret, p)
		}
	}
	return ret, nil
}

// collapseSpace replaces each run of whitespace with a single space and
// trims any from the start and end.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
