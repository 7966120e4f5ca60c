package source

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPassages(t *testing.T) {
	tests := map[string]struct {
		filename  string
		mediaType string
		input     string
		want      []string
	}{
		"plain": {
			"input.txt", "",
			"Book a flight to Paris.\r\nI want a window seat.\n",
			[]string{"Book a flight to Paris.", "I want a window seat."},
		},
		"plain lines without punctuation": {
			"input.txt", "",
			"Book a flight\nReserve a table\n\n  Cancel my   order\n",
			[]string{"Book a flight", "Reserve a table", "Cancel my order"},
		},
		"unknown extension is plain": {
			"notes", "",
			"Book a flight.",
			[]string{"Book a flight."},
		},
		"plain with BOM": {
			"input.txt", "",
			"\ufeffBook a flight.",
			[]string{"Book a flight."},
		},
		"plain latin-1": {
			"", "text/plain; charset=ISO-8859-1",
			"Caf\xe9 au lait.",
			[]string{"Café au lait."},
		},
		"html": {
			"page.html", "",
			`<html><head><title>ignored</title><script>var x = 1;</script></head>
			<body><h1>Travel</h1><p>Book a <b>flight</b> to Paris.</p>
			<ul><li>I want a window seat.</li></ul><table><tr><td>Skipped</td></tr></table></body></html>`,
			[]string{"Travel", "Book a flight to Paris.", "I want a window seat."},
		},
		"markdown": {
			"README.md", "",
			"# Travel\n\nBook a **flight** to\nParis.\n\n- I want a window seat.\n\n```\ncode is skipped\n```\n",
			[]string{"Travel", "Book a flight to Paris.", "I want a window seat."},
		},
		"megahal": {
			"training.trn", "",
			"# a comment\nBook a flight to Paris.\n\nI want a window seat.\n",
			[]string{"Book a flight to Paris.", "I want a window seat."},
		},
		"json": {
			"messages.json", "",
			`["Book a flight to Paris.", "I want a window seat."]`,
			[]string{"Book a flight to Paris.", "I want a window seat."},
		},
		"media type wins": {
			"page.txt", "text/html",
			"<p>Hello</p>",
			[]string{"Hello"},
		},
		"feed": {
			"news.rss", "",
			`<?xml version="1.0"?>
<rss version="2.0"><channel><title>News</title>
<item><title>Flights are cheap</title><description>&lt;p&gt;Book a flight to Paris.&lt;/p&gt;</description></item>
</channel></rss>`,
			[]string{"Flights are cheap", "Book a flight to Paris."},
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ReadPassages(strings.NewReader(test.input), test.filename, test.mediaType)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestReadPassages_Invalid(t *testing.T) {
	tests := map[string]struct {
		filename string
		input    string
	}{
		"json object": {"messages.json", `{"text": "hello"}`},
		"json number": {"messages.json", `[1, 2]`},
		"feed":        {"news.rss", `this is not a feed`},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ReadPassages(strings.NewReader(test.input), test.filename, "")
			assert.Error(t, err)
		})
	}
}

func TestSelectFormat(t *testing.T) {
	tests := []struct {
		filename, mediaType string
		want                fileFormat
	}{
		{"a.htm", "", formatHTML},
		{"a.HTML", "", formatHTML},
		{"a.markdown", "", formatMarkdown},
		{"a.atom", "", formatFeed},
		{"a.trn", "", formatMegaHAL},
		{"a.json", "", formatJSONUtter},
		{"a", "", formatUnknown},
		{"", "", formatUnknown},
		{"a.txt", "text/markdown", formatMarkdown},
		{"a.md", "application/octet-stream", formatMarkdown},
	}
	for _, test := range tests {
		got, _ := selectFormat(test.filename, test.mediaType)
		assert.Equal(t, test.want, got, "filename %q, media type %q", test.filename, test.mediaType)
	}
}
