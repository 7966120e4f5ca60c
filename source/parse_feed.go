package source

import (
	"fmt"
	"io"
	"strings"

	"github.com/mmcdole/gofeed"
)

func parseFeed(r io.Reader) ([]string, error) {
	parser := gofeed.NewParser()
	feed, err := parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing feed: %w", err)
	}

	var ret []string
	for _, item := range feed.Items {
		ret = append(ret, item.Title)

		// Feed bodies are HTML fragments, and we'll tolerate them being
		// malformed since one bad item shouldn't spoil the whole feed.
		ps, _ := parseHTMLFragment(strings.NewReader(item.Content))
		ret = append(ret, ps...)

		ps, _ = parseHTMLFragment(strings.NewReader(item.Description))
		ret = append(ret, ps...)
	}
	return ret, nil
}
