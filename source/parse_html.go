package source

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	htmla "golang.org/x/net/html/atom"
)

func parseHTML(r io.Reader) ([]string, error) {
	node, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return extractHTMLNode(node), nil
}

func parseHTMLFragment(r io.Reader) ([]string, error) {
	nodes, err := html.ParseFragment(r, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	if anyHTMLNodesAreText(nodes) {
		// If we have direct text nodes at our root then that suggests
		// we're already inside a prose content element and so we'll
		// just slurp up all our text content.
		return []string{extractHTMLNodesTextContent(nodes)}, nil
	}
	var ret []string
	for _, node := range nodes {
		ret = append(ret, extractHTMLNode(node)...)
	}
	return ret, nil
}

func extractHTMLNode(node *html.Node) []string {
	switch node.Type {
	case html.DocumentNode:
		return extractHTMLNodeChildren(node)
	case html.ElementNode:
		// What we'll do here depends on the element type:
		// - Some are considered effectively leaf elements that can't possibly
		//   contain any content, even recursively.
		// - Some are considered to be content containers, where all of the
		//   text nested inside becomes one passage.
		// - For everything else we'll recursively visit child elements but
		//   ignore any direct-child text nodes.
		if isLeafHTMLElement(node) {
			return nil
		}
		switch node.DataAtom {
		case htmla.P, htmla.Li, htmla.H1, htmla.H2, htmla.H3, htmla.H4, htmla.H5, htmla.H6:
			return []string{extractHTMLNodesTextContent([]*html.Node{node})}
		default:
			return extractHTMLNodeChildren(node)
		}
	}
	return nil
}

func extractHTMLNodeChildren(node *html.Node) []string {
	var ret []string
	node = node.FirstChild
	for node != nil {
		ret = append(ret, extractHTMLNode(node)...)
		node = node.NextSibling
	}
	return ret
}

func extractHTMLNodesTextContent(nodes []*html.Node) string {
	var buf strings.Builder
	for i, node := range nodes {
		if i > 0 {
			buf.WriteByte(' ')
		}
		appendHTMLNodeTextContent(node, &buf)
	}
	return buf.String()
}

func appendHTMLNodeTextContent(node *html.Node, buf *strings.Builder) {
	if isLeafHTMLElement(node) {
		return
	}
	switch node.Type {
	case html.TextNode:
		// Whitespace between inline elements is already in the text nodes.
		buf.WriteString(node.Data)
	case html.ElementNode:
		if node.DataAtom == htmla.Br {
			buf.WriteByte(' ')
			return
		}
		c := node.FirstChild
		for c != nil {
			appendHTMLNodeTextContent(c, buf)
			c = c.NextSibling
		}
	}
}

func isLeafHTMLElement(node *html.Node) bool {
	if node.Type != html.ElementNode {
		return false
	}
	switch node.DataAtom {
	case htmla.Script, htmla.Style, htmla.Frameset, htmla.Frame, htmla.Applet, htmla.Object, htmla.Form, htmla.Label, htmla.Pre, htmla.Plaintext, htmla.Listing, htmla.Menu, htmla.Table, htmla.Td, htmla.Tr, htmla.Th, htmla.Map, htmla.Noframes, htmla.Iframe, htmla.Picture, htmla.Img, htmla.Canvas, htmla.Svg, htmla.Video, htmla.Audio, htmla.Blockquote, htmla.Nav, htmla.Figure:
		// Skip leaf elements entirely; these are unlikely to contain prose content
		return true
	default:
		return false
	}
}

func anyHTMLNodesAreText(nodes []*html.Node) bool {
	for _, node := range nodes {
		if node.Type == html.TextNode {
			return true
		}
	}
	return false
}
