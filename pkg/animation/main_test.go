package animation

import (
	"html/template"
	"io"
	"log/slog"
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// cell is a rendered grid element as seen by a browser.
type cell struct {
	ID    string
	Class string
	Text  string
}

// setupTestAssembler creates an Assembler with the embedded assets and a
// discarding logger. A nil config uses DefaultConfig.
func setupTestAssembler(tb testing.TB, config *Config, sink Sink) *Assembler {
	tb.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a, err := NewAssembler(logger, config, DefaultAssets(), sink)
	if err != nil {
		tb.Fatalf("NewAssembler failed: %v", err)
	}
	return a
}

// parseCells parses a fragment and returns every "elem" div in document order.
func parseCells(tb testing.TB, fragment template.HTML) []cell {
	tb.Helper()
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(string(fragment)), body)
	if err != nil {
		tb.Fatalf("failed to parse fragment: %v", err)
	}

	var cells []cell
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Div {
			c := cell{ID: attr(n, "id"), Class: attr(n, "class")}
			if containsString(strings.Fields(c.Class), "elem") {
				c.Text = textOf(n)
				cells = append(cells, c)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return cells
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.TextNode {
			sb.WriteString(child.Data)
		}
	}
	return sb.String()
}

func containsString(slice []string, s string) bool {
	for _, item := range slice {
		if item == s {
			return true
		}
	}
	return false
}

// texts returns the text of every cell.
func texts(cells []cell) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.Text
	}
	return out
}

// boxIDs returns the ids of all boxed cells.
func boxIDs(cells []cell) []string {
	var ids []string
	for _, c := range cells {
		if containsString(strings.Fields(c.Class), "box") {
			ids = append(ids, c.ID)
		}
	}
	return ids
}
