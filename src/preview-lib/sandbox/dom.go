package sandbox

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/siteweaver/weaver/src/preview-lib/instrument"
)

// findElement returns the first element matching a minimal selector:
// "#id" by identity, ".class" by class token, anything else by tag name.
// Traversal is depth-first in document order.
func findElement(root *html.Node, target string) *html.Node {
	var match func(n *html.Node) bool
	switch {
	case strings.HasPrefix(target, "#"):
		id := target[1:]
		match = func(n *html.Node) bool { return getAttr(n, "id") == id }
	case strings.HasPrefix(target, "."):
		class := target[1:]
		match = func(n *html.Node) bool { return hasClass(n, class) }
	default:
		tag := strings.ToLower(target)
		match = func(n *html.Node) bool { return n.Data == tag }
	}

	var walk func(n *html.Node) *html.Node
	walk = func(n *html.Node) *html.Node {
		if n.Type == html.ElementNode && match(n) {
			return n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if found := walk(c); found != nil {
				return found
			}
		}
		return nil
	}
	return walk(root)
}

// findByIdentity returns the element whose id attribute equals identity.
func findByIdentity(root *html.Node, identity string) *html.Node {
	if identity == "" {
		return nil
	}
	return findElement(root, "#"+identity)
}

// documentElement returns the <html> element of a parsed document.
func documentElement(doc *html.Node) *html.Node {
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "html" {
			return c
		}
	}
	return nil
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

func hasClass(n *html.Node, class string) bool {
	for _, token := range strings.Fields(getAttr(n, "class")) {
		if token == class {
			return true
		}
	}
	return false
}

// addMarker appends the selection marker to the node's class attribute.
func addMarker(n *html.Node) {
	classes := getAttr(n, "class")
	if hasClass(n, instrument.MarkerClass) {
		return
	}
	setAttr(n, "class", strings.TrimSpace(classes+" "+instrument.MarkerClass))
}

// removeMarker strips the selection marker; an emptied class attribute is
// dropped entirely so serialization matches the pre-selection document.
func removeMarker(n *html.Node) {
	if !hasClass(n, instrument.MarkerClass) {
		return
	}
	kept := make([]string, 0, 4)
	for _, token := range strings.Fields(getAttr(n, "class")) {
		if token != instrument.MarkerClass {
			kept = append(kept, token)
		}
	}
	if len(kept) == 0 {
		removeAttr(n, "class")
		return
	}
	setAttr(n, "class", strings.Join(kept, " "))
}

// stripMarkerToken removes the marker token from a raw class string.
func stripMarkerToken(classes string) string {
	kept := make([]string, 0, 4)
	for _, token := range strings.Fields(classes) {
		if token != instrument.MarkerClass {
			kept = append(kept, token)
		}
	}
	return strings.Join(kept, " ")
}

// markedNodes collects every element currently carrying the marker.
func markedNodes(root *html.Node) []*html.Node {
	var found []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, instrument.MarkerClass) {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return found
}

// innerText approximates the rendered text of a node: concatenated text
// descendants with whitespace runs collapsed, script and style excluded.
func innerText(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

// setText replaces the node's children with a single text node.
func setText(n *html.Node, text string) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// truncate cuts s to at most limit bytes, backing off to the previous rune
// boundary so the result stays valid UTF-8.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
