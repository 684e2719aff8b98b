package render

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var voidElements = map[string]bool{"img": true, "br": true, "hr": true}

var (
	previewPolicyOnce sync.Once
	previewPolicy     *bluemonday.Policy
)

// HTML encodes the tree as an HTML fragment. The output is passed through a
// sanitizer that only admits the elements and attributes renderers emit, so
// user-supplied links and image URLs cannot smuggle script.
func HTML(n *Node) string {
	var b strings.Builder
	encodeHTMLNode(&b, n)
	return previewSanitizer().Sanitize(b.String())
}

func encodeHTMLNode(b *strings.Builder, n *Node) {
	if n == nil {
		return
	}
	if n.IsText {
		b.WriteString(html.EscapeString(n.Text))
		return
	}
	b.WriteByte('<')
	b.WriteString(n.Tag)
	for _, a := range n.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a.Value))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	if voidElements[n.Tag] {
		return
	}
	for _, child := range n.Children {
		encodeHTMLNode(b, child)
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
}

func previewSanitizer() *bluemonday.Policy {
	previewPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"div", "header", "main", "aside", "section", "h1", "h2", "h3",
			"p", "span", "ul", "li", "a", "img",
		)
		policy.AllowAttrs("class").Globally()
		policy.AllowDataAttributes()
		policy.AllowAttrs("href").OnElements("a")
		policy.AllowAttrs("src", "alt").OnElements("img")
		policy.AllowURLSchemes("http", "https", "mailto")
		policy.RequireParseableURLs(true)
		previewPolicy = policy
	})
	return previewPolicy
}

// NoPreview is shown when no renderer can be resolved.
func NoPreview() *Node {
	return section("div", "cv-no-preview", "no-preview", textEl("p", "", "No preview available"))
}
