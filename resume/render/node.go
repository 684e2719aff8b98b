package render

import "strings"

// Attr is one element attribute. Attributes keep insertion order so output
// is deterministic.
type Attr struct {
	Key   string
	Value string
}

// Node is the visual tree a renderer produces. A node is either an element
// (Tag, Attrs, Children) or a text leaf (IsText, Text).
type Node struct {
	Tag      string
	Attrs    []Attr
	Children []*Node
	Text     string
	IsText   bool
}

// SectionAttr marks the root of an addressable section.
const SectionAttr = "data-section"

func el(tag, class string, children ...*Node) *Node {
	n := &Node{Tag: tag}
	if class != "" {
		n.Attrs = append(n.Attrs, Attr{Key: "class", Value: class})
	}
	for _, child := range children {
		if child != nil {
			n.Children = append(n.Children, child)
		}
	}
	return n
}

func txt(s string) *Node {
	return &Node{IsText: true, Text: s}
}

// textEl is an element holding a single text leaf.
func textEl(tag, class, s string) *Node {
	return el(tag, class, txt(s))
}

func (n *Node) set(key, value string) *Node {
	n.Attrs = append(n.Attrs, Attr{Key: key, Value: value})
	return n
}

func section(tag, class, name string, children ...*Node) *Node {
	return el(tag, class, children...).set(SectionAttr, name)
}

func nodes[T any](items []T, build func(T) *Node) []*Node {
	out := make([]*Node, 0, len(items))
	for _, item := range items {
		out = append(out, build(item))
	}
	return out
}

// Attr returns the value of an attribute.
func (n *Node) Attr(key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Walk visits n and its descendants depth first. Returning false from fn
// skips the children of the current node.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		Walk(child, fn)
	}
}

// Section returns the first section with the given name, or nil.
func (n *Node) Section(name string) *Node {
	var match *Node
	Walk(n, func(cur *Node) bool {
		if match != nil {
			return false
		}
		if v, ok := cur.Attr(SectionAttr); ok && v == name {
			match = cur
			return false
		}
		return true
	})
	return match
}

// Sections lists section names in document order.
func (n *Node) Sections() []string {
	var names []string
	Walk(n, func(cur *Node) bool {
		if v, ok := cur.Attr(SectionAttr); ok {
			names = append(names, v)
		}
		return true
	})
	return names
}

// TextContent concatenates every text leaf under n.
func TextContent(n *Node) string {
	var b strings.Builder
	Walk(n, func(cur *Node) bool {
		if cur.IsText {
			b.WriteString(cur.Text)
		}
		return true
	})
	return b.String()
}

// titled prepends a heading to a section body.
func titled(heading *Node, body []*Node) []*Node {
	return append([]*Node{heading}, body...)
}
