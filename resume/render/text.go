package render

import "strings"

var blockElements = map[string]bool{
	"div": true, "header": true, "main": true, "aside": true, "section": true,
	"h1": true, "h2": true, "h3": true, "p": true, "ul": true, "li": true,
}

// Text renders the tree as plain text: one line per block element, list
// items prefixed with "- ".
func Text(n *Node) string {
	var lines []string
	var cur strings.Builder
	flush := func() {
		if line := strings.TrimSpace(cur.String()); line != "" {
			lines = append(lines, line)
		}
		cur.Reset()
	}
	var visit func(*Node)
	visit = func(node *Node) {
		if node == nil {
			return
		}
		if node.IsText {
			cur.WriteString(node.Text)
			return
		}
		block := blockElements[node.Tag]
		if block {
			flush()
		}
		if node.Tag == "li" {
			cur.WriteString("- ")
		}
		if node.Tag == "span" && cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		for _, child := range node.Children {
			visit(child)
		}
		if block {
			flush()
		}
	}
	visit(n)
	flush()
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
