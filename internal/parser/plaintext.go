package parser

import (
	"strings"

	"studyaid/internal/domain"
)

// ParsePlainText classifies raw text line by line into renderable nodes.
// Each line is matched against literal prefixes in priority order: "# "
// heading, "## " sub-heading, "- " list item, all-whitespace paragraph
// break, anything else a paragraph. The classifier carries no cross-line
// state and emits exactly one node per input line, in order.
func ParsePlainText(raw string) []domain.TextNode {
	lines := strings.Split(raw, "\n")
	nodes := make([]domain.TextNode, 0, len(lines))
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "# "):
			nodes = append(nodes, domain.TextNode{Kind: domain.NodeHeading, Text: strings.TrimPrefix(line, "# ")})
		case strings.HasPrefix(line, "## "):
			nodes = append(nodes, domain.TextNode{Kind: domain.NodeSubHeading, Text: strings.TrimPrefix(line, "## ")})
		case strings.HasPrefix(line, "- "):
			nodes = append(nodes, domain.TextNode{Kind: domain.NodeListItem, Text: strings.TrimPrefix(line, "- ")})
		case strings.TrimSpace(line) == "":
			nodes = append(nodes, domain.TextNode{Kind: domain.NodeBreak})
		default:
			nodes = append(nodes, domain.TextNode{Kind: domain.NodeParagraph, Text: line})
		}
	}
	return nodes
}
