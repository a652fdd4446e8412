// Package render turns the tutor's markdown-with-LaTeX output into styled
// terminal text. The grammar is deliberately small: bold, italics, bullets,
// and $/$$ math spans are what the prompts ask the models to produce.
package render

import (
	"regexp"
	"strings"
)

type Kind int

const (
	KindText Kind = iota
	KindBold
	KindItalic
	KindInlineMath
	KindBlockMath
	KindBullet
	KindBreak
)

// Node is one parsed span. Content is empty for KindBullet and KindBreak.
type Node struct {
	Kind    Kind
	Content string
}

var (
	blockMathRe  = regexp.MustCompile(`(?s)\$\$.*?\$\$`)
	inlineMathRe = regexp.MustCompile(`(?s)\$.*?\$`)
	boldRe       = regexp.MustCompile(`\*\*.*?\*\*`)
	italicRe     = regexp.MustCompile(`\*[^*\n]+\*`)
)

// Parse breaks content into a flat node sequence. Block math is extracted
// first so $$ spans are never misread as two inline spans.
func Parse(content string) []Node {
	var nodes []Node
	for _, part := range splitMatches(content, blockMathRe) {
		if strings.HasPrefix(part, "$$") && strings.HasSuffix(part, "$$") && len(part) > 4 {
			nodes = append(nodes, Node{Kind: KindBlockMath, Content: strings.TrimSpace(part[2 : len(part)-2])})
			continue
		}
		nodes = append(nodes, parseInline(part)...)
	}
	return nodes
}

func parseInline(text string) []Node {
	var nodes []Node
	for _, part := range splitMatches(text, inlineMathRe) {
		if strings.HasPrefix(part, "$") && strings.HasSuffix(part, "$") && len(part) > 2 {
			nodes = append(nodes, Node{Kind: KindInlineMath, Content: part[1 : len(part)-1]})
			continue
		}
		nodes = append(nodes, parseText(part)...)
	}
	return nodes
}

func parseText(text string) []Node {
	var nodes []Node
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i > 0 {
			nodes = append(nodes, Node{Kind: KindBreak})
		}
		if rest, ok := strings.CutPrefix(strings.TrimLeft(line, " \t"), "* "); ok {
			nodes = append(nodes, Node{Kind: KindBullet})
			line = rest
		} else if rest, ok := strings.CutPrefix(strings.TrimLeft(line, " \t"), "- "); ok {
			nodes = append(nodes, Node{Kind: KindBullet})
			line = rest
		}
		nodes = append(nodes, parseEmphasis(line)...)
	}
	return nodes
}

func parseEmphasis(line string) []Node {
	var nodes []Node
	for _, part := range splitMatches(line, boldRe) {
		if strings.HasPrefix(part, "**") && strings.HasSuffix(part, "**") && len(part) > 4 {
			nodes = append(nodes, Node{Kind: KindBold, Content: part[2 : len(part)-2]})
			continue
		}
		for _, sub := range splitMatches(part, italicRe) {
			if strings.HasPrefix(sub, "*") && strings.HasSuffix(sub, "*") && len(sub) > 2 {
				nodes = append(nodes, Node{Kind: KindItalic, Content: sub[1 : len(sub)-1]})
			} else if sub != "" {
				nodes = append(nodes, Node{Kind: KindText, Content: sub})
			}
		}
	}
	return nodes
}

// splitMatches returns text cut into alternating non-match and match pieces,
// in order, with empty non-match pieces dropped.
func splitMatches(text string, re *regexp.Regexp) []string {
	var parts []string
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			parts = append(parts, text[last:loc[0]])
		}
		parts = append(parts, text[loc[0]:loc[1]])
		last = loc[1]
	}
	if last < len(text) {
		parts = append(parts, text[last:])
	}
	return parts
}
