// Package prose loads submissions as plain text. Markdown is flattened so that offsets and diffs refer to the words a reader sees rather than to markup.
package prose

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Load reads path. Files ending in .md or .markdown are converted with PlainText; anything else is returned verbatim.
func Load(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load %s: %w", path, err)
	}
	if !IsMarkdown(path) {
		return string(src), nil
	}
	out, err := PlainText(src)
	if err != nil {
		return "", fmt.Errorf("load %s: %w", path, err)
	}
	return out, nil
}

// IsMarkdown reports whether path has a Markdown extension.
func IsMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// PlainText renders Markdown src as plain prose:
//   - paragraphs, headings, block quotes, and code blocks are separated by a blank line
//   - list items are placed one per line
//   - inline markup (emphasis, links, code spans) is reduced to its text; raw HTML and thematic breaks are dropped
//   - soft line breaks become spaces, hard line breaks stay newlines
//   - code block content is kept verbatim
func PlainText(src []byte) (string, error) {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(src))
	if root == nil {
		return "", errors.New("prose: parse markdown: nil document")
	}
	return strings.Join(childBlocks(root, src), "\n\n"), nil
}

func childBlocks(n ast.Node, src []byte) []string {
	var out []string
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if s := blockText(c, src); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func blockText(n ast.Node, src []byte) string {
	switch node := n.(type) {
	case *ast.Paragraph, *ast.TextBlock, *ast.Heading:
		var b strings.Builder
		writeInline(&b, node, src)
		return strings.TrimSpace(b.String())
	case *ast.List:
		var items []string
		for item := node.FirstChild(); item != nil; item = item.NextSibling() {
			if s := strings.Join(childBlocks(item, src), "\n"); s != "" {
				items = append(items, s)
			}
		}
		return strings.Join(items, "\n")
	case *ast.Blockquote:
		return strings.Join(childBlocks(node, src), "\n\n")
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		var buf bytes.Buffer
		lines := node.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(src))
		}
		return strings.TrimRight(buf.String(), "\r\n")
	case *ast.ThematicBreak, *ast.HTMLBlock:
		return ""
	default:
		return strings.Join(childBlocks(node, src), "\n\n")
	}
}

func writeInline(b *strings.Builder, n ast.Node, src []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			b.Write(node.Segment.Value(src))
			switch {
			case node.HardLineBreak():
				b.WriteByte('\n')
			case node.SoftLineBreak():
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(node.Value)
		case *ast.AutoLink:
			b.Write(node.Label(src))
		case *ast.RawHTML:
			// Dropped.
		default:
			writeInline(b, node, src)
		}
	}
}
