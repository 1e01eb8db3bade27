package inline

import (
	"html"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Styles maps inline spans to terminal styles.
type Styles struct {
	Plain         bool
	Strong        lipgloss.Style
	Emphasis      lipgloss.Style
	Code          lipgloss.Style
	Strikethrough lipgloss.Style
}

// DefaultStyles returns bold, italic, and colored code styles.
func DefaultStyles() Styles {
	return Styles{
		Strong:        lipgloss.NewStyle().Bold(true),
		Emphasis:      lipgloss.NewStyle().Italic(true),
		Code:          lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Strikethrough: lipgloss.NewStyle().Strikethrough(true),
	}
}

// PlainStyles returns styles that drop all formatting.
func PlainStyles() Styles {
	return Styles{Plain: true}
}

// Terminal renders text for a terminal, applying styles to emphasis and
// code spans.
func Terminal(value string, styles Styles) string {
	source := []byte(value)
	doc := engine.Parser().Parse(text.NewReader(source))
	r := terminalRenderer{source: source, styles: styles}
	return strings.TrimSpace(r.children(doc))
}

type terminalRenderer struct {
	source []byte
	styles Styles
}

func (r terminalRenderer) children(n ast.Node) string {
	var b strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		b.WriteString(r.node(child))
	}
	return b.String()
}

func (r terminalRenderer) node(n ast.Node) string {
	switch node := n.(type) {
	case *ast.Text:
		value := unescape(node.Segment.Value(r.source))
		if node.SoftLineBreak() || node.HardLineBreak() {
			value += " "
		}
		return value
	case *ast.String:
		return html.UnescapeString(string(node.Value))
	case *ast.Emphasis:
		inner := r.children(node)
		if node.Level >= 2 {
			return r.apply(r.styles.Strong, inner)
		}
		return r.apply(r.styles.Emphasis, inner)
	case *ast.CodeSpan:
		return r.apply(r.styles.Code, r.raw(node))
	case *extast.Strikethrough:
		return r.apply(r.styles.Strikethrough, r.children(node))
	case *ast.AutoLink:
		return string(node.URL(r.source))
	case *ast.RawHTML:
		var b strings.Builder
		for i := 0; i < node.Segments.Len(); i++ {
			segment := node.Segments.At(i)
			b.Write(segment.Value(r.source))
		}
		return b.String()
	default:
		return r.children(n)
	}
}

// raw concatenates text children without unescaping, as code spans keep
// backslashes literally.
func (r terminalRenderer) raw(n ast.Node) string {
	var b strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if textNode, ok := child.(*ast.Text); ok {
			b.Write(textNode.Segment.Value(r.source))
			continue
		}
		b.WriteString(r.node(child))
	}
	return b.String()
}

func (r terminalRenderer) apply(style lipgloss.Style, value string) string {
	if r.styles.Plain {
		return value
	}
	return style.Render(value)
}

func unescape(value []byte) string {
	return html.UnescapeString(string(util.UnescapePunctuations(value)))
}
