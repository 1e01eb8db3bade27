// Package inline renders inline markdown spans of question and option text.
//
// Only inline syntax is recognised: the block parser set is reduced to
// paragraphs so a leading "#" or ">" stays literal text. The typographer
// extension is enabled, turning straight quotes and dashes into their
// typographic forms.
package inline

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/util"
)

// engine is stateless and shared by all render calls.
var engine = newEngine()

func newEngine() goldmark.Markdown {
	inlineOnly := parser.NewParser(
		parser.WithBlockParsers(util.Prioritized(parser.NewParagraphParser(), 1000)),
		parser.WithInlineParsers(parser.DefaultInlineParsers()...),
		parser.WithParagraphTransformers(parser.DefaultParagraphTransformers()...),
	)
	return goldmark.New(
		goldmark.WithParser(inlineOnly),
		goldmark.WithExtensions(
			extension.Typographer,
			extension.Strikethrough,
		),
	)
}
