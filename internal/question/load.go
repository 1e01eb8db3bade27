package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// deckMeta is the optional front matter block of a quiz document.
type deckMeta struct {
	Title string `yaml:"title" json:"title" toml:"title"`
}

// LoadDeck reads a quiz deck from disk. Markdown files are parsed with
// Parse; .json, .yml and .yaml files hold a previously exported Deck.
func LoadDeck(path string) (Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, fmt.Errorf("read quiz deck: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return decodeDeck(parseJSONDeck(data))
	case ".yml", ".yaml":
		return decodeDeck(parseYAMLDeck(data))
	default:
		return ParseDeck(data, path)
	}
}

// utf8BOM is stripped from the start of decks saved by some editors.
var utf8BOM = []byte("\xef\xbb\xbf")

// ParseDeck parses markdown quiz source. name is used for the fallback title
// and recorded as the deck source. A leading "---" block is read as YAML
// front matter only when it decodes and holds no question; otherwise the
// source is parsed as is, where "---" lines are ignored.
func ParseDeck(source []byte, name string) (Deck, error) {
	source = bytes.TrimPrefix(source, utf8BOM)
	meta, body := splitFrontMatter(source)
	questions, err := Parse(string(body))
	if err != nil {
		return Deck{}, fmt.Errorf("parse quiz: %w", err)
	}
	deck := Deck{
		Title:     resolveTitle(meta.Title, string(body), name),
		Source:    name,
		Questions: questions,
	}
	deck.Key, err = DeckKey(questions)
	if err != nil {
		return Deck{}, err
	}
	return deck, nil
}

// splitFrontMatter returns the front matter and the remaining body, or an
// empty header and the full source when there is no usable front matter.
func splitFrontMatter(source []byte) (deckMeta, []byte) {
	var meta deckMeta
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return deckMeta{}, source
	}
	if len(body) > len(source) {
		return deckMeta{}, source
	}
	if containsQuestionStart(string(source[:len(source)-len(body)])) {
		return deckMeta{}, source
	}
	return meta, body
}

func containsQuestionStart(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		if Classify(strings.TrimSpace(line)) == LineQuestionStart {
			return true
		}
	}
	return false
}

// resolveTitle prefers front matter, then the first "# " heading, then the
// file name without extension.
func resolveTitle(metaTitle, body, name string) string {
	if title := strings.TrimSpace(metaTitle); title != "" {
		return title
	}
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			if title := strings.TrimSpace(strings.TrimPrefix(line, "# ")); title != "" {
				return title
			}
		}
	}
	base := filepath.Base(name)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func decodeDeck(deck Deck, err error) (Deck, error) {
	if err != nil {
		return Deck{}, err
	}
	if deck.Questions == nil {
		deck.Questions = []Question{}
	}
	key, err := DeckKey(deck.Questions)
	if err != nil {
		return Deck{}, err
	}
	deck.Key = key
	return deck, nil
}

func parseJSONDeck(data []byte) (Deck, error) {
	var deck Deck
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&deck); err != nil {
		return Deck{}, fmt.Errorf("parse json: %w", err)
	}
	var extra json.RawMessage
	if err := decoder.Decode(&extra); err != io.EOF {
		if err == nil {
			return Deck{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return Deck{}, fmt.Errorf("parse json: %w", err)
	}
	return deck, nil
}

func parseYAMLDeck(data []byte) (Deck, error) {
	var deck Deck
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&deck); err != nil {
		return Deck{}, fmt.Errorf("parse yaml: %w", err)
	}
	var extra yaml.Node
	if err := decoder.Decode(&extra); err != io.EOF {
		if err == nil {
			return Deck{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Deck{}, fmt.Errorf("parse yaml: %w", err)
	}
	return deck, nil
}
