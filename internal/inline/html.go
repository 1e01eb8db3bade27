package inline

import (
	"bytes"
	"html"
	"strings"
)

// HTML renders text as inline HTML without the wrapping paragraph.
func HTML(text string) string {
	var buf bytes.Buffer
	if err := engine.Convert([]byte(text), &buf); err != nil {
		return html.EscapeString(text)
	}
	out := strings.TrimSpace(buf.String())
	out = strings.TrimPrefix(out, "<p>")
	out = strings.TrimSuffix(out, "</p>")
	return out
}
