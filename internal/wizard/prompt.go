package wizard

import (
	"bytes"
	"fmt"
	"text/template"
)

const promptText = "Suggest me a list of 5 {{.Type}} and my favorite ones are {{.Favorite}} " +
	"If i prefer the genre {{.Genre}}. I am in a {{.Mood}} mood. " +
	"Give me only the name in a list. Only 5 names in a list"

var promptTmpl = template.Must(template.New("prompt").Parse(promptText))

// BuildPrompt renders the recommendation prompt for p. All fields must be set.
func BuildPrompt(p Preferences) (string, error) {
	if f := p.Missing(); f != "" {
		return "", IncompleteError{Field: f}
	}
	var buf bytes.Buffer
	if err := promptTmpl.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return buf.String(), nil
}
