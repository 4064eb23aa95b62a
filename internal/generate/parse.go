package generate

import (
	"encoding/json"
	"fmt"
	"strings"
)

type generation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Section     string `json:"section"`
}

// parseGeneration decodes the provider's JSON response. Responses wrapped in
// code fences or surrounded by prose are salvaged by extracting the first
// balanced-looking object.
func parseGeneration(text string) (*generation, error) {
	var g generation
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &g); err == nil {
		return &g, nil
	}

	salvaged := salvageJSON(text)
	if salvaged == "" {
		return nil, fmt.Errorf("no JSON object in response")
	}
	if err := json.Unmarshal([]byte(salvaged), &g); err != nil {
		return nil, fmt.Errorf("parse salvaged response: %w", err)
	}
	return &g, nil
}

// salvageJSON strips code fences and returns the first { ... last }
// substring, or empty when none exists.
func salvageJSON(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
