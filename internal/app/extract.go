package app

import (
	"encoding/json"
	"regexp"
	"strings"

	"otasuke/internal/domain"
)

// The web search tool decorates answers with inline citation tags; they are
// stripped before locating the JSON payload.
var citeTags = regexp.MustCompile(`<cite[^>]*>|</cite>`)

// joinText concatenates the text-typed blocks in order, newline separated.
func joinText(blocks []domain.ContentBlock) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b.Type == "text" {
			parts = append(parts, b.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// firstJSONObject returns the first balanced top-level {...} region of s.
// The scan is string- and escape-aware so braces inside JSON strings never
// shift the depth count. Returns "" when no complete region exists.
func firstJSONObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// extractJSON pulls the first JSON object out of a model response and decodes
// it into dst. Model output is unconstrained free text, so a missing or
// unparseable payload is the expected failure mode, not a programming error.
func extractJSON(blocks []domain.ContentBlock, dst any) error {
	text := citeTags.ReplaceAllString(joinText(blocks), "")
	raw := firstJSONObject(text)
	if raw == "" {
		return &domain.ExtractionError{Reason: "no JSON object in model response"}
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return &domain.ExtractionError{Reason: "invalid JSON: " + err.Error()}
	}
	return nil
}
