package planner

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	jsonFenceMarker = "```json"
	fenceMarker     = "```"
)

// ExtractPayload isolates a JSON object embedded in a free-text answer.
// Precedence, first match wins:
//  1. a ```json fenced block,
//  2. any ``` fenced block,
//  3. the substring from the first '{' to the last '}' (greedy, wrong when
//     unrelated brace-delimited text follows the payload, kept for
//     compatibility with how answers are actually produced).
//
// Returns ErrNoPayload when nothing is found or the candidate is not valid
// JSON; never panics on malformed input.
func ExtractPayload(answer string) (map[string]any, error) {
	var candidate string

	switch {
	case strings.Contains(answer, jsonFenceMarker):
		candidate = betweenFences(answer, jsonFenceMarker)
	case strings.Contains(answer, fenceMarker):
		candidate = betweenFences(answer, fenceMarker)
	case strings.Contains(answer, "{") && strings.Contains(answer, "}"):
		start := strings.Index(answer, "{")
		end := strings.LastIndex(answer, "}")
		if end < start {
			return nil, ErrNoPayload
		}
		candidate = answer[start : end+1]
	default:
		return nil, ErrNoPayload
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(candidate)), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoPayload, err)
	}
	return payload, nil
}

// betweenFences returns the substring between the first opening fence of the
// given marker and the next fence, or everything after the opening fence when
// no closing fence exists.
func betweenFences(text, marker string) string {
	start := strings.Index(text, marker) + len(marker)
	rest := text[start:]
	if end := strings.Index(rest, fenceMarker); end >= 0 {
		return rest[:end]
	}
	return rest
}
