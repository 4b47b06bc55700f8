package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StripCodeFence removes markdown code fences the model likes to wrap JSON in.
func StripCodeFence(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// DecodeJSON strips fences from the model answer and unmarshals it into v.
func DecodeJSON(text string, v any) error {
	if err := json.Unmarshal([]byte(StripCodeFence(text)), v); err != nil {
		return fmt.Errorf("model returned invalid JSON: %w", err)
	}
	return nil
}
