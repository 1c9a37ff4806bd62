package extract

import (
	"encoding/json"
	"strings"
)

// recipeInstructions is a tagged union on the wire: plain text, an ordered
// list of steps, or a single step object. Each variant has its own
// flattener; the result is either newline-joined text or absent.

func flattenInstructions(raw json.RawMessage) *string {
	if raw == nil {
		return nil
	}

	switch variantOf(raw) {
	case variantObject:
		return flattenStepObject(raw)
	case variantArray:
		return flattenStepList(raw)
	default:
		return flattenText(raw)
	}
}

// flattenText handles the plain-string variant.
func flattenText(raw json.RawMessage) *string {
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return nil
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	return &text
}

// flattenStepList handles the ordered-step-list variant. Elements may be
// strings or step objects; empty results are dropped and the rest joined
// with newlines.
func flattenStepList(raw json.RawMessage) *string {
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil
	}

	var steps []string
	for _, element := range elements {
		var text string

		var s string
		if err := json.Unmarshal(element, &s); err == nil {
			text = s
		} else {
			var obj map[string]json.RawMessage
			if err := json.Unmarshal(element, &obj); err != nil {
				continue
			}
			text = stringField(obj, "text")
			if text == "" {
				// HowToStep objects without text still name their type.
				text = stringField(obj, "@type")
			}
		}

		text = strings.TrimSpace(text)
		if text != "" {
			steps = append(steps, text)
		}
	}

	if len(steps) == 0 {
		return nil
	}
	joined := strings.Join(steps, "\n")
	return &joined
}

// flattenStepObject handles the single-step-object variant.
func flattenStepObject(raw json.RawMessage) *string {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil
	}
	text := stringField(obj, "text")
	if text == "" {
		return nil
	}
	return &text
}
