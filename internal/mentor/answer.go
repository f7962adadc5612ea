package mentor

import (
	"encoding/json"
	"strings"
)

// FallbackTLDR marks answers whose raw model output could not be parsed.
const FallbackTLDR = "Model did not return structured JSON; showing raw answer."

type Step struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// Answer is the normalized result of one model invocation. It is returned
// to the caller and projected into message metadata, never stored whole.
type Answer struct {
	Explanation    string `json:"explanation"`
	FixedCode      string `json:"fixed_code,omitempty"`
	Diff           string `json:"diff,omitempty"`
	Steps          []Step `json:"steps"`
	TLDR           string `json:"tldr"`
	ContextUsed    string `json:"context_used,omitempty"`
	Raw            string `json:"raw,omitempty"`
	ConversationID string `json:"conversation_id"`
}

// rawAnswer is the permissive decode target for model output. Pointer
// fields distinguish absent/null from empty so defaults apply centrally.
type rawAnswer struct {
	Explanation string          `json:"explanation"`
	FixedCode   *string         `json:"fixed_code"`
	Diff        *string         `json:"diff"`
	TLDR        string          `json:"tldr"`
	Steps       json.RawMessage `json:"steps"`
}

// ParseAnswer extracts a structured answer from raw model output. The text
// is repaired best-effort first (fences stripped, object span isolated,
// trailing braces balanced); a remaining parse failure is returned to the
// caller, which degrades instead of erroring.
func ParseAnswer(raw string) (*Answer, error) {
	txt := extractJSON(raw)

	var decoded rawAnswer
	if err := json.Unmarshal([]byte(txt), &decoded); err != nil {
		return nil, err
	}

	return &Answer{
		Explanation: decoded.Explanation,
		FixedCode:   orEmpty(decoded.FixedCode),
		Diff:        orEmpty(decoded.Diff),
		Steps:       parseSteps(decoded.Steps),
		TLDR:        decoded.TLDR,
	}, nil
}

// DegradedAnswer wraps unparsable model output so the request still
// succeeds with a valid shape.
func DegradedAnswer(raw string) *Answer {
	return &Answer{
		Explanation: raw,
		Steps:       []Step{},
		TLDR:        FallbackTLDR,
	}
}

// extractJSON repairs common model formatting mistakes before decoding:
//  1. strip a leading/trailing triple-backtick fence
//  2. isolate the first {...last} span when prose surrounds the object
//  3. append closing braces when the output was truncated, or drop prose
//     left after the closing brace
//
// Heuristic only: braces inside string literals can defeat the balancing,
// and such inputs still fail the decode.
func extractJSON(raw string) string {
	txt := strings.TrimSpace(raw)

	if strings.HasPrefix(txt, "```") {
		lines := strings.Split(txt, "\n")
		if len(lines) > 0 {
			lines = lines[1:]
		}
		if len(lines) > 0 && strings.HasPrefix(strings.TrimSpace(lines[len(lines)-1]), "```") {
			lines = lines[:len(lines)-1]
		}
		txt = strings.TrimSpace(strings.Join(lines, "\n"))
	}

	if !strings.HasPrefix(txt, "{") {
		start := strings.Index(txt, "{")
		end := strings.LastIndex(txt, "}")
		if start != -1 && end != -1 && end > start {
			txt = txt[start : end+1]
		}
	}

	if strings.HasPrefix(txt, "{") {
		opens := strings.Count(txt, "{")
		closes := strings.Count(txt, "}")
		if closes < opens {
			txt += strings.Repeat("}", opens-closes)
		} else if end := strings.LastIndex(txt, "}"); end != -1 && end < len(txt)-1 {
			// prose after the object would trip the decoder
			txt = txt[:end+1]
		}
	}

	return txt
}

// parseSteps accepts steps only as a sequence of mappings. Entries that are
// not mappings are skipped; a missing title defaults to "Step" and a
// missing detail to "".
func parseSteps(raw json.RawMessage) []Step {
	steps := []Step{}
	if len(raw) == 0 {
		return steps
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return steps
	}

	for _, e := range entries {
		var m map[string]any
		if err := json.Unmarshal(e, &m); err != nil {
			continue
		}
		title, _ := m["title"].(string)
		if title == "" {
			title = "Step"
		}
		detail, _ := m["detail"].(string)
		steps = append(steps, Step{Title: title, Detail: detail})
	}
	return steps
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
