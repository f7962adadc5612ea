package mentor

import (
	"fmt"
	"strings"

	"github.com/suPer8Hu/rag-mentor/internal/chat"
)

const DefaultSkillLevel = "beginner"

var levelGuides = map[string]string{
	"beginner": `Explain as if to a first-year student.
- Avoid jargon.
- Use analogies (like explaining to a friend).
- Show full working code.
- Do NOT assume they know advanced topics.`,

	"intermediate": `Explain as if to someone with 1-2 years dev experience.
- They know syntax and basic concepts.
- Focus on edge cases, debugging, and best practices.
- Use some jargon but still clarify key ideas.`,

	"pro": `Explain as if to a senior engineer.
- Be concise.
- Focus on trade-offs, performance, architecture, and failure modes.
- Skip basics, assume they know language and frameworks.
- You can reference patterns (e.g., SOLID, CQRS, CAP).`,
}

// GuideFor returns the mentoring guidance block for a skill level.
// Unknown levels fall back to beginner.
func GuideFor(level string) string {
	if g, ok := levelGuides[level]; ok {
		return g
	}
	return levelGuides[DefaultSkillLevel]
}

const promptTemplate = `You are a senior software engineering mentor.

User skill level: %s
Guidelines: %s

Conversation so far (may be empty):
%s

New user question:
%s

User code snippet (may be empty):
%s

Error message (if any):
%s

Context from documentation (may be partial):
%s

TASK:
Return a JSON object with exactly these keys:
- "explanation": string
- "fixed_code": string
- "diff": string
- "steps": array of objects: { "title": string, "detail": string }
- "tldr": string

IMPORTANT:
- Respond with VALID JSON only.
- Do NOT wrap in ` + "```json" + ` fences.
- Do NOT add extra keys.
`

// BuildPrompt assembles the full model instruction from the skill guidance,
// conversation history, retrieved context and the new question. Pure
// function; no I/O.
func BuildPrompt(skillLevel string, history []chat.Message, question, codeSnippet, errorMessage, context string) string {
	return fmt.Sprintf(promptTemplate,
		skillLevel,
		GuideFor(skillLevel),
		renderHistory(history),
		question,
		orNone(codeSnippet),
		orNone(errorMessage),
		context,
	)
}

func renderHistory(history []chat.Message) string {
	if len(history) == 0 {
		return "(no previous messages)"
	}
	lines := make([]string, 0, len(history))
	for _, m := range history {
		role := "Mentor"
		if m.Role == chat.RoleUser {
			role = "User"
		}
		lines = append(lines, role+": "+m.Content)
	}
	return strings.Join(lines, "\n")
}

func orNone(s string) string {
	if s == "" {
		return "NONE"
	}
	return s
}
