package mentor

import (
	"strings"
	"testing"

	"github.com/suPer8Hu/rag-mentor/internal/chat"
)

func TestGuideFor_UnknownLevelFallsBackToBeginner(t *testing.T) {
	if GuideFor("wizard") != GuideFor("beginner") {
		t.Fatalf("unknown level should use the beginner guide")
	}
	if GuideFor("pro") == GuideFor("beginner") {
		t.Fatalf("pro guide should differ from beginner")
	}
}

func TestBuildPrompt_EmptyHistoryPlaceholder(t *testing.T) {
	p := BuildPrompt("beginner", nil, "What is a slice?", "", "", "")

	if !strings.Contains(p, "(no previous messages)") {
		t.Fatalf("expected empty-history placeholder in prompt")
	}
	if strings.Count(p, "NONE") != 2 {
		t.Fatalf("expected NONE placeholders for code snippet and error message")
	}
	if !strings.Contains(p, "What is a slice?") {
		t.Fatalf("expected literal question in prompt")
	}
}

func TestBuildPrompt_HistoryRendering(t *testing.T) {
	history := []chat.Message{
		{Role: chat.RoleUser, Content: "What is a mutex?"},
		{Role: chat.RoleAssistant, Content: "A lock around shared state."},
	}
	p := BuildPrompt("intermediate", history, "And a RWMutex?", "", "", "docs about sync")

	idxUser := strings.Index(p, "User: What is a mutex?")
	idxMentor := strings.Index(p, "Mentor: A lock around shared state.")
	if idxUser == -1 || idxMentor == -1 {
		t.Fatalf("history lines missing from prompt:\n%s", p)
	}
	if idxUser > idxMentor {
		t.Fatalf("history must stay in chronological order")
	}
	if !strings.Contains(p, "docs about sync") {
		t.Fatalf("retrieved context missing from prompt")
	}
}

func TestBuildPrompt_LiteralOptionalFields(t *testing.T) {
	p := BuildPrompt("pro", nil, "Why does this deadlock?", "mu.Lock()\nmu.Lock()", "fatal error: all goroutines are asleep", "ctx")

	if !strings.Contains(p, "mu.Lock()\nmu.Lock()") {
		t.Fatalf("code snippet should appear verbatim")
	}
	if !strings.Contains(p, "fatal error: all goroutines are asleep") {
		t.Fatalf("error message should appear verbatim")
	}
	if strings.Contains(p, "NONE") {
		t.Fatalf("no NONE placeholder expected when fields are set")
	}
}

func TestBuildPrompt_JSONInstructionBlock(t *testing.T) {
	p := BuildPrompt("beginner", nil, "q", "", "", "")

	for _, key := range []string{`"explanation"`, `"fixed_code"`, `"diff"`, `"steps"`, `"tldr"`} {
		if !strings.Contains(p, key) {
			t.Fatalf("instruction block missing key %s", key)
		}
	}
	if !strings.Contains(p, "VALID JSON only") {
		t.Fatalf("instruction block missing JSON-only directive")
	}
	if !strings.Contains(p, "Do NOT wrap in ```json fences.") {
		t.Fatalf("instruction block missing the fence marker to avoid")
	}
}
