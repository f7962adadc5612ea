package mentor

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/suPer8Hu/rag-mentor/internal/ai"
	"github.com/suPer8Hu/rag-mentor/internal/chat"
)

// ContextRetriever supplies documentation context for a question.
type ContextRetriever interface {
	RetrieveContext(ctx context.Context, question string, k int) (string, error)
}

// History is the append-only conversation transcript.
type History interface {
	Append(ctx context.Context, conversationID, role, content string, metadata map[string]any) error
	Recent(ctx context.Context, conversationID string, limit int) ([]chat.Message, error)
}

type Service struct {
	history      History
	retriever    ContextRetriever
	provider     ai.Provider
	historyLimit int
	topK         int
}

func NewService(history History, retriever ContextRetriever, provider ai.Provider, historyLimit, topK int) *Service {
	if historyLimit <= 0 {
		historyLimit = 6
	}
	if topK <= 0 {
		topK = 5
	}
	return &Service{
		history:      history,
		retriever:    retriever,
		provider:     provider,
		historyLimit: historyLimit,
		topK:         topK,
	}
}

type AskRequest struct {
	Question       string
	CodeSnippet    string
	ErrorMessage   string
	SkillLevel     string
	ConversationID string
}

// Ask runs one question through the pipeline: history fetch, context
// retrieval, model call, normalization, then persisting both turns.
// Retrieval and model failures are fatal for the request; a normalization
// failure degrades the answer and a persistence failure is logged but does
// not fail the already-computed answer.
func (s *Service) Ask(ctx context.Context, req AskRequest) (*Answer, error) {
	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	skillLevel := req.SkillLevel
	if skillLevel == "" {
		skillLevel = DefaultSkillLevel
	}

	history, err := s.history.Recent(ctx, conversationID, s.historyLimit)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	docContext, err := s.retriever.RetrieveContext(ctx, req.Question, s.topK)
	if err != nil {
		return nil, fmt.Errorf("retrieve context: %w", err)
	}

	prompt := BuildPrompt(skillLevel, history, req.Question, req.CodeSnippet, req.ErrorMessage, docContext)

	raw, err := s.provider.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("model call: %w", err)
	}

	answer, parseErr := ParseAnswer(raw)
	if parseErr != nil {
		log.Printf("[mentor] structured parse failed: %v", parseErr)
		answer = DegradedAnswer(raw)
	}
	answer.ContextUsed = docContext
	answer.Raw = raw
	answer.ConversationID = conversationID

	s.saveTurns(ctx, conversationID, skillLevel, req, answer)

	return answer, nil
}

// saveTurns persists the user and assistant messages. A failure on the
// user turn skips the assistant turn so the transcript never holds an
// answer without its question.
func (s *Service) saveTurns(ctx context.Context, conversationID, skillLevel string, req AskRequest, answer *Answer) {
	userContent := req.Question
	if req.CodeSnippet != "" {
		userContent += "\n\n[Code]\n" + req.CodeSnippet
	}
	if req.ErrorMessage != "" {
		userContent += "\n\n[Error]\n" + req.ErrorMessage
	}

	if err := s.history.Append(ctx, conversationID, chat.RoleUser, userContent, map[string]any{
		"skill_level": skillLevel,
	}); err != nil {
		log.Printf("[mentor] save user message: %v", err)
		return
	}

	if err := s.history.Append(ctx, conversationID, chat.RoleAssistant, answer.Explanation, map[string]any{
		"tldr":           answer.TLDR,
		"has_fixed_code": answer.FixedCode != "",
		"has_diff":       answer.Diff != "",
	}); err != nil {
		log.Printf("[mentor] save assistant message: %v", err)
	}
}
