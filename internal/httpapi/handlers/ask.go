package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/suPer8Hu/rag-mentor/internal/mentor"
)

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type askReq struct {
	Question       string `json:"question" binding:"required"`
	CodeSnippet    string `json:"code_snippet"`
	ErrorMessage   string `json:"error_message"`
	SkillLevel     string `json:"skill_level"`
	ConversationID string `json:"conversation_id"`
}

// Ask runs one question through the mentoring pipeline. Retrieval or model
// failures come back as 500 with a detail message; a normalization failure
// degrades the answer shape instead of erroring.
func (h *Handler) Ask(c *gin.Context) {
	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request: " + err.Error()})
		return
	}

	answer, err := h.Svc.Ask(c.Request.Context(), mentor.AskRequest{
		Question:       req.Question,
		CodeSnippet:    req.CodeSnippet,
		ErrorMessage:   req.ErrorMessage,
		SkillLevel:     req.SkillLevel,
		ConversationID: req.ConversationID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, answer)
}
