package handlers

import (
	"github.com/suPer8Hu/rag-mentor/internal/mentor"
)

type Handler struct {
	Svc *mentor.Service
}

func New(svc *mentor.Service) *Handler {
	return &Handler{Svc: svc}
}
