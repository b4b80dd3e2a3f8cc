package controllers

import (
	json "github.com/goccy/go-json"
	"net/http"
	"strings"

	"globalpass/internal/models"
	"globalpass/internal/providers"
	"globalpass/internal/services"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type ChatController struct {
	logger    providers.Logger
	assistant services.AssistantServiceInterface
}

func NewChatController(logger providers.Logger, assistant services.AssistantServiceInterface) *ChatController {
	return &ChatController{
		logger:    logger,
		assistant: assistant,
	}
}

// Ask handles POST /api/chat. Responses are never cached: an identical
// question re-queries the generation service.
func (cc *ChatController) Ask(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	req.Question = strings.TrimSpace(req.Question)
	if req.Question == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	cc.logger.Infof(providers.TypePost, "Chat question (%d chars), hint=%q", len(req.Question), req.CountryHint)

	turn, shortlist := cc.assistant.Ask(r.Context(), req.Question, req.CountryHint)

	answer := models.ChatAnswer{
		Answer:   turn.Content,
		Packages: shortlist,
	}
	if answer.Packages == nil {
		answer.Packages = []models.ESIMPackage{}
	}

	gson, err := json.Marshal(answer)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}
