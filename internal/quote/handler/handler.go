package handler

import (
	"encoding/json"
	"net/http"

	"metalwatch/internal/adapters"
	"metalwatch/internal/domain"
)

// MessageProcessor classifies one message body and returns the dialect
// tag, the reply to relay to the sender and whether anything matched.
type MessageProcessor interface {
	Process(execID, text string) (domain.Dialect, string, bool)
}

type Handler struct {
	processor  MessageProcessor
	quotes     adapters.QuoteStore
	replyCache adapters.ReplyCache
}

func NewHandler(processor MessageProcessor, quotes adapters.QuoteStore, replyCache adapters.ReplyCache) *Handler {
	return &Handler{processor: processor, quotes: quotes, replyCache: replyCache}
}

// Home is the root banner, handy for checking the deployment is up.
func (h *Handler) Home(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("WhatsApp Metal Price Parser is running!"))
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}
