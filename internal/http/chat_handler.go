package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/fjod/go_storefront/internal/session"
)

type ChatHandler struct {
	sessions *session.Store
}

func NewChatHandler(sessions *session.Store) *ChatHandler {
	return &ChatHandler{sessions: sessions}
}

type SendMessageRequestDTO struct {
	Content string `json:"content"`
}

func (h *ChatHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	sess := h.sessions.Get(userID)

	var out []MessageDTO
	sess.Do(func(s *session.Session) {
		for _, msg := range s.Chat.Messages() {
			out = append(out, toMessageDTO(msg))
		}
	})

	respondJSON(w, http.StatusOK, out)
}

func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	var req SendMessageRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		respondError(w, http.StatusBadRequest, "empty_message", "message content must not be empty")
		return
	}

	sess := h.sessions.Get(userID)

	var out MessageDTO
	sess.Do(func(s *session.Session) {
		out = toMessageDTO(s.Chat.Submit(req.Content))
	})

	respondJSON(w, http.StatusCreated, out)
}
