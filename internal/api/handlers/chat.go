package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	ws "github.com/gorilla/websocket"

	"github.com/gizemyilmaz/lol-knowledge-engine/internal/service"
)

var upgrader = ws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type ChatRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Message   string `json:"message"`
}

// Ask answers one question over plain HTTP.
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "Message is required")
		return
	}

	resp, err := h.chatService.Ask(r.Context(), req.SessionID, req.Message)
	if err != nil {
		log.Printf("ERROR [chat.Ask]: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to answer question")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Websocket runs a chat session over a websocket: one question in, one
// answer out, synchronously, for the lifetime of the connection. The
// connection itself is the session.
func (h *ChatHandler) Websocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ERROR [chat.Websocket]: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	sessionID := h.chatService.NewSession()

	for {
		var req ChatRequest
		if err := conn.ReadJSON(&req); err != nil {
			if ws.IsUnexpectedCloseError(err, ws.CloseGoingAway, ws.CloseNormalClosure) {
				log.Printf("ERROR [chat.Websocket]: %v", err)
			}
			return
		}
		if req.Message == "" {
			if err := conn.WriteJSON(map[string]string{"error": "Message is required"}); err != nil {
				return
			}
			continue
		}

		resp, err := h.chatService.Ask(r.Context(), sessionID, req.Message)
		if err != nil {
			log.Printf("ERROR [chat.Websocket]: %v", err)
			if err := conn.WriteJSON(map[string]string{"error": "Failed to answer question"}); err != nil {
				return
			}
			continue
		}

		if err := conn.WriteJSON(resp); err != nil {
			return
		}
	}
}
