package service

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/gizemyilmaz/lol-knowledge-engine/internal/domain"
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/llm"
)

const phrasingFallback = "I found the data you asked for but couldn't phrase it right now. The raw result is attached."

// ChatService runs the question lifecycle: classify the intent, dispatch it,
// then phrase the structured payload as a natural-language answer. Each
// session keeps a bounded history window so follow-up questions can refer
// back to earlier turns.
type ChatService struct {
	dispatch      *DispatchService
	llm           *llm.Client
	historyWindow int

	mu       sync.Mutex
	sessions map[string][]llm.Message
}

func NewChatService(dispatch *DispatchService, llmClient *llm.Client, historyWindow int) *ChatService {
	if historyWindow <= 0 {
		historyWindow = 6
	}
	return &ChatService{
		dispatch:      dispatch,
		llm:           llmClient,
		historyWindow: historyWindow,
		sessions:      make(map[string][]llm.Message),
	}
}

// NewSession allocates a fresh conversation id.
func (s *ChatService) NewSession() string {
	return uuid.New().String()
}

func (s *ChatService) history(sessionID string) []llm.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := s.sessions[sessionID]
	history := make([]llm.Message, len(stored))
	copy(history, stored)
	return history
}

func (s *ChatService) remember(sessionID, question, answer string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	history := append(s.sessions[sessionID],
		llm.Message{Role: "user", Content: question},
		llm.Message{Role: "assistant", Content: answer},
	)
	// One exchange is a user/assistant message pair.
	if max := s.historyWindow * 2; len(history) > max {
		history = history[len(history)-max:]
	}
	s.sessions[sessionID] = history
}

// ChatResponse is one answered question, with the structured payload the
// answer was phrased from.
type ChatResponse struct {
	SessionID string            `json:"session_id"`
	Answer    string            `json:"answer"`
	Intent    domain.IntentKind `json:"intent"`
	Data      any               `json:"data"`
}

// Ask answers one question in a session. Classification and phrasing failures
// degrade rather than fail: an unclassifiable question dispatches as unknown,
// and a phrasing failure returns a stock answer with the structured payload.
func (s *ChatService) Ask(ctx context.Context, sessionID, question string) (*ChatResponse, error) {
	if sessionID == "" {
		sessionID = s.NewSession()
	}
	history := s.history(sessionID)

	intent, err := s.llm.ClassifyIntent(ctx, question, history)
	if err != nil {
		return nil, err
	}

	payload, err := s.dispatch.Dispatch(ctx, intent)
	if err != nil {
		payload = ErrorPayload(err)
	}

	answer, err := s.llm.GenerateResponse(ctx, question, payload, history)
	if err != nil {
		log.Printf("ERROR [ChatService.Ask]: %v", err)
		answer = phrasingFallback
	}

	s.remember(sessionID, question, answer)

	return &ChatResponse{
		SessionID: sessionID,
		Answer:    answer,
		Intent:    intent.Kind,
		Data:      payload,
	}, nil
}
