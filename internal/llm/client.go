package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gizemyilmaz/lol-knowledge-engine/internal/domain"
)

// Message is one turn in a chat completion conversation.
type Message struct {
	Role    string `json:"role"` // system, user, or assistant
	Content string `json:"content"`
}

// Client talks to an OpenAI-compatible chat completions endpoint. It handles
// intent classification and response phrasing; retrieval never goes through it.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
	}
}

type chatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

func (c *Client) chatCompletion(ctx context.Context, messages []Message, temperature float64, maxTokens int) (string, error) {
	body, err := json.Marshal(chatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("chat completion returned status %d: %s", resp.StatusCode, string(raw))
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("failed to decode completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}

// extractJSON strips markdown code fences the model sometimes wraps around
// its JSON output.
func extractJSON(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx >= 0 {
			content = content[:idx]
		}
	}
	return strings.TrimSpace(content)
}

// ClassifyIntent extracts a structured intent from a user question. Recent
// history is forwarded so follow-up questions can resolve references like
// "what about his W". Classification failures degrade to IntentUnknown
// instead of erroring; a question that cannot be classified is still a
// question the chat loop must answer.
func (c *Client) ClassifyIntent(ctx context.Context, question string, history []Message) (*domain.Intent, error) {
	messages := []Message{{Role: "system", Content: classifierSystemPrompt}}
	if len(history) > 6 {
		history = history[len(history)-6:]
	}
	messages = append(messages, history...)
	messages = append(messages, Message{Role: "user", Content: intentClassificationPrompt(question)})

	content, err := c.chatCompletion(ctx, messages, 0, 0)
	if err != nil {
		log.Printf("ERROR [LLM.ClassifyIntent]: %v", err)
		return &domain.Intent{Kind: domain.IntentUnknown}, nil
	}

	var intent domain.Intent
	if err := json.Unmarshal([]byte(extractJSON(content)), &intent); err != nil {
		log.Printf("ERROR [LLM.ClassifyIntent]: failed to parse classifier output: %v", err)
		return &domain.Intent{Kind: domain.IntentUnknown}, nil
	}
	if intent.Kind == "" {
		intent.Kind = domain.IntentUnknown
	}
	return &intent, nil
}

// GenerateResponse phrases a retrieved payload as a natural-language answer.
func (c *Client) GenerateResponse(ctx context.Context, question string, payload any, history []Message) (string, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode payload: %w", err)
	}

	messages := []Message{{Role: "system", Content: conversationSystemPrompt}}
	if len(history) > 12 {
		history = history[len(history)-12:]
	}
	messages = append(messages, history...)
	messages = append(messages, Message{Role: "user", Content: responseGenerationPrompt(question, string(data))})

	return c.chatCompletion(ctx, messages, 0.7, 500)
}
