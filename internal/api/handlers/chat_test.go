package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	ws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gizemyilmaz/lol-knowledge-engine/internal/api/handlers"
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/testutil"
)

// scriptedLLM answers classification calls (temperature zero) with the given
// intent JSON and phrasing calls with the given answer.
func scriptedLLM(t *testing.T, intentJSON, answer string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Temperature float64 `json:"temperature"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		content := answer
		if req.Temperature == 0 {
			content = intentJSON
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestChatHandler_Ask(t *testing.T) {
	llmServer := scriptedLLM(t,
		`{"intent": "CHAMPION_BASE_STATS", "champion_name": "Malphite", "stat_name": "health"}`,
		"Malphite starts with 644 health.")
	defer llmServer.Close()

	ts := testutil.NewTestServer(t, llmServer.URL)

	t.Run("answers a question", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/chat"), `{"message": "how much hp does malphite have?"}`)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result struct {
			SessionID string         `json:"session_id"`
			Answer    string         `json:"answer"`
			Intent    string         `json:"intent"`
			Data      map[string]any `json:"data"`
		}
		testutil.AssertJSONResponse(t, resp, &result)
		assert.NotEmpty(t, result.SessionID)
		assert.Equal(t, "Malphite starts with 644 health.", result.Answer)
		assert.Equal(t, "CHAMPION_BASE_STATS", result.Intent)
		assert.Equal(t, 644.0, result.Data["value"])
	})

	t.Run("empty message", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/chat"), `{"message": ""}`)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var result map[string]any
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Equal(t, "Message is required", result["error"])
	})

	t.Run("invalid body", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/chat"), `not json`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestChatHandler_Websocket(t *testing.T) {
	llmServer := scriptedLLM(t,
		`{"intent": "BUILD_QUERY", "champion_name": "Malphite"}`,
		"Malphite wants Thornmail first.")
	defer llmServer.Close()

	ts := testutil.NewTestServer(t, llmServer.URL)

	wsURL := "ws" + strings.TrimPrefix(ts.Server.URL, "http") + "/api/v1/ws"
	conn, _, err := ws.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(handlers.ChatRequest{Message: "what does malphite build?"}))

	var result struct {
		SessionID string `json:"session_id"`
		Answer    string `json:"answer"`
	}
	require.NoError(t, conn.ReadJSON(&result))
	assert.NotEmpty(t, result.SessionID)
	assert.Equal(t, "Malphite wants Thornmail first.", result.Answer)

	// An empty message keeps the connection open and reports the error inline
	require.NoError(t, conn.WriteJSON(handlers.ChatRequest{Message: ""}))
	var wsErr map[string]string
	require.NoError(t, conn.ReadJSON(&wsErr))
	assert.Equal(t, "Message is required", wsErr["error"])

	// The connection still answers after a bad message
	require.NoError(t, conn.WriteJSON(handlers.ChatRequest{Message: "and second item?"}))
	require.NoError(t, conn.ReadJSON(&result))
	assert.Equal(t, "Malphite wants Thornmail first.", result.Answer)
}
