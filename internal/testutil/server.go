package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gizemyilmaz/lol-knowledge-engine/internal/api"
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/domain"
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/llm"
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/service"
)

// TestServer is a complete HTTP server over a seeded test database
type TestServer struct {
	Server   *httptest.Server
	DB       *TestDB
	Services *service.Services
}

// NewTestServer creates a test server with all dependencies. The knowledge
// graph fixture is seeded up front because the name resolver snapshots the
// entity table at construction. llmBaseURL points the chat pipeline at a
// fake completions endpoint; endpoints that never call the LLM can pass "".
func NewTestServer(t *testing.T, llmBaseURL string) *TestServer {
	t.Helper()

	ctx := context.Background()
	testDB := NewTestDB(t)
	SeedGraph(t, ctx, testDB.Repos)

	resolver, err := service.NewNameResolver(ctx, testDB.Repos.Entity)
	require.NoError(t, err)

	if llmBaseURL == "" {
		llmBaseURL = "http://127.0.0.1:0"
	}
	llmClient := llm.NewClient(llmBaseURL, "test-key", "gpt-4o-mini")

	services := service.NewServices(testDB.Repos, resolver, []domain.Snapshot{SnapshotFixture()}, llmClient, 6)
	router := api.NewRouter(services, testDB.Repos)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &TestServer{
		Server:   server,
		DB:       testDB,
		Services: services,
	}
}

// APIURL returns the full API URL for a given path
func (ts *TestServer) APIURL(path string) string {
	return fmt.Sprintf("%s/api/v1%s", ts.Server.URL, path)
}

// AssertJSONResponse decodes a JSON response body into v
func AssertJSONResponse(t *testing.T, resp *http.Response, v any) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	err = json.Unmarshal(body, v)
	require.NoError(t, err, "failed to unmarshal response: %s", string(body))
}
