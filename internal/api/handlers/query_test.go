package handlers_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gizemyilmaz/lol-knowledge-engine/internal/testutil"
)

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	return resp
}

func TestQueryHandler_Handle(t *testing.T) {
	ts := testutil.NewTestServer(t, "")

	t.Run("specific stat", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/query"),
			`{"intent": "CHAMPION_BASE_STATS", "champion_name": "Malphite", "stat_name": "hp"}`)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result struct {
			Champion string  `json:"champion"`
			Stat     string  `json:"stat"`
			Value    float64 `json:"value"`
		}
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Equal(t, "Malphite", result.Champion)
		assert.Equal(t, "health", result.Stat)
		assert.Equal(t, 644.0, result.Value)
	})

	t.Run("semantic search", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/query"),
			`{"intent": "CHAMPION_BY_CC", "cc_types": ["Stun"]}`)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result struct {
			Champions       []string `json:"champions"`
			Count           int      `json:"count"`
			QueriesExecuted []string `json:"queries_executed"`
		}
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Equal(t, []string{"Annie", "Leona"}, result.Champions)
		assert.Equal(t, 2, result.Count)
		assert.NotEmpty(t, result.QueriesExecuted)
	})

	t.Run("unknown champion is a 404 with hints", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/query"),
			`{"intent": "CHAMPION_INFO", "champion_name": "NotAChampion"}`)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var result map[string]any
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Contains(t, result["error"], "NotAChampion")
	})

	t.Run("unrecognized intent kind is guidance, not an error", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/query"), `{"intent": "SOMETHING_ELSE"}`)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result map[string]any
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Equal(t, "SOMETHING_ELSE", result["intent_detected"])
	})

	t.Run("missing intent", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/query"), `{"champion_name": "Malphite"}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("invalid body", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/query"), `not json`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing argument is a 400", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/query"), `{"intent": "ROLE_QUERY"}`)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var result map[string]any
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Equal(t, "no role specified", result["error"])
	})
}
