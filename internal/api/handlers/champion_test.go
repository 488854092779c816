package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gizemyilmaz/lol-knowledge-engine/internal/api/handlers"
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/testutil"
)

func TestChampionHandler_GetAll(t *testing.T) {
	ts := testutil.NewTestServer(t, "")

	resp, err := http.Get(ts.APIURL("/champions"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result handlers.ChampionsResponse
	testutil.AssertJSONResponse(t, resp, &result)
	assert.Equal(t, 6, result.Count)
	require.Len(t, result.Champions, 6)

	names := make([]string, 0, len(result.Champions))
	for _, c := range result.Champions {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "Malphite")
	assert.Contains(t, names, "Dr. Mundo")
}

func TestChampionHandler_Get(t *testing.T) {
	ts := testutil.NewTestServer(t, "")

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedName   string
	}{
		{"canonical key", "/champions/malphite", http.StatusOK, "Malphite"},
		{"display name", "/champions/Malphite", http.StatusOK, "Malphite"},
		{"alias", "/champions/mundo", http.StatusOK, "Dr. Mundo"},
		{"url encoded", "/champions/Dr.%20Mundo", http.StatusOK, "Dr. Mundo"},
		{"unknown", "/champions/NotAChampion", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.APIURL(tt.path))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var result struct {
				Champion string `json:"champion"`
				Title    string `json:"title"`
			}
			testutil.AssertJSONResponse(t, resp, &result)
			assert.Equal(t, tt.expectedName, result.Champion)
			assert.NotEmpty(t, result.Title)
		})
	}
}
