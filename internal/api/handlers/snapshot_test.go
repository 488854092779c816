package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gizemyilmaz/lol-knowledge-engine/internal/api/handlers"
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/testutil"
)

func TestSnapshotHandler_GetAll(t *testing.T) {
	ts := testutil.NewTestServer(t, "")

	resp, err := http.Get(ts.APIURL("/snapshots"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result handlers.SnapshotsResponse
	testutil.AssertJSONResponse(t, resp, &result)
	assert.Equal(t, 1, result.Count)
	require.Len(t, result.Games, 1)
	assert.Equal(t, "NA1_TEST_0001", result.Games[0].MatchID)
	assert.Equal(t, "Malphite", result.Games[0].Champion)
}

func TestSnapshotHandler_Analyze(t *testing.T) {
	ts := testutil.NewTestServer(t, "")

	t.Run("game state", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/snapshots/0/analysis?type=game_state"))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result struct {
			GameState    string `json:"game_state"`
			TeamGoldDiff int    `json:"team_gold_diff"`
		}
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Equal(t, "Ahead", result.GameState)
		assert.Equal(t, 1800, result.TeamGoldDiff)
	})

	t.Run("items", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/snapshots/0/analysis?type=items"))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result struct {
			Champion               string `json:"champion"`
			EstimatedAvailableGold int    `json:"estimated_available_gold"`
		}
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Equal(t, "Malphite", result.Champion)
		assert.Equal(t, 2050, result.EstimatedAvailableGold)
	})

	t.Run("full analysis is the default", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/snapshots/0/analysis"))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result struct {
			MatchID string `json:"match_id"`
			Summary struct {
				PrimaryFocus string `json:"primary_focus"`
			} `json:"summary"`
		}
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Equal(t, "NA1_TEST_0001", result.MatchID)
		assert.NotEmpty(t, result.Summary.PrimaryFocus)
	})

	t.Run("out of range index is a 404", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/snapshots/9/analysis"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("non-numeric index is a 400", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/snapshots/abc/analysis"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
