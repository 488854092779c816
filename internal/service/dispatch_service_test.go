package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gizemyilmaz/lol-knowledge-engine/internal/domain"
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/service"
)

func TestErrorPayload(t *testing.T) {
	payload := service.ErrorPayload(errors.New("something broke"))
	assert.Equal(t, "something broke", payload["error"])

	// Soft misses carry their hints alongside the message
	notFound := &service.NotFoundError{
		Message: "Champion 'Xyz' not found",
		Hints:   map[string][]string{"available_champions": {"Annie", "Malphite"}},
	}
	payload = service.ErrorPayload(notFound)
	assert.Equal(t, "Champion 'Xyz' not found", payload["error"])
	assert.Equal(t, []string{"Annie", "Malphite"}, payload["available_champions"])
}

func TestDispatchService_UnknownIntent(t *testing.T) {
	env := newGraphEnv(t)

	result, err := env.dispatch.Dispatch(env.ctx, &domain.Intent{Kind: "SOMETHING_ELSE"})
	require.NoError(t, err)

	payload, ok := result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "SOMETHING_ELSE", payload["intent_detected"])
	assert.Contains(t, payload["error"], "Could not understand the query")
}

func TestDispatchService_MissingArguments(t *testing.T) {
	env := newGraphEnv(t)

	tests := []struct {
		name    string
		intent  *domain.Intent
		wantErr string
	}{
		{"role query without role", &domain.Intent{Kind: domain.IntentRoleQuery}, "no role specified"},
		{"lane query without lane", &domain.Intent{Kind: domain.IntentLaneQuery}, "no lane specified"},
		{"item info without item", &domain.Intent{Kind: domain.IntentItemInfo}, "no item specified"},
		{"cc search without tags", &domain.Intent{Kind: domain.IntentChampionByCC}, "no CC type specified"},
		{"comparison with one champion", &domain.Intent{
			Kind:                domain.IntentChampionComparison,
			ComparisonChampions: []string{"Malphite"},
		}, "need at least two champions to compare"},
		{"synergy analysis with one champion", &domain.Intent{
			Kind:          domain.IntentTeamSynergyAnalysis,
			TeamChampions: []string{"Jinx"},
		}, "need at least two champions for synergy analysis"},
		{"counter analysis without enemies", &domain.Intent{Kind: domain.IntentTeamCounterAnalysis}, "no enemy champions specified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.dispatch.Dispatch(env.ctx, tt.intent)
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestDispatchService_LookupIntents(t *testing.T) {
	env := newGraphEnv(t)

	// A stat name narrows CHAMPION_BASE_STATS to one stat
	result, err := env.dispatch.Dispatch(env.ctx, &domain.Intent{
		Kind:         domain.IntentChampionBaseStats,
		ChampionName: "Malphite",
		StatName:     "hp",
	})
	require.NoError(t, err)
	stat, ok := result.(*service.SpecificStatResult)
	require.True(t, ok)
	assert.Equal(t, 644.0, stat.Value)

	// Without one the full block comes back
	result, err = env.dispatch.Dispatch(env.ctx, &domain.Intent{
		Kind:         domain.IntentChampionBaseStats,
		ChampionName: "Malphite",
	})
	require.NoError(t, err)
	_, ok = result.(*service.BaseStatsResult)
	assert.True(t, ok)

	// Skill slot defaults to Q, rank to 1
	result, err = env.dispatch.Dispatch(env.ctx, &domain.Intent{
		Kind:         domain.IntentSkillDamageAtLevel,
		ChampionName: "malphite",
	})
	require.NoError(t, err)
	damage, ok := result.(*service.SkillDamageResult)
	require.True(t, ok)
	assert.Equal(t, "Seismic Shard", damage.SkillName)
	assert.Equal(t, 1, damage.Level)

	// Counter direction defaults to countered_by
	result, err = env.dispatch.Dispatch(env.ctx, &domain.Intent{
		Kind:         domain.IntentCounterQuery,
		ChampionName: "Yasuo",
	})
	require.NoError(t, err)
	counters, ok := result.(*service.CountersResult)
	require.True(t, ok)
	assert.Equal(t, "who_counters_this_champion", counters.QueryType)

	// An empty monster name lists the roster
	result, err = env.dispatch.Dispatch(env.ctx, &domain.Intent{Kind: domain.IntentMonsterInfo})
	require.NoError(t, err)
	monsters, ok := result.(*service.MonsterListResult)
	require.True(t, ok)
	assert.Equal(t, 2, monsters.Total)

	result, err = env.dispatch.Dispatch(env.ctx, &domain.Intent{Kind: domain.IntentTurretInfo, TurretName: "list"})
	require.NoError(t, err)
	_, ok = result.(*service.TurretListResult)
	assert.True(t, ok)
}

func TestDispatchService_SemanticIntents(t *testing.T) {
	env := newGraphEnv(t)

	result, err := env.dispatch.Dispatch(env.ctx, &domain.Intent{
		Kind:    domain.IntentChampionByCC,
		CCTypes: []string{"Stun"},
	})
	require.NoError(t, err)
	payload, ok := result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []string{"Stun"}, payload["cc_types"])
	assert.Equal(t, []string{"Annie", "Leona"}, payload["champions"])
	assert.Equal(t, 2, payload["count"])

	// The executed pattern queries ride along for transparency
	queries, ok := payload["queries_executed"].([]string)
	require.True(t, ok)
	require.Len(t, queries, 1)
	assert.Contains(t, queries[0], "hasCrowdControl StunCC")

	result, err = env.dispatch.Dispatch(env.ctx, &domain.Intent{
		Kind:       domain.IntentMultiPropertyFilter,
		Role:       "TankRole",
		CCTypes:    []string{"Knockup"},
		PowerCurve: "MidGame",
	})
	require.NoError(t, err)
	payload, ok = result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []string{"Malphite"}, payload["champions"])

	result, err = env.dispatch.Dispatch(env.ctx, &domain.Intent{
		Kind:           domain.IntentTeamCounterAnalysis,
		EnemyChampions: []string{"Yasuo"},
	})
	require.NoError(t, err)
	payload, ok = result.(map[string]any)
	require.True(t, ok)
	ranked, ok := payload["counter_coverage"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, ranked, 1)
	assert.Equal(t, "Annie", ranked[0]["champion"])
	assert.Equal(t, 1, ranked[0]["counter_count"])

	result, err = env.dispatch.Dispatch(env.ctx, &domain.Intent{
		Kind:          domain.IntentTeamSynergyAnalysis,
		TeamChampions: []string{"Jinx", "Leona"},
	})
	require.NoError(t, err)
	payload, ok = result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 3, payload["total_score"])
	assert.Equal(t, "Strong", payload["rating"])
}

func TestDispatchService_SnapshotIntents(t *testing.T) {
	env := newGraphEnv(t)

	result, err := env.dispatch.Dispatch(env.ctx, &domain.Intent{
		Kind:                 domain.IntentSnapshotAnalysis,
		SnapshotAnalysisType: "game_state",
	})
	require.NoError(t, err)
	gameState, ok := result.(*service.GameStateAnalysis)
	require.True(t, ok)
	assert.Equal(t, "Ahead", gameState.GameState)

	// Out-of-range game indexes fall back to the first snapshot
	index := 42
	result, err = env.dispatch.Dispatch(env.ctx, &domain.Intent{
		Kind:                 domain.IntentSnapshotAnalysis,
		SnapshotAnalysisType: "items",
		GameIndex:            &index,
	})
	require.NoError(t, err)
	items, ok := result.(*service.ItemAnalysis)
	require.True(t, ok)
	assert.Equal(t, "Malphite", items.Champion)

	result, err = env.dispatch.Dispatch(env.ctx, &domain.Intent{Kind: domain.IntentSnapshotAnalysis})
	require.NoError(t, err)
	_, ok = result.(*service.FullAnalysis)
	assert.True(t, ok)

	result, err = env.dispatch.Dispatch(env.ctx, &domain.Intent{Kind: domain.IntentAvailableGames})
	require.NoError(t, err)
	payload, ok := result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 1, payload["count"])
}
