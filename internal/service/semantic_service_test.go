package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gizemyilmaz/lol-knowledge-engine/internal/domain"
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/service"
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/testutil"
)

// graphEnv wires the service layer against a seeded test database.
type graphEnv struct {
	ctx      context.Context
	lookup   *service.LookupService
	semantic *service.SemanticService
	snapshot *service.SnapshotService
	dispatch *service.DispatchService
}

func newGraphEnv(t *testing.T) *graphEnv {
	t.Helper()

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	testutil.SeedGraph(t, ctx, testDB.Repos)

	resolver, err := service.NewNameResolver(ctx, testDB.Repos.Entity)
	require.NoError(t, err)

	lookup := service.NewLookupService(testDB.Repos, resolver)
	semantic := service.NewSemanticService(testDB.Repos.Facts, resolver)
	snapshot := service.NewSnapshotService(lookup, []domain.Snapshot{testutil.SnapshotFixture()})
	dispatch := service.NewDispatchService(lookup, semantic, snapshot)

	return &graphEnv{
		ctx:      ctx,
		lookup:   lookup,
		semantic: semantic,
		snapshot: snapshot,
		dispatch: dispatch,
	}
}

func TestSemanticService_ChampionsByCC(t *testing.T) {
	env := newGraphEnv(t)

	// Results come back ordered by display name
	champions, err := env.semantic.ChampionsByCC(env.ctx, []string{"Stun"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Annie", "Leona"}, champions)

	// Multiple CC types are an AND constraint
	champions, err = env.semantic.ChampionsByCC(env.ctx, []string{"Knockup", "Slow"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Malphite"}, champions)

	champions, err = env.semantic.ChampionsByCC(env.ctx, []string{"Stun", "Knockup"})
	require.NoError(t, err)
	assert.Empty(t, champions)

	champions, err = env.semantic.ChampionsByCC(env.ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, champions)
}

func TestSemanticService_ChampionsByEffects(t *testing.T) {
	env := newGraphEnv(t)

	champions, err := env.semantic.ChampionsByEffects(env.ctx, []string{"Dash"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Yasuo"}, champions)

	champions, err = env.semantic.ChampionsByEffects(env.ctx, []string{"Heal"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Dr. Mundo"}, champions)
}

func TestSemanticService_ChampionsByPowerCurve(t *testing.T) {
	env := newGraphEnv(t)

	champions, err := env.semantic.ChampionsByPowerCurve(env.ctx, "LateGame")
	require.NoError(t, err)
	assert.Equal(t, []string{"Dr. Mundo", "Jinx"}, champions)

	champions, err = env.semantic.ChampionsByPowerCurve(env.ctx, "EarlyGame")
	require.NoError(t, err)
	assert.Empty(t, champions)
}

func TestSemanticService_MultiCriteriaSearch(t *testing.T) {
	env := newGraphEnv(t)

	champions, err := env.semantic.MultiCriteriaSearch(env.ctx, service.SearchCriteria{
		Roles:   []string{"TankRole"},
		CCTypes: []string{"Knockup"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Malphite"}, champions)

	champions, err = env.semantic.MultiCriteriaSearch(env.ctx, service.SearchCriteria{
		Lanes:      []string{"BottomLane"},
		DamageType: "MagicDamage",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Leona"}, champions)

	// No criteria means no matches, not all champions
	champions, err = env.semantic.MultiCriteriaSearch(env.ctx, service.SearchCriteria{})
	require.NoError(t, err)
	assert.Empty(t, champions)
}

func TestSemanticService_QueryLog(t *testing.T) {
	env := newGraphEnv(t)

	env.semantic.ClearQueryLog()
	_, err := env.semantic.ChampionsByCC(env.ctx, []string{"Stun"})
	require.NoError(t, err)

	queries := env.semantic.LastQueries()
	require.Len(t, queries, 1)
	assert.Contains(t, queries[0], "SELECT ?champion WHERE")
	assert.Contains(t, queries[0], "hasCrowdControl StunCC")

	// ASK probes are not logged: a synergy score runs only existence checks
	env.semantic.ClearQueryLog()
	_, err = env.semantic.TeamSynergyScore(env.ctx, []string{"Jinx", "Leona"})
	require.NoError(t, err)
	assert.Empty(t, env.semantic.LastQueries())
}

func TestSemanticService_TeamCounterCoverage(t *testing.T) {
	env := newGraphEnv(t)

	coverage, err := env.semantic.TeamCounterCoverage(env.ctx, []string{"Yasuo"})
	require.NoError(t, err)
	require.Len(t, coverage, 1)
	assert.Equal(t, "Annie", coverage[0].Champion)
	assert.Equal(t, []string{"Yasuo"}, coverage[0].Counters)

	// Unresolvable enemies are skipped rather than failing the analysis
	coverage, err = env.semantic.TeamCounterCoverage(env.ctx, []string{"NotAChampion"})
	require.NoError(t, err)
	assert.Empty(t, coverage)
}

func TestSemanticService_TeamSynergyScore(t *testing.T) {
	env := newGraphEnv(t)

	synergy, err := env.semantic.TeamSynergyScore(env.ctx, []string{"Jinx", "Leona"})
	require.NoError(t, err)
	assert.Equal(t, 3, synergy.TotalScore)
	assert.Equal(t, 3, synergy.MaxPossible)
	require.Len(t, synergy.Pairs, 1)
	assert.Equal(t, "strong", synergy.Pairs[0].Level)
	assert.Equal(t, "Strong", service.SynergyRating(synergy.TotalScore, synergy.MaxPossible))

	// Normal synergy is worth one point, found in either edge direction
	synergy, err = env.semantic.TeamSynergyScore(env.ctx, []string{"Malphite", "Leona"})
	require.NoError(t, err)
	assert.Equal(t, 1, synergy.TotalScore)
	require.Len(t, synergy.Pairs, 1)
	assert.Equal(t, "normal", synergy.Pairs[0].Level)

	synergy, err = env.semantic.TeamSynergyScore(env.ctx, []string{"Yasuo", "Annie"})
	require.NoError(t, err)
	assert.Equal(t, 0, synergy.TotalScore)
	assert.Empty(t, synergy.Pairs)
}

func TestSemanticService_RecommendPick(t *testing.T) {
	env := newGraphEnv(t)

	// Annie counters Yasuo (+5) and has the Burst playstyle (+1); Yasuo
	// himself scores zero and is excluded.
	recs, err := env.semantic.RecommendPick(env.ctx, "MidLane", "Yasuo", []string{"Leona"}, []string{"Burst"})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Annie", recs[0].Champion)
	assert.Equal(t, 6, recs[0].Score)
	assert.Len(t, recs[0].Reasons, 2)

	recs, err = env.semantic.RecommendPick(env.ctx, "TopLane", "", []string{"Leona"}, nil)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Malphite", recs[0].Champion)
	assert.Equal(t, 2, recs[0].Score)
}

func TestSemanticService_ChampionSemanticProfile(t *testing.T) {
	env := newGraphEnv(t)

	profile, err := env.semantic.ChampionSemanticProfile(env.ctx, "leona")
	require.NoError(t, err)
	assert.Equal(t, "Leona", profile.Champion)
	assert.Equal(t, []string{"Stun", "Root"}, profile.CCTypes)
	assert.Equal(t, []string{"Engage"}, profile.Playstyles)
	assert.Equal(t, []string{"Pick"}, profile.WinConditions)
	assert.Equal(t, []string{"Support"}, profile.Roles)
	assert.Equal(t, []string{"BottomLane"}, profile.Lanes)

	// Unknown champions yield an empty profile, not an error
	profile, err = env.semantic.ChampionSemanticProfile(env.ctx, "NotAChampion")
	require.NoError(t, err)
	assert.Equal(t, "NotAChampion", profile.Champion)
	assert.Empty(t, profile.CCTypes)
	assert.Empty(t, profile.Roles)
}
