package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gizemyilmaz/lol-knowledge-engine/internal/domain"
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/testutil"
)

func TestFactStore_Ask(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	ctx := context.Background()
	testutil.SeedGraph(t, ctx, testDB.Repos)

	found, err := testDB.Repos.Facts.Ask(ctx, "malphite", domain.PredHardCounters, "yasuo")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = testDB.Repos.Facts.Ask(ctx, "yasuo", domain.PredHardCounters, "malphite")
	require.NoError(t, err)
	assert.False(t, found)

	found, err = testDB.Repos.Facts.Ask(ctx, "nobody", domain.PredPlaysRole, "TankRole")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFactStore_ObjectsAndSubjects(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	ctx := context.Background()
	testutil.SeedGraph(t, ctx, testDB.Repos)

	// Objects preserve insertion order
	objects, err := testDB.Repos.Facts.Objects(ctx, "leona", domain.PredHasCrowdControl)
	require.NoError(t, err)
	assert.Equal(t, []string{"StunCC", "RootCC"}, objects)

	objects, err = testDB.Repos.Facts.Objects(ctx, "leona", domain.PredHardCounters)
	require.NoError(t, err)
	assert.Empty(t, objects)

	subjects, err := testDB.Repos.Facts.Subjects(ctx, domain.PredTypicalLane, "TopLane")
	require.NoError(t, err)
	assert.Equal(t, []string{"malphite", "dr_mundo"}, subjects)
}

func TestFactStore_SubjectsMatching(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	ctx := context.Background()
	testutil.SeedGraph(t, ctx, testDB.Repos)

	// Single pattern, ordered by display name: Annie before Leona
	keys, err := testDB.Repos.Facts.SubjectsMatching(ctx, []domain.TriplePattern{
		{Predicate: domain.PredHasCrowdControl, Object: "StunCC"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"annie", "leona"}, keys)

	// Conjunction: every pattern must match
	keys, err = testDB.Repos.Facts.SubjectsMatching(ctx, []domain.TriplePattern{
		{Predicate: domain.PredPlaysRole, Object: "TankRole"},
		{Predicate: domain.PredHasCrowdControl, Object: "KnockupCC"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"malphite"}, keys)

	// A contradictory conjunction short-circuits to empty
	keys, err = testDB.Repos.Facts.SubjectsMatching(ctx, []domain.TriplePattern{
		{Predicate: domain.PredHasCrowdControl, Object: "StunCC"},
		{Predicate: domain.PredHasCrowdControl, Object: "KnockupCC"},
	})
	require.NoError(t, err)
	assert.Empty(t, keys)

	keys, err = testDB.Repos.Facts.SubjectsMatching(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestFactStore_InsertMany(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	ctx := context.Background()

	err := testDB.Repos.Facts.InsertMany(ctx, []*domain.Triple{
		{Subject: "aatrox", Predicate: domain.PredPlaysRole, Object: "WarriorRole"},
		{Subject: "aatrox", Predicate: domain.PredTypicalLane, Object: "TopLane"},
	})
	require.NoError(t, err)

	objects, err := testDB.Repos.Facts.Objects(ctx, "aatrox", domain.PredPlaysRole)
	require.NoError(t, err)
	assert.Equal(t, []string{"WarriorRole"}, objects)

	// Empty batches are a no-op
	require.NoError(t, testDB.Repos.Facts.InsertMany(ctx, nil))
}
