package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gizemyilmaz/lol-knowledge-engine/internal/domain"
)

func TestChampionTriples_MatchupScoreTiers(t *testing.T) {
	tests := []struct {
		name        string
		score       float64
		subjectPred string
		mirrorPred  string
	}{
		{"hard counter at the boundary", 4.0, domain.PredHardCounters, domain.PredHardCounteredBy},
		{"soft counter just above", 4.1, domain.PredCounters, domain.PredCounteredBy},
		{"even lane goes to the favorable side", 5.0, domain.PredCounters, domain.PredCounteredBy},
		{"soft countered just below hard", 5.4, domain.PredCounteredBy, domain.PredCounters},
		{"hard countered at the boundary", 5.5, domain.PredHardCounteredBy, domain.PredHardCounters},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			champ := &championData{MatchupScores: map[string]float64{"Yasuo": tt.score}}
			triples := championTriples("annie", champ)

			// Every recorded score emits exactly one mirrored pair
			require.Len(t, triples, 2)
			assert.Equal(t, &domain.Triple{Subject: "annie", Predicate: tt.subjectPred, Object: "yasuo"}, triples[0])
			assert.Equal(t, &domain.Triple{Subject: "yasuo", Predicate: tt.mirrorPred, Object: "annie"}, triples[1])
		})
	}
}

func TestChampionTriples_SynergyWinRateTiers(t *testing.T) {
	tests := []struct {
		winRate   float64
		predicate string
	}{
		{52.0, domain.PredStrongSynergyWith},
		{50.0, domain.PredSynergyWith},
		{48.0, domain.PredWeakSynergyWith},
		{47.9, ""},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("win rate %.1f", tt.winRate), func(t *testing.T) {
			champ := &championData{SynergyWinRates: map[string]float64{"Leona": tt.winRate}}
			triples := championTriples("jinx", champ)

			if tt.predicate == "" {
				assert.Empty(t, triples)
				return
			}
			require.Len(t, triples, 1)
			assert.Equal(t, &domain.Triple{Subject: "jinx", Predicate: tt.predicate, Object: "leona"}, triples[0])
		})
	}
}

func TestChampionTriples_CuratedListsAndTags(t *testing.T) {
	champ := &championData{
		Roles:        []string{"TankRole"},
		CCTypes:      []string{"Stun"},
		HardCounters: []string{"Yasuo"},
		CoreItems:    []string{"Thornmail"},
	}
	triples := championTriples("malphite", champ)

	assert.Contains(t, triples, &domain.Triple{Subject: "malphite", Predicate: domain.PredPlaysRole, Object: "TankRole"})
	assert.Contains(t, triples, &domain.Triple{Subject: "malphite", Predicate: domain.PredHasCrowdControl, Object: "StunCC"})
	assert.Contains(t, triples, &domain.Triple{Subject: "malphite", Predicate: domain.PredHardCounters, Object: "yasuo"})
	assert.Contains(t, triples, &domain.Triple{Subject: "malphite", Predicate: domain.PredCoreItem, Object: "thornmail"})
}
