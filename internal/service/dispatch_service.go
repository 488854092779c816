package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gizemyilmaz/lol-knowledge-engine/internal/domain"
)

const unknownIntentMessage = "Could not understand the query. Try asking about champion stats, skill damage, " +
	"counters, synergies, builds, items, monsters, or turrets. You can also ask semantic questions like " +
	"'tanks with stuns', 'late game champions', or 'who counters this enemy team?'"

// DispatchService routes a classified intent to the operation that answers it
// and normalizes the result into a JSON-friendly payload.
type DispatchService struct {
	lookup   *LookupService
	semantic *SemanticService
	snapshot *SnapshotService
}

func NewDispatchService(lookup *LookupService, semantic *SemanticService, snapshot *SnapshotService) *DispatchService {
	return &DispatchService{lookup: lookup, semantic: semantic, snapshot: snapshot}
}

// ErrorPayload renders an error the way results are rendered, so callers can
// always hand a JSON object to the phrasing layer. Soft misses carry their
// suggestion hints alongside the message.
func ErrorPayload(err error) map[string]any {
	payload := map[string]any{"error": err.Error()}
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		payload["error"] = notFound.Message
		for key, values := range notFound.Hints {
			payload[key] = values
		}
	}
	return payload
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func intOrDefault(value *int, fallback int) int {
	if value == nil {
		return fallback
	}
	return *value
}

// Dispatch executes the operation an intent names. Unknown intents produce a
// guidance payload, not an error; failures inside an operation surface as the
// returned error.
func (s *DispatchService) Dispatch(ctx context.Context, intent *domain.Intent) (any, error) {
	switch intent.Kind {
	case domain.IntentSkillDamageAtLevel:
		return s.lookup.SkillDamageAtLevel(ctx, intent.ChampionName,
			orDefault(intent.SkillKey, "Q"), intOrDefault(intent.SkillLevel, 1))

	case domain.IntentSkillInfo:
		return s.lookup.SkillInfo(ctx, intent.ChampionName, orDefault(intent.SkillKey, "Q"))

	case domain.IntentSkillCooldown:
		return s.lookup.SkillCooldown(ctx, intent.ChampionName,
			orDefault(intent.SkillKey, "R"), intent.SkillLevel)

	case domain.IntentSkillManaCost:
		return s.lookup.SkillCost(ctx, intent.ChampionName, orDefault(intent.SkillKey, "Q"))

	case domain.IntentChampionBaseStats:
		if intent.StatName != "" {
			return s.lookup.SpecificStat(ctx, intent.ChampionName, intent.StatName)
		}
		return s.lookup.BaseStats(ctx, intent.ChampionName)

	case domain.IntentChampionInfo:
		return s.lookup.ChampionInfo(ctx, intent.ChampionName)

	case domain.IntentChampionStatsAtLevel:
		return s.lookup.StatsAtLevel(ctx, intent.ChampionName, intOrDefault(intent.CharacterLevel, 1))

	case domain.IntentChampionComparison:
		if len(intent.ComparisonChampions) < 2 {
			return nil, fmt.Errorf("need at least two champions to compare")
		}
		return s.lookup.CompareChampions(ctx, intent.ComparisonChampions, intent.StatName)

	case domain.IntentRoleQuery:
		if intent.Role == "" {
			return nil, fmt.Errorf("no role specified")
		}
		return s.lookup.ChampionsByRole(ctx, intent.Role)

	case domain.IntentLaneQuery:
		if intent.Lane == "" {
			return nil, fmt.Errorf("no lane specified")
		}
		return s.lookup.ChampionsByLane(ctx, intent.Lane)

	case domain.IntentListSkills:
		return s.lookup.ListSkills(ctx, intent.ChampionName)

	case domain.IntentCounterQuery:
		return s.lookup.Counters(ctx, intent.ChampionName,
			orDefault(intent.CounterDirection, "countered_by"))

	case domain.IntentSynergyQuery:
		return s.lookup.Synergies(ctx, intent.ChampionName)

	case domain.IntentBuildQuery:
		return s.lookup.Build(ctx, intent.ChampionName)

	case domain.IntentItemInfo:
		if intent.ItemName == "" {
			return nil, fmt.Errorf("no item specified")
		}
		return s.lookup.ItemInfo(ctx, intent.ItemName)

	case domain.IntentMonsterInfo:
		if intent.MonsterName == "" || intent.MonsterName == "list" {
			return s.lookup.ListMonsters(ctx)
		}
		return s.lookup.MonsterInfo(ctx, intent.MonsterName)

	case domain.IntentTurretInfo:
		if intent.TurretName == "" || intent.TurretName == "list" {
			return s.lookup.ListTurrets(ctx)
		}
		return s.lookup.TurretInfo(ctx, intent.TurretName)

	case domain.IntentChampionByCC:
		return s.tagSearch(ctx, intent.CCTypes, "no CC type specified", "cc_types", s.semantic.ChampionsByCC)

	case domain.IntentChampionByEffect:
		return s.tagSearch(ctx, intent.AbilityEffects, "no ability effect specified", "ability_effects", s.semantic.ChampionsByEffects)

	case domain.IntentChampionByPlaystyle:
		return s.tagSearch(ctx, intent.Playstyles, "no playstyle specified", "playstyles", s.semantic.ChampionsByPlaystyles)

	case domain.IntentChampionByPowerCurve:
		if intent.PowerCurve == "" {
			return nil, fmt.Errorf("no power curve specified")
		}
		s.semantic.ClearQueryLog()
		champions, err := s.semantic.ChampionsByPowerCurve(ctx, intent.PowerCurve)
		if err != nil {
			return nil, err
		}
		return s.semanticPayload("power_curve", intent.PowerCurve, champions), nil

	case domain.IntentChampionByWinCondition:
		if intent.WinCondition == "" {
			return nil, fmt.Errorf("no win condition specified")
		}
		s.semantic.ClearQueryLog()
		champions, err := s.semantic.ChampionsByWinCondition(ctx, intent.WinCondition)
		if err != nil {
			return nil, err
		}
		return s.semanticPayload("win_condition", intent.WinCondition, champions), nil

	case domain.IntentMultiPropertyFilter:
		criteria := SearchCriteria{
			CCTypes:    intent.CCTypes,
			Effects:    intent.AbilityEffects,
			Playstyles: intent.Playstyles,
		}
		if intent.Role != "" {
			criteria.Roles = []string{intent.Role}
		}
		if intent.Lane != "" {
			criteria.Lanes = []string{intent.Lane}
		}
		if intent.PowerCurve != "" {
			criteria.PowerCurves = []string{intent.PowerCurve}
		}
		if intent.WinCondition != "" {
			criteria.WinConditions = []string{intent.WinCondition}
		}
		s.semantic.ClearQueryLog()
		champions, err := s.semantic.MultiCriteriaSearch(ctx, criteria)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"criteria":         criteria,
			"champions":        champions,
			"count":            len(champions),
			"queries_executed": s.semantic.LastQueries(),
		}, nil

	case domain.IntentChampionSemanticProfile:
		if intent.ChampionName == "" {
			return nil, fmt.Errorf("no champion specified")
		}
		s.semantic.ClearQueryLog()
		profile, err := s.semantic.ChampionSemanticProfile(ctx, intent.ChampionName)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"profile":          profile,
			"queries_executed": s.semantic.LastQueries(),
		}, nil

	case domain.IntentTeamCounterAnalysis:
		if len(intent.EnemyChampions) == 0 {
			return nil, fmt.Errorf("no enemy champions specified")
		}
		s.semantic.ClearQueryLog()
		coverage, err := s.semantic.TeamCounterCoverage(ctx, intent.EnemyChampions)
		if err != nil {
			return nil, err
		}
		if len(coverage) > 10 {
			coverage = coverage[:10]
		}
		ranked := make([]map[string]any, 0, len(coverage))
		for _, entry := range coverage {
			ranked = append(ranked, map[string]any{
				"champion":      entry.Champion,
				"counters":      entry.Counters,
				"counter_count": len(entry.Counters),
			})
		}
		return map[string]any{
			"enemy_team":       intent.EnemyChampions,
			"counter_coverage": ranked,
			"queries_executed": s.semantic.LastQueries(),
		}, nil

	case domain.IntentTeamSynergyAnalysis:
		if len(intent.TeamChampions) < 2 {
			return nil, fmt.Errorf("need at least two champions for synergy analysis")
		}
		s.semantic.ClearQueryLog()
		synergy, err := s.semantic.TeamSynergyScore(ctx, intent.TeamChampions)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"team":             intent.TeamChampions,
			"synergy_pairs":    synergy.Pairs,
			"total_score":      synergy.TotalScore,
			"max_possible":     synergy.MaxPossible,
			"rating":           SynergyRating(synergy.TotalScore, synergy.MaxPossible),
			"queries_executed": s.semantic.LastQueries(),
		}, nil

	case domain.IntentSnapshotAnalysis:
		snap, err := s.snapshot.SnapshotOrDefault(intOrDefault(intent.GameIndex, 0))
		if err != nil {
			return nil, err
		}
		switch orDefault(intent.SnapshotAnalysisType, "full") {
		case "items":
			return s.snapshot.AnalyzeItems(ctx, snap)
		case "counters":
			return s.snapshot.AnalyzeCounters(ctx, snap)
		case "game_state":
			return s.snapshot.AnalyzeGameState(ctx, snap)
		default:
			return s.snapshot.FullAnalysis(ctx, snap)
		}

	case domain.IntentAvailableGames:
		games := s.snapshot.AvailableGames()
		return map[string]any{
			"available_games": games,
			"count":           len(games),
		}, nil

	default:
		return map[string]any{
			"error":           unknownIntentMessage,
			"intent_detected": string(intent.Kind),
		}, nil
	}
}

// tagSearch handles the single-tag semantic lookups that share a shape.
func (s *DispatchService) tagSearch(
	ctx context.Context,
	tags []string,
	missingMsg, field string,
	query func(context.Context, []string) ([]string, error),
) (any, error) {
	if len(tags) == 0 {
		return nil, fmt.Errorf("%s", missingMsg)
	}
	s.semantic.ClearQueryLog()
	champions, err := query(ctx, tags)
	if err != nil {
		return nil, err
	}
	return s.semanticPayload(field, tags, champions), nil
}

func (s *DispatchService) semanticPayload(field string, criteria any, champions []string) map[string]any {
	return map[string]any{
		field:              criteria,
		"champions":        champions,
		"count":            len(champions),
		"queries_executed": s.semantic.LastQueries(),
	}
}
