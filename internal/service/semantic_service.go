package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/gizemyilmaz/lol-knowledge-engine/internal/domain"
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/repository"
)

// SemanticService answers multi-criteria questions over the knowledge graph.
// Every criterion is an AND constraint. Executed pattern queries are recorded
// in a log so the front end can show how an answer was derived.
type SemanticService struct {
	facts    repository.FactStore
	resolver *NameResolver

	mu          sync.Mutex
	lastQueries []string
}

func NewSemanticService(facts repository.FactStore, resolver *NameResolver) *SemanticService {
	return &SemanticService{facts: facts, resolver: resolver}
}

// ClearQueryLog resets the log. The dispatcher calls this before each
// semantic operation.
func (s *SemanticService) ClearQueryLog() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastQueries = nil
}

// LastQueries returns the pattern queries executed since the last clear.
func (s *SemanticService) LastQueries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lastQueries))
	copy(out, s.lastQueries)
	return out
}

func (s *SemanticService) logQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastQueries = append(s.lastQueries, q)
}

func renderSelect(patterns []domain.TriplePattern) string {
	var b strings.Builder
	b.WriteString("SELECT ?champion WHERE {\n")
	for _, p := range patterns {
		fmt.Fprintf(&b, "  ?champion %s %s .\n", p.Predicate, p.Object)
	}
	b.WriteString("}")
	return b.String()
}

// subjectsFor runs a logged conjunctive query and maps keys to display names.
func (s *SemanticService) subjectsFor(ctx context.Context, patterns []domain.TriplePattern) ([]string, error) {
	s.logQuery(renderSelect(patterns))

	keys, err := s.facts.SubjectsMatching(ctx, patterns)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, s.resolver.DisplayName(domain.KindChampion, key))
	}
	return names, nil
}

// ChampionsByCC returns champions that have every listed CC type.
func (s *SemanticService) ChampionsByCC(ctx context.Context, ccTypes []string) ([]string, error) {
	if len(ccTypes) == 0 {
		return []string{}, nil
	}
	patterns := make([]domain.TriplePattern, 0, len(ccTypes))
	for _, cc := range ccTypes {
		patterns = append(patterns, domain.TriplePattern{Predicate: domain.PredHasCrowdControl, Object: cc + domain.SuffixCC})
	}
	return s.subjectsFor(ctx, patterns)
}

// ChampionsByEffects returns champions that have every listed ability effect.
func (s *SemanticService) ChampionsByEffects(ctx context.Context, effects []string) ([]string, error) {
	if len(effects) == 0 {
		return []string{}, nil
	}
	patterns := make([]domain.TriplePattern, 0, len(effects))
	for _, effect := range effects {
		patterns = append(patterns, domain.TriplePattern{Predicate: domain.PredHasAbilityEffect, Object: effect + domain.SuffixEffect})
	}
	return s.subjectsFor(ctx, patterns)
}

// ChampionsByPlaystyles returns champions that have every listed playstyle.
func (s *SemanticService) ChampionsByPlaystyles(ctx context.Context, playstyles []string) ([]string, error) {
	if len(playstyles) == 0 {
		return []string{}, nil
	}
	patterns := make([]domain.TriplePattern, 0, len(playstyles))
	for _, style := range playstyles {
		patterns = append(patterns, domain.TriplePattern{Predicate: domain.PredHasPlaystyle, Object: style + domain.SuffixPlaystyle})
	}
	return s.subjectsFor(ctx, patterns)
}

// ChampionsByPowerCurve returns champions that spike in the given game phase.
func (s *SemanticService) ChampionsByPowerCurve(ctx context.Context, powerCurve string) ([]string, error) {
	return s.subjectsFor(ctx, []domain.TriplePattern{
		{Predicate: domain.PredHasPowerSpike, Object: powerCurve + domain.SuffixPowerSpike},
	})
}

// ChampionsByWinCondition returns champions that excel at the given win condition.
func (s *SemanticService) ChampionsByWinCondition(ctx context.Context, winCondition string) ([]string, error) {
	return s.subjectsFor(ctx, []domain.TriplePattern{
		{Predicate: domain.PredHasWinCondition, Object: winCondition + domain.SuffixWinCondition},
	})
}

// SearchCriteria is the full set of AND constraints for a champion search.
type SearchCriteria struct {
	Roles         []string `json:"roles,omitempty"`
	Lanes         []string `json:"lanes,omitempty"`
	CCTypes       []string `json:"cc_types,omitempty"`
	Effects       []string `json:"ability_effects,omitempty"`
	Playstyles    []string `json:"playstyles,omitempty"`
	PowerCurves   []string `json:"power_curves,omitempty"`
	WinConditions []string `json:"win_conditions,omitempty"`
	DamageType    string   `json:"damage_type,omitempty"`
}

func (c SearchCriteria) patterns() []domain.TriplePattern {
	var patterns []domain.TriplePattern
	for _, role := range c.Roles {
		patterns = append(patterns, domain.TriplePattern{Predicate: domain.PredPlaysRole, Object: role})
	}
	for _, lane := range c.Lanes {
		patterns = append(patterns, domain.TriplePattern{Predicate: domain.PredTypicalLane, Object: lane})
	}
	for _, cc := range c.CCTypes {
		patterns = append(patterns, domain.TriplePattern{Predicate: domain.PredHasCrowdControl, Object: cc + domain.SuffixCC})
	}
	for _, effect := range c.Effects {
		patterns = append(patterns, domain.TriplePattern{Predicate: domain.PredHasAbilityEffect, Object: effect + domain.SuffixEffect})
	}
	for _, style := range c.Playstyles {
		patterns = append(patterns, domain.TriplePattern{Predicate: domain.PredHasPlaystyle, Object: style + domain.SuffixPlaystyle})
	}
	for _, curve := range c.PowerCurves {
		patterns = append(patterns, domain.TriplePattern{Predicate: domain.PredHasPowerSpike, Object: curve + domain.SuffixPowerSpike})
	}
	for _, cond := range c.WinConditions {
		patterns = append(patterns, domain.TriplePattern{Predicate: domain.PredHasWinCondition, Object: cond + domain.SuffixWinCondition})
	}
	if c.DamageType != "" {
		patterns = append(patterns, domain.TriplePattern{Predicate: domain.PredDealsDamageType, Object: c.DamageType})
	}
	return patterns
}

// MultiCriteriaSearch finds champions matching every given criterion. No
// criteria means no matches.
func (s *SemanticService) MultiCriteriaSearch(ctx context.Context, criteria SearchCriteria) ([]string, error) {
	patterns := criteria.patterns()
	if len(patterns) == 0 {
		return []string{}, nil
	}
	return s.subjectsFor(ctx, patterns)
}

// CounterCoverage lists the enemies a single champion answers.
type CounterCoverage struct {
	Champion string   `json:"champion"`
	Counters []string `json:"counters"`
}

// TeamCounterCoverage finds champions that counter members of the enemy team,
// ordered by how many enemies each one covers.
func (s *SemanticService) TeamCounterCoverage(ctx context.Context, enemyChampions []string) ([]CounterCoverage, error) {
	coverage := make(map[string][]string)
	var order []string

	for _, enemy := range enemyChampions {
		enemyKey, enemyDisplay, ok := s.resolver.ResolveChampion(enemy)
		if !ok {
			continue
		}

		s.logQuery(fmt.Sprintf("SELECT ?counter WHERE {\n  %s counteredBy ?counter .\n}", enemyKey))
		counterKeys, err := s.facts.Objects(ctx, enemyKey, domain.PredCounteredBy)
		if err != nil {
			return nil, err
		}

		for _, key := range counterKeys {
			name := s.resolver.DisplayName(domain.KindChampion, key)
			if _, seen := coverage[name]; !seen {
				order = append(order, name)
			}
			coverage[name] = append(coverage[name], enemyDisplay)
		}
	}

	result := make([]CounterCoverage, 0, len(order))
	for _, name := range order {
		result = append(result, CounterCoverage{Champion: name, Counters: coverage[name]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return len(result[i].Counters) > len(result[j].Counters)
	})
	return result, nil
}

// SynergyPair is a synergizing pair within a team.
type SynergyPair struct {
	First  string `json:"first"`
	Second string `json:"second"`
	Level  string `json:"level"` // strong or normal
}

// TeamSynergy is the synergy assessment for a team composition.
type TeamSynergy struct {
	Pairs       []SynergyPair `json:"synergy_pairs"`
	TotalScore  int           `json:"total_score"`
	MaxPossible int           `json:"max_possible"`
}

func (s *SemanticService) askEither(ctx context.Context, a, b, predicate string) (bool, error) {
	found, err := s.facts.Ask(ctx, a, predicate, b)
	if err != nil || found {
		return found, err
	}
	return s.facts.Ask(ctx, b, predicate, a)
}

// TeamSynergyScore scores every pair in the team: 3 points for a strong
// synergy, 1 for a normal one. Max possible is 3 per pair.
func (s *SemanticService) TeamSynergyScore(ctx context.Context, teamChampions []string) (*TeamSynergy, error) {
	keys := make([]string, len(teamChampions))
	names := make([]string, len(teamChampions))
	for i, name := range teamChampions {
		if key, display, ok := s.resolver.ResolveChampion(name); ok {
			keys[i] = key
			names[i] = display
		} else {
			keys[i] = NormalizeChampionName(name)
			names[i] = name
		}
	}

	synergy := &TeamSynergy{
		Pairs:       []SynergyPair{},
		MaxPossible: len(teamChampions) * (len(teamChampions) - 1) / 2 * 3,
	}

	for i := range keys {
		for j := i + 1; j < len(keys); j++ {
			strong, err := s.askEither(ctx, keys[i], keys[j], domain.PredStrongSynergyWith)
			if err != nil {
				return nil, err
			}
			if strong {
				synergy.Pairs = append(synergy.Pairs, SynergyPair{First: names[i], Second: names[j], Level: "strong"})
				synergy.TotalScore += 3
				continue
			}

			normal, err := s.askEither(ctx, keys[i], keys[j], domain.PredSynergyWith)
			if err != nil {
				return nil, err
			}
			if normal {
				synergy.Pairs = append(synergy.Pairs, SynergyPair{First: names[i], Second: names[j], Level: "normal"})
				synergy.TotalScore++
			}
		}
	}

	return synergy, nil
}

// SynergyRating buckets a synergy score against its maximum.
func SynergyRating(total, maxPossible int) string {
	switch {
	case float64(total) > float64(maxPossible)*0.5:
		return "Strong"
	case float64(total) > float64(maxPossible)*0.25:
		return "Moderate"
	default:
		return "Weak"
	}
}

// PickRecommendation is a scored champion suggestion for a lane.
type PickRecommendation struct {
	Champion string   `json:"champion"`
	Score    int      `json:"score"`
	Reasons  []string `json:"reasons"`
}

// RecommendPick scores the lane's champion pool: countering the enemy laner
// is worth 5 points, each ally synergy 2, each matching playstyle 1. Only
// champions with a positive score are returned, best first, capped at 10.
func (s *SemanticService) RecommendPick(ctx context.Context, lane, enemyChampion string, allyChampions, preferredPlaystyles []string) ([]PickRecommendation, error) {
	s.logQuery(fmt.Sprintf("SELECT ?champion WHERE {\n  ?champion typicalLane %s .\n}", lane))
	laneKeys, err := s.facts.Subjects(ctx, domain.PredTypicalLane, lane)
	if err != nil {
		return nil, err
	}

	var enemyKey string
	if enemyChampion != "" {
		if key, _, ok := s.resolver.ResolveChampion(enemyChampion); ok {
			enemyKey = key
		}
	}

	allyKeys := make([]string, 0, len(allyChampions))
	allyNames := make([]string, 0, len(allyChampions))
	for _, ally := range allyChampions {
		if key, display, ok := s.resolver.ResolveChampion(ally); ok {
			allyKeys = append(allyKeys, key)
			allyNames = append(allyNames, display)
		}
	}

	var candidates []PickRecommendation
	for _, champKey := range laneKeys {
		score := 0
		var reasons []string

		if enemyKey != "" {
			counters, err := s.facts.Ask(ctx, champKey, domain.PredCounters, enemyKey)
			if err != nil {
				return nil, err
			}
			if !counters {
				counters, err = s.facts.Ask(ctx, champKey, domain.PredHardCounters, enemyKey)
				if err != nil {
					return nil, err
				}
			}
			if counters {
				score += 5
				reasons = append(reasons, fmt.Sprintf("Counters %s", s.resolver.DisplayName(domain.KindChampion, enemyKey)))
			}
		}

		for i, allyKey := range allyKeys {
			strong, err := s.askEither(ctx, champKey, allyKey, domain.PredStrongSynergyWith)
			if err != nil {
				return nil, err
			}
			if !strong {
				strong, err = s.askEither(ctx, champKey, allyKey, domain.PredSynergyWith)
				if err != nil {
					return nil, err
				}
			}
			if strong {
				score += 2
				reasons = append(reasons, fmt.Sprintf("Synergizes with %s", allyNames[i]))
			}
		}

		for _, style := range preferredPlaystyles {
			has, err := s.facts.Ask(ctx, champKey, domain.PredHasPlaystyle, style+domain.SuffixPlaystyle)
			if err != nil {
				return nil, err
			}
			if has {
				score++
				reasons = append(reasons, fmt.Sprintf("Has %s playstyle", style))
			}
		}

		if score > 0 {
			candidates = append(candidates, PickRecommendation{
				Champion: s.resolver.DisplayName(domain.KindChampion, champKey),
				Score:    score,
				Reasons:  reasons,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > 10 {
		candidates = candidates[:10]
	}
	return candidates, nil
}

// SemanticProfile is the full tag profile of a champion.
type SemanticProfile struct {
	Champion      string   `json:"champion"`
	CCTypes       []string `json:"cc_types"`
	Effects       []string `json:"effects"`
	Playstyles    []string `json:"playstyles"`
	PowerSpikes   []string `json:"power_spikes"`
	WinConditions []string `json:"win_conditions"`
	Roles         []string `json:"roles"`
	Lanes         []string `json:"lanes"`
}

// ChampionSemanticProfile collects every tag attached to a champion. An
// unknown champion yields an empty profile rather than an error.
func (s *SemanticService) ChampionSemanticProfile(ctx context.Context, championName string) (*SemanticProfile, error) {
	profile := &SemanticProfile{
		Champion:      championName,
		CCTypes:       []string{},
		Effects:       []string{},
		Playstyles:    []string{},
		PowerSpikes:   []string{},
		WinConditions: []string{},
		Roles:         []string{},
		Lanes:         []string{},
	}

	key, display, ok := s.resolver.ResolveChampion(championName)
	if !ok {
		return profile, nil
	}
	profile.Champion = display

	collect := func(predicate, suffix string, dest *[]string) error {
		s.logQuery(fmt.Sprintf("SELECT ?value WHERE {\n  %s %s ?value .\n}", key, predicate))
		objects, err := s.facts.Objects(ctx, key, predicate)
		if err != nil {
			return err
		}
		for _, o := range objects {
			*dest = append(*dest, strings.TrimSuffix(o, suffix))
		}
		return nil
	}

	if err := collect(domain.PredHasCrowdControl, domain.SuffixCC, &profile.CCTypes); err != nil {
		return nil, err
	}
	if err := collect(domain.PredHasAbilityEffect, domain.SuffixEffect, &profile.Effects); err != nil {
		return nil, err
	}
	if err := collect(domain.PredHasPlaystyle, domain.SuffixPlaystyle, &profile.Playstyles); err != nil {
		return nil, err
	}
	if err := collect(domain.PredHasPowerSpike, domain.SuffixPowerSpike, &profile.PowerSpikes); err != nil {
		return nil, err
	}
	if err := collect(domain.PredHasWinCondition, domain.SuffixWinCondition, &profile.WinConditions); err != nil {
		return nil, err
	}
	if err := collect(domain.PredPlaysRole, "Role", &profile.Roles); err != nil {
		return nil, err
	}
	if err := collect(domain.PredTypicalLane, "", &profile.Lanes); err != nil {
		return nil, err
	}

	return profile, nil
}
