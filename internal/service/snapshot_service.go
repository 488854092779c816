package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/gizemyilmaz/lol-knowledge-engine/internal/domain"
)

// LoadSnapshotFile reads frozen match states from a JSON file. Accepts both a
// list of snapshots and a single snapshot object.
func LoadSnapshotFile(path string) ([]domain.Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var snapshots []domain.Snapshot
	if err := json.Unmarshal(raw, &snapshots); err != nil {
		var single domain.Snapshot
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil, fmt.Errorf("failed to parse snapshot file: %w", err)
		}
		snapshots = []domain.Snapshot{single}
	}
	return snapshots, nil
}

// SnapshotService analyzes frozen match states from the subject player's
// perspective and produces item, counter, and game-state recommendations.
type SnapshotService struct {
	lookup    *LookupService
	snapshots []domain.Snapshot
}

func NewSnapshotService(lookup *LookupService, snapshots []domain.Snapshot) *SnapshotService {
	return &SnapshotService{lookup: lookup, snapshots: snapshots}
}

// Count returns the number of loaded snapshots.
func (s *SnapshotService) Count() int {
	return len(s.snapshots)
}

// Snapshot returns the snapshot at index, strictly.
func (s *SnapshotService) Snapshot(index int) (*domain.Snapshot, error) {
	if len(s.snapshots) == 0 {
		return nil, domain.ErrNoSnapshot
	}
	if index < 0 || index >= len(s.snapshots) {
		return nil, domain.ErrSnapshotOutOfRange
	}
	return &s.snapshots[index], nil
}

// SnapshotOrDefault returns the snapshot at index, falling back to the first
// one when the index is out of range. Used by the chat path.
func (s *SnapshotService) SnapshotOrDefault(index int) (*domain.Snapshot, error) {
	if len(s.snapshots) == 0 {
		return nil, domain.ErrNoSnapshot
	}
	if index < 0 || index >= len(s.snapshots) {
		return &s.snapshots[0], nil
	}
	return &s.snapshots[index], nil
}

// GameSummary identifies one loaded game for UI selection.
type GameSummary struct {
	Index       int    `json:"index"`
	MatchID     string `json:"match_id"`
	Champion    string `json:"champion"`
	Team        string `json:"team"`
	DisplayName string `json:"display_name"`
}

// AvailableGames lists the loaded games with identifying info.
func (s *SnapshotService) AvailableGames() []GameSummary {
	games := make([]GameSummary, 0, len(s.snapshots))
	for i := range s.snapshots {
		snap := &s.snapshots[i]
		matchID := snap.MatchID
		if matchID == "" {
			matchID = fmt.Sprintf("Game %d", i+1)
		}

		summary := GameSummary{Index: i, MatchID: matchID, Champion: "Unknown", Team: "Unknown"}
		if user := snap.UserPlayer(); user != nil {
			summary.Champion = user.Champion
			summary.Team = user.Team
			summary.DisplayName = fmt.Sprintf("%s - %s", user.Champion, matchID)
		} else {
			summary.DisplayName = matchID
		}
		games = append(games, summary)
	}
	return games
}

// champInfo fetches champion details, degrading to a minimal record when the
// champion is unknown so one bad name never sinks a whole analysis.
func (s *SnapshotService) champInfo(ctx context.Context, championName string) *ChampionInfoResult {
	info, err := s.lookup.ChampionInfo(ctx, championName)
	if err != nil {
		return &ChampionInfoResult{Champion: championName, DamageType: "Unknown", Roles: []string{}, Lanes: []string{}}
	}
	return info
}

func (s *SnapshotService) laneOpponent(snap *domain.Snapshot) *domain.SnapshotPlayer {
	user := snap.UserPlayer()
	if user == nil {
		return nil
	}

	userPosition := domain.Position(user.ParticipantID)
	enemies := snap.Enemies()
	for i := range enemies {
		if domain.Position(enemies[i].ParticipantID) == userPosition {
			return &enemies[i]
		}
	}
	if len(enemies) > 0 {
		return &enemies[0]
	}
	return nil
}

// PlayerPerformance summarizes one player's farm and income.
type PlayerPerformance struct {
	CS            int     `json:"cs"`
	CSPerMinute   float64 `json:"cs_per_minute"`
	CSRating      string  `json:"cs_rating"`
	Gold          int     `json:"gold"`
	GoldPerMinute int     `json:"gold_per_minute"`
	Level         int     `json:"level"`
}

func playerPerformance(p *domain.SnapshotPlayer, minute int) PlayerPerformance {
	csPerMin, goldPerMin := 0.0, 0.0
	if minute > 0 {
		csPerMin = float64(p.CS) / float64(minute)
		goldPerMin = float64(p.TotalGold) / float64(minute)
	}

	var rating string
	switch {
	case csPerMin >= 8:
		rating = "Excellent"
	case csPerMin >= 6:
		rating = "Good"
	case csPerMin >= 4:
		rating = "Average"
	default:
		rating = "Below Average"
	}

	return PlayerPerformance{
		CS:            p.CS,
		CSPerMinute:   math.Round(csPerMin*10) / 10,
		CSRating:      rating,
		Gold:          p.TotalGold,
		GoldPerMinute: int(math.Round(goldPerMin)),
		Level:         p.Level,
	}
}

func threatLevel(p *domain.SnapshotPlayer) string {
	switch {
	case p.Level >= 10 || p.TotalGold > 4500:
		return "High"
	case p.Level >= 8 || p.TotalGold > 3500:
		return "Medium"
	default:
		return ""
	}
}

// Threat is a fed enemy worth respecting.
type Threat struct {
	Champion    string   `json:"champion"`
	Level       int      `json:"level"`
	Gold        int      `json:"gold"`
	Items       []string `json:"items"`
	ThreatLevel string   `json:"threat_level"`
	Position    string   `json:"position"`
}

// EnemyComposition profiles the enemy team's damage mix and threats.
type EnemyComposition struct {
	DamageProfile string   `json:"damage_profile"`
	APHeavy       bool     `json:"ap_heavy"`
	ADHeavy       bool     `json:"ad_heavy"`
	APChampions   []string `json:"ap_champions"`
	ADChampions   []string `json:"ad_champions"`
	Tanks         []string `json:"tanks"`
	Assassins     []string `json:"assassins"`
	HasAssassins  bool     `json:"has_assassins"`
	HasTanks      bool     `json:"has_tanks"`
	Threats       []Threat `json:"threats"`
	PrimaryThreat *Threat  `json:"primary_threat"`
}

func (s *SnapshotService) analyzeEnemyComposition(ctx context.Context, enemies []domain.SnapshotPlayer) *EnemyComposition {
	comp := &EnemyComposition{
		APChampions: []string{},
		ADChampions: []string{},
		Tanks:       []string{},
		Assassins:   []string{},
		Threats:     []Threat{},
	}

	for i := range enemies {
		enemy := &enemies[i]
		info := s.champInfo(ctx, enemy.Champion)
		roles := strings.Join(info.Roles, ",")

		if strings.Contains(info.DamageType, "Magic") || strings.Contains(info.HeroType, "Mage") {
			comp.APChampions = append(comp.APChampions, enemy.Champion)
		} else if strings.Contains(info.DamageType, "Physical") || strings.Contains(info.DamageType, "Attack") {
			comp.ADChampions = append(comp.ADChampions, enemy.Champion)
		}

		if strings.Contains(info.HeroType, "Tank") || strings.Contains(roles, "TankRole") {
			comp.Tanks = append(comp.Tanks, enemy.Champion)
		}
		if strings.Contains(info.HeroType, "Assassin") || strings.Contains(roles, "AssassinRole") {
			comp.Assassins = append(comp.Assassins, enemy.Champion)
		}

		if level := threatLevel(enemy); level != "" {
			comp.Threats = append(comp.Threats, Threat{
				Champion:    enemy.Champion,
				Level:       enemy.Level,
				Gold:        enemy.TotalGold,
				Items:       enemy.Items,
				ThreatLevel: level,
				Position:    domain.Position(enemy.ParticipantID),
			})
		}
	}

	total := len(enemies)
	apRatio, adRatio := 0.0, 0.0
	if total > 0 {
		apRatio = float64(len(comp.APChampions)) / float64(total)
		adRatio = float64(len(comp.ADChampions)) / float64(total)
	}
	switch {
	case apRatio >= 0.6:
		comp.DamageProfile = "AP Heavy - Consider Magic Resist"
	case adRatio >= 0.6:
		comp.DamageProfile = "AD Heavy - Consider Armor"
	default:
		comp.DamageProfile = "Mixed Damage - Build balanced resistances"
	}

	comp.APHeavy = len(comp.APChampions) >= 3
	comp.ADHeavy = len(comp.ADChampions) >= 3
	comp.HasAssassins = len(comp.Assassins) > 0
	comp.HasTanks = len(comp.Tanks) > 0

	sort.SliceStable(comp.Threats, func(i, j int) bool {
		return comp.Threats[i].Gold > comp.Threats[j].Gold
	})
	if len(comp.Threats) > 0 {
		comp.PrimaryThreat = &comp.Threats[0]
	}
	return comp
}

var bootKeywords = []string{"boots", "greaves", "steelcaps", "treads", "shoes"}

func hasBoots(items []string) bool {
	for _, item := range items {
		lowered := strings.ToLower(item)
		for _, kw := range bootKeywords {
			if strings.Contains(lowered, kw) {
				return true
			}
		}
	}
	return false
}

var starterItemKeywords = []string{
	"doran", "cull", "tear", "dark seal", "long sword", "amplifying tome",
	"cloth armor", "ruby crystal", "sapphire crystal",
}

func isStarterItem(item string) bool {
	lowered := strings.ToLower(item)
	for _, kw := range starterItemKeywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

func containsAnyItem(items []string, keywords ...string) bool {
	for _, item := range items {
		lowered := strings.ToLower(item)
		for _, kw := range keywords {
			if strings.Contains(lowered, kw) {
				return true
			}
		}
	}
	return false
}

func itemOwned(currentLower []string, item string) bool {
	lowered := strings.ToLower(item)
	for _, ci := range currentLower {
		if strings.Contains(ci, lowered) || strings.Contains(lowered, ci) {
			return true
		}
	}
	return false
}

// BuildProgress reports how far the user is into their planned build.
type BuildProgress struct {
	CompletedCoreItems       []string `json:"completed_core_items"`
	MissingCoreItems         []string `json:"missing_core_items"`
	CoreCompletionPercentage float64  `json:"core_completion_percentage"`
	HasBoots                 bool     `json:"has_boots"`
	TotalItems               int      `json:"total_items"`
	CompletedItemsCount      int      `json:"completed_items_count"`
}

func analyzeBuildProgress(currentItems, coreItems []string) BuildProgress {
	currentLower := make([]string, len(currentItems))
	for i, item := range currentItems {
		currentLower[i] = strings.ToLower(item)
	}

	progress := BuildProgress{
		CompletedCoreItems: []string{},
		MissingCoreItems:   []string{},
		HasBoots:           hasBoots(currentItems),
		TotalItems:         len(currentItems),
	}

	for _, item := range coreItems {
		if itemOwned(currentLower, item) {
			progress.CompletedCoreItems = append(progress.CompletedCoreItems, item)
		} else {
			progress.MissingCoreItems = append(progress.MissingCoreItems, item)
		}
	}
	if len(coreItems) > 0 {
		progress.CoreCompletionPercentage = math.Round(float64(len(progress.CompletedCoreItems)) / float64(len(coreItems)) * 100)
	}

	for _, item := range currentItems {
		if !isStarterItem(item) {
			progress.CompletedItemsCount++
		}
	}
	return progress
}

// ItemSuggestion is a prioritized next-item recommendation.
type ItemSuggestion struct {
	Item     string             `json:"item"`
	Priority string             `json:"priority"` // essential, core, situational, defensive
	GoldCost int                `json:"gold_cost"`
	Stats    map[string]float64 `json:"stats,omitempty"`
	Reason   string             `json:"reason"`
	Timing   string             `json:"timing"`
}

// ImmediatePurchase is something affordable right now.
type ImmediatePurchase struct {
	Item     string `json:"item"`
	GoldCost int    `json:"gold_cost"`
	Type     string `json:"type"` // complete or component
	Reason   string `json:"reason"`
}

// LaneOpponentInfo summarizes the direct lane matchup numbers.
type LaneOpponentInfo struct {
	Champion string   `json:"champion"`
	Level    int      `json:"level"`
	Gold     int      `json:"gold"`
	Items    []string `json:"items"`
	GoldDiff int      `json:"gold_diff"`
}

// ItemAnalysis is the full item recommendation report.
type ItemAnalysis struct {
	Champion               string              `json:"champion"`
	Role                   string              `json:"role"`
	DamageType             string              `json:"damage_type"`
	CurrentItems           []string            `json:"current_items"`
	TotalGold              int                 `json:"total_gold"`
	EstimatedAvailableGold int                 `json:"estimated_available_gold"`
	UnpricedItems          int                 `json:"unpriced_items"`
	BuildProgress          BuildProgress       `json:"build_progress"`
	CoreItems              []string            `json:"core_items"`
	RecommendedItems       []string            `json:"recommended_items"`
	SituationalItems       []string            `json:"situational_items"`
	NextItemSuggestions    []ItemSuggestion    `json:"next_item_suggestions"`
	ImmediatePurchases     []ImmediatePurchase `json:"immediate_purchases"`
	LaneOpponent           *LaneOpponentInfo   `json:"lane_opponent"`
	EnemyComposition       *EnemyComposition   `json:"enemy_composition"`
}

// estimateSpentGold prices the current inventory; items without a known price
// are counted separately so the gold estimate's blind spots are visible.
func (s *SnapshotService) estimateSpentGold(ctx context.Context, items []string) (spent, unpriced int) {
	for _, item := range items {
		info, err := s.lookup.ItemInfo(ctx, item)
		if err != nil || info.GoldCost == 0 {
			unpriced++
			continue
		}
		spent += info.GoldCost
	}
	return spent, unpriced
}

// AnalyzeItems generates the item build report for the subject player.
func (s *SnapshotService) AnalyzeItems(ctx context.Context, snap *domain.Snapshot) (*ItemAnalysis, error) {
	user := snap.UserPlayer()
	if user == nil {
		return nil, domain.ErrMissingSubjectPlayer
	}

	build, err := s.lookup.Build(ctx, user.Champion)
	if err != nil {
		build = &BuildResult{CoreItems: []string{}, RecommendedItems: []string{}, SituationalItems: []string{}}
	}
	info := s.champInfo(ctx, user.Champion)

	enemyComp := s.analyzeEnemyComposition(ctx, snap.Enemies())

	var opponentInfo *LaneOpponentInfo
	if opponent := s.laneOpponent(snap); opponent != nil {
		opponentInfo = &LaneOpponentInfo{
			Champion: opponent.Champion,
			Level:    opponent.Level,
			Gold:     opponent.TotalGold,
			Items:    opponent.Items,
			GoldDiff: user.TotalGold - opponent.TotalGold,
		}
	}

	spent, unpriced := s.estimateSpentGold(ctx, user.Items)
	available := user.TotalGold - spent
	if available < 0 {
		available = 0
	}

	suggestions := s.itemSuggestions(ctx, build, user.Items, enemyComp, info)
	immediate := immediatePurchases(available, suggestions, user.Items)

	role := "Unknown"
	if len(info.Roles) > 0 {
		role = info.Roles[0]
	}

	return &ItemAnalysis{
		Champion:               user.Champion,
		Role:                   role,
		DamageType:             info.DamageType,
		CurrentItems:           user.Items,
		TotalGold:              user.TotalGold,
		EstimatedAvailableGold: available,
		UnpricedItems:          unpriced,
		BuildProgress:          analyzeBuildProgress(user.Items, build.CoreItems),
		CoreItems:              build.CoreItems,
		RecommendedItems:       build.RecommendedItems,
		SituationalItems:       build.SituationalItems,
		NextItemSuggestions:    suggestions,
		ImmediatePurchases:     immediate,
		LaneOpponent:           opponentInfo,
		EnemyComposition:       enemyComp,
	}, nil
}

func (s *SnapshotService) userChampionHeals(ctx context.Context, championName string) bool {
	key, _, ok := s.lookup.resolver.ResolveChampion(championName)
	if !ok {
		return false
	}
	heals, err := s.lookup.repos.Facts.Ask(ctx, key, domain.PredHasAbilityEffect, "HealEffect")
	if err != nil {
		return false
	}
	return heals
}

var healingChampions = []string{
	"Aatrox", "Vladimir", "Sylas", "Swain", "Soraka", "Yuumi", "Sona",
	"Nami", "Dr. Mundo", "Warwick", "Fiddlesticks", "Illaoi",
}

func (s *SnapshotService) itemSuggestions(
	ctx context.Context,
	build *BuildResult,
	currentItems []string,
	enemyComp *EnemyComposition,
	info *ChampionInfoResult,
) []ItemSuggestion {
	var recommendations []ItemSuggestion
	currentLower := make([]string, len(currentItems))
	for i, item := range currentItems {
		currentLower[i] = strings.ToLower(item)
	}

	if !hasBoots(currentItems) {
		var choice, reason string
		switch {
		case enemyComp.APHeavy:
			choice = "Mercury's Treads"
			reason = "Magic resist and tenacity against AP-heavy team"
		case enemyComp.ADHeavy || enemyComp.HasAssassins:
			choice = "Plated Steelcaps"
			reason = "Armor against AD-heavy/assassin team"
		default:
			choice = "Ionian Boots of Lucidity"
			reason = "Ability haste for faster cooldowns"
		}
		recommendations = append(recommendations, ItemSuggestion{
			Item:     choice,
			Priority: "essential",
			GoldCost: 1100,
			Reason:   reason,
			Timing:   "Buy on next back",
		})
	}

	for _, item := range build.CoreItems {
		if itemOwned(currentLower, item) {
			continue
		}
		goldCost := 0
		var stats map[string]float64
		if itemInfo, err := s.lookup.ItemInfo(ctx, item); err == nil {
			goldCost = itemInfo.GoldCost
			stats = itemInfo.Stats
		}
		recommendations = append(recommendations, ItemSuggestion{
			Item:     item,
			Priority: "core",
			GoldCost: goldCost,
			Stats:    stats,
			Reason:   fmt.Sprintf("Core build item - essential for %s's kit", info.Champion),
			Timing:   "Rush this item",
		})
	}

	if threat := enemyComp.PrimaryThreat; threat != nil {
		threatInfo := s.champInfo(ctx, threat.Champion)
		if strings.Contains(threatInfo.DamageType, "Magic") &&
			!containsAnyItem(currentItems, "spirit", "force of nature", "maw") {
			item := "Force of Nature"
			if s.userChampionHeals(ctx, info.Champion) {
				item = "Spirit Visage"
			}
			recommendations = append(recommendations, ItemSuggestion{
				Item:     item,
				Priority: "situational",
				GoldCost: 2900,
				Reason:   fmt.Sprintf("Magic resist to survive %s (fed with %d gold)", threat.Champion, threat.Gold),
				Timing:   "Build after core if they're a problem",
			})
		} else if strings.Contains(threatInfo.DamageType, "Physical") &&
			!containsAnyItem(currentItems, "thornmail", "randuin", "dead man") {
			item := "Thornmail"
			if threatInfo.IsRanged {
				item = "Randuin's Omen"
			}
			recommendations = append(recommendations, ItemSuggestion{
				Item:     item,
				Priority: "situational",
				GoldCost: 2700,
				Reason:   fmt.Sprintf("Armor to survive %s (fed with %d gold)", threat.Champion, threat.Gold),
				Timing:   "Build after core if they're a problem",
			})
		}
	}

	needsAntiheal := false
	for _, threat := range enemyComp.Threats {
		for _, healer := range healingChampions {
			if strings.EqualFold(threat.Champion, healer) {
				needsAntiheal = true
			}
		}
	}
	if needsAntiheal && !containsAnyItem(currentItems, "thornmail", "mortal", "oblivion", "putrifier") {
		item := "Mortal Reminder"
		if strings.Contains(strings.Join(info.Roles, ","), "Tank") {
			item = "Thornmail"
		}
		recommendations = append(recommendations, ItemSuggestion{
			Item:     item,
			Priority: "situational",
			GoldCost: 2700,
			Reason:   "Anti-heal to reduce enemy healing",
			Timing:   "Important against healing champions",
		})
	}

	if enemyComp.APHeavy && !containsAnyItem(currentItems, "spirit", "force", "maw") {
		timing := fmt.Sprintf("Needed against %s", strings.Join(firstN(enemyComp.APChampions, 2), ", "))
		recommendations = append(recommendations,
			ItemSuggestion{Item: "Spirit Visage", Priority: "defensive", GoldCost: 2900, Reason: "Increased healing + MR", Timing: timing},
			ItemSuggestion{Item: "Force of Nature", Priority: "defensive", GoldCost: 2900, Reason: "Movement speed + high MR", Timing: timing},
		)
	}
	if enemyComp.ADHeavy && !containsAnyItem(currentItems, "thornmail", "randuin", "dead man") {
		timing := fmt.Sprintf("Needed against %s", strings.Join(firstN(enemyComp.ADChampions, 2), ", "))
		recommendations = append(recommendations,
			ItemSuggestion{Item: "Thornmail", Priority: "defensive", GoldCost: 2700, Reason: "Armor + anti-heal + damage reflection", Timing: timing},
			ItemSuggestion{Item: "Randuin's Omen", Priority: "defensive", GoldCost: 2700, Reason: "Armor + anti-crit + slow", Timing: timing},
		)
	}

	seen := make(map[string]bool)
	unique := recommendations[:0]
	for _, rec := range recommendations {
		if !seen[rec.Item] {
			seen[rec.Item] = true
			unique = append(unique, rec)
		}
	}

	priorityOrder := map[string]int{"essential": 0, "core": 1, "situational": 2, "defensive": 3}
	sort.SliceStable(unique, func(i, j int) bool {
		pi, pj := priorityOrder[unique[i].Priority], priorityOrder[unique[j].Priority]
		if pi != pj {
			return pi < pj
		}
		return unique[i].GoldCost < unique[j].GoldCost
	})

	if len(unique) > 8 {
		unique = unique[:8]
	}
	return unique
}

func firstN(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}

type componentItem struct {
	name       string
	goldCost   int
	buildsInto string
}

var componentItems = []componentItem{
	{"Long Sword", 350, "AD items"},
	{"Amplifying Tome", 435, "AP items"},
	{"Ruby Crystal", 400, "Health items"},
	{"Cloth Armor", 300, "Armor items"},
	{"Null-Magic Mantle", 450, "MR items"},
	{"Boots", 300, "Upgraded boots"},
	{"Control Ward", 75, "Vision"},
}

func immediatePurchases(availableGold int, recommendations []ItemSuggestion, currentItems []string) []ImmediatePurchase {
	var immediate []ImmediatePurchase

	for _, rec := range recommendations {
		if rec.GoldCost > 0 && rec.GoldCost <= availableGold {
			immediate = append(immediate, ImmediatePurchase{
				Item:     rec.Item,
				GoldCost: rec.GoldCost,
				Type:     "complete",
				Reason:   rec.Reason,
			})
		}
	}

	if len(immediate) == 0 || availableGold < 1000 {
		currentLower := make([]string, len(currentItems))
		for i, item := range currentItems {
			currentLower[i] = strings.ToLower(item)
		}
		for _, comp := range componentItems {
			if comp.goldCost > availableGold {
				continue
			}
			owned := false
			for _, ci := range currentLower {
				if ci == strings.ToLower(comp.name) {
					owned = true
					break
				}
			}
			if !owned {
				immediate = append(immediate, ImmediatePurchase{
					Item:     comp.name,
					GoldCost: comp.goldCost,
					Type:     "component",
					Reason:   fmt.Sprintf("Builds into %s", comp.buildsInto),
				})
			}
		}
	}

	if len(immediate) > 5 {
		immediate = immediate[:5]
	}
	return immediate
}

// LaneMatchup is the direct lane comparison against the opposing laner.
type LaneMatchup struct {
	Opponent        string   `json:"opponent"`
	OpponentLevel   int      `json:"opponent_level"`
	OpponentGold    int      `json:"opponent_gold"`
	OpponentItems   []string `json:"opponent_items"`
	GoldDifference  int      `json:"gold_difference"`
	LevelDifference int      `json:"level_difference"`
	CSDifference    int      `json:"cs_difference"`
	LaneState       string   `json:"lane_state"`
	IsCountered     bool     `json:"is_countered"`
	CounterSeverity string   `json:"counter_severity,omitempty"`
	Advice          string   `json:"advice"`
}

// laneState buckets the lane gold difference into five states.
func laneState(goldDiff int) (state, advice string) {
	switch {
	case goldDiff > 1000:
		return "Winning", "You have a significant lead. Zone them from CS and look for kills or roams."
	case goldDiff > 300:
		return "Ahead", "You're ahead. Maintain your lead and deny farm when safe."
	case goldDiff < -1000:
		return "Losing", "You're significantly behind. Play safe under tower and wait for ganks."
	case goldDiff < -300:
		return "Behind", "You're behind. Focus on farming safely and avoid trading."
	default:
		return "Even", "Lane is even. Look for favorable trades and jungle assistance."
	}
}

func nameMatches(a, b string) bool {
	return strings.Contains(
		strings.ReplaceAll(strings.ToLower(a), " ", ""),
		strings.ReplaceAll(strings.ToLower(b), " ", ""),
	)
}

func (s *SnapshotService) analyzeLaneMatchup(user, opponent *domain.SnapshotPlayer, userCounters *CountersResult) *LaneMatchup {
	matchup := &LaneMatchup{
		Opponent:        opponent.Champion,
		OpponentLevel:   opponent.Level,
		OpponentGold:    opponent.TotalGold,
		OpponentItems:   opponent.Items,
		GoldDifference:  user.TotalGold - opponent.TotalGold,
		LevelDifference: user.Level - opponent.Level,
		CSDifference:    user.CS - opponent.CS,
	}

	for _, counter := range userCounters.HardCounteredBy {
		if nameMatches(counter, opponent.Champion) {
			matchup.IsCountered = true
			matchup.CounterSeverity = "Hard"
			break
		}
	}
	if !matchup.IsCountered {
		for _, counter := range userCounters.CounteredBy {
			if nameMatches(counter, opponent.Champion) {
				matchup.IsCountered = true
				matchup.CounterSeverity = "Soft"
				break
			}
		}
	}

	matchup.LaneState, matchup.Advice = laneState(matchup.GoldDifference)
	if matchup.IsCountered {
		matchup.Advice += fmt.Sprintf(" Note: %s is a %s counter to you - play extra careful.",
			opponent.Champion, strings.ToLower(matchup.CounterSeverity))
	}
	return matchup
}

// CounterWarning flags an enemy that counters the subject player.
type CounterWarning struct {
	Champion    string `json:"champion"`
	CounterType string `json:"counter_type"`
	Advice      string `json:"advice"`
}

// EnemyStrategy is the per-enemy briefing.
type EnemyStrategy struct {
	Champion         string         `json:"champion"`
	Position         string         `json:"position"`
	Level            int            `json:"level"`
	Gold             int            `json:"gold"`
	Items            []string       `json:"items"`
	Skills           map[string]int `json:"skills"`
	DamageType       string         `json:"damage_type"`
	ThreatLevel      string         `json:"threat_level"`
	UserCountersThem bool           `json:"user_counters_them"`
	HardCounteredBy  []string       `json:"hard_countered_by"`
	CounteredBy      []string       `json:"countered_by"`
	Tips             []string       `json:"tips"`
}

// AllySynergy flags an ally the subject player combos well with.
type AllySynergy struct {
	Champion     string `json:"champion"`
	SynergyLevel string `json:"synergy_level"`
	Advice       string `json:"advice"`
}

// AllyBrief identifies one teammate.
type AllyBrief struct {
	Champion string `json:"champion"`
	Level    int    `json:"level"`
}

// AllySynergies is the team synergy report for the subject player.
type AllySynergies struct {
	Allies    []AllyBrief   `json:"allies"`
	Synergies []AllySynergy `json:"synergies"`
}

// CounterAnalysis is the full counter strategy report.
type CounterAnalysis struct {
	UserChampion           string           `json:"user_champion"`
	UserPosition           string           `json:"user_position"`
	UserDamageType         string           `json:"user_damage_type"`
	LaneMatchup            *LaneMatchup     `json:"lane_matchup"`
	EnemiesThatCounterUser []CounterWarning `json:"enemies_that_counter_user"`
	EnemyStrategies        []EnemyStrategy  `json:"enemy_strategies"`
	AllySynergies          *AllySynergies   `json:"ally_synergies"`
	TeamfightAdvice        []string         `json:"teamfight_advice"`
}

// AnalyzeCounters generates the counter strategy report for the subject player.
func (s *SnapshotService) AnalyzeCounters(ctx context.Context, snap *domain.Snapshot) (*CounterAnalysis, error) {
	user := snap.UserPlayer()
	if user == nil {
		return nil, domain.ErrMissingSubjectPlayer
	}

	enemies := snap.Enemies()
	allies := snap.Allies()
	userInfo := s.champInfo(ctx, user.Champion)

	userCounters, err := s.lookup.Counters(ctx, user.Champion, "countered_by")
	if err != nil {
		userCounters = &CountersResult{Champion: user.Champion}
	}

	var matchup *LaneMatchup
	if opponent := s.laneOpponent(snap); opponent != nil {
		matchup = s.analyzeLaneMatchup(user, opponent, userCounters)
	}

	warnings := []CounterWarning{}
	for i := range enemies {
		enemy := &enemies[i]
		hard := false
		for _, counter := range userCounters.HardCounteredBy {
			if nameMatches(counter, enemy.Champion) {
				warnings = append(warnings, CounterWarning{
					Champion:    enemy.Champion,
					CounterType: "HARD COUNTER",
					Advice:      fmt.Sprintf("Play very carefully against %s. Consider roaming or asking for jungle help.", enemy.Champion),
				})
				hard = true
				break
			}
		}
		if hard {
			continue
		}
		for _, counter := range userCounters.CounteredBy {
			if nameMatches(counter, enemy.Champion) {
				warnings = append(warnings, CounterWarning{
					Champion:    enemy.Champion,
					CounterType: "Soft Counter",
					Advice:      fmt.Sprintf("%s has an advantage. Play around their cooldowns.", enemy.Champion),
				})
				break
			}
		}
	}

	strategies := make([]EnemyStrategy, 0, len(enemies))
	for i := range enemies {
		enemy := &enemies[i]
		enemyInfo := s.champInfo(ctx, enemy.Champion)

		enemyCounters, err := s.lookup.Counters(ctx, enemy.Champion, "countered_by")
		if err != nil {
			enemyCounters = &CountersResult{Champion: enemy.Champion}
		}

		userCountersThem := false
		for _, counter := range append(enemyCounters.HardCounteredBy, enemyCounters.CounteredBy...) {
			if nameMatches(counter, user.Champion) {
				userCountersThem = true
				break
			}
		}

		level := threatLevel(enemy)
		if level == "" {
			level = "Low"
		}

		strategies = append(strategies, EnemyStrategy{
			Champion:         enemy.Champion,
			Position:         domain.Position(enemy.ParticipantID),
			Level:            enemy.Level,
			Gold:             enemy.TotalGold,
			Items:            enemy.Items,
			Skills:           enemy.Skills,
			DamageType:       enemyInfo.DamageType,
			ThreatLevel:      level,
			UserCountersThem: userCountersThem,
			HardCounteredBy:  firstN(enemyCounters.HardCounteredBy, 5),
			CounteredBy:      firstN(enemyCounters.CounteredBy, 5),
			Tips:             enemyTips(enemy, enemyInfo),
		})
	}
	sort.SliceStable(strategies, func(i, j int) bool {
		return strategies[i].Gold > strategies[j].Gold
	})

	return &CounterAnalysis{
		UserChampion:           user.Champion,
		UserPosition:           domain.Position(user.ParticipantID),
		UserDamageType:         userInfo.DamageType,
		LaneMatchup:            matchup,
		EnemiesThatCounterUser: warnings,
		EnemyStrategies:        strategies,
		AllySynergies:          s.analyzeAllySynergies(ctx, user.Champion, allies),
		TeamfightAdvice:        teamfightAdvice(ctx, s, userInfo, enemies),
	}, nil
}

func enemyTips(enemy *domain.SnapshotPlayer, info *ChampionInfoResult) []string {
	var tips []string

	if strings.Contains(info.DamageType, "Magic") {
		tips = append(tips, fmt.Sprintf("%s deals magic damage - consider Mercury's Treads or MR items", enemy.Champion))
	} else if strings.Contains(info.DamageType, "Physical") {
		tips = append(tips, fmt.Sprintf("%s deals physical damage - consider Plated Steelcaps or armor items", enemy.Champion))
	}

	switch {
	case strings.Contains(info.HeroType, "Assassin"):
		tips = append(tips,
			fmt.Sprintf("Watch out for %s's burst damage - don't get caught alone", enemy.Champion),
			"Stay grouped with your team and ward flanks")
	case strings.Contains(info.HeroType, "Tank"):
		tips = append(tips,
			fmt.Sprintf("%s is tanky - focus on kiting and don't waste all cooldowns on them", enemy.Champion),
			"Consider armor penetration or magic penetration items")
	case strings.Contains(info.HeroType, "Mage"):
		tips = append(tips, fmt.Sprintf("Dodge %s's skillshots - their damage comes from abilities", enemy.Champion))
	}

	if enemy.TotalGold > 4000 {
		tips = append(tips, fmt.Sprintf("DANGER: %s is fed (%d gold) - don't fight them alone", enemy.Champion, enemy.TotalGold))
	}
	if enemy.Level >= 6 {
		tips = append(tips, fmt.Sprintf("%s has their ultimate - respect their all-in potential", enemy.Champion))
	}

	if len(tips) > 4 {
		tips = tips[:4]
	}
	return tips
}

func (s *SnapshotService) analyzeAllySynergies(ctx context.Context, userChampion string, allies []domain.SnapshotPlayer) *AllySynergies {
	result := &AllySynergies{Allies: []AllyBrief{}, Synergies: []AllySynergy{}}
	for i := range allies {
		result.Allies = append(result.Allies, AllyBrief{Champion: allies[i].Champion, Level: allies[i].Level})
	}

	synergies, err := s.lookup.Synergies(ctx, userChampion)
	if err != nil {
		return result
	}

	for i := range allies {
		ally := allies[i].Champion
		matched := false
		for _, strong := range synergies.StrongSynergy {
			if nameMatches(strong, ally) {
				result.Synergies = append(result.Synergies, AllySynergy{
					Champion:     ally,
					SynergyLevel: "Strong",
					Advice:       fmt.Sprintf("Great synergy with %s! Look for combo opportunities.", ally),
				})
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		for _, normal := range synergies.Synergy {
			if nameMatches(normal, ally) {
				result.Synergies = append(result.Synergies, AllySynergy{
					Champion:     ally,
					SynergyLevel: "Good",
					Advice:       fmt.Sprintf("Good synergy with %s. Coordinate your abilities.", ally),
				})
				break
			}
		}
	}
	return result
}

func teamfightAdvice(ctx context.Context, s *SnapshotService, userInfo *ChampionInfoResult, enemies []domain.SnapshotPlayer) []string {
	var advice []string
	roles := strings.Join(userInfo.Roles, ",")

	switch {
	case strings.Contains(userInfo.HeroType, "Tank") || strings.Contains(roles, "TankRole"):
		advice = append(advice,
			"Position in front of your team to absorb damage and initiate",
			"Use your CC on enemy carries when they step forward")
	case strings.Contains(userInfo.HeroType, "Assassin") || strings.Contains(roles, "AssassinRole"):
		advice = append(advice,
			"Wait for key abilities to be used before going in",
			"Flank to reach enemy backline - focus the ADC or mid laner")
	case strings.Contains(roles, "Carry") || strings.Contains(roles, "Marksman"):
		advice = append(advice,
			"Stay behind your frontline and attack the closest safe target",
			"Don't overextend - your survival is crucial for DPS")
	case strings.Contains(userInfo.HeroType, "Mage") || strings.Contains(roles, "MageRole"):
		advice = append(advice,
			"Position safely and land your abilities on grouped enemies",
			"Save your CC for enemy divers")
	case strings.Contains(roles, "Support"):
		advice = append(advice,
			"Protect your carries and peel for them",
			"Save your key abilities to counter enemy engages")
	}

	var carries []string
	for i := range enemies {
		info := s.champInfo(ctx, enemies[i].Champion)
		if strings.Contains(strings.Join(info.Roles, ","), "Carry") || strings.Contains(info.HeroType, "Assassin") {
			carries = append(carries, enemies[i].Champion)
		}
	}
	if len(carries) > 0 {
		advice = append(advice, fmt.Sprintf("Priority targets in teamfights: %s", strings.Join(carries, ", ")))
	}

	if len(advice) > 5 {
		advice = advice[:5]
	}
	return advice
}
