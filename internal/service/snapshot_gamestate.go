package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/gizemyilmaz/lol-knowledge-engine/internal/domain"
)

// GameStateUser is the subject player's slice of the game-state report.
type GameStateUser struct {
	Champion      string         `json:"champion"`
	Position      string         `json:"position"`
	Level         int            `json:"level"`
	Gold          int            `json:"gold"`
	CS            int            `json:"cs"`
	CSPerMinute   float64        `json:"cs_per_minute"`
	CSRating      string         `json:"cs_rating"`
	GoldPerMinute int            `json:"gold_per_minute"`
	Items         []string       `json:"items"`
	Skills        map[string]int `json:"skills"`
	LaneCSDiff    int            `json:"lane_cs_diff"`
}

// LevelComparison compares the subject's level against both team averages.
type LevelComparison struct {
	UserLevel      int     `json:"user_level"`
	TeamAvgLevel   float64 `json:"team_avg_level"`
	EnemyAvgLevel  float64 `json:"enemy_avg_level"`
	LevelAdvantage float64 `json:"level_advantage"`
}

// TeamMember is one row in the team composition tables.
type TeamMember struct {
	Champion    string  `json:"champion"`
	Position    string  `json:"position"`
	Level       int     `json:"level"`
	Gold        int     `json:"gold"`
	CSPerMinute float64 `json:"cs_per_minute"`
}

// TeamComposition lists both teams from the subject's perspective.
type TeamComposition struct {
	Allies  []TeamMember `json:"allies"`
	Enemies []TeamMember `json:"enemies"`
}

// ObjectiveRecommendation is one map objective worth contesting.
type ObjectiveRecommendation struct {
	Objective string `json:"objective"`
	Priority  string `json:"priority"`
	Tip       string `json:"tip"`
}

// Objectives is the objective control section of the game-state report.
type Objectives struct {
	Recommendations []ObjectiveRecommendation `json:"recommendations"`
	NextDragonSpawn string                    `json:"next_dragon_spawn"`
}

// WinCondition names a strategy the team composition supports.
type WinCondition struct {
	Condition   string `json:"condition"`
	Description string `json:"description"`
}

// WinConditions ranks the strategies the team composition supports.
type WinConditions struct {
	Primary       *WinCondition  `json:"primary"`
	Secondary     *WinCondition  `json:"secondary,omitempty"`
	AllConditions []WinCondition `json:"all_conditions"`
}

// PowerSpikes tracks upcoming spikes for the subject and current enemy spikes.
type PowerSpikes struct {
	YourUpcomingSpikes []string `json:"your_upcoming_spikes"`
	EnemyCurrentSpikes []string `json:"enemy_current_spikes"`
	Advice             string   `json:"advice"`
}

// GameStateAnalysis is the full macro game-state report.
type GameStateAnalysis struct {
	Minute            int             `json:"minute"`
	GameState         string          `json:"game_state"`
	User              GameStateUser   `json:"user"`
	TeamGold          int             `json:"team_gold"`
	EnemyTeamGold     int             `json:"enemy_team_gold"`
	TeamGoldDiff      int             `json:"team_gold_diff"`
	GoldPerPlayerDiff int             `json:"gold_per_player_diff"`
	GoldAssessment    string          `json:"gold_assessment"`
	LevelComparison   LevelComparison `json:"level_comparison"`
	TeamComposition   TeamComposition `json:"team_composition"`
	Objectives        Objectives      `json:"objectives"`
	WinConditions     WinConditions   `json:"win_conditions"`
	PowerSpikes       PowerSpikes     `json:"power_spikes"`
}

// gameState buckets the team gold difference into seven states.
func gameState(goldDiff int) (state, assessment string) {
	switch {
	case goldDiff > 3000:
		return "Winning", "Your team has a commanding gold lead. Press the advantage and close out the game."
	case goldDiff > 1500:
		return "Ahead", "Your team is ahead. Keep up the pressure and take objectives."
	case goldDiff > 500:
		return "Slightly Ahead", "Your team has a small lead. Play for objectives to extend it."
	case goldDiff < -3000:
		return "Losing", "Your team is far behind. Avoid fights, defend, and wait for enemy mistakes."
	case goldDiff < -1500:
		return "Behind", "Your team is behind. Play safe and look for picks to get back in the game."
	case goldDiff < -500:
		return "Slightly Behind", "Your team is slightly behind. Farm up and avoid risky plays."
	default:
		return "Even", "The game is even. The next few objectives will decide momentum."
	}
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}

// AnalyzeGameState generates the macro game-state report for the subject player.
func (s *SnapshotService) AnalyzeGameState(ctx context.Context, snap *domain.Snapshot) (*GameStateAnalysis, error) {
	user := snap.UserPlayer()
	if user == nil {
		return nil, domain.ErrMissingSubjectPlayer
	}

	teamGold, enemyGold := snap.BlueTeamGold, snap.RedTeamGold
	goldDiff := snap.GoldDiff
	if user.Team == "Red" {
		teamGold, enemyGold = snap.RedTeamGold, snap.BlueTeamGold
		goldDiff = -goldDiff
	}

	state, assessment := gameState(goldDiff)
	perf := playerPerformance(user, snap.Minute)

	laneCSDiff := 0
	if opponent := s.laneOpponent(snap); opponent != nil {
		laneCSDiff = user.CS - opponent.CS
	}

	allies := snap.Allies()
	enemies := snap.Enemies()

	teamLevelSum := user.Level
	for i := range allies {
		teamLevelSum += allies[i].Level
	}
	enemyLevelSum := 0
	for i := range enemies {
		enemyLevelSum += enemies[i].Level
	}
	teamAvg := float64(teamLevelSum) / float64(len(allies)+1)
	enemyAvg := 0.0
	if len(enemies) > 0 {
		enemyAvg = float64(enemyLevelSum) / float64(len(enemies))
	}

	return &GameStateAnalysis{
		Minute:    snap.Minute,
		GameState: state,
		User: GameStateUser{
			Champion:      user.Champion,
			Position:      domain.Position(user.ParticipantID),
			Level:         user.Level,
			Gold:          user.TotalGold,
			CS:            user.CS,
			CSPerMinute:   perf.CSPerMinute,
			CSRating:      perf.CSRating,
			GoldPerMinute: perf.GoldPerMinute,
			Items:         user.Items,
			Skills:        user.Skills,
			LaneCSDiff:    laneCSDiff,
		},
		TeamGold:          teamGold,
		EnemyTeamGold:     enemyGold,
		TeamGoldDiff:      goldDiff,
		GoldPerPlayerDiff: int(math.Round(float64(goldDiff) / 5)),
		GoldAssessment:    assessment,
		LevelComparison: LevelComparison{
			UserLevel:      user.Level,
			TeamAvgLevel:   roundTo1(teamAvg),
			EnemyAvgLevel:  roundTo1(enemyAvg),
			LevelAdvantage: roundTo1(float64(user.Level) - enemyAvg),
		},
		TeamComposition: TeamComposition{
			Allies:  teamMembers(allies, snap.Minute),
			Enemies: teamMembers(enemies, snap.Minute),
		},
		Objectives:    objectives(snap.Minute, state),
		WinConditions: s.winConditions(user, allies),
		PowerSpikes:   powerSpikes(user, enemies),
	}, nil
}

func teamMembers(players []domain.SnapshotPlayer, minute int) []TeamMember {
	members := make([]TeamMember, 0, len(players))
	for i := range players {
		p := &players[i]
		csPerMin := 0.0
		if minute > 0 {
			csPerMin = roundTo1(float64(p.CS) / float64(minute))
		}
		members = append(members, TeamMember{
			Champion:    p.Champion,
			Position:    domain.Position(p.ParticipantID),
			Level:       p.Level,
			Gold:        p.TotalGold,
			CSPerMinute: csPerMin,
		})
	}
	return members
}

func objectives(minute int, state string) Objectives {
	result := Objectives{Recommendations: []ObjectiveRecommendation{}, NextDragonSpawn: "5:00"}

	if minute >= 5 {
		result.NextDragonSpawn = fmt.Sprintf("~%d:00", ((minute/5)+1)*5)
		priority := "Medium"
		if state == "Winning" || state == "Ahead" {
			priority = "High"
		}
		result.Recommendations = append(result.Recommendations, ObjectiveRecommendation{
			Objective: "Dragon",
			Priority:  priority,
			Tip:       "Stack dragons for permanent team buffs. Ward the pit before it spawns.",
		})
	}

	if minute >= 8 && minute < 20 {
		result.Recommendations = append(result.Recommendations, ObjectiveRecommendation{
			Objective: "Rift Herald",
			Priority:  "Medium",
			Tip:       "Herald turns a lane lead into tower gold. Take it when the enemy jungler shows bot.",
		})
	}

	if minute >= 20 {
		priority := "Medium"
		if state == "Winning" || state == "Ahead" {
			priority = "High"
		}
		result.Recommendations = append(result.Recommendations, ObjectiveRecommendation{
			Objective: "Baron Nashor",
			Priority:  priority,
			Tip:       "Baron buff wins sieges. Only start it with vision and numbers advantage.",
		})
	}

	return result
}

var winConditionRosters = map[string][]string{
	"Split Push": {"Fiora", "Tryndamere", "Jax", "Camille", "Shen", "Yorick", "Nasus"},
	"Teamfight":  {"Malphite", "Amumu", "Orianna", "Miss Fortune", "Leona", "Sejuani"},
	"Pick":       {"Blitzcrank", "Thresh", "Morgana", "Ahri", "Leblanc", "Zed"},
	"Scale":      {"Kayle", "Kassadin", "Vayne", "Jinx", "Kog'Maw", "Viktor"},
}

var winConditionDescriptions = map[string]string{
	"Split Push": "Your team has strong split pushers. Pressure side lanes and force the enemy to respond.",
	"Teamfight":  "Your team excels at 5v5 fights. Group around objectives and force fights.",
	"Pick":       "Your team can catch enemies out. Ward deep and punish anyone walking alone.",
	"Scale":      "Your team outscales the enemy. Play safe, farm up, and win the late game.",
}

func (s *SnapshotService) winConditions(user *domain.SnapshotPlayer, allies []domain.SnapshotPlayer) WinConditions {
	teamChampions := []string{user.Champion}
	for i := range allies {
		teamChampions = append(teamChampions, allies[i].Champion)
	}

	type scored struct {
		condition string
		count     int
	}
	var matches []scored
	for condition, roster := range winConditionRosters {
		count := 0
		for _, champ := range teamChampions {
			for _, name := range roster {
				if strings.EqualFold(champ, name) {
					count++
				}
			}
		}
		if count > 0 {
			matches = append(matches, scored{condition, count})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].count != matches[j].count {
			return matches[i].count > matches[j].count
		}
		return matches[i].condition < matches[j].condition
	})

	result := WinConditions{AllConditions: []WinCondition{}}
	for _, m := range matches {
		result.AllConditions = append(result.AllConditions, WinCondition{
			Condition:   m.condition,
			Description: winConditionDescriptions[m.condition],
		})
	}

	if len(result.AllConditions) == 0 {
		fallback := WinCondition{
			Condition:   "Standard Play",
			Description: "No strong identity detected. Play for objectives and avoid coin-flip fights.",
		}
		result.Primary = &fallback
		result.AllConditions = append(result.AllConditions, fallback)
		return result
	}

	result.Primary = &result.AllConditions[0]
	if len(result.AllConditions) > 1 {
		result.Secondary = &result.AllConditions[1]
	}
	return result
}

var enemyMythicKeywords = []string{"eclipse", "kraken", "liandry", "everfrost", "sunderer", "riftmaker"}

func powerSpikes(user *domain.SnapshotPlayer, enemies []domain.SnapshotPlayer) PowerSpikes {
	spikes := PowerSpikes{YourUpcomingSpikes: []string{}, EnemyCurrentSpikes: []string{}}

	if user.Level < 6 {
		spikes.YourUpcomingSpikes = append(spikes.YourUpcomingSpikes,
			fmt.Sprintf("Level 6 - %s's ultimate unlocks major power spike", user.Champion))
	} else if user.Level < 11 {
		spikes.YourUpcomingSpikes = append(spikes.YourUpcomingSpikes,
			"Level 11 - Second ultimate rank")
	}

	completed := 0
	for _, item := range user.Items {
		lowered := strings.ToLower(item)
		starter := false
		for _, kw := range []string{"doran", "cull", "tear", "dark seal", "long sword", "amplifying tome"} {
			if strings.Contains(lowered, kw) {
				starter = true
				break
			}
		}
		if !starter {
			completed++
		}
	}
	switch completed {
	case 0:
		spikes.YourUpcomingSpikes = append(spikes.YourUpcomingSpikes,
			"First completed item - significant power boost incoming")
	case 1:
		spikes.YourUpcomingSpikes = append(spikes.YourUpcomingSpikes,
			"Second item completion will be a major spike")
	}

	for i := range enemies {
		enemy := &enemies[i]
		if enemy.Level >= 6 {
			spikes.EnemyCurrentSpikes = append(spikes.EnemyCurrentSpikes,
				fmt.Sprintf("%s has ultimate - be careful of all-ins", enemy.Champion))
		}
		for _, item := range enemy.Items {
			lowered := strings.ToLower(item)
			for _, kw := range enemyMythicKeywords {
				if strings.Contains(lowered, kw) {
					spikes.EnemyCurrentSpikes = append(spikes.EnemyCurrentSpikes,
						fmt.Sprintf("%s has completed a major item - they're stronger now", enemy.Champion))
					break
				}
			}
		}
	}

	spikes.YourUpcomingSpikes = firstN(spikes.YourUpcomingSpikes, 3)
	spikes.EnemyCurrentSpikes = firstN(spikes.EnemyCurrentSpikes, 3)

	if len(spikes.YourUpcomingSpikes) > 0 {
		spikes.Advice = "Play around your upcoming spikes and avoid fighting enemies at theirs."
	} else {
		spikes.Advice = "You've hit your major spikes. Look to force plays before the enemy catches up."
	}
	return spikes
}

// Summary is the executive summary at the top of a full analysis.
type Summary struct {
	Champion     string   `json:"champion"`
	Position     string   `json:"position"`
	GameState    string   `json:"game_state"`
	GoldDiff     int      `json:"gold_diff"`
	KeyPoints    []string `json:"key_points"`
	PrimaryFocus string   `json:"primary_focus"`
}

// FullAnalysis bundles every report for one snapshot.
type FullAnalysis struct {
	MatchID             string             `json:"match_id"`
	Summary             Summary            `json:"summary"`
	GameState           *GameStateAnalysis `json:"game_state"`
	ItemRecommendations *ItemAnalysis      `json:"item_recommendations"`
	CounterStrategies   *CounterAnalysis   `json:"counter_strategies"`
}

// FullAnalysis runs every analysis on a snapshot and distills the key points.
func (s *SnapshotService) FullAnalysis(ctx context.Context, snap *domain.Snapshot) (*FullAnalysis, error) {
	user := snap.UserPlayer()
	if user == nil {
		return nil, domain.ErrMissingSubjectPlayer
	}

	gameStateReport, err := s.AnalyzeGameState(ctx, snap)
	if err != nil {
		return nil, err
	}
	itemReport, err := s.AnalyzeItems(ctx, snap)
	if err != nil {
		return nil, err
	}
	counterReport, err := s.AnalyzeCounters(ctx, snap)
	if err != nil {
		return nil, err
	}

	summary := buildSummary(user, gameStateReport, itemReport, counterReport)

	return &FullAnalysis{
		MatchID:             snap.MatchID,
		Summary:             summary,
		GameState:           gameStateReport,
		ItemRecommendations: itemReport,
		CounterStrategies:   counterReport,
	}, nil
}

func buildSummary(user *domain.SnapshotPlayer, game *GameStateAnalysis, items *ItemAnalysis, counters *CounterAnalysis) Summary {
	var keyPoints []string

	switch game.GameState {
	case "Winning", "Ahead":
		keyPoints = append(keyPoints, fmt.Sprintf("Your team is %s (+%d gold) - press the advantage", strings.ToLower(game.GameState), game.TeamGoldDiff))
	case "Losing", "Behind":
		keyPoints = append(keyPoints, fmt.Sprintf("Your team is %s (%d gold) - play safe and scale", strings.ToLower(game.GameState), game.TeamGoldDiff))
	}

	if game.User.CSRating == "Below Average" {
		keyPoints = append(keyPoints, fmt.Sprintf("Focus on improving CS - currently %.1f/min", game.User.CSPerMinute))
	}

	for _, warning := range counters.EnemiesThatCounterUser {
		if warning.CounterType == "HARD COUNTER" {
			keyPoints = append(keyPoints, fmt.Sprintf("Warning: %s hard counters you - play around your team", warning.Champion))
			break
		}
	}

	if matchup := counters.LaneMatchup; matchup != nil {
		switch matchup.LaneState {
		case "Losing", "Behind":
			keyPoints = append(keyPoints, fmt.Sprintf("Play safe in lane - you're behind against %s", matchup.Opponent))
		case "Winning", "Ahead":
			keyPoints = append(keyPoints, fmt.Sprintf("Press your lane lead against %s - zone and roam", matchup.Opponent))
		}
	}

	if len(items.NextItemSuggestions) > 0 {
		next := items.NextItemSuggestions[0]
		keyPoints = append(keyPoints, fmt.Sprintf("Next item: %s (%d gold)", next.Item, next.GoldCost))
	}

	if len(items.ImmediatePurchases) > 0 {
		buy := items.ImmediatePurchases[0]
		keyPoints = append(keyPoints, fmt.Sprintf("You can afford %s now (%d gold available)", buy.Item, items.EstimatedAvailableGold))
	}

	keyPoints = firstN(keyPoints, 6)

	primaryFocus := "Play to your win condition and take objectives"
	if len(keyPoints) > 0 {
		primaryFocus = keyPoints[0]
	}

	return Summary{
		Champion:     user.Champion,
		Position:     domain.Position(user.ParticipantID),
		GameState:    game.GameState,
		GoldDiff:     game.TeamGoldDiff,
		KeyPoints:    keyPoints,
		PrimaryFocus: primaryFocus,
	}
}
