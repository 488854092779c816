package domain

// IntentKind is the closed vocabulary emitted by the external classifier.
type IntentKind string

const (
	IntentSkillDamageAtLevel   IntentKind = "SKILL_DAMAGE_AT_LEVEL"
	IntentSkillInfo            IntentKind = "SKILL_INFO"
	IntentSkillCooldown        IntentKind = "SKILL_COOLDOWN"
	IntentSkillManaCost        IntentKind = "SKILL_MANA_COST"
	IntentChampionBaseStats    IntentKind = "CHAMPION_BASE_STATS"
	IntentChampionInfo         IntentKind = "CHAMPION_INFO"
	IntentChampionStatsAtLevel IntentKind = "CHAMPION_STATS_AT_LEVEL"
	IntentChampionComparison   IntentKind = "CHAMPION_COMPARISON"
	IntentRoleQuery            IntentKind = "ROLE_QUERY"
	IntentLaneQuery            IntentKind = "LANE_QUERY"
	IntentListSkills           IntentKind = "LIST_SKILLS"
	IntentCounterQuery         IntentKind = "COUNTER_QUERY"
	IntentSynergyQuery         IntentKind = "SYNERGY_QUERY"
	IntentBuildQuery           IntentKind = "BUILD_QUERY"
	IntentItemInfo             IntentKind = "ITEM_INFO"
	IntentMonsterInfo          IntentKind = "MONSTER_INFO"
	IntentTurretInfo           IntentKind = "TURRET_INFO"

	IntentMultiPropertyFilter     IntentKind = "MULTI_PROPERTY_FILTER"
	IntentChampionByCC            IntentKind = "CHAMPION_BY_CC"
	IntentChampionByEffect        IntentKind = "CHAMPION_BY_EFFECT"
	IntentChampionByPlaystyle     IntentKind = "CHAMPION_BY_PLAYSTYLE"
	IntentChampionByPowerCurve    IntentKind = "CHAMPION_BY_POWER_CURVE"
	IntentChampionByWinCondition  IntentKind = "CHAMPION_BY_WIN_CONDITION"
	IntentChampionSemanticProfile IntentKind = "CHAMPION_SEMANTIC_PROFILE"
	IntentTeamCounterAnalysis     IntentKind = "TEAM_COUNTER_ANALYSIS"
	IntentTeamSynergyAnalysis     IntentKind = "TEAM_SYNERGY_ANALYSIS"

	IntentSnapshotAnalysis IntentKind = "SNAPSHOT_ANALYSIS"
	IntentAvailableGames   IntentKind = "GET_AVAILABLE_GAMES"
	IntentUnknown          IntentKind = "UNKNOWN"
)

// Intent is the structured record produced by the classifier. Absent slots
// stay at their zero value (nil for pointers and slices, "" for strings).
type Intent struct {
	Kind IntentKind `json:"intent"`

	ChampionName        string   `json:"champion_name,omitempty"`
	SkillKey            string   `json:"skill_key,omitempty"` // P/Q/W/E/R
	SkillLevel          *int     `json:"skill_level,omitempty"`
	CharacterLevel      *int     `json:"character_level,omitempty"`
	StatName            string   `json:"stat_name,omitempty"`
	ComparisonChampions []string `json:"comparison_champions,omitempty"`
	Role                string   `json:"role,omitempty"`
	Lane                string   `json:"lane,omitempty"`
	ItemName            string   `json:"item_name,omitempty"`
	MonsterName         string   `json:"monster_name,omitempty"`
	TurretName          string   `json:"turret_name,omitempty"`
	CounterDirection    string   `json:"counter_direction,omitempty"` // counters | countered_by

	CCTypes        []string `json:"cc_types,omitempty"`
	AbilityEffects []string `json:"ability_effects,omitempty"`
	Playstyles     []string `json:"playstyles,omitempty"`
	PowerCurve     string   `json:"power_curve,omitempty"`
	WinCondition   string   `json:"win_condition,omitempty"`
	TeamChampions  []string `json:"team_champions,omitempty"`
	EnemyChampions []string `json:"enemy_champions,omitempty"`

	SnapshotAnalysisType string `json:"snapshot_analysis_type,omitempty"` // full | items | counters | game_state
	GameIndex            *int   `json:"game_index,omitempty"`
}
