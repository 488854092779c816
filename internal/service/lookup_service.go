package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/gizemyilmaz/lol-knowledge-engine/internal/domain"
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/repository"
	"gorm.io/datatypes"
)

// NotFoundError is a soft miss: the question was understood but the entity
// does not exist. Hints carry nearby alternatives for the response layer.
type NotFoundError struct {
	Message string
	Hints   map[string][]string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func notFound(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// statAliases normalizes the many ways players refer to base stats.
var statAliases = map[string]string{
	"health":         "health",
	"hp":             "health",
	"mana":           "mana",
	"mp":             "mana",
	"armor":          "armor",
	"ar":             "armor",
	"magic_resist":   "magic_resist",
	"mr":             "magic_resist",
	"magic resist":   "magic_resist",
	"attack_damage":  "attack_damage",
	"ad":             "attack_damage",
	"attack damage":  "attack_damage",
	"attack_speed":   "attack_speed",
	"as":             "attack_speed",
	"attack speed":   "attack_speed",
	"movement_speed": "movement_speed",
	"ms":             "movement_speed",
	"move speed":     "movement_speed",
	"movement speed": "movement_speed",
	"attack_range":   "attack_range",
	"range":          "attack_range",
	"attack range":   "attack_range",
}

var roleAliases = map[string]string{
	"assassin": "AssassinRole",
	"mage":     "MageRole",
	"tank":     "TankRole",
	"support":  "SupportRole",
	"carry":    "CarryRole",
	"adc":      "CarryRole",
	"warrior":  "WarriorRole",
	"fighter":  "WarriorRole",
	"bruiser":  "WarriorRole",
}

var laneAliases = map[string]string{
	"top":    "TopLane",
	"mid":    "MidLane",
	"middle": "MidLane",
	"bot":    "BottomLane",
	"bottom": "BottomLane",
	"adc":    "BottomLane",
	"jungle": "Jungle",
	"jg":     "Jungle",
}

// NormalizeStatName maps a free-form stat reference to its canonical key.
func NormalizeStatName(stat string) string {
	if canonical, ok := statAliases[strings.ToLower(stat)]; ok {
		return canonical
	}
	return strings.ToLower(stat)
}

// NormalizeRole maps a free-form role reference to its tag form.
func NormalizeRole(role string) string {
	if canonical, ok := roleAliases[strings.ToLower(role)]; ok {
		return canonical
	}
	return role
}

// NormalizeLane maps a free-form lane reference to its tag form.
func NormalizeLane(lane string) string {
	if canonical, ok := laneAliases[strings.ToLower(lane)]; ok {
		return canonical
	}
	return lane
}

func statsMap(raw datatypes.JSON) map[string]float64 {
	m := map[string]float64{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &m)
	}
	return m
}

func stringList(raw datatypes.JSON) []string {
	list := []string{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &list)
	}
	return list
}

func skillLevels(raw datatypes.JSON) []domain.SkillLevel {
	var levels []domain.SkillLevel
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &levels)
	}
	return levels
}

// LookupService answers direct fact questions about champions, skills, items,
// monsters, and turrets.
type LookupService struct {
	repos    *repository.Repositories
	resolver *NameResolver
}

func NewLookupService(repos *repository.Repositories, resolver *NameResolver) *LookupService {
	return &LookupService{repos: repos, resolver: resolver}
}

func (s *LookupService) findChampion(ctx context.Context, name string) (*domain.Champion, error) {
	key, _, ok := s.resolver.ResolveChampion(name)
	if !ok {
		return nil, notFound("Champion '%s' not found", name)
	}
	return s.repos.Champion.GetByKey(ctx, key)
}

func (s *LookupService) findSkill(champ *domain.Champion, skillKey string) (*domain.Skill, *NotFoundError) {
	slot := strings.ToUpper(strings.TrimSpace(skillKey))
	for i := range champ.Skills {
		if champ.Skills[i].Slot == slot {
			return &champ.Skills[i], nil
		}
	}

	available := make([]string, 0, len(champ.Skills))
	for _, sk := range champ.Skills {
		available = append(available, sk.Slot)
	}
	return nil, &NotFoundError{
		Message: fmt.Sprintf("Skill '%s' not found for %s", skillKey, champ.Name),
		Hints:   map[string][]string{"available_skills": available},
	}
}

type SkillDamageResult struct {
	Champion   string   `json:"champion"`
	SkillName  string   `json:"skill_name"`
	SkillKey   string   `json:"skill_key"`
	Level      int      `json:"level"`
	Damage     *float64 `json:"damage"`
	DamageType string   `json:"damage_type"`
	Cooldown   *float64 `json:"cooldown"`
	ManaCost   *float64 `json:"mana_cost"`
}

// SkillDamageAtLevel reports a skill's damage at a given rank.
func (s *LookupService) SkillDamageAtLevel(ctx context.Context, championName, skillKey string, level int) (*SkillDamageResult, error) {
	champ, err := s.findChampion(ctx, championName)
	if err != nil {
		return nil, err
	}
	skill, nf := s.findSkill(champ, skillKey)
	if nf != nil {
		return nil, nf
	}

	levels := skillLevels(skill.Levels)
	for _, lv := range levels {
		if lv.Rank == level {
			return &SkillDamageResult{
				Champion:   champ.Name,
				SkillName:  skill.Name,
				SkillKey:   skill.Slot,
				Level:      level,
				Damage:     lv.Damage,
				DamageType: skill.DamageType,
				Cooldown:   lv.Cooldown,
				ManaCost:   lv.Cost,
			}, nil
		}
	}

	available := make([]string, 0, len(levels))
	for _, lv := range levels {
		available = append(available, fmt.Sprintf("%d", lv.Rank))
	}
	return nil, &NotFoundError{
		Message: fmt.Sprintf("Level %d not found for %s", level, skill.Name),
		Hints:   map[string][]string{"available_levels": available},
	}
}

type SkillLevelSummary struct {
	Level    int      `json:"level"`
	Damage   *float64 `json:"damage"`
	Cooldown *float64 `json:"cooldown"`
	ManaCost *float64 `json:"mana_cost"`
}

type SkillInfoResult struct {
	Champion   string              `json:"champion"`
	SkillName  string              `json:"skill_name"`
	SkillKey   string              `json:"skill_key"`
	SkillTypes []string            `json:"skill_types"`
	DamageType string              `json:"damage_type"`
	CostType   string              `json:"cost_type"`
	MaxRank    int                 `json:"max_rank"`
	Levels     []SkillLevelSummary `json:"levels"`
}

// SkillInfo reports everything known about a skill, including its full
// per-rank table.
func (s *LookupService) SkillInfo(ctx context.Context, championName, skillKey string) (*SkillInfoResult, error) {
	champ, err := s.findChampion(ctx, championName)
	if err != nil {
		return nil, err
	}
	skill, nf := s.findSkill(champ, skillKey)
	if nf != nil {
		return nil, nf
	}

	levels := skillLevels(skill.Levels)
	summary := make([]SkillLevelSummary, 0, len(levels))
	for _, lv := range levels {
		summary = append(summary, SkillLevelSummary{
			Level:    lv.Rank,
			Damage:   lv.Damage,
			Cooldown: lv.Cooldown,
			ManaCost: lv.Cost,
		})
	}

	return &SkillInfoResult{
		Champion:   champ.Name,
		SkillName:  skill.Name,
		SkillKey:   skill.Slot,
		SkillTypes: stringList(skill.Types),
		DamageType: skill.DamageType,
		CostType:   skill.CostType,
		MaxRank:    skill.MaxRank,
		Levels:     summary,
	}, nil
}

type SkillCooldownResult struct {
	Champion         string              `json:"champion"`
	SkillName        string              `json:"skill_name"`
	SkillKey         string              `json:"skill_key"`
	Level            *int                `json:"level,omitempty"`
	Cooldown         *float64            `json:"cooldown,omitempty"`
	CooldownsByLevel map[string]*float64 `json:"cooldowns_by_level,omitempty"`
}

// SkillCooldown reports a skill's cooldown, at one rank or across all ranks.
func (s *LookupService) SkillCooldown(ctx context.Context, championName, skillKey string, level *int) (*SkillCooldownResult, error) {
	champ, err := s.findChampion(ctx, championName)
	if err != nil {
		return nil, err
	}
	skill, nf := s.findSkill(champ, skillKey)
	if nf != nil {
		return nil, nf
	}

	levels := skillLevels(skill.Levels)
	result := &SkillCooldownResult{
		Champion:  champ.Name,
		SkillName: skill.Name,
		SkillKey:  skill.Slot,
	}

	if level != nil {
		for _, lv := range levels {
			if lv.Rank == *level {
				result.Level = level
				result.Cooldown = lv.Cooldown
				return result, nil
			}
		}
	}

	result.CooldownsByLevel = make(map[string]*float64, len(levels))
	for _, lv := range levels {
		result.CooldownsByLevel[fmt.Sprintf("%d", lv.Rank)] = lv.Cooldown
	}
	return result, nil
}

type SkillCostResult struct {
	Champion     string     `json:"champion"`
	SkillName    string     `json:"skill_name"`
	SkillKey     string     `json:"skill_key"`
	CostType     string     `json:"cost_type"`
	CostsByLevel []*float64 `json:"costs_by_level"`
}

// SkillCost reports a skill's resource cost per rank.
func (s *LookupService) SkillCost(ctx context.Context, championName, skillKey string) (*SkillCostResult, error) {
	info, err := s.SkillInfo(ctx, championName, skillKey)
	if err != nil {
		return nil, err
	}

	costs := make([]*float64, 0, len(info.Levels))
	for _, lv := range info.Levels {
		costs = append(costs, lv.ManaCost)
	}
	return &SkillCostResult{
		Champion:     info.Champion,
		SkillName:    info.SkillName,
		SkillKey:     info.SkillKey,
		CostType:     info.CostType,
		CostsByLevel: costs,
	}, nil
}

type BaseStatsResult struct {
	Champion  string             `json:"champion"`
	Title     string             `json:"title"`
	BaseStats map[string]float64 `json:"base_stats"`
}

// BaseStats reports a champion's full base stat block.
func (s *LookupService) BaseStats(ctx context.Context, championName string) (*BaseStatsResult, error) {
	champ, err := s.findChampion(ctx, championName)
	if err != nil {
		return nil, err
	}
	return &BaseStatsResult{
		Champion:  champ.Name,
		Title:     champ.Title,
		BaseStats: statsMap(champ.BaseStats),
	}, nil
}

type SpecificStatResult struct {
	Champion string  `json:"champion"`
	Stat     string  `json:"stat"`
	Value    float64 `json:"value"`
}

// SpecificStat reports one base stat, resolving common aliases.
func (s *LookupService) SpecificStat(ctx context.Context, championName, statName string) (*SpecificStatResult, error) {
	champ, err := s.findChampion(ctx, championName)
	if err != nil {
		return nil, err
	}

	stats := statsMap(champ.BaseStats)
	normalized := NormalizeStatName(statName)
	value, ok := stats[normalized]
	if !ok {
		available := make([]string, 0, len(stats))
		for k := range stats {
			available = append(available, k)
		}
		sort.Strings(available)
		return nil, &NotFoundError{
			Message: fmt.Sprintf("Stat '%s' not found for %s", statName, champ.Name),
			Hints:   map[string][]string{"available_stats": available},
		}
	}

	return &SpecificStatResult{Champion: champ.Name, Stat: normalized, Value: value}, nil
}

type ChampionInfoResult struct {
	Champion   string             `json:"champion"`
	Title      string             `json:"title"`
	HeroType   string             `json:"hero_type"`
	DamageType string             `json:"damage_type"`
	AttackType string             `json:"attack_type"`
	IsRanged   bool               `json:"is_ranged"`
	Complexity string             `json:"complexity"`
	Roles      []string           `json:"roles"`
	Lanes      []string           `json:"lanes"`
	Skills     map[string]string  `json:"skills"`
	BaseStats  map[string]float64 `json:"base_stats"`
}

// ChampionInfo reports the general profile of a champion.
func (s *LookupService) ChampionInfo(ctx context.Context, championName string) (*ChampionInfoResult, error) {
	champ, err := s.findChampion(ctx, championName)
	if err != nil {
		return nil, err
	}

	roles, err := s.repos.Facts.Objects(ctx, champ.Key, domain.PredPlaysRole)
	if err != nil {
		return nil, err
	}
	lanes, err := s.repos.Facts.Objects(ctx, champ.Key, domain.PredTypicalLane)
	if err != nil {
		return nil, err
	}

	skills := make(map[string]string, len(champ.Skills))
	for _, sk := range champ.Skills {
		skills[sk.Slot] = sk.Name
	}

	return &ChampionInfoResult{
		Champion:   champ.Name,
		Title:      champ.Title,
		HeroType:   champ.HeroType,
		DamageType: champ.DamageType,
		AttackType: champ.AttackType,
		IsRanged:   champ.IsRanged,
		Complexity: champ.Complexity,
		Roles:      roles,
		Lanes:      lanes,
		Skills:     skills,
		BaseStats:  statsMap(champ.BaseStats),
	}, nil
}

type StatsAtLevelResult struct {
	Champion string             `json:"champion"`
	Level    int                `json:"level"`
	Stats    map[string]float64 `json:"stats"`
}

// growthFactor is the level multiplier from the live game's stat formula.
func growthFactor(level int) float64 {
	return float64(level-1) * (0.7025 + 0.0175*float64(level-1))
}

// StatsAtLevel computes a champion's stats at a character level using
// base + growth * (level-1) * (0.7025 + 0.0175 * (level-1)).
func (s *LookupService) StatsAtLevel(ctx context.Context, championName string, level int) (*StatsAtLevelResult, error) {
	champ, err := s.findChampion(ctx, championName)
	if err != nil {
		return nil, err
	}
	if level < 1 || level > 18 {
		return nil, notFound("Character level must be between 1 and 18")
	}

	base := statsMap(champ.BaseStats)
	growth := statsMap(champ.StatGrowth)

	scaling := map[string]string{
		domain.StatHealth:       "health_per_level",
		domain.StatMana:         "mana_per_level",
		domain.StatArmor:        "armor_per_level",
		domain.StatAttackDamage: "attack_damage_per_level",
	}

	calculated := make(map[string]float64)
	for stat, growthKey := range scaling {
		baseVal, ok := base[stat]
		if !ok {
			continue
		}
		if growthVal, ok := growth[growthKey]; ok {
			baseVal += growthVal * growthFactor(level)
		}
		calculated[stat] = float64(int(baseVal*10+0.5)) / 10
	}

	for _, stat := range []string{domain.StatAttackSpeed, domain.StatMovementSpeed, domain.StatAttackRange} {
		if v, ok := base[stat]; ok && v != 0 {
			calculated[stat] = v
		}
	}

	return &StatsAtLevelResult{Champion: champ.Name, Level: level, Stats: calculated}, nil
}

type ComparisonEntry struct {
	Champion string   `json:"champion"`
	Stat     string   `json:"stat"`
	Value    *float64 `json:"value"`
	Error    string   `json:"error,omitempty"`
}

type ComparisonResult struct {
	Comparison []ComparisonEntry `json:"comparison"`
	Stat       string            `json:"stat"`
	Winner     string            `json:"winner,omitempty"`
}

// CompareChampions ranks champions by one base stat, highest first.
func (s *LookupService) CompareChampions(ctx context.Context, championNames []string, statName string) (*ComparisonResult, error) {
	if statName == "" {
		statName = domain.StatAttackDamage
	}
	normalized := NormalizeStatName(statName)

	entries := make([]ComparisonEntry, 0, len(championNames))
	for _, name := range championNames {
		champ, err := s.findChampion(ctx, name)
		if err != nil {
			if _, soft := err.(*NotFoundError); soft {
				entries = append(entries, ComparisonEntry{Champion: name, Stat: normalized, Error: "Champion not found"})
				continue
			}
			return nil, err
		}
		entry := ComparisonEntry{Champion: champ.Name, Stat: normalized}
		if value, ok := statsMap(champ.BaseStats)[normalized]; ok {
			v := value
			entry.Value = &v
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		vi, vj := 0.0, 0.0
		if entries[i].Value != nil {
			vi = *entries[i].Value
		}
		if entries[j].Value != nil {
			vj = *entries[j].Value
		}
		return vi > vj
	})

	result := &ComparisonResult{Comparison: entries, Stat: normalized}
	if len(entries) > 0 && entries[0].Value != nil {
		result.Winner = entries[0].Champion
	}
	return result, nil
}

type ChampionsByTagResult struct {
	Role      string   `json:"role,omitempty"`
	Lane      string   `json:"lane,omitempty"`
	Count     int      `json:"count"`
	Champions []string `json:"champions"`
}

func (s *LookupService) championNamesFor(ctx context.Context, predicate, object string) ([]string, error) {
	keys, err := s.repos.Facts.Subjects(ctx, predicate, object)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, s.resolver.DisplayName(domain.KindChampion, key))
	}
	sort.Strings(names)
	return names, nil
}

// ChampionsByRole lists every champion playing a role.
func (s *LookupService) ChampionsByRole(ctx context.Context, role string) (*ChampionsByTagResult, error) {
	normalized := NormalizeRole(role)
	names, err := s.championNamesFor(ctx, domain.PredPlaysRole, normalized)
	if err != nil {
		return nil, err
	}
	return &ChampionsByTagResult{Role: normalized, Count: len(names), Champions: names}, nil
}

// ChampionsByLane lists every champion typically played in a lane.
func (s *LookupService) ChampionsByLane(ctx context.Context, lane string) (*ChampionsByTagResult, error) {
	normalized := NormalizeLane(lane)
	names, err := s.championNamesFor(ctx, domain.PredTypicalLane, normalized)
	if err != nil {
		return nil, err
	}
	return &ChampionsByTagResult{Lane: normalized, Count: len(names), Champions: names}, nil
}

type SkillSummary struct {
	Key        string   `json:"key"`
	Name       string   `json:"name"`
	Types      []string `json:"types"`
	DamageType string   `json:"damage_type"`
}

type ListSkillsResult struct {
	Champion string         `json:"champion"`
	Skills   []SkillSummary `json:"skills"`
}

// ListSkills lists a champion's skills in slot order.
func (s *LookupService) ListSkills(ctx context.Context, championName string) (*ListSkillsResult, error) {
	champ, err := s.findChampion(ctx, championName)
	if err != nil {
		return nil, err
	}

	bySlot := make(map[string]*domain.Skill, len(champ.Skills))
	for i := range champ.Skills {
		bySlot[champ.Skills[i].Slot] = &champ.Skills[i]
	}

	skills := make([]SkillSummary, 0, len(domain.SkillSlots))
	for _, slot := range domain.SkillSlots {
		skill, ok := bySlot[slot]
		if !ok {
			continue
		}
		skills = append(skills, SkillSummary{
			Key:        slot,
			Name:       skill.Name,
			Types:      stringList(skill.Types),
			DamageType: skill.DamageType,
		})
	}

	return &ListSkillsResult{Champion: champ.Name, Skills: skills}, nil
}

func (s *LookupService) championObjects(ctx context.Context, key, predicate string) ([]string, error) {
	keys, err := s.repos.Facts.Objects(ctx, key, predicate)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, s.resolver.DisplayName(domain.KindChampion, k))
	}
	return names, nil
}

type CountersResult struct {
	Champion        string   `json:"champion"`
	QueryType       string   `json:"query_type"`
	HardCounters    []string `json:"hard_counters,omitempty"`
	Counters        []string `json:"counters,omitempty"`
	HardCounteredBy []string `json:"hard_countered_by,omitempty"`
	CounteredBy     []string `json:"countered_by,omitempty"`
	Total           int      `json:"total"`
}

// Counters reports the counter relationships of a champion in one direction:
// who this champion counters, or who counters this champion.
func (s *LookupService) Counters(ctx context.Context, championName, direction string) (*CountersResult, error) {
	champ, err := s.findChampion(ctx, championName)
	if err != nil {
		return nil, err
	}

	if direction == "counters" {
		hard, err := s.championObjects(ctx, champ.Key, domain.PredHardCounters)
		if err != nil {
			return nil, err
		}
		soft, err := s.championObjects(ctx, champ.Key, domain.PredCounters)
		if err != nil {
			return nil, err
		}
		return &CountersResult{
			Champion:     champ.Name,
			QueryType:    "who_this_champion_counters",
			HardCounters: hard,
			Counters:     soft,
			Total:        len(hard) + len(soft),
		}, nil
	}

	hard, err := s.championObjects(ctx, champ.Key, domain.PredHardCounteredBy)
	if err != nil {
		return nil, err
	}
	soft, err := s.championObjects(ctx, champ.Key, domain.PredCounteredBy)
	if err != nil {
		return nil, err
	}
	return &CountersResult{
		Champion:        champ.Name,
		QueryType:       "who_counters_this_champion",
		HardCounteredBy: hard,
		CounteredBy:     soft,
		Total:           len(hard) + len(soft),
	}, nil
}

type SynergiesResult struct {
	Champion      string   `json:"champion"`
	StrongSynergy []string `json:"strong_synergy"`
	Synergy       []string `json:"synergy"`
	WeakSynergy   []string `json:"weak_synergy"`
	Total         int      `json:"total"`
}

// Synergies reports a champion's synergy partners by tier.
func (s *LookupService) Synergies(ctx context.Context, championName string) (*SynergiesResult, error) {
	champ, err := s.findChampion(ctx, championName)
	if err != nil {
		return nil, err
	}

	strong, err := s.championObjects(ctx, champ.Key, domain.PredStrongSynergyWith)
	if err != nil {
		return nil, err
	}
	normal, err := s.championObjects(ctx, champ.Key, domain.PredSynergyWith)
	if err != nil {
		return nil, err
	}
	weak, err := s.championObjects(ctx, champ.Key, domain.PredWeakSynergyWith)
	if err != nil {
		return nil, err
	}

	return &SynergiesResult{
		Champion:      champ.Name,
		StrongSynergy: strong,
		Synergy:       normal,
		WeakSynergy:   weak,
		Total:         len(strong) + len(normal) + len(weak),
	}, nil
}

type BuildResult struct {
	Champion         string   `json:"champion"`
	CoreItems        []string `json:"core_items"`
	RecommendedItems []string `json:"recommended_items"`
	SituationalItems []string `json:"situational_items"`
}

func (s *LookupService) itemNamesFor(ctx context.Context, key, predicate string) ([]string, error) {
	keys, err := s.repos.Facts.Objects(ctx, key, predicate)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, s.resolver.DisplayName(domain.KindItem, k))
	}
	return names, nil
}

// Build reports a champion's item build by tier.
func (s *LookupService) Build(ctx context.Context, championName string) (*BuildResult, error) {
	champ, err := s.findChampion(ctx, championName)
	if err != nil {
		return nil, err
	}

	core, err := s.itemNamesFor(ctx, champ.Key, domain.PredCoreItem)
	if err != nil {
		return nil, err
	}
	recommended, err := s.itemNamesFor(ctx, champ.Key, domain.PredRecommendedItem)
	if err != nil {
		return nil, err
	}
	situational, err := s.itemNamesFor(ctx, champ.Key, domain.PredSituationalItem)
	if err != nil {
		return nil, err
	}

	return &BuildResult{
		Champion:         champ.Name,
		CoreItems:        core,
		RecommendedItems: recommended,
		SituationalItems: situational,
	}, nil
}

type ItemInfoResult struct {
	Name          string             `json:"name"`
	ItemType      string             `json:"item_type"`
	GoldCost      int                `json:"gold_cost"`
	Stats         map[string]float64 `json:"stats"`
	BuildPath     []string           `json:"build_path"`
	Description   string             `json:"description"`
	EffectTypes   []string           `json:"effect_types"`
	UniquePassive string             `json:"unique_passive"`
}

// ItemInfo reports everything known about an item.
func (s *LookupService) ItemInfo(ctx context.Context, itemName string) (*ItemInfoResult, error) {
	key, _, ok := s.resolver.Resolve(domain.KindItem, itemName)
	if !ok {
		return nil, &NotFoundError{
			Message: fmt.Sprintf("Item '%s' not found", itemName),
			Hints:   map[string][]string{"available_items_sample": s.resolver.SampleNames(domain.KindItem, 10)},
		}
	}

	item, err := s.repos.Item.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	return &ItemInfoResult{
		Name:          item.Name,
		ItemType:      item.ItemType,
		GoldCost:      item.GoldCost,
		Stats:         statsMap(item.Stats),
		BuildPath:     stringList(item.BuildPath),
		Description:   item.Description,
		EffectTypes:   stringList(item.EffectTypes),
		UniquePassive: item.UniquePassive,
	}, nil
}

type MonsterInfoResult struct {
	Name        string             `json:"name"`
	MonsterType string             `json:"monster_type"`
	Health      int                `json:"health"`
	AttackRange int                `json:"attack_range"`
	Stats       map[string]float64 `json:"stats"`
	Info        []string           `json:"info"`
}

// MonsterInfo reports everything known about a jungle monster.
func (s *LookupService) MonsterInfo(ctx context.Context, monsterName string) (*MonsterInfoResult, error) {
	key, _, ok := s.resolver.Resolve(domain.KindMonster, monsterName)
	if !ok {
		return nil, &NotFoundError{
			Message: fmt.Sprintf("Monster '%s' not found", monsterName),
			Hints:   map[string][]string{"available_monsters": s.resolver.SampleNames(domain.KindMonster, 20)},
		}
	}

	monster, err := s.repos.Monster.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	return &MonsterInfoResult{
		Name:        monster.Name,
		MonsterType: monster.MonsterType,
		Health:      monster.Health,
		AttackRange: monster.AttackRange,
		Stats:       statsMap(monster.Stats),
		Info:        stringList(monster.Info),
	}, nil
}

type TurretInfoResult struct {
	Name        string             `json:"name"`
	Health      int                `json:"health"`
	AttackRange int                `json:"attack_range"`
	Stats       map[string]float64 `json:"stats"`
	Info        []string           `json:"info"`
}

// TurretInfo reports everything known about a turret type.
func (s *LookupService) TurretInfo(ctx context.Context, turretName string) (*TurretInfoResult, error) {
	key, _, ok := s.resolver.Resolve(domain.KindTurret, turretName)
	if !ok {
		return nil, &NotFoundError{
			Message: fmt.Sprintf("Turret '%s' not found", turretName),
			Hints:   map[string][]string{"available_turrets": s.resolver.SampleNames(domain.KindTurret, 10)},
		}
	}

	turret, err := s.repos.Turret.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	return &TurretInfoResult{
		Name:        turret.Name,
		Health:      turret.Health,
		AttackRange: turret.AttackRange,
		Stats:       statsMap(turret.Stats),
		Info:        stringList(turret.Info),
	}, nil
}

type MonsterListResult struct {
	Bosses          []string `json:"bosses"`
	NeutralMonsters []string `json:"neutral_monsters"`
	Total           int      `json:"total"`
}

// ListMonsters splits the jungle monster roster into bosses and neutrals.
func (s *LookupService) ListMonsters(ctx context.Context) (*MonsterListResult, error) {
	monsters, err := s.repos.Monster.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := &MonsterListResult{Bosses: []string{}, NeutralMonsters: []string{}, Total: len(monsters)}
	for _, m := range monsters {
		if m.MonsterType == "Boss" {
			result.Bosses = append(result.Bosses, m.Name)
		} else {
			result.NeutralMonsters = append(result.NeutralMonsters, m.Name)
		}
	}
	sort.Strings(result.Bosses)
	sort.Strings(result.NeutralMonsters)
	return result, nil
}

type TurretListResult struct {
	Turrets []string `json:"turrets"`
	Total   int      `json:"total"`
}

// ListTurrets lists every turret type.
func (s *LookupService) ListTurrets(ctx context.Context) (*TurretListResult, error) {
	turrets, err := s.repos.Turret.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := &TurretListResult{Turrets: make([]string, 0, len(turrets)), Total: len(turrets)}
	for _, t := range turrets {
		result.Turrets = append(result.Turrets, t.Name)
	}
	sort.Strings(result.Turrets)
	return result, nil
}
