package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"gorm.io/datatypes"

	"github.com/gizemyilmaz/lol-knowledge-engine/internal/domain"
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/repository"
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/repository/postgres"
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/service"
)

// Counter and synergy tier thresholds. Matchup scores rate how hard a lane is
// for us (lower is better); synergy win rates are duo percentages.
const (
	hardCounterScore     = 4.0
	softCounterScore     = 5.0
	hardCounteredByScore = 5.5

	strongSynergyWinRate = 52.0
	normalSynergyWinRate = 50.0
	weakSynergyWinRate   = 48.0
)

type skillData struct {
	Name       string              `json:"name"`
	Types      []string            `json:"types"`
	DamageType string              `json:"damage_type"`
	CostType   string              `json:"cost_type"`
	MaxRank    int                 `json:"max_rank"`
	Levels     []domain.SkillLevel `json:"levels"`
}

type championData struct {
	Name       string               `json:"name"`
	Title      string               `json:"title"`
	HeroType   string               `json:"hero_type"`
	DamageType string               `json:"damage_type"`
	AttackType string               `json:"attack_type"`
	IsRanged   bool                 `json:"is_ranged"`
	Complexity string               `json:"complexity"`
	Roles      []string             `json:"roles"`
	Lanes      []string             `json:"lanes"`
	BaseStats  map[string]float64   `json:"base_stats"`
	StatGrowth map[string]float64   `json:"stat_growth"`
	Skills     map[string]skillData `json:"skills"` // slot -> skill

	// Curated tier lists. Used as-is when present.
	Counters        []string `json:"counters"`
	HardCounters    []string `json:"hard_counters"`
	CounteredBy     []string `json:"countered_by"`
	HardCounteredBy []string `json:"hard_countered_by"`
	StrongSynergy   []string `json:"strong_synergy"`
	Synergy         []string `json:"synergy"`
	WeakSynergy     []string `json:"weak_synergy"`

	// Raw scores from the stats export. Tiered by the thresholds above and
	// merged with the curated lists.
	MatchupScores   map[string]float64 `json:"matchup_scores"`
	SynergyWinRates map[string]float64 `json:"synergy_win_rates"`

	CCTypes        []string `json:"cc_types"`
	AbilityEffects []string `json:"ability_effects"`
	Playstyles     []string `json:"playstyles"`
	PowerSpikes    []string `json:"power_spikes"`
	WinConditions  []string `json:"win_conditions"`

	CoreItems        []string `json:"core_items"`
	RecommendedItems []string `json:"recommended_items"`
	SituationalItems []string `json:"situational_items"`
}

type itemData struct {
	Name          string             `json:"name"`
	ItemType      string             `json:"item_type"`
	GoldCost      int                `json:"gold_cost"`
	Stats         map[string]float64 `json:"stats"`
	BuildPath     []string           `json:"build_path"`
	EffectTypes   []string           `json:"effect_types"`
	Description   string             `json:"description"`
	UniquePassive string             `json:"unique_passive"`
}

type objectiveData struct {
	Name        string             `json:"name"`
	MonsterType string             `json:"monster_type,omitempty"`
	Health      int                `json:"health"`
	AttackRange int                `json:"attack_range"`
	Stats       map[string]float64 `json:"stats"`
	Info        []string           `json:"info"`
}

type dataset struct {
	Champions []championData  `json:"champions"`
	Items     []itemData      `json:"items"`
	Monsters  []objectiveData `json:"monsters"`
	Turrets   []objectiveData `json:"turrets"`
}

func main() {
	dataPath := flag.String("data", "data/knowledge_graph.json", "path to the graph dataset")
	databaseURL := flag.String("db", os.Getenv("DATABASE_URL"), "postgres connection string")
	flag.Parse()

	if *databaseURL == "" {
		log.Fatal("database URL required (set DATABASE_URL or pass -db)")
	}

	raw, err := os.ReadFile(*dataPath)
	if err != nil {
		log.Fatalf("failed to read dataset: %v", err)
	}
	var data dataset
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Fatalf("failed to parse dataset: %v", err)
	}

	db, err := postgres.NewConnection(*databaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	repos := postgres.NewRepositories(db)

	ctx := context.Background()
	loader := &loader{repos: repos}
	if err := loader.run(ctx, &data); err != nil {
		log.Fatalf("load failed: %v", err)
	}

	log.Printf("Loaded %d champions, %d items, %d monsters, %d turrets, %d triples",
		len(data.Champions), len(data.Items), len(data.Monsters), len(data.Turrets), loader.tripleCount)
}

type loader struct {
	repos       *repository.Repositories
	tripleCount int
}

func (l *loader) run(ctx context.Context, data *dataset) error {
	var entities []*domain.Entity
	var triples []*domain.Triple

	for i := range data.Champions {
		champ := &data.Champions[i]
		key := service.NormalizeName(champ.Name)

		entities = append(entities, &domain.Entity{Key: key, Name: champ.Name, Kind: domain.KindChampion})

		if err := l.loadChampion(ctx, key, champ); err != nil {
			return fmt.Errorf("champion %s: %w", champ.Name, err)
		}
		triples = append(triples, championTriples(key, champ)...)
	}

	for i := range data.Items {
		item := &data.Items[i]
		key := service.NormalizeName(item.Name)
		entities = append(entities, &domain.Entity{Key: key, Name: item.Name, Kind: domain.KindItem})

		row := &domain.Item{
			Key:           key,
			Name:          item.Name,
			ItemType:      item.ItemType,
			GoldCost:      item.GoldCost,
			Stats:         mustJSON(item.Stats),
			BuildPath:     mustJSON(item.BuildPath),
			EffectTypes:   mustJSON(item.EffectTypes),
			Description:   item.Description,
			UniquePassive: item.UniquePassive,
		}
		if err := l.repos.Item.UpsertMany(ctx, []*domain.Item{row}); err != nil {
			return fmt.Errorf("item %s: %w", item.Name, err)
		}
	}

	for i := range data.Monsters {
		monster := &data.Monsters[i]
		key := service.NormalizeName(monster.Name)
		entities = append(entities, &domain.Entity{Key: key, Name: monster.Name, Kind: domain.KindMonster})

		row := &domain.Monster{
			Key:         key,
			Name:        monster.Name,
			MonsterType: monster.MonsterType,
			Health:      monster.Health,
			AttackRange: monster.AttackRange,
			Stats:       mustJSON(monster.Stats),
			Info:        mustJSON(monster.Info),
		}
		if err := l.repos.Monster.UpsertMany(ctx, []*domain.Monster{row}); err != nil {
			return fmt.Errorf("monster %s: %w", monster.Name, err)
		}
	}

	for i := range data.Turrets {
		turret := &data.Turrets[i]
		key := service.NormalizeName(turret.Name)
		entities = append(entities, &domain.Entity{Key: key, Name: turret.Name, Kind: domain.KindTurret})

		row := &domain.Turret{
			Key:         key,
			Name:        turret.Name,
			Health:      turret.Health,
			AttackRange: turret.AttackRange,
			Stats:       mustJSON(turret.Stats),
			Info:        mustJSON(turret.Info),
		}
		if err := l.repos.Turret.UpsertMany(ctx, []*domain.Turret{row}); err != nil {
			return fmt.Errorf("turret %s: %w", turret.Name, err)
		}
	}

	if err := l.repos.Entity.UpsertMany(ctx, entities); err != nil {
		return fmt.Errorf("entities: %w", err)
	}
	if err := l.repos.Facts.InsertMany(ctx, triples); err != nil {
		return fmt.Errorf("triples: %w", err)
	}
	l.tripleCount = len(triples)
	return nil
}

func (l *loader) loadChampion(ctx context.Context, key string, champ *championData) error {
	row := &domain.Champion{
		Key:        key,
		Name:       champ.Name,
		Title:      champ.Title,
		HeroType:   champ.HeroType,
		DamageType: champ.DamageType,
		AttackType: champ.AttackType,
		IsRanged:   champ.IsRanged,
		Complexity: champ.Complexity,
		BaseStats:  mustJSON(champ.BaseStats),
		StatGrowth: mustJSON(champ.StatGrowth),
	}
	if err := l.repos.Champion.Upsert(ctx, row); err != nil {
		return err
	}

	var skills []*domain.Skill
	for slot, skill := range champ.Skills {
		maxRank := skill.MaxRank
		if maxRank == 0 {
			if slot == "R" {
				maxRank = 3
			} else {
				maxRank = 5
			}
		}
		skills = append(skills, &domain.Skill{
			ChampionKey: key,
			Slot:        slot,
			Name:        skill.Name,
			Types:       mustJSON(skill.Types),
			DamageType:  skill.DamageType,
			CostType:    skill.CostType,
			MaxRank:     maxRank,
			Levels:      mustJSON(skill.Levels),
		})
	}
	return l.repos.Skill.UpsertMany(ctx, skills)
}

// championTriples emits every graph edge a champion record carries: roles,
// lanes, damage type, semantic tags, counter and synergy edges, and builds.
func championTriples(key string, champ *championData) []*domain.Triple {
	var triples []*domain.Triple
	add := func(predicate, object string) {
		if object != "" {
			triples = append(triples, &domain.Triple{Subject: key, Predicate: predicate, Object: object})
		}
	}
	addAll := func(predicate string, objects []string, suffix string) {
		for _, object := range objects {
			add(predicate, object+suffix)
		}
	}
	addEdges := func(predicate string, names []string) {
		for _, name := range names {
			add(predicate, service.NormalizeName(name))
		}
	}

	addAll(domain.PredPlaysRole, champ.Roles, "")
	addAll(domain.PredTypicalLane, champ.Lanes, "")
	add(domain.PredDealsDamageType, champ.DamageType)

	addAll(domain.PredHasCrowdControl, champ.CCTypes, domain.SuffixCC)
	addAll(domain.PredHasAbilityEffect, champ.AbilityEffects, domain.SuffixEffect)
	addAll(domain.PredHasPlaystyle, champ.Playstyles, domain.SuffixPlaystyle)
	addAll(domain.PredHasPowerSpike, champ.PowerSpikes, domain.SuffixPowerSpike)
	addAll(domain.PredHasWinCondition, champ.WinConditions, domain.SuffixWinCondition)

	addEdges(domain.PredCounters, champ.Counters)
	addEdges(domain.PredHardCounters, champ.HardCounters)
	addEdges(domain.PredCounteredBy, champ.CounteredBy)
	addEdges(domain.PredHardCounteredBy, champ.HardCounteredBy)
	addEdges(domain.PredStrongSynergyWith, champ.StrongSynergy)
	addEdges(domain.PredSynergyWith, champ.Synergy)
	addEdges(domain.PredWeakSynergyWith, champ.WeakSynergy)

	// Tier the raw matchup scores. Every recorded score emits exactly one
	// mirrored counter pair; an even lane at 5.0 goes to the favorable side.
	for enemy, score := range champ.MatchupScores {
		enemyKey := service.NormalizeName(enemy)
		switch {
		case score <= hardCounterScore:
			add(domain.PredHardCounters, enemyKey)
			triples = append(triples, &domain.Triple{Subject: enemyKey, Predicate: domain.PredHardCounteredBy, Object: key})
		case score <= softCounterScore:
			add(domain.PredCounters, enemyKey)
			triples = append(triples, &domain.Triple{Subject: enemyKey, Predicate: domain.PredCounteredBy, Object: key})
		case score >= hardCounteredByScore:
			add(domain.PredHardCounteredBy, enemyKey)
			triples = append(triples, &domain.Triple{Subject: enemyKey, Predicate: domain.PredHardCounters, Object: key})
		default:
			add(domain.PredCounteredBy, enemyKey)
			triples = append(triples, &domain.Triple{Subject: enemyKey, Predicate: domain.PredCounters, Object: key})
		}
	}

	for partner, winRate := range champ.SynergyWinRates {
		partnerKey := service.NormalizeName(partner)
		switch {
		case winRate >= strongSynergyWinRate:
			add(domain.PredStrongSynergyWith, partnerKey)
		case winRate >= normalSynergyWinRate:
			add(domain.PredSynergyWith, partnerKey)
		case winRate >= weakSynergyWinRate:
			add(domain.PredWeakSynergyWith, partnerKey)
		}
	}

	addEdges(domain.PredCoreItem, champ.CoreItems)
	addEdges(domain.PredRecommendedItem, champ.RecommendedItems)
	addEdges(domain.PredSituationalItem, champ.SituationalItems)

	return triples
}

func mustJSON(v any) datatypes.JSON {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Fatalf("failed to encode %T: %v", v, err)
	}
	return datatypes.JSON(raw)
}
