package testutil

import (
	"context"
	"encoding/json"
	"testing"

	"gorm.io/datatypes"

	"github.com/gizemyilmaz/lol-knowledge-engine/internal/domain"
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/repository"
)

func mustJSON(t *testing.T, v any) datatypes.JSON {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}
	return datatypes.JSON(raw)
}

func f(v float64) *float64 { return &v }

// SeedGraph loads a small but complete knowledge graph: six champions with
// stats, skills, tags, counter/synergy edges and builds, plus items, monsters
// and turrets. Every service test runs against this fixture.
func SeedGraph(t *testing.T, ctx context.Context, repos *repository.Repositories) {
	t.Helper()

	entities := []*domain.Entity{
		{Key: "malphite", Name: "Malphite", Kind: domain.KindChampion},
		{Key: "yasuo", Name: "Yasuo", Kind: domain.KindChampion},
		{Key: "jinx", Name: "Jinx", Kind: domain.KindChampion},
		{Key: "leona", Name: "Leona", Kind: domain.KindChampion},
		{Key: "dr_mundo", Name: "Dr. Mundo", Kind: domain.KindChampion},
		{Key: "annie", Name: "Annie", Kind: domain.KindChampion},
		{Key: "infinity_edge", Name: "Infinity Edge", Kind: domain.KindItem},
		{Key: "thornmail", Name: "Thornmail", Kind: domain.KindItem},
		{Key: "mercurys_treads", Name: "Mercury's Treads", Kind: domain.KindItem},
		{Key: "dorans_blade", Name: "Doran's Blade", Kind: domain.KindItem},
		{Key: "long_sword", Name: "Long Sword", Kind: domain.KindItem},
		{Key: "baron_nashor", Name: "Baron Nashor", Kind: domain.KindMonster},
		{Key: "blue_sentinel", Name: "Blue Sentinel", Kind: domain.KindMonster},
		{Key: "outer_turret", Name: "Outer Turret", Kind: domain.KindTurret},
	}
	if err := repos.Entity.UpsertMany(ctx, entities); err != nil {
		t.Fatalf("failed to seed entities: %v", err)
	}

	champions := []*domain.Champion{
		{
			Key: "malphite", Name: "Malphite", Title: "Shard of the Monolith",
			HeroType: "TankHero", DamageType: "MagicDamage", AttackType: "Melee", Complexity: "Low",
			BaseStats: mustJSON(t, map[string]float64{
				"health": 644, "mana": 282, "armor": 37, "magic_resist": 32,
				"attack_damage": 62, "attack_speed": 0.736, "movement_speed": 335, "attack_range": 125,
			}),
			StatGrowth: mustJSON(t, map[string]float64{
				"health_per_level": 104, "mana_per_level": 40, "armor_per_level": 4.7, "attack_damage_per_level": 4,
			}),
		},
		{
			Key: "yasuo", Name: "Yasuo", Title: "the Unforgiven",
			HeroType: "WarriorHero", DamageType: "PhysicalDamage", AttackType: "Melee", Complexity: "High",
			BaseStats: mustJSON(t, map[string]float64{
				"health": 590, "mana": 100, "armor": 30, "magic_resist": 32,
				"attack_damage": 60, "attack_speed": 0.697, "movement_speed": 345, "attack_range": 175,
			}),
			StatGrowth: mustJSON(t, map[string]float64{
				"health_per_level": 101, "armor_per_level": 4.6, "attack_damage_per_level": 3.2,
			}),
		},
		{
			Key: "jinx", Name: "Jinx", Title: "the Loose Cannon",
			HeroType: "CarryHero", DamageType: "PhysicalDamage", AttackType: "Ranged", IsRanged: true, Complexity: "Moderate",
			BaseStats: mustJSON(t, map[string]float64{
				"health": 630, "mana": 260, "armor": 26, "magic_resist": 30,
				"attack_damage": 59, "attack_speed": 0.625, "movement_speed": 325, "attack_range": 525,
			}),
			StatGrowth: mustJSON(t, map[string]float64{
				"health_per_level": 105, "mana_per_level": 50, "armor_per_level": 4.7, "attack_damage_per_level": 3.15,
			}),
		},
		{
			Key: "leona", Name: "Leona", Title: "the Radiant Dawn",
			HeroType: "SupportHero", DamageType: "MagicDamage", AttackType: "Melee", Complexity: "Low",
			BaseStats: mustJSON(t, map[string]float64{
				"health": 646, "mana": 302, "armor": 43, "magic_resist": 32,
				"attack_damage": 60, "attack_speed": 0.625, "movement_speed": 335, "attack_range": 125,
			}),
			StatGrowth: mustJSON(t, map[string]float64{
				"health_per_level": 101, "mana_per_level": 40, "armor_per_level": 4.8, "attack_damage_per_level": 3,
			}),
		},
		{
			Key: "dr_mundo", Name: "Dr. Mundo", Title: "the Madman of Zaun",
			HeroType: "TankHero", DamageType: "MagicDamage", AttackType: "Melee", Complexity: "Low",
			BaseStats: mustJSON(t, map[string]float64{
				"health": 613, "armor": 32, "magic_resist": 32,
				"attack_damage": 61, "attack_speed": 0.67, "movement_speed": 345, "attack_range": 125,
			}),
			StatGrowth: mustJSON(t, map[string]float64{
				"health_per_level": 103, "armor_per_level": 3.7, "attack_damage_per_level": 2.5,
			}),
		},
		{
			Key: "annie", Name: "Annie", Title: "the Dark Child",
			HeroType: "MageHero", DamageType: "MagicDamage", AttackType: "Ranged", IsRanged: true, Complexity: "Low",
			BaseStats: mustJSON(t, map[string]float64{
				"health": 560, "mana": 418, "armor": 19, "magic_resist": 30,
				"attack_damage": 50, "attack_speed": 0.61, "movement_speed": 335, "attack_range": 625,
			}),
			StatGrowth: mustJSON(t, map[string]float64{
				"health_per_level": 96, "mana_per_level": 25, "armor_per_level": 4, "attack_damage_per_level": 2.65,
			}),
		},
	}
	for _, champ := range champions {
		if err := repos.Champion.Upsert(ctx, champ); err != nil {
			t.Fatalf("failed to seed champion %s: %v", champ.Key, err)
		}
	}

	skills := []*domain.Skill{
		{
			ChampionKey: "malphite", Slot: "Q", Name: "Seismic Shard",
			Types: mustJSON(t, []string{"ActiveSkill"}), DamageType: "MagicDamage", CostType: "Mana", MaxRank: 5,
			Levels: mustJSON(t, []domain.SkillLevel{
				{Rank: 1, Damage: f(70), Cooldown: f(8), Cost: f(60)},
				{Rank: 2, Damage: f(120), Cooldown: f(8), Cost: f(65)},
				{Rank: 3, Damage: f(170), Cooldown: f(8), Cost: f(70)},
				{Rank: 4, Damage: f(220), Cooldown: f(8), Cost: f(75)},
				{Rank: 5, Damage: f(270), Cooldown: f(8), Cost: f(80)},
			}),
		},
		{
			ChampionKey: "malphite", Slot: "R", Name: "Unstoppable Force",
			Types: mustJSON(t, []string{"ActiveSkill", "UltimateSkill"}), DamageType: "MagicDamage", CostType: "Mana", MaxRank: 3,
			Levels: mustJSON(t, []domain.SkillLevel{
				{Rank: 1, Damage: f(200), Cooldown: f(130), Cost: f(100)},
				{Rank: 2, Damage: f(300), Cooldown: f(105), Cost: f(100)},
				{Rank: 3, Damage: f(400), Cooldown: f(80), Cost: f(100)},
			}),
		},
		{
			ChampionKey: "malphite", Slot: "P", Name: "Granite Shield",
			Types: mustJSON(t, []string{"PassiveSkill"}), CostType: "NoCost", MaxRank: 1,
			Levels: mustJSON(t, []domain.SkillLevel{{Rank: 1}}),
		},
		{
			ChampionKey: "yasuo", Slot: "Q", Name: "Steel Tempest",
			Types: mustJSON(t, []string{"ActiveSkill"}), DamageType: "PhysicalDamage", CostType: "NoCost", MaxRank: 5,
			Levels: mustJSON(t, []domain.SkillLevel{
				{Rank: 1, Damage: f(20), Cooldown: f(4)},
				{Rank: 2, Damage: f(45), Cooldown: f(4)},
				{Rank: 3, Damage: f(70), Cooldown: f(4)},
				{Rank: 4, Damage: f(95), Cooldown: f(4)},
				{Rank: 5, Damage: f(120), Cooldown: f(4)},
			}),
		},
		{
			ChampionKey: "annie", Slot: "Q", Name: "Disintegrate",
			Types: mustJSON(t, []string{"ActiveSkill"}), DamageType: "MagicDamage", CostType: "Mana", MaxRank: 5,
			Levels: mustJSON(t, []domain.SkillLevel{
				{Rank: 1, Damage: f(80), Cooldown: f(4), Cost: f(60)},
				{Rank: 2, Damage: f(115), Cooldown: f(4), Cost: f(65)},
				{Rank: 3, Damage: f(150), Cooldown: f(4), Cost: f(70)},
				{Rank: 4, Damage: f(185), Cooldown: f(4), Cost: f(75)},
				{Rank: 5, Damage: f(220), Cooldown: f(4), Cost: f(80)},
			}),
		},
	}
	if err := repos.Skill.UpsertMany(ctx, skills); err != nil {
		t.Fatalf("failed to seed skills: %v", err)
	}

	items := []*domain.Item{
		{
			Key: "infinity_edge", Name: "Infinity Edge", ItemType: "Legendary", GoldCost: 3400,
			Stats:       mustJSON(t, map[string]float64{"attack_damage": 70, "critical_chance": 20}),
			BuildPath:   mustJSON(t, []string{"B.F. Sword", "Pickaxe"}),
			EffectTypes: mustJSON(t, []string{"CriticalEffect"}),
			Description: "Massively enhances critical strikes",
		},
		{
			Key: "thornmail", Name: "Thornmail", ItemType: "Legendary", GoldCost: 2700,
			Stats:       mustJSON(t, map[string]float64{"armor": 60, "health": 350}),
			BuildPath:   mustJSON(t, []string{"Bramble Vest", "Giant's Belt"}),
			EffectTypes: mustJSON(t, []string{"AntiHealEffect"}),
			Description: "Reflects damage and applies grievous wounds",
		},
		{
			Key: "mercurys_treads", Name: "Mercury's Treads", ItemType: "Boots", GoldCost: 1100,
			Stats: mustJSON(t, map[string]float64{"magic_resist": 25, "movement_speed": 45}),
		},
		{
			Key: "dorans_blade", Name: "Doran's Blade", ItemType: "Starter", GoldCost: 450,
			Stats: mustJSON(t, map[string]float64{"attack_damage": 8, "health": 80}),
		},
		{
			Key: "long_sword", Name: "Long Sword", ItemType: "Basic", GoldCost: 350,
			Stats: mustJSON(t, map[string]float64{"attack_damage": 10}),
		},
	}
	if err := repos.Item.UpsertMany(ctx, items); err != nil {
		t.Fatalf("failed to seed items: %v", err)
	}

	monsters := []*domain.Monster{
		{
			Key: "baron_nashor", Name: "Baron Nashor", MonsterType: "Boss", Health: 6500, AttackRange: 955,
			Stats: mustJSON(t, map[string]float64{"armor": 120, "attack_damage": 125}),
			Info:  mustJSON(t, []string{"Spawns at 20:00", "Grants Hand of Baron buff"}),
		},
		{
			Key: "blue_sentinel", Name: "Blue Sentinel", MonsterType: "Neutral", Health: 2300, AttackRange: 125,
			Stats: mustJSON(t, map[string]float64{"armor": 10, "attack_damage": 82}),
			Info:  mustJSON(t, []string{"Grants Crest of Insight"}),
		},
	}
	if err := repos.Monster.UpsertMany(ctx, monsters); err != nil {
		t.Fatalf("failed to seed monsters: %v", err)
	}

	turrets := []*domain.Turret{
		{
			Key: "outer_turret", Name: "Outer Turret", Health: 5000, AttackRange: 750,
			Stats: mustJSON(t, map[string]float64{"armor": 40, "attack_damage": 152}),
			Info:  mustJSON(t, []string{"Protected by plating until 14:00"}),
		},
	}
	if err := repos.Turret.UpsertMany(ctx, turrets); err != nil {
		t.Fatalf("failed to seed turrets: %v", err)
	}

	triple := func(s, p, o string) *domain.Triple {
		return &domain.Triple{Subject: s, Predicate: p, Object: o}
	}
	triples := []*domain.Triple{
		// Malphite
		triple("malphite", domain.PredPlaysRole, "TankRole"),
		triple("malphite", domain.PredTypicalLane, "TopLane"),
		triple("malphite", domain.PredDealsDamageType, "MagicDamage"),
		triple("malphite", domain.PredHasCrowdControl, "KnockupCC"),
		triple("malphite", domain.PredHasCrowdControl, "SlowCC"),
		triple("malphite", domain.PredHasPlaystyle, "EngagePlaystyle"),
		triple("malphite", domain.PredHasPlaystyle, "TankPlaystyle"),
		triple("malphite", domain.PredHasPowerSpike, "MidGamePowerSpike"),
		triple("malphite", domain.PredHasWinCondition, "TeamfightWinCondition"),
		triple("malphite", domain.PredHardCounters, "yasuo"),
		triple("malphite", domain.PredCoreItem, "thornmail"),
		triple("malphite", domain.PredSituationalItem, "mercurys_treads"),
		// Yasuo
		triple("yasuo", domain.PredPlaysRole, "WarriorRole"),
		triple("yasuo", domain.PredTypicalLane, "MidLane"),
		triple("yasuo", domain.PredDealsDamageType, "PhysicalDamage"),
		triple("yasuo", domain.PredHasAbilityEffect, "DashEffect"),
		triple("yasuo", domain.PredHasAbilityEffect, "ShieldEffect"),
		triple("yasuo", domain.PredHasPlaystyle, "DuelistPlaystyle"),
		triple("yasuo", domain.PredHasPowerSpike, "MidGamePowerSpike"),
		triple("yasuo", domain.PredHardCounteredBy, "malphite"),
		triple("yasuo", domain.PredCounteredBy, "annie"),
		triple("yasuo", domain.PredCoreItem, "infinity_edge"),
		// Jinx
		triple("jinx", domain.PredPlaysRole, "CarryRole"),
		triple("jinx", domain.PredTypicalLane, "BottomLane"),
		triple("jinx", domain.PredDealsDamageType, "PhysicalDamage"),
		triple("jinx", domain.PredHasPlaystyle, "MarksmanPlaystyle"),
		triple("jinx", domain.PredHasPowerSpike, "LateGamePowerSpike"),
		triple("jinx", domain.PredHasWinCondition, "TeamfightWinCondition"),
		triple("jinx", domain.PredStrongSynergyWith, "leona"),
		triple("jinx", domain.PredCoreItem, "infinity_edge"),
		triple("jinx", domain.PredRecommendedItem, "mercurys_treads"),
		// Leona
		triple("leona", domain.PredPlaysRole, "SupportRole"),
		triple("leona", domain.PredTypicalLane, "BottomLane"),
		triple("leona", domain.PredDealsDamageType, "MagicDamage"),
		triple("leona", domain.PredHasCrowdControl, "StunCC"),
		triple("leona", domain.PredHasCrowdControl, "RootCC"),
		triple("leona", domain.PredHasPlaystyle, "EngagePlaystyle"),
		triple("leona", domain.PredHasWinCondition, "PickWinCondition"),
		triple("leona", domain.PredSynergyWith, "malphite"),
		// Dr. Mundo
		triple("dr_mundo", domain.PredPlaysRole, "TankRole"),
		triple("dr_mundo", domain.PredPlaysRole, "WarriorRole"),
		triple("dr_mundo", domain.PredTypicalLane, "TopLane"),
		triple("dr_mundo", domain.PredDealsDamageType, "MagicDamage"),
		triple("dr_mundo", domain.PredHasAbilityEffect, "HealEffect"),
		triple("dr_mundo", domain.PredHasPowerSpike, "LateGamePowerSpike"),
		// Annie
		triple("annie", domain.PredPlaysRole, "MageRole"),
		triple("annie", domain.PredTypicalLane, "MidLane"),
		triple("annie", domain.PredDealsDamageType, "MagicDamage"),
		triple("annie", domain.PredHasCrowdControl, "StunCC"),
		triple("annie", domain.PredHasPlaystyle, "BurstPlaystyle"),
		triple("annie", domain.PredCounters, "yasuo"),
	}
	if err := repos.Facts.InsertMany(ctx, triples); err != nil {
		t.Fatalf("failed to seed triples: %v", err)
	}
}

// SnapshotFixture is a frozen minute-10 match with Malphite (participant 1)
// top against Yasuo, slightly ahead in gold.
func SnapshotFixture() domain.Snapshot {
	return domain.Snapshot{
		MatchID:      "NA1_TEST_0001",
		Minute:       10,
		BlueTeamGold: 16000,
		RedTeamGold:  14200,
		GoldDiff:     1800,
		Players: []domain.SnapshotPlayer{
			{ParticipantID: 1, Champion: "Malphite", Team: "Blue", Level: 8, TotalGold: 5200, CS: 61,
				Items: []string{"Doran's Blade", "Thornmail"}, Skills: map[string]int{"Q": 4, "W": 1, "E": 2, "R": 1}},
			{ParticipantID: 2, Champion: "Lee Sin", Team: "Blue", Level: 7, TotalGold: 4300, CS: 48},
			{ParticipantID: 3, Champion: "Annie", Team: "Blue", Level: 8, TotalGold: 4700, CS: 70},
			{ParticipantID: 4, Champion: "Jinx", Team: "Blue", Level: 7, TotalGold: 4600, CS: 78},
			{ParticipantID: 5, Champion: "Leona", Team: "Blue", Level: 6, TotalGold: 2900, CS: 15},
			{ParticipantID: 6, Champion: "Yasuo", Team: "Red", Level: 7, TotalGold: 4100, CS: 52,
				Items: []string{"Doran's Blade", "Long Sword"}, Skills: map[string]int{"Q": 4, "W": 1, "E": 2}},
			{ParticipantID: 7, Champion: "Dr. Mundo", Team: "Red", Level: 7, TotalGold: 3800, CS: 44},
			{ParticipantID: 8, Champion: "Viktor", Team: "Red", Level: 8, TotalGold: 4900, CS: 72},
			{ParticipantID: 9, Champion: "Ashe", Team: "Red", Level: 6, TotalGold: 3600, CS: 60},
			{ParticipantID: 10, Champion: "Thresh", Team: "Red", Level: 6, TotalGold: 2800, CS: 12},
		},
	}
}
