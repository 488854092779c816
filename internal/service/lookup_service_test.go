package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gizemyilmaz/lol-knowledge-engine/internal/service"
)

func TestLookupService_BaseStats(t *testing.T) {
	env := newGraphEnv(t)

	stats, err := env.lookup.BaseStats(env.ctx, "Malphite")
	require.NoError(t, err)
	assert.Equal(t, "Malphite", stats.Champion)
	assert.Equal(t, "Shard of the Monolith", stats.Title)
	assert.Equal(t, 644.0, stats.BaseStats["health"])
	assert.Equal(t, 62.0, stats.BaseStats["attack_damage"])

	// Free-form names resolve through the alias table
	stats, err = env.lookup.BaseStats(env.ctx, "mundo")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Mundo", stats.Champion)

	_, err = env.lookup.BaseStats(env.ctx, "NotAChampion")
	var notFound *service.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, notFound.Message, "NotAChampion")
}

func TestLookupService_SpecificStat(t *testing.T) {
	env := newGraphEnv(t)

	stat, err := env.lookup.SpecificStat(env.ctx, "Malphite", "hp")
	require.NoError(t, err)
	assert.Equal(t, "health", stat.Stat)
	assert.Equal(t, 644.0, stat.Value)

	stat, err = env.lookup.SpecificStat(env.ctx, "Yasuo", "attack damage")
	require.NoError(t, err)
	assert.Equal(t, 60.0, stat.Value)

	// Unknown stats list what is available
	_, err = env.lookup.SpecificStat(env.ctx, "Malphite", "lethality")
	var notFound *service.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, notFound.Hints["available_stats"], "health")
}

func TestLookupService_StatsAtLevel(t *testing.T) {
	env := newGraphEnv(t)

	// Level 18 growth factor is exactly 17, which keeps the math readable:
	// health = 644 + 104*17, armor = 37 + 4.7*17.
	result, err := env.lookup.StatsAtLevel(env.ctx, "malphite", 18)
	require.NoError(t, err)
	assert.Equal(t, 18, result.Level)
	assert.Equal(t, 2412.0, result.Stats["health"])
	assert.Equal(t, 116.9, result.Stats["armor"])
	assert.Equal(t, 962.0, result.Stats["mana"])
	assert.Equal(t, 130.0, result.Stats["attack_damage"])

	// Non-scaling stats carry over unchanged
	assert.Equal(t, 125.0, result.Stats["attack_range"])
	assert.Equal(t, 335.0, result.Stats["movement_speed"])

	result, err = env.lookup.StatsAtLevel(env.ctx, "malphite", 1)
	require.NoError(t, err)
	assert.Equal(t, 644.0, result.Stats["health"])

	_, err = env.lookup.StatsAtLevel(env.ctx, "malphite", 25)
	var notFound *service.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Character level must be between 1 and 18", notFound.Message)
}

func TestLookupService_SkillDamageAtLevel(t *testing.T) {
	env := newGraphEnv(t)

	result, err := env.lookup.SkillDamageAtLevel(env.ctx, "malphite", "Q", 3)
	require.NoError(t, err)
	assert.Equal(t, "Seismic Shard", result.SkillName)
	assert.Equal(t, "Q", result.SkillKey)
	require.NotNil(t, result.Damage)
	assert.Equal(t, 170.0, *result.Damage)
	require.NotNil(t, result.ManaCost)
	assert.Equal(t, 70.0, *result.ManaCost)

	// Lowercase slots are accepted
	result, err = env.lookup.SkillDamageAtLevel(env.ctx, "malphite", "r", 2)
	require.NoError(t, err)
	assert.Equal(t, "Unstoppable Force", result.SkillName)
	assert.Equal(t, 300.0, *result.Damage)

	// Missing skill lists the slots that exist
	_, err = env.lookup.SkillDamageAtLevel(env.ctx, "malphite", "W", 1)
	var notFound *service.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, notFound.Hints["available_skills"], "Q")

	// Rank out of range lists the ranks that exist
	_, err = env.lookup.SkillDamageAtLevel(env.ctx, "malphite", "R", 4)
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, []string{"1", "2", "3"}, notFound.Hints["available_levels"])
}

func TestLookupService_SkillCooldown(t *testing.T) {
	env := newGraphEnv(t)

	level := 1
	result, err := env.lookup.SkillCooldown(env.ctx, "Malphite", "R", &level)
	require.NoError(t, err)
	require.NotNil(t, result.Cooldown)
	assert.Equal(t, 130.0, *result.Cooldown)

	// Without a level the full per-rank table comes back
	result, err = env.lookup.SkillCooldown(env.ctx, "Malphite", "R", nil)
	require.NoError(t, err)
	require.Len(t, result.CooldownsByLevel, 3)
	assert.Equal(t, 130.0, *result.CooldownsByLevel["1"])
	assert.Equal(t, 80.0, *result.CooldownsByLevel["3"])
}

func TestLookupService_SkillInfoAndCost(t *testing.T) {
	env := newGraphEnv(t)

	info, err := env.lookup.SkillInfo(env.ctx, "yasuo", "Q")
	require.NoError(t, err)
	assert.Equal(t, "Steel Tempest", info.SkillName)
	assert.Equal(t, "NoCost", info.CostType)
	assert.Equal(t, 5, info.MaxRank)
	require.Len(t, info.Levels, 5)
	assert.Equal(t, 120.0, *info.Levels[4].Damage)

	cost, err := env.lookup.SkillCost(env.ctx, "annie", "Q")
	require.NoError(t, err)
	assert.Equal(t, "Mana", cost.CostType)
	require.Len(t, cost.CostsByLevel, 5)
	assert.Equal(t, 60.0, *cost.CostsByLevel[0])
	assert.Equal(t, 80.0, *cost.CostsByLevel[4])
}

func TestLookupService_ListSkills(t *testing.T) {
	env := newGraphEnv(t)

	result, err := env.lookup.ListSkills(env.ctx, "malphite")
	require.NoError(t, err)
	require.Len(t, result.Skills, 3)

	// Slots come back in display order: passive first
	assert.Equal(t, "P", result.Skills[0].Key)
	assert.Equal(t, "Granite Shield", result.Skills[0].Name)
	assert.Equal(t, "Q", result.Skills[1].Key)
	assert.Equal(t, "R", result.Skills[2].Key)
}

func TestLookupService_CompareChampions(t *testing.T) {
	env := newGraphEnv(t)

	result, err := env.lookup.CompareChampions(env.ctx, []string{"Yasuo", "Malphite"}, "ad")
	require.NoError(t, err)
	assert.Equal(t, "attack_damage", result.Stat)
	assert.Equal(t, "Malphite", result.Winner)
	require.Len(t, result.Comparison, 2)
	assert.Equal(t, "Malphite", result.Comparison[0].Champion)
	assert.Equal(t, 62.0, *result.Comparison[0].Value)
	assert.Equal(t, 60.0, *result.Comparison[1].Value)

	// Unknown champions stay in the comparison with an error marker
	result, err = env.lookup.CompareChampions(env.ctx, []string{"Malphite", "NotAChampion"}, "hp")
	require.NoError(t, err)
	require.Len(t, result.Comparison, 2)
	assert.Equal(t, "Champion not found", result.Comparison[1].Error)
	assert.Equal(t, "Malphite", result.Winner)
}

func TestLookupService_ChampionsByRoleAndLane(t *testing.T) {
	env := newGraphEnv(t)

	byRole, err := env.lookup.ChampionsByRole(env.ctx, "tank")
	require.NoError(t, err)
	assert.Equal(t, "TankRole", byRole.Role)
	assert.Equal(t, []string{"Dr. Mundo", "Malphite"}, byRole.Champions)
	assert.Equal(t, 2, byRole.Count)

	byLane, err := env.lookup.ChampionsByLane(env.ctx, "top")
	require.NoError(t, err)
	assert.Equal(t, "TopLane", byLane.Lane)
	assert.Equal(t, []string{"Dr. Mundo", "Malphite"}, byLane.Champions)

	byLane, err = env.lookup.ChampionsByLane(env.ctx, "jungle")
	require.NoError(t, err)
	assert.Empty(t, byLane.Champions)
	assert.Equal(t, 0, byLane.Count)
}

func TestLookupService_Counters(t *testing.T) {
	env := newGraphEnv(t)

	result, err := env.lookup.Counters(env.ctx, "Yasuo", "countered_by")
	require.NoError(t, err)
	assert.Equal(t, "who_counters_this_champion", result.QueryType)
	assert.Equal(t, []string{"Malphite"}, result.HardCounteredBy)
	assert.Equal(t, []string{"Annie"}, result.CounteredBy)
	assert.Equal(t, 2, result.Total)

	result, err = env.lookup.Counters(env.ctx, "Malphite", "counters")
	require.NoError(t, err)
	assert.Equal(t, "who_this_champion_counters", result.QueryType)
	assert.Equal(t, []string{"Yasuo"}, result.HardCounters)
	assert.Equal(t, 1, result.Total)
}

func TestLookupService_Synergies(t *testing.T) {
	env := newGraphEnv(t)

	result, err := env.lookup.Synergies(env.ctx, "Jinx")
	require.NoError(t, err)
	assert.Equal(t, []string{"Leona"}, result.StrongSynergy)
	assert.Empty(t, result.Synergy)
	assert.Equal(t, 1, result.Total)
}

func TestLookupService_Build(t *testing.T) {
	env := newGraphEnv(t)

	result, err := env.lookup.Build(env.ctx, "Malphite")
	require.NoError(t, err)
	assert.Equal(t, []string{"Thornmail"}, result.CoreItems)
	assert.Equal(t, []string{"Mercury's Treads"}, result.SituationalItems)
	assert.Empty(t, result.RecommendedItems)
}

func TestLookupService_ItemInfo(t *testing.T) {
	env := newGraphEnv(t)

	item, err := env.lookup.ItemInfo(env.ctx, "infinity edge")
	require.NoError(t, err)
	assert.Equal(t, "Infinity Edge", item.Name)
	assert.Equal(t, "Legendary", item.ItemType)
	assert.Equal(t, 3400, item.GoldCost)
	assert.Equal(t, 70.0, item.Stats["attack_damage"])
	assert.Contains(t, item.BuildPath, "B.F. Sword")

	_, err = env.lookup.ItemInfo(env.ctx, "NotAnItem")
	var notFound *service.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.NotEmpty(t, notFound.Hints["available_items_sample"])
}

func TestLookupService_MonsterAndTurretInfo(t *testing.T) {
	env := newGraphEnv(t)

	monster, err := env.lookup.MonsterInfo(env.ctx, "baron")
	require.NoError(t, err)
	assert.Equal(t, "Baron Nashor", monster.Name)
	assert.Equal(t, "Boss", monster.MonsterType)
	assert.Equal(t, 6500, monster.Health)

	monsters, err := env.lookup.ListMonsters(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Baron Nashor"}, monsters.Bosses)
	assert.Equal(t, []string{"Blue Sentinel"}, monsters.NeutralMonsters)
	assert.Equal(t, 2, monsters.Total)

	turret, err := env.lookup.TurretInfo(env.ctx, "outer")
	require.NoError(t, err)
	assert.Equal(t, "Outer Turret", turret.Name)
	assert.Equal(t, 5000, turret.Health)

	turrets, err := env.lookup.ListTurrets(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Outer Turret"}, turrets.Turrets)
}

func TestLookupService_ChampionInfo(t *testing.T) {
	env := newGraphEnv(t)

	info, err := env.lookup.ChampionInfo(env.ctx, "malphite")
	require.NoError(t, err)
	assert.Equal(t, "Malphite", info.Champion)
	assert.Equal(t, "TankHero", info.HeroType)
	assert.Equal(t, "MagicDamage", info.DamageType)
	assert.Equal(t, []string{"TankRole"}, info.Roles)
	assert.Equal(t, []string{"TopLane"}, info.Lanes)
	assert.Equal(t, "Seismic Shard", info.Skills["Q"])
	assert.Equal(t, 644.0, info.BaseStats["health"])
}
