package domain

import (
	"gorm.io/datatypes"
)

type Champion struct {
	Key        string         `json:"key" gorm:"primaryKey"` // canonical, e.g., "dr_mundo"
	Name       string         `json:"name" gorm:"not null"`  // display name, e.g., "Dr. Mundo"
	Title      string         `json:"title"`                 // e.g., "the Madman of Zaun"
	HeroType   string         `json:"heroType"`              // AssassinHero, MageHero, ...
	DamageType string         `json:"damageType"`            // MagicDamage / PhysicalDamage / MixedDamage
	AttackType string         `json:"attackType"`            // Melee / Ranged
	IsRanged   bool           `json:"isRanged"`
	Complexity string         `json:"complexity"` // Low / Moderate / High
	BaseStats  datatypes.JSON `json:"baseStats" gorm:"type:jsonb"`  // map[string]float64
	StatGrowth datatypes.JSON `json:"statGrowth" gorm:"type:jsonb"` // map[string]float64, *_per_level keys
	Skills     []Skill        `json:"skills" gorm:"foreignKey:ChampionKey;references:Key"`
}

// SkillSlots in display order. P is the passive.
var SkillSlots = []string{"P", "Q", "W", "E", "R"}

type Skill struct {
	ChampionKey string         `json:"championKey" gorm:"primaryKey"`
	Slot        string         `json:"slot" gorm:"primaryKey"` // P, Q, W, E, R
	Name        string         `json:"name" gorm:"not null"`
	Types       datatypes.JSON `json:"types" gorm:"type:jsonb"` // ["Active"], ["Passive"], ...
	DamageType  string         `json:"damageType"`
	CostType    string         `json:"costType"` // Mana, Energy, Health, NoCost
	MaxRank     int            `json:"maxRank"`  // 3 for ultimates, 5 otherwise
	Levels      datatypes.JSON `json:"levels" gorm:"type:jsonb"` // []SkillLevel, ranks 1..MaxRank
}

// SkillLevel holds per-rank values. Not every skill scales every field, so
// absent values stay nil rather than zero.
type SkillLevel struct {
	Rank     int      `json:"rank"`
	Damage   *float64 `json:"damage,omitempty"`
	Cooldown *float64 `json:"cooldown,omitempty"`
	Cost     *float64 `json:"cost,omitempty"`
}

// Base stat keys recognized in BaseStats blocks.
const (
	StatHealth        = "health"
	StatMana          = "mana"
	StatArmor         = "armor"
	StatMagicResist   = "magic_resist"
	StatAttackDamage  = "attack_damage"
	StatAttackSpeed   = "attack_speed"
	StatMovementSpeed = "movement_speed"
	StatAttackRange   = "attack_range"
)
