package domain

import (
	"gorm.io/datatypes"
)

type Item struct {
	Key           string         `json:"key" gorm:"primaryKey"`
	Name          string         `json:"name" gorm:"not null"`
	ItemType      string         `json:"itemType"` // Starter, Basic, Epic, Legendary, Boots, Consumable
	GoldCost      int            `json:"goldCost"`
	Stats         datatypes.JSON `json:"stats" gorm:"type:jsonb"`       // map[string]float64
	BuildPath     datatypes.JSON `json:"buildPath" gorm:"type:jsonb"`   // []string of component names
	EffectTypes   datatypes.JSON `json:"effectTypes" gorm:"type:jsonb"` // []string
	Description   string         `json:"description"`
	UniquePassive string         `json:"uniquePassive"`
}

type Monster struct {
	Key         string         `json:"key" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	MonsterType string         `json:"monsterType"` // Boss or Neutral
	Health      int            `json:"health"`
	AttackRange int            `json:"attackRange"`
	Stats       datatypes.JSON `json:"stats" gorm:"type:jsonb"`
	Info        datatypes.JSON `json:"info" gorm:"type:jsonb"` // []string of notes
}

type Turret struct {
	Key         string         `json:"key" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Health      int            `json:"health"`
	AttackRange int            `json:"attackRange"`
	Stats       datatypes.JSON `json:"stats" gorm:"type:jsonb"`
	Info        datatypes.JSON `json:"info" gorm:"type:jsonb"`
}
