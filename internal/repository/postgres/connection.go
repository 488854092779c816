package postgres

import (
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/domain"
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.Entity{},
		&domain.Triple{},
		&domain.Champion{},
		&domain.Skill{},
		&domain.Item{},
		&domain.Monster{},
		&domain.Turret{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Facts:    NewFactStore(db),
		Entity:   NewEntityRepository(db),
		Champion: NewChampionRepository(db),
		Skill:    NewSkillRepository(db),
		Item:     NewItemRepository(db),
		Monster:  NewMonsterRepository(db),
		Turret:   NewTurretRepository(db),
	}
}
