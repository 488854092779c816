package postgres

import (
	"context"

	"github.com/gizemyilmaz/lol-knowledge-engine/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var keyConflict = clause.OnConflict{
	Columns:   []clause.Column{{Name: "key"}},
	UpdateAll: true,
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *itemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) UpsertMany(ctx context.Context, items []*domain.Item) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(keyConflict).CreateInBatches(items, 500).Error
}

func (r *itemRepository) GetByKey(ctx context.Context, key string) (*domain.Item, error) {
	var item domain.Item
	if err := r.db.WithContext(ctx).First(&item, "key = ?", key).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) GetAll(ctx context.Context) ([]*domain.Item, error) {
	var items []*domain.Item
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

type monsterRepository struct {
	db *gorm.DB
}

func NewMonsterRepository(db *gorm.DB) *monsterRepository {
	return &monsterRepository{db: db}
}

func (r *monsterRepository) UpsertMany(ctx context.Context, monsters []*domain.Monster) error {
	if len(monsters) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(keyConflict).CreateInBatches(monsters, 500).Error
}

func (r *monsterRepository) GetByKey(ctx context.Context, key string) (*domain.Monster, error) {
	var monster domain.Monster
	if err := r.db.WithContext(ctx).First(&monster, "key = ?", key).Error; err != nil {
		return nil, err
	}
	return &monster, nil
}

func (r *monsterRepository) GetAll(ctx context.Context) ([]*domain.Monster, error) {
	var monsters []*domain.Monster
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&monsters).Error; err != nil {
		return nil, err
	}
	return monsters, nil
}

type turretRepository struct {
	db *gorm.DB
}

func NewTurretRepository(db *gorm.DB) *turretRepository {
	return &turretRepository{db: db}
}

func (r *turretRepository) UpsertMany(ctx context.Context, turrets []*domain.Turret) error {
	if len(turrets) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(keyConflict).CreateInBatches(turrets, 500).Error
}

func (r *turretRepository) GetByKey(ctx context.Context, key string) (*domain.Turret, error) {
	var turret domain.Turret
	if err := r.db.WithContext(ctx).First(&turret, "key = ?", key).Error; err != nil {
		return nil, err
	}
	return &turret, nil
}

func (r *turretRepository) GetAll(ctx context.Context) ([]*domain.Turret, error) {
	var turrets []*domain.Turret
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&turrets).Error; err != nil {
		return nil, err
	}
	return turrets, nil
}
