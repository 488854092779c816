package postgres

import (
	"context"

	"github.com/gizemyilmaz/lol-knowledge-engine/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type entityRepository struct {
	db *gorm.DB
}

func NewEntityRepository(db *gorm.DB) *entityRepository {
	return &entityRepository{db: db}
}

func (r *entityRepository) UpsertMany(ctx context.Context, entities []*domain.Entity) error {
	if len(entities) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).CreateInBatches(entities, 500).Error
}

func (r *entityRepository) GetByKey(ctx context.Context, key string) (*domain.Entity, error) {
	var entity domain.Entity
	err := r.db.WithContext(ctx).First(&entity, "key = ?", key).Error
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *entityRepository) ListKeys(ctx context.Context, kind string) ([]string, error) {
	var keys []string
	q := r.db.WithContext(ctx).Model(&domain.Entity{}).Order("key ASC")
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	if err := q.Pluck("key", &keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}

func (r *entityRepository) GetAll(ctx context.Context, kind string) ([]*domain.Entity, error) {
	var entities []*domain.Entity
	q := r.db.WithContext(ctx).Order("name ASC")
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	if err := q.Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}
