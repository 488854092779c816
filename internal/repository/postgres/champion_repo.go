package postgres

import (
	"context"

	"github.com/gizemyilmaz/lol-knowledge-engine/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type championRepository struct {
	db *gorm.DB
}

func NewChampionRepository(db *gorm.DB) *championRepository {
	return &championRepository{db: db}
}

func (r *championRepository) Upsert(ctx context.Context, champion *domain.Champion) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(champion).Error
}

func (r *championRepository) GetByKey(ctx context.Context, key string) (*domain.Champion, error) {
	var champion domain.Champion
	err := r.db.WithContext(ctx).Preload("Skills").First(&champion, "key = ?", key).Error
	if err != nil {
		return nil, err
	}
	return &champion, nil
}

func (r *championRepository) GetAll(ctx context.Context) ([]*domain.Champion, error) {
	var champions []*domain.Champion
	err := r.db.WithContext(ctx).Order("name ASC").Find(&champions).Error
	if err != nil {
		return nil, err
	}
	return champions, nil
}

type skillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *skillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) UpsertMany(ctx context.Context, skills []*domain.Skill) error {
	if len(skills) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "champion_key"}, {Name: "slot"}},
		UpdateAll: true,
	}).CreateInBatches(skills, 500).Error
}

func (r *skillRepository) GetByChampion(ctx context.Context, championKey string) ([]*domain.Skill, error) {
	var skills []*domain.Skill
	err := r.db.WithContext(ctx).Where("champion_key = ?", championKey).Find(&skills).Error
	if err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *skillRepository) Get(ctx context.Context, championKey, slot string) (*domain.Skill, error) {
	var skill domain.Skill
	err := r.db.WithContext(ctx).First(&skill, "champion_key = ? AND slot = ?", championKey, slot).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}
