package repository

import (
	"context"

	"github.com/gizemyilmaz/lol-knowledge-engine/internal/domain"
)

// FactStore is the triple-pattern query surface over the knowledge graph.
// The graph is written once by the loader and read-only afterwards.
type FactStore interface {
	// SubjectsMatching returns the subjects satisfying every pattern in the
	// conjunction, ordered by display name. An empty pattern list matches
	// nothing.
	SubjectsMatching(ctx context.Context, patterns []domain.TriplePattern) ([]string, error)
	// Ask reports whether the exact triple exists.
	Ask(ctx context.Context, subject, predicate, object string) (bool, error)
	// Objects returns all objects of (subject, predicate, ?).
	Objects(ctx context.Context, subject, predicate string) ([]string, error)
	// Subjects returns all subjects of (?, predicate, object).
	Subjects(ctx context.Context, predicate, object string) ([]string, error)
	// InsertMany adds triples in bulk; used only by the loader and fixtures.
	InsertMany(ctx context.Context, triples []*domain.Triple) error
}

type EntityRepository interface {
	UpsertMany(ctx context.Context, entities []*domain.Entity) error
	GetByKey(ctx context.Context, key string) (*domain.Entity, error)
	ListKeys(ctx context.Context, kind string) ([]string, error)
	GetAll(ctx context.Context, kind string) ([]*domain.Entity, error)
}

type ChampionRepository interface {
	Upsert(ctx context.Context, champion *domain.Champion) error
	GetByKey(ctx context.Context, key string) (*domain.Champion, error)
	GetAll(ctx context.Context) ([]*domain.Champion, error)
}

type SkillRepository interface {
	UpsertMany(ctx context.Context, skills []*domain.Skill) error
	GetByChampion(ctx context.Context, championKey string) ([]*domain.Skill, error)
	Get(ctx context.Context, championKey, slot string) (*domain.Skill, error)
}

type ItemRepository interface {
	UpsertMany(ctx context.Context, items []*domain.Item) error
	GetByKey(ctx context.Context, key string) (*domain.Item, error)
	GetAll(ctx context.Context) ([]*domain.Item, error)
}

type MonsterRepository interface {
	UpsertMany(ctx context.Context, monsters []*domain.Monster) error
	GetByKey(ctx context.Context, key string) (*domain.Monster, error)
	GetAll(ctx context.Context) ([]*domain.Monster, error)
}

type TurretRepository interface {
	UpsertMany(ctx context.Context, turrets []*domain.Turret) error
	GetByKey(ctx context.Context, key string) (*domain.Turret, error)
	GetAll(ctx context.Context) ([]*domain.Turret, error)
}

type Repositories struct {
	Facts    FactStore
	Entity   EntityRepository
	Champion ChampionRepository
	Skill    SkillRepository
	Item     ItemRepository
	Monster  MonsterRepository
	Turret   TurretRepository
}
