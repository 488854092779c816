package postgres

import (
	"context"

	"github.com/gizemyilmaz/lol-knowledge-engine/internal/domain"
	"gorm.io/gorm"
)

type factStore struct {
	db *gorm.DB
}

func NewFactStore(db *gorm.DB) *factStore {
	return &factStore{db: db}
}

// SubjectsMatching evaluates the conjunction pattern by pattern, intersecting
// subject sets, then orders the survivors by display name.
func (s *factStore) SubjectsMatching(ctx context.Context, patterns []domain.TriplePattern) ([]string, error) {
	if len(patterns) == 0 {
		return []string{}, nil
	}

	var candidates map[string]bool
	for _, p := range patterns {
		var subjects []string
		err := s.db.WithContext(ctx).Model(&domain.Triple{}).
			Where("predicate = ? AND object = ?", p.Predicate, p.Object).
			Distinct("subject").
			Pluck("subject", &subjects).Error
		if err != nil {
			return nil, err
		}

		if candidates == nil {
			candidates = make(map[string]bool, len(subjects))
			for _, subj := range subjects {
				candidates[subj] = true
			}
		} else {
			matched := make(map[string]bool, len(subjects))
			for _, subj := range subjects {
				if candidates[subj] {
					matched[subj] = true
				}
			}
			candidates = matched
		}

		if len(candidates) == 0 {
			return []string{}, nil
		}
	}

	keys := make([]string, 0, len(candidates))
	for k := range candidates {
		keys = append(keys, k)
	}

	// Order by display name for deterministic results.
	var ordered []string
	err := s.db.WithContext(ctx).Model(&domain.Entity{}).
		Where("key IN ?", keys).
		Order("name ASC").
		Pluck("key", &ordered).Error
	if err != nil {
		return nil, err
	}

	// Subjects without an entity row (tag-only subjects) keep their key order.
	if len(ordered) < len(keys) {
		seen := make(map[string]bool, len(ordered))
		for _, k := range ordered {
			seen[k] = true
		}
		for _, k := range keys {
			if !seen[k] {
				ordered = append(ordered, k)
			}
		}
	}

	return ordered, nil
}

func (s *factStore) Ask(ctx context.Context, subject, predicate, object string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&domain.Triple{}).
		Where("subject = ? AND predicate = ? AND object = ?", subject, predicate, object).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *factStore) Objects(ctx context.Context, subject, predicate string) ([]string, error) {
	var objects []string
	err := s.db.WithContext(ctx).Model(&domain.Triple{}).
		Where("subject = ? AND predicate = ?", subject, predicate).
		Order("id ASC").
		Pluck("object", &objects).Error
	if err != nil {
		return nil, err
	}
	return objects, nil
}

func (s *factStore) Subjects(ctx context.Context, predicate, object string) ([]string, error) {
	var subjects []string
	err := s.db.WithContext(ctx).Model(&domain.Triple{}).
		Where("predicate = ? AND object = ?", predicate, object).
		Order("id ASC").
		Pluck("subject", &subjects).Error
	if err != nil {
		return nil, err
	}
	return subjects, nil
}

func (s *factStore) InsertMany(ctx context.Context, triples []*domain.Triple) error {
	if len(triples) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).CreateInBatches(triples, 500).Error
}
