package service

import (
	"context"
	"sort"
	"strings"

	"github.com/gizemyilmaz/lol-knowledge-engine/internal/domain"
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/repository"
)

// championAliases maps common shorthand and punctuation variants to canonical
// keys. Applied before the generic normalization rules.
var championAliases = map[string]string{
	"mundo":          "dr_mundo",
	"dr mundo":       "dr_mundo",
	"doctor mundo":   "dr_mundo",
	"lee sin":        "lee_sin",
	"lee":            "lee_sin",
	"jarvan":         "jarvan_iv",
	"jarvan iv":      "jarvan_iv",
	"j4":             "jarvan_iv",
	"tf":             "twisted_fate",
	"twisted fate":   "twisted_fate",
	"mf":             "miss_fortune",
	"miss fortune":   "miss_fortune",
	"asol":           "aurelion_sol",
	"aurelion":       "aurelion_sol",
	"aurelion sol":   "aurelion_sol",
	"cho":            "chogath",
	"cho'gath":       "chogath",
	"kog'maw":        "kogmaw",
	"kog":            "kogmaw",
	"kha'zix":        "khazix",
	"kha":            "khazix",
	"bel'veth":       "belveth",
	"bel veth":       "belveth",
	"kai'sa":         "kaisa",
	"k'sante":        "ksante",
	"rek'sai":        "reksai",
	"vel'koz":        "velkoz",
	"xin zhao":       "xin_zhao",
	"xin":            "xin_zhao",
	"master yi":      "master_yi",
	"yi":             "master_yi",
	"tahm kench":     "tahm_kench",
	"tahm":           "tahm_kench",
	"renata glasc":   "renata_glasc",
	"renata":         "renata_glasc",
	"nunu":           "nunu_willump",
	"nunu & willump": "nunu_willump",
	"wukong":         "wukong",
	"monkey king":    "wukong",
}

// NormalizeName lowercases and strips the punctuation that canonical keys
// drop: spaces become underscores, apostrophes and periods are removed,
// hyphens become underscores.
func NormalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "'", "")
	name = strings.ReplaceAll(name, ".", "")
	name = strings.ReplaceAll(name, "-", "_")
	return name
}

// NormalizeChampionName applies the alias table first, then the generic rules.
func NormalizeChampionName(name string) string {
	lowered := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := championAliases[lowered]; ok {
		return canonical
	}
	return NormalizeName(name)
}

// NameResolver maps free-form names to canonical keys. It snapshots the
// entity table at construction; the store is immutable after loading, so the
// snapshot never goes stale.
type NameResolver struct {
	byKind map[string]map[string]string // kind -> key -> display name
	keys   map[string][]string          // kind -> sorted keys
}

func NewNameResolver(ctx context.Context, entityRepo repository.EntityRepository) (*NameResolver, error) {
	r := &NameResolver{
		byKind: make(map[string]map[string]string),
		keys:   make(map[string][]string),
	}

	for _, kind := range []string{domain.KindChampion, domain.KindItem, domain.KindMonster, domain.KindTurret} {
		entities, err := entityRepo.GetAll(ctx, kind)
		if err != nil {
			return nil, err
		}
		names := make(map[string]string, len(entities))
		keys := make([]string, 0, len(entities))
		for _, e := range entities {
			names[e.Key] = e.Name
			keys = append(keys, e.Key)
		}
		sort.Strings(keys)
		r.byKind[kind] = names
		r.keys[kind] = keys
	}

	return r, nil
}

// Resolve finds the canonical key and display name for a free-form name.
// Exact key match wins; otherwise the first substring match in key order.
func (r *NameResolver) Resolve(kind, name string) (key, display string, ok bool) {
	if name == "" {
		return "", "", false
	}

	var normalized string
	if kind == domain.KindChampion {
		normalized = NormalizeChampionName(name)
	} else {
		normalized = NormalizeName(name)
	}

	names := r.byKind[kind]
	if display, ok := names[normalized]; ok {
		return normalized, display, true
	}

	lowered := strings.ToLower(name)
	for _, key := range r.keys[kind] {
		if strings.Contains(key, normalized) || strings.Contains(normalized, key) {
			return key, names[key], true
		}
		if strings.ToLower(names[key]) == lowered {
			return key, names[key], true
		}
	}

	return "", "", false
}

// ResolveChampion is shorthand for champion lookups.
func (r *NameResolver) ResolveChampion(name string) (key, display string, ok bool) {
	return r.Resolve(domain.KindChampion, name)
}

// DisplayName returns the display name for a key, falling back to replacing
// underscores with spaces when the key has no entity row.
func (r *NameResolver) DisplayName(kind, key string) string {
	if name, ok := r.byKind[kind][key]; ok {
		return name
	}
	return strings.ReplaceAll(key, "_", " ")
}

// Keys returns the sorted canonical keys of a kind.
func (r *NameResolver) Keys(kind string) []string {
	return r.keys[kind]
}

// SampleNames returns up to n display names of a kind, for not-found hints.
func (r *NameResolver) SampleNames(kind string, n int) []string {
	keys := r.keys[kind]
	if len(keys) > n {
		keys = keys[:n]
	}
	samples := make([]string, 0, len(keys))
	for _, key := range keys {
		samples = append(samples, r.byKind[kind][key])
	}
	return samples
}
