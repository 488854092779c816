package domain

// Entity kinds stored in the fact store's name table.
const (
	KindChampion = "champion"
	KindItem     = "item"
	KindMonster  = "monster"
	KindTurret   = "turret"
)

// Entity maps a canonical key to its display name. The resolver and every
// display-name lookup go through this table.
type Entity struct {
	Key  string `json:"key" gorm:"primaryKey"` // e.g., "jarvan_iv"
	Name string `json:"name" gorm:"not null"`  // e.g., "Jarvan IV"
	Kind string `json:"kind" gorm:"not null;index"`
}

// Triple is a single directed labeled edge in the knowledge graph.
// Subject and Object are canonical keys (or vocabulary tags for tag predicates).
type Triple struct {
	ID        uint   `json:"-" gorm:"primaryKey"`
	Subject   string `json:"subject" gorm:"not null;index:idx_triples_sp"`
	Predicate string `json:"predicate" gorm:"not null;index:idx_triples_sp;index:idx_triples_po"`
	Object    string `json:"object" gorm:"not null;index:idx_triples_po"`
}

// TriplePattern is one constraint in a conjunctive subject query: every
// matching subject must carry (subject, Predicate, Object).
type TriplePattern struct {
	Predicate string
	Object    string
}

// Relationship predicates. Counter and synergy edges connect champion pairs;
// tag predicates connect a champion to a fixed-vocabulary tag; item predicates
// connect a champion to an item key.
const (
	PredCounters        = "counters"
	PredHardCounters    = "hardCounters"
	PredCounteredBy     = "counteredBy"
	PredHardCounteredBy = "hardCounteredBy"

	PredStrongSynergyWith = "strongSynergyWith"
	PredSynergyWith       = "synergyWith"
	PredWeakSynergyWith   = "weakSynergyWith"

	PredHasCrowdControl  = "hasCrowdControl"
	PredHasAbilityEffect = "hasAbilityEffect"
	PredHasPlaystyle     = "hasPlaystyle"
	PredHasPowerSpike    = "hasPowerSpike"
	PredHasWinCondition  = "hasWinCondition"
	PredPlaysRole        = "playsRole"
	PredTypicalLane      = "typicalLane"
	PredDealsDamageType  = "dealsDamageType"

	PredCoreItem        = "coreItem"
	PredRecommendedItem = "recommendedItem"
	PredSituationalItem = "situationalItem"
)

// Tag suffixes used by the vocabulary: a CC type "Stun" is stored as the
// object "StunCC", a playstyle "Burst" as "BurstPlaystyle", and so on.
const (
	SuffixCC           = "CC"
	SuffixEffect       = "Effect"
	SuffixPlaystyle    = "Playstyle"
	SuffixPowerSpike   = "PowerSpike"
	SuffixWinCondition = "WinCondition"
)

// Power curve phases.
var PowerCurves = []string{"EarlyGame", "MidGame", "LateGame"}

// Win condition vocabulary.
var WinConditions = []string{"Teamfight", "Splitpush", "Pick", "Siege", "Objective"}
