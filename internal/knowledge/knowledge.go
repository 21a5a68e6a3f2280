// Package knowledge keeps the durable, cross-run learning ledger: which
// survival principles the player has seen, how often, and how past ordeals
// ended. The simulation core reads it to bias new scenarios toward the
// player's weakest ground.
package knowledge

import "time"

// Category is a principle grouping. String backed for storage interoperability.
type Category string

const (
	CategoryShelter    Category = "shelter"
	CategoryWater      Category = "water"
	CategoryFire       Category = "fire"
	CategorySignaling  Category = "signaling"
	CategoryNavigation Category = "navigation"
	CategoryFood       Category = "food"
	CategoryFirstAid   Category = "first_aid"
	CategoryPsychology Category = "psychology"
)

var AllCategories = []Category{
	CategoryShelter, CategoryWater, CategoryFire, CategorySignaling,
	CategoryNavigation, CategoryFood, CategoryFirstAid, CategoryPsychology,
}

func (c Category) Validate() bool {
	for _, x := range AllCategories {
		if x == c {
			return true
		}
	}
	return false
}

// PrincipleRecord accumulates views of a single principle text.
type PrincipleRecord struct {
	Text      string    `yaml:"text" json:"text"`
	Category  Category  `yaml:"category" json:"category"`
	ViewCount int       `yaml:"view_count" json:"view_count"`
	FirstSeen time.Time `yaml:"first_seen" json:"first_seen"`
	LastSeen  time.Time `yaml:"last_seen" json:"last_seen"`
}

// SessionRecord tracks one ordeal from start to its single terminal outcome.
type SessionRecord struct {
	ID          string    `yaml:"id" json:"id"`
	Environment string    `yaml:"environment" json:"environment"`
	StartedAt   time.Time `yaml:"started_at" json:"started_at"`
	EndedAt     time.Time `yaml:"ended_at,omitempty" json:"ended_at,omitempty"`
	Outcome     string    `yaml:"outcome,omitempty" json:"outcome,omitempty"`
	Ended       bool      `yaml:"ended" json:"ended"`
}

// State is the full ledger. It is loaded whole, mutated, and saved whole;
// there are no partial updates.
type State struct {
	Principles       map[string]PrincipleRecord `yaml:"principles" json:"principles"`
	CategoryViews    map[Category]int           `yaml:"category_views" json:"category_views"`
	Sessions         []SessionRecord            `yaml:"sessions" json:"sessions"`
	CurrentSessionID string                     `yaml:"current_session_id,omitempty" json:"current_session_id,omitempty"`
	TotalDiscovered  int                        `yaml:"total_discovered" json:"total_discovered"`
}

// EmptyState returns a valid zero ledger. Used whenever a backend cannot
// produce one, so gameplay never stalls on persistence trouble.
func EmptyState() State {
	return State{
		Principles:    make(map[string]PrincipleRecord),
		CategoryViews: make(map[Category]int),
	}
}

func (s *State) normalize() {
	if s.Principles == nil {
		s.Principles = make(map[string]PrincipleRecord)
	}
	if s.CategoryViews == nil {
		s.CategoryViews = make(map[Category]int)
	}
}

// Repository abstracts ledger storage. Implementations must return a valid
// empty state instead of an error when the backing data is missing or
// corrupt.
type Repository interface {
	Load() (State, error)
	Save(State) error
}
