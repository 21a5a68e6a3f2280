package knowledge

import (
	"sort"
	"time"
)

// Tracker mediates every ledger mutation through a full load-mutate-save
// cycle against its repository. The core assumes a single writer per player;
// serialization against concurrent hosts is the repository's concern.
type Tracker struct {
	repo Repository
	now  func() time.Time
}

func NewTracker(repo Repository) *Tracker {
	if repo == nil {
		repo = NewMemoryRepository()
	}
	return &Tracker{repo: repo, now: time.Now}
}

func (t *Tracker) load() State {
	st, err := t.repo.Load()
	if err != nil {
		return EmptyState()
	}
	st.normalize()
	return st
}

func (t *Tracker) save(st State) {
	// Persistence failures must never interrupt gameplay.
	_ = t.repo.Save(st)
}

// StartSession opens a new session record and marks it current. An already
// active session is ended first with an unknown outcome so the ledger never
// holds two open sessions.
func (t *Tracker) StartSession(id, environment string) {
	if id == "" {
		return
	}
	st := t.load()
	if st.CurrentSessionID != "" {
		t.endLocked(&st, "abandoned")
	}
	st.Sessions = append(st.Sessions, SessionRecord{
		ID:          id,
		Environment: environment,
		StartedAt:   t.now(),
	})
	st.CurrentSessionID = id
	t.save(st)
}

// EndSession closes the active session with the given outcome. Calling it
// with no active session is a no-op, so a double end never duplicates or
// rewrites the record.
func (t *Tracker) EndSession(outcome string) {
	st := t.load()
	if st.CurrentSessionID == "" {
		return
	}
	t.endLocked(&st, outcome)
	t.save(st)
}

func (t *Tracker) endLocked(st *State, outcome string) {
	for i := range st.Sessions {
		if st.Sessions[i].ID == st.CurrentSessionID && !st.Sessions[i].Ended {
			st.Sessions[i].Ended = true
			st.Sessions[i].Outcome = outcome
			st.Sessions[i].EndedAt = t.now()
			break
		}
	}
	st.CurrentSessionID = ""
}

// RecordPrincipleView bumps the per-principle and per-category counters.
// The first view of a principle counts toward the discovery total.
func (t *Tracker) RecordPrincipleView(principle string, cat Category) {
	if principle == "" {
		return
	}
	st := t.load()
	rec, seen := st.Principles[principle]
	if !seen {
		rec = PrincipleRecord{Text: principle, Category: cat, FirstSeen: t.now()}
		st.TotalDiscovered++
	}
	rec.ViewCount++
	rec.LastSeen = t.now()
	st.Principles[principle] = rec
	st.CategoryViews[cat]++
	t.save(st)
}

// Strengths reports the top-3 and bottom-3 categories by accumulated views.
// Categories never seen count as zero, so a fresh ledger reports everything
// as weak.
func (t *Tracker) Strengths() (strong, weak []Category) {
	st := t.load()
	return rankCategories(st)
}

func rankCategories(st State) (strong, weak []Category) {
	cats := append([]Category{}, AllCategories...)
	sort.SliceStable(cats, func(i, j int) bool {
		return st.CategoryViews[cats[i]] > st.CategoryViews[cats[j]]
	})
	n := 3
	if n > len(cats) {
		n = len(cats)
	}
	strong = append(strong, cats[:n]...)
	for i := len(cats) - n; i < len(cats); i++ {
		weak = append(weak, cats[i])
	}
	return strong, weak
}

// Stats aggregates ledger totals.
type Stats struct {
	TotalSessions     int
	CompletedSessions int
	SurvivalRate      float64
	TotalPrinciples   int
	TotalViews        int
}

// TotalStats computes aggregate numbers over the whole ledger. Survival rate
// counts only completed sessions.
func (t *Tracker) TotalStats() Stats {
	st := t.load()
	out := Stats{TotalSessions: len(st.Sessions), TotalPrinciples: st.TotalDiscovered}
	survived := 0
	for _, s := range st.Sessions {
		if !s.Ended {
			continue
		}
		out.CompletedSessions++
		if s.Outcome == "survived" || s.Outcome == "barely_survived" {
			survived++
		}
	}
	if out.CompletedSessions > 0 {
		out.SurvivalRate = float64(survived) / float64(out.CompletedSessions)
	}
	for _, rec := range st.Principles {
		out.TotalViews += rec.ViewCount
	}
	return out
}

// RecommendedCategories returns the player's weakest categories, ordered
// weakest first. The scenario generator weights environments toward these.
func (t *Tracker) RecommendedCategories() []Category {
	_, weak := t.Strengths()
	// rankCategories returns the tail in descending order; flip to weakest first.
	out := make([]Category, 0, len(weak))
	for i := len(weak) - 1; i >= 0; i-- {
		out = append(out, weak[i])
	}
	return out
}
