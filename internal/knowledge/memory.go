package knowledge

import "sync"

// MemoryRepository holds the ledger in process memory. It is the default
// backend when no storage is configured and the fake used by tests. The
// mutex serializes read-modify-write cycles from concurrent hosts.
type MemoryRepository struct {
	mu sync.Mutex
	st State
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{st: EmptyState()}
}

func (m *MemoryRepository) Load() (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneState(m.st), nil
}

func (m *MemoryRepository) Save(st State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.st = cloneState(st)
	return nil
}

func cloneState(st State) State {
	out := State{
		CurrentSessionID: st.CurrentSessionID,
		TotalDiscovered:  st.TotalDiscovered,
		Principles:       make(map[string]PrincipleRecord, len(st.Principles)),
		CategoryViews:    make(map[Category]int, len(st.CategoryViews)),
	}
	for k, v := range st.Principles {
		out.Principles[k] = v
	}
	for k, v := range st.CategoryViews {
		out.CategoryViews[k] = v
	}
	out.Sessions = append(out.Sessions, st.Sessions...)
	return out
}
