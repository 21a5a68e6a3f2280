package knowledge

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileRepositoryMissingFile(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "nope", "ledger.yaml"))
	st, err := repo.Load()
	if err != nil {
		t.Fatalf("missing file must load as empty, got error %v", err)
	}
	if len(st.Sessions) != 0 || st.CurrentSessionID != "" {
		t.Fatalf("missing file should produce an empty state: %+v", st)
	}
}

func TestFileRepositoryCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.yaml")
	if err := os.WriteFile(path, []byte("{{{ not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	st, err := NewFileRepository(path).Load()
	if err != nil {
		t.Fatalf("corrupt file must degrade to empty, got error %v", err)
	}
	if st.Principles == nil || st.CategoryViews == nil {
		t.Fatal("degraded state not normalized")
	}
}

func TestFileRepositoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "ledger.yaml")
	repo := NewFileRepository(path)

	tr := NewTracker(repo)
	tr.StartSession("s1", "swamp")
	tr.RecordPrincipleView("treat small injuries early", CategoryFirstAid)
	tr.EndSession("survived")

	st, err := NewFileRepository(path).Load()
	if err != nil {
		t.Fatal(err)
	}
	if st.TotalDiscovered != 1 {
		t.Fatalf("discovery total lost in persistence: %d", st.TotalDiscovered)
	}
	if len(st.Sessions) != 1 || st.Sessions[0].Outcome != "survived" {
		t.Fatalf("session record lost: %+v", st.Sessions)
	}
	if st.CategoryViews[CategoryFirstAid] != 1 {
		t.Fatalf("category views lost: %+v", st.CategoryViews)
	}
}

func TestMemoryRepositoryIsolation(t *testing.T) {
	repo := NewMemoryRepository()
	st := EmptyState()
	st.TotalDiscovered = 3
	if err := repo.Save(st); err != nil {
		t.Fatal(err)
	}
	st.TotalDiscovered = 99 // mutate after save

	got, _ := repo.Load()
	if got.TotalDiscovered != 3 {
		t.Fatalf("repository shares state with the caller: %d", got.TotalDiscovered)
	}
	got.Principles["x"] = PrincipleRecord{}
	again, _ := repo.Load()
	if len(again.Principles) != 0 {
		t.Fatal("loaded state shares maps with previous load")
	}
}
