package knowledge

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileRepository stores the ledger as a single YAML document. A missing or
// unreadable file loads as an empty ledger; saves go through a temp file and
// rename so a crash mid-write cannot corrupt the previous ledger.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// DefaultLedgerPath places the ledger under the user config directory,
// falling back to the working directory when none is available.
func DefaultLedgerPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "stranded-ledger.yaml"
	}
	return filepath.Join(dir, "stranded", "ledger.yaml")
}

func (f *FileRepository) Load() (State, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return EmptyState(), nil
	}
	var st State
	if err := yaml.Unmarshal(data, &st); err != nil {
		return EmptyState(), nil
	}
	st.normalize()
	return st, nil
}

func (f *FileRepository) Save(st State) error {
	data, err := yaml.Marshal(st)
	if err != nil {
		return err
	}
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".ledger-*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return err
	}
	return os.Rename(name, f.path)
}
