// Package cache persiste snapshots JSON de los últimos listados buenos,
// para servir lecturas degradadas cuando la base de datos no responde.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/claricinhas/atelier-api/internal/application/ports"
)

var _ ports.SnapshotStore = (*FileSnapshotStore)(nil)

// FileSnapshotStore guarda cada colección como un archivo JSON en dir.
// La escritura es atómica (archivo temporal + rename).
type FileSnapshotStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileSnapshotStore crea el directorio si no existe.
func NewFileSnapshotStore(dir string) (*FileSnapshotStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}
	return &FileSnapshotStore{dir: dir}, nil
}

// Save serializa v y reemplaza el snapshot de la colección.
func (s *FileSnapshotStore) Save(collection string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal snapshot %s: %w", collection, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	tmp := s.path(collection) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", collection, err)
	}
	if err := os.Rename(tmp, s.path(collection)); err != nil {
		return fmt.Errorf("rename snapshot %s: %w", collection, err)
	}
	return nil
}

// Load deserializa el último snapshot en out. ErrNoSnapshot si no existe.
func (s *FileSnapshotStore) Load(collection string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return ports.ErrNoSnapshot
		}
		return fmt.Errorf("read snapshot %s: %w", collection, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unmarshal snapshot %s: %w", collection, err)
	}
	return nil
}

func (s *FileSnapshotStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}
