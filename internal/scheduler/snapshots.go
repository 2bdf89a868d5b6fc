package scheduler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// snapshotWriter keeps one raw JSON file per (state, keyword) search cell,
// overwritten on every sweep.
type snapshotWriter struct {
	dir    string
	logger *zap.Logger
}

func newSnapshotWriter(dir string, logger *zap.Logger) *snapshotWriter {
	return &snapshotWriter{dir: dir, logger: logger}
}

func (w *snapshotWriter) write(state, keyword string, payload []byte) error {
	if len(payload) == 0 {
		return nil
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("creating snapshot dir: %w", err)
	}

	name := fmt.Sprintf("adzuna_%s_%s.json",
		strings.ReplaceAll(state, " ", "_"),
		strings.ReplaceAll(keyword, " ", "_"))
	path := filepath.Join(w.dir, name)

	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", name, err)
	}

	w.logger.Debug("wrote raw snapshot", zap.String("path", path))
	return nil
}
