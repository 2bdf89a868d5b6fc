package monitoring

import (
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// CleanupRawSnapshots deletes raw snapshot JSON files older than the
// retention window. A missing directory is a no-op, and a file that cannot
// be removed is logged and skipped.
func CleanupRawSnapshots(dir string, retentionDays int, logger *zap.Logger) (deleted, kept int, err error) {
	if _, statErr := os.Stat(dir); os.IsNotExist(statErr) {
		logger.Info("raw snapshot dir does not exist, skipping cleanup", zap.String("dir", dir))
		return 0, 0, nil
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return 0, 0, err
	}

	for _, path := range matches {
		info, statErr := os.Stat(path)
		if statErr != nil {
			logger.Warn("failed to stat snapshot", zap.String("path", path), zap.Error(statErr))
			continue
		}
		if info.ModTime().Before(cutoff) {
			if rmErr := os.Remove(path); rmErr != nil {
				logger.Warn("failed to remove snapshot", zap.String("path", path), zap.Error(rmErr))
				continue
			}
			deleted++
		} else {
			kept++
		}
	}

	logger.Info("raw snapshot cleanup complete",
		zap.Int("deleted", deleted),
		zap.Int("kept", kept))
	return deleted, kept, nil
}
