package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/runoshun/focusboard/internal/domain"
	"github.com/runoshun/focusboard/internal/infra/crypto"
	"github.com/runoshun/focusboard/internal/infra/filestore"
	"github.com/runoshun/focusboard/internal/infra/gitstore"
	"github.com/runoshun/focusboard/internal/infra/redisstore"
	"github.com/runoshun/focusboard/internal/infra/sqlitestore"
)

// SQLiteFileName is the default database file of the sqlite backend.
const SQLiteFileName = "focusboard.db"

// openKVStore opens the snapshot store selected by the [storage] section.
// Relative paths are resolved against workDir; empty paths default to dataDir.
// The returned closer is nil for backends holding no connection.
func openKVStore(ctx context.Context, s domain.StorageConfig, cfg Config, log domain.Logger) (domain.KVStore, io.Closer, error) {
	var kv domain.KVStore
	var closer io.Closer

	switch s.Backend {
	case "", domain.BackendFile:
		kv = filestore.New(resolvePath(s.Path, filepath.Join(cfg.DataDir, "board"), cfg.WorkDir))

	case domain.BackendGit:
		store, err := gitstore.New(resolvePath(s.Path, cfg.WorkDir, cfg.WorkDir), s.Namespace)
		if err != nil {
			return nil, nil, err
		}
		kv = store

	case domain.BackendRedis:
		store, err := redisstore.New(ctx, s.RedisAddr, s.RedisDB, s.Namespace)
		if err != nil {
			return nil, nil, err
		}
		kv, closer = store, store

	case domain.BackendSQLite:
		store, err := sqlitestore.Open(resolvePath(s.Path, filepath.Join(cfg.DataDir, SQLiteFileName), cfg.WorkDir), log)
		if err != nil {
			return nil, nil, err
		}
		kv, closer = store, store

	default:
		return nil, nil, fmt.Errorf("%w: %q", domain.ErrUnknownBackend, s.Backend)
	}

	if s.EncryptionKey != "" {
		encrypted, err := crypto.NewStore(kv, s.EncryptionKey)
		if err != nil {
			if closer != nil {
				_ = closer.Close()
			}
			return nil, nil, err
		}
		kv = encrypted
	}

	return kv, closer, nil
}

func resolvePath(path, fallback, workDir string) string {
	if path == "" {
		return fallback
	}
	if filepath.IsAbs(path) || workDir == "" {
		return path
	}
	return filepath.Join(workDir, path)
}
