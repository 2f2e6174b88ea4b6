package store

import (
	"go.uber.org/zap"

	"github.com/Mario2280/Dating-App-Front-sub000/config"
)

// Open selects the storage backend once per process: the cloud-synced Redis
// backend when configured and reachable, otherwise the local SQLite file.
func Open(cfg *config.StorageConfig, log *zap.Logger) (Store, error) {
	if cfg.RedisAddr != "" {
		s, err := NewRedisStore(cfg)
		if err == nil {
			log.Info("using cloud storage backend", zap.String("addr", cfg.RedisAddr))
			return s, nil
		}
		log.Warn("cloud storage unavailable, falling back to local", zap.Error(err))
	}
	s, err := NewLocalStore(cfg.LocalPath)
	if err != nil {
		return nil, err
	}
	log.Info("using local storage backend", zap.String("path", cfg.LocalPath))
	return s, nil
}
