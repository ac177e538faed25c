package app

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/kailas-cloud/tutordex/internal/config"
	dbRedis "github.com/kailas-cloud/tutordex/internal/db/redis"
	"github.com/kailas-cloud/tutordex/internal/domain"
	logpkg "github.com/kailas-cloud/tutordex/internal/logger"
	tutorrepo "github.com/kailas-cloud/tutordex/internal/repository/tutor"
)

// deps is the loaded config plus logger shared by the commands.
type deps struct {
	env    string
	cfg    config.Config
	logger *zap.Logger
}

func loadDeps(v *viper.Viper) (*deps, error) {
	env := resolveEnv(v)
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := logpkg.NewLogger(env, v.GetString("log_level"))
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	domain.KeyPrefix = cfg.Storage.KeyPrefix
	return &deps{env: env, cfg: cfg, logger: logger}, nil
}

// openRepo connects to the configured store. The caller must invoke the returned close func.
func (rt *deps) openRepo(ctx context.Context) (*tutorrepo.Repo, func(), error) {
	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    rt.cfg.Database.Addrs,
		Username: rt.cfg.Database.Username,
		Password: rt.cfg.Database.Password,
		DB:       rt.cfg.Database.DB,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create store: %w", err)
	}
	timeout := time.Duration(rt.cfg.Database.ReadinessTimeout) * time.Second
	if err := store.WaitForReady(ctx, timeout); err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("database not ready: %w", err)
	}
	rt.logger.Debug("Connected to database", zap.Strings("addrs", rt.cfg.Database.Addrs))
	return tutorrepo.New(store), store.Close, nil
}

func (rt *deps) withLogger(ctx context.Context) context.Context {
	return logpkg.ContextWithLogger(ctx, rt.logger)
}
