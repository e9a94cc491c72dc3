package main

import (
	"context"

	"github.com/Padala-Srishanth/placements/internal/auth"
	"github.com/Padala-Srishanth/placements/internal/cache"
	"github.com/Padala-Srishanth/placements/internal/config"
	"github.com/Padala-Srishanth/placements/internal/database"
	"github.com/Padala-Srishanth/placements/internal/handler"
	"github.com/Padala-Srishanth/placements/internal/logger"
	"github.com/Padala-Srishanth/placements/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

type application struct {
	DB      *pgxpool.Pool
	Logger  *zap.Logger
	Config  *config.Config
	Handler *handler.Handler
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	pool, err := database.Connect(ctx, cfg.DB.DSN, cfg.DB.MaxConns, cfg.DB.ConnLifetime)
	if err != nil {
		sugar.Fatal(err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		sugar.Fatal(err)
	}

	var optionsCache *cache.Cache
	if cfg.Redis.Addr != "" {
		client := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := cache.Ping(ctx, client); err != nil {
			sugar.Warnw("redis unreachable, filter-options cache disabled", "err", err)
		} else {
			optionsCache = cache.New(client, cfg.Redis.OptionsTTL)
		}
	}

	repo := repository.NewRepository(pool)

	h := &handler.Handler{
		Logger:          log,
		Placements:      repo.Placements,
		HigherEducation: repo.HigherEducation,
		Cache:           optionsCache,
		TokenMaker:      auth.NewJWTMaker(cfg.JWT.Secret),
		AdminEmail:      cfg.Admin.Email,
		TokenTTL:        cfg.JWT.TokenTTL,
		Dev:             cfg.IsDevelopment(),
		StorePing:       pool.Ping,
	}

	app := &application{
		DB:      pool,
		Logger:  log,
		Config:  cfg,
		Handler: h,
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
