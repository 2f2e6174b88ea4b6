package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Mario2280/Dating-App-Front-sub000/config"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/repository"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/router"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/service"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/store"
	"github.com/Mario2280/Dating-App-Front-sub000/pkg/cloudinary"
	"github.com/Mario2280/Dating-App-Front-sub000/pkg/wallet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := newLogger(cfg.Logging.Level)
	defer log.Sync()

	st, err := store.Open(&cfg.Storage, log)
	if err != nil {
		log.Fatal("store init failed", zap.Error(err))
	}
	defer st.Close()

	cloud, err := cloudinary.New(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
	if err != nil {
		log.Fatal("cloudinary init failed", zap.Error(err))
	}

	profileRepo := repository.NewProfileRepository(st)
	refresher := service.NewLocationRefresher(
		profileRepo,
		service.NewStoredLocationResolver(profileRepo),
		cfg.Location.RefreshInterval,
		log,
	)
	refreshCtx, stopRefresh := context.WithCancel(context.Background())
	defer stopRefresh()
	go refresher.Run(refreshCtx)

	engine := router.Setup(cfg, st, cloud, wallet.StubProvider{}, log)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")
	stopRefresh()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")
}

func newLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if lvl, err := zap.ParseAtomicLevel(level); err == nil && level != "" {
		cfg.Level = lvl
	}
	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return log
}
