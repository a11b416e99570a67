package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/FernandoMiyazaki/api-secundaria-viacep/internal/core/config"
	"github.com/FernandoMiyazaki/api-secundaria-viacep/internal/core/database"
	"github.com/FernandoMiyazaki/api-secundaria-viacep/internal/core/logger"
	"github.com/FernandoMiyazaki/api-secundaria-viacep/internal/core/server"
	"github.com/FernandoMiyazaki/api-secundaria-viacep/internal/domain"
	"github.com/FernandoMiyazaki/api-secundaria-viacep/internal/repo"
	"github.com/FernandoMiyazaki/api-secundaria-viacep/internal/service"
	"github.com/FernandoMiyazaki/api-secundaria-viacep/internal/transport/http/handler"
	"github.com/FernandoMiyazaki/api-secundaria-viacep/internal/transport/http/router"
	"github.com/FernandoMiyazaki/api-secundaria-viacep/internal/viacep"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))

	var log *zap.Logger
	var cleanup func()
	if cfg.Log.File != "" {
		log, cleanup = logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, logger.FileRotate{
			Filename:   cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
			Compress:   cfg.Log.Compress,
		})
	} else {
		log, cleanup = logger.New(cfg.Log.Level, cfg.Log.JSON)
	}
	defer cleanup()

	db := mustOpenDB(cfg, log)
	log.Info("banco de dados conectado", zap.String("driver", cfg.DB.Driver))

	// Criação das tabelas em desenvolvimento; em produção o schema é
	// preparado no deploy.
	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.CepConsulta{}, &domain.Usuario{}); err != nil {
			log.Fatal("automigrate falhou", zap.Error(err))
		}
		log.Info("automigrate concluído")
	}

	viacepClient := viacep.NewHTTPClient(viacep.Options{
		BaseURL: cfg.ViaCEP.BaseURL,
		Timeout: time.Duration(cfg.ViaCEP.TimeoutSec) * time.Second,
	}, log)

	cepSvc := service.NewCepService(repo.NewCepRepo(db), viacepClient)
	usuarioSvc := service.NewUsuarioService(repo.NewUsuarioRepo(db), viacepClient)

	r := router.NewAPIEngine(log, db,
		handler.NewCepHandler(cepSvc, log),
		handler.NewUsuarioHandler(usuarioSvc, log),
	)

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	log.Info("api iniciando",
		zap.String("addr", addr),
		zap.String("viacep", cfg.ViaCEP.BaseURL),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api falhou ao iniciar", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("api encerrada")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
