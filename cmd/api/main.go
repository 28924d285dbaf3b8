package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"otasuke/internal/adapters/anthropic"
	"otasuke/internal/adapters/echoshow"
	server "otasuke/internal/adapters/http_server"
	"otasuke/internal/adapters/observability"
	redisad "otasuke/internal/adapters/redis"
	"otasuke/internal/app"
	"otasuke/internal/shared"
	mysqlrepo "otasuke/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	model, err := anthropic.New(cfg.AnthropicBase, cfg.AnthropicKey, cfg.AnthropicModel, cfg.ModelRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize Anthropic client")
	}

	handlers := &server.Handlers{
		Advice:   app.NewAdviceService(model),
		Deals:    app.NewDealService(repo, cache, cfg.CacheTTL),
		Settings: app.NewSettingsService(cache),
		Notifier: echoshow.New(log.Logger),
	}

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(handlers)

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
