// scriptgen pregenerates read-aloud scripts for today's active deals and sends
// them to each user's display. Deals are processed with bounded concurrency so
// the model endpoint is not hammered.
package main

import (
	"context"
	"database/sql"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"otasuke/internal/adapters/anthropic"
	"otasuke/internal/adapters/echoshow"
	"otasuke/internal/adapters/observability"
	"otasuke/internal/app"
	"otasuke/internal/domain"
	"otasuke/internal/shared"
	mysqlrepo "otasuke/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("model", cfg.AnthropicModel).
		Int("workers", cfg.Workers).
		Msg("scriptgen starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)

	model, err := anthropic.New(cfg.AnthropicBase, cfg.AnthropicKey, cfg.AnthropicModel, cfg.ModelRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize Anthropic client")
	}
	advice := app.NewAdviceService(model)
	notifier := echoshow.New(log.Logger)

	today := time.Now().UTC().Format("2006-01-02")
	var deals []domain.Deal
	for _, user := range []domain.UserID{domain.UserMother, domain.UserGibo} {
		ds, err := repo.TodayDeals(ctx, user, today)
		if err != nil {
			log.Fatal().Err(err).Str("user", string(user)).Msg("load today's deals failed")
		}
		deals = append(deals, ds...)
	}
	log.Info().Int("deals", len(deals)).Msg("deals loaded")

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for _, deal := range deals {
		deal := deal

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(d domain.Deal) {
			defer wg.Done()
			defer sem.Release(1)

			script, err := advice.GenerateScript(ctx, d)
			if err != nil {
				log.Warn().Int64("id", d.ID).Err(err).Msg("script generation failed")
				return
			}
			if err := notifier.Send(ctx, d.UserID, "今日の特売情報", script); err != nil {
				log.Warn().Int64("id", d.ID).Err(err).Msg("display send failed")
				return
			}
			log.Info().Int64("id", d.ID).Str("product", d.ProductName).Msg("script sent")
		}(deal)
	}

	wg.Wait()
	log.Info().Msg("scriptgen completed")
}
