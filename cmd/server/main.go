package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/openwrench/mechanic-review/internal/config"
	"github.com/openwrench/mechanic-review/internal/database"
	"github.com/openwrench/mechanic-review/internal/handler"
	"github.com/openwrench/mechanic-review/internal/repository"
	"github.com/openwrench/mechanic-review/internal/router"
	"github.com/openwrench/mechanic-review/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env always wins

	cfg := config.Load()
	setupLogger(cfg.Env)

	db, err := database.Open(database.Config{
		User:            cfg.DBUser,
		Password:        cfg.DBPass,
		Host:            cfg.DBHost,
		Port:            cfg.DBPort,
		Name:            cfg.DBName,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.Migrate(ctx, db); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("schema migration failed")
	}
	cancel()

	users := repository.NewUserRepo(db)
	mechanics := repository.NewMechanicRepo(db)
	reviews := repository.NewReviewRepo(db)
	auth := service.NewAuthService(users, cfg)

	logCatalog(mechanics)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn().Msg("redis unavailable; rate limiting disabled")
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, rdb,
		handler.NewAuthHandler(auth),
		handler.NewMechanicHandler(mechanics),
		handler.NewReviewHandler(reviews))

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// setupLogger configures the global zerolog logger: human-readable
// console output in dev, JSON elsewhere.
func setupLogger(env string) {
	zerolog.TimeFieldFormat = time.RFC3339
	if strings.EqualFold(env, "dev") || strings.EqualFold(env, "development") {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

// logCatalog logs the mechanics currently in the database, with their
// rating data, once at startup.
func logCatalog(mechanics *repository.MechanicRepo) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	all, err := mechanics.Search(ctx, "", "", "", "")
	if err != nil {
		log.Error().Err(err).Msg("startup mechanic listing failed")
		return
	}
	if len(all) == 0 {
		log.Info().Msg("no mechanics in the database")
		return
	}
	log.Info().Int("count", len(all)).Msg("mechanics in the database")
	for _, m := range all {
		log.Info().
			Str("name", m.Name).
			Str("city", m.City).
			Str("state", m.State).
			Float64("avg_rating", m.AverageRating).
			Int("reviews", m.TotalReviews).
			Msg("mechanic")
	}
}
