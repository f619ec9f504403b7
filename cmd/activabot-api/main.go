// README: Entry point; loads config, wires adapters and the engine, starts the HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"activabot/internal/bot"
	"activabot/internal/config"
	httptransport "activabot/internal/http"
	"activabot/internal/infra"
	"activabot/internal/modules/books"
	"activabot/internal/modules/breweries"
	"activabot/internal/modules/events"
	"activabot/internal/modules/movieinfo"
	"activabot/internal/modules/movies"
	"activabot/internal/modules/places"
	"activabot/internal/modules/recipes"
	"activabot/internal/modules/smalltalk"
	"activabot/internal/modules/trivia"
	"activabot/internal/personality"
)

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pack, err := personality.Load(cfg.Personality.Path)
	if err != nil {
		log.Fatal(err)
	}

	placesSvc, err := places.NewService(cfg.Keys.GoogleMaps, cfg.Search, log)
	if err != nil {
		log.Fatalf("places init: %v", err)
	}

	api := func(name string) *infra.APIClient {
		return infra.NewAPIClient(name, cfg.AdapterTimeout, log)
	}

	deps := bot.Deps{
		Places:    placesSvc,
		Events:    events.NewService(cfg.Keys.Ticketmaster, api("ticketmaster")),
		Movies:    movies.NewService(cfg.Keys.TMDb, api("tmdb")),
		MovieInfo: movieinfo.NewService(cfg.Keys.OMDb, api("omdb")),
		Books:     books.NewService(api("books")),
		Recipes:   recipes.NewService(api("themealdb")),
		Breweries: breweries.NewService(api("openbrewerydb")),
		Trivia:    trivia.NewService(api("trivia")),
	}

	if cfg.Keys.Gemini != "" {
		var store *smalltalk.Store
		if cfg.DB.DSN != "" {
			dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
			if err != nil {
				log.Fatal(err)
			}
			defer dbPool.Close()
			store = smalltalk.NewStore(dbPool)
		}
		deps.SmallTalk = smalltalk.NewService(cfg.Keys.Gemini, pack.BotName, store)
	}

	botSvc := bot.NewService(pack, deps, nil, cfg.AdapterTimeout, log)

	routerDeps := httptransport.RouterDeps{
		Bot:           botSvc,
		RatePerMinute: cfg.Redis.RatePerMinute,
		Log:           log,
	}
	if cfg.Redis.Addr != "" {
		routerDeps.Redis = infra.NewRedis(cfg.Redis.Addr)
	}

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: httptransport.NewRouter(routerDeps)}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.WithField("addr", cfg.HTTP.Addr).Info("listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
