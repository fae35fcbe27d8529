// README: Entry point; loads config, wires the planner pipeline, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wander/internal/ai"
	"wander/internal/cache"
	"wander/internal/config"
	httptransport "wander/internal/http"
	"wander/internal/maps"
	"wander/internal/planner"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.Model)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer provider.Close()

	var routes *maps.RouteService
	if cfg.Maps.APIKey != "" {
		routes, err = maps.NewRouteService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
	} else {
		log.Println("MAPS_API_KEY not set, using naive leg duration estimates")
	}

	ttl := time.Duration(cfg.Cache.TTLHours) * time.Hour
	var respCache cache.ResponseCache
	if cfg.Cache.RedisAddr != "" {
		respCache = cache.NewRedisCache(cfg.Cache.RedisAddr, ttl)
	} else {
		log.Println("WANDER_REDIS_ADDR not set, using in-memory response cache")
		respCache = cache.NewMemoryCache(ttl)
	}

	plannerSvc := planner.New(provider, respCache, routes)

	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: httptransport.NewRouter(plannerSvc, cfg.Debug),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("wander-api listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
