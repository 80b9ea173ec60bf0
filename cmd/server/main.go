package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/ignite/adserver/internal/api"
	"github.com/ignite/adserver/internal/config"
	"github.com/ignite/adserver/internal/counter"
	"github.com/ignite/adserver/internal/creative"
	"github.com/ignite/adserver/internal/resolver"
)

func main() {
	configPath := "config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.LoadFromEnv(configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	counters, err := counter.NewRedisStoreFromURL(cfg.Redis.URL, cfg.Tracking.DailyRetentionDays)
	if err != nil {
		log.Fatalf("counter store: %v", err)
	}
	defer counters.Close()

	records := creative.NewPostgresStore(db)
	res, err := resolver.New(records, cfg.Server.BaseURL)
	if err != nil {
		log.Fatalf("resolver: %v", err)
	}

	recorder := api.NewRecorder(counters, cfg.Tracking.WriteTimeout())
	server := api.NewServer(res, records, counters, recorder)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.GetHost(), cfg.Server.Port),
		Handler:      server.Routes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("ad server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down ad server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	srv.Shutdown(ctx)
}
