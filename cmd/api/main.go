package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/BruksfildServices01/gente-api/internal/audit"
	"github.com/BruksfildServices01/gente-api/internal/cache"
	"github.com/BruksfildServices01/gente-api/internal/config"
	dbpkg "github.com/BruksfildServices01/gente-api/internal/db"
	"github.com/BruksfildServices01/gente-api/internal/routes"
	"github.com/BruksfildServices01/gente-api/internal/storage"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	infra := routes.Infra{
		Audit: audit.NewDispatcher(audit.New(db)),
		Cache: cache.Noop{},
	}

	if cfg.RedisURL != "" {
		rc, err := cache.NewRedis(cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			log.Printf("redis disabled: %v", err)
		} else {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			if err := rc.Ping(ctx); err != nil {
				log.Printf("redis unreachable, continuing without cache: %v", err)
			} else {
				infra.Cache = rc
				infra.CacheEnabled = true
			}
			cancel()
		}
	}

	if cfg.S3.Enabled() {
		infra.Store = storage.NewS3(cfg.S3)
	} else {
		log.Println("S3_BUCKET not set, logo upload disabled")
	}

	r := gin.Default()

	routes.RegisterRoutes(r, db, cfg, infra)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
