package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/monapdx/Escort-Template/handlers"
	"github.com/monapdx/Escort-Template/internal/auth"
	"github.com/monapdx/Escort-Template/internal/config"
	"github.com/monapdx/Escort-Template/internal/content"
	"github.com/monapdx/Escort-Template/internal/storage"
	"github.com/monapdx/Escort-Template/internal/upload"
	"github.com/monapdx/Escort-Template/pkg/logger"
	"github.com/monapdx/Escort-Template/pkg/metrics"
	"github.com/monapdx/Escort-Template/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple — production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, x-admin-key")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Global middlewares: logging + recovery
	r.Use(gin.Logger(), gin.Recovery())

	// Optional rate limiter (per-IP). Redis-backed when configured and reachable,
	// otherwise in-memory token bucket.
	if cfg.RateLimit.Enabled {
		var rdb *redis.Client
		if cfg.RateLimit.UseRedis && cfg.Redis.Host != "" {
			rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
			if err := rdb.Ping(context.Background()).Err(); err != nil {
				logger.Warnf("failed to connect to Redis (%s:%s), falling back to in-memory limiter: %v", cfg.Redis.Host, cfg.Redis.Port, err)
				rdb = nil
			}
		}
		if rdb != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// liveness probe
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "uptime": time.Since(startTime).String()})
	})

	// Binary storage for uploaded photos: MinIO when configured, local disk
	// (served verbatim under /uploads) otherwise.
	var backend storage.Backend
	if mcfg := storage.LoadMinIOConfig(); mcfg.Endpoint != "" {
		mb, err := storage.NewMinIOBackend(mcfg)
		if err != nil {
			logger.Fatalf("failed to initialize MinIO storage: %v", err)
		}
		backend = mb
		logger.Infof("uploads stored in MinIO bucket %q at %s", mcfg.Bucket, mcfg.Endpoint)
	} else {
		lb, err := storage.NewLocalBackend(cfg.Uploads.Dir, "/uploads")
		if err != nil {
			logger.Fatalf("failed to initialize uploads dir: %v", err)
		}
		backend = lb
		r.Static("/uploads", cfg.Uploads.Dir)
	}

	store, err := content.NewStore(cfg.Store.DataFile, backend)
	if err != nil {
		logger.Fatalf("failed to initialize content store: %v", err)
	}
	receiver := upload.NewReceiver(backend, cfg.Uploads.MaxBytes)
	admin := middleware.AdminKeyMiddleware(auth.NewGate(cfg.Admin.Key))

	handlers.NewContentHandler(store).Register(r, admin)
	handlers.NewPhotoHandler(store, receiver).Register(r, admin)

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Config summary: data_file=%s uploads_dir=%s rate_limit=%v admin_key_set=%v",
		cfg.Store.DataFile, cfg.Uploads.Dir, cfg.RateLimit.Enabled, cfg.Admin.Key != config.DefaultAdminKey)
	logger.Infof("Starting site backend on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
