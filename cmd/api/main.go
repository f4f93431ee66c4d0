package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/stuvify/jobs-api/internal/analytics"
	"github.com/stuvify/jobs-api/internal/config"
	"github.com/stuvify/jobs-api/internal/handlers"
	"github.com/stuvify/jobs-api/internal/metrics"
	"github.com/stuvify/jobs-api/internal/services"
	"github.com/stuvify/jobs-api/internal/store"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	// 2. Document Store Connection
	// A missing or unreachable database never aborts startup; GET /test
	// reports the degraded state instead.
	var st *store.Store
	if cfg.DatabaseURL == "" {
		st = store.New(nil)
		log.Println("⚠️  DATABASE_URL not set; document store disabled")
	} else {
		var err error
		st, err = store.Open(cfg.DatabaseURL, cfg.DatabaseName)
		if err != nil {
			log.Printf("⚠️  Document store connection failed: %v", err)
			st = store.New(nil)
		} else {
			log.Printf("✅ Document store connected (%s)", cfg.MaskedDatabaseURL())
		}
	}

	// 3. Application Analytics (optional)
	var recorder analytics.Recorder = analytics.NewNoopRecorder()
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		recorder = analytics.NewRedisRecorder(redisClient)
		log.Printf("✅ Application analytics enabled (redis=%s)", cfg.RedisAddr)
	} else {
		log.Println("REDIS_ADDR not set; application analytics disabled")
	}

	// 4. Initialize Core Services (Dependencies)
	jobService := services.NewJobService(st)
	applicationService := services.NewApplicationService(st, recorder)

	// 5. Initialize Handlers
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	diagnosticsHandler := handlers.NewDiagnosticsHandler(st)

	// 6. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 7. Metrics (optional)
	if cfg.MetricsEnabled {
		sink := metrics.NewPrometheusSink(prometheus.DefaultRegisterer)
		r.Use(metrics.Middleware(sink))
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
		log.Println("✅ Prometheus metrics enabled at /metrics")
	} else {
		log.Println("METRICS_ENABLED not set; metrics disabled")
	}

	// 8. Define Routes
	handlers.RegisterRoutes(r, jobHandler, applicationHandler, diagnosticsHandler)

	// 9. Serve until a shutdown signal arrives
	srv := &http.Server{Addr: cfg.Addr(), Handler: r}
	go func() {
		log.Printf("🚀 Server starting on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start:", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	received := <-sig
	log.Printf("Received signal %v, shutting down...", received)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	if err := st.Close(); err != nil {
		log.Printf("Store close error: %v", err)
	}
	log.Println("Server stopped")
}
