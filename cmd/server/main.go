/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the Mortgage Analysis Engine server.
  Handles configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Load YAML configuration (embedded defaults if no file given)
  3. Connect the result cache (Redis if configured, in-memory otherwise)
  4. Create API handler with dependencies
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -config  Path to YAML config file (default: embedded defaults)
  -addr    HTTP listen address, overrides config (e.g. ":3000")
  -redis   Redis address for the result cache, overrides config
           Empty means in-memory caching.

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close the Redis connection if open
  4. Exit

EXAMPLES:
  # Run with embedded defaults
  ./server

  # Run with a config file and Redis cache
  ./server -config=./config.yaml -redis=localhost:6379

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - config/config.go: Configuration loading
*/
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warp/mortgage-engine/api"
	"github.com/warp/mortgage-engine/cache"
	"github.com/warp/mortgage-engine/config"
)

func main() {
	// Flags
	configPath := flag.String("config", "", "Path to YAML config file")
	addr := flag.String("addr", "", "HTTP listen address (overrides config)")
	redisAddr := flag.String("redis", "", "Redis address for result cache (overrides config)")
	flag.Parse()

	// Load configuration
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.Default()
	}
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *redisAddr != "" {
		cfg.Server.RedisAddr = *redisAddr
	}

	// Connect result cache
	var resultCache cache.Cache
	if cfg.Server.RedisAddr != "" {
		redisCache := cache.NewRedis(cfg.Server.RedisAddr, cfg.CacheTTL())
		if err := redisCache.Ping(context.Background()); err != nil {
			log.Printf("Warning: Redis unavailable at %s, using in-memory cache: %v", cfg.Server.RedisAddr, err)
			resultCache = cache.NewMemory(cfg.CacheTTL())
		} else {
			defer redisCache.Close()
			resultCache = redisCache
			log.Printf("Result cache: Redis at %s", cfg.Server.RedisAddr)
		}
	} else {
		resultCache = cache.NewMemory(cfg.CacheTTL())
	}

	// Initialize handler and router
	handler := api.NewHandler(cfg, resultCache)
	router := api.NewRouter(handler)

	// Create server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on http://localhost%s", cfg.Server.Addr)
		log.Printf("📊 API available at http://localhost%s/api", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
