package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/carepetz/petshop-scheduler/internal/cache"
	"github.com/carepetz/petshop-scheduler/internal/config"
	dbpkg "github.com/carepetz/petshop-scheduler/internal/db"
	"github.com/carepetz/petshop-scheduler/internal/middleware"
	"github.com/carepetz/petshop-scheduler/internal/routes"
	ucService "github.com/carepetz/petshop-scheduler/internal/usecase/service"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var svcCache ucService.Cache
	if redisCache, err := cache.NewRedis(context.Background(), cfg); err != nil {
		log.Printf("redis unavailable, running without cache: %v", err)
		svcCache = cache.Noop{}
	} else {
		svcCache = redisCache
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, svcCache)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
