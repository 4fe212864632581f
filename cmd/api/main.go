package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/veritalaw/consult-scheduler/internal/config"
	cronjobs "github.com/veritalaw/consult-scheduler/internal/cron"
	dbpkg "github.com/veritalaw/consult-scheduler/internal/db"
	domain "github.com/veritalaw/consult-scheduler/internal/domain/appointment"
	"github.com/veritalaw/consult-scheduler/internal/middleware"
	"github.com/veritalaw/consult-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	pol := domain.DefaultPolicy()
	pol.Timezone = cfg.Timezone
	pol.DayStart = cfg.DayStart
	pol.DayEnd = cfg.DayEnd
	pol.SlotMinutes = cfg.SlotMinutes
	pol.MinLeadDays = cfg.MinLeadDays
	pol.HoldMinutes = cfg.HoldMinutes

	cronjobs.Start(db, pol)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now()})
	})

	routes.RegisterRoutes(r, db, cfg, pol)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
