package main

import (
	"WellnessHub/config"
	"WellnessHub/jobs"
	"WellnessHub/migrations"
	"WellnessHub/routes"
	"log"
	"sync"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	"github.com/KanapuramVaishnavi/Core/config/jwt"
	coreRedis "github.com/KanapuramVaishnavi/Core/config/redis"
	server "github.com/KanapuramVaishnavi/Core/server"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	startServer = server.Start
	isTest      = false
)

func main() {
	run()
}

func run() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error in loading the ENV")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}
	if cfg.JWTSecret != "" {
		jwt.JwtKey = []byte(cfg.JWTSecret)
	}

	// built after Core has connected mongo and redis
	var (
		once sync.Once
		deps *routes.Dependencies
	)
	dependencies := func() *routes.Dependencies {
		once.Do(func() {
			deps = routes.BuildDependencies(cfg, db.DB, coreRedis.Rdb)
		})
		return deps
	}

	defaultopts := server.GetDefaultOptions()

	options := server.Options{
		CacheEnabled:     defaultopts.CacheEnabled,
		MongoEnabled:     defaultopts.MongoEnabled,
		WebServerEnabled: defaultopts.WebServerEnabled,
		WebServerPort:    defaultopts.WebServerPort,

		JobsEnabled: !isTest,
		JobsHandler: func() {
			if isTest {
				return
			}
			if _, err := jobs.StartDailyScheduler(cfg.StaleBookingSchedule, dependencies().Bookings); err != nil {
				log.Println("Stale booking sweep not scheduled: ", err)
			}
		},

		WebServerPreHandler: func(r *gin.Engine) {
			if isTest {
				return
			}
			r.Use(cors.New(cors.Config{
				AllowOrigins:     cfg.AllowedOrigins(),
				AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
				AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
				ExposeHeaders:    []string{"X-Request-ID"},
				AllowCredentials: true,
			}))
			routes.Routes(r, dependencies())
		},

		MigrationEnabled: cfg.MigrationsEnabled && !isTest,
		MigrationHandler: func() {
			if isTest {
				return
			}
			migrations.Run(db.DB)
		},
	}
	startServer(options)
}
