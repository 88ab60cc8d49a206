package main

import (
	"log"
	"os"

	"github.com/cjsystem/bgg-navigator/api/cache"
	"github.com/cjsystem/bgg-navigator/api/modules"
	"github.com/cjsystem/bgg-navigator/api/routes"
	"github.com/cjsystem/bgg-navigator/pkg/config"
	"github.com/cjsystem/bgg-navigator/pkg/database"
	"github.com/cjsystem/bgg-navigator/pkg/redis"

	"github.com/joho/godotenv"
)

func main() {
	// Load the environment variables if not running on Docker.
	if os.Getenv("ENVIRONMENT") != "docker" {
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Error loading .env file")
		}
	}

	config.LoadEnv()

	// Open the connection pool and keep it for the process lifetime.
	db, err := database.NewConnection()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.CloseConnection(db)

	sqlDb, err := db.DB()
	if err != nil {
		log.Fatalf("Error getting the sql connection: %v", err)
	}

	if err := database.RunMigrations(sqlDb); err != nil {
		log.Fatalf("Error running the migrations: %v", err)
	}

	redisClient := redis.NewClient()
	defer redisClient.Close()

	lookupMemCache := cache.NewMemCache()
	defer lookupMemCache.Close()

	// Create a module with all necessary handlers.
	module := modules.NewModule(&modules.ModuleDependencies{
		DB:             db,
		Redis:          redisClient,
		LookupMemCache: lookupMemCache,
	})

	// Create a new router with the routes setup.
	router := routes.NewRouter(module.Router)
	router.SetupRoutes(
		module.GameHandler,
		module.LookupHandler,
	)

	// Start the server.
	if err := router.Run(":" + config.Server.Port); err != nil {
		log.Fatalf("Error starting the server: %v", err)
	}
}
