package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Playtura-App/playtura/internal/auth"
	"github.com/Playtura-App/playtura/internal/db"
	"github.com/Playtura-App/playtura/internal/redis"
)

const loginCodeTTL = 10 * time.Minute

func main() {
	// load configuration
	env := LoadEnvironment()

	// initialize PostgreSQL
	conn, err := db.Connect(env.DatabaseURL)
	if err != nil {
		log.Fatalf("db init: %v", err)
	}

	// run pending migrations
	if err := db.RunMigrations(conn, env.MigrationsPath); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	store := db.NewStore(conn)

	// redis backs the one-time login codes
	rdb, err := redis.NewClient(context.Background(), env.RedisAddress, env.RedisUsername, env.RedisPassword)
	if err != nil {
		log.Fatalf("redis init: %v", err)
	}
	codes := auth.NewCodeStore(rdb, loginCodeTTL)

	storageSystem := InitStorage(env)

	// set up gin router
	r := gin.Default()
	RegisterRoutes(r, env, store, storageSystem, codes, auth.LogSender{})

	// start
	log.Printf("listening on %s", env.ServerAddress)
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
