package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"voltshop_back_end/internal/config"
)

// Clients regroupe les handles de bases de données, construits une fois
// dans main puis injectés dans les stores.
type Clients struct {
	mongoClient *mongo.Client

	Mongo *mongo.Database
	Redis *redis.Client
}

// Connect établit la connexion MongoDB (obligatoire) et Redis
// (facultatif : sans Redis le cache catalogue est simplement désactivé).
func Connect(ctx context.Context, cfg config.Config) (*Clients, error) {
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI non configuré")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("connexion MongoDB impossible: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping MongoDB échoué: %w", err)
	}
	log.Println("✅ MongoDB connecté avec succès")

	clients := &Clients{
		mongoClient: client,
		Mongo:       client.Database(cfg.MongoDB),
	}

	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         cfg.RedisHost,
			Password:     cfg.RedisPassword,
			DB:           0,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			PoolSize:     10,
			MinIdleConns: 5,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Println("⚠️ Redis indisponible, cache catalogue désactivé:", err)
		} else {
			log.Println("✅ Redis connecté avec succès")
			clients.Redis = rdb
		}
	}

	return clients, nil
}

// Close libère les connexions ouvertes.
func (c *Clients) Close(ctx context.Context) {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Println("⚠️ Fermeture Redis:", err)
		}
	}
	if c.mongoClient != nil {
		if err := c.mongoClient.Disconnect(ctx); err != nil {
			log.Println("⚠️ Fermeture MongoDB:", err)
		}
	}
}
