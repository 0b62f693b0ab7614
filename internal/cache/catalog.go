package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"voltshop_back_end/internal/catalog"
	"voltshop_back_end/internal/models"
)

const ProductCacheTTL = 10 * time.Minute

// Catalog est un cache en lecture des listes de produits par catégorie.
// Les catalogues sont en lecture seule côté boutique, pas d'invalidation.
type Catalog struct {
	redis *redis.Client
	store *catalog.Store
}

func NewCatalog(rdb *redis.Client, store *catalog.Store) *Catalog {
	return &Catalog{redis: rdb, store: store}
}

// List retourne les produits d'une catégorie, depuis Redis si possible,
// sinon depuis MongoDB avec remplissage du cache. Sans client Redis, le
// cache est transparent.
func (c *Catalog) List(ctx context.Context, cat catalog.Category) ([]models.Product, error) {
	if c.redis == nil {
		return c.store.List(ctx, cat)
	}

	key := "catalog:" + string(cat)

	// 1. Essayer le cache Redis
	if data, err := c.redis.Get(ctx, key).Result(); err == nil {
		var products []models.Product
		if json.Unmarshal([]byte(data), &products) == nil {
			return products, nil
		}
	}

	// 2. Récupérer de MongoDB
	products, err := c.store.List(ctx, cat)
	if err != nil {
		return nil, err
	}

	// 3. Mettre en cache
	jsonData, _ := json.Marshal(products)
	c.redis.Set(ctx, key, jsonData, ProductCacheTTL)

	return products, nil
}
