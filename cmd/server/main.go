package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"voltshop_back_end/internal/accounts"
	"voltshop_back_end/internal/cache"
	"voltshop_back_end/internal/cart"
	"voltshop_back_end/internal/catalog"
	"voltshop_back_end/internal/config"
	"voltshop_back_end/internal/database"
	"voltshop_back_end/internal/handlers"
	"voltshop_back_end/internal/orders"
	"voltshop_back_end/internal/routes"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clients, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Échec connexion bases de données: %v", err)
	}
	defer clients.Close(context.Background())

	sessionStore := newSessionStore(cfg)

	catalogStore := catalog.NewStore(clients.Mongo)
	accountStore := accounts.NewStore(clients.Mongo)
	orderStore := orders.NewStore(clients.Mongo)
	engine := cart.NewEngine(accountStore, catalogStore, orderStore)
	listings := cache.NewCatalog(clients.Redis, catalogStore)

	h := handlers.New(cfg, accountStore, engine, listings, sessionStore)

	r := gin.Default()
	r.Use(cors.Default())
	routes.RegisterRoutes(r, h, sessionStore)

	log.Println("🚀 Serveur VoltShop lancé sur le port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Arrêt du serveur: %v", err)
	}
}

func newSessionStore(cfg config.Config) *sessions.CookieStore {
	if cfg.SessionSecret == "" {
		log.Fatal("❌ SESSION_SECRET manquant dans .env")
	}

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.MaxAge(86400 * 30)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}
	return store
}
