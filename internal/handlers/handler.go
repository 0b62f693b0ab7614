package handlers

import (
	"context"

	"github.com/gorilla/sessions"

	"voltshop_back_end/internal/cart"
	"voltshop_back_end/internal/catalog"
	"voltshop_back_end/internal/config"
	"voltshop_back_end/internal/models"
)

// Accounts est l'accès comptes requis par les handlers d'authentification.
type Accounts interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, email, passwordHash, uname string) error
}

// Listings fournit les listes de produits par catégorie (avec ou sans
// cache devant).
type Listings interface {
	List(ctx context.Context, cat catalog.Category) ([]models.Product, error)
}

// Handler porte les dépendances injectées de toutes les routes : pas de
// handle global, tout vient de main.
type Handler struct {
	cfg      config.Config
	accounts Accounts
	engine   *cart.Engine
	listings Listings
	sessions sessions.Store
}

func New(cfg config.Config, accounts Accounts, engine *cart.Engine, listings Listings, store sessions.Store) *Handler {
	return &Handler{
		cfg:      cfg,
		accounts: accounts,
		engine:   engine,
		listings: listings,
		sessions: store,
	}
}
