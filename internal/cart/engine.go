package cart

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"voltshop_back_end/internal/catalog"
	"voltshop_back_end/internal/models"
)

var (
	// ErrProductNotFound : l'identifiant ne correspond à aucun des six catalogues.
	ErrProductNotFound = errors.New("produit introuvable dans les catalogues")
	// ErrCartEmpty : commande demandée sur un panier vide, rien n'est modifié.
	ErrCartEmpty = errors.New("panier vide")
)

// Accounts est la vue du magasin de comptes dont le moteur a besoin.
type Accounts interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	AddCartEntry(ctx context.Context, email string, entry models.CartEntry) error
	PullCartEntries(ctx context.Context, email string, itemIDs []string) error
	ClearCart(ctx context.Context, email string) error
}

// Catalog résout les identifiants produit contre les six collections.
type Catalog interface {
	Resolve(ctx context.Context, itemID string) (catalog.Category, *models.Product, error)
	Find(ctx context.Context, cat catalog.Category, itemID string) (*models.Product, error)
}

// Orders archive les commandes passées (best-effort).
type Orders interface {
	Record(ctx context.Context, order *models.Order) error
}

// Engine implémente le cycle de vie du panier : ajout dédupliqué,
// consultation avec total, retrait en masse et passage de commande.
type Engine struct {
	accounts Accounts
	catalog  Catalog
	orders   Orders
}

func NewEngine(accounts Accounts, cat Catalog, orders Orders) *Engine {
	return &Engine{accounts: accounts, catalog: cat, orders: orders}
}

// Add résout la catégorie de itemID (ordre de sonde fixe) puis ajoute
// l'entrée {item_id, category} au panier. Ajouter deux fois le même
// produit ne crée qu'une entrée.
func (e *Engine) Add(ctx context.Context, email, itemID string) error {
	cat, _, err := e.catalog.Resolve(ctx, itemID)
	if errors.Is(err, catalog.ErrNotFound) {
		return ErrProductNotFound
	}
	if err != nil {
		return err
	}

	return e.accounts.AddCartEntry(ctx, email, models.CartEntry{
		ItemID:   itemID,
		Category: string(cat),
	})
}

// View résout chaque entrée du panier contre sa catégorie déclarée (pas
// de nouvelle sonde) et cumule les prix coercés. Une entrée qui ne se
// résout pas — catégorie inconnue, id mal formé, produit disparu, erreur
// du store — est ignorée : elle ne contribue ni à la liste ni au total
// mais reste stockée telle quelle.
func (e *Engine) View(ctx context.Context, email string) ([]models.CartItem, int, error) {
	user, err := e.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, 0, err
	}

	items := []models.CartItem{}
	total := 0
	for _, entry := range user.Cart {
		product, err := e.catalog.Find(ctx, catalog.Category(entry.Category), entry.ItemID)
		if err != nil {
			continue
		}
		price := catalog.CoercePrice(product.Price)
		total += price
		items = append(items, models.CartItem{
			ItemID:   entry.ItemID,
			Category: entry.Category,
			Name:     product.Name,
			Price:    price,
		})
	}
	return items, total, nil
}

// Remove retire du panier toutes les entrées dont l'item_id figure dans
// itemIDs, quelle que soit leur catégorie. Un id absent du panier est un
// no-op.
func (e *Engine) Remove(ctx context.Context, email string, itemIDs []string) error {
	return e.accounts.PullCartEntries(ctx, email, itemIDs)
}

// PlaceOrder fige le contenu résolu du panier en lignes de commande puis
// vide le panier. Le panier est vidé même si aucune entrée ne s'est
// résolue : une commande à zéro ligne est un succès, pas une erreur.
// Un panier déjà vide retourne ErrCartEmpty sans rien modifier.
func (e *Engine) PlaceOrder(ctx context.Context, email string) (*models.Order, error) {
	user, err := e.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(user.Cart) == 0 {
		return nil, ErrCartEmpty
	}

	lines := []models.OrderLine{}
	total := 0
	for _, entry := range user.Cart {
		product, err := e.catalog.Find(ctx, catalog.Category(entry.Category), entry.ItemID)
		if err != nil {
			continue
		}
		price := catalog.CoercePrice(product.Price)
		name := product.Name
		if name == "" {
			name = "Unnamed Item"
		}
		total += price
		lines = append(lines, models.OrderLine{
			Name:     name,
			Price:    price,
			Category: entry.Category,
		})
	}

	order := &models.Order{
		Ref:       uuid.NewString(),
		Email:     email,
		Lines:     lines,
		Total:     total,
		CreatedAt: time.Now(),
	}

	if err := e.accounts.ClearCart(ctx, email); err != nil {
		return nil, err
	}

	if e.orders != nil {
		if err := e.orders.Record(ctx, order); err != nil {
			log.Println("⚠️ Enregistrement de la commande impossible:", err)
		}
	}

	return order, nil
}
