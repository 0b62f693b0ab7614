package catalog

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"voltshop_back_end/internal/models"
)

// Category identifie l'une des six collections du catalogue.
// Le nom de la collection MongoDB est la valeur de la catégorie.
type Category string

const (
	Mobiles     Category = "mobiles"
	Headphones  Category = "headphones"
	Laptops     Category = "laptops"
	Televisions Category = "televisions"
	Keyboards   Category = "keyboards"
	Watches     Category = "watches"
)

// ProbeOrder est l'ordre contractuel dans lequel Resolve sonde les
// catalogues. Un identifiant valable dans plusieurs catalogues est
// toujours attribué au premier qui le contient.
var ProbeOrder = []Category{Mobiles, Headphones, Laptops, Televisions, Keyboards, Watches}

// ErrNotFound : identifiant mal formé, catégorie inconnue ou produit absent.
var ErrNotFound = errors.New("produit introuvable")

// Known indique si cat est l'une des six catégories du catalogue.
func Known(cat string) bool {
	for _, c := range ProbeOrder {
		if string(c) == cat {
			return true
		}
	}
	return false
}

type Store struct {
	db *mongo.Database
}

func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

func (s *Store) collection(cat Category) *mongo.Collection {
	return s.db.Collection(string(cat))
}

// Find cherche un produit par identifiant dans une seule catégorie.
// Retourne ErrNotFound pour un id mal formé, une catégorie inconnue ou
// un produit absent ; toute autre erreur vient du store et c'est à
// l'appelant de décider s'il l'ignore ou la propage.
func (s *Store) Find(ctx context.Context, cat Category, itemID string) (*models.Product, error) {
	if !Known(string(cat)) {
		return nil, ErrNotFound
	}
	oid, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return nil, ErrNotFound
	}

	var product models.Product
	err = s.collection(cat).FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Resolve détermine quelle catégorie contient itemID en sondant les
// catalogues dans l'ordre de ProbeOrder. Les erreurs du store valent
// "pas de correspondance" ici : on passe simplement au catalogue suivant.
func (s *Store) Resolve(ctx context.Context, itemID string) (Category, *models.Product, error) {
	for _, cat := range ProbeOrder {
		product, err := s.Find(ctx, cat, itemID)
		if err != nil {
			continue
		}
		return cat, product, nil
	}
	return "", nil, ErrNotFound
}

// List retourne tous les documents d'une catégorie.
func (s *Store) List(ctx context.Context, cat Category) ([]models.Product, error) {
	if !Known(string(cat)) {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := s.collection(cat).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
