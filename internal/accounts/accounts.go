package accounts

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"voltshop_back_end/internal/models"
)

var (
	// ErrDuplicate : un compte local existe déjà pour cet email.
	ErrDuplicate = errors.New("compte déjà existant")
	// ErrNoAccount : aucun compte pour cet email.
	ErrNoAccount = errors.New("compte introuvable")
)

// Store encapsule la collection users. Les mutations de panier sont des
// opérations atomiques sur le seul champ cart ($addToSet, $pull, $set),
// jamais un read-modify-write du document complet.
type Store struct {
	col *mongo.Collection
}

func NewStore(db *mongo.Database) *Store {
	return &Store{col: db.Collection("users")}
}

func (s *Store) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNoAccount
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create insère un nouveau compte avec un panier vide. Un email déjà
// enregistré retourne ErrDuplicate, le document existant n'est jamais
// écrasé.
func (s *Store) Create(ctx context.Context, email, passwordHash, uname string) error {
	err := s.col.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return ErrDuplicate
	}
	if err != mongo.ErrNoDocuments {
		return err
	}

	_, err = s.col.InsertOne(ctx, models.User{
		Email:    email,
		Password: passwordHash,
		Uname:    uname,
		Cart:     []models.CartEntry{},
	})
	return err
}

// AddCartEntry ajoute une entrée au panier avec une sémantique d'ensemble :
// $addToSet ne crée pas de doublon pour une paire (item_id, category) déjà
// présente.
func (s *Store) AddCartEntry(ctx context.Context, email string, entry models.CartEntry) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$addToSet": bson.M{"cart": entry}},
	)
	return err
}

// PullCartEntries retire toutes les entrées dont l'item_id figure dans
// itemIDs. La catégorie n'entre pas dans la correspondance : un même id
// présent sous deux catégories est retiré des deux (comportement
// historique conservé, voir DESIGN.md). La mise à jour est émise même si
// rien ne correspond.
func (s *Store) PullCartEntries(ctx context.Context, email string, itemIDs []string) error {
	if itemIDs == nil {
		itemIDs = []string{}
	}
	_, err := s.col.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$pull": bson.M{"cart": bson.M{"item_id": bson.M{"$in": itemIDs}}}},
	)
	return err
}

// ClearCart remet le panier à une séquence vide.
func (s *Store) ClearCart(ctx context.Context, email string) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"cart": []models.CartEntry{}}},
	)
	return err
}
