package orders

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"voltshop_back_end/internal/models"
)

// Store archive les commandes passées dans la collection orders.
// L'enregistrement est best-effort : le moteur de panier journalise un
// échec mais ne le propage pas.
type Store struct {
	col *mongo.Collection
}

func NewStore(db *mongo.Database) *Store {
	return &Store{col: db.Collection("orders")}
}

func (s *Store) Record(ctx context.Context, order *models.Order) error {
	_, err := s.col.InsertOne(ctx, order)
	return err
}
