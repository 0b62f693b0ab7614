package models

// CartEntry est la référence brute stockée dans le document utilisateur.
// item_id est l'ObjectID du produit sous forme hexadécimale ; la paire
// (item_id, category) est unique dans un panier ($addToSet).
type CartEntry struct {
	ItemID   string `bson:"item_id" json:"item_id"`
	Category string `bson:"category" json:"category"`
}

// CartItem est une entrée résolue contre son catalogue, prête à l'affichage.
type CartItem struct {
	ItemID   string `json:"item_id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
}
