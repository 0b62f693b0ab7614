package catalog

import (
	"strconv"
	"strings"
)

// CoercePrice convertit le champ price d'un document produit en entier.
// Le champ n'est pas typé de façon uniforme d'une collection à l'autre :
// entier, flottant, chaîne ("599")… Une valeur absente, non numérique ou
// une chaîne non entière vaut 0, jamais une erreur.
func CoercePrice(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float32:
		return int(n)
	case float64:
		return int(n)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}
