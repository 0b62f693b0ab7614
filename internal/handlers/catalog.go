package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"voltshop_back_end/internal/catalog"
	"voltshop_back_end/internal/middleware"
)

// ListCatalog construit le handler de listing d'une catégorie. Chaque
// route produit (/mobile, /headphone…) expose l'intégralité de sa
// collection, derrière le cache Redis quand il est disponible.
func (h *Handler) ListCatalog(cat catalog.Category) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(middleware.EmailKey)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		products, err := h.listings.List(ctx, cat)
		if err != nil {
			log.Println("❌ Erreur listing catalogue:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur listing catalogue"})
			return
		}

		uname := "User"
		if user, err := h.accounts.FindByEmail(ctx, email); err == nil && user.Uname != "" {
			uname = user.Uname
		}

		c.JSON(http.StatusOK, gin.H{
			"uname":    uname,
			"category": cat,
			"products": products,
		})
	}
}
