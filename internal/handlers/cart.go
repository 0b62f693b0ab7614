package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"voltshop_back_end/internal/cart"
	"voltshop_back_end/internal/middleware"
	"voltshop_back_end/internal/utils"
)

//
// 🟢 GET /add_to_cart/:item_id
//
func (h *Handler) AddToCart(c *gin.Context) {
	email := c.GetString(middleware.EmailKey)
	itemID := c.Param("item_id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := h.engine.Add(ctx, email, itemID)
	if errors.Is(err, cart.ErrProductNotFound) {
		c.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		log.Println("❌ Erreur ajout au panier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur ajout au panier"})
		return
	}

	c.Redirect(http.StatusFound, "/cart")
}

//
// 🛒 GET /cart
//
func (h *Handler) GetCart(c *gin.Context) {
	email := c.GetString(middleware.EmailKey)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	items, total, err := h.engine.View(ctx, email)
	if err != nil {
		log.Println("❌ Erreur lecture panier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cart_items": items,
		"total":      total,
	})
}

//
// ❌ POST /remove_from_cart
//
func (h *Handler) RemoveFromCart(c *gin.Context) {
	email := c.GetString(middleware.EmailKey)
	removeIDs := c.PostFormArray("remove_ids")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := h.engine.Remove(ctx, email, removeIDs); err != nil {
		log.Println("❌ Erreur retrait du panier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur retrait du panier"})
		return
	}

	c.Redirect(http.StatusFound, "/cart")
}

//
// 📦 GET /place_order
//
func (h *Handler) PlaceOrder(c *gin.Context) {
	email := c.GetString(middleware.EmailKey)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	order, err := h.engine.PlaceOrder(ctx, email)
	if errors.Is(err, cart.ErrCartEmpty) {
		c.JSON(http.StatusOK, gin.H{
			"message":       "Your cart is empty.",
			"ordered_items": []gin.H{},
		})
		return
	}
	if err != nil {
		log.Println("❌ Erreur passage de commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur passage de commande"})
		return
	}

	// confirmation best-effort
	if err := utils.SendOrderConfirmation(h.cfg, email, order); err != nil {
		log.Println("⚠️ Envoi de la confirmation impossible:", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Order placed successfully!",
		"ref":           order.Ref,
		"ordered_items": order.Lines,
		"total":         order.Total,
	})
}
