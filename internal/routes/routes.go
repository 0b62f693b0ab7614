package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"voltshop_back_end/internal/catalog"
	"voltshop_back_end/internal/handlers"
	"voltshop_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, store sessions.Store) {
	// Public
	r.GET("/", h.Home)
	r.GET("/login", h.LoginForm)
	r.POST("/login", h.Login)
	r.GET("/signup", h.SignupForm)
	r.POST("/signup", h.Signup)

	// Routes protégées par session
	auth := r.Group("/", middleware.RequireSession(store))
	auth.GET("/dashboard", h.Dashboard)
	auth.GET("/logout", h.Logout)

	auth.GET("/add_to_cart/:item_id", h.AddToCart)
	auth.GET("/cart", h.GetCart)
	auth.POST("/remove_from_cart", h.RemoveFromCart)
	auth.GET("/place_order", h.PlaceOrder)

	auth.GET("/mobile", h.ListCatalog(catalog.Mobiles))
	auth.GET("/headphone", h.ListCatalog(catalog.Headphones))
	auth.GET("/laptop", h.ListCatalog(catalog.Laptops))
	auth.GET("/television", h.ListCatalog(catalog.Televisions))
	auth.GET("/keyboard", h.ListCatalog(catalog.Keyboards))
	auth.GET("/watch", h.ListCatalog(catalog.Watches))
}
