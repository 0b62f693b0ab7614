package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"voltshop_back_end/internal/accounts"
	"voltshop_back_end/internal/middleware"
	"voltshop_back_end/internal/utils"
)

// ================== AUTH LOCALE ==================

// Home : accueil. Une session active redirige vers le tableau de bord.
func (h *Handler) Home(c *gin.Context) {
	session, err := h.sessions.Get(c.Request, middleware.SessionName)
	if err == nil {
		if email, ok := session.Values[middleware.EmailKey].(string); ok && email != "" {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to VoltShop"})
}

func (h *Handler) LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Please log in"})
}

func (h *Handler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := h.accounts.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, accounts.ErrNoAccount) {
			log.Println("❌ Erreur lookup compte:", err)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password."})
		return
	}

	ok, err := utils.VerifyPassword(password, user.Password)
	if err != nil || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password."})
		return
	}

	session, _ := h.sessions.Get(c.Request, middleware.SessionName)
	session.Values[middleware.EmailKey] = email
	if err := session.Save(c.Request, c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création session"})
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *Handler) SignupForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Please sign up"})
}

func (h *Handler) Signup(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")
	uname := c.PostForm("uname")

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = h.accounts.Create(ctx, email, hashedPassword, uname)
	if errors.Is(err, accounts.ErrDuplicate) {
		c.JSON(http.StatusConflict, gin.H{"message": "User already exists!"})
		return
	}
	if err != nil {
		log.Println("❌ Erreur création compte:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur"})
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

// Dashboard salue l'utilisateur connecté par son nom d'affichage.
func (h *Handler) Dashboard(c *gin.Context) {
	email := c.GetString(middleware.EmailKey)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	uname := "User"
	if user, err := h.accounts.FindByEmail(ctx, email); err == nil && user.Uname != "" {
		uname = user.Uname
	}

	c.JSON(http.StatusOK, gin.H{"uname": uname})
}

func (h *Handler) Logout(c *gin.Context) {
	session, _ := h.sessions.Get(c.Request, middleware.SessionName)
	session.Options.MaxAge = -1
	delete(session.Values, middleware.EmailKey)
	if err := session.Save(c.Request, c.Writer); err != nil {
		log.Println("⚠️ Destruction de session:", err)
	}
	c.Redirect(http.StatusFound, "/login")
}
