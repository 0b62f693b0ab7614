package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"voltshop_back_end/internal/accounts"
	"voltshop_back_end/internal/cart"
	"voltshop_back_end/internal/catalog"
	"voltshop_back_end/internal/config"
	"voltshop_back_end/internal/handlers"
	"voltshop_back_end/internal/models"
	"voltshop_back_end/internal/routes"
	"voltshop_back_end/internal/utils"
)

// --- doubles en mémoire ---

type fakeAccounts struct {
	users map[string]*models.User
}

func (f *fakeAccounts) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, accounts.ErrNoAccount
	}
	return u, nil
}

func (f *fakeAccounts) Create(_ context.Context, email, passwordHash, uname string) error {
	if _, ok := f.users[email]; ok {
		return accounts.ErrDuplicate
	}
	f.users[email] = &models.User{
		Email:    email,
		Password: passwordHash,
		Uname:    uname,
		Cart:     []models.CartEntry{},
	}
	return nil
}

func (f *fakeAccounts) AddCartEntry(_ context.Context, email string, entry models.CartEntry) error {
	u, ok := f.users[email]
	if !ok {
		return accounts.ErrNoAccount
	}
	for _, e := range u.Cart {
		if e == entry {
			return nil
		}
	}
	u.Cart = append(u.Cart, entry)
	return nil
}

func (f *fakeAccounts) PullCartEntries(_ context.Context, email string, itemIDs []string) error {
	u, ok := f.users[email]
	if !ok {
		return accounts.ErrNoAccount
	}
	remove := map[string]bool{}
	for _, id := range itemIDs {
		remove[id] = true
	}
	kept := []models.CartEntry{}
	for _, e := range u.Cart {
		if !remove[e.ItemID] {
			kept = append(kept, e)
		}
	}
	u.Cart = kept
	return nil
}

func (f *fakeAccounts) ClearCart(_ context.Context, email string) error {
	u, ok := f.users[email]
	if !ok {
		return accounts.ErrNoAccount
	}
	u.Cart = []models.CartEntry{}
	return nil
}

type fakeCatalog struct {
	products map[catalog.Category]map[string]*models.Product
}

func (f *fakeCatalog) Find(_ context.Context, cat catalog.Category, itemID string) (*models.Product, error) {
	if !catalog.Known(string(cat)) {
		return nil, catalog.ErrNotFound
	}
	p, ok := f.products[cat][itemID]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return p, nil
}

func (f *fakeCatalog) Resolve(ctx context.Context, itemID string) (catalog.Category, *models.Product, error) {
	for _, cat := range catalog.ProbeOrder {
		p, err := f.Find(ctx, cat, itemID)
		if err != nil {
			continue
		}
		return cat, p, nil
	}
	return "", nil, catalog.ErrNotFound
}

type fakeListings struct {
	products map[catalog.Category][]models.Product
}

func (f *fakeListings) List(_ context.Context, cat catalog.Category) ([]models.Product, error) {
	if !catalog.Known(string(cat)) {
		return nil, errors.New("catégorie inconnue")
	}
	return f.products[cat], nil
}

// --- montage du routeur ---

type testApp struct {
	router *gin.Engine
	accts  *fakeAccounts
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	accts := &fakeAccounts{users: map[string]*models.User{}}
	cat := &fakeCatalog{products: map[catalog.Category]map[string]*models.Product{
		catalog.Mobiles:    {"a1": {Name: "Pixel 9", Price: "599"}},
		catalog.Headphones: {"x9": {Name: "WH-1000", Price: 349}},
	}}
	listings := &fakeListings{products: map[catalog.Category][]models.Product{
		catalog.Mobiles: {{Name: "Pixel 9", Price: "599"}},
	}}

	engine := cart.NewEngine(accts, cat, nil)
	store := sessions.NewCookieStore([]byte("secret-de-test"))
	h := handlers.New(config.Config{}, accts, engine, listings, store)

	router := gin.New()
	routes.RegisterRoutes(router, h, store)

	return &testApp{router: router, accts: accts}
}

func (a *testApp) signup(t *testing.T, email, password, uname string) {
	t.Helper()
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := a.accts.Create(context.Background(), email, hash, uname); err != nil {
		t.Fatalf("création compte: %v", err)
	}
}

func (a *testApp) login(t *testing.T, email, password string) string {
	t.Helper()
	form := url.Values{"email": {email}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("login: code = %d, attendu 302", w.Code)
	}
	cookie := w.Header().Get("Set-Cookie")
	if cookie == "" {
		t.Fatal("login: aucun cookie de session émis")
	}
	return cookie
}

func (a *testApp) do(method, path, cookie string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// --- tests ---

func TestGatedRoutesRedirectToLogin(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/dashboard", "/cart", "/place_order", "/mobile", "/add_to_cart/a1"} {
		w := app.do(http.MethodGet, path, "", nil)
		if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
			t.Errorf("%s: code = %d, Location = %q ; attendu 302 vers /login",
				path, w.Code, w.Header().Get("Location"))
		}
	}
}

func TestSignupThenLogin(t *testing.T) {
	app := newTestApp(t)

	form := url.Values{"email": {"bob@example.com"}, "password": {"s3cret"}, "uname": {"Bob"}}
	w := app.do(http.MethodPost, "/signup", "", form)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
		t.Fatalf("signup: code = %d, Location = %q", w.Code, w.Header().Get("Location"))
	}

	// Mauvais mot de passe : pas de session.
	badForm := url.Values{"email": {"bob@example.com"}, "password": {"faux"}}
	w = app.do(http.MethodPost, "/login", "", badForm)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("login invalide: code = %d, attendu 401", w.Code)
	}

	cookie := app.login(t, "bob@example.com", "s3cret")

	w = app.do(http.MethodGet, "/dashboard", cookie, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard: code = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Bob") {
		t.Fatalf("dashboard doit saluer l'utilisateur: %s", w.Body.String())
	}
}

func TestSignupDuplicateNeverOverwrites(t *testing.T) {
	app := newTestApp(t)
	app.signup(t, "bob@example.com", "s3cret", "Bob")
	original := app.accts.users["bob@example.com"]

	form := url.Values{"email": {"bob@example.com"}, "password": {"autre"}, "uname": {"Imposteur"}}
	w := app.do(http.MethodPost, "/signup", "", form)

	if w.Code != http.StatusConflict {
		t.Fatalf("signup doublon: code = %d, attendu 409", w.Code)
	}
	if !strings.Contains(w.Body.String(), "User already exists!") {
		t.Fatalf("message inattendu: %s", w.Body.String())
	}
	if app.accts.users["bob@example.com"] != original {
		t.Fatal("le compte existant ne doit jamais être écrasé")
	}
}

func TestAddToCartUnknownProductIs404(t *testing.T) {
	app := newTestApp(t)
	app.signup(t, "bob@example.com", "s3cret", "Bob")
	cookie := app.login(t, "bob@example.com", "s3cret")

	w := app.do(http.MethodGet, "/add_to_cart/inconnu", cookie, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("code = %d, attendu 404", w.Code)
	}
}

func TestCartLifecycle(t *testing.T) {
	app := newTestApp(t)
	app.signup(t, "bob@example.com", "s3cret", "Bob")
	cookie := app.login(t, "bob@example.com", "s3cret")

	// Ajout (deux fois : idempotent) puis consultation.
	for i := 0; i < 2; i++ {
		w := app.do(http.MethodGet, "/add_to_cart/a1", cookie, nil)
		if w.Code != http.StatusFound || w.Header().Get("Location") != "/cart" {
			t.Fatalf("add_to_cart: code = %d, Location = %q", w.Code, w.Header().Get("Location"))
		}
	}

	w := app.do(http.MethodGet, "/cart", cookie, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("cart: code = %d", w.Code)
	}
	var view struct {
		CartItems []models.CartItem `json:"cart_items"`
		Total     int               `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("décodage réponse cart: %v", err)
	}
	if len(view.CartItems) != 1 || view.Total != 599 {
		t.Fatalf("cart = %+v", view)
	}

	// Retrait en masse.
	w = app.do(http.MethodPost, "/remove_from_cart", cookie, url.Values{"remove_ids": {"a1"}})
	if w.Code != http.StatusFound {
		t.Fatalf("remove_from_cart: code = %d", w.Code)
	}
	if got := len(app.accts.users["bob@example.com"].Cart); got != 0 {
		t.Fatalf("panier après retrait = %d entrées", got)
	}
}

func TestPlaceOrderFlow(t *testing.T) {
	app := newTestApp(t)
	app.signup(t, "bob@example.com", "s3cret", "Bob")
	cookie := app.login(t, "bob@example.com", "s3cret")

	// Panier vide : message dédié, pas d'erreur.
	w := app.do(http.MethodGet, "/place_order", cookie, nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Your cart is empty.") {
		t.Fatalf("place_order vide: code = %d, corps = %s", w.Code, w.Body.String())
	}

	app.do(http.MethodGet, "/add_to_cart/a1", cookie, nil)
	app.do(http.MethodGet, "/add_to_cart/x9", cookie, nil)

	w = app.do(http.MethodGet, "/place_order", cookie, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("place_order: code = %d", w.Code)
	}
	var result struct {
		Message      string             `json:"message"`
		Ref          string             `json:"ref"`
		OrderedItems []models.OrderLine `json:"ordered_items"`
		Total        int                `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("décodage réponse: %v", err)
	}
	if result.Message != "Order placed successfully!" {
		t.Fatalf("message = %q", result.Message)
	}
	if len(result.OrderedItems) != 2 || result.Total != 948 {
		t.Fatalf("commande = %+v", result)
	}
	if result.Ref == "" {
		t.Fatal("la commande doit porter une référence")
	}

	// Le panier est vidé par la commande.
	if got := len(app.accts.users["bob@example.com"].Cart); got != 0 {
		t.Fatalf("panier après commande = %d entrées", got)
	}
}

func TestHomeRedirectsWhenAuthenticated(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodGet, "/", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("accueil anonyme: code = %d", w.Code)
	}

	app.signup(t, "bob@example.com", "s3cret", "Bob")
	cookie := app.login(t, "bob@example.com", "s3cret")

	w = app.do(http.MethodGet, "/", cookie, nil)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/dashboard" {
		t.Fatalf("accueil connecté: code = %d, Location = %q", w.Code, w.Header().Get("Location"))
	}
}

func TestLogout(t *testing.T) {
	app := newTestApp(t)
	app.signup(t, "bob@example.com", "s3cret", "Bob")
	cookie := app.login(t, "bob@example.com", "s3cret")

	w := app.do(http.MethodGet, "/logout", cookie, nil)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
		t.Fatalf("logout: code = %d, Location = %q", w.Code, w.Header().Get("Location"))
	}
	expired := w.Header().Get("Set-Cookie")
	if !strings.Contains(expired, "Max-Age=0") {
		t.Fatalf("logout doit expirer le cookie de session: %s", expired)
	}
}

func TestCatalogListing(t *testing.T) {
	app := newTestApp(t)
	app.signup(t, "bob@example.com", "s3cret", "Bob")
	cookie := app.login(t, "bob@example.com", "s3cret")

	w := app.do(http.MethodGet, "/mobile", cookie, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("listing: code = %d", w.Code)
	}
	var listing struct {
		Uname    string           `json:"uname"`
		Category string           `json:"category"`
		Products []models.Product `json:"products"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listing); err != nil {
		t.Fatalf("décodage listing: %v", err)
	}
	if listing.Uname != "Bob" || listing.Category != "mobiles" || len(listing.Products) != 1 {
		t.Fatalf("listing = %+v", listing)
	}
}
