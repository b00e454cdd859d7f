package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Rakhulsr/figurine-shop/app/models"
	"github.com/Rakhulsr/figurine-shop/app/models/migrations"
	"github.com/Rakhulsr/figurine-shop/app/repositories"
	"github.com/Rakhulsr/figurine-shop/app/services"
	"github.com/Rakhulsr/figurine-shop/app/state"
	"github.com/Rakhulsr/figurine-shop/app/storage"
	"github.com/Rakhulsr/figurine-shop/app/utils/renderer"
	"github.com/Rakhulsr/figurine-shop/app/utils/sessions"
	"github.com/glebarez/sqlite"
	"github.com/gorilla/securecookie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testClient struct {
	t      *testing.T
	server *httptest.Server
	http   *http.Client
}

func newTestClient(t *testing.T) (*testClient, *services.AuthService) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, migrations.AutoMigrate(db))

	feed := repositories.NewMemoryChangeFeed()
	productRepo := repositories.NewProductRepository(db, feed)
	categoryRepo := repositories.NewCategoryRepository(db, feed)
	messageRepo := repositories.NewMessageRepository(db, feed)
	store := state.NewStore()
	local := storage.NewMemoryStore()

	syncSvc := services.NewSyncService(store, local, productRepo, categoryRepo, messageRepo)
	require.NoError(t, syncSvc.Start(context.Background()))
	t.Cleanup(syncSvc.Close)

	ledger := services.NewLedgerService(store, local)
	auth := services.NewAuthService(store, local, repositories.NewSettingsRepository(db))
	router := NewRouter(Dependencies{
		Render:        renderer.New(false),
		Sessions:      sessions.NewCookieSessionStore(false, securecookie.GenerateRandomKey(64), securecookie.GenerateRandomKey(32)),
		RemoteTimeout: 5 * time.Second,
		Sync:          syncSvc,
		Catalog:       services.NewCatalogService(store, productRepo, categoryRepo),
		Cart:          services.NewCartService(store, local, messageRepo),
		Orders:        services.NewOrderService(store, local, messageRepo, productRepo, ledger, nil),
		Ledger:        ledger,
		Auth:          auth,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &testClient{t: t, server: server, http: &http.Client{Jar: jar}}, auth
}

// visitor returns a client for another browser on the same server.
func (c *testClient) visitor() *testClient {
	c.t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(c.t, err)
	return &testClient{t: c.t, server: c.server, http: &http.Client{Jar: jar}}
}

func (c *testClient) do(method, path string, body interface{}, out interface{}) int {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, c.server.URL+path, reader)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(c.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func login(t *testing.T, c *testClient, auth *services.AuthService) {
	t.Helper()
	require.NoError(t, auth.SetCredentials(context.Background(), services.CredentialsInput{Username: "owner", Password: "correct-horse"}))
	var session models.Session
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/login", map[string]string{"username": "owner", "password": "correct-horse"}, &session))
	require.True(t, session.IsAuthenticated)
}

func TestRouter_AdminRequiresLogin(t *testing.T) {
	c, auth := newTestClient(t)

	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/api/admin/orders", nil, nil))
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodPost, "/api/login", map[string]string{"username": "owner", "password": "x"}, nil))

	login(t, c, auth)
	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/admin/orders", nil, nil))

	assert.Equal(t, http.StatusNoContent, c.do(http.MethodPost, "/api/logout", nil, nil))
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/api/admin/orders", nil, nil))
}

func TestRouter_ShopFlow(t *testing.T) {
	c, auth := newTestClient(t)
	login(t, c, auth)

	var status map[string]string
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/status", nil, &status))
	assert.Equal(t, "remote", status["sync"])

	var category models.Category
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/admin/categories", map[string]interface{}{"name": "Scale Figures"}, &category))

	var product models.Product
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/admin/products", map[string]interface{}{
		"name":          "Makima 1/7",
		"originalPrice": "200",
		"discount":      "10",
		"images":        []string{"https://img.example/makima.jpg"},
		"category":      category.ID,
		"inStock":       true,
		"stockQuantity": 4,
	}, &product))
	assert.Equal(t, "180", product.Price.String())

	var products []models.Product
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/products?category="+category.ID+"&in_stock=true", nil, &products))
	require.Len(t, products, 1)
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/api/products/missing", nil, nil))
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodGet, "/api/products?sort=random", nil, nil))

	assert.Equal(t, http.StatusConflict, c.do(http.MethodDelete, "/api/admin/categories/"+category.ID, nil, nil))

	var cart services.CartView
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/cart", map[string]interface{}{"productId": product.ID, "quantity": 2}, &cart))
	assert.Equal(t, 2, cart.ItemCount)

	var orders []models.Message
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/checkout", map[string]string{
		"name": "Denji", "email": "denji@example.com", "phone": "0815", "address": "Tokyo",
	}, &orders))
	require.Len(t, orders, 1)

	statusPath := "/api/admin/orders/" + orders[0].ID + "/status"
	assert.Equal(t, http.StatusConflict, c.do(http.MethodPatch, statusPath, map[string]string{"status": "delivered"}, nil))
	assert.Equal(t, http.StatusOK, c.do(http.MethodPatch, statusPath, map[string]string{"status": "confirmed"}, nil))

	var revenues []models.Revenue
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/admin/revenues", nil, &revenues))
	require.Len(t, revenues, 1)
	assert.Equal(t, "360", revenues[0].Amount.String())

	var charge models.Charge
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/admin/charges", map[string]interface{}{
		"title": "Bubble wrap", "category": "Logistics", "amount": "20",
	}, &charge))
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/api/admin/charges", map[string]interface{}{
		"title": "Bubble wrap", "category": "Snacks", "amount": "20",
	}, nil))

	var summary struct {
		NetProfit string `json:"netProfit"`
	}
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/admin/finance/summary", nil, &summary))
	assert.Equal(t, "340", summary.NetProfit)

	resp, err := c.http.Get(c.server.URL + "/api/admin/finance/export?kind=charges")
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/csv"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "charges_")
	assert.Contains(t, string(raw), "Bubble wrap")
}

func TestRouter_EachBrowserHasItsOwnCart(t *testing.T) {
	admin, auth := newTestClient(t)
	login(t, admin, auth)

	var category models.Category
	require.Equal(t, http.StatusCreated, admin.do(http.MethodPost, "/api/admin/categories", map[string]interface{}{"name": "Nendoroid"}, &category))
	var product models.Product
	require.Equal(t, http.StatusCreated, admin.do(http.MethodPost, "/api/admin/products", map[string]interface{}{
		"name":          "Frieren",
		"originalPrice": "60",
		"images":        []string{"https://img.example/frieren.jpg"},
		"category":      category.ID,
		"inStock":       true,
		"stockQuantity": 10,
	}, &product))

	alice := admin.visitor()
	bob := admin.visitor()

	var cart services.CartView
	require.Equal(t, http.StatusOK, alice.do(http.MethodPost, "/api/cart", map[string]interface{}{"productId": product.ID, "quantity": 3}, &cart))
	assert.Equal(t, 3, cart.ItemCount)

	require.Equal(t, http.StatusOK, bob.do(http.MethodGet, "/api/cart", nil, &cart))
	assert.Equal(t, 0, cart.ItemCount)
	assert.Equal(t, http.StatusBadRequest, bob.do(http.MethodPost, "/api/checkout", map[string]string{
		"name": "Bob", "email": "bob@example.com", "phone": "0816", "address": "Osaka",
	}, nil))

	require.Equal(t, http.StatusOK, bob.do(http.MethodPost, "/api/cart", map[string]interface{}{"productId": product.ID, "quantity": 1}, &cart))
	var orders []models.Message
	require.Equal(t, http.StatusCreated, bob.do(http.MethodPost, "/api/checkout", map[string]string{
		"name": "Bob", "email": "bob@example.com", "phone": "0816", "address": "Osaka",
	}, &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, 1, orders[0].Quantity)

	require.Equal(t, http.StatusOK, alice.do(http.MethodGet, "/api/cart", nil, &cart))
	assert.Equal(t, 3, cart.ItemCount)

	assert.Equal(t, http.StatusNoContent, bob.do(http.MethodPost, "/api/logout", nil, nil))
	assert.Equal(t, http.StatusOK, admin.do(http.MethodGet, "/api/admin/orders", nil, nil))
}

func TestRouter_ValidationErrorsListFields(t *testing.T) {
	c, _ := newTestClient(t)

	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	require.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/api/contact", map[string]string{"name": "Power"}, &resp))
	assert.Equal(t, "validation failed", resp.Error)
	assert.Contains(t, resp.Fields, "email")
	assert.Contains(t, resp.Fields, "message")
}
