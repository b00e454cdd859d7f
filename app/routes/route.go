package routes

import (
	"net/http"
	"time"

	"github.com/Rakhulsr/figurine-shop/app/handlers"
	"github.com/Rakhulsr/figurine-shop/app/handlers/admin"
	"github.com/Rakhulsr/figurine-shop/app/middlewares"
	"github.com/Rakhulsr/figurine-shop/app/services"
	"github.com/Rakhulsr/figurine-shop/app/utils/sessions"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type Dependencies struct {
	Render        *render.Render
	Sessions      sessions.SessionStore
	RemoteTimeout time.Duration
	Sync          *services.SyncService
	Catalog       *services.CatalogService
	Cart          *services.CartService
	Orders        *services.OrderService
	Ledger        *services.LedgerService
	Auth          *services.AuthService
}

func NewRouter(deps Dependencies) *mux.Router {
	router := mux.NewRouter()
	router.Use(middlewares.RequestTimeout(deps.RemoteTimeout))

	homeHandler := handlers.NewHomeHandler(deps.Render, deps.Sync)
	productHandler := handlers.NewProductHandler(deps.Render, deps.Catalog, deps.Sessions)
	cartHandler := handlers.NewCartHandler(deps.Render, deps.Cart, deps.Sessions)
	orderHandler := handlers.NewOrderHandler(deps.Render, deps.Orders)
	authHandler := handlers.NewAuthHandler(deps.Render, deps.Auth, deps.Sessions)
	adminHandler := admin.NewAdminHandler(deps.Render, deps.Catalog, deps.Orders, deps.Ledger, deps.Auth)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/status", homeHandler.Status).Methods(http.MethodGet)
	api.HandleFunc("/csrf", homeHandler.CSRFToken).Methods(http.MethodGet)

	api.HandleFunc("/products", productHandler.ListProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", productHandler.GetProduct).Methods(http.MethodGet)
	api.HandleFunc("/categories", productHandler.ListCategories).Methods(http.MethodGet)

	api.HandleFunc("/cart", cartHandler.GetCart).Methods(http.MethodGet)
	api.HandleFunc("/cart", cartHandler.AddItem).Methods(http.MethodPost)
	api.HandleFunc("/cart/items/{id}", cartHandler.UpdateItem).Methods(http.MethodPatch)
	api.HandleFunc("/cart/items/{id}", cartHandler.RemoveItem).Methods(http.MethodDelete)
	api.HandleFunc("/checkout", cartHandler.Checkout).Methods(http.MethodPost)

	api.HandleFunc("/contact", orderHandler.Contact).Methods(http.MethodPost)
	api.HandleFunc("/custom-orders", orderHandler.CreateCustomOrder).Methods(http.MethodPost)

	api.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	adminRouter := api.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middlewares.AdminAuthMiddleware(deps.Sessions, deps.Render))

	adminRouter.HandleFunc("/dashboard", adminHandler.Dashboard).Methods(http.MethodGet)

	adminRouter.HandleFunc("/products", adminHandler.CreateProduct).Methods(http.MethodPost)
	adminRouter.HandleFunc("/products/{id}", adminHandler.UpdateProduct).Methods(http.MethodPut)
	adminRouter.HandleFunc("/products/{id}", adminHandler.DeleteProduct).Methods(http.MethodDelete)

	adminRouter.HandleFunc("/categories", adminHandler.CreateCategory).Methods(http.MethodPost)
	adminRouter.HandleFunc("/categories/{id}", adminHandler.UpdateCategory).Methods(http.MethodPut)
	adminRouter.HandleFunc("/categories/{id}", adminHandler.DeleteCategory).Methods(http.MethodDelete)

	adminRouter.HandleFunc("/orders", adminHandler.ListOrders).Methods(http.MethodGet)
	adminRouter.HandleFunc("/orders/{id}/status", adminHandler.UpdateOrderStatus).Methods(http.MethodPatch)
	adminRouter.HandleFunc("/orders/{id}/read", adminHandler.MarkOrderRead).Methods(http.MethodPatch)
	adminRouter.HandleFunc("/orders/{id}", adminHandler.DeleteOrder).Methods(http.MethodDelete)

	adminRouter.HandleFunc("/custom-orders", adminHandler.ListCustomOrders).Methods(http.MethodGet)
	adminRouter.HandleFunc("/custom-orders/{id}/status", adminHandler.UpdateCustomOrderStatus).Methods(http.MethodPatch)

	adminRouter.HandleFunc("/charges", adminHandler.ListCharges).Methods(http.MethodGet)
	adminRouter.HandleFunc("/charges", adminHandler.AddCharge).Methods(http.MethodPost)
	adminRouter.HandleFunc("/charges/{id}", adminHandler.DeleteCharge).Methods(http.MethodDelete)
	adminRouter.HandleFunc("/investments", adminHandler.ListInvestments).Methods(http.MethodGet)
	adminRouter.HandleFunc("/investments", adminHandler.AddInvestment).Methods(http.MethodPost)
	adminRouter.HandleFunc("/investments/{id}", adminHandler.DeleteInvestment).Methods(http.MethodDelete)
	adminRouter.HandleFunc("/revenues", adminHandler.ListRevenues).Methods(http.MethodGet)
	adminRouter.HandleFunc("/revenues", adminHandler.AddRevenue).Methods(http.MethodPost)
	adminRouter.HandleFunc("/revenues/{id}", adminHandler.DeleteRevenue).Methods(http.MethodDelete)

	adminRouter.HandleFunc("/finance/summary", adminHandler.FinanceSummary).Methods(http.MethodGet)
	adminRouter.HandleFunc("/finance/export", adminHandler.ExportLedger).Methods(http.MethodGet)

	adminRouter.HandleFunc("/settings/credentials", adminHandler.UpdateCredentials).Methods(http.MethodPut)

	return router
}
