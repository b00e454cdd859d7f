package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Rakhulsr/figurine-shop/app/cmd"
	"github.com/Rakhulsr/figurine-shop/app/configs"
	"github.com/Rakhulsr/figurine-shop/app/repositories"
	"github.com/Rakhulsr/figurine-shop/app/routes"
	"github.com/Rakhulsr/figurine-shop/app/services"
	"github.com/Rakhulsr/figurine-shop/app/state"
	"github.com/Rakhulsr/figurine-shop/app/storage"
	"github.com/Rakhulsr/figurine-shop/app/utils/renderer"
	"github.com/Rakhulsr/figurine-shop/app/utils/sessions"
	"github.com/gorilla/csrf"
)

func main() {
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	env := configs.LoadENV
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	keys, err := configs.LoadSessionKeys(env)
	if err != nil {
		log.Fatalf("Session keys: %v (run `generate-keys`)", err)
	}
	if len(keys.AuthKey) < 32 {
		log.Fatal("Session keys: APP_AUTH_KEY must decode to at least 32 bytes")
	}

	db, err := configs.OpenConnection(env)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	var feed repositories.ChangeFeed = repositories.NewMemoryChangeFeed()
	redisClient, err := configs.OpenRedis(ctx, env)
	if err != nil {
		log.Printf("Warning: %v; live updates limited to this instance", err)
	} else if redisClient != nil {
		redisFeed := repositories.NewRedisChangeFeed(redisClient, env.SyncNamespace)
		defer redisClient.Close()
		defer redisFeed.Close()
		feed = redisFeed
	}

	local, err := storage.NewFileStore(env.LocalStoreDir)
	if err != nil {
		log.Fatal("Local store:", err)
	}

	productRepo := repositories.NewProductRepository(db, feed)
	categoryRepo := repositories.NewCategoryRepository(db, feed)
	messageRepo := repositories.NewMessageRepository(db, feed)
	settingsRepo := repositories.NewSettingsRepository(db)

	store := state.NewStore()
	syncSvc := services.NewSyncService(store, local, productRepo, categoryRepo, messageRepo).
		WithProbeTimeout(env.RemoteTimeout)
	if err := syncSvc.Start(ctx); err != nil {
		log.Fatal("Sync start failed:", err)
	}
	defer syncSvc.Close()
	log.Printf("Sync mode: %s", syncSvc.Mode())

	var notifier services.OrderNotifier
	if env.MailConfigured() {
		notifier = services.NewMailer(services.Config{
			Host:     env.EmailHost,
			Port:     env.EmailPort,
			Username: env.EmailUsername,
			Password: env.EmailPassword,
			From:     env.EmailFrom,
		})
	}

	ledger := services.NewLedgerService(store, local)
	router := routes.NewRouter(routes.Dependencies{
		Render:        renderer.New(env.IsProduction()),
		Sessions:      sessions.NewCookieSessionStore(env.IsProduction(), keys.AuthKey, keys.EncKey),
		RemoteTimeout: env.RemoteTimeout,
		Sync:          syncSvc,
		Catalog:       services.NewCatalogService(store, productRepo, categoryRepo),
		Cart:          services.NewCartService(store, local, messageRepo),
		Orders:        services.NewOrderService(store, local, messageRepo, productRepo, ledger, notifier),
		Ledger:        ledger,
		Auth:          services.NewAuthService(store, local, settingsRepo),
	})

	csrfProtect := csrf.Protect(keys.AuthKey[:32],
		csrf.Secure(env.IsProduction()),
		csrf.Path("/"),
		csrf.RequestHeader("X-CSRF-Token"),
	)

	server := &http.Server{
		Addr:              ":" + env.Port,
		Handler:           csrfProtect(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown: %v", err)
		}
	}()

	log.Printf("Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("Server failed:", err)
	}
}
