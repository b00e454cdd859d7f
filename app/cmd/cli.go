package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Rakhulsr/figurine-shop/app/configs"
	"github.com/Rakhulsr/figurine-shop/app/db/seeders"
	"github.com/Rakhulsr/figurine-shop/app/models/migrations"
	"github.com/Rakhulsr/figurine-shop/app/repositories"
	"github.com/Rakhulsr/figurine-shop/app/services"
	"github.com/Rakhulsr/figurine-shop/app/state"
	"github.com/Rakhulsr/figurine-shop/app/storage"
	"github.com/urfave/cli/v3"
	"gorm.io/gorm"
)

// changeFeed returns the Redis feed when REDIS_URL is set so running instances see CLI writes.
func changeFeed(ctx context.Context, env configs.ENV) (repositories.ChangeFeed, func(), error) {
	client, err := configs.OpenRedis(ctx, env)
	if err != nil {
		return nil, nil, err
	}
	if client == nil {
		return nil, func() {}, nil
	}
	feed := repositories.NewRedisChangeFeed(client, env.SyncNamespace)
	return feed, func() {
		feed.Close()
		_ = client.Close()
	}, nil
}

func NewApp(env configs.ENV, stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "figurine-shop",
		Usage: "figurine shop server and maintenance commands",
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(env)
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Println("migrate: migration complete")
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate new session authentication and encryption keys for .env",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Value: ".env.new_keys", Usage: "file the keys are written to"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return configs.GenerateSessionKeys(stdout, c.String("out"))
				},
			},
			{
				Name:  "set-admin",
				Usage: "Set the admin username and password",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "password", Required: true, Usage: "at least 8 characters"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(env)
					if err != nil {
						return err
					}
					local, err := storage.NewFileStore(env.LocalStoreDir)
					if err != nil {
						return err
					}
					return setAdmin(ctx, db, local, c.String("username"), c.String("password"))
				},
			},
			{
				Name:  "seed",
				Usage: "Fill the catalog with demo categories and products",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "categories", Value: 4},
					&cli.IntFlag{Name: "products", Value: 6, Usage: "products per category"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(env)
					if err != nil {
						return err
					}
					feed, closeFeed, err := changeFeed(ctx, env)
					if err != nil {
						return err
					}
					defer closeFeed()
					return seeders.DBSeed(ctx,
						repositories.NewCategoryRepository(db, feed),
						repositories.NewProductRepository(db, feed),
						int(c.Int("categories")),
						int(c.Int("products")),
					)
				},
			},
			{
				Name:  "export-ledger",
				Usage: "Write charges, investments or revenues from local storage as CSV",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "kind", Value: storage.KeyCharges, Usage: "charges, investments or revenues"},
					&cli.StringFlag{Name: "out", Usage: "output file, stdout when empty"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					local, err := storage.NewFileStore(env.LocalStoreDir)
					if err != nil {
						return err
					}
					out := stdout
					if path := c.String("out"); path != "" {
						f, err := os.Create(path)
						if err != nil {
							return fmt.Errorf("failed to create %s: %w", path, err)
						}
						defer f.Close()
						out = f
					}
					return exportLedger(local, c.String("kind"), out)
				},
			},
		},
	}
}

func setAdmin(ctx context.Context, db *gorm.DB, local storage.LocalStore, username, password string) error {
	auth := services.NewAuthService(state.NewStore(), local, repositories.NewSettingsRepository(db))
	if err := auth.SetCredentials(ctx, services.CredentialsInput{Username: username, Password: password}); err != nil {
		return err
	}
	log.Printf("set-admin: credentials for %s saved", username)
	return nil
}

func exportLedger(local storage.LocalStore, kind string, w io.Writer) error {
	ledger := services.NewLedgerService(state.NewStore(), local)
	ledger.LoadLocal()
	return ledger.Export(kind, w)
}

func RunCli() {
	if err := NewApp(configs.LoadENV, os.Stdout).Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
