package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mkt-tools/quote-forge/pkg/email"
	"github.com/mkt-tools/quote-forge/pkg/server"
	"github.com/mkt-tools/quote-forge/pkg/services/config"
	"github.com/mkt-tools/quote-forge/pkg/services/pricing"
	quoteservice "github.com/mkt-tools/quote-forge/pkg/services/quote"
	pgquote "github.com/mkt-tools/quote-forge/pkg/store/postgres/quote"
	redisquote "github.com/mkt-tools/quote-forge/pkg/store/redis/quote"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the Quote Forge API server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the application config file (optional)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file loaded: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	catalog, err := pricing.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	db, err := sql.Open("postgres", cfg.Postgres.DSN)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to reach database: %w", err)
	}

	store, err := pgquote.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create quote store: %w", err)
	}
	if err := store.Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize quote store: %w", err)
	}

	var cache quoteservice.Cache
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		cache, err = redisquote.NewCache(client)
		if err != nil {
			return fmt.Errorf("failed to create quote cache: %w", err)
		}
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("quote cache enabled")
	}

	var sender quoteservice.Sender
	if cfg.Email.Enabled {
		sender, err = email.NewSender(ctx, email.Config{
			Region:    cfg.Email.Region,
			AccessKey: cfg.Email.AccessKey,
			SecretKey: cfg.Email.SecretKey,
			FromName:  cfg.Email.FromName,
			FromEmail: cfg.Email.FromEmail,
			ReplyTo:   cfg.Email.ReplyTo,
		})
		if err != nil {
			return fmt.Errorf("failed to create email sender: %w", err)
		}
		logger.Info().Str("from", cfg.Email.FromEmail).Msg("quote emails enabled")
	}

	quotes := quoteservice.NewService(pricing.NewCalculator(catalog), store, cache, sender)

	webAPI := server.NewWebAPI(server.Config{
		Addr:            cfg.Server.Addr(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Quotes:  quotes,
			Catalog: catalog,
			Logger:  logger,
		},
	})

	return webAPI.Start()
}
