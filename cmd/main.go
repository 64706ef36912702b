package main

import (
	"context"
	"fmt"
	"os"

	"recipe-management/cmd/config"
	migration "recipe-management/cmd/database/migrate"
	"recipe-management/cmd/demo"
	"recipe-management/internal/utils"
	"recipe-management/internal/utils/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "recipe-management",
		Short:        "Recipes, ingredients, categories and favorites over HTTP",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			utils.LoadConfig()
		},
	}

	cmd.AddCommand(serveCmd(), migrateCmd(), demoCmd())
	return cmd
}

// bootstrap connects and migrates; every subcommand needs both.
func bootstrap() (*gorm.DB, *logger.Logger, error) {
	log, err := logger.New(utils.GetConfig("LOG_MODE"))
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	db, err := config.ConnectDB()
	if err != nil {
		return nil, nil, err
	}

	if err := migration.Migrate(db); err != nil {
		return nil, nil, err
	}
	return db, log, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(_ *cobra.Command, _ []string) error {
			db, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()

			app, err := config.NewApp(db, log)
			if err != nil {
				return err
			}

			addr := ":" + utils.GetConfig("APP_PORT")
			log.Info("starting server", "addr", addr, "driver", utils.GetConfig("DB_DRIVER"))
			return app.Listen(addr)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(_ *cobra.Command, _ []string) error {
			_, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()

			log.Info("migration completed")
			return nil
		},
	}
}

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Seed a demo user, catalog entries and recipe",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			res, err := demo.Run(ctx, db, log)
			if err != nil {
				return err
			}

			fmt.Printf("User: %s (%s)\n", res.User.Username, res.User.ID)
			fmt.Printf("Ingredient: %s (%s)\n", res.Ingredient.Name, res.Ingredient.ID)
			fmt.Printf("Category: %s (%s)\n", res.Category.Name, res.Category.ID)
			fmt.Printf("Recipe: %s (%s)\n", res.Recipe.Name, res.Recipe.ID)
			return nil
		},
	}
}
