package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/merchkit/catalog/app/catalog"
	"github.com/merchkit/catalog/app/categories"
	"github.com/merchkit/catalog/database"
	"github.com/merchkit/catalog/models"
	"github.com/merchkit/catalog/seed"
)

// Variable passed in at compile time using `-ldflags`
var Version string

const envPrefix = "CATALOG"

func databaseFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "database_host", Value: "localhost", EnvVars: []string{envPrefix + "_DATABASE_HOST", "DATABASE_HOST"}, Usage: "The database host"},
		&cli.StringFlag{Name: "database_port", Value: "5432", EnvVars: []string{envPrefix + "_DATABASE_PORT", "DATABASE_PORT"}, Usage: "The database port"},
		&cli.StringFlag{Name: "database_user", Value: "catalog", EnvVars: []string{envPrefix + "_DATABASE_USER", "DATABASE_USER"}, Usage: "The database user"},
		&cli.StringFlag{Name: "database_pass", Value: "dev", EnvVars: []string{envPrefix + "_DATABASE_PASS", "DATABASE_PASS"}, Usage: "The database pass"},
		&cli.StringFlag{Name: "database_name", Value: "catalog", EnvVars: []string{envPrefix + "_DATABASE_NAME", "DATABASE_NAME"}, Usage: "The database name"},
		&cli.StringFlag{Name: "log_level", Value: "info", EnvVars: []string{envPrefix + "_LOG_LEVEL", "LOG_LEVEL"}, Usage: "Set the log level for zerolog (trace, debug, info, warn, error)"},
	}
}

func configFromCLI(c *cli.Context) database.Config {
	return database.Config{
		Host: c.String("database_host"),
		Port: c.String("database_port"),
		User: c.String("database_user"),
		Pass: c.String("database_pass"),
		Name: c.String("database_name"),
	}
}

func loggerFromCLI(c *cli.Context) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.String("log_level"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func main() {
	// Missing .env is fine; flags and real env vars still apply.
	_ = godotenv.Load()

	app := &cli.App{
		Name:     "catalog",
		Compiled: time.Now(),
		Usage:    "Product catalog database administration",
		Commands: []*cli.Command{
			{
				Name: "version",
				Action: func(c *cli.Context) error {
					fmt.Printf("%s\n", Version)
					return nil
				},
			},
			{
				Name:  "migrate",
				Usage: "Apply pending schema migrations (or roll back one with --down)",
				Flags: append(databaseFlags(),
					&cli.BoolFlag{Name: "down", Value: false, Usage: "Roll back the most recent migration"},
				),
				Action: func(c *cli.Context) error {
					log := loggerFromCLI(c)
					cfg := configFromCLI(c)

					if c.Bool("down") {
						if err := database.MigrateDown(cfg); err != nil {
							return err
						}
						log.Info().Msg("rolled back one migration")
						return nil
					}

					if err := database.Migrate(cfg); err != nil {
						return err
					}
					log.Info().Msg("migrations applied")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Load sample catalog data",
				Flags: databaseFlags(),
				Action: func(c *cli.Context) error {
					log := loggerFromCLI(c)
					cfg := configFromCLI(c)

					db, err := database.Connect(cfg)
					if err != nil {
						return err
					}

					categoriesRepo := models.NewCategoriesRepository(db)
					productsRepo := models.NewProductsRepository(db)
					categorySvc := categories.NewCategoryService(categoriesRepo)
					productSvc := catalog.NewProductService(productsRepo, categoriesRepo)

					return seed.Run(c.Context, categorySvc, productSvc, log)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
		logger.Err(err).Msg("command failed")
		os.Exit(1)
	}
}
