package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dhilipwind-Hospital/ayphen-Production-health-sub000/internal/config"
	"github.com/dhilipwind-Hospital/ayphen-Production-health-sub000/internal/httpapi"
	"github.com/dhilipwind-Hospital/ayphen-Production-health-sub000/internal/nav"
	"github.com/dhilipwind-Hospital/ayphen-Production-health-sub000/internal/platform/auth"
	"github.com/dhilipwind-Hospital/ayphen-Production-health-sub000/internal/platform/db"
	"github.com/dhilipwind-Hospital/ayphen-Production-health-sub000/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "console-server",
		Short: "Hospital console navigation and access server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(routesCmd())
	rootCmd.AddCommand(tenantCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the console server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func routesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Inspect the route table",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print every declared route and who may reach it",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := nav.DefaultEntries()
			sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })

			fmt.Printf("%-36s %-28s %s\n", "PATH", "VIEW", "ACCESS")
			for _, e := range entries {
				access := e.Acc.String()
				if e.Acc == nav.AccessRoles {
					names := make([]string, len(e.Roles))
					for i, r := range e.Roles {
						names[i] = string(r)
					}
					access = strings.Join(names, ",")
				}
				if e.TenantScoped {
					access += " [tenant-scoped]"
				}
				fmt.Printf("%-36s %-28s %s\n", e.Path, e.View, access)
			}
			fmt.Printf("\n%d routes declared\n", len(entries))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Check route table invariants",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := nav.NewTable(nav.DefaultEntries()); err != nil {
				return fmt.Errorf("route table invalid: %w", err)
			}
			fmt.Println("route table OK: unique paths, known roles, no dead ends")
			return nil
		},
	})

	return cmd
}

func tenantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tenant",
		Short: "Manage the organization directory",
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Provision a hospital in the directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			subdomain, _ := cmd.Flags().GetString("subdomain")
			if name == "" || subdomain == "" {
				return fmt.Errorf("--name and --subdomain are required")
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := db.EnsureSchema(ctx, pool); err != nil {
				return err
			}

			org, err := db.NewOrgRepo(pool).Create(ctx, name, subdomain)
			if err != nil {
				return err
			}
			fmt.Printf("Created organization %s (%s) at subdomain %s\n", org.Name, org.ID, org.Subdomain)
			return nil
		},
	}
	createCmd.Flags().String("name", "", "Hospital display name")
	createCmd.Flags().String("subdomain", "", "Console subdomain (lowercase, hyphens allowed)")
	cmd.AddCommand(createCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List provisioned hospitals",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			orgs, err := db.NewOrgRepo(pool).List(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("%-38s %-24s %s\n", "ID", "SUBDOMAIN", "NAME")
			for _, org := range orgs {
				fmt.Printf("%-38s %-24s %s\n", org.ID, org.Subdomain, org.Name)
			}
			return nil
		},
	})

	return cmd
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Organization directory
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	if err := db.EnsureSchema(ctx, pool); err != nil {
		logger.Fatal().Err(err).Msg("failed to ensure directory schema")
	}
	logger.Info().Msg("connected to organization directory")

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Session source
	source := auth.NewSource(auth.Config{
		Issuer:     cfg.AuthIssuer,
		Audience:   cfg.AuthAudience,
		SigningKey: []byte(cfg.AuthSigningKey),
	}, db.NewOrgRepo(pool))

	if cfg.IsDev() {
		e.Use(auth.DevMiddleware(cfg.DevRole))
	} else {
		e.Use(source.Middleware())
	}

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// Route table and resolution layer
	table := nav.DefaultTable()
	httpapi.New(table, logger).Register(e)
	logger.Info().Int("routes", table.Len()).Msg("route table mounted")

	// The source stays in the loading state until wiring is complete;
	// requests racing startup see Pending rather than a wrong redirect.
	source.Warm()

	// Start server with graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(":" + cfg.Port)
	}()
	logger.Info().Str("port", cfg.Port).Msg("console server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	case <-quit:
		logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}
	return nil
}
