package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/freightline/backend/internal/api"
	"github.com/freightline/backend/internal/carrier"
	"github.com/freightline/backend/internal/config"
	"github.com/freightline/backend/internal/fmcsa"
	"github.com/freightline/backend/internal/loads"
)

// Version info (set during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Build the load table before accepting traffic. A failed load is not
	// fatal: the service starts with an empty table and the lookup
	// endpoint reports it as unavailable.
	table, err := loads.Load(cfg.Loads.Path)
	if err != nil {
		fmt.Printf("Warning: failed to load load table from %s: %v\n", cfg.Loads.Path, err)
	} else {
		fmt.Printf("Loaded %d load records from %s\n", table.Len(), cfg.Loads.Path)
	}

	if cfg.FMCSA.WebKey == "" {
		fmt.Println("Warning: FMCSA_API_KEY not set; carrier validation will fail")
	}

	registry := fmcsa.NewClient(cfg.FMCSA.BaseURL, time.Duration(cfg.FMCSA.TimeoutSeconds)*time.Second)
	validator := carrier.NewValidator(registry, cfg.FMCSA.WebKey)

	handlers := api.NewHandlers(&api.Dependencies{
		Validator: validator,
		Table:     table,
		Version:   Version,
	})

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = api.ErrorHandler

	// Configure middleware
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			if !cfg.Server.EnableRequestLogging {
				return true
			}
			return c.Request().URL.Path == "/api/health"
		},
	}))

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 1024 * 4,
	}))

	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	if cfg.Server.EnableCORS {
		origins := strings.Split(cfg.Server.AllowOrigins, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		if len(origins) == 0 || (len(origins) == 1 && origins[0] == "") {
			origins = []string{"*"}
		}
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: origins,
			AllowMethods: []string{http.MethodGet, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		}))
	}

	api.RegisterRoutes(e, handlers)

	s := &http.Server{
		Addr:         cfg.GetServerAddr(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSeconds) * time.Second,
	}

	fmt.Printf("\n")
	fmt.Printf("Freightline Backend\n")
	fmt.Printf("  Version:    %s (%s)\n", Version, BuildTime)
	fmt.Printf("  Config:     %s\n", configPath)
	fmt.Printf("  Listen:     http://%s\n", cfg.GetServerAddr())
	fmt.Printf("  Load table: %s (%d records)\n", cfg.Loads.Path, table.Len())
	fmt.Printf("\n")

	e.Logger.Fatal(e.StartServer(s))
}
