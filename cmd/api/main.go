package main

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/tinytots/storefront/internal/modules/auth"
	"github.com/tinytots/storefront/internal/modules/cart"
	"github.com/tinytots/storefront/internal/modules/catalog"
	"github.com/tinytots/storefront/internal/modules/order"
	"github.com/tinytots/storefront/internal/modules/user"
)

// productLookupTimeout bounds single-product lookups; a slow database is
// treated the same as a down one and served from the bundled dataset.
const productLookupTimeout = 5 * time.Second

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file, using environment as-is")
	}

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.WithError(err).Fatal("open database")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.WithError(err).Fatal("ping database")
	}

	if err := runMigrations(db); err != nil {
		log.WithError(err).Fatal("run migrations")
	}
	log.Info("connected to postgres, schema up to date")

	redisClient := redis.NewClient(&redis.Options{
		Addr: getEnv("REDIS_ADDR", "localhost:6379"),
	})
	jwtSecret := []byte(getEnv("JWT_SECRET", "dev-only-secret"))

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	guard := auth.NewMiddleware(jwtSecret)

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	user.NewHandler(userService).RegisterRoutes(router, guard.Authenticated)

	authService := auth.NewService(userRepo, jwtSecret)
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Catalog ─────────────────────────────────────────────
	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo, log, productLookupTimeout)
	catalog.NewHandler(catalogService).RegisterRoutes(router, guard.RequireAdmin)

	// ── Cart & Pricing ──────────────────────────────────────
	pricing := cart.DefaultPricing()
	carts := cart.NewStores(cart.NewRedisStorage(redisClient))
	cart.NewHandler(carts, pricing).RegisterRoutes(router, guard.Authenticated)

	// ── Orders ──────────────────────────────────────────────
	orderRepo := order.NewPostgresRepository(db)
	orderService := order.NewService(orderRepo, carts, pricing, log)
	order.NewHandler(orderService).RegisterRoutes(router, guard.Authenticated)

	// ── Start Server ────────────────────────────────────────
	port := getEnv("APP_PORT", "8080")
	log.WithField("port", port).Info("storefront API listening")
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func runMigrations(db *sql.DB) error {
	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}
	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", getEnv("MIGRATIONS_DIR", "migrations")),
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
