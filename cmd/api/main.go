package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/georgemunganga/carmarket-backend/internal/modules/auth"
	"github.com/georgemunganga/carmarket-backend/internal/modules/catalog"
	"github.com/georgemunganga/carmarket-backend/internal/modules/inventory"
	"github.com/georgemunganga/carmarket-backend/internal/modules/order"
	"github.com/georgemunganga/carmarket-backend/internal/modules/purchase"
	"github.com/georgemunganga/carmarket-backend/internal/modules/user"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	// ── Storage ─────────────────────────────────────────────
	// With DATABASE_URL set the same contracts run on Postgres; without it
	// everything lives in process memory, seeded with demo data.
	var (
		userRepo  user.Repository
		store     catalog.Store
		orderRepo order.Repository
	)

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			log.Fatal(err)
		}
		fmt.Println("Successfully connected to the database!")

		userRepo = user.NewPostgresRepository(db)
		store = catalog.NewPostgresStore(db)
		orderRepo = order.NewPostgresRepository(db)
	} else {
		userRepo = user.NewMemoryRepository()
		store = catalog.NewMemoryStore()
		orderRepo = order.NewMemoryRepository()

		if err := seed(userRepo, store); err != nil {
			log.Fatal(err)
		}
		fmt.Println("Running with in-memory storage and demo data")
	}

	jwtKey := []byte(os.Getenv("JWT_SECRET"))
	if len(jwtKey) == 0 {
		jwtKey = []byte("dev-secret-key")
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Phase 1: Identity & Access ──────────────────────────
	userService := user.NewService(userRepo)
	user.NewHandler(userService).RegisterRoutes(router)

	authMiddleware := auth.NewMiddleware(userRepo, jwtKey)
	authService := auth.NewService(userRepo, jwtKey)
	auth.NewHandler(authService, authMiddleware).RegisterRoutes(router)

	// ── Phase 2: Catalog & Seller Inventory ─────────────────
	catalogService := catalog.NewService(store)
	catalog.NewHandler(catalogService).RegisterRoutes(router, authMiddleware)

	inventory.NewHandler(store).RegisterRoutes(router, authMiddleware)

	// ── Phase 3: Purchases & Orders ─────────────────────────
	purchase.NewHandler(store, orderRepo).RegisterRoutes(router, authMiddleware)
	order.NewHandler(orderRepo).RegisterRoutes(router, authMiddleware)

	// ── Start Server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Car marketplace API starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
