package main

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/PIliev24/green-street/internal/cache"
	"github.com/PIliev24/green-street/internal/contractors"
	apphttp "github.com/PIliev24/green-street/internal/http"
	"github.com/PIliev24/green-street/internal/ledger"
	"github.com/PIliev24/green-street/internal/reports"
	"github.com/PIliev24/green-street/internal/router"
	"github.com/PIliev24/green-street/internal/transactions"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	// Fail fast on a missing secret; every session token depends on it.
	secret := mustJWTSecret(log)

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalw("error creating pgx pool", "error", err)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatalw("error pinging database", "error", err)
	}

	viewCache := cache.NewFromEnv(log)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "internal server error"

			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
				message = fiberErr.Message
			}

			return c.Status(code).JSON(fiber.Map{"error": message})
		},
	})

	app.Use(router.CorsMiddleware())
	app.Use(requestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	txRepo := transactions.NewRepo(pool)
	ledgerSvc := ledger.NewService(txRepo, viewCache, log)
	txHandler := transactions.NewHandler(ledgerSvc)
	contractorRepo := contractors.NewRepo(pool)
	contractorHandler := contractors.NewHandler(contractorRepo)
	authHandler := &apphttp.AuthHandler{DB: pool}
	reportsHandler := reports.NewHandler(pool)

	r := &router.Router{
		AuthHandler:         authHandler,
		TransactionsHandler: txHandler,
		ContractorsHandler:  contractorHandler,
		ReportsHandler:      reportsHandler,
		AuthMW:              buildJWTMiddleware(secret),
		TxRateLimit:         rateLimitTransactions(),
	}
	r.RegisterRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Infow("listening", "port", port)
	log.Fatal(app.Listen(":" + port))
}

func rateLimitTransactions() fiber.Handler {
	max := 60
	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_TX_MAX")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			max = parsed
		}
	}

	window := time.Minute
	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_TX_WINDOW_SECONDS")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			window = time.Duration(parsed) * time.Second
		}
	}

	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
	})
}

func requestLogger(log *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Infow("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start),
		)
		return err
	}
}

// buildJWTMiddleware rejects requests without a valid bearer token before
// any handler runs. Authorization failures never reach domain logic.
func buildJWTMiddleware(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing token")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid token")
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		userID, ok := claims["user_id"].(string)
		if !ok || strings.TrimSpace(userID) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}

func mustJWTSecret(log *zap.SugaredLogger) []byte {
	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	return []byte(secret)
}
