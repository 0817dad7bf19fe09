package routes

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/avatar-commerce/avatarcommerce/internal/affiliate"
	"github.com/avatar-commerce/avatarcommerce/internal/assistant"
	"github.com/avatar-commerce/avatarcommerce/internal/auth"
	"github.com/avatar-commerce/avatarcommerce/internal/catalog"
	"github.com/avatar-commerce/avatarcommerce/internal/config"
	"github.com/avatar-commerce/avatarcommerce/internal/identity"
	"github.com/avatar-commerce/avatarcommerce/internal/influencer"
	"github.com/avatar-commerce/avatarcommerce/internal/middleware"
	"github.com/avatar-commerce/avatarcommerce/internal/notification"
)

// Deps aggregates shared dependencies required to wire routes. DB and Cache
// are optional in development.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))

	RegisterHealthRoutes(app, d)

	var (
		identityRepo identity.Repository
		avatarRepo   influencer.Repository
	)
	if d.DB != nil {
		identityRepo = identity.NewPostgresRepository(d.DB)
		avatarRepo = influencer.NewPostgresRepository(d.DB)
	} else {
		identityRepo = identity.NewMemoryRepository()
		avatarRepo = influencer.NewMemoryRepository()
	}

	tokens, err := auth.NewTokens(d.Cfg.JWTSecret, d.Cfg.AccessTokenTTL)
	if err != nil {
		return err
	}
	identitySvc := identity.NewService(identityRepo)
	authHandler := auth.NewHandler(identitySvc, auth.NewService(identitySvc, tokens))

	var notifier notification.Notifier = notification.NewLoggerNotifier(d.Logger)
	if d.Cache != nil {
		notifier = notification.NewRedisNotifier(d.Cache)
	}

	influencerSvc := influencer.NewService(avatarRepo, identitySvc, d.Cfg.AssetDir, notifier, d.Logger)
	assistantSvc := assistant.NewService(catalog.Default(), influencerSvc, d.Cfg.VideoBaseURL, notifier, d.Logger)
	influencerHandler := influencer.NewHandler(influencerSvc, assistantSvc)
	affiliateHandler := affiliate.NewHandler(affiliate.NewService())

	// Public routes
	RegisterAuthRoutes(app, authHandler, middleware.LoginRateLimit(d.Cache, d.Cfg.LoginRateLimit, d.Logger))
	RegisterChatRoutes(app, assistant.NewHandler(assistantSvc), influencerHandler)

	// Influencer routes
	var idem fiber.Handler
	if d.Cache != nil {
		idem = middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger)
	}
	guard := []fiber.Handler{middleware.JWTAuth(tokens), middleware.RequireInfluencer()}
	RegisterInfluencerRoutes(app, influencerHandler, affiliateHandler, guard, idem)

	return nil
}
