package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dogukan2201/ChairUpBackend/internal/api/handler"
	"github.com/dogukan2201/ChairUpBackend/internal/api/middleware"
	"github.com/dogukan2201/ChairUpBackend/internal/core/auth"
	"github.com/dogukan2201/ChairUpBackend/internal/core/domain"
	"github.com/dogukan2201/ChairUpBackend/internal/core/service"
	"github.com/dogukan2201/ChairUpBackend/internal/infrastructure/config"
	mongodb "github.com/dogukan2201/ChairUpBackend/internal/infrastructure/db/mongo"
	redisdb "github.com/dogukan2201/ChairUpBackend/internal/infrastructure/db/redis"
	"github.com/dogukan2201/ChairUpBackend/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, audit service.AuditSink, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("chairup"))

	// --- Shared auth components ---
	hasher := auth.NewHasher(cfg.BcryptCost)
	tokens := auth.NewTokenManager(cfg.TokenSecret, cfg.TokenTTL)
	throttle := redisdb.NewLoginThrottle(rdb)

	// One account stack per principal kind. The four guards are independent:
	// a token only passes the guard of the kind it was minted for.
	accountHandlers := make(map[domain.Kind]*handler.AccountHandler)
	guards := make(map[domain.Kind]echo.MiddlewareFunc)
	for _, kind := range []domain.Kind{domain.KindAdmin, domain.KindCafeOwner, domain.KindCustomer, domain.KindUser} {
		repo := mongodb.NewAccountRepository(db, kind)
		svc := service.NewAccountService(kind, repo, hasher, tokens, throttle, audit, log)
		accountHandlers[kind] = handler.NewAccountHandler(kind, svc)
		guards[kind] = middleware.Guard(tokens, kind)
	}

	cafeService := service.NewCafeService(
		mongodb.NewCafeRepository(db),
		mongodb.NewEmployeeRepository(db),
		mongodb.NewAccountRepository(db, domain.KindCafeOwner),
		hasher,
		log,
	)
	cafeHandler := handler.NewCafeHandler(cafeService)

	// --- Admin routes ---
	adminHandler := accountHandlers[domain.KindAdmin]
	adminGuard := guards[domain.KindAdmin]
	admins := e.Group("/api/admins")
	admins.POST("/signup", adminHandler.Signup)
	admins.POST("/login", adminHandler.Login)
	admins.GET("/admin", adminHandler.Get, adminGuard)
	admins.GET("/all", adminHandler.List, adminGuard)
	admins.PATCH("/updateProfile", adminHandler.Update, adminGuard)
	admins.PATCH("/deleteProfile", adminHandler.Delete, adminGuard)
	admins.PATCH("/resetPassword", adminHandler.ResetPassword, adminGuard)

	// Admin directory and registration endpoints.
	ownerHandler := accountHandlers[domain.KindCafeOwner]
	customerHandler := accountHandlers[domain.KindCustomer]
	admins.POST("/registerCafeOwner", ownerHandler.Register, adminGuard)
	admins.GET("/customers", customerHandler.List, adminGuard)
	admins.GET("/customers/:customerId", customerHandler.GetByID, adminGuard)
	admins.DELETE("/customers/:customerId", customerHandler.DeleteByID, adminGuard)
	admins.GET("/cafeOwners", ownerHandler.List, adminGuard)
	admins.GET("/cafeOwners/:cafeOwnerId", ownerHandler.GetByID, adminGuard)
	admins.DELETE("/cafeOwners/:cafeOwnerId", ownerHandler.DeleteByID, adminGuard)
	admins.POST("/registerCafe", cafeHandler.RegisterCafe, adminGuard)
	admins.GET("/cafes", cafeHandler.ListCafes, adminGuard)
	admins.GET("/cafes/:cafeId", cafeHandler.GetCafe, adminGuard)
	admins.DELETE("/cafes/:cafeId", cafeHandler.DeleteCafe, adminGuard)

	// --- Cafe owner routes (owners are registered by admins, no signup) ---
	ownerGuard := guards[domain.KindCafeOwner]
	owners := e.Group("/api/cafeOwners")
	owners.POST("/login", ownerHandler.Login)
	owners.GET("/cafeOwner", ownerHandler.Get, ownerGuard)
	owners.GET("/all", ownerHandler.List, ownerGuard)
	owners.PATCH("/updateProfile", ownerHandler.Update, ownerGuard)
	owners.PATCH("/deleteProfile", ownerHandler.Delete, ownerGuard)
	owners.PATCH("/resetPassword", ownerHandler.ResetPassword, ownerGuard)
	owners.POST("/registerEmployee", cafeHandler.RegisterEmployee, ownerGuard)

	// --- Customer routes ---
	customerGuard := guards[domain.KindCustomer]
	customers := e.Group("/api/customers")
	customers.POST("/signup", customerHandler.Signup)
	customers.POST("/login", customerHandler.Login)
	customers.GET("/customer", customerHandler.Get, customerGuard)
	customers.GET("/all", customerHandler.List, customerGuard)
	customers.PATCH("/updateProfile", customerHandler.Update, customerGuard)
	customers.PATCH("/deleteProfile", customerHandler.Delete, customerGuard)

	// --- Legacy user routes ---
	userHandler := accountHandlers[domain.KindUser]
	userGuard := guards[domain.KindUser]
	users := e.Group("/api/users")
	users.POST("/signup", userHandler.Signup)
	users.POST("/login", userHandler.Login)
	users.GET("/user", userHandler.Get, userGuard)
	users.GET("/all", userHandler.List, userGuard)
	users.DELETE("/deleteProfile", userHandler.Delete, userGuard)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"data": "hello"})
	})

	return e
}
