package http

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/mkamau/warehouse-api/internal/config"
	"github.com/mkamau/warehouse-api/internal/http/handlers"
	"github.com/mkamau/warehouse-api/internal/http/middlewares"
	"github.com/mkamau/warehouse-api/internal/observability"
	"github.com/mkamau/warehouse-api/internal/repo/mongodb"
)

const serviceName = "warehouse-api"

func NewRouter(log *slog.Logger, cfg config.Config, prom *observability.Prom, database *mongo.Database) *gin.Engine {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// middleware
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(log))
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middlewares.RequireJSON())
	r.Use(middlewares.MaxBodyBytes(cfg.MaxBodyBytes))
	r.Use(otelgin.Middleware(serviceName))

	if prom != nil {
		r.Use(prom.GinHandleMiddleware())
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	limiter := middlewares.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	r.Use(limiter.Middleware(middlewares.KeyByIP))

	// health
	ping := func(ctx context.Context) error {
		if database == nil {
			return nil
		}

		return database.Client().Ping(ctx, readpref.Primary())
	}

	h := handlers.NewHealthHandler(ping)
	r.GET("/", h.Home)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	// wire up repositories
	productsRepo := mongodb.NewProductsRepo(database, prom)
	ordersRepo := mongodb.NewOrdersRepo(database, prom)
	usersRepo := mongodb.NewUsersRepo(database, prom)

	productsHandler := handlers.NewProductsHandler(productsRepo)
	ordersHandler := handlers.NewOrdersHandler(ordersRepo)
	usersHandler := handlers.NewUsersHandler(usersRepo)

	r.GET("/orders", ordersHandler.ListOrders)
	r.GET("/orders/search", ordersHandler.SearchOrders)

	r.GET("/products", productsHandler.ListProducts)
	r.GET("/products/search", productsHandler.SearchProducts)
	r.POST("/products", productsHandler.CreateProduct)
	r.PUT("/products/:id", productsHandler.UpdateProduct)
	r.DELETE("/products/:id", productsHandler.DeleteProduct)

	r.GET("/users", usersHandler.ListUsers)
	r.GET("/users/search", usersHandler.SearchUsers)

	return r
}
