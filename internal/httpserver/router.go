package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"

	"ecommerce-backend/internal/domain"
	"ecommerce-backend/internal/service/checkout"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CheckoutService places a validated purchase.
type CheckoutService interface {
	PlaceOrder(ctx context.Context, in checkout.PurchaseInput) (*checkout.PurchaseResponse, error)
}

// CatalogService serves the product catalog reads.
type CatalogService interface {
	ListProducts(ctx context.Context, categoryID int64) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.ProductCategory, error)
}

// CountryRepo and StateRepo back the reference-data lookups the storefront
// uses to populate its address forms.
type CountryRepo interface {
	List(ctx context.Context) ([]domain.Country, error)
	GetByID(ctx context.Context, id int64) (*domain.Country, error)
}

type StateRepo interface {
	List(ctx context.Context) ([]domain.State, error)
	ListByCountryCode(ctx context.Context, code string) ([]domain.State, error)
}

// Deps bundles everything the router needs.
type Deps struct {
	CheckoutSvc CheckoutService
	CatalogSvc  CatalogService
	CountryRepo CountryRepo
	StateRepo   StateRepo
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, allowedOrigins []string) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = allowedOrigins
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	if err := corsCfg.Validate(); err != nil {
		return nil, err
	}
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	{
		api.POST("/checkout/purchase", placeOrderHandler(deps.CheckoutSvc))
		api.GET("/countries", listCountriesHandler(deps.CountryRepo))
		api.GET("/countries/:id", getCountryHandler(deps.CountryRepo))
		api.GET("/states", listStatesHandler(deps.StateRepo))
		api.GET("/products", listProductsHandler(deps.CatalogSvc))
		api.GET("/products/:id", getProductHandler(deps.CatalogSvc))
		api.GET("/product-category", listCategoriesHandler(deps.CatalogSvc))
	}

	return router, nil
}

// writeError maps domain errors to HTTP statuses: validation problems and
// dangling country/state/product references are client errors, everything
// else is a persistence failure.
func writeError(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
