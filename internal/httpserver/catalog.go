package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"ecommerce-backend/internal/domain"
	"github.com/gin-gonic/gin"
)

func listProductsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categoryID int64
		if raw := c.Query("categoryId"); raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid categoryId"})
				return
			}
			categoryID = parsed
		}

		products, err := svc.ListProducts(c.Request.Context(), categoryID)
		if err != nil {
			writeError(c, err)
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

func getProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		product, err := svc.GetProduct(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func listCategoriesHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.ListCategories(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		if categories == nil {
			categories = []domain.ProductCategory{}
		}
		c.JSON(http.StatusOK, categories)
	}
}
