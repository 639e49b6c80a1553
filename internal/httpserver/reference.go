package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"ecommerce-backend/internal/domain"
	"github.com/gin-gonic/gin"
)

func listCountriesHandler(repo CountryRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		countries, err := repo.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		if countries == nil {
			countries = []domain.Country{}
		}
		c.JSON(http.StatusOK, countries)
	}
}

func getCountryHandler(repo CountryRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid country id"})
			return
		}
		country, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "country not found"})
				return
			}
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, country)
	}
}

// listStatesHandler returns all states, or only those of one country when
// the countryCode query parameter is present.
func listStatesHandler(repo StateRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			states []domain.State
			err    error
		)
		if code := c.Query("countryCode"); code != "" {
			states, err = repo.ListByCountryCode(c.Request.Context(), code)
		} else {
			states, err = repo.List(c.Request.Context())
		}
		if err != nil {
			writeError(c, err)
			return
		}
		if states == nil {
			states = []domain.State{}
		}
		c.JSON(http.StatusOK, states)
	}
}
