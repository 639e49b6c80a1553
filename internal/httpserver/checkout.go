package httpserver

import (
	"net/http"

	"ecommerce-backend/internal/service/checkout"
	"github.com/gin-gonic/gin"
)

func placeOrderHandler(svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in checkout.PurchaseInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid purchase payload"})
			return
		}

		resp, err := svc.PlaceOrder(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}
