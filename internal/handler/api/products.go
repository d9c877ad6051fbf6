package api

import (
	"net/http"

	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProductsHandler struct {
	q usecase.ProductQueries
}

func NewProductsHandler(q usecase.ProductQueries) *ProductsHandler {
	return &ProductsHandler{q: q}
}

// @Summary List products
// @Description Products for a category, optionally narrowed by a free-text search.
// @Description Falls back to the built-in sample catalog when the remote API fails.
// @Tags products
// @Produce json
// @Param category query string false "Category (default all)"
// @Param search query string false "Free-text query over name, description, keywords"
// @Success 200 {array} resdto.ProductResponse
// @Failure 500 {object} map[string]string
// @Router /products [get]
func (h *ProductsHandler) List(c *gin.Context) {
	category := c.DefaultQuery("category", "all")
	search := c.Query("search")

	products, err := h.q.Search(c.Request.Context(), category, search)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load products", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": resdto.FromProducts(products)})
}
