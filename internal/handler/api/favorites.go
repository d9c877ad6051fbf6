package api

import (
	"net/http"

	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/usecase"

	"github.com/gin-gonic/gin"
)

type FavoritesHandler struct {
	cmds usecase.FavoriteCommands
	q    usecase.FavoriteQueries
}

func NewFavoritesHandler(cmds usecase.FavoriteCommands, q usecase.FavoriteQueries) *FavoritesHandler {
	return &FavoritesHandler{cmds: cmds, q: q}
}

// @Summary List favorites
// @Tags favorites
// @Produce json
// @Success 200 {array} resdto.ProductResponse
// @Router /favorites [get]
func (h *FavoritesHandler) List(c *gin.Context) {
	products := h.q.List(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"favorites": resdto.FromProducts(products)})
}

// @Summary Add favorite
// @Description Add a product to favorites; already-favorited products are a no-op
// @Tags favorites
// @Accept json
// @Param request body reqdto.AddFavoriteRequest true "Product to favorite"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Router /favorites [post]
func (h *FavoritesHandler) Add(c *gin.Context) {
	var req reqdto.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product", nil)
		return
	}
	h.cmds.Add(c.Request.Context(), req.Product)
	c.Status(http.StatusNoContent)
}

// @Summary Remove favorite
// @Tags favorites
// @Param id path string true "Product ID"
// @Success 204 "No Content"
// @Router /favorites/{id} [delete]
func (h *FavoritesHandler) Remove(c *gin.Context) {
	h.cmds.Remove(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}
