package api

import (
	"errors"
	"net/http"

	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cmds usecase.CartCommands
	q    usecase.CartQueries
}

func NewCartHandler(cmds usecase.CartCommands, q usecase.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Get cart
// @Description Current cart contents with applied offers and computed totals
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	view := h.q.GetCart(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Add item
// @Description Add a product to the cart, or increment its quantity if present
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddItemRequest true "Product to add"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req reqdto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product", nil)
		return
	}
	view, err := h.cmds.AddItem(c.Request.Context(), req.Product)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Add to cart failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Set quantity
// @Description Set a cart item's quantity; zero or less removes the item
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Cart item ID"
// @Param request body reqdto.SetQuantityRequest true "New quantity"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items/{id} [patch]
func (h *CartHandler) SetQuantity(c *gin.Context) {
	var req reqdto.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.SetQuantity(c.Request.Context(), c.Param("id"), *req.Quantity)
	if err != nil {
		if errors.Is(err, errs.ErrItemNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Update quantity failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Remove item
// @Description Remove a regular item; offers tied to it disappear on the same pass
// @Tags cart
// @Produce json
// @Param id path string true "Cart item ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 404 {object} map[string]string
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	view, err := h.cmds.RemoveItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrItemNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Remove item failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Clear cart
// @Description Empty all items, offers, and the discount ledger
// @Tags cart
// @Success 204 "No Content"
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.cmds.Clear(c.Request.Context()); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Clear cart failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Checkout
// @Description Snapshot the cart into an order, persist it, and clear the cart
// @Tags cart
// @Produce json
// @Success 201 {object} resdto.OrderResponse
// @Failure 409 {object} map[string]string
// @Router /checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	ord, err := h.cmds.Checkout(c.Request.Context())
	if err != nil {
		if errors.Is(err, errs.ErrEmptyCart) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Cart is empty", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Checkout failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOrder(ord))
}
