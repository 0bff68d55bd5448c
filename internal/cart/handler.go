package cart

import (
	"net/http"

	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/httpx"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type addToCartRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (h *Handler) Add(c *gin.Context) {
	principal := middleware.PrincipalFromContext(c)

	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Fail(c, ErrMissingFields)
		return
	}

	line, err := h.svc.AddToCart(c.Request.Context(), principal, req.ProductID, req.Quantity)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	httpx.OK(c, http.StatusCreated, "Product added to cart successfully.", gin.H{"data": line})
}

func (h *Handler) View(c *gin.Context) {
	principal := middleware.PrincipalFromContext(c)

	lines, err := h.svc.GetCart(c.Request.Context(), principal.ID)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	if len(lines) == 0 {
		httpx.OK(c, http.StatusOK, "Cart is empty.", gin.H{"data": []*Line{}})
		return
	}

	httpx.OK(c, http.StatusOK, "", gin.H{"data": lines})
}

func (h *Handler) Remove(c *gin.Context) {
	principal := middleware.PrincipalFromContext(c)

	if err := h.svc.RemoveLine(c.Request.Context(), principal, c.Param("cartId")); err != nil {
		httpx.Fail(c, err)
		return
	}

	httpx.OK(c, http.StatusOK, "Product removed from cart successfully", nil)
}
