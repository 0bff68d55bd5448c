package order

import (
	"net/http"

	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/auth"
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

func (h *Handler) Create(c *gin.Context) {
	principal := middleware.PrincipalFromContext(c)

	o, err := h.svc.CreateFromCart(c.Request.Context(), principal)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	httpx.OK(c, http.StatusCreated, "Order placed successfully and cart cleared!", gin.H{"order": o})
}

func (h *Handler) History(c *gin.Context) {
	principal := middleware.PrincipalFromContext(c)

	orders, err := h.svc.GetForPrincipal(c.Request.Context(), principal)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	httpx.OK(c, http.StatusOK, "", gin.H{"count": len(orders), "orders": orders})
}

// Profile returns the principal plus per-order summaries, the payload the
// profile page renders.
func (h *Handler) Profile(c *gin.Context) {
	principal := middleware.PrincipalFromContext(c)

	summaries, err := h.svc.Summaries(c.Request.Context(), principal)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	user := gin.H{
		"id":      principal.ID,
		"name":    principal.Name,
		"address": principal.Address,
		"number":  principal.Number,
		"rank":    principal.Rank,
	}

	if len(summaries) == 0 {
		httpx.OK(c, http.StatusOK, "No orders found for this account.", gin.H{
			"user":   user,
			"orders": []Summary{},
		})
		return
	}

	httpx.OK(c, http.StatusOK, "", gin.H{"user": user, "orders": summaries})
}

func (h *Handler) ViewSingle(c *gin.Context) {
	principal := middleware.PrincipalFromContext(c)

	o, err := h.svc.GetByID(c.Request.Context(), c.Query("orderId"))
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	httpx.OK(c, http.StatusOK, "Order fetched successfully", gin.H{
		"rank":         principal.Rank,
		"orderDetails": o,
	})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	principal := middleware.PrincipalFromContext(c)
	actor := auth.RankUser
	if principal != nil {
		actor = principal.Rank
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Fail(c, ErrStatusRequired)
		return
	}

	updated, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, actor)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	httpx.OK(c, http.StatusOK, "Order status successfully updated.", gin.H{"updatedOrder": updated})
}
