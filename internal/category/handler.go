package category

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

type createCategoryRequest struct {
	Category string `json:"category"`
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Fail(c, ErrCategoryRequired)
		return
	}

	newCategory, all, err := h.svc.CreateCategory(c.Request.Context(), req.Category)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	httpx.OK(c, http.StatusCreated, "Category added successfully", gin.H{
		"newCategory":   newCategory,
		"allCategories": all,
	})
}

func (h *Handler) GetAllCategories(c *gin.Context) {
	cats, err := h.svc.GetAllCategories(c.Request.Context())
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	httpx.OK(c, http.StatusOK, "All categories fetched successfully", gin.H{"data": cats})
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	if err := h.svc.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		httpx.Fail(c, err)
		return
	}
	httpx.OK(c, http.StatusOK, "Category deleted successfully", nil)
}

type createProductTypeRequest struct {
	Category    string `json:"category"`
	ProductType string `json:"productType"`
}

func (h *Handler) CreateProductType(c *gin.Context) {
	var req createProductTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Fail(c, ErrTypeFieldsRequired)
		return
	}

	pt, err := h.svc.CreateProductType(c.Request.Context(), req.Category, req.ProductType)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	httpx.OK(c, http.StatusCreated, "Product type saved successfully", gin.H{"productType": pt})
}

func (h *Handler) GetAllProductTypes(c *gin.Context) {
	types, err := h.svc.GetAllProductTypes(c.Request.Context())
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	httpx.OK(c, http.StatusOK, "", gin.H{"data": types, "total": len(types)})
}

// HomePage returns the product types matching the caller's category tag, the
// SPA's landing payload.
func (h *Handler) HomePage(c *gin.Context) {
	principal := middleware.PrincipalFromContext(c)
	if principal == nil || principal.Category == "" {
		httpx.Fail(c, httpx.E(httpx.Validation, "User category not found."))
		return
	}

	types, err := h.svc.GetProductTypesByCategory(c.Request.Context(), principal.Category)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	user := gin.H{
		"id":       principal.ID,
		"name":     principal.Name,
		"category": principal.Category,
		"rank":     principal.Rank,
	}

	if len(types) == 0 {
		httpx.OK(c, http.StatusOK, "No products found for your category.", gin.H{
			"data": gin.H{"user": user, "products": []gin.H{}},
		})
		return
	}

	products := make([]gin.H, 0, len(types))
	for _, t := range types {
		products = append(products, gin.H{
			"id":          t.ID.Hex(),
			"productType": t.TypeName,
			"category":    t.Category,
		})
	}

	httpx.OK(c, http.StatusOK, "", gin.H{
		"data": gin.H{
			"user":          user,
			"products":      products,
			"totalProducts": len(products),
		},
	})
}

func (h *Handler) DeleteProductType(c *gin.Context) {
	if err := h.svc.DeleteProductType(c.Request.Context(), c.Param("typeId")); err != nil {
		httpx.Fail(c, err)
		return
	}
	httpx.OK(c, http.StatusOK, "Product type deleted successfully", nil)
}
