package product

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/httpx"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/logger"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Create handles the multipart form: five text fields plus up to three
// files under "productFiles".
func (h *Handler) Create(c *gin.Context) {
	principal := middleware.PrincipalFromContext(c)

	price, _ := strconv.ParseFloat(c.PostForm("productPrice"), 64)
	in := CreateInput{
		Name:        c.PostForm("productName"),
		Price:       price,
		Description: c.PostForm("productDescription"),
		Category:    c.PostForm("category"),
		ProductType: c.PostForm("productType"),
		AdminID:     principal.ID,
	}

	form, err := c.MultipartForm()
	if err != nil {
		httpx.Fail(c, ErrImagesRequired)
		return
	}

	var files []io.Reader
	var closers []multipart.File
	for _, fh := range form.File["productFiles"] {
		f, err := fh.Open()
		if err != nil {
			logger.FromCtx(c.Request.Context()).Warn("failed to open upload", zap.Error(err))
			continue
		}
		files = append(files, f)
		closers = append(closers, f)
	}
	defer func() {
		for _, f := range closers {
			f.Close()
		}
	}()

	p, err := h.svc.Create(c.Request.Context(), in, files)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	httpx.OK(c, http.StatusCreated, "Product created successfully", gin.H{"data": p})
}

func (h *Handler) Single(c *gin.Context) {
	p, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	httpx.OK(c, http.StatusOK, "", gin.H{"data": p})
}

func (h *Handler) ByType(c *gin.Context) {
	products, err := h.svc.GetByType(c.Request.Context(), c.Param("productType"))
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	if len(products) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "No products found for this type",
		})
		return
	}

	httpx.OK(c, http.StatusOK, "", gin.H{"data": products})
}

func (h *Handler) Update(c *gin.Context) {
	// loose payload: the SPA sends price as either a number or a string
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.Fail(c, ErrIDRequired)
		return
	}

	in := UpdateInput{ProductID: asString(body["productId"])}
	if v := asString(body["productName"]); v != "" {
		in.Name = &v
	}
	if v := asString(body["productDescription"]); v != "" {
		in.Description = &v
	}
	if p, ok := asFloat(body["productPrice"]); ok {
		in.Price = &p
	}

	p, err := h.svc.Update(c.Request.Context(), in)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	httpx.OK(c, http.StatusOK, "Product updated successfully", gin.H{"data": p})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("productId")); err != nil {
		httpx.Fail(c, err)
		return
	}
	httpx.OK(c, http.StatusOK, "Product and its hosted images deleted successfully", nil)
}

// CheckCreator reports whether the caller is the product's owning admin.
// It is advisory only: the SPA uses it to decide whether to render edit and
// delete controls, and nothing here blocks anyone.
func (h *Handler) CheckCreator(c *gin.Context) {
	principal := middleware.PrincipalFromContext(c)

	p, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	isCreator := principal.IsAdmin() && principal.ID == p.AdminID

	var creatorName interface{}
	role := "user"
	message := "You are not the creator of this product."
	if isCreator {
		creatorName = principal.Name
		role = "creator"
		message = "You are the creator of this product."
	}

	httpx.OK(c, http.StatusOK, message, gin.H{
		"isCreator":   isCreator,
		"role":        role,
		"creatorName": creatorName,
		"product": gin.H{
			"id":      p.ID.Hex(),
			"name":    p.Name,
			"adminId": p.AdminID,
		},
		"user": gin.H{
			"id":   principal.ID,
			"name": principal.Name,
		},
	})
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}
