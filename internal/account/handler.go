package account

import (
	"net/http"

	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/auth"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/httpx"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc          Service
	masterNumber string
}

func NewHandler(svc Service, masterNumber string) *Handler {
	return &Handler{svc: svc, masterNumber: masterNumber}
}

type loginRequest struct {
	Number   string `json:"number"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Fail(c, ErrMissingCredentials)
		return
	}

	session, err := h.svc.Login(c.Request.Context(), req.Number, req.Password)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	auth.SetSessionCookie(c.Writer, session.Token)

	switch session.Rank {
	case auth.RankMaster:
		httpx.OK(c, http.StatusOK, "Master login successful", gin.H{
			"rank":  session.Rank,
			"token": session.Token,
		})
	case auth.RankAdmin:
		httpx.OK(c, http.StatusOK, "Admin login successful", gin.H{
			"rank":     session.Rank,
			"adminId":  session.ID,
			"name":     session.Name,
			"category": session.Category,
			"token":    session.Token,
		})
	default:
		httpx.OK(c, http.StatusOK, "User login successful", gin.H{
			"rank":   session.Rank,
			"userId": session.ID,
			"name":   session.Name,
			"token":  session.Token,
		})
	}
}

type userSignupRequest struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Password string `json:"password"`
	Category string `json:"category"`
	Number   string `json:"number"`
}

func (h *Handler) UserSignup(c *gin.Context) {
	var req userSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Fail(c, ErrMissingFields)
		return
	}

	token, user, err := h.svc.UserSignup(c.Request.Context(), UserSignupInput(req))
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	auth.SetSessionCookie(c.Writer, token)

	httpx.OK(c, http.StatusCreated, "Signup successful!", gin.H{
		"user": gin.H{
			"id":       user.ID.Hex(),
			"name":     user.Name,
			"number":   user.Number,
			"category": user.Category,
			"rank":     user.Rank,
		},
		"token": token,
	})
}

type adminSignupRequest struct {
	AdminName     string `json:"adminName"`
	AdminAddress  string `json:"adminAddress"`
	AdminPassword string `json:"adminPassword"`
	Category      string `json:"category"`
	AdminNumber   string `json:"adminNumber"`
}

func (h *Handler) AdminSignup(c *gin.Context) {
	var req adminSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Fail(c, ErrMissingFields)
		return
	}

	admin, err := h.svc.AdminSignup(c.Request.Context(), AdminSignupInput{
		Name:     req.AdminName,
		Address:  req.AdminAddress,
		Password: req.AdminPassword,
		Category: req.Category,
		Number:   req.AdminNumber,
	})
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	// no auto-login for admins
	httpx.OK(c, http.StatusCreated, "Admin created successfully", gin.H{
		"admin": gin.H{
			"id":          admin.ID.Hex(),
			"adminName":   admin.Name,
			"adminNumber": admin.Number,
			"rank":        admin.Rank,
		},
	})
}

func (h *Handler) Logout(c *gin.Context) {
	auth.ClearSessionCookie(c.Writer)
	httpx.OK(c, http.StatusOK, "Logout successful", gin.H{"loggedOut": true})
}

// Me answers /getRole: the resolved principal, or guest when the request
// carries no usable session.
func (h *Handler) Me(c *gin.Context) {
	principal := middleware.PrincipalFromContext(c)
	if principal == nil {
		c.JSON(http.StatusOK, gin.H{"rank": "guest"})
		return
	}

	if principal.IsMaster() {
		c.JSON(http.StatusOK, gin.H{
			"id":     "master",
			"rank":   auth.RankMaster,
			"name":   "Master User",
			"number": h.masterNumber,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       principal.ID,
		"rank":     principal.Rank,
		"name":     principal.Name,
		"number":   principal.Number,
		"address":  principal.Address,
		"category": principal.Category,
	})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	principal := middleware.PrincipalFromContext(c)

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil || len(updates) == 0 {
		httpx.Fail(c, ErrNoProfileUpdate)
		return
	}

	updated, err := h.svc.UpdateProfile(c.Request.Context(), principal, c.Param("id"), updates)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	httpx.OK(c, http.StatusOK, "Profile updated successfully", gin.H{"data": updated})
}
