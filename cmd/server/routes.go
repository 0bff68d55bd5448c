package main

import (
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/account"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/auth"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/cart"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/category"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/middleware"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/order"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/product"

	"github.com/gin-gonic/gin"
)

type routeDeps struct {
	accounts   *account.Handler
	categories *category.Handler
	products   *product.Handler
	carts      *cart.Handler
	orders     *order.Handler
	resolver   middleware.PrincipalResolver
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")

	// public
	api.POST("/login", d.accounts.Login)
	api.POST("/userSignup", d.accounts.UserSignup)
	api.POST("/adminSignup", d.accounts.AdminSignup)
	api.POST("/logout", d.accounts.Logout)
	api.GET("/getAllCategory", d.categories.GetAllCategories)
	api.GET("/productWithProductType/:productType", d.products.ByType)

	// guest-tolerant
	api.GET("/getRole", middleware.OptionalAuthenticate(d.resolver), d.accounts.Me)

	authed := api.Group("", middleware.Authenticate(d.resolver))
	{
		// taxonomy, master or admin only
		taxonomy := authed.Group("", middleware.RequireRank(auth.RankMaster, auth.RankAdmin))
		taxonomy.POST("/createCategory", d.categories.CreateCategory)
		taxonomy.DELETE("/deleteCategory/:id", d.categories.DeleteCategory)
		taxonomy.POST("/createProductType", d.categories.CreateProductType)
		taxonomy.DELETE("/deleteProductType/:typeId", d.categories.DeleteProductType)

		// product catalogue, admins only
		admin := authed.Group("", middleware.RequireAdmin())
		admin.POST("/productCreate", d.products.Create)
		admin.POST("/updateProduct", d.products.Update)
		admin.DELETE("/deleteProduct/:productId", d.products.Delete)

		// any authenticated principal
		authed.GET("/getAllProductType", d.categories.GetAllProductTypes)
		authed.GET("/homePage", d.categories.HomePage)
		authed.GET("/singleProduct/:id", d.products.Single)
		authed.POST("/check-creator/:id", d.products.CheckCreator)

		authed.POST("/cart", d.carts.Add)
		authed.GET("/cartView", d.carts.View)
		authed.DELETE("/deleteCartProduct/:cartId", d.carts.Remove)

		authed.POST("/orderHistory", d.orders.Create)
		authed.GET("/orderHistory", d.orders.History)
		authed.GET("/profile", d.orders.Profile)
		authed.GET("/viewSingleOrder", d.orders.ViewSingle)
		authed.POST("/updateOrderStatus/:id", d.orders.UpdateStatus)

		authed.PUT("/updateProfile/:id", d.accounts.UpdateProfile)
	}
}
