package main

import (
	"context"

	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/account"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/cart"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/category"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/config"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/db"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/logger"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/media"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/middleware"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/order"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/product"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	client, cols := db.InitDB(cfg)
	defer client.Disconnect(context.Background())

	var uploader media.Uploader
	if cfg.CloudinaryURL != "" {
		cld, err := media.NewCloudinary(cfg.CloudinaryURL)
		if err != nil {
			log.Fatal("cloudinary init failed", zap.Error(err))
		}
		uploader = cld
	} else {
		log.Warn("CLOUDINARY_URL not set, image uploads disabled")
	}

	accountRepo := account.NewRepository(cols)
	accountSvc := account.NewService(accountRepo, account.MasterCredentials{
		Number:   cfg.MasterNumber,
		Password: cfg.MasterPassword,
	})

	categoryRepo := category.NewRepository(cols)
	categorySvc := category.NewService(categoryRepo)

	productRepo := product.NewRepository(cols)
	productSvc := product.NewService(productRepo, uploader)

	cartRepo := cart.NewRepository(cols)
	cartSvc := cart.NewService(cartRepo, productRepo)

	orderRepo := order.NewRepository(cols)
	orderSvc := order.NewService(orderRepo, cartRepo)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(logger.RequestIDMiddleware())
	r.Use(logger.LoggingMiddleware())
	r.Use(middleware.RateLimit())

	registerRoutes(r, routeDeps{
		accounts:   account.NewHandler(accountSvc, cfg.MasterNumber),
		categories: category.NewHandler(categorySvc),
		products:   product.NewHandler(productSvc),
		carts:      cart.NewHandler(cartSvc),
		orders:     order.NewHandler(orderSvc),
		resolver:   accountSvc,
	})

	log.Info("server starting", zap.String("port", cfg.AppPort))
	if err := r.Run(":" + cfg.AppPort); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
