package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/orderplacement/internal/adapters/config"
	"github.com/rafaelleal24/orderplacement/internal/adapters/http/controllers"
	"github.com/rafaelleal24/orderplacement/internal/adapters/http/middleware"
	"github.com/rafaelleal24/orderplacement/internal/core/logger"
	"github.com/swaggo/swag"
)

type Router struct {
	healthController   *controllers.HealthController
	orderController    *controllers.OrderController
	productController  *controllers.ProductController
	customerController *controllers.CustomerController
	rateLimiter        middleware.RateLimiter
	rateLimit          config.RateLimitConfig
}

func NewRouter(
	healthController *controllers.HealthController,
	orderController *controllers.OrderController,
	productController *controllers.ProductController,
	customerController *controllers.CustomerController,
	rateLimiter middleware.RateLimiter,
	rateLimit config.RateLimitConfig,
) *Router {
	return &Router{
		healthController:   healthController,
		orderController:    orderController,
		productController:  productController,
		customerController: customerController,
		rateLimiter:        rateLimiter,
		rateLimit:          rateLimit,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.GET("/swagger/doc.json", serveSwaggerDoc)

	v1Group := router.Group("/api/v1")
	v1Group.Use(middleware.RequestID(), middleware.LogRequest())
	{
		v1Group.GET("/health", r.healthController.Health)

		v1Group.POST("/orders",
			middleware.RateLimit(r.rateLimiter, r.rateLimit.Requests, r.rateLimit.Window),
			r.orderController.PlaceOrder)
		v1Group.GET("/orders/:id", r.orderController.GetOrderByID)

		v1Group.POST("/customers", r.customerController.CreateCustomer)
		v1Group.GET("/customers/:id", r.customerController.GetCustomer)
		v1Group.GET("/customers/:id/orders", r.orderController.GetCustomerOrders)

		v1Group.POST("/products", r.productController.CreateProduct)
		v1Group.GET("/products", r.productController.GetAll)
		v1Group.PATCH("/products/:id/price", r.productController.UpdatePrice)
	}
}

func serveSwaggerDoc(c *gin.Context) {
	doc, err := swag.ReadDoc()
	if err != nil {
		logger.Error(c.Request.Context(), "swagger: read doc failed", err, nil)
		c.Status(http.StatusNotFound)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}

func (r *Router) ListenAndServe(ctx context.Context, config config.HTTPConfig) error {
	engine := gin.New()
	engine.Use(gin.Recovery())
	r.SetupRoutes(engine)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", config.BindInterface, config.Port),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(shutdownCtx, "http: shutdown failed", err, nil)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
