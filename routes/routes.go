package routes

import (
	"bookstore/controllers"
	"bookstore/logger"
	"bookstore/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Handlers struct {
	Orders          *controllers.OrderController
	CustomerDetails *controllers.CustomerDetailsController
	DB              controllers.Pinger
}

type Options struct {
	Auth           middleware.AuthConfig
	AllowedOrigins []string
	Logger         zerolog.Logger
}

func NewRouter(h Handlers, opts Options) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies(nil)
	RegisterRoutes(r, h, opts)
	return r
}

func RegisterRoutes(r *gin.Engine, h Handlers, opts Options) {
	r.Use(logger.RequestLogger(opts.Logger), middleware.Recovery(), middleware.CORS(opts.AllowedOrigins))

	r.GET("/health", controllers.Health(h.DB))

	api := r.Group("/api")
	api.Use(middleware.AuthFailures(), middleware.Authenticate(opts.Auth))
	{
		order := api.Group("/order")
		{
			order.POST("", h.Orders.AddToOrder)
			order.GET("", h.Orders.GetAllOrders)
			order.DELETE("/:orderId", h.Orders.DeleteOrder)
		}

		details := api.Group("/customerDetails")
		{
			details.POST("", h.CustomerDetails.Add)
			details.GET("", h.CustomerDetails.List)
			details.GET("/:addressId", h.CustomerDetails.Get)
			details.PATCH("/:addressId", h.CustomerDetails.Update)
			details.DELETE("/:addressId", h.CustomerDetails.Delete)
		}
	}
}
