package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nush-eats/storefront-app/controllers"
	"github.com/nush-eats/storefront-app/middlewares"
	"github.com/nush-eats/storefront-app/notifier"
)

func SetupRouter(db *gorm.DB, hub *notifier.Hub) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	menuCtrl := controllers.NewMenuController(db)
	contactCtrl := controllers.NewContactController(db)
	orderCtrl := controllers.NewOrderController(db, hub)
	adminCtrl := controllers.NewAdminController(db)
	wsCtrl := controllers.NewWSController(hub)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	api.GET("/menu", menuCtrl.GetMenu)
	api.POST("/contact", contactCtrl.CreateMessage)
	api.POST("/orders", orderCtrl.CreateOrder)

	api.POST("/admin/login", middlewares.NewStrictRateLimiter(), adminCtrl.Login)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := api.Group("")
	auth.Use(middlewares.AuthMiddleware())

	auth.GET("/orders", orderCtrl.GetAllOrders)
	auth.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)

	auth.POST("/admin/logout", adminCtrl.Logout)
	auth.GET("/admin/me", adminCtrl.Me)
	auth.GET("/admin/stats", adminCtrl.GetDashboardStats)
	auth.GET("/admin/reports/sales", adminCtrl.ExportSalesReport)

	// Push channel for admin observers, token via query param.
	r.GET("/ws", middlewares.WebSocketAuthMiddleware(), wsCtrl.Handle)

	return r
}
