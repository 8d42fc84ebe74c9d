package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-assistencia/internal/adapter/api/controller"
)

// RegisterOrderRoutes registra as rotas do módulo de ordens de serviço
func RegisterOrderRoutes(r *gin.RouterGroup, authMiddleware gin.HandlerFunc, orderController *controller.OrderController) {
	orders := r.Group("/orders")
	orders.Use(authMiddleware)
	{
		orders.POST("", orderController.Create)
		orders.GET("", orderController.List)
		orders.GET("/search", orderController.Search)
		orders.GET("/:id", orderController.Get)
		orders.PUT("/:id", orderController.Update)
		orders.PATCH("/:id/status", orderController.UpdateStatus)
		orders.DELETE("/:id", orderController.Delete)
	}
}
