package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-assistencia/internal/adapter/api/controller"
)

// RegisterSaleRoutes registra as rotas do módulo de vendas
func RegisterSaleRoutes(r *gin.RouterGroup, authMiddleware gin.HandlerFunc, saleController *controller.SaleController) {
	sales := r.Group("/sales")
	sales.Use(authMiddleware)
	{
		sales.POST("", saleController.Create)
		sales.GET("", saleController.List)
		sales.GET("/:id", saleController.Get)
		sales.PATCH("/:id/cancel", saleController.Cancel)
	}
}
