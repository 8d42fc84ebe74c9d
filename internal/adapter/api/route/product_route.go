package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-assistencia/internal/adapter/api/controller"
)

// RegisterProductRoutes registra as rotas do módulo de produtos
func RegisterProductRoutes(r *gin.RouterGroup, authMiddleware gin.HandlerFunc, productController *controller.ProductController) {
	products := r.Group("/products")
	products.Use(authMiddleware)
	{
		products.POST("", productController.Create)
		products.GET("", productController.List)
		products.GET("/low-stock", productController.LowStock)
		products.GET("/:id", productController.Get)
		products.PUT("/:id", productController.Update)
		products.PATCH("/:id/stock", productController.AdjustStock)
		products.DELETE("/:id", productController.Delete)
	}
}
