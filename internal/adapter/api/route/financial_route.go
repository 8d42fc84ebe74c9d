package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-assistencia/internal/adapter/api/controller"
)

// RegisterFinancialRoutes registra as rotas do módulo financeiro
func RegisterFinancialRoutes(r *gin.RouterGroup, authMiddleware gin.HandlerFunc, financialController *controller.FinancialController) {
	financial := r.Group("/financial")
	financial.Use(authMiddleware)
	{
		financial.POST("", financialController.Create)
		financial.GET("", financialController.List)
		financial.GET("/overdue", financialController.Overdue)
		financial.GET("/:id", financialController.Get)
		financial.PATCH("/:id/pay", financialController.Pay)
		financial.DELETE("/:id", financialController.Delete)
	}
}
