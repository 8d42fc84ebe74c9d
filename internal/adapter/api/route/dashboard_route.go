package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-assistencia/internal/adapter/api/controller"
)

// RegisterDashboardRoutes registra as rotas do painel gerencial
func RegisterDashboardRoutes(r *gin.RouterGroup, authMiddleware gin.HandlerFunc, dashboardController *controller.DashboardController) {
	dashboard := r.Group("/dashboard")
	dashboard.Use(authMiddleware)
	{
		dashboard.GET("/stats", dashboardController.Stats)
	}
}
