package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-assistencia/internal/adapter/api/controller"
)

// RegisterAuthRoutes registra as rotas de autenticação e usuários
func RegisterAuthRoutes(r *gin.RouterGroup, authMiddleware gin.HandlerFunc, authController *controller.AuthController) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", authController.Login)

		users := auth.Group("/users")
		users.Use(authMiddleware)
		{
			users.POST("", authController.Register)
		}
	}
}
