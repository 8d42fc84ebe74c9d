package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-assistencia/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-assistencia/internal/domain/dashboard"
	financialdomain "github.com/hugohenrick/erp-assistencia/internal/domain/financial"
	orderdomain "github.com/hugohenrick/erp-assistencia/internal/domain/order"
	productdomain "github.com/hugohenrick/erp-assistencia/internal/domain/product"
	"github.com/hugohenrick/erp-assistencia/pkg/logger"
)

// Limite de carga para a agregação do painel
const dashboardFetchLimit = 10000

// DashboardController gerencia as requisições do painel gerencial
type DashboardController struct {
	orderRepo     orderdomain.Repository
	productRepo   productdomain.Repository
	financialRepo financialdomain.Repository
	logger        logger.Logger
}

// NewDashboardController cria uma nova instância de DashboardController
func NewDashboardController(orderRepo orderdomain.Repository, productRepo productdomain.Repository, financialRepo financialdomain.Repository, logger logger.Logger) *DashboardController {
	return &DashboardController{
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		financialRepo: financialRepo,
		logger:        logger,
	}
}

// Stats calcula os indicadores do painel
// @Summary Indicadores do painel
// @Description Calcula contadores de ordens, receita total e mensal, itens com estoque baixo e pagamentos vencidos
// @Tags dashboard
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/stats [get]
func (c *DashboardController) Stats(ctx *gin.Context) {
	orders, err := c.orderRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar ordens para o painel", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao calcular indicadores", err.Error()))
		return
	}

	products, err := c.productRepo.List(ctx, dashboardFetchLimit, 0)
	if err != nil {
		c.logger.Error("erro ao listar produtos para o painel", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao calcular indicadores", err.Error()))
		return
	}

	transactions, err := c.financialRepo.List(ctx, dashboardFetchLimit, 0)
	if err != nil {
		c.logger.Error("erro ao listar lançamentos para o painel", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao calcular indicadores", err.Error()))
		return
	}

	stats := dashboard.ComputeStats(orders, products, transactions, time.Now())

	ctx.JSON(http.StatusOK, dto.ToDashboardStatsResponse(stats))
}
