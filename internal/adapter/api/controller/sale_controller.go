package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-assistencia/internal/adapter/api/dto"
	productdomain "github.com/hugohenrick/erp-assistencia/internal/domain/product"
	saledomain "github.com/hugohenrick/erp-assistencia/internal/domain/sale"
	"github.com/hugohenrick/erp-assistencia/pkg/logger"
	"github.com/hugohenrick/erp-assistencia/pkg/session"
)

// SaleController gerencia as requisições relacionadas a vendas
type SaleController struct {
	saleRepo    saledomain.Repository
	productRepo productdomain.Repository
	logger      logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(saleRepo saledomain.Repository, productRepo productdomain.Repository, logger logger.Logger) *SaleController {
	return &SaleController{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create registra uma nova venda
// @Summary Registrar venda
// @Description Registra uma venda com seus itens e baixa o estoque. Quando o preço unitário não é informado, usa o preço de venda do produto
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param sale body dto.SaleRequest true "Dados da venda"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	items := make([]saledomain.SaleItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		unitPrice := itemReq.UnitPrice
		if unitPrice.IsZero() {
			product, err := c.productRepo.FindByID(ctx, itemReq.ProductID)
			if err != nil {
				if errors.Is(err, productdomain.ErrProductNotFound) {
					ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", itemReq.ProductID))
					return
				}
				ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
				return
			}
			unitPrice = product.SalePrice
		}

		item, err := saledomain.NewSaleItem(itemReq.ProductID, itemReq.Quantity, unitPrice)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "item de venda inválido", err.Error()))
			return
		}
		items = append(items, item)
	}

	actor := session.ActorFrom(ctx)

	sale, err := saledomain.NewSale(req.CustomerID, items, req.Discount, saledomain.PaymentMethod(req.PaymentMethod), actor.UserID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao registrar venda", err.Error()))
		return
	}

	if err := c.saleRepo.Create(ctx, sale); err != nil {
		if errors.Is(err, productdomain.ErrInsufficientStock) {
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "estoque insuficiente", err.Error()))
			return
		}
		c.logger.Error("erro ao persistir venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao registrar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// Get busca uma venda pelo ID
// @Summary Buscar venda
// @Description Busca uma venda pelo ID, com seus itens
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [get]
func (c *SaleController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	sale, err := c.saleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, saledomain.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// List lista as vendas
// @Summary Listar vendas
// @Description Lista as vendas com paginação, mais recentes primeiro
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.SaleListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	sales, err := c.saleRepo.List(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", err.Error()))
		return
	}

	total, err := c.saleRepo.Count(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales, total, pagination.Page, pagination.PageSize))
}

// Cancel cancela uma venda
// @Summary Cancelar venda
// @Description Marca uma venda como cancelada
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id}/cancel [patch]
func (c *SaleController) Cancel(ctx *gin.Context) {
	id := ctx.Param("id")

	sale, err := c.saleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, saledomain.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	sale.Cancel()

	if err := c.saleRepo.UpdateStatus(ctx, id, sale.Status); err != nil {
		c.logger.Error("erro ao cancelar venda", "sale_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao cancelar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}
