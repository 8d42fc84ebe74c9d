package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-assistencia/internal/adapter/api/dto"
	customerdomain "github.com/hugohenrick/erp-assistencia/internal/domain/customer"
	orderdomain "github.com/hugohenrick/erp-assistencia/internal/domain/order"
	userdomain "github.com/hugohenrick/erp-assistencia/internal/domain/user"
	"github.com/hugohenrick/erp-assistencia/pkg/logger"
	"github.com/hugohenrick/erp-assistencia/pkg/session"
)

// OrderController gerencia as requisições relacionadas a ordens de serviço
type OrderController struct {
	orderRepo    orderdomain.Repository
	customerRepo customerdomain.Repository
	workflow     *orderdomain.Workflow
	logger       logger.Logger
}

// NewOrderController cria uma nova instância de OrderController
func NewOrderController(orderRepo orderdomain.Repository, customerRepo customerdomain.Repository, workflow *orderdomain.Workflow, logger logger.Logger) *OrderController {
	return &OrderController{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		workflow:     workflow,
		logger:       logger,
	}
}

// Create cria uma nova ordem de serviço
// @Summary Criar ordem de serviço
// @Description Abre uma nova OS com status aguardando aprovação e número sequencial OS-YYYY-NNN
// @Tags orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param order body dto.OrderRequest true "Dados da ordem de serviço"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders [post]
func (c *OrderController) Create(ctx *gin.Context) {
	var req dto.OrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	// O cliente precisa existir antes de abrir a OS
	if _, err := c.customerRepo.FindByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, customerdomain.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar cliente", err.Error()))
		return
	}

	order, err := orderdomain.NewServiceOrder(req.CustomerID, req.DeviceType, req.DeviceBrand, req.DeviceModel, req.ReportedIssue)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar ordem de serviço", err.Error()))
		return
	}
	order.DeviceSerial = req.DeviceSerial

	// Técnico autenticado já fica responsável pela OS que abriu
	if actor := session.ActorFrom(ctx); actor.Role == string(userdomain.RoleTechnician) {
		order.TechnicianID = actor.UserID
	}

	if err := c.orderRepo.Create(ctx, order); err != nil {
		if errors.Is(err, orderdomain.ErrDuplicateOrder) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "ordem de serviço já existe", err.Error()))
			return
		}
		c.logger.Error("erro ao persistir ordem de serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao criar ordem de serviço", err.Error()))
		return
	}

	created, err := c.orderRepo.FindByID(ctx, order.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar ordem de serviço", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToOrderResponse(created))
}

// Get busca uma ordem de serviço pelo número
// @Summary Buscar ordem de serviço
// @Description Busca uma OS pelo número (ex: OS-2025-001)
// @Tags orders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Número da OS"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/{id} [get]
func (c *OrderController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	order, err := c.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, orderdomain.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "ordem de serviço não encontrada", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar ordem de serviço", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// List lista as ordens de serviço
// @Summary Listar ordens de serviço
// @Description Lista todas as ordens de serviço, mais recentes primeiro
// @Tags orders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.OrderListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders [get]
func (c *OrderController) List(ctx *gin.Context) {
	orders, err := c.orderRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar ordens de serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar ordens de serviço", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderListResponse(orders))
}

// Search busca ordens de serviço por texto e status
// @Summary Buscar ordens de serviço
// @Description Filtra por texto (número da OS, modelo do aparelho ou nome do cliente) e status. Os filtros são combinados com E
// @Tags orders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param q query string false "Texto de busca"
// @Param status query string false "Status (ou 'all' para todos)"
// @Success 200 {object} dto.OrderListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/search [get]
func (c *OrderController) Search(ctx *gin.Context) {
	query := orderdomain.Query{
		Text:   ctx.Query("q"),
		Status: ctx.Query("status"),
	}

	orders, err := c.orderRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar ordens de serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar ordens de serviço", err.Error()))
		return
	}

	result, err := orderdomain.Search(orders, query)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "filtro inválido", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderListResponse(result))
}

// Update atualiza uma ordem de serviço
// @Summary Atualizar ordem de serviço
// @Description Atualização parcial: campos omitidos são mantidos. Status e número da OS não são atualizáveis por aqui
// @Tags orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Número da OS"
// @Param order body dto.OrderUpdateRequest true "Campos a atualizar"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/{id} [put]
func (c *OrderController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.OrderUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	order, err := c.orderRepo.Update(ctx, id, req.ToPatch())
	if err != nil {
		switch {
		case errors.Is(err, orderdomain.ErrOrderNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "ordem de serviço não encontrada", err.Error()))
		case errors.Is(err, orderdomain.ErrEmptyReportedIssue),
			errors.Is(err, orderdomain.ErrInvalidAmount):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar ordem de serviço", err.Error()))
		default:
			c.logger.Error("erro ao atualizar ordem de serviço", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar ordem de serviço", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// UpdateStatus avança o status de uma ordem de serviço
// @Summary Transicionar status
// @Description Avança a OS para o próximo status do fluxo. Transições que pulam etapas são rejeitadas; repetir o status atual é aceito sem efeito
// @Tags orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Número da OS"
// @Param status body dto.StatusUpdateRequest true "Status de destino"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/{id}/status [patch]
func (c *OrderController) UpdateStatus(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.StatusUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	actor := session.ActorFrom(ctx)

	order, err := c.workflow.Transition(ctx, id, orderdomain.Status(req.Target), actor.UserID)
	if err != nil {
		switch {
		case errors.Is(err, orderdomain.ErrInvalidStatus):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "status inválido", err.Error()))
		case errors.Is(err, orderdomain.ErrOrderNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "ordem de serviço não encontrada", err.Error()))
		case errors.Is(err, orderdomain.ErrInvalidTransition):
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "transição de status inválida", err.Error()))
		default:
			c.logger.Error("erro ao transicionar status", "order_id", id, "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao transicionar status", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// Delete remove uma ordem de serviço
// @Summary Remover ordem de serviço
// @Description Remove uma OS. Remover um número inexistente não é erro
// @Tags orders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Número da OS"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/{id} [delete]
func (c *OrderController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.orderRepo.Delete(ctx, id); err != nil {
		c.logger.Error("erro ao remover ordem de serviço", "order_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover ordem de serviço", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("ordem de serviço removida com sucesso", nil))
}
