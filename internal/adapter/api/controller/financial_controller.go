package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-assistencia/internal/adapter/api/dto"
	financialdomain "github.com/hugohenrick/erp-assistencia/internal/domain/financial"
	"github.com/hugohenrick/erp-assistencia/pkg/logger"
)

// FinancialController gerencia as requisições de lançamentos financeiros
type FinancialController struct {
	financialRepo financialdomain.Repository
	logger        logger.Logger
}

// NewFinancialController cria uma nova instância de FinancialController
func NewFinancialController(financialRepo financialdomain.Repository, logger logger.Logger) *FinancialController {
	return &FinancialController{
		financialRepo: financialRepo,
		logger:        logger,
	}
}

// Create cria um novo lançamento financeiro
// @Summary Criar lançamento financeiro
// @Description Cria uma conta a pagar ou a receber com status pendente
// @Tags financial
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param transaction body dto.TransactionRequest true "Dados do lançamento"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /financial [post]
func (c *FinancialController) Create(ctx *gin.Context) {
	var req dto.TransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	transaction, err := financialdomain.NewTransaction(
		financialdomain.Type(req.Type), req.Category, req.Description,
		req.Amount, req.DueDate, req.ReferenceID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar lançamento", err.Error()))
		return
	}
	transaction.PaymentMethod = req.PaymentMethod

	if err := c.financialRepo.Create(ctx, transaction); err != nil {
		c.logger.Error("erro ao persistir lançamento financeiro", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao criar lançamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(transaction, time.Now()))
}

// Get busca um lançamento pelo ID
// @Summary Buscar lançamento financeiro
// @Description Busca um lançamento pelo ID
// @Tags financial
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do lançamento"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /financial/{id} [get]
func (c *FinancialController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	transaction, err := c.financialRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, financialdomain.ErrTransactionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "lançamento não encontrado", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar lançamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(transaction, time.Now()))
}

// List lista os lançamentos financeiros
// @Summary Listar lançamentos financeiros
// @Description Lista os lançamentos com paginação, mais recentes primeiro
// @Tags financial
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.TransactionListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /financial [get]
func (c *FinancialController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	transactions, err := c.financialRepo.List(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar lançamentos financeiros", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar lançamentos", err.Error()))
		return
	}

	total, err := c.financialRepo.Count(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar lançamentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(transactions, total, pagination.Page, pagination.PageSize, time.Now()))
}

// Overdue lista os lançamentos pendentes vencidos
// @Summary Listar lançamentos vencidos
// @Description Lista os lançamentos pendentes com vencimento anterior a agora
// @Tags financial
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.TransactionListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /financial/overdue [get]
func (c *FinancialController) Overdue(ctx *gin.Context) {
	transactions, err := c.financialRepo.FindOverdue(ctx)
	if err != nil {
		c.logger.Error("erro ao listar lançamentos vencidos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar lançamentos vencidos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(transactions, len(transactions), 1, len(transactions), time.Now()))
}

// Pay marca um lançamento como pago
// @Summary Pagar lançamento
// @Description Marca um lançamento pendente como pago na data atual
// @Tags financial
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do lançamento"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /financial/{id}/pay [patch]
func (c *FinancialController) Pay(ctx *gin.Context) {
	id := ctx.Param("id")

	transaction, err := c.financialRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, financialdomain.ErrTransactionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "lançamento não encontrado", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar lançamento", err.Error()))
		return
	}

	if err := transaction.MarkPaid(time.Now(), transaction.PaymentMethod); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "erro ao pagar lançamento", err.Error()))
		return
	}

	if err := c.financialRepo.Update(ctx, transaction); err != nil {
		c.logger.Error("erro ao pagar lançamento", "transaction_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao pagar lançamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(transaction, time.Now()))
}

// Delete remove um lançamento financeiro
// @Summary Remover lançamento financeiro
// @Description Remove um lançamento pelo ID
// @Tags financial
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do lançamento"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /financial/{id} [delete]
func (c *FinancialController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.financialRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, financialdomain.ErrTransactionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "lançamento não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao remover lançamento", "transaction_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover lançamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("lançamento removido com sucesso", nil))
}
