package dto

import (
	"time"

	"github.com/hugohenrick/erp-assistencia/internal/domain/order"
	"github.com/shopspring/decimal"
)

// OrderRequest representa a requisição de criação de ordem de serviço
type OrderRequest struct {
	CustomerID    string `json:"customer_id" binding:"required"`
	DeviceType    string `json:"device_type" binding:"required"`
	DeviceBrand   string `json:"device_brand"`
	DeviceModel   string `json:"device_model" binding:"required"`
	DeviceSerial  string `json:"device_serial"`
	ReportedIssue string `json:"reported_issue" binding:"required"`
}

// OrderUpdateRequest representa a atualização parcial de uma OS.
// Campos omitidos são mantidos; status e número da OS não são
// atualizáveis por aqui.
type OrderUpdateRequest struct {
	DeviceType         *string          `json:"device_type"`
	DeviceBrand        *string          `json:"device_brand"`
	DeviceModel        *string          `json:"device_model"`
	DeviceSerial       *string          `json:"device_serial"`
	ReportedIssue      *string          `json:"reported_issue"`
	TechnicalDiagnosis *string          `json:"technical_diagnosis"`
	SolutionApplied    *string          `json:"solution_applied"`
	TotalAmount        *decimal.Decimal `json:"total_amount"`
	TechnicianID       *string          `json:"technician_id"`
	PhotosBefore       []string         `json:"photos_before"`
	PhotosAfter        []string         `json:"photos_after"`
}

// ToPatch converte a requisição para o patch do domínio
func (r OrderUpdateRequest) ToPatch() order.Patch {
	return order.Patch{
		DeviceType:         r.DeviceType,
		DeviceBrand:        r.DeviceBrand,
		DeviceModel:        r.DeviceModel,
		DeviceSerial:       r.DeviceSerial,
		ReportedIssue:      r.ReportedIssue,
		TechnicalDiagnosis: r.TechnicalDiagnosis,
		SolutionApplied:    r.SolutionApplied,
		TotalAmount:        r.TotalAmount,
		TechnicianID:       r.TechnicianID,
		PhotosBefore:       r.PhotosBefore,
		PhotosAfter:        r.PhotosAfter,
	}
}

// StatusUpdateRequest representa a requisição de transição de status
type StatusUpdateRequest struct {
	Target string `json:"target" binding:"required"`
}

// OrderResponse representa a resposta de ordem de serviço
type OrderResponse struct {
	ID                 string            `json:"id"`
	CustomerID         string            `json:"customer_id"`
	Customer           *CustomerResponse `json:"customer,omitempty"`
	DeviceType         string            `json:"device_type"`
	DeviceBrand        string            `json:"device_brand"`
	DeviceModel        string            `json:"device_model"`
	DeviceSerial       string            `json:"device_serial,omitempty"`
	ReportedIssue      string            `json:"reported_issue"`
	TechnicalDiagnosis string            `json:"technical_diagnosis,omitempty"`
	SolutionApplied    string            `json:"solution_applied,omitempty"`
	Status             order.Status      `json:"status"`
	StatusLabel        string            `json:"status_label"`
	TotalAmount        *decimal.Decimal  `json:"total_amount,omitempty"`
	TechnicianID       string            `json:"technician_id,omitempty"`
	PhotosBefore       []string          `json:"photos_before,omitempty"`
	PhotosAfter        []string          `json:"photos_after,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// OrderListResponse representa a resposta de listagem de ordens
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

// ToOrderResponse converte a entidade para o DTO de resposta
func ToOrderResponse(o *order.ServiceOrder) OrderResponse {
	resp := OrderResponse{
		ID:                 o.ID,
		CustomerID:         o.CustomerID,
		DeviceType:         o.DeviceType,
		DeviceBrand:        o.DeviceBrand,
		DeviceModel:        o.DeviceModel,
		DeviceSerial:       o.DeviceSerial,
		ReportedIssue:      o.ReportedIssue,
		TechnicalDiagnosis: o.TechnicalDiagnosis,
		SolutionApplied:    o.SolutionApplied,
		Status:             o.Status,
		StatusLabel:        o.Status.Label(),
		TotalAmount:        o.TotalAmount,
		TechnicianID:       o.TechnicianID,
		PhotosBefore:       o.PhotosBefore,
		PhotosAfter:        o.PhotosAfter,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}

	if o.Customer != nil {
		customer := ToCustomerResponse(o.Customer)
		resp.Customer = &customer
	}

	return resp
}

// ToOrderListResponse converte uma lista de ordens para o DTO de resposta
func ToOrderListResponse(orders []*order.ServiceOrder) OrderListResponse {
	resp := OrderListResponse{
		Orders: make([]OrderResponse, 0, len(orders)),
		Total:  len(orders),
	}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, ToOrderResponse(o))
	}
	return resp
}
