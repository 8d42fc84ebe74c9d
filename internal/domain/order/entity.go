package order

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/hugohenrick/erp-assistencia/internal/domain/customer"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCustomerID    = errors.New("cliente não informado")
	ErrEmptyDeviceType    = errors.New("tipo de dispositivo não informado")
	ErrEmptyDeviceModel   = errors.New("modelo do dispositivo não informado")
	ErrEmptyReportedIssue = errors.New("problema relatado não pode ser vazio")
	ErrInvalidAmount      = errors.New("valor total não pode ser negativo")
	ErrInvalidOrderID     = errors.New("número de OS inválido")
	ErrOrderNotFound      = errors.New("ordem de serviço não encontrada")
	ErrDuplicateOrder     = errors.New("ordem de serviço com mesmo número já existe")
)

// orderIDPattern valida o formato OS-YYYY-NNN
var orderIDPattern = regexp.MustCompile(`^OS-\d{4}-\d{3}$`)

// ServiceOrder representa uma ordem de serviço (OS) da assistência técnica
type ServiceOrder struct {
	ID                 string             `json:"id"`          // Número da OS (OS-YYYY-NNN)
	CustomerID         string             `json:"customer_id"` // ID do Cliente
	Customer           *customer.Customer `json:"customer,omitempty"`
	DeviceType         string             `json:"device_type"`   // Tipo (celular, notebook, tablet...)
	DeviceBrand        string             `json:"device_brand"`  // Marca
	DeviceModel        string             `json:"device_model"`  // Modelo
	DeviceSerial       string             `json:"device_serial,omitempty"`
	ReportedIssue      string             `json:"reported_issue"` // Problema relatado pelo cliente
	TechnicalDiagnosis string             `json:"technical_diagnosis,omitempty"`
	SolutionApplied    string             `json:"solution_applied,omitempty"`
	Status             Status             `json:"status"`
	TotalAmount        *decimal.Decimal   `json:"total_amount,omitempty"` // Valor orçado/cobrado
	TechnicianID       string             `json:"technician_id,omitempty"`
	PhotosBefore       []string           `json:"photos_before,omitempty"`
	PhotosAfter        []string           `json:"photos_after,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// FormatID monta o número da OS no formato OS-YYYY-NNN
func FormatID(year, sequence int) string {
	return fmt.Sprintf("OS-%04d-%03d", year, sequence)
}

// ValidateID verifica se o número da OS segue o formato OS-YYYY-NNN
func ValidateID(id string) error {
	if !orderIDPattern.MatchString(id) {
		return ErrInvalidOrderID
	}
	return nil
}

// NewServiceOrder cria uma nova ordem de serviço. O número da OS é
// atribuído pelo repositório no momento da gravação.
func NewServiceOrder(customerID, deviceType, deviceBrand, deviceModel, reportedIssue string) (*ServiceOrder, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, ErrEmptyCustomerID
	}

	if strings.TrimSpace(deviceType) == "" {
		return nil, ErrEmptyDeviceType
	}

	if strings.TrimSpace(deviceModel) == "" {
		return nil, ErrEmptyDeviceModel
	}

	if strings.TrimSpace(reportedIssue) == "" {
		return nil, ErrEmptyReportedIssue
	}

	now := time.Now()
	return &ServiceOrder{
		CustomerID:    customerID,
		DeviceType:    deviceType,
		DeviceBrand:   deviceBrand,
		DeviceModel:   deviceModel,
		ReportedIssue: reportedIssue,
		Status:        StatusPendingApproval,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Patch representa uma atualização parcial da OS. Campos nulos são
// mantidos; status e número da OS nunca são alterados por aqui.
type Patch struct {
	DeviceType         *string          `json:"device_type,omitempty"`
	DeviceBrand        *string          `json:"device_brand,omitempty"`
	DeviceModel        *string          `json:"device_model,omitempty"`
	DeviceSerial       *string          `json:"device_serial,omitempty"`
	ReportedIssue      *string          `json:"reported_issue,omitempty"`
	TechnicalDiagnosis *string          `json:"technical_diagnosis,omitempty"`
	SolutionApplied    *string          `json:"solution_applied,omitempty"`
	TotalAmount        *decimal.Decimal `json:"total_amount,omitempty"`
	TechnicianID       *string          `json:"technician_id,omitempty"`
	PhotosBefore       []string         `json:"photos_before,omitempty"`
	PhotosAfter        []string         `json:"photos_after,omitempty"`
}

// Apply aplica a atualização parcial e atualiza updated_at
func (o *ServiceOrder) Apply(p Patch) error {
	if p.ReportedIssue != nil && strings.TrimSpace(*p.ReportedIssue) == "" {
		return ErrEmptyReportedIssue
	}

	if p.DeviceType != nil && strings.TrimSpace(*p.DeviceType) == "" {
		return ErrEmptyDeviceType
	}

	if p.DeviceModel != nil && strings.TrimSpace(*p.DeviceModel) == "" {
		return ErrEmptyDeviceModel
	}

	if p.TotalAmount != nil && p.TotalAmount.IsNegative() {
		return ErrInvalidAmount
	}

	if p.DeviceType != nil {
		o.DeviceType = *p.DeviceType
	}
	if p.DeviceBrand != nil {
		o.DeviceBrand = *p.DeviceBrand
	}
	if p.DeviceModel != nil {
		o.DeviceModel = *p.DeviceModel
	}
	if p.DeviceSerial != nil {
		o.DeviceSerial = *p.DeviceSerial
	}
	if p.ReportedIssue != nil {
		o.ReportedIssue = *p.ReportedIssue
	}
	if p.TechnicalDiagnosis != nil {
		o.TechnicalDiagnosis = *p.TechnicalDiagnosis
	}
	if p.SolutionApplied != nil {
		o.SolutionApplied = *p.SolutionApplied
	}
	if p.TotalAmount != nil {
		amount := *p.TotalAmount
		o.TotalAmount = &amount
	}
	if p.TechnicianID != nil {
		o.TechnicianID = *p.TechnicianID
	}
	if p.PhotosBefore != nil {
		o.PhotosBefore = p.PhotosBefore
	}
	if p.PhotosAfter != nil {
		o.PhotosAfter = p.PhotosAfter
	}

	o.UpdatedAt = time.Now()
	return nil
}

// Clone retorna uma cópia independente da OS
func (o *ServiceOrder) Clone() *ServiceOrder {
	clone := *o
	if o.TotalAmount != nil {
		amount := *o.TotalAmount
		clone.TotalAmount = &amount
	}
	if o.Customer != nil {
		c := *o.Customer
		clone.Customer = &c
	}
	if o.PhotosBefore != nil {
		clone.PhotosBefore = append([]string(nil), o.PhotosBefore...)
	}
	if o.PhotosAfter != nil {
		clone.PhotosAfter = append([]string(nil), o.PhotosAfter...)
	}
	return &clone
}
