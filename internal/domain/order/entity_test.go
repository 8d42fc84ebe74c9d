package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceOrder(t *testing.T) {
	o, err := NewServiceOrder("cust-1", "celular", "Samsung", "Galaxy S23", "não liga")
	require.NoError(t, err)

	assert.Empty(t, o.ID, "o número da OS é atribuído pelo repositório")
	assert.Equal(t, StatusPendingApproval, o.Status)
	assert.Equal(t, "Galaxy S23", o.DeviceModel)
	assert.False(t, o.CreatedAt.IsZero())
	assert.Equal(t, o.CreatedAt, o.UpdatedAt)
}

func TestNewServiceOrderValidation(t *testing.T) {
	_, err := NewServiceOrder("", "celular", "", "Galaxy S23", "não liga")
	assert.ErrorIs(t, err, ErrEmptyCustomerID)

	_, err = NewServiceOrder("cust-1", "", "", "Galaxy S23", "não liga")
	assert.ErrorIs(t, err, ErrEmptyDeviceType)

	_, err = NewServiceOrder("cust-1", "celular", "", "", "não liga")
	assert.ErrorIs(t, err, ErrEmptyDeviceModel)

	_, err = NewServiceOrder("cust-1", "celular", "", "Galaxy S23", "   ")
	assert.ErrorIs(t, err, ErrEmptyReportedIssue)
}

func TestFormatID(t *testing.T) {
	assert.Equal(t, "OS-2025-001", FormatID(2025, 1))
	assert.Equal(t, "OS-2025-042", FormatID(2025, 42))
	assert.Equal(t, "OS-2026-100", FormatID(2026, 100))
}

func TestValidateID(t *testing.T) {
	assert.NoError(t, ValidateID("OS-2025-001"))
	assert.ErrorIs(t, ValidateID("OS-25-001"), ErrInvalidOrderID)
	assert.ErrorIs(t, ValidateID("os-2025-001"), ErrInvalidOrderID)
	assert.ErrorIs(t, ValidateID("2025-001"), ErrInvalidOrderID)
	assert.ErrorIs(t, ValidateID(""), ErrInvalidOrderID)
}

func TestApplyPatch(t *testing.T) {
	o, err := NewServiceOrder("cust-1", "notebook", "Dell", "Inspiron 15", "tela quebrada")
	require.NoError(t, err)

	diagnosis := "display trincado, flat ok"
	amount := decimal.NewFromFloat(450.00)
	tech := "tech-1"

	before := o.UpdatedAt

	err = o.Apply(Patch{
		TechnicalDiagnosis: &diagnosis,
		TotalAmount:        &amount,
		TechnicianID:       &tech,
	})
	require.NoError(t, err)

	assert.Equal(t, diagnosis, o.TechnicalDiagnosis)
	require.NotNil(t, o.TotalAmount)
	assert.True(t, o.TotalAmount.Equal(amount))
	assert.Equal(t, "tech-1", o.TechnicianID)
	assert.False(t, o.UpdatedAt.Before(before))

	// Campos não enviados são mantidos
	assert.Equal(t, "tela quebrada", o.ReportedIssue)
	assert.Equal(t, "Inspiron 15", o.DeviceModel)
}

func TestApplyPatchValidation(t *testing.T) {
	o, err := NewServiceOrder("cust-1", "notebook", "Dell", "Inspiron 15", "tela quebrada")
	require.NoError(t, err)

	empty := "  "
	assert.ErrorIs(t, o.Apply(Patch{ReportedIssue: &empty}), ErrEmptyReportedIssue)

	negative := decimal.NewFromFloat(-1)
	assert.ErrorIs(t, o.Apply(Patch{TotalAmount: &negative}), ErrInvalidAmount)

	// Nada foi alterado pela tentativa inválida
	assert.Equal(t, "tela quebrada", o.ReportedIssue)
	assert.Nil(t, o.TotalAmount)
}

func TestClone(t *testing.T) {
	amount := decimal.NewFromFloat(120.50)
	o, err := NewServiceOrder("cust-1", "celular", "Apple", "iPhone 13", "bateria viciada")
	require.NoError(t, err)
	o.TotalAmount = &amount
	o.PhotosBefore = []string{"a.jpg"}

	clone := o.Clone()
	clone.DeviceModel = "iPhone 14"
	*clone.TotalAmount = decimal.NewFromFloat(999)
	clone.PhotosBefore[0] = "b.jpg"

	assert.Equal(t, "iPhone 13", o.DeviceModel)
	assert.True(t, o.TotalAmount.Equal(amount))
	assert.Equal(t, "a.jpg", o.PhotosBefore[0])
}
