package financial

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransaction(t *testing.T, due time.Time) *Transaction {
	t.Helper()
	tx, err := NewTransaction(TypeIncome, "serviços", "OS-2025-001 reparo de tela",
		decimal.NewFromFloat(320.00), due, "OS-2025-001")
	require.NoError(t, err)
	return tx
}

func TestNewTransaction(t *testing.T) {
	due := time.Now().Add(72 * time.Hour)
	tx := newTestTransaction(t, due)

	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, StatusPending, tx.Status)
	assert.Nil(t, tx.PaidDate)
	assert.Equal(t, "OS-2025-001", tx.ReferenceID)
}

func TestNewTransactionValidation(t *testing.T) {
	due := time.Now()

	_, err := NewTransaction(Type("transfer"), "", "desc", decimal.Zero, due, "")
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = NewTransaction(TypeExpense, "", "  ", decimal.Zero, due, "")
	assert.ErrorIs(t, err, ErrEmptyDescription)

	_, err = NewTransaction(TypeExpense, "", "desc", decimal.NewFromFloat(-5), due, "")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	pending := newTestTransaction(t, now.Add(-time.Hour))
	assert.True(t, pending.IsOverdue(now))

	future := newTestTransaction(t, now.Add(time.Hour))
	assert.False(t, future.IsOverdue(now))

	paid := newTestTransaction(t, now.Add(-time.Hour))
	require.NoError(t, paid.MarkPaid(now, "pix"))
	assert.False(t, paid.IsOverdue(now), "lançamento pago nunca está vencido")
}

func TestMarkPaid(t *testing.T) {
	now := time.Now()
	tx := newTestTransaction(t, now)

	require.NoError(t, tx.MarkPaid(now, "pix"))
	assert.Equal(t, StatusPaid, tx.Status)
	require.NotNil(t, tx.PaidDate)
	assert.Equal(t, now, *tx.PaidDate)
	assert.Equal(t, "pix", tx.PaymentMethod)

	assert.ErrorIs(t, tx.MarkPaid(now, "pix"), ErrAlreadyPaid)
}
