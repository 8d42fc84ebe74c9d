package order

import (
	"testing"

	"github.com/hugohenrick/erp-assistencia/internal/domain/customer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchFixture(t *testing.T) []*ServiceOrder {
	t.Helper()

	maria := &customer.Customer{ID: "cust-1", Name: "Maria Souza"}
	joao := &customer.Customer{ID: "cust-2", Name: "João Lima"}

	build := func(id string, c *customer.Customer, model string, status Status) *ServiceOrder {
		o, err := NewServiceOrder(c.ID, "celular", "", model, "defeito relatado")
		require.NoError(t, err)
		o.ID = id
		o.Customer = c
		o.Status = status
		return o
	}

	return []*ServiceOrder{
		build("OS-2025-003", joao, "Galaxy S23", StatusInRepair),
		build("OS-2025-002", maria, "iPhone 13", StatusInRepair),
		build("OS-2025-001", maria, "Moto G84", StatusCompleted),
	}
}

func TestSearchByCustomerNameAndStatus(t *testing.T) {
	orders := searchFixture(t)

	result, err := Search(orders, Query{Text: "Maria", Status: "in_repair"})
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, "OS-2025-002", result[0].ID)
}

func TestSearchEmptyQueryReturnsAll(t *testing.T) {
	orders := searchFixture(t)

	result, err := Search(orders, Query{})
	require.NoError(t, err)
	assert.Len(t, result, len(orders))

	result, err = Search(orders, Query{Status: StatusFilterAll})
	require.NoError(t, err)
	assert.Len(t, result, len(orders))
}

func TestSearchByOrderID(t *testing.T) {
	orders := searchFixture(t)

	result, err := Search(orders, Query{Text: "os-2025-001"})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "OS-2025-001", result[0].ID)
}

func TestSearchByDeviceModel(t *testing.T) {
	orders := searchFixture(t)

	result, err := Search(orders, Query{Text: "galaxy"})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "OS-2025-003", result[0].ID)
}

func TestSearchInvalidStatus(t *testing.T) {
	orders := searchFixture(t)

	_, err := Search(orders, Query{Status: "finished"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestSearchPreservesOrdering(t *testing.T) {
	orders := searchFixture(t)

	result, err := Search(orders, Query{Status: "in_repair"})
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.Equal(t, "OS-2025-003", result[0].ID)
	assert.Equal(t, "OS-2025-002", result[1].ID)
}

func TestSearchNarrowsMonotonically(t *testing.T) {
	orders := searchFixture(t)

	all, err := Search(orders, Query{Text: "maria"})
	require.NoError(t, err)

	narrowed, err := Search(orders, Query{Text: "maria", Status: "completed"})
	require.NoError(t, err)

	assert.LessOrEqual(t, len(narrowed), len(all))
	for _, o := range narrowed {
		assert.Contains(t, all, o)
	}
}

func TestSearchTextTrimmedAndCaseInsensitive(t *testing.T) {
	orders := searchFixture(t)

	result, err := Search(orders, Query{Text: "  MARIA  "})
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestSearchNoMatches(t *testing.T) {
	orders := searchFixture(t)

	result, err := Search(orders, Query{Text: "inexistente"})
	require.NoError(t, err)
	assert.Empty(t, result)
}
