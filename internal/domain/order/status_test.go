package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus("in_repair")
	require.NoError(t, err)
	assert.Equal(t, StatusInRepair, status)

	_, err = ParseStatus("unknown")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = ParseStatus("")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestStatusNext(t *testing.T) {
	tests := []struct {
		from Status
		want Status
	}{
		{StatusPendingApproval, StatusInAnalysis},
		{StatusInAnalysis, StatusInRepair},
		{StatusInRepair, StatusCompleted},
		{StatusCompleted, StatusAwaitingPickup},
	}

	for _, tt := range tests {
		next, ok := tt.from.Next()
		require.True(t, ok, "status %s deveria ter próximo", tt.from)
		assert.Equal(t, tt.want, next)
	}

	_, ok := StatusAwaitingPickup.Next()
	assert.False(t, ok)
	assert.True(t, StatusAwaitingPickup.IsTerminal())
	assert.False(t, StatusInRepair.IsTerminal())
}

func TestStatusLabels(t *testing.T) {
	assert.Equal(t, "Aguardando Aprovação", StatusPendingApproval.Label())
	assert.Equal(t, "Em Análise", StatusInAnalysis.Label())
	assert.Equal(t, "Em Reparo", StatusInRepair.Label())
	assert.Equal(t, "Finalizado", StatusCompleted.Label())
	assert.Equal(t, "Aguardando Retirada", StatusAwaitingPickup.Label())
}

func TestStatusClassification(t *testing.T) {
	assert.True(t, StatusPendingApproval.IsOpen())
	assert.True(t, StatusInAnalysis.IsOpen())
	assert.True(t, StatusInRepair.IsOpen())
	assert.False(t, StatusCompleted.IsOpen())
	assert.False(t, StatusAwaitingPickup.IsOpen())

	assert.True(t, StatusCompleted.IsConcluded())
	assert.True(t, StatusAwaitingPickup.IsConcluded())
	assert.False(t, StatusInRepair.IsConcluded())
}
