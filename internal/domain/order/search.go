package order

import (
	"fmt"
	"strings"
)

// StatusFilterAll é o valor de filtro que aceita qualquer status
const StatusFilterAll = "all"

// Query representa os filtros de busca de ordens de serviço
type Query struct {
	Text   string // busca por cliente, modelo do dispositivo ou número da OS
	Status string // um status do enum ou "all"
}

// Search filtra as ordens pela query: o texto é comparado sem distinção
// de maiúsculas contra o nome do cliente, o modelo do dispositivo e o
// número da OS; o status exige igualdade exata. Os dois predicados são
// combinados com E lógico e a ordenação de entrada é preservada.
func Search(orders []*ServiceOrder, q Query) ([]*ServiceOrder, error) {
	var status Status
	if q.Status != "" && q.Status != StatusFilterAll {
		parsed, err := ParseStatus(q.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, q.Status)
		}
		status = parsed
	}

	text := strings.ToLower(strings.TrimSpace(q.Text))

	result := make([]*ServiceOrder, 0, len(orders))
	for _, o := range orders {
		if status != "" && o.Status != status {
			continue
		}
		if text != "" && !matchesText(o, text) {
			continue
		}
		result = append(result, o)
	}

	return result, nil
}

func matchesText(o *ServiceOrder, text string) bool {
	if strings.Contains(strings.ToLower(o.ID), text) {
		return true
	}
	if strings.Contains(strings.ToLower(o.DeviceModel), text) {
		return true
	}
	if o.Customer != nil && strings.Contains(strings.ToLower(o.Customer.Name), text) {
		return true
	}
	return false
}
