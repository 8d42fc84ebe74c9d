package order

import "errors"

var ErrInvalidStatus = errors.New("status inválido")

// Status representa o estado de uma ordem de serviço
type Status string

const (
	StatusPendingApproval Status = "pending_approval" // Aguardando aprovação do orçamento
	StatusInAnalysis      Status = "in_analysis"      // Em análise técnica
	StatusInRepair        Status = "in_repair"        // Em reparo
	StatusCompleted       Status = "completed"        // Reparo finalizado
	StatusAwaitingPickup  Status = "awaiting_pickup"  // Aguardando retirada pelo cliente
)

// statusLabels mapeia cada status para o rótulo exibido ao usuário
var statusLabels = map[Status]string{
	StatusPendingApproval: "Aguardando Aprovação",
	StatusInAnalysis:      "Em Análise",
	StatusInRepair:        "Em Reparo",
	StatusCompleted:       "Finalizado",
	StatusAwaitingPickup:  "Aguardando Retirada",
}

// statusNext define o único próximo estado permitido no fluxo da OS.
// O fluxo é estritamente linear; awaiting_pickup é terminal e por isso
// não aparece como chave.
var statusNext = map[Status]Status{
	StatusPendingApproval: StatusInAnalysis,
	StatusInAnalysis:      StatusInRepair,
	StatusInRepair:        StatusCompleted,
	StatusCompleted:       StatusAwaitingPickup,
}

// ParseStatus converte uma string em Status, validando contra o enum
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// IsValid verifica se o status pertence ao enum
func (s Status) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label retorna o rótulo do status em português
func (s Status) Label() string {
	return statusLabels[s]
}

// Next retorna o próximo status do fluxo; ok é false quando o status
// é terminal
func (s Status) Next() (Status, bool) {
	next, ok := statusNext[s]
	return next, ok
}

// IsTerminal indica se o status não possui transições de saída
func (s Status) IsTerminal() bool {
	_, ok := statusNext[s]
	return s.IsValid() && !ok
}

// IsOpen indica se a ordem ainda está em andamento
func (s Status) IsOpen() bool {
	return s == StatusPendingApproval || s == StatusInAnalysis || s == StatusInRepair
}

// IsConcluded indica se o reparo foi concluído (finalizado ou aguardando retirada)
func (s Status) IsConcluded() bool {
	return s == StatusCompleted || s == StatusAwaitingPickup
}
