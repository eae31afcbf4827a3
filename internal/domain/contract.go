package domain

import (
	"math"
	"regexp"
	"strings"
	"time"
)

// Contract is a rental agreement with a client. Monetary value may come
// from the flat ContractValue or be derived from line items; EffectiveValue
// arbitrates. A negative ID marks a contract created offline and not yet
// accepted by the server.
type Contract struct {
	ID              int32               `json:"id"`
	ClientID        int32               `json:"clienteId"`
	Number          string              `json:"contratoNum,omitempty"`
	IssuedAt        string              `json:"dataHoraEmissao,omitempty"`
	DueDate         string              `json:"dataVenc,omitempty"`
	ContractValue   float64             `json:"contratoValor"`
	WorkSite        string              `json:"obraLocal,omitempty"`
	Period          string              `json:"contratoPeriodo,omitempty"`
	DeliverySite    string              `json:"entregaLocal,omitempty"`
	Responsible     string              `json:"respPedido,omitempty"`
	SignatureStatus SignatureStatus     `json:"status_assinatura,omitempty"`
	SignedAt        string              `json:"data_assinatura,omitempty"`
	ClientName      string              `json:"clienteNome,omitempty"`
	Client          *Client             `json:"cliente,omitempty"`
	Equipment       []ContractEquipment `json:"equipamentos,omitempty"`
	CreatedAt       string              `json:"createdAt,omitempty"`
	UpdatedAt       string              `json:"updatedAt,omitempty"`
}

// ContractEquipment is one equipment line item within a contract.
type ContractEquipment struct {
	ID            int32      `json:"id"`
	ContractID    int32      `json:"contratoId"`
	EquipmentID   int32      `json:"equipamentoId"`
	Quantity      int32      `json:"quantidadeEquip"`
	UnitPrice     float64    `json:"valorUnitario"`
	Total         float64    `json:"valorTotal"`
	FreightValue  float64    `json:"valorFrete"`
	EquipmentName string     `json:"equipamentoNome,omitempty"`
	Equipment     *Equipment `json:"equipamento,omitempty"`
}

// LineItemTotal recomputes quantity times unit price when both factors are
// present. When either factor is missing the stored Total is trusted as-is.
func LineItemTotal(item *ContractEquipment) float64 {
	if item.Quantity != 0 && item.UnitPrice != 0 {
		return float64(item.Quantity) * item.UnitPrice
	}
	return item.Total
}

// LineItemsTotal sums line items, trusting each stored total when present
// and falling back to quantity times unit price.
func LineItemsTotal(items []ContractEquipment) float64 {
	var total float64
	for i := range items {
		if items[i].Total != 0 {
			total += items[i].Total
		} else {
			total += float64(items[i].Quantity) * items[i].UnitPrice
		}
	}
	return total
}

// EffectiveValue is the authoritative contract value: the line-item sum
// when at least one line item exists, else the flat declared value. The
// two are never mixed.
func EffectiveValue(c *Contract) float64 {
	if len(c.Equipment) > 0 {
		var total float64
		for i := range c.Equipment {
			total += c.Equipment[i].Total
		}
		return total
	}
	return c.ContractValue
}

// ContractStatus is the derived presentation status of a contract.
type ContractStatus string

const (
	ContractSigned       ContractStatus = "ASSINADO"
	ContractRejected     ContractStatus = "REJEITADO"
	ContractOverdue      ContractStatus = "VENCIDO"
	ContractExpiringSoon ContractStatus = "VENCE_EM_BREVE"
	ContractPending      ContractStatus = "PENDENTE"
)

// IsSigned reports whether the contract carries a SIGNED signature status.
func IsSigned(c *Contract) bool {
	return c.SignatureStatus == SignatureSigned
}

// IsRejected reports whether signing was rejected.
func IsRejected(c *Contract) bool {
	return c.SignatureStatus == SignatureRejected
}

// IsPendingSignature treats an absent signature status as pending.
func IsPendingSignature(c *Contract) bool {
	return c.SignatureStatus == SignaturePending || c.SignatureStatus == ""
}

// IsOverdue reports whether the due date lies strictly before the start of
// the current day. Contracts without a parseable due date are never overdue.
func IsOverdue(c *Contract, now time.Time) bool {
	due, ok := parseAPIDate(c.DueDate)
	if !ok {
		return false
	}
	return due.In(now.Location()).Before(startOfDay(now))
}

// DaysToDue returns the whole calendar days until the due date, negative
// once overdue. The second return is false when the contract has no
// parseable due date.
func DaysToDue(c *Contract, now time.Time) (int, bool) {
	due, ok := parseAPIDate(c.DueDate)
	if !ok {
		return 0, false
	}
	diff := startOfDay(due.In(now.Location())).Sub(startOfDay(now))
	return int(math.Ceil(diff.Hours() / 24)), true
}

// ResolveContractStatus derives the single presentation status. The checks
// are priority ordered: a signed contract reports signed even when its due
// date has passed, rejection beats overdue, overdue beats expiring soon
// (due within seven days), and everything else is pending.
func ResolveContractStatus(c *Contract, now time.Time) ContractStatus {
	switch {
	case IsSigned(c):
		return ContractSigned
	case IsRejected(c):
		return ContractRejected
	case IsOverdue(c, now):
		return ContractOverdue
	}
	if days, ok := DaysToDue(c, now); ok && days <= 7 {
		return ContractExpiringSoon
	}
	return ContractPending
}

// StatusBadge is a presentation token pair for a derived status.
type StatusBadge struct {
	Color string `json:"color"`
	Label string `json:"label"`
}

// ContractStatusBadge maps a derived status to its presentation tokens.
// Unknown values render as pending.
func ContractStatusBadge(status ContractStatus) StatusBadge {
	switch status {
	case ContractSigned:
		return StatusBadge{Color: "success", Label: "Assinado"}
	case ContractRejected:
		return StatusBadge{Color: "danger", Label: "Rejeitado"}
	case ContractOverdue:
		return StatusBadge{Color: "danger", Label: "Vencido"}
	case ContractExpiringSoon:
		return StatusBadge{Color: "warning", Label: "Vence em breve"}
	case ContractPending:
		return StatusBadge{Color: "medium", Label: "Pendente"}
	default:
		return StatusBadge{Color: "medium", Label: "Pendente"}
	}
}

// ValidContractDraft reports whether a contract can be submitted: it needs
// a client reference, a positive declared value and a due date.
func ValidContractDraft(c *Contract) bool {
	return c.ClientID != 0 && c.ContractValue > 0 && c.DueDate != ""
}

// AllocateTempContractID generates a negative identifier for a contract
// created while offline, from the wall clock bounded to the int32 range.
// Server-assigned identifiers are always positive, so the two spaces never
// collide. Two allocations within the same millisecond may collide with
// each other; temp IDs never leave the session that created them, so the
// window is accepted.
func AllocateTempContractID(now time.Time) int32 {
	return -int32(now.UnixMilli()%int64(math.MaxInt32) + 1)
}

// IsTempID reports whether an identifier is a local temporary one.
func IsTempID(id int32) bool {
	return id < 0
}

// ResolveClientName prefers the denormalized name, then the hydrated
// client record.
func ResolveClientName(c *Contract) string {
	if c.ClientName != "" {
		return c.ClientName
	}
	if c.Client != nil && c.Client.Name != "" {
		return c.Client.Name
	}
	return "Cliente não encontrado"
}

var bareNumber = regexp.MustCompile(`^\d+$`)

// FormatPeriod normalizes the free-form contract period for display: a
// bare day count gains the "dias" suffix, anything already spelled out
// passes through.
func FormatPeriod(c *Contract) string {
	p := c.Period
	if p == "" {
		return ""
	}
	if strings.Contains(p, " ") {
		return p
	}
	if bareNumber.MatchString(p) {
		return p + " dias"
	}
	return p
}
