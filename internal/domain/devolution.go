package domain

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"
)

// DevolutionStatus is the state of an equipment return.
type DevolutionStatus string

const (
	DevolutionPending   DevolutionStatus = "PENDENTE"
	DevolutionReturned  DevolutionStatus = "DEVOLVIDO"
	DevolutionDamaged   DevolutionStatus = "AVARIADO"
	DevolutionMissing   DevolutionStatus = "FALTANTE"
	DevolutionProcessed DevolutionStatus = "PROCESSADO"
)

// DefaultPenaltyRate is the per-day late fee as a fraction of the
// equipment value.
const DefaultPenaltyRate = 0.10

// Devolution records the return of rented equipment against a contract.
// Penalty is meaningful only when positive; zero or absent means no
// penalty was applied, which is a normal state, not an error.
type Devolution struct {
	ID              int32            `json:"id"`
	ContractID      int32            `json:"contratoId"`
	ClientID        int32            `json:"clienteId"`
	Number          string           `json:"numeroDeVolucao"`
	Date            string           `json:"dataDeVolucao"`
	EquipmentID     int32            `json:"equipamentoId"`
	Quantity        int32            `json:"quantidadeDevolvida"`
	Status          DevolutionStatus `json:"status"`
	Notes           string           `json:"observacoes,omitempty"`
	RejectionReason string           `json:"motivoRejeicao,omitempty"`
	Penalty         float64          `json:"valorMulta,omitempty"`
	Contract        *Contract        `json:"contrato,omitempty"`
	Client          *Client          `json:"cliente,omitempty"`
	Equipment       *Equipment       `json:"equipamento,omitempty"`
	CreatedAt       string           `json:"createdAt,omitempty"`
	UpdatedAt       string           `json:"updatedAt,omitempty"`
}

// IsDevolutionPending and friends are plain status predicates.
func IsDevolutionPending(d *Devolution) bool   { return d.Status == DevolutionPending }
func IsDevolutionReturned(d *Devolution) bool  { return d.Status == DevolutionReturned }
func IsDevolutionDamaged(d *Devolution) bool   { return d.Status == DevolutionDamaged }
func IsDevolutionMissing(d *Devolution) bool   { return d.Status == DevolutionMissing }
func IsDevolutionProcessed(d *Devolution) bool { return d.Status == DevolutionProcessed }

// HasPenalty reports whether a penalty was actually applied.
func HasPenalty(d *Devolution) bool {
	return d.Penalty > 0
}

// DevolutionBadge carries the presentation tokens for a return status.
type DevolutionBadge struct {
	Color string `json:"color"`
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

// DevolutionStatusBadge maps a status to its presentation tokens. Unknown
// statuses render with the pending treatment and an explicit label.
func DevolutionStatusBadge(status DevolutionStatus) DevolutionBadge {
	switch status {
	case DevolutionReturned:
		return DevolutionBadge{Color: "success", Icon: "checkmark-circle", Label: "Devolvido"}
	case DevolutionProcessed:
		return DevolutionBadge{Color: "success", Icon: "checkmark-done-circle", Label: "Processado"}
	case DevolutionDamaged:
		return DevolutionBadge{Color: "danger", Icon: "warning", Label: "Avariado"}
	case DevolutionMissing:
		return DevolutionBadge{Color: "danger", Icon: "close-circle", Label: "Faltante"}
	case DevolutionPending:
		return DevolutionBadge{Color: "warning", Icon: "time", Label: "Pendente"}
	default:
		return DevolutionBadge{Color: "warning", Icon: "time", Label: "Desconhecido"}
	}
}

// ValidDevolutionDraft reports whether a return can be submitted: contract
// and equipment references, a positive quantity and a status.
func ValidDevolutionDraft(d *Devolution) bool {
	return d.ContractID != 0 && d.EquipmentID != 0 && d.Quantity > 0 && d.Status != ""
}

// GenerateDevolutionNumber builds a unique human-facing return number from
// the clock tail plus a random suffix.
func GenerateDevolutionNumber(now time.Time) string {
	millis := fmt.Sprintf("%d", now.UnixMilli())
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}
	return fmt.Sprintf("DEV%s%03d", millis, rand.Intn(1000))
}

// DevolutionStatistics aggregates a collection of returns.
type DevolutionStatistics struct {
	Total          int     `json:"totalDevolucoes"`
	Pending        int     `json:"pendentes"`
	Returned       int     `json:"devolvidos"`
	Damaged        int     `json:"avariados"`
	Missing        int     `json:"faltantes"`
	TotalPenalties float64 `json:"valorTotalMultas"`
}

// ComputeDevolutionStatistics runs a single pass, treating an absent
// penalty as zero.
func ComputeDevolutionStatistics(items []Devolution) DevolutionStatistics {
	stats := DevolutionStatistics{Total: len(items)}
	for i := range items {
		switch items[i].Status {
		case DevolutionPending:
			stats.Pending++
		case DevolutionReturned:
			stats.Returned++
		case DevolutionDamaged:
			stats.Damaged++
		case DevolutionMissing:
			stats.Missing++
		}
		stats.TotalPenalties += items[i].Penalty
	}
	return stats
}

// ComputeLateFee accrues a linear per-day penalty: the equipment value
// times the rate, times the days late. Zero or negative lateness costs
// nothing. The fee does not compound.
func ComputeLateFee(equipmentValue float64, daysLate int, rate float64) float64 {
	if daysLate <= 0 {
		return 0
	}
	return equipmentValue * rate * float64(daysLate)
}

// IsLate reports whether the return happened after the expected date.
// Malformed dates fail safe to false.
func IsLate(d *Devolution, expectedDate string) bool {
	returned, ok := parseAPIDate(d.Date)
	if !ok {
		return false
	}
	expected, ok := parseAPIDate(expectedDate)
	if !ok {
		return false
	}
	return returned.After(expected)
}

// DaysLate returns the whole days of delay, zero when on time or when
// either date is malformed.
func DaysLate(d *Devolution, expectedDate string) int {
	returned, ok := parseAPIDate(d.Date)
	if !ok {
		return 0
	}
	expected, ok := parseAPIDate(expectedDate)
	if !ok {
		return 0
	}
	if !returned.After(expected) {
		return 0
	}
	return int(math.Ceil(returned.Sub(expected).Hours() / 24))
}

// FilterDevolutionsByStatus returns the matching subset as a new slice.
func FilterDevolutionsByStatus(items []Devolution, status DevolutionStatus) []Devolution {
	out := make([]Devolution, 0, len(items))
	for _, d := range items {
		if d.Status == status {
			out = append(out, d)
		}
	}
	return out
}

// FilterDevolutionsByContract returns the returns of one contract.
func FilterDevolutionsByContract(items []Devolution, contractID int32) []Devolution {
	out := make([]Devolution, 0, len(items))
	for _, d := range items {
		if d.ContractID == contractID {
			out = append(out, d)
		}
	}
	return out
}

// FilterDevolutionsByClient returns the returns of one client.
func FilterDevolutionsByClient(items []Devolution, clientID int32) []Devolution {
	out := make([]Devolution, 0, len(items))
	for _, d := range items {
		if d.ClientID == clientID {
			out = append(out, d)
		}
	}
	return out
}

// FilterDevolutionsByEquipment returns the returns of one equipment.
func FilterDevolutionsByEquipment(items []Devolution, equipmentID int32) []Devolution {
	out := make([]Devolution, 0, len(items))
	for _, d := range items {
		if d.EquipmentID == equipmentID {
			out = append(out, d)
		}
	}
	return out
}

// SortDevolutionsByDate orders a copy most-recent first. Unparseable dates
// sink to the end.
func SortDevolutionsByDate(items []Devolution) []Devolution {
	out := make([]Devolution, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		ti, oki := parseAPIDate(out[i].Date)
		tj, okj := parseAPIDate(out[j].Date)
		if oki != okj {
			return oki
		}
		return ti.After(tj)
	})
	return out
}

// MarkProcessed returns a copy advanced to PROCESSADO; the input record is
// not mutated.
func MarkProcessed(d Devolution, now time.Time) Devolution {
	d.Status = DevolutionProcessed
	d.UpdatedAt = now.UTC().Format(time.RFC3339)
	return d
}

// ApplyPenalty returns a copy carrying the penalty and its reason.
func ApplyPenalty(d Devolution, penalty float64, reason string, now time.Time) Devolution {
	d.Penalty = penalty
	d.RejectionReason = reason
	d.UpdatedAt = now.UTC().Format(time.RFC3339)
	return d
}
