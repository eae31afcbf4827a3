package domain

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// PeriodTier is a rental pricing bucket.
type PeriodTier string

const (
	PeriodDaily    PeriodTier = "DIARIA"
	PeriodWeekly   PeriodTier = "SEMANAL"
	PeriodBiweekly PeriodTier = "QUINZENAL"
	PeriodMonthly  PeriodTier = "MENSAL"
)

// Days covered by one unit of each tier when projecting a duration.
const (
	daysPerWeek     = 7
	daysPerFortnight = 15
	daysPerMonth    = 30
)

// Equipment is a rentable asset type with a stock count and one unit price
// per period tier. Tier prices are independent; nothing forces the monthly
// price to undercut 30 daily rates.
type Equipment struct {
	ID             int32   `json:"id"`
	Name           string  `json:"nomeEquip"`
	Code           string  `json:"codigoEquip"`
	AvailableQty   int32   `json:"quantidadeDisp"`
	DailyPrice     float64 `json:"precoDiaria"`
	WeeklyPrice    float64 `json:"precoSemanal"`
	BiweeklyPrice  float64 `json:"precoQuinzenal"`
	MonthlyPrice   float64 `json:"precoMensal"`
	PatrimonyPrice float64 `json:"valorPatrimonio"` // replacement value of one unit
	CreatedAt      string  `json:"createdAt,omitempty"`
	UpdatedAt      string  `json:"updatedAt,omitempty"`
}

// IsAvailable reports whether at least one unit is in stock.
func IsAvailable(e *Equipment) bool {
	return e.AvailableQty > 0
}

// PriceForTier returns the unit price for a tier. Unknown tiers fall back
// to the daily price.
func PriceForTier(e *Equipment, tier PeriodTier) float64 {
	switch tier {
	case PeriodDaily:
		return e.DailyPrice
	case PeriodWeekly:
		return e.WeeklyPrice
	case PeriodBiweekly:
		return e.BiweeklyPrice
	case PeriodMonthly:
		return e.MonthlyPrice
	default:
		return e.DailyPrice
	}
}

// TotalFor is the tier unit price times the quantity rented.
func TotalFor(e *Equipment, quantity int32, tier PeriodTier) float64 {
	return PriceForTier(e, tier) * float64(quantity)
}

// BestPrice is the winning candidate from a best-price scan.
type BestPrice struct {
	Value float64    `json:"valor"`
	Tier  PeriodTier `json:"periodo"`
}

// BestPriceForDuration finds the cheapest way to cover a rental of the
// given number of days, charging whole tier units (ceiling division).
// Candidates are evaluated daily, weekly, biweekly, monthly; on a tie the
// earlier tier wins, so equal daily and biweekly totals resolve to daily.
func BestPriceForDuration(e *Equipment, days int) BestPrice {
	candidates := []BestPrice{
		{Value: e.DailyPrice * float64(days), Tier: PeriodDaily},
		{Value: e.WeeklyPrice * float64(ceilDiv(days, daysPerWeek)), Tier: PeriodWeekly},
		{Value: e.BiweeklyPrice * float64(ceilDiv(days, daysPerFortnight)), Tier: PeriodBiweekly},
		{Value: e.MonthlyPrice * float64(ceilDiv(days, daysPerMonth)), Tier: PeriodMonthly},
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Value < best.Value {
			best = c
		}
	}
	return best
}

func ceilDiv(n, unit int) int {
	if n <= 0 {
		return 0
	}
	return (n + unit - 1) / unit
}

// PatrimonyValue is the replacement value of the equipment's whole stock.
func PatrimonyValue(e *Equipment) float64 {
	return e.PatrimonyPrice * float64(e.AvailableQty)
}

// AvailabilityLevel classifies stock depth for presentation.
type AvailabilityLevel string

const (
	AvailabilityPlentiful   AvailabilityLevel = "PLENTIFUL"
	AvailabilityLow         AvailabilityLevel = "LOW"
	AvailabilityUnavailable AvailabilityLevel = "UNAVAILABLE"
)

// AvailabilityBadge carries the classification plus the severity token the
// UI maps to a color. Data only; no rendering here.
type AvailabilityBadge struct {
	Level    AvailabilityLevel `json:"level"`
	Severity string            `json:"severity"`
	Label    string            `json:"label"`
}

// Availability classifies the stock of an equipment: more than five units
// is plentiful, one to five runs low, zero is unavailable.
func Availability(e *Equipment) AvailabilityBadge {
	switch {
	case e.AvailableQty > 5:
		return AvailabilityBadge{
			Level:    AvailabilityPlentiful,
			Severity: "success",
			Label:    strconv.Itoa(int(e.AvailableQty)) + " disponíveis",
		}
	case e.AvailableQty > 0:
		return AvailabilityBadge{
			Level:    AvailabilityLow,
			Severity: "warning",
			Label:    strconv.Itoa(int(e.AvailableQty)) + " disponível(is)",
		}
	default:
		return AvailabilityBadge{
			Level:    AvailabilityUnavailable,
			Severity: "danger",
			Label:    "Indisponível",
		}
	}
}

// ValidEquipment reports whether an equipment draft can be submitted:
// non-blank name and code, a positive daily price and a non-negative stock.
func ValidEquipment(e *Equipment) bool {
	return strings.TrimSpace(e.Name) != "" &&
		strings.TrimSpace(e.Code) != "" &&
		e.DailyPrice > 0 &&
		e.AvailableQty >= 0
}

// GenerateEquipmentCode builds a human-scannable code from the name prefix,
// a clock suffix and the zero-padded id.
func GenerateEquipmentCode(name string, id int32, now time.Time) string {
	var prefix strings.Builder
	for _, r := range strings.ToUpper(name) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			prefix.WriteRune(r)
			if prefix.Len() == 3 {
				break
			}
		}
	}

	millis := strconv.FormatInt(now.UnixMilli(), 10)
	if len(millis) > 4 {
		millis = millis[len(millis)-4:]
	}

	suffix := "000"
	if id > 0 {
		suffix = strconv.Itoa(int(id))
		for len(suffix) < 3 {
			suffix = "0" + suffix
		}
	}
	return prefix.String() + millis + suffix
}

// FilterEquipmentByText matches name or code, case-insensitively. An empty
// query returns the input unchanged.
func FilterEquipmentByText(items []Equipment, query string) []Equipment {
	if query == "" {
		return items
	}
	q := strings.ToLower(query)
	out := make([]Equipment, 0, len(items))
	for _, e := range items {
		if strings.Contains(strings.ToLower(e.Name), q) || strings.Contains(strings.ToLower(e.Code), q) {
			out = append(out, e)
		}
	}
	return out
}

// EquipmentSortKey selects the ordering for SortEquipment.
type EquipmentSortKey string

const (
	SortByName         EquipmentSortKey = "nome"
	SortByCode         EquipmentSortKey = "codigo"
	SortByPrice        EquipmentSortKey = "preco"
	SortByAvailability EquipmentSortKey = "disponibilidade"
)

// SortEquipment returns a sorted copy; the input slice is left untouched.
// Price sorts ascending by daily price, availability descending by stock.
func SortEquipment(items []Equipment, key EquipmentSortKey) []Equipment {
	out := make([]Equipment, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		switch key {
		case SortByName:
			return out[i].Name < out[j].Name
		case SortByCode:
			return out[i].Code < out[j].Code
		case SortByPrice:
			return out[i].DailyPrice < out[j].DailyPrice
		case SortByAvailability:
			return out[i].AvailableQty > out[j].AvailableQty
		default:
			return false
		}
	})
	return out
}

// EquipmentStatistics aggregates a fleet for the dashboard.
type EquipmentStatistics struct {
	Total          int     `json:"totalEquipamentos"`
	Available      int     `json:"disponiveis"`
	OutOfStock     int     `json:"alugados"`
	TotalPatrimony float64 `json:"valorTotalPatrimonio"`
}

// ComputeEquipmentStatistics runs a single pass over the fleet.
func ComputeEquipmentStatistics(items []Equipment) EquipmentStatistics {
	stats := EquipmentStatistics{Total: len(items)}
	for i := range items {
		if items[i].AvailableQty > 0 {
			stats.Available++
		} else {
			stats.OutOfStock++
		}
		stats.TotalPatrimony += PatrimonyValue(&items[i])
	}
	return stats
}
