// Package query is the in-memory filter/sort engine for an already-fetched
// page of transactions. Every function here is pure and synchronous; the
// input slice is never mutated.
package query

import (
	"sort"
	"strings"
	"time"

	"github.com/PIliev24/green-street/internal/domain"
)

type SortField string

const (
	SortDate   SortField = "date"
	SortAmount SortField = "amount"
	SortFrom   SortField = "from"
	SortTo     SortField = "to"
)

type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// SortConfig is the active column and direction of an interactive sort.
type SortConfig struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// DefaultSort mirrors the service's read ordering: most recent first.
var DefaultSort = SortConfig{Field: SortDate, Direction: Desc}

// FilterBySearch keeps transactions where either contractor's name contains
// the query, case-insensitively. An empty or whitespace-only query returns
// the input unchanged.
func FilterBySearch(list []domain.TransactionWithContractors, search string) []domain.TransactionWithContractors {
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return list
	}

	out := make([]domain.TransactionWithContractors, 0, len(list))
	for _, tx := range list {
		if strings.Contains(strings.ToLower(tx.ContractorFrom.Name), q) ||
			strings.Contains(strings.ToLower(tx.ContractorTo.Name), q) {
			out = append(out, tx)
		}
	}
	return out
}

// Sort returns a new slice ordered by the given config. The sort is stable:
// equal keys keep their relative input order.
func Sort(list []domain.TransactionWithContractors, cfg SortConfig) []domain.TransactionWithContractors {
	out := make([]domain.TransactionWithContractors, len(list))
	copy(out, list)

	sort.SliceStable(out, func(i, j int) bool {
		less := false
		switch cfg.Field {
		case SortDate:
			less = parseDate(out[i].Date).Before(parseDate(out[j].Date))
		case SortAmount:
			less = out[i].Amount < out[j].Amount
		case SortFrom:
			less = strings.ToLower(out[i].ContractorFrom.Name) < strings.ToLower(out[j].ContractorFrom.Name)
		case SortTo:
			less = strings.ToLower(out[i].ContractorTo.Name) < strings.ToLower(out[j].ContractorTo.Name)
		default:
			return false
		}
		if cfg.Direction == Desc {
			return !less && !equalKey(out[i], out[j], cfg.Field)
		}
		return less
	})
	return out
}

// FilterAndSort applies the filter first, then sorts the filtered subset.
func FilterAndSort(list []domain.TransactionWithContractors, search string, cfg SortConfig) []domain.TransactionWithContractors {
	return Sort(FilterBySearch(list, search), cfg)
}

// NextSort is the sort-by-column toggle: clicking the active ascending field
// flips it to descending; clicking any other field resets to ascending.
func NextSort(cur SortConfig, field SortField) SortConfig {
	dir := Asc
	if cur.Field == field && cur.Direction == Asc {
		dir = Desc
	}
	return SortConfig{Field: field, Direction: dir}
}

func equalKey(a, b domain.TransactionWithContractors, field SortField) bool {
	switch field {
	case SortDate:
		return parseDate(a.Date).Equal(parseDate(b.Date))
	case SortAmount:
		return a.Amount == b.Amount
	case SortFrom:
		return strings.EqualFold(a.ContractorFrom.Name, b.ContractorFrom.Name)
	case SortTo:
		return strings.EqualFold(a.ContractorTo.Name, b.ContractorTo.Name)
	}
	return false
}

// parseDate compares timestamps by value, not lexically. Unparseable dates
// sort as the zero time.
func parseDate(raw string) time.Time {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}
